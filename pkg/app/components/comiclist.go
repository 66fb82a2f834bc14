package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/timothyds/uas-stimp/pkg/app/styles"
	"github.com/timothyds/uas-stimp/pkg/data"
)

type ComicListItem struct {
	Comic    data.Comic
	LastPage int // local reading position, 0 if never opened
}

// ComicList renders the comics of a category as selectable cards.
type ComicList struct {
	Items         []ComicListItem
	SelectedIndex int
	Width         int
	Height        int
}

func NewComicList() *ComicList {
	return &ComicList{
		Items:  []ComicListItem{},
		Width:  80,
		Height: 20,
	}
}

func (l *ComicList) SetItems(items []ComicListItem) {
	l.Items = items
	if l.SelectedIndex >= len(items) {
		l.SelectedIndex = 0
	}
}

func (l *ComicList) Next() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex++
	if l.SelectedIndex >= len(l.Items) {
		l.SelectedIndex = 0
	}
}

func (l *ComicList) Prev() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex--
	if l.SelectedIndex < 0 {
		l.SelectedIndex = len(l.Items) - 1
	}
}

func (l *ComicList) Selected() *ComicListItem {
	if len(l.Items) == 0 || l.SelectedIndex >= len(l.Items) {
		return nil
	}
	return &l.Items[l.SelectedIndex]
}

func (l *ComicList) View() string {
	if len(l.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("Tidak ada komik di kategori ini")
		return lipgloss.Place(l.Width, l.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder

	for i, item := range l.Items {
		cardStyle := styles.CardStyle
		if i == l.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		title := styles.TitleStyle.Render(item.Comic.Title)
		rating := styles.SubtitleStyle.Render(fmt.Sprintf("Rating: %.1f", item.Comic.Rating))

		desc := item.Comic.Description
		// Truncate on rune boundaries so multi-byte text stays valid.
		if runes := []rune(desc); len(runes) > 120 {
			desc = string(runes[:117]) + "..."
		}
		description := styles.TextStyle.Render(desc)

		meta := fmt.Sprintf("%s • %s", item.Comic.Author, item.Comic.ReleaseDate)
		if item.LastPage > 0 {
			meta += fmt.Sprintf(" • terakhir dibaca hal. %d", item.LastPage)
		}

		cardContent := lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			rating,
			description,
			styles.MutedStyle.Render(meta),
		)

		card := cardStyle.Width(l.Width - 4).Render(cardContent)
		b.WriteString(card)
		b.WriteString("\n")
	}

	return b.String()
}
