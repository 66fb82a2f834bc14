package components

import (
	"strings"

	"github.com/timothyds/uas-stimp/pkg/app/styles"
)

// StarPicker is the 1-5 rating selector. Zero means nothing selected, which
// blocks submission.
type StarPicker struct {
	Value int
}

func NewStarPicker() *StarPicker {
	return &StarPicker{}
}

func (s *StarPicker) Set(v int) {
	if v < 0 || v > 5 {
		return
	}
	s.Value = v
}

// Reset clears the selection, used after a successful submit.
func (s *StarPicker) Reset() {
	s.Value = 0
}

func (s *StarPicker) View() string {
	var b strings.Builder
	for i := 1; i <= 5; i++ {
		if i <= s.Value {
			b.WriteString(styles.StarOn.Render("★"))
		} else {
			b.WriteString(styles.StarOff.Render("☆"))
		}
		if i < 5 {
			b.WriteString(" ")
		}
	}
	return b.String()
}
