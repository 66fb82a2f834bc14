package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/timothyds/uas-stimp/pkg/editor"
)

var addFlags = struct {
	title       string
	description string
	releaseDate string
	author      string
	image       string
	categories  []int
	pages       []string
}{}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new comic",
	Long:  "Create a comic from flags; categories repeat with --category, pages in order with --page",
	Run: func(cmd *cobra.Command, args []string) {
		requireLogin()

		form := editor.NewForm()
		form.Title = addFlags.title
		form.Description = addFlags.description
		form.ReleaseDate = addFlags.releaseDate
		form.Author = addFlags.author
		form.Image = addFlags.image
		for _, id := range addFlags.categories {
			form.ToggleCategory(id)
		}
		for i, url := range addFlags.pages {
			if i > 0 {
				form.AppendPage()
			}
			form.SetPageImage(i, url)
		}

		if err := form.Validate(); err != nil {
			fmt.Printf("❌ %s\n", err)
			return
		}

		if err := client.CreateComic(form.Values(editor.Create)); err != nil {
			fmt.Printf("❌ Gagal menambahkan komik: %s\n", err)
			return
		}
		fmt.Println("✅ Komik berhasil ditambahkan!")
	},
}

func init() {
	addCmd.Flags().StringVar(&addFlags.title, "title", "", "comic title")
	addCmd.Flags().StringVar(&addFlags.description, "description", "", "description (at least 50 characters)")
	addCmd.Flags().StringVar(&addFlags.releaseDate, "release-date", "", "release date, YYYY-MM-DD")
	addCmd.Flags().StringVar(&addFlags.author, "author", "", "author name")
	addCmd.Flags().StringVar(&addFlags.image, "image", "", "thumbnail URL")
	addCmd.Flags().IntSliceVar(&addFlags.categories, "category", nil, "category id (repeatable)")
	addCmd.Flags().StringSliceVar(&addFlags.pages, "page", nil, "page image URL, in order (repeatable)")
}
