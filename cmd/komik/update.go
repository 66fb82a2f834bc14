package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/timothyds/uas-stimp/pkg/editor"
)

var updateFlags = struct {
	title       string
	description string
	releaseDate string
	author      string
	image       string
	categories  []int
	pages       []string
}{}

var updateCmd = &cobra.Command{
	Use:   "update [comic-id]",
	Short: "Update an existing comic",
	Long:  "Fetch a comic, apply the given flags over its current fields, and submit the result",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requireLogin()

		comicID, err := strconv.Atoi(args[0])
		cobra.CheckErr(err)

		comic, err := client.ComicDetail(comicID)
		cobra.CheckErr(err)
		form := editor.FromComic(comic)

		if cmd.Flags().Changed("title") {
			form.Title = updateFlags.title
		}
		if cmd.Flags().Changed("description") {
			form.Description = updateFlags.description
		}
		if cmd.Flags().Changed("release-date") {
			form.ReleaseDate = updateFlags.releaseDate
		}
		if cmd.Flags().Changed("author") {
			form.Author = updateFlags.author
		}
		if cmd.Flags().Changed("image") {
			form.Image = updateFlags.image
		}
		if cmd.Flags().Changed("category") {
			for _, id := range updateFlags.categories {
				form.ToggleCategory(id)
			}
		}
		if cmd.Flags().Changed("page") {
			// Appended after the existing pages; numbering continues.
			for _, url := range updateFlags.pages {
				form.AppendPage()
				form.SetPageImage(len(form.Pages())-1, url)
			}
		}

		if err := form.Validate(); err != nil {
			fmt.Printf("❌ %s\n", err)
			return
		}

		if err := client.UpdateComic(form.Values(editor.Update)); err != nil {
			fmt.Printf("❌ Gagal memperbarui komik: %s\n", err)
			return
		}
		fmt.Println("✅ Komik berhasil diperbarui!")
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateFlags.title, "title", "", "comic title")
	updateCmd.Flags().StringVar(&updateFlags.description, "description", "", "description (at least 50 characters)")
	updateCmd.Flags().StringVar(&updateFlags.releaseDate, "release-date", "", "release date, YYYY-MM-DD")
	updateCmd.Flags().StringVar(&updateFlags.author, "author", "", "author name")
	updateCmd.Flags().StringVar(&updateFlags.image, "image", "", "thumbnail URL")
	updateCmd.Flags().IntSliceVar(&updateFlags.categories, "category", nil, "toggle category id (repeatable)")
	updateCmd.Flags().StringSliceVar(&updateFlags.pages, "page", nil, "append page image URL (repeatable)")
}
