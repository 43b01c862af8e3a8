package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clubportal/internal/app"
	"clubportal/internal/model"
)

func newNewsCmd(portal *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Show the news feed",
		Run: func(cmd *cobra.Command, args []string) {
			portal.Navigate(cmd.Context(), app.SectionNews)
			for _, item := range portal.News.Items() {
				fmt.Printf("#%d %s — %s (%s)\n", item.ID, item.Title, item.AuthorName, item.CreatedAt)
				fmt.Printf("   %s\n", item.Content)
			}
		},
	}
	cmd.AddCommand(newNewsPostCmd(portal))
	return cmd
}

func newNewsPostCmd(portal *app.App) *cobra.Command {
	var draft model.NewsDraft
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Publish a news item (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := portal.Session.Current()
			if !app.CanManage(app.SectionNews, user) {
				return fmt.Errorf("publishing news requires an admin session")
			}
			return portal.News.Create(cmd.Context(), draft, user.ID)
		},
	}
	cmd.Flags().StringVar(&draft.Title, "title", "", "headline")
	cmd.Flags().StringVar(&draft.Content, "content", "", "body text")
	cmd.Flags().StringVar(&draft.ImageURL, "image", "", "optional image URL")
	cmd.Flags().StringVar(&draft.VideoURL, "video", "", "optional video URL")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}
