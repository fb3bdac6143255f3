package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookly/bookly-cli/model"
	"github.com/bookly/bookly-cli/util"
)

var (
	discussionsSearch string

	discussionsCmd = &cobra.Command{
		Use:   "discussions",
		Short: "Browse book discussions",
	}

	discussionsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List discussions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			discussions, err := client.ListDiscussions(cmd.Context(), discussionsSearch)
			if err != nil {
				return err
			}

			w := newTable()
			fmt.Fprintln(w, "ID\tTITLE\tBOOK\tAUTHOR")
			for _, d := range discussions {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
					d.ID, truncate(d.Title, 50), truncate(d.BookTitle, 30), d.Author)
			}
			return w.Flush()
		},
	}

	discussionsShowCmd = &cobra.Command{
		Use:   "show <discussion-id>",
		Short: "Show a discussion and its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ConvertStringToInt(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			discussion, err := client.GetDiscussion(ctx, id)
			if err != nil {
				return err
			}
			comments, err := client.ListComments(ctx, id)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", discussion.Title)
			if discussion.BookTitle != "" {
				fmt.Printf("About: %s\n", discussion.BookTitle)
			}
			fmt.Println(discussion.Content)

			fmt.Printf("\nComments (%d)\n", len(comments))
			for _, c := range comments {
				liked := ""
				if c.IsLiked {
					liked = " (you liked this)"
				}
				fmt.Printf("  #%d %s: %s [%d likes]%s\n",
					c.ID, c.Username, truncate(c.Content, 100), c.LikesCount, liked)
			}
			return nil
		},
	}

	discussionTitle   string
	discussionContent string
	discussionBook    int

	discussionsCreateCmd = &cobra.Command{
		Use:   "create",
		Short: "Start a discussion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			discussion, err := client.CreateDiscussion(cmd.Context(), &model.DiscussionCreateRequest{
				Title:   discussionTitle,
				Content: discussionContent,
				Book:    discussionBook,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Discussion %d created\n", discussion.ID)
			return nil
		},
	}

	discussionsDeleteCmd = &cobra.Command{
		Use:   "delete <discussion-id>",
		Short: "Delete a discussion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ConvertStringToInt(args[0])
			if err != nil {
				return err
			}
			if err := client.DeleteDiscussion(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Discussion %d deleted\n", id)
			return nil
		},
	}

	commentsCmd = &cobra.Command{
		Use:   "comments",
		Short: "Comment on discussions",
	}

	commentContent string

	commentsAddCmd = &cobra.Command{
		Use:   "add <discussion-id>",
		Short: "Add a comment to a discussion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ConvertStringToInt(args[0])
			if err != nil {
				return err
			}
			comment, err := client.CreateComment(cmd.Context(), &model.CommentCreateRequest{
				Discussion: id,
				Content:    commentContent,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Comment %d added\n", comment.ID)
			return nil
		},
	}

	commentsLikeCmd = &cobra.Command{
		Use:   "like <comment-id>",
		Short: "Like a comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ConvertStringToInt(args[0])
			if err != nil {
				return err
			}
			outcome, err := client.LikeComment(cmd.Context(), id)
			if err != nil {
				return err
			}
			if outcome.Persisted() {
				fmt.Printf("Liked comment %d\n", id)
			} else {
				fmt.Printf("Liked comment %d locally, this backend does not store likes\n", id)
			}
			return nil
		},
	}

	commentsUnlikeCmd = &cobra.Command{
		Use:   "unlike <comment-id>",
		Short: "Remove your like from a comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ConvertStringToInt(args[0])
			if err != nil {
				return err
			}
			outcome, err := client.UnlikeComment(cmd.Context(), id)
			if err != nil {
				return err
			}
			if outcome.Persisted() {
				fmt.Printf("Unliked comment %d\n", id)
			} else {
				fmt.Printf("Unliked comment %d locally, this backend does not store likes\n", id)
			}
			return nil
		},
	}
)

func init() {
	discussionsListCmd.Flags().StringVarP(&discussionsSearch, "search", "s", "", "title search")

	discussionsCreateCmd.Flags().StringVar(&discussionTitle, "title", "", "discussion title")
	discussionsCreateCmd.Flags().StringVar(&discussionContent, "content", "", "discussion body")
	discussionsCreateCmd.Flags().IntVar(&discussionBook, "book", 0, "book the discussion is about")
	discussionsCreateCmd.MarkFlagRequired("title")
	discussionsCreateCmd.MarkFlagRequired("content")
	discussionsCreateCmd.PersistentPreRunE = requireUser
	discussionsDeleteCmd.PersistentPreRunE = requireUser

	discussionsCmd.AddCommand(discussionsListCmd, discussionsShowCmd,
		discussionsCreateCmd, discussionsDeleteCmd)

	commentsAddCmd.Flags().StringVar(&commentContent, "content", "", "comment body")
	commentsAddCmd.MarkFlagRequired("content")

	commentsCmd.AddCommand(commentsAddCmd, commentsLikeCmd, commentsUnlikeCmd)
	commentsCmd.PersistentPreRunE = requireUser
}
