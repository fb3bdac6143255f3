package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookly/bookly-cli/model"
	"github.com/bookly/bookly-cli/util"
	"github.com/bookly/bookly-cli/worker"
)

var (
	adminCmd = &cobra.Command{
		Use:   "admin",
		Short: "Staff-only platform management",
	}

	adminDashboardCmd = &cobra.Command{
		Use:   "dashboard",
		Short: "Show platform-wide counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				users       []model.User
				books       *model.List[model.Book]
				reviews     []model.Review
				discussions []model.Discussion
				tickets     []model.SupportTicket
			)

			// The sections are independent, so they load in parallel on a
			// small pool instead of one after another.
			pool := worker.NewPool(ctx, 3)
			pool.Push(
				worker.Job{Name: "users", Run: func(ctx context.Context) error {
					var err error
					users, err = client.ListUsers(ctx)
					return err
				}},
				worker.Job{Name: "books", Run: func(ctx context.Context) error {
					var err error
					books, err = client.ListBooks(ctx, nil)
					return err
				}},
				worker.Job{Name: "reviews", Run: func(ctx context.Context) error {
					var err error
					reviews, err = client.ListReviews(ctx)
					return err
				}},
				worker.Job{Name: "discussions", Run: func(ctx context.Context) error {
					var err error
					discussions, err = client.ListDiscussions(ctx, "")
					return err
				}},
				worker.Job{Name: "tickets", Run: func(ctx context.Context) error {
					var err error
					tickets, err = client.ListSupportTickets(ctx)
					return err
				}},
			)
			if err := pool.Wait(); err != nil {
				return err
			}

			open := 0
			for _, t := range tickets {
				if t.Status != model.TicketStatusClosed {
					open++
				}
			}
			pending := 0
			for _, r := range reviews {
				if r.Status == model.ReviewStatusPending {
					pending++
				}
			}

			w := newTable()
			fmt.Fprintf(w, "Users\t%d\n", len(users))
			fmt.Fprintf(w, "Books\t%d\n", books.Len())
			fmt.Fprintf(w, "Reviews\t%d (%d pending)\n", len(reviews), pending)
			fmt.Fprintf(w, "Discussions\t%d\n", len(discussions))
			fmt.Fprintf(w, "Tickets\t%d (%d open)\n", len(tickets), open)
			return w.Flush()
		},
	}

	adminUsersCmd = &cobra.Command{
		Use:   "users",
		Short: "List all accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := client.ListUsers(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable()
			fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tSTAFF\tACTIVE")
			for _, u := range users {
				fmt.Fprintf(w, "%d\t%s\t%s\t%v\t%v\n", u.ID, u.Username, u.Email, u.IsStaff, u.IsActive)
			}
			return w.Flush()
		},
	}

	adminPromoteCmd = adminUserFlagCommand("promote", "Grant staff rights to a user",
		func(ctx context.Context, id int) error {
			_, err := client.SetUserStaff(ctx, id, true)
			return err
		})
	adminDemoteCmd = adminUserFlagCommand("demote", "Revoke staff rights from a user",
		func(ctx context.Context, id int) error {
			_, err := client.SetUserStaff(ctx, id, false)
			return err
		})
	adminBlockCmd = adminUserFlagCommand("block", "Deactivate an account",
		func(ctx context.Context, id int) error {
			_, err := client.SetUserActive(ctx, id, false)
			return err
		})
	adminUnblockCmd = adminUserFlagCommand("unblock", "Reactivate an account",
		func(ctx context.Context, id int) error {
			_, err := client.SetUserActive(ctx, id, true)
			return err
		})
	adminDeleteUserCmd = adminUserFlagCommand("delete-user", "Delete an account",
		func(ctx context.Context, id int) error {
			return client.DeleteUser(ctx, id)
		})

	bookTitle       string
	bookAuthor      string
	bookDescription string
	bookISBN        string

	adminAddBookCmd = &cobra.Command{
		Use:   "add-book",
		Short: "Add a book to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := client.CreateBook(cmd.Context(), &model.Book{
				Title:       bookTitle,
				Author:      model.Author{Name: bookAuthor},
				Description: bookDescription,
				ISBN:        bookISBN,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Book %q added (id %d)\n", book.Title, book.ID)
			return nil
		},
	}

	adminUpdateBookCmd = &cobra.Command{
		Use:   "update-book <book-id>",
		Short: "Update catalog fields of a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ConvertStringToInt(args[0])
			if err != nil {
				return err
			}

			fields := map[string]any{}
			if cmd.Flags().Changed("title") {
				fields["title"] = bookTitle
			}
			if cmd.Flags().Changed("author") {
				fields["author"] = bookAuthor
			}
			if cmd.Flags().Changed("description") {
				fields["description"] = bookDescription
			}
			if cmd.Flags().Changed("isbn") {
				fields["isbn"] = bookISBN
			}
			if len(fields) == 0 {
				return fmt.Errorf("nothing to update, pass at least one field flag")
			}

			book, err := client.UpdateBook(cmd.Context(), id, fields)
			if err != nil {
				return err
			}
			fmt.Printf("Book %d updated\n", book.ID)
			return nil
		},
	}

	adminDeleteBookCmd = &cobra.Command{
		Use:   "delete-book <book-id>",
		Short: "Remove a book from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ConvertStringToInt(args[0])
			if err != nil {
				return err
			}
			if err := client.DeleteBook(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Book %d deleted\n", id)
			return nil
		},
	}

	adminReviewsCmd = &cobra.Command{
		Use:   "reviews",
		Short: "List all reviews for moderation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reviews, err := client.ListReviews(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable()
			fmt.Fprintln(w, "ID\tBOOK\tRATING\tSTATUS\tTITLE")
			for _, r := range reviews {
				fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\n",
					r.ID, r.BookID.Int(), r.Rating, r.Status, truncate(r.Title, 50))
			}
			return w.Flush()
		},
	}

	adminApproveReviewCmd = &cobra.Command{
		Use:   "approve-review <review-id>",
		Short: "Approve a pending review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ConvertStringToInt(args[0])
			if err != nil {
				return err
			}
			review, err := client.UpdateReview(cmd.Context(), id, map[string]any{
				"status": model.ReviewStatusApproved,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Review %d approved\n", review.ID)
			return nil
		},
	}

	adminDeleteReviewCmd = &cobra.Command{
		Use:   "delete-review <review-id>",
		Short: "Remove a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ConvertStringToInt(args[0])
			if err != nil {
				return err
			}
			if err := client.DeleteReview(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Review %d deleted\n", id)
			return nil
		},
	}

	adminTicketsCmd = &cobra.Command{
		Use:   "tickets",
		Short: "List every support ticket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tickets, err := client.ListSupportTickets(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable()
			fmt.Fprintln(w, "ID\tUSER\tSTATUS\tSUBJECT")
			for _, t := range tickets {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.ID, t.Username, t.Status, truncate(t.Subject, 60))
			}
			return w.Flush()
		},
	}

	ticketStatus string

	adminTicketStatusCmd = &cobra.Command{
		Use:   "ticket-status <ticket-id>",
		Short: "Move a ticket to OPEN, IN_PROGRESS or CLOSED",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ConvertStringToInt(args[0])
			if err != nil {
				return err
			}
			ticket, err := client.UpdateSupportTicket(cmd.Context(), id, model.TicketStatus(ticketStatus))
			if err != nil {
				return err
			}
			fmt.Printf("Ticket %d is now %s\n", ticket.ID, ticket.Status)
			return nil
		},
	}
)

func init() {
	adminTicketStatusCmd.Flags().StringVar(&ticketStatus, "status", "", "new status")
	adminTicketStatusCmd.MarkFlagRequired("status")

	adminAddBookCmd.Flags().StringVar(&bookTitle, "title", "", "book title")
	adminAddBookCmd.Flags().StringVar(&bookAuthor, "author", "", "author name")
	adminAddBookCmd.Flags().StringVar(&bookDescription, "description", "", "description")
	adminAddBookCmd.Flags().StringVar(&bookISBN, "isbn", "", "ISBN")
	adminAddBookCmd.MarkFlagRequired("title")
	adminAddBookCmd.MarkFlagRequired("author")

	adminUpdateBookCmd.Flags().StringVar(&bookTitle, "title", "", "book title")
	adminUpdateBookCmd.Flags().StringVar(&bookAuthor, "author", "", "author name")
	adminUpdateBookCmd.Flags().StringVar(&bookDescription, "description", "", "description")
	adminUpdateBookCmd.Flags().StringVar(&bookISBN, "isbn", "", "ISBN")

	adminCmd.AddCommand(adminDashboardCmd, adminUsersCmd,
		adminPromoteCmd, adminDemoteCmd, adminBlockCmd, adminUnblockCmd, adminDeleteUserCmd,
		adminAddBookCmd, adminUpdateBookCmd, adminDeleteBookCmd,
		adminReviewsCmd, adminApproveReviewCmd, adminDeleteReviewCmd,
		adminTicketsCmd, adminTicketStatusCmd)
	adminCmd.PersistentPreRunE = requireAdmin
}

func adminUserFlagCommand(verb, short string, apply func(context.Context, int) error) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <user-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ConvertStringToInt(args[0])
			if err != nil {
				return err
			}
			if err := apply(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Done, user %d updated\n", id)
			return nil
		},
	}
}
