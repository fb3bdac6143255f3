package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookly/bookly-cli/model"
	"github.com/bookly/bookly-cli/util"
)

var (
	supportCmd = &cobra.Command{
		Use:   "support",
		Short: "Support tickets",
	}

	supportListCmd = &cobra.Command{
		Use:   "list",
		Short: "List your support tickets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tickets, err := client.ListSupportTickets(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable()
			fmt.Fprintln(w, "ID\tSTATUS\tSUBJECT")
			for _, t := range tickets {
				fmt.Fprintf(w, "%d\t%s\t%s\n", t.ID, t.Status, truncate(t.Subject, 60))
			}
			return w.Flush()
		},
	}

	supportShowCmd = &cobra.Command{
		Use:   "show <ticket-id>",
		Short: "Show a ticket and its replies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ConvertStringToInt(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			tickets, err := client.ListSupportTickets(ctx)
			if err != nil {
				return err
			}
			var ticket *model.SupportTicket
			for i := range tickets {
				if tickets[i].ID == id {
					ticket = &tickets[i]
					break
				}
			}
			if ticket == nil {
				return fmt.Errorf("ticket %d not found", id)
			}

			replies, err := client.ListTicketReplies(ctx, id)
			if err != nil {
				return err
			}

			fmt.Printf("[%s] %s\n", ticket.Status, ticket.Subject)
			fmt.Println(ticket.Message)
			fmt.Printf("\nReplies (%d)\n", len(replies))
			for _, r := range replies {
				fmt.Printf("  %s: %s\n", r.Username, r.Message)
			}
			return nil
		},
	}

	ticketSubject string
	ticketMessage string

	supportCreateCmd = &cobra.Command{
		Use:   "create",
		Short: "Open a support ticket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ticket, err := client.CreateSupportTicket(cmd.Context(), &model.TicketCreateRequest{
				Subject: ticketSubject,
				Message: ticketMessage,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Ticket %d opened\n", ticket.ID)
			return nil
		},
	}

	replyMessage string

	supportReplyCmd = &cobra.Command{
		Use:   "reply <ticket-id>",
		Short: "Reply to a support ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ConvertStringToInt(args[0])
			if err != nil {
				return err
			}
			_, err = client.CreateTicketReply(cmd.Context(), &model.ReplyCreateRequest{
				Ticket:  id,
				Message: replyMessage,
			})
			if err != nil {
				return err
			}

			replies, err := client.ListTicketReplies(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Reply sent, ticket has %d replies\n", len(replies))
			return nil
		},
	}
)

func init() {
	supportCreateCmd.Flags().StringVar(&ticketSubject, "subject", "", "ticket subject")
	supportCreateCmd.Flags().StringVar(&ticketMessage, "message", "", "ticket body")
	supportCreateCmd.MarkFlagRequired("subject")
	supportCreateCmd.MarkFlagRequired("message")

	supportReplyCmd.Flags().StringVar(&replyMessage, "message", "", "reply body")
	supportReplyCmd.MarkFlagRequired("message")

	supportCmd.AddCommand(supportListCmd, supportShowCmd, supportCreateCmd, supportReplyCmd)
	supportCmd.PersistentPreRunE = requireUser
}
