package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookly/bookly-cli/api"
	"github.com/bookly/bookly-cli/model"
	"github.com/bookly/bookly-cli/util"
)

var (
	offersBook int

	offersCmd = &cobra.Command{
		Use:   "offers",
		Short: "Browse and manage exchange offers",
	}

	offersListCmd = &cobra.Command{
		Use:   "list",
		Short: "List exchange offers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			offers, err := client.ListExchangeOffers(cmd.Context(), &api.ListOffersOptions{Book: offersBook})
			if err != nil {
				return err
			}

			w := newTable()
			fmt.Fprintln(w, "ID\tBOOK\tOWNER\tCONDITION\tTYPE\tPRICE")
			for _, o := range offers {
				price := o.Price
				if price == "" {
					price = "-"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					o.ID, truncate(o.BookTitle, 40), o.OwnerUsername, o.Condition, o.ExchangeType, price)
			}
			return w.Flush()
		},
	}

	offerBook        int
	offerCondition   string
	offerType        string
	offerPrice       string
	offerPreferences string

	offersCreateCmd = &cobra.Command{
		Use:   "create",
		Short: "Offer one of your books for sale or exchange",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			offer, err := client.CreateExchangeOffer(cmd.Context(), &model.OfferCreateRequest{
				Book:                offerBook,
				Condition:           offerCondition,
				ExchangeType:        model.ExchangeType(offerType),
				Price:               offerPrice,
				ExchangePreferences: offerPreferences,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Offer %d created\n", offer.ID)
			return nil
		},
	}

	offersDeleteCmd = &cobra.Command{
		Use:   "delete <offer-id>",
		Short: "Withdraw an offer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ConvertStringToInt(args[0])
			if err != nil {
				return err
			}
			if err := client.DeleteExchangeOffer(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Offer %d withdrawn\n", id)
			return nil
		},
	}

	requestsIncoming bool
	requestsOutgoing bool

	requestsCmd = &cobra.Command{
		Use:   "requests",
		Short: "Manage exchange requests",
	}

	requestsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List exchange requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			requests, err := client.ListExchangeRequests(cmd.Context())
			if err != nil {
				return err
			}

			incoming, outgoing := model.SplitExchangeRequests(requests)
			switch {
			case requestsIncoming:
				requests = incoming
			case requestsOutgoing:
				requests = outgoing
			}

			w := newTable()
			fmt.Fprintln(w, "ID\tBOOK\tREQUESTER\tSTATUS\tMESSAGE")
			for _, r := range requests {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					r.ID, truncate(r.BookTitle, 40), r.RequesterUsername, r.Status, truncate(r.Message, 40))
			}
			return w.Flush()
		},
	}

	requestOffer   int
	requestMessage string

	requestsCreateCmd = &cobra.Command{
		Use:   "create",
		Short: "Request an exchange against an open offer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := client.CreateExchangeRequest(cmd.Context(), &model.ExchangeRequestCreate{
				Offer:   requestOffer,
				Message: requestMessage,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Request %d sent\n", created.ID)
			return nil
		},
	}

	requestsAcceptCmd   = requestStatusCommand("accept", model.ExchangeStatusAccepted)
	requestsRejectCmd   = requestStatusCommand("reject", model.ExchangeStatusRejected)
	requestsCompleteCmd = requestStatusCommand("complete", model.ExchangeStatusCompleted)
)

func init() {
	offersListCmd.Flags().IntVar(&offersBook, "book", 0, "only offers for this book")

	offersCreateCmd.Flags().IntVar(&offerBook, "book", 0, "book id")
	offersCreateCmd.Flags().StringVar(&offerCondition, "condition", "", "book condition")
	offersCreateCmd.Flags().StringVar(&offerType, "type", "", "EXCHANGE or SELL")
	offersCreateCmd.Flags().StringVar(&offerPrice, "price", "", "price, required for SELL")
	offersCreateCmd.Flags().StringVar(&offerPreferences, "preferences", "", "what you would trade for")
	offersCreateCmd.MarkFlagRequired("book")
	offersCreateCmd.MarkFlagRequired("condition")
	offersCreateCmd.MarkFlagRequired("type")
	offersCreateCmd.PersistentPreRunE = requireUser
	offersDeleteCmd.PersistentPreRunE = requireUser

	offersCmd.AddCommand(offersListCmd, offersCreateCmd, offersDeleteCmd)

	requestsListCmd.Flags().BoolVar(&requestsIncoming, "incoming", false, "requests against your offers")
	requestsListCmd.Flags().BoolVar(&requestsOutgoing, "outgoing", false, "requests you sent")
	requestsListCmd.MarkFlagsMutuallyExclusive("incoming", "outgoing")

	requestsCreateCmd.Flags().IntVar(&requestOffer, "offer", 0, "offer id")
	requestsCreateCmd.Flags().StringVar(&requestMessage, "message", "", "message to the owner")
	requestsCreateCmd.MarkFlagRequired("offer")

	requestsCmd.AddCommand(requestsListCmd, requestsCreateCmd,
		requestsAcceptCmd, requestsRejectCmd, requestsCompleteCmd)
	requestsCmd.PersistentPreRunE = requireUser
}

var statusMessage string

func requestStatusCommand(verb string, status model.ExchangeStatus) *cobra.Command {
	cmd := &cobra.Command{
		Use:   verb + " <request-id>",
		Short: fmt.Sprintf("Mark an exchange request %s", status),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ConvertStringToInt(args[0])
			if err != nil {
				return err
			}
			updated, err := client.UpdateExchangeRequest(cmd.Context(), id, status, statusMessage)
			if err != nil {
				return err
			}
			fmt.Printf("Request %d is now %s\n", updated.ID, updated.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&statusMessage, "message", "", "message to the requester")
	return cmd
}
