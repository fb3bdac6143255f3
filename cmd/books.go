package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bookly/bookly-cli/api"
	"github.com/bookly/bookly-cli/model"
	"github.com/bookly/bookly-cli/util"
)

var (
	booksSearch      string
	booksGenre       string
	booksOrdering    string
	booksPage        int
	booksInteractive bool

	booksCmd = &cobra.Command{
		Use:   "books",
		Short: "Browse the catalog",
	}

	booksListCmd = &cobra.Command{
		Use:   "list",
		Short: "List books, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if booksInteractive {
				return interactiveSearch(cmd)
			}
			return printBookPage(cmd, &api.ListBooksOptions{
				Search:   booksSearch,
				Genre:    booksGenre,
				Ordering: booksOrdering,
				Page:     booksPage,
			})
		},
	}

	booksShowCmd = &cobra.Command{
		Use:   "show <book-id>",
		Short: "Show one book with its reviews and open offers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ConvertStringToInt(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			// The detail screen loads its sections in order, each one
			// depends on the book existing.
			book, err := client.GetBook(ctx, id)
			if err != nil {
				return err
			}
			reviews, err := client.ListBookReviews(ctx, id)
			if err != nil {
				return err
			}
			offers, err := client.ListExchangeOffers(ctx, &api.ListOffersOptions{Book: id})
			if err != nil {
				return err
			}

			fmt.Printf("%s by %s\n", book.Title, book.DisplayAuthor())
			if book.AverageRating > 0 {
				fmt.Printf("Rating: %.1f\n", book.AverageRating)
			}
			if len(book.Genres) > 0 {
				names := make([]string, 0, len(book.Genres))
				for _, g := range book.Genres {
					names = append(names, g.Name)
				}
				fmt.Printf("Genres: %s\n", strings.Join(names, ", "))
			}
			if book.Description != "" {
				fmt.Println(book.Description)
			}

			fmt.Printf("\nReviews (%d)\n", len(reviews))
			for _, r := range reviews {
				fmt.Printf("  [%d/5] %s - %s\n", r.Rating, r.Title, truncate(r.Content, 80))
			}

			fmt.Printf("\nOffers (%d)\n", len(offers))
			w := newTable()
			for _, o := range offers {
				price := o.Price
				if price == "" {
					price = "-"
				}
				fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s\n",
					o.ID, o.OwnerUsername, o.Condition, o.ExchangeType, price)
			}
			return w.Flush()
		},
	}

	booksSearchCmd = &cobra.Command{
		Use:   "search [query]",
		Short: "Search the catalog by title or author",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if booksInteractive || len(args) == 0 {
				return interactiveSearch(cmd)
			}
			return printBookPage(cmd, &api.ListBooksOptions{
				Search: args[0],
				Genre:  booksGenre,
				Page:   booksPage,
			})
		},
	}

	booksGenresCmd = &cobra.Command{
		Use:   "genres",
		Short: "List the known genres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			genres, err := client.ListGenres(cmd.Context())
			if err != nil {
				return err
			}
			for _, g := range genres {
				fmt.Println(g.Name)
			}
			return nil
		},
	}

	reviewTitle   string
	reviewContent string
	reviewRating  int

	booksReviewCmd = &cobra.Command{
		Use:   "review <book-id>",
		Short: "Submit a review for a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ConvertStringToInt(args[0])
			if err != nil {
				return err
			}

			_, err = client.CreateReview(cmd.Context(), &model.ReviewCreateRequest{
				Book:    id,
				Title:   reviewTitle,
				Content: reviewContent,
				Rating:  reviewRating,
			})
			if err != nil {
				return err
			}

			// Render the fresh list so the user sees the review landed.
			reviews, err := client.ListBookReviews(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Review submitted, book has %d reviews\n", len(reviews))
			return nil
		},
	}
)

func init() {
	booksListCmd.Flags().StringVarP(&booksSearch, "search", "s", "", "title or author search")
	booksListCmd.Flags().StringVarP(&booksGenre, "genre", "g", "", "genre filter")
	booksListCmd.Flags().StringVar(&booksOrdering, "ordering", "", "server-side ordering field")
	booksListCmd.Flags().IntVar(&booksPage, "page", 0, "page number")
	booksListCmd.Flags().BoolVarP(&booksInteractive, "interactive", "i", false, "search as you type")

	booksSearchCmd.Flags().StringVarP(&booksGenre, "genre", "g", "", "genre filter")
	booksSearchCmd.Flags().IntVar(&booksPage, "page", 0, "page number")
	booksSearchCmd.Flags().BoolVarP(&booksInteractive, "interactive", "i", false, "search as you type")

	booksReviewCmd.Flags().StringVar(&reviewTitle, "title", "", "review title")
	booksReviewCmd.Flags().StringVar(&reviewContent, "content", "", "review body")
	booksReviewCmd.Flags().IntVar(&reviewRating, "rating", 0, "rating, 1 to 5")
	booksReviewCmd.PersistentPreRunE = requireUser

	booksCmd.AddCommand(booksListCmd, booksSearchCmd, booksShowCmd, booksGenresCmd, booksReviewCmd)
}

func printBookPage(cmd *cobra.Command, opts *api.ListBooksOptions) error {
	list, err := client.ListBooks(cmd.Context(), opts)
	if err != nil {
		return err
	}

	books := list.Results
	// The genre param is applied server-side, but older backends ignored it,
	// so the page is filtered again locally.
	if opts.Genre != "" {
		filtered := books[:0]
		for _, b := range books {
			if b.HasGenre(opts.Genre) {
				filtered = append(filtered, b)
			}
		}
		books = filtered
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tRATING")
	for _, b := range books {
		rating := "-"
		if b.AverageRating > 0 {
			rating = fmt.Sprintf("%.1f", b.AverageRating)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", b.ID, truncate(b.Title, 50), b.DisplayAuthor(), rating)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	page := opts.Page
	if page == 0 {
		page = 1
	}
	fmt.Printf("Page %d of %d\n", page, list.PageCount(client.PageSize()))
	return nil
}

// interactiveSearch re-runs the query a beat after the user stops typing, so
// every keystroke does not turn into a backend call.
func interactiveSearch(cmd *cobra.Command) error {
	fmt.Println("Type a query, empty line to quit")

	debouncer := util.NewDebouncer(300 * time.Millisecond)
	defer debouncer.Stop()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			return nil
		}

		debouncer.Trigger(func() {
			opts := &api.ListBooksOptions{Search: query, Genre: booksGenre}
			if err := printBookPage(cmd, opts); err != nil {
				fmt.Fprintln(os.Stderr, "Error: "+renderError(err))
			}
		})
	}
}
