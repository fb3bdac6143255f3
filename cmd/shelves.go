package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookly/bookly-cli/model"
	"github.com/bookly/bookly-cli/util"
)

var (
	shelvesCmd = &cobra.Command{
		Use:   "shelves",
		Short: "Manage your bookshelves",
	}

	shelvesListCmd = &cobra.Command{
		Use:   "list",
		Short: "List your bookshelves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shelves, err := client.ListBookshelves(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable()
			fmt.Fprintln(w, "ID\tNAME\tBOOKS")
			for _, s := range shelves {
				fmt.Fprintf(w, "%d\t%s\t%d\n", s.ID, s.Name, len(s.Books))
			}
			return w.Flush()
		},
	}

	shelvesCreateCmd = &cobra.Command{
		Use:   "create <name>",
		Short: "Create a bookshelf",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shelf, err := client.CreateBookshelf(cmd.Context(), &model.ShelfCreateRequest{Name: args[0]})
			if err != nil {
				return err
			}
			fmt.Printf("Bookshelf %q created (id %d)\n", shelf.Name, shelf.ID)
			return nil
		},
	}

	shelvesRenameCmd = &cobra.Command{
		Use:   "rename <shelf-id> <name>",
		Short: "Rename a bookshelf",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ConvertStringToInt(args[0])
			if err != nil {
				return err
			}
			shelf, err := client.RenameBookshelf(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Bookshelf %d renamed to %q\n", shelf.ID, shelf.Name)
			return nil
		},
	}

	shelvesDeleteCmd = &cobra.Command{
		Use:   "delete <shelf-id>",
		Short: "Delete a bookshelf",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ConvertStringToInt(args[0])
			if err != nil {
				return err
			}
			if err := client.DeleteBookshelf(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Bookshelf %d deleted\n", id)
			return nil
		},
	}

	shelvesAddCmd = &cobra.Command{
		Use:   "add <shelf-id> <book-id>",
		Short: "Add a book to a bookshelf",
		Args:  cobra.ExactArgs(2),
		RunE:  func(cmd *cobra.Command, args []string) error { return updateShelf(cmd, args, true) },
	}

	shelvesRemoveCmd = &cobra.Command{
		Use:   "remove <shelf-id> <book-id>",
		Short: "Remove a book from a bookshelf",
		Args:  cobra.ExactArgs(2),
		RunE:  func(cmd *cobra.Command, args []string) error { return updateShelf(cmd, args, false) },
	}
)

func init() {
	shelvesCmd.AddCommand(shelvesListCmd, shelvesCreateCmd, shelvesRenameCmd,
		shelvesDeleteCmd, shelvesAddCmd, shelvesRemoveCmd)
	shelvesCmd.PersistentPreRunE = requireUser
}

func updateShelf(cmd *cobra.Command, args []string, add bool) error {
	shelfID, err := util.ConvertStringToInt(args[0])
	if err != nil {
		return err
	}
	bookID, err := util.ConvertStringToInt(args[1])
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	shelf, err := client.GetBookshelf(ctx, shelfID)
	if err != nil {
		return err
	}

	if add {
		shelf, err = client.AddBookToShelf(ctx, shelf, bookID)
	} else {
		shelf, err = client.RemoveBookFromShelf(ctx, shelf, bookID)
	}
	if err != nil {
		return err
	}

	// Re-read so the summary reflects what the backend actually stored.
	shelf, err = client.GetBookshelf(ctx, shelfID)
	if err != nil {
		return err
	}
	fmt.Printf("Bookshelf %q now holds %d books\n", shelf.Name, len(shelf.Books))
	return nil
}
