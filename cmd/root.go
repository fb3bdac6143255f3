// Package cmd holds the command tree. Each screen of the platform maps to a
// command, the shared wiring (config, logger, state db, backend client,
// session shell) happens once in the root pre-run.
package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/bookly/bookly-cli/api"
	"github.com/bookly/bookly-cli/config"
	"github.com/bookly/bookly-cli/log"
	"github.com/bookly/bookly-cli/shell"
	"github.com/bookly/bookly-cli/store"
	"github.com/bookly/bookly-cli/util"
)

var (
	configFile string

	db       *sql.DB
	appStore *store.Store
	client   *api.Client
	sess     *shell.Shell

	rootCmd = &cobra.Command{
		Use:           "bookly",
		Short:         "Bookly is a command line client for the bookly book exchange platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			teardown()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to the config file")

	rootCmd.AddCommand(loginCmd, logoutCmd, registerCmd, profileCmd)
	rootCmd.AddCommand(booksCmd, shelvesCmd)
	rootCmd.AddCommand(offersCmd, requestsCmd)
	rootCmd.AddCommand(discussionsCmd, commentsCmd)
	rootCmd.AddCommand(supportCmd, adminCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+renderError(err))
		os.Exit(1)
	}
}

func setup() error {
	if _, err := config.GetConfig(); err != nil {
		return err
	}
	if configFile != "" {
		if _, err := config.ParseFile(configFile); err != nil {
			return err
		}
	}
	log.Logger = log.NewLogger()

	var err error
	db, err = store.NewDB(config.Opts.StateDSN)
	if err != nil {
		return err
	}
	appStore, err = store.NewStore(db)
	if err != nil {
		return err
	}

	client, err = api.NewClient(config.Opts.BaseURL, appStore,
		time.Duration(config.Opts.HTTPTimeout)*time.Second)
	if err != nil {
		return err
	}

	sess = shell.New(appStore, client)
	return nil
}

func teardown() {
	if db != nil {
		db.Close()
	}
	log.Logger.Sync()
}

// renderError turns an error into the one-line notification the user sees.
// Validation detail is shown verbatim, server-side failures collapse into a
// generic message with the detail in the log.
func renderError(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= 500 {
			log.Error("Backend error", zap.Int("status", apiErr.StatusCode), zap.String("body", apiErr.Raw))
			return "the server could not handle the request, try again later"
		}
		if msg := api.FlattenFieldErrors(apiErr.Payload); msg != "" {
			return msg
		}
		return err.Error()
	}
	return err.Error()
}

// readPassword reads a password from the terminal with echo disabled.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// newTable returns a tabwriter on stdout for list output.
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
}

func truncate(s string, n int) string {
	return util.Truncate(s, n)
}
