package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bookly/bookly-cli/log"
	"github.com/bookly/bookly-cli/model"
)

var (
	loginPassword    string
	registerEmail    string
	registerPassword string
	registerFirst    string
	registerLast     string

	loginCmd = &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and store the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]
			password := loginPassword
			if password == "" {
				var err error
				password, err = readPassword("Password: ")
				if err != nil {
					return err
				}
			}

			tokens, err := client.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			if err := appStore.SetSession(tokens.Access, tokens.Refresh); err != nil {
				return err
			}

			user, err := client.Me(cmd.Context())
			if err != nil {
				return err
			}
			log.Info("Logged in", zap.String("username", user.Username))
			fmt.Printf("Logged in as %s\n", user.Username)
			return nil
		},
	}

	logoutCmd = &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appStore.ClearSession(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}

	registerCmd = &cobra.Command{
		Use:   "register <username>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password := registerPassword
			if password == "" {
				var err error
				password, err = readPassword("Password: ")
				if err != nil {
					return err
				}
			}

			user, err := client.Register(cmd.Context(), &model.RegisterRequest{
				Username:  args[0],
				Email:     registerEmail,
				Password:  password,
				FirstName: registerFirst,
				LastName:  registerLast,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Account %s created, you can log in now\n", user.Username)
			return nil
		},
	}

	profileCmd = &cobra.Command{
		Use:   "profile",
		Short: "Show or update the current profile",
	}

	profileShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the logged-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := client.Me(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable()
			fmt.Fprintf(w, "Username\t%s\n", user.Username)
			fmt.Fprintf(w, "Email\t%s\n", user.Email)
			fmt.Fprintf(w, "Name\t%s %s\n", user.FirstName, user.LastName)
			fmt.Fprintf(w, "Staff\t%v\n", user.IsStaff)
			return w.Flush()
		},
	}

	profileID       int
	profileFullName string
	profileBirth    string
	profilePicture  string

	profileUpdateCmd = &cobra.Command{
		Use:   "update",
		Short: "Create or update the extended profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := client.UpdateProfile(cmd.Context(), &model.ProfileUpdateRequest{
				ID:             profileID,
				FullName:       profileFullName,
				BirthDate:      profileBirth,
				ProfilePicture: profilePicture,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Profile %d saved\n", profile.ID)
			return nil
		},
	}
)

func init() {
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password (prompted when omitted)")

	registerCmd.Flags().StringVar(&registerEmail, "email", "", "email address")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "password (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerFirst, "first-name", "", "first name")
	registerCmd.Flags().StringVar(&registerLast, "last-name", "", "last name")
	registerCmd.MarkFlagRequired("email")

	profileUpdateCmd.Flags().IntVar(&profileID, "id", 0, "profile id (omit to create)")
	profileUpdateCmd.Flags().StringVar(&profileFullName, "full-name", "", "full name")
	profileUpdateCmd.Flags().StringVar(&profileBirth, "birth-date", "", "birth date (YYYY-MM-DD)")
	profileUpdateCmd.Flags().StringVar(&profilePicture, "picture", "", "profile picture URL")

	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd)
	profileCmd.PersistentPreRunE = requireUser
}

// requireUser chains the root setup with the session guard, cobra only runs
// the closest PersistentPreRunE.
func requireUser(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	return sess.RequireUser(cmd, args)
}

func requireAdmin(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	return sess.RequireAdmin(cmd, args)
}
