package commands

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/parths19/Admin-Dashboard/internal/core/app"
	"github.com/parths19/Admin-Dashboard/internal/format/ascii"
	"github.com/spf13/cobra"
)

func Login(appInstance *app.App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and keep the session",
		Long: `Log in with a username and password. The session is persisted and
reused by later commands until logout. If --password is omitted it is read from stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if username == "" {
				return errors.New("--username is required")
			}

			if password == "" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("failed to read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			var res app.LoginResult
			err := withSpinner("Logging in...", func() error {
				res = appInstance.Session.Login(cmd.Context(), username, password)

				return nil
			})
			if err != nil {
				return err
			}

			if !res.Success {
				return errors.New(res.Error)
			}

			return printSession(cmd, appInstance)
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")

	return cmd
}

func Logout(appInstance *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the persisted session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			appInstance.Session.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

			return nil
		},
	}
}

func WhoAmI(appInstance *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printSession(cmd, appInstance)
		},
	}
}

func printSession(cmd *cobra.Command, appInstance *app.App) error {
	st := appInstance.Session.State()

	formatted, err := ascii.FormatSession(st.User, appInstance.Session.Status())
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatted)

	return nil
}
