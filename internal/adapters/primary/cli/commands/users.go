package commands

import (
	"errors"
	"fmt"

	"github.com/parths19/Admin-Dashboard/internal/core/app"
	"github.com/parths19/Admin-Dashboard/internal/core/domain"
	"github.com/parths19/Admin-Dashboard/internal/format/ascii"
	"github.com/spf13/cobra"
)

func Users(appInstance *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "users",
		Short:             "Browse users",
		PersistentPreRunE: requireAuth(appInstance),
	}

	cmd.AddCommand(
		UsersList(appInstance),
		UsersGet(appInstance),
	)

	return cmd
}

func UsersList(appInstance *app.App) *cobra.Command {
	var flags pageFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			skip, err := flags.skip()
			if err != nil {
				return err
			}

			var page *domain.Page[domain.User]
			err = withSpinner("Fetching users...", func() error {
				var fetchErr error
				page, fetchErr = appInstance.Users.FetchCollection(cmd.Context(), flags.limit, skip, flags.search, flags.filter)

				return fetchErr
			})
			if err != nil {
				return errors.New(domain.Message(err))
			}

			formatted, err := ascii.FormatUsers(page.Items, page.Total, skip, flags.limit)
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatted)

			return nil
		},
	}

	flags.register(cmd, appInstance.UsersPageSize(), "filter", "key=value filter, e.g. hair.color=Brown")

	return cmd
}

func UsersGet(appInstance *app.App) *cobra.Command {
	var openImage bool

	cmd := &cobra.Command{
		Use:   "get ID",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var user *domain.User
			err = withSpinner("Fetching user...", func() error {
				var fetchErr error
				user, fetchErr = appInstance.Users.FetchSingle(cmd.Context(), id)

				return fetchErr
			})
			if err != nil {
				return errors.New(domain.Message(err))
			}

			formatted, err := ascii.FormatUser(user)
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatted)

			if openImage && user.Image != "" {
				if err := openURL(user.Image); err != nil {
					return fmt.Errorf("failed to open image: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&openImage, "open", false, "open the user's image in the browser")

	return cmd
}
