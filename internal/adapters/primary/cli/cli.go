package cli

import (
	"github.com/parths19/Admin-Dashboard/internal/adapters/primary/cli/commands"
	"github.com/parths19/Admin-Dashboard/internal/core/app"
	do "github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Command creates and returns the root CLI command.
func Command(i do.Injector) (*cobra.Command, error) {
	appInstance, err := do.Invoke[*app.App](i)
	if err != nil {
		return nil, err
	}

	return NewRoot(appInstance), nil
}

// NewRoot builds the command tree around appInstance.
func NewRoot(appInstance *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "console",
		Long:          `An admin console for the DummyJSON users and products catalog.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		commands.Login(appInstance),
		commands.Logout(appInstance),
		commands.WhoAmI(appInstance),
		commands.Users(appInstance),
		commands.Products(appInstance),
		commands.Cache(appInstance),
	)

	return cmd
}
