package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/parths19/Admin-Dashboard/internal/core/app"
	"github.com/parths19/Admin-Dashboard/internal/log"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"
)

var (
	// openURL opens a URL in the default browser.
	openURL = open.Run
	// withSpinner runs a function behind a terminal spinner.
	withSpinner = log.WithSpinner
)

// pageFlags are the paging and query flags shared by list commands.
type pageFlags struct {
	page   int
	limit  int
	search string
	filter string
}

func (f *pageFlags) register(cmd *cobra.Command, defaultLimit int, filterName, filterUsage string) {
	cmd.Flags().IntVar(&f.page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&f.limit, "limit", defaultLimit, "items per page")
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "free-text search")
	cmd.Flags().StringVar(&f.filter, filterName, "", filterUsage)
}

func (f *pageFlags) skip() (int, error) {
	if f.page < 1 {
		return 0, fmt.Errorf("invalid page %d", f.page)
	}
	if f.limit < 1 {
		return 0, fmt.Errorf("invalid limit %d", f.limit)
	}

	return (f.page - 1) * f.limit, nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}

	return id, nil
}

// requireAuth is a PersistentPreRunE guarding commands that need a session.
func requireAuth(appInstance *app.App) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		if err := appInstance.RequireAuth(); err != nil {
			return errors.New("not logged in, run `console login` first")
		}

		return nil
	}
}
