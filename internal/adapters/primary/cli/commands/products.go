package commands

import (
	"errors"
	"fmt"

	"github.com/parths19/Admin-Dashboard/internal/core/app"
	"github.com/parths19/Admin-Dashboard/internal/core/domain"
	"github.com/parths19/Admin-Dashboard/internal/format/ascii"
	"github.com/spf13/cobra"
)

func Products(appInstance *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "products",
		Short:             "Browse products",
		PersistentPreRunE: requireAuth(appInstance),
	}

	cmd.AddCommand(
		ProductsList(appInstance),
		ProductsGet(appInstance),
		ProductsCategories(appInstance),
	)

	return cmd
}

func ProductsList(appInstance *app.App) *cobra.Command {
	var flags pageFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Long:  `List products. --category takes precedence over --search.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			skip, err := flags.skip()
			if err != nil {
				return err
			}

			var page *domain.Page[domain.Product]
			err = withSpinner("Fetching products...", func() error {
				var fetchErr error
				page, fetchErr = appInstance.Products.FetchCollection(cmd.Context(), flags.limit, skip, flags.search, flags.filter)

				return fetchErr
			})
			if err != nil {
				return errors.New(domain.Message(err))
			}

			formatted, err := ascii.FormatProducts(page.Items, page.Total, skip, flags.limit)
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatted)

			return nil
		},
	}

	flags.register(cmd, appInstance.ProductsPageSize(), "category", "category slug, e.g. smartphones")

	return cmd
}

func ProductsGet(appInstance *app.App) *cobra.Command {
	var openImage bool

	cmd := &cobra.Command{
		Use:   "get ID",
		Short: "Show one product with its reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var product *domain.Product
			err = withSpinner("Fetching product...", func() error {
				var fetchErr error
				product, fetchErr = appInstance.Products.FetchSingle(cmd.Context(), id)

				return fetchErr
			})
			if err != nil {
				return errors.New(domain.Message(err))
			}

			formatted, err := ascii.FormatProduct(product)
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatted)

			if openImage && product.Thumbnail != "" {
				if err := openURL(product.Thumbnail); err != nil {
					return fmt.Errorf("failed to open image: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&openImage, "open", false, "open the product thumbnail in the browser")

	return cmd
}

func ProductsCategories(appInstance *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := withSpinner("Fetching categories...", func() error {
				appInstance.Products.FetchCategories(cmd.Context())

				return nil
			})
			if err != nil {
				return err
			}

			formatted, err := ascii.FormatCategories(appInstance.Products.Categories())
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatted)

			return nil
		},
	}
}
