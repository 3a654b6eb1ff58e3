package cli

import (
	"fmt"
	"io"

	"github.com/jackyeh168/ddd_checkout/src/internal/domain/product"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newProductCommand(get func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage products",
	}
	cmd.AddCommand(
		newProductCreateCommand(get),
		newProductListCommand(get),
		newProductChangePriceCommand(get),
		newProductIncreaseCommand(get),
	)
	return cmd
}

func newProductCreateCommand(get func() *app) *cobra.Command {
	var name, price string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(price)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", price, err)
			}
			p, err := get().products.Create(name, amount)
			if err != nil {
				return err
			}
			printProduct(cmd.OutOrStdout(), p)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&price, "price", "0", "unit price")
	return cmd
}

func newProductListCommand(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := get().products.List()
			if err != nil {
				return err
			}
			for _, p := range products {
				printProduct(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}

func newProductChangePriceCommand(get func() *app) *cobra.Command {
	var price string
	cmd := &cobra.Command{
		Use:   "change-price <id>",
		Short: "Change a product's price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(price)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", price, err)
			}
			p, err := get().products.ChangePrice(cmd.Context(), args[0], amount)
			if err != nil {
				return err
			}
			printProduct(cmd.OutOrStdout(), p)
			return nil
		},
	}
	cmd.Flags().StringVar(&price, "price", "", "new unit price")
	return cmd
}

func newProductIncreaseCommand(get func() *app) *cobra.Command {
	var percent string
	cmd := &cobra.Command{
		Use:   "increase",
		Short: "Increase every product price by a percentage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pct, err := decimal.NewFromString(percent)
			if err != nil {
				return fmt.Errorf("invalid percentage %q: %w", percent, err)
			}
			products, err := get().products.IncreaseAllPrices(cmd.Context(), pct)
			if err != nil {
				return err
			}
			for _, p := range products {
				printProduct(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&percent, "percent", "", "percentage, e.g. 10 or -5")
	return cmd
}

func printProduct(w io.Writer, p *product.Product) {
	fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID(), p.Name(), p.Price().StringFixed(2))
}
