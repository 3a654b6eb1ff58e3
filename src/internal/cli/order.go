package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	appcheckout "github.com/jackyeh168/ddd_checkout/src/internal/application/checkout"
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/checkout"
	"github.com/spf13/cobra"
)

func newOrderCommand(get func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Place and list orders",
	}
	cmd.AddCommand(
		newOrderPlaceCommand(get),
		newOrderListCommand(get),
	)
	return cmd
}

func newOrderPlaceCommand(get func() *app) *cobra.Command {
	var (
		customerID string
		items      []string
	)
	cmd := &cobra.Command{
		Use:     "place",
		Short:   "Place an order",
		Example: "  checkout order place --customer <id> --item <product-id>:2 --item <product-id>:1",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := parseOrderLines(items)
			if err != nil {
				return err
			}
			o, err := get().checkout.PlaceOrder(cmd.Context(), appcheckout.PlaceOrderCommand{
				CustomerID: customerID,
				Lines:      lines,
			})
			if err != nil {
				return err
			}
			printOrder(cmd.OutOrStdout(), o)
			return nil
		},
	}
	cmd.Flags().StringVar(&customerID, "customer", "", "customer id")
	cmd.Flags().StringArrayVar(&items, "item", nil, "order line as <product-id>:<quantity> (repeatable)")
	return cmd
}

func newOrderListCommand(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, total, err := get().checkout.ListOrders()
			if err != nil {
				return err
			}
			for _, o := range orders {
				printOrder(cmd.OutOrStdout(), o)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "total\t%s\n", total.StringFixed(2))
			return nil
		},
	}
}

// parseOrderLines 解析 "<product-id>:<quantity>"；省略數量時為 1
func parseOrderLines(values []string) ([]appcheckout.OrderLine, error) {
	lines := make([]appcheckout.OrderLine, 0, len(values))
	for _, v := range values {
		productID, qty, found := strings.Cut(v, ":")
		quantity := 1
		if found {
			n, err := strconv.Atoi(qty)
			if err != nil {
				return nil, fmt.Errorf("invalid quantity in %q: %w", v, err)
			}
			quantity = n
		}
		lines = append(lines, appcheckout.OrderLine{ProductID: productID, Quantity: quantity})
	}
	return lines, nil
}

func printOrder(w io.Writer, o *checkout.Order) {
	fmt.Fprintf(w, "%s\tcustomer=%s\titems=%d\ttotal=%s\n",
		o.ID(), o.CustomerID(), len(o.Items()), o.Total().StringFixed(2))
}
