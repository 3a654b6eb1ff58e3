package cli

import (
	"fmt"
	"io"

	appcustomer "github.com/jackyeh168/ddd_checkout/src/internal/application/customer"
	"github.com/jackyeh168/ddd_checkout/src/internal/domain/customer"
	"github.com/spf13/cobra"
)

func newCustomerCommand(get func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Manage customers",
	}
	cmd.AddCommand(
		newCustomerCreateCommand(get),
		newCustomerListCommand(get),
		newCustomerChangeAddressCommand(get),
		newCustomerActivateCommand(get),
	)
	return cmd
}

type addressFlags struct {
	street string
	number int
	zip    string
	city   string
}

func (f *addressFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.street, "street", "", "street name")
	cmd.Flags().IntVar(&f.number, "number", 0, "street number")
	cmd.Flags().StringVar(&f.zip, "zip", "", "zip code")
	cmd.Flags().StringVar(&f.city, "city", "", "city")
}

func newCustomerCreateCommand(get func() *app) *cobra.Command {
	var (
		name    string
		address addressFlags
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer with an address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := get().customers.Register(cmd.Context(), appcustomer.CreateCustomerCommand{
				Name:   name,
				Street: address.street,
				Number: address.number,
				Zip:    address.zip,
				City:   address.city,
			})
			if err != nil {
				return err
			}
			printCustomer(cmd.OutOrStdout(), c)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "customer name")
	address.register(cmd)
	return cmd
}

func newCustomerListCommand(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			customers, err := get().customers.List()
			if err != nil {
				return err
			}
			for _, c := range customers {
				printCustomer(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func newCustomerChangeAddressCommand(get func() *app) *cobra.Command {
	var address addressFlags
	cmd := &cobra.Command{
		Use:   "change-address <id>",
		Short: "Change a customer's address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := customer.NewAddress(address.street, address.number, address.zip, address.city)
			if err != nil {
				return err
			}
			c, err := get().customers.ChangeAddress(cmd.Context(), args[0], addr)
			if err != nil {
				return err
			}
			printCustomer(cmd.OutOrStdout(), c)
			return nil
		},
	}
	address.register(cmd)
	return cmd
}

func newCustomerActivateCommand(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "activate <id>",
		Short: "Activate a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := get().customers.Activate(args[0])
			if err != nil {
				return err
			}
			printCustomer(cmd.OutOrStdout(), c)
			return nil
		},
	}
}

func printCustomer(w io.Writer, c *customer.Customer) {
	address := "-"
	if !c.Address().IsZero() {
		address = c.Address().String()
	}
	fmt.Fprintf(w, "%s\t%s\t%s\tactive=%t\tpoints=%d\n",
		c.ID(), c.Name(), address, c.IsActive(), c.RewardPoints())
}
