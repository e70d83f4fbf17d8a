package main

import (
	"errors"
	"fmt"
	"strings"

	"solestore/internal/order"

	"github.com/spf13/cobra"
)

func newOrderCmd() *cobra.Command {
	var customer order.Customer

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Compose the order and hand it off via the messaging link",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			out := cmd.OutOrStdout()
			svc := order.NewService(a.cfg.StoreContact, &order.LinkMessenger{Out: out})
			flow := order.NewFlow(svc, a.cart)

			if err := flow.Begin(); err != nil {
				if errors.Is(err, order.ErrEmptyCart) {
					fmt.Fprintln(out, mutedStyle.Render("Your cart is empty."))
					return nil
				}
				return err
			}

			message, err := flow.Submit(cmd.Context(), customer)

			var vErr *order.ValidationError
			if errors.As(err, &vErr) {
				fmt.Fprintf(out, "Please provide: %s\n", strings.Join(vErr.Fields, ", "))
				return err
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(out, message)
			fmt.Fprintln(out, "Order sent. Cart cleared.")
			return nil
		},
	}

	cmd.Flags().StringVar(&customer.Name, "name", "", "customer name")
	cmd.Flags().StringVar(&customer.Phone, "phone", "", "customer phone number")
	cmd.Flags().StringVar(&customer.Location, "location", "", "delivery location")
	return cmd
}
