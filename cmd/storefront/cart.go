package main

import (
	"errors"
	"fmt"
	"strconv"

	"solestore/internal/catalog"

	"github.com/spf13/cobra"
)

func newCartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			renderCart(cmd.OutOrStdout(), a.cart.Lines(), a.cart.Total(), a.cart.ItemCount())
			return nil
		},
	}

	cmd.AddCommand(
		newCartAddCmd(),
		newCartRemoveCmd(),
		newCartIncreaseCmd(),
		newCartDecreaseCmd(),
		newCartClearCmd(),
	)
	return cmd
}

func newCartAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.catalog.Load(cmd.Context()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			p, err := a.catalog.Get(args[0])
			if errors.Is(err, catalog.ErrProductNotFound) {
				fmt.Fprintln(out, mutedStyle.Render("Product not found."))
				return err
			}
			if err != nil {
				return err
			}

			if err := a.cart.AddItem(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintf(out, "Added %s. %d item(s) in cart.\n", p.Name, a.cart.ItemCount())
			return nil
		},
	}
}

func newCartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <line>",
		Short: "Remove a cart line by its number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateLine(cmd, args[0], func(a *app, index int) error {
				return a.cart.RemoveItem(cmd.Context(), index)
			})
		},
	}
}

func newCartIncreaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "increase <line>",
		Short: "Increase a cart line's quantity by one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateLine(cmd, args[0], func(a *app, index int) error {
				return a.cart.Increase(cmd.Context(), index)
			})
		},
	}
}

func newCartDecreaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrease <line>",
		Short: "Decrease a cart line's quantity by one, removing it at zero",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateLine(cmd, args[0], func(a *app, index int) error {
				return a.cart.Decrease(cmd.Context(), index)
			})
		},
	}
}

func newCartClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.cart.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared.")
			return nil
		},
	}
}

// mutateLine runs one index-based cart mutation and re-renders the
// cart. Line numbers are 1-based on the command line.
func mutateLine(cmd *cobra.Command, arg string, op func(a *app, index int) error) error {
	index, err := parseLineNumber(arg)
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	if err := op(a, index); err != nil {
		return err
	}
	renderCart(cmd.OutOrStdout(), a.cart.Lines(), a.cart.Total(), a.cart.ItemCount())
	return nil
}

// parseLineNumber converts a 1-based command-line line number to the
// store's 0-based index.
func parseLineNumber(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid line number %q", arg)
	}
	return n - 1, nil
}
