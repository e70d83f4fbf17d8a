package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"solestore/internal/catalog"

	"github.com/spf13/cobra"
)

func newProductsCmd() *cobra.Command {
	var (
		style  string
		search string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List catalog products, filtered by style and search term",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			// a failed load is already logged; the empty catalog still
			// renders as "no products found"
			_ = a.catalog.Load(cmd.Context())

			a.catalog.ApplyFilter(catalog.Filter{Style: style, Search: search})
			if all {
				a.catalog.Advance(a.catalog.Len())
			}

			out := cmd.OutOrStdout()
			if a.catalog.Len() == 0 {
				fmt.Fprintln(out, mutedStyle.Render("No products found"))
				return nil
			}

			renderProducts(out, a.catalog.VisibleSlice())

			reader := bufio.NewReader(cmd.InOrStdin())
			for a.catalog.HasMore() {
				fmt.Fprintf(out, "%d of %d shown. View more? [y/N] ",
					a.catalog.VisibleCount(), a.catalog.Len())

				answer, err := reader.ReadString('\n')
				if err != nil || !isYes(answer) {
					break
				}

				before := a.catalog.VisibleCount()
				a.catalog.Advance(a.cfg.PageSize)
				renderProducts(out, a.catalog.VisibleSlice()[before:])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&style, "style", "", "filter by style tag, e.g. Sneakers")
	cmd.Flags().StringVar(&search, "search", "", "filter by search term")
	cmd.Flags().BoolVar(&all, "all", false, "show every matching product")
	return cmd
}

func newProductCmd() *cobra.Command {
	var addToCart bool

	cmd := &cobra.Command{
		Use:   "product <id>",
		Short: "Show one product's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			_ = a.catalog.Load(cmd.Context())

			out := cmd.OutOrStdout()
			p, err := a.catalog.Get(args[0])
			if errors.Is(err, catalog.ErrProductNotFound) {
				fmt.Fprintln(out, mutedStyle.Render("Product not found."))
				return nil
			}
			if err != nil {
				return err
			}

			renderProductDetail(out, p)

			if addToCart {
				if err := a.cart.AddItem(cmd.Context(), p); err != nil {
					return err
				}
				fmt.Fprintf(out, "Added to cart. %d item(s) in cart.\n", a.cart.ItemCount())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&addToCart, "add", false, "add the product to the cart")
	return cmd
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
