package main

import (
	"fmt"
	"io"

	"solestore/internal/cart"
	"solestore/internal/catalog"
	"solestore/internal/utils"

	"github.com/charmbracelet/lipgloss"
)

var (
	nameStyle   = lipgloss.NewStyle().Bold(true)
	priceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	ratingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	mutedStyle  = lipgloss.NewStyle().Faint(true)
)

func renderProducts(w io.Writer, products []catalog.Product) {
	for _, p := range products {
		fmt.Fprintf(w, "%s  %s  %s  %s\n",
			mutedStyle.Render("#"+string(p.ID)),
			nameStyle.Render(p.Name),
			priceStyle.Render(utils.FormatPrice(p.Price)),
			ratingStyle.Render(fmt.Sprintf("★ %.1f", p.Rating)),
		)
	}
}

func renderProductDetail(w io.Writer, p catalog.Product) {
	fmt.Fprintln(w, nameStyle.Render(p.Name))
	fmt.Fprintln(w, priceStyle.Render(utils.FormatPrice(p.Price)))
	fmt.Fprintln(w, ratingStyle.Render(fmt.Sprintf("★ %.1f", p.Rating)))
	if len(p.Styles) > 0 {
		fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%v", []string(p.Styles))))
	}
	if p.Description != "" {
		fmt.Fprintln(w, p.Description)
	} else {
		fmt.Fprintln(w, mutedStyle.Render("No description available."))
	}
}

func renderCart(w io.Writer, lines []cart.Line, total float64, itemCount int) {
	if len(lines) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("Your cart is empty."))
		return
	}

	for i, l := range lines {
		fmt.Fprintf(w, "%d. %s x%d  %s\n",
			i+1,
			nameStyle.Render(l.Name),
			l.Quantity,
			priceStyle.Render(utils.FormatPrice(l.Subtotal())),
		)
	}
	fmt.Fprintf(w, "\n%d item(s)  Total: %s\n", itemCount, priceStyle.Render(utils.FormatPrice(total)))
}
