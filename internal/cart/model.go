package cart

import "solestore/internal/catalog"

// Line is one product's quantity entry in the cart. Quantity is always
// at least 1; a line that would reach zero is removed instead of being
// persisted at zero.
type Line struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Subtotal is price times quantity for this line.
func (l Line) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}
