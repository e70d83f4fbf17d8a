package catalog

import (
	"encoding/json"
	"fmt"
)

// Product is one purchasable catalog entry. The catalog document is
// published externally and immutable for the session.
type Product struct {
	ID          ID        `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Rating      float64   `json:"rating"`
	Styles      StyleTags `json:"style"`
	Description string    `json:"description,omitempty"`
}

// ID is a product identifier. The published document has carried both
// numeric and string identifiers, so both decode.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("product id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// StyleTags accepts both shapes the catalog document uses for styles:
// a single string or an array of strings.
type StyleTags []string

func (t *StyleTags) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = StyleTags{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("style tags: %w", err)
	}
	*t = StyleTags(many)
	return nil
}
