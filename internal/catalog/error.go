package catalog

import "errors"

var (
	// -- Source failures --
	ErrFetchFailed      = errors.New("failed to fetch catalog")
	ErrMalformedCatalog = errors.New("malformed catalog document")

	// -- Resource state --
	ErrProductNotFound = errors.New("product not found")
)
