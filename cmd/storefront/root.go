package main

import (
	"solestore/internal/cart"
	"solestore/internal/catalog"
	"solestore/internal/config"
	"solestore/internal/logger"
	"solestore/internal/storage"

	"github.com/spf13/cobra"
)

// app wires the stores for one command invocation. Each run is one
// page lifecycle: the catalog is fetched at most once and the cart is
// hydrated from durable storage.
type app struct {
	cfg     *config.Config
	store   *storage.Store
	catalog *catalog.Store
	cart    *cart.Store
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)

	store, err := storage.Open(cfg.StoragePath)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		store:   store,
		catalog: catalog.NewStore(catalog.NewHTTPSource(cfg.CatalogURL), cfg.PageSize),
		cart:    cart.NewStore(cmd.Context(), cart.NewRepository(store)),
	}, nil
}

func (a *app) close() {
	_ = a.store.Close()
	logger.Sync()
}

func Execute() error {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Browse the catalog, manage the cart, place orders",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newProductsCmd(),
		newProductCmd(),
		newCartCmd(),
		newOrderCmd(),
	)
	return root.Execute()
}
