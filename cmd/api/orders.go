package main

import (
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"petshop-orders/internal/adapters/storage"
	"petshop-orders/internal/domain/orders"
	"petshop-orders/internal/platform/config"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Inspect the local order cache",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print cached orders as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.Load()
		if cfg.OrderCache == config.CacheMemory || cfg.OrderCache == config.CacheNone {
			// nada persistente que listar fuera del proceso del servidor
			return writeOrders(cmd, nil)
		}

		cache, closeCache, err := storage.OpenOrdersCache(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer func() { _ = closeCache() }()

		list, err := cache.List(cmd.Context())
		if err != nil {
			return err
		}
		return writeOrders(cmd, list)
	},
}

func init() {
	ordersCmd.AddCommand(ordersListCmd)
}

func writeOrders(cmd *cobra.Command, list []orders.CachedOrder) error {
	if list == nil {
		list = []orders.CachedOrder{}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
