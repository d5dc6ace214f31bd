// Command storefront is the composition root for the cart core: it wires
// configuration, logging, a storage backend, the catalog, and the cart
// aggregate together, then walks one reference shopping session so the
// wiring can be exercised end to end without any UI.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"globalstore/internal/cart"
	"globalstore/internal/catalog"
	"globalstore/internal/config"
	"globalstore/internal/logger"
	"globalstore/internal/storage"
)

func buildStore(cfg *config.Config) (storage.CartStore, error) {
	switch cfg.Storage.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.Storage.RedisHost, cfg.Storage.RedisPort),
			Password: cfg.Storage.RedisPassword,
			DB:       cfg.Storage.RedisDB,
		})
		return storage.NewRedisStore(client, cfg.Storage.RedisKey, 0), nil
	case "file":
		return storage.NewFileStore(cfg.Storage.FilePath), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func buildRules(cfg *config.Config) cart.RuleTable {
	rules := make(cart.RuleTable, len(cfg.Discounts))
	for _, r := range cfg.Discounts {
		rules[r.Code] = cart.Rule{Percent: r.Percent, MinSubtotal: r.MinSubtotal}
	}
	return rules
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting storefront cart core",
		zap.String("env", cfg.Log.Env),
		zap.String("storage", cfg.Storage.Backend),
		zap.String("currency", cfg.Shop.Currency),
	)

	store, err := buildStore(cfg)
	if err != nil {
		log.Fatal("Failed to build cart store", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	shop := catalog.NewMemoryCatalog(catalog.SeedProducts())
	basket := cart.New(ctx, store, buildRules(cfg), cart.ShippingPolicy{
		FreeThreshold: cfg.Shop.FreeShippingThreshold,
		FlatFee:       cfg.Shop.ShippingFee,
	}, log)

	// The notification surface: a UI would re-render from this snapshot.
	unsubscribe := basket.Subscribe(func(s cart.Snapshot) {
		log.Info("Cart changed",
			zap.Int("item_count", s.ItemCount),
			zap.Int64("subtotal", s.Subtotal),
			zap.Int64("total", s.Total),
		)
	})
	defer unsubscribe()

	if err := runSession(ctx, basket, shop, log); err != nil {
		log.Fatal("Reference session failed", zap.Error(err))
	}

	summary := basket.OrderSummary()
	encoded, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.Fatal("Failed to encode order summary", zap.Error(err))
	}
	fmt.Println(string(encoded))
}

// runSession walks the reference shopping session: browse a category, add
// items, adjust a quantity, and redeem a discount code.
func runSession(ctx context.Context, basket *cart.Cart, shop catalog.Catalog, log *zap.Logger) error {
	for _, p := range shop.ListByCategory("electronics") {
		log.Info("Browsing product",
			zap.String("id", p.ID),
			zap.String("name", p.Name),
			zap.Int64("unit_price", p.UnitPrice),
		)
	}

	earbuds, err := shop.GetProductByID("p7")
	if err != nil {
		return fmt.Errorf("resolve product p7: %w", err)
	}
	charger, err := shop.GetProductByID("p8")
	if err != nil {
		return fmt.Errorf("resolve product p8: %w", err)
	}

	if _, err := basket.AddItem(ctx, *earbuds, 1); err != nil {
		return fmt.Errorf("add %s: %w", earbuds.ID, err)
	}
	if _, err := basket.AddItem(ctx, *charger, 1); err != nil {
		return fmt.Errorf("add %s: %w", charger.ID, err)
	}
	if err := basket.SetQuantity(ctx, charger.ID, 2); err != nil {
		return fmt.Errorf("set quantity %s: %w", charger.ID, err)
	}

	if percent, err := basket.ApplyDiscount(ctx, "welcome10"); err != nil {
		log.Warn("Discount not applied", zap.Error(err))
	} else {
		log.Info("Discount applied", zap.Int("percent", percent))
	}

	return nil
}
