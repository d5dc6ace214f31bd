package config

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the full storefront-core configuration.
type Config struct {
	Log       LogConfig
	Shop      ShopConfig
	Storage   StorageConfig
	Discounts []DiscountRule `validate:"dive"`
}

type LogConfig struct {
	Env string
}

// ShopConfig carries the pricing policy knobs. Amounts are integer minor
// units of Currency.
type ShopConfig struct {
	Currency              string `validate:"required,len=3"`
	FreeShippingThreshold int64  `validate:"gte=0"`
	ShippingFee           int64  `validate:"gte=0"`
}

// StorageConfig selects and parameterizes the cart storage backend.
type StorageConfig struct {
	Backend       string `validate:"oneof=file redis"`
	FilePath      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisKey      string
}

// DiscountRule is one redeemable code: a percentage off, gated by a
// minimum subtotal in minor units.
type DiscountRule struct {
	Code        string `json:"code" validate:"required"`
	Percent     int    `json:"percent" validate:"gte=0,lte=100"`
	MinSubtotal int64  `json:"min_subtotal" validate:"gte=0"`
}

// defaultDiscounts are the storefront's stock codes. They can be replaced
// wholesale via the DISCOUNT_CODES env variable (a JSON array of rules).
var defaultDiscounts = []DiscountRule{
	{Code: "WELCOME10", Percent: 10, MinSubtotal: 0},
	{Code: "SAVE15", Percent: 15, MinSubtotal: 10000},
	{Code: "SUMMER20", Percent: 20, MinSubtotal: 30000},
	{Code: "SPECIAL25", Percent: 25, MinSubtotal: 50000},
}

// Load reads configuration from the environment (optionally seeded from a
// .env file) and validates it.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("LOG_ENV", "development")
	viper.SetDefault("SHOP_CURRENCY", "SAR")
	viper.SetDefault("SHOP_FREE_SHIPPING_THRESHOLD", 20000)
	viper.SetDefault("SHOP_SHIPPING_FEE", 2500)
	viper.SetDefault("STORAGE_BACKEND", "file")
	viper.SetDefault("STORAGE_FILE_PATH", "global-store-cart.json")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_KEY", "global-store-cart")

	cfg := &Config{
		Log: LogConfig{
			Env: viper.GetString("LOG_ENV"),
		},
		Shop: ShopConfig{
			Currency:              viper.GetString("SHOP_CURRENCY"),
			FreeShippingThreshold: viper.GetInt64("SHOP_FREE_SHIPPING_THRESHOLD"),
			ShippingFee:           viper.GetInt64("SHOP_SHIPPING_FEE"),
		},
		Storage: StorageConfig{
			Backend:       viper.GetString("STORAGE_BACKEND"),
			FilePath:      viper.GetString("STORAGE_FILE_PATH"),
			RedisHost:     viper.GetString("REDIS_HOST"),
			RedisPort:     viper.GetString("REDIS_PORT"),
			RedisPassword: viper.GetString("REDIS_PASSWORD"),
			RedisDB:       viper.GetInt("REDIS_DB"),
			RedisKey:      viper.GetString("REDIS_KEY"),
		},
		Discounts: defaultDiscounts,
	}

	if raw := viper.GetString("DISCOUNT_CODES"); raw != "" {
		var rules []DiscountRule
		if err := json.Unmarshal([]byte(raw), &rules); err != nil {
			return nil, fmt.Errorf("failed to parse DISCOUNT_CODES: %w", err)
		}
		cfg.Discounts = rules
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
