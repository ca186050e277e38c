package config

// PricingConfig holds the default market prices applied when a simulation
// request does not supply its own
type PricingConfig struct {
	// Bunker fuel price in USD per metric ton
	BunkerPriceUSDPerTon float64 `mapstructure:"bunker_price_usd_per_ton" validate:"gt=0"`

	// CO2 allowance price in USD per metric ton of CO2
	CO2PriceUSDPerTon float64 `mapstructure:"co2_price_usd_per_ton" validate:"min=0"`
}
