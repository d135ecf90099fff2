// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"time"

	"github.com/spf13/viper"
)

// Supported TOKEN_TYPE values.
const (
	TokenPaseto = "paseto"
	TokenJWT    = "jwt"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBDriver             string        `mapstructure:"DB_DRIVER"`
	DBSource             string        `mapstructure:"DB_SOURCE"`
	ServerAddress        string        `mapstructure:"SERVER_ADDRESS"`
	TokenSymmetricKey    string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	TokenType            string        `mapstructure:"TOKEN_TYPE"`
	AccessTokenDuration  time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	RefreshTokenDuration time.Duration `mapstructure:"REFRESH_TOKEN_DURATION"`
	Environement         string        `mapstructure:"GO_ENV"`

	// RedisAddr enables the product catalog cache when not empty.
	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	ProductCacheTTL time.Duration `mapstructure:"PRODUCT_CACHE_TTL"`

	// MaturitySweepSchedule is a cron spec. Empty disables the sweep.
	MaturitySweepSchedule string `mapstructure:"MATURITY_SWEEP_SCHEDULE"`

	WalletCurrency string `mapstructure:"WALLET_CURRENCY"`
	SignupBalance  string `mapstructure:"SIGNUP_BALANCE"`
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("TOKEN_TYPE", TokenPaseto)
	viper.SetDefault("PRODUCT_CACHE_TTL", 5*time.Minute)
	viper.SetDefault("WALLET_CURRENCY", "INR")
	viper.SetDefault("SIGNUP_BALANCE", "0")

	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = viper.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
