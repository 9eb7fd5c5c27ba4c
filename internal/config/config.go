package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Printer   PrinterConfig
	Ledger    LedgerConfig
	Receipt   ReceiptConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type PrinterConfig struct {
	Type    string // "network", "usb", or "none"
	Address string // host:port for network printers
	USBPath string // device file for USB printers
	Timeout time.Duration
	Width   int // print width in characters (32 for 58mm paper)
}

type LedgerConfig struct {
	Dir string
}

type ReceiptConfig struct {
	Label    string // venue label printed at the top of every ticket
	Currency string // currency glyph used on amounts
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "pos-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("PRINTER_TYPE", "network")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_USB_PATH", "")
	viper.SetDefault("PRINTER_TIMEOUT_SECONDS", 5)
	viper.SetDefault("PRINTER_WIDTH", 32)
	viper.SetDefault("LEDGER_DIR", "./order_logs")
	viper.SetDefault("RECEIPT_LABEL", "PURE")
	viper.SetDefault("RECEIPT_CURRENCY", "€")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			Address: viper.GetString("PRINTER_ADDRESS"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Timeout: time.Duration(viper.GetInt("PRINTER_TIMEOUT_SECONDS")) * time.Second,
			Width:   viper.GetInt("PRINTER_WIDTH"),
		},
		Ledger: LedgerConfig{
			Dir: viper.GetString("LEDGER_DIR"),
		},
		Receipt: ReceiptConfig{
			Label:    viper.GetString("RECEIPT_LABEL"),
			Currency: viper.GetString("RECEIPT_CURRENCY"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}
