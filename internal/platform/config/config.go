package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Wallet
	WalletOpeningBalance decimal.Decimal

	// Email promoted to the admin role at startup, if the account exists
	AdminEmail string

	// Payment gateway callback verification
	PaymentKeyID     string
	PaymentKeySecret string

	// Image storage (S3 or MinIO)
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSEndpoint        string
	S3BucketName       string
	S3UseSSL           string

	// Optional redis cache for like counts
	RedisAddr     string
	RedisPassword string

	// Analytics
	PosthogAPIKey string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "168h")
	viper.SetDefault("JWT_ISSUER", "elite-crew-backend")
	viper.SetDefault("WALLET_OPENING_BALANCE", "70000")
	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("PAYMENT_KEY_ID", "")
	viper.SetDefault("PAYMENT_KEY_SECRET", "")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("AWS_ACCESS_KEY_ID", "")
	viper.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	viper.SetDefault("AWS_ENDPOINT", "")
	viper.SetDefault("S3_BUCKET_NAME", "elite-crew-uploads")
	viper.SetDefault("S3_USE_SSL", "true")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 24 * 7
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	openingStr := viper.GetString("WALLET_OPENING_BALANCE")
	opening, err := decimal.NewFromString(openingStr)
	if err != nil || opening.IsNegative() {
		opening = decimal.NewFromInt(70000)
		log.Printf("Warning: Invalid value for WALLET_OPENING_BALANCE ('%s'). Defaulting to %s.\n", openingStr, opening.String())
	}
	cfg.WalletOpeningBalance = opening

	cfg.AdminEmail = viper.GetString("ADMIN_EMAIL")

	cfg.PaymentKeyID = viper.GetString("PAYMENT_KEY_ID")
	cfg.PaymentKeySecret = viper.GetString("PAYMENT_KEY_SECRET")
	if cfg.PaymentKeySecret == "" {
		log.Println("Warning: PAYMENT_KEY_SECRET not set. Payment verification will reject all callbacks.")
	}

	cfg.AWSRegion = viper.GetString("AWS_REGION")
	cfg.AWSAccessKeyID = viper.GetString("AWS_ACCESS_KEY_ID")
	cfg.AWSSecretAccessKey = viper.GetString("AWS_SECRET_ACCESS_KEY")
	cfg.AWSEndpoint = viper.GetString("AWS_ENDPOINT")
	cfg.S3BucketName = viper.GetString("S3_BUCKET_NAME")
	cfg.S3UseSSL = viper.GetString("S3_USE_SSL")
	if cfg.AWSAccessKeyID == "" {
		log.Println("Warning: AWS_ACCESS_KEY_ID not set. Image uploads will be disabled.")
	}

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google OAuth will not function.")
	}

	return cfg, nil
}
