package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	Shop   ShopConfig
	Email  EmailConfig
	OTP    OTPConfig
	Log    LogConfig
	CORS   CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds session token signing and expiry settings.
type JWTConfig struct {
	Secret        string        `mapstructure:"secret"`
	SessionExpiry time.Duration `mapstructure:"session_expiry"`
	Issuer        string        `mapstructure:"issuer"`
}

// ShopConfig holds the shop's fixed identity used on every bill.
// PasswordHash is the bcrypt hash of the shared operator password.
type ShopConfig struct {
	Name         string `mapstructure:"name"`
	GSTIN        string `mapstructure:"gstin"`
	StateCode    string `mapstructure:"state_code"`
	PasswordHash string `mapstructure:"password_hash"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// OTPConfig holds one-time code settings.
type OTPConfig struct {
	ExpiryMinutes int `mapstructure:"expiry_minutes"`
	CodeLength    int `mapstructure:"code_length"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the JEWELPOS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("JEWELPOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "jewelpos")
	v.SetDefault("db.password", "jewelpos_secret")
	v.SetDefault("db.name", "jewelpos_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.session_expiry", "12h")
	v.SetDefault("jwt.issuer", "jewelpos")

	// Shop defaults. State code 27 is Maharashtra; the GSTIN prefix on every
	// customer GSTIN is compared against this for the IGST default.
	v.SetDefault("shop.name", "Jewel POS")
	v.SetDefault("shop.gstin", "")
	v.SetDefault("shop.state_code", "27")
	v.SetDefault("shop.password_hash", "")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "noreply@jewelpos.local")
	v.SetDefault("email.from_name", "Jewel POS")

	// OTP defaults
	v.SetDefault("otp.expiry_minutes", 10)
	v.SetDefault("otp.code_length", 6)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "JEWELPOS_SERVER_PORT",
		"server.read_timeout":  "JEWELPOS_SERVER_READ_TIMEOUT",
		"server.write_timeout": "JEWELPOS_SERVER_WRITE_TIMEOUT",
		"server.environment":   "JEWELPOS_SERVER_ENVIRONMENT",
		"db.host":              "JEWELPOS_DB_HOST",
		"db.port":              "JEWELPOS_DB_PORT",
		"db.user":              "JEWELPOS_DB_USER",
		"db.password":          "JEWELPOS_DB_PASSWORD",
		"db.name":              "JEWELPOS_DB_NAME",
		"db.sslmode":           "JEWELPOS_DB_SSLMODE",
		"db.max_open":          "JEWELPOS_DB_MAX_OPEN",
		"db.max_idle":          "JEWELPOS_DB_MAX_IDLE",
		"jwt.secret":           "JEWELPOS_JWT_SECRET",
		"jwt.session_expiry":   "JEWELPOS_JWT_SESSION_EXPIRY",
		"jwt.issuer":           "JEWELPOS_JWT_ISSUER",
		"shop.name":            "JEWELPOS_SHOP_NAME",
		"shop.gstin":           "JEWELPOS_SHOP_GSTIN",
		"shop.state_code":      "JEWELPOS_SHOP_STATE_CODE",
		"shop.password_hash":   "JEWELPOS_SHOP_PASSWORD_HASH",
		"email.provider":       "JEWELPOS_EMAIL_PROVIDER",
		"email.region":         "JEWELPOS_EMAIL_REGION",
		"email.from_address":   "JEWELPOS_EMAIL_FROM_ADDRESS",
		"email.from_name":      "JEWELPOS_EMAIL_FROM_NAME",
		"otp.expiry_minutes":   "JEWELPOS_OTP_EXPIRY_MINUTES",
		"otp.code_length":      "JEWELPOS_OTP_CODE_LENGTH",
		"log.level":            "JEWELPOS_LOG_LEVEL",
		"log.format":           "JEWELPOS_LOG_FORMAT",
		"cors.allowed_origins": "JEWELPOS_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if JEWELPOS_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("JEWELPOS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:        v.GetString("jwt.secret"),
		SessionExpiry: v.GetDuration("jwt.session_expiry"),
		Issuer:        v.GetString("jwt.issuer"),
	}
	cfg.Shop = ShopConfig{
		Name:         v.GetString("shop.name"),
		GSTIN:        v.GetString("shop.gstin"),
		StateCode:    v.GetString("shop.state_code"),
		PasswordHash: v.GetString("shop.password_hash"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
	cfg.OTP = OTPConfig{
		ExpiryMinutes: v.GetInt("otp.expiry_minutes"),
		CodeLength:    v.GetInt("otp.code_length"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	return cfg, nil
}
