package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// PublicBaseURL is the externally reachable base URL, used in mailed links.
	PublicBaseURL string `mapstructure:"PUBLIC_BASE_URL" default:"http://localhost:8080"`

	// Store holds the hosted row-store configuration.
	Store StoreConfig `mapstructure:",squash"`

	// Redis holds the cache configuration.
	Redis RedisConfig `mapstructure:",squash"`

	// Auth holds token and passcode settings.
	Auth AuthConfig `mapstructure:",squash"`

	// SMTP holds outbound mail settings.
	SMTP SMTPConfig `mapstructure:",squash"`
}

// StoreConfig holds the credentials for the hosted row store.
type StoreConfig struct {
	// URL is the base URL of the row-store REST API.
	URL string `mapstructure:"STORE_URL" required:"true"`
	// APIKey authenticates requests against the row store.
	APIKey string `mapstructure:"STORE_API_KEY" required:"true"`
}

// RedisConfig holds cache connection details.
type RedisConfig struct {
	// URL is the redis connection URL, e.g. redis://localhost:6379/0.
	URL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
}

// AuthConfig holds session-token and one-time-passcode settings.
type AuthConfig struct {
	// TokenSecret signs session and reset tokens.
	TokenSecret string `mapstructure:"AUTH_TOKEN_SECRET" required:"true"`
	// SessionTTLHours is the lifetime of a session token.
	SessionTTLHours int `mapstructure:"SESSION_TTL_HOURS" default:"168"`
	// OTPTTLSeconds is how long an emailed passcode stays valid.
	OTPTTLSeconds int `mapstructure:"OTP_TTL_SECONDS" default:"600"`
	// OTPResendCooldownSeconds is the minimum gap between passcode resends.
	OTPResendCooldownSeconds int `mapstructure:"OTP_RESEND_COOLDOWN_SECONDS" default:"60"`
}

// SMTPConfig holds outbound mail connection details.
type SMTPConfig struct {
	// Host is the SMTP server hostname.
	Host string `mapstructure:"SMTP_HOST" default:"localhost"`
	// Port is the SMTP server port.
	Port int `mapstructure:"SMTP_PORT" default:"1025"`
	// From is the sender address for outbound mail.
	From string `mapstructure:"SMTP_FROM" default:"no-reply@backoffice.local"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields, binds env keys and sets defaults in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
