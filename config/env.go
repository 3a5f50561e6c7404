package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type (
	AppConfig struct {
		Name        string `mapstructure:"name"`
		Version     string `mapstructure:"version"`
		Port        int    `mapstructure:"port"`
		Environment string `mapstructure:"environment"`
		PathPrefix  string `mapstructure:"path_prefix"` // Optional, can be used to set a base path for the application
	}

	LoggerConfig struct {
		Level       string `mapstructure:"level"`
		Format      string `mapstructure:"format"`
		FilePath    string `mapstructure:"filepath"`
		MaxSize     int    `mapstructure:"max_size"`
		MaxAge      int    `mapstructure:"max_age"`
		MaxBackups  int    `mapstructure:"max_backups"`
		Compress    bool   `mapstructure:"compress"`
		LocalTime   bool   `mapstructure:"localTime"`
		Environment string
	}

	// AuthConfig carries the session-token contract: the signing secret,
	// the token validity window and the cookie the token travels in.
	AuthConfig struct {
		Secret       string        `mapstructure:"secret"`
		TokenTTL     time.Duration `mapstructure:"token_ttl"`
		BcryptCost   int           `mapstructure:"bcrypt_cost"`
		CookieName   string        `mapstructure:"cookie_name"`
		CookieDomain string        `mapstructure:"cookie_domain"`
	}

	// CMSConfig points at the headless CMS bucket that owns every
	// persistent record: content, user accounts and newsletter subscribers.
	CMSConfig struct {
		APIURL     string        `mapstructure:"api_url"`
		BucketSlug string        `mapstructure:"bucket_slug"`
		ReadKey    string        `mapstructure:"read_key"`
		WriteKey   string        `mapstructure:"write_key"`
		Timeout    time.Duration `mapstructure:"timeout"`
	}

	MailConfig struct {
		APIKey string `mapstructure:"api_key"`
		From   string `mapstructure:"from"`
		To     string `mapstructure:"to"`
	}

	RedisConfig struct {
		Enabled    bool   `mapstructure:"enabled"`
		Type       string `mapstructure:"type"` // NORMAL or SENTINEL
		Addrs      string `mapstructure:"addrs"`
		MasterName string `mapstructure:"master_name"`
		Password   string `mapstructure:"password"`
	}

	CacheConfig struct {
		Type       string `mapstructure:"type"` // LRU or FIFO
		Capacity   int    `mapstructure:"capacity"`
		DefaultTTL int    `mapstructure:"default_ttl"` // seconds
		RedisTTL   int    `mapstructure:"redis_ttl"`   // seconds
	}

	CORSConfig struct {
		Enabled          bool     `mapstructure:"enabled"`
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	}

	MetricsConfig struct {
		Enabled bool   `mapstructure:"enabled"`
		Path    string `mapstructure:"path"`
	}
)

type Env struct {
	AppConfig     AppConfig     `mapstructure:"app"`
	LoggerConfig  LoggerConfig  `mapstructure:"logging"`
	AuthConfig    AuthConfig    `mapstructure:"auth"`
	CMSConfig     CMSConfig     `mapstructure:"cms"`
	MailConfig    MailConfig    `mapstructure:"mail"`
	RedisConfig   RedisConfig   `mapstructure:"redis"`
	CacheConfig   CacheConfig   `mapstructure:"cache"`
	CORSConfig    CORSConfig    `mapstructure:"cors"`
	MetricsConfig MetricsConfig `mapstructure:"metrics"`
}

var env Env
var envLoaded bool

func loadEnv() Env {
	// Set up viper to read the config.yaml file
	viper.SetConfigName("config")   // Config file name without extension
	viper.SetConfigType("yaml")     // Config file type
	viper.AddConfigPath("./config") // Look for the config file in the current directory

	/*
	   AutomaticEnv will check for an environment variable any time a viper.Get request is made.
	   It will apply the following rules.
	       It will check for an environment variable with a name matching the key uppercased and prefixed with the EnvPrefix if set.
	*/
	viper.AutomaticEnv()
	viper.SetEnvPrefix("env") // will be uppercased automatically
	viper.SetEnvKeyReplacer(
		strings.NewReplacer(".", "_"),
	) // this is useful e.g. want to use . in Get() calls, but environmental variables to use _ delimiters (e.g. app.port -> APP_PORT)

	err := viper.ReadInConfig() // Read the config file
	if err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	// Secrets never live in the YAML file; bind them to plain env vars.
	viper.BindEnv("auth.secret", "JWT_SECRET")
	viper.BindEnv("cms.bucket_slug", "COSMIC_BUCKET_SLUG")
	viper.BindEnv("cms.read_key", "COSMIC_READ_KEY")
	viper.BindEnv("cms.write_key", "COSMIC_WRITE_KEY")
	viper.BindEnv("mail.api_key", "RESEND_API_KEY")

	err = viper.Unmarshal(&env)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
	env.LoggerConfig.Environment = env.AppConfig.Environment // Set the logger environment from app config
	if env.AppConfig.Environment == "production" {
		env.LoggerConfig.Level = "info" // Default to info level in production
	}

	applyDefaults(&env)

	// An absent signing secret is a fatal startup condition, not a
	// per-request error: every session in flight depends on it.
	if env.AuthConfig.Secret == "" {
		log.Fatal("auth.secret (JWT_SECRET) is not configured")
	}

	printStartupConfig(&env)

	return env
}

func applyDefaults(env *Env) {
	if env.AuthConfig.TokenTTL <= 0 {
		env.AuthConfig.TokenTTL = 7 * 24 * time.Hour
	}
	if env.AuthConfig.BcryptCost <= 0 {
		env.AuthConfig.BcryptCost = 10
	}
	if env.AuthConfig.CookieName == "" {
		env.AuthConfig.CookieName = "auth-token"
	}
	if env.CMSConfig.APIURL == "" {
		env.CMSConfig.APIURL = "https://api.cosmicjs.com/v3"
	}
	if env.CMSConfig.Timeout <= 0 {
		env.CMSConfig.Timeout = 10 * time.Second
	}
	if env.CacheConfig.Capacity <= 0 {
		env.CacheConfig.Capacity = 256
	}
	if env.CacheConfig.DefaultTTL <= 0 {
		env.CacheConfig.DefaultTTL = 60
	}
	if env.CacheConfig.RedisTTL <= 0 {
		env.CacheConfig.RedisTTL = 300
	}
	if env.MetricsConfig.Path == "" {
		env.MetricsConfig.Path = "/metrics"
	}
}

func GetEnv() *Env {
	if envLoaded {
		return &env
	}
	env = loadEnv()
	envLoaded = true
	return &env
}

// IsProduction reports whether the app runs in a production-equivalent
// environment. The session cookie is only marked Secure when this is true.
func (e *Env) IsProduction() bool {
	return e.AppConfig.Environment == "production"
}

func printStartupConfig(env *Env) {
	line := strings.Repeat("=", 40)
	fmt.Println(line)
	fmt.Println("🚀 Application Configuration")
	fmt.Println(line)

	fmt.Printf("%-15s: %s\n", "App Name", env.AppConfig.Name)
	fmt.Printf("%-15s: %s\n", "Version", env.AppConfig.Version)
	fmt.Printf("%-15s: %s\n", "Environment", env.AppConfig.Environment)
	fmt.Printf("%-15s: %d\n", "Port", env.AppConfig.Port)
	fmt.Printf("%-15s: %s\n", "Log Level", env.LoggerConfig.Level)
	fmt.Printf("%-15s: %s\n", "CMS Bucket", env.CMSConfig.BucketSlug)
	fmt.Printf("%-15s: %s\n", "Token TTL", env.AuthConfig.TokenTTL)

	fmt.Println(line)
}
