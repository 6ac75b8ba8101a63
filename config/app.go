package config

import (
	"sync"
	"time"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName string
	Port    string
	Env     string
	Debug   bool

	// search API
	APIBaseURL  string
	APITimeout  time.Duration
	APIRetries  int // declared for deployments; the client never retries on its own
	APILang     string
	APICurrency string
	CDNHost     string
	PageSize    int

	UseFixtures bool
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = FromEnv()
	})
}

// FromEnv builds a Config from the current environment without touching the
// global.
func FromEnv() *Config {
	return &Config{
		AppName:     GetEnv("APP_NAME", "storefront"),
		Port:        GetEnv("PORT", "8080"),
		Env:         GetEnv("APP_ENV", "development"),
		Debug:       GetEnvBool("DEBUG", false),
		APIBaseURL:  GetEnv("API_BASE_URL", "https://api.ebebek.com/ebebekwebservices/v2/ebebek"),
		APITimeout:  time.Duration(GetEnvInt("API_TIMEOUT_MS", 15000)) * time.Millisecond,
		APIRetries:  GetEnvInt("API_RETRY_COUNT", 3),
		APILang:     GetEnv("API_LANG", "tr"),
		APICurrency: GetEnv("API_CURRENCY", "TRY"),
		CDNHost:     GetEnv("CDN_HOST", "https://cdn.ebebek.com"),
		PageSize:    GetEnvInt("PAGE_SIZE", 24),
		UseFixtures: GetEnvBool("USE_FIXTURES", false),
	}
}

// Get returns AppConfig, loading it on first use.
func Get() *Config {
	LoadAppConfig()
	return AppConfig
}
