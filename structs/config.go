package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Database  *DatabaseConfig
	Cache     *CacheConfig
	Catalog   *CatalogConfig
	Scraper   *ScraperConfig
	RateLimit *RateLimitConfig
	Admin     *AdminConfig
}

type ServerConfig struct {
	AppName        string        // Comparador
	Environment    string        // development, production
	Port           string        // :5001
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposedHeaders   []string
	AllowCredentials bool
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration // in seconds
	MaxIdleTime  time.Duration // in seconds
	ReadTimeout  time.Duration // in seconds
	WriteTimeout time.Duration // in seconds
}

type CacheConfig struct {
	Address         string
	Username        string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	MaxIdleConns    int
	PoolTimeout     time.Duration
	IdleTimeout     time.Duration
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
	ProductViewTTL  time.Duration
}

// CatalogConfig holds the reconciliation policy knobs: which stores are
// preferred for descriptions, when a description counts as meaningful, and
// the cover defaults used when a store reports no image or category.
type CatalogConfig struct {
	DescriptionPriority  []string // store names, best description source first
	MinDescriptionLength int      // shorter descriptions are ignored
	LastResortStore      string   // final description fallback
	DefaultCategory      string
	PlaceholderImage     string
}

type ScraperConfig struct {
	UserAgent      string
	AcceptLanguage string
	RequestTimeout time.Duration
	RequestsPerMin int    // rate limit across all targets
	TargetsFile    string // JSON file with product_key -> store -> url
}

type RateLimitConfig struct {
	Enabled       bool
	GeneralLimit  int
	GeneralWindow time.Duration
	ListingLimit  int
	ListingWindow time.Duration
}

type AdminConfig struct {
	Token string // X-Admin-Token for coupon insertion
}
