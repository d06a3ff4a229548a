package slotbook

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/slotbook/slotbook-sdk-go/internal/httpx"
	"github.com/slotbook/slotbook-sdk-go/internal/version"
	"github.com/slotbook/slotbook-sdk-go/slotbook/datetime"
)

// DefaultTimeout bounds each call when WithTimeout is not given.
const DefaultTimeout = httpx.DefaultTimeout

// Logger is the interface for debug logging.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
}

// LoggerFunc is a function adapter for Logger.
type LoggerFunc func(msg string, keysAndValues ...any)

// Debug implements Logger.
func (f LoggerFunc) Debug(msg string, keysAndValues ...any) {
	f(msg, keysAndValues...)
}

// ZerologLogger adapts a zerolog.Logger to Logger.
type ZerologLogger struct {
	L zerolog.Logger
}

// Debug implements Logger.
func (z ZerologLogger) Debug(msg string, keysAndValues ...any) {
	z.L.Debug().Fields(keysAndValues).Msg(msg)
}

// Config holds the SDK configuration. It is fixed once the client is built.
type Config struct {
	// BaseURL is the platform address without the /api/v1 prefix.
	BaseURL string
	// AccessToken is sent as a bearer token on every call.
	AccessToken string
	// PublishableKey is the payment provider's public key. The SDK only
	// carries it for front ends completing a payment intent.
	PublishableKey string

	// Timeout bounds each call from start to decoded response.
	Timeout time.Duration

	// Headers are additional headers to include in all requests.
	Headers map[string]string
	// UserAgent is the custom user agent string.
	UserAgent string
	// Logger is the debug logger.
	Logger Logger
	// DateTimeFormatter renders booking times; nil selects datetime.Default.
	DateTimeFormatter datetime.Formatter
}

// Option is a functional option for configuring the client.
type Option func(*Config)

// WithBaseURL sets the platform address. A trailing slash is dropped.
func WithBaseURL(url string) Option {
	return func(c *Config) {
		c.BaseURL = strings.TrimSuffix(url, "/")
	}
}

// WithAccessToken sets the bearer token.
func WithAccessToken(token string) Option {
	return func(c *Config) {
		c.AccessToken = token
	}
}

// WithPublishableKey sets the payment-provider publishable key.
func WithPublishableKey(key string) Option {
	return func(c *Config) {
		c.PublishableKey = key
	}
}

// WithTimeout sets the per-call timeout. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.Timeout = d
		}
	}
}

// WithHeaders sets additional headers for all requests.
func WithHeaders(headers map[string]string) Option {
	return func(c *Config) {
		if c.Headers == nil {
			c.Headers = make(map[string]string)
		}
		for k, v := range headers {
			c.Headers[k] = v
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(ua string) Option {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// WithLogger sets the debug logger.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// WithZerolog routes debug logging through l.
func WithZerolog(l zerolog.Logger) Option {
	return WithLogger(ZerologLogger{L: l})
}

// WithDebug enables debug logging to stderr.
func WithDebug(enabled bool) Option {
	return func(c *Config) {
		if enabled {
			c.Logger = ZerologLogger{L: newDebugLogger(os.Stderr)}
		}
	}
}

func newDebugLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Str("sdk", version.SDKName).Logger()
}

// WithDateTimeFormatter pins the strategy used to render booking times.
func WithDateTimeFormatter(f datetime.Formatter) Option {
	return func(c *Config) {
		c.DateTimeFormatter = f
	}
}

// newDefaultConfig creates a new config with default values.
func newDefaultConfig() *Config {
	return &Config{
		Timeout:   DefaultTimeout,
		Headers:   make(map[string]string),
		UserAgent: version.UserAgent(),
	}
}

// resolveConfig applies options and resolves derived values.
func resolveConfig(opts ...Option) *Config {
	cfg := newDefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.DateTimeFormatter == nil {
		cfg.DateTimeFormatter = datetime.Default()
	}
	return cfg
}
