package slotbook

import (
	"github.com/slotbook/slotbook-sdk-go/internal/httpx"
	"github.com/slotbook/slotbook-sdk-go/slotbook/resources"
)

// Client is the main Slotbook SDK client. It is safe for concurrent use;
// nothing in it changes after NewClient returns.
type Client struct {
	cfg       *Config
	transport *httpx.Transport

	users        *resources.UsersResource
	resources    *resources.ResourcesResource
	venues       *resources.VenuesResource
	availability *resources.AvailabilityResource
	bookings     *resources.BookingsResource
}

// NewClient creates a new Slotbook client with the given options.
func NewClient(opts ...Option) (*Client, error) {
	cfg := resolveConfig(opts...)

	if cfg.BaseURL == "" {
		return nil, ErrNoBaseURL
	}
	if cfg.AccessToken == "" {
		return nil, ErrNoAuth
	}

	transport := httpx.NewTransport(httpx.Config{
		BaseURL:     cfg.BaseURL,
		AccessToken: cfg.AccessToken,
		UserAgent:   cfg.UserAgent,
		Headers:     cfg.Headers,
		Timeout:     cfg.Timeout,
		Logger:      wrapLogger(cfg.Logger),
	})

	c := &Client{
		cfg:       cfg,
		transport: transport,
	}
	c.initResources()

	return c, nil
}

// wrapLogger wraps a slotbook.Logger to an httpx.Logger.
func wrapLogger(l Logger) httpx.Logger {
	if l == nil {
		return nil
	}
	return l
}

func (c *Client) initResources() {
	c.users = resources.NewUsersResource(c.transport)
	c.resources = resources.NewResourcesResource(c.transport)
	c.venues = resources.NewVenuesResource(c.transport)
	c.availability = resources.NewAvailabilityResource(c.transport)
	c.bookings = resources.NewBookingsResource(c.transport, c.cfg.DateTimeFormatter)
}

// Close releases idle connections. The client stays usable afterwards.
func (c *Client) Close() error {
	c.transport.CloseIdleConnections()
	return nil
}

// GetConfig returns a copy of the client configuration.
func (c *Client) GetConfig() Config {
	cfg := *c.cfg
	cfg.Headers = make(map[string]string, len(c.cfg.Headers))
	for k, v := range c.cfg.Headers {
		cfg.Headers[k] = v
	}
	return cfg
}

// PublishableKey returns the payment-provider publishable key, if configured.
func (c *Client) PublishableKey() string {
	return c.cfg.PublishableKey
}

// Users returns the Users resource.
func (c *Client) Users() *resources.UsersResource {
	return c.users
}

// Resources returns the Resources resource.
func (c *Client) Resources() *resources.ResourcesResource {
	return c.resources
}

// Venues returns the Venues resource.
func (c *Client) Venues() *resources.VenuesResource {
	return c.venues
}

// Availability returns the Availability resource.
func (c *Client) Availability() *resources.AvailabilityResource {
	return c.availability
}

// Bookings returns the Bookings resource.
func (c *Client) Bookings() *resources.BookingsResource {
	return c.bookings
}
