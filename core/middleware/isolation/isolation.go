package isolation

import (
	"github.com/gofiber/fiber/v2"
)

const (
	HeaderOpenerPolicy   = "Cross-Origin-Opener-Policy"
	HeaderEmbedderPolicy = "Cross-Origin-Embedder-Policy"
)

// Header is a single response header appended by the middleware.
type Header struct {
	Name  string
	Value string
}

// DefaultHeaders returns the headers that make a page cross-origin isolated,
// in the order they are written.
func DefaultHeaders() []Header {
	return []Header{
		{Name: HeaderOpenerPolicy, Value: "same-origin"},
		{Name: HeaderEmbedderPolicy, Value: "require-corp"},
	}
}

// Config defines the config for the middleware.
type Config struct {
	// Headers are appended to every response, in order.
	// Defaults to DefaultHeaders when empty.
	Headers []Header
}

// New returns a middleware that appends the configured headers once the rest
// of the chain has produced its response. Errors from the chain are rendered
// by the application error handler first, so error pages carry the headers too.
func New(config ...Config) fiber.Handler {
	var cfg Config
	if len(config) > 0 {
		cfg = config[0]
	}
	headers := cfg.Headers
	if len(headers) == 0 {
		headers = DefaultHeaders()
	}

	return func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		Apply(c, headers)
		return nil
	}
}

// Apply sets headers on the response of c. Existing values with the same
// name are replaced.
func Apply(c *fiber.Ctx, headers []Header) {
	for _, h := range headers {
		c.Set(h.Name, h.Value)
	}
}
