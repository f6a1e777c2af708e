package server

import (
	"net"
	"strconv"

	"isoserve/core/middleware/isolation"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen on all interfaces.
	Port int `mapstructure:"port" default:"8000"`
	// Root is the document root the static responder serves from.
	Root string `mapstructure:"root" default:"."`
	// Index is the file served for directory requests.
	Index string `mapstructure:"index" default:"index.html"`
	// Browse enables generated directory listings when no index file exists.
	Browse bool `mapstructure:"browse" default:"true"`
	// Headers are appended to every response after the library's own headers.
	// Defaults to the cross-origin isolation headers.
	Headers []isolation.Header `mapstructure:"-"`
}

// Addr returns the listen address, 0.0.0.0:<port>.
func (c Config) Addr() string {
	return net.JoinHostPort("0.0.0.0", strconv.Itoa(c.Port))
}

// URL returns the address users should open in a browser.
func (c Config) URL() string {
	return "http://localhost:" + strconv.Itoa(c.Port)
}

// withDefaults returns a copy of c with empty fields filled in.
// The copy owns its Headers slice so callers cannot mutate it later.
func (c Config) withDefaults() Config {
	if c.Root == "" {
		c.Root = "."
	}
	if c.Index == "" {
		c.Index = "index.html"
	}
	if len(c.Headers) == 0 {
		c.Headers = isolation.DefaultHeaders()
	} else {
		c.Headers = append([]isolation.Header(nil), c.Headers...)
	}
	return c
}
