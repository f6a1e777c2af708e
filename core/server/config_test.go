package server

import (
	"testing"

	"isoserve/core/middleware/isolation"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Addr(t *testing.T) {
	c := Config{Port: 8000}
	assert.Equal(t, "0.0.0.0:8000", c.Addr())
	assert.Equal(t, "http://localhost:8000", c.URL())
}

func TestConfig_WithDefaults(t *testing.T) {
	c := Config{}.withDefaults()
	assert.Equal(t, ".", c.Root)
	assert.Equal(t, "index.html", c.Index)
	assert.Equal(t, isolation.DefaultHeaders(), c.Headers)
}

func TestConfig_WithDefaultsCopiesHeaders(t *testing.T) {
	headers := []isolation.Header{{Name: "X-A", Value: "1"}}
	c := Config{Headers: headers}.withDefaults()

	headers[0].Value = "changed"
	assert.Equal(t, "1", c.Headers[0].Value)
}
