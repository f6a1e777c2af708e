package static

import (
	"errors"
	"net/url"

	"isoserve/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves bucket objects over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the object routes. Get also registers HEAD.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/*", h.HandleObject)
}

// HandleObject streams the object for the request path.
func (h *Handler) HandleObject(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	p, err := url.PathUnescape(c.Path())
	if err != nil {
		return fiber.ErrBadRequest
	}

	head := c.Method() == fiber.MethodHead

	var obj *Object
	if head {
		obj, err = h.service.Stat(c.Context(), p)
	} else {
		obj, err = h.service.Open(c.Context(), p)
	}
	if err != nil {
		if !errors.Is(err, fiber.ErrNotFound) {
			l.Error("Object lookup failed", zap.String("path", p), zap.Error(err))
		}
		return err
	}

	c.Set(fiber.HeaderContentType, obj.ContentType)
	if head {
		c.Response().SkipBody = true
		c.Response().Header.SetContentLength(int(obj.Size))
		return nil
	}
	return c.SendStream(obj.Body, int(obj.Size))
}
