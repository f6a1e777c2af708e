package server

import (
	"fmt"
	"io"
	"net"
	"time"

	"isoserve/core/loader"
	"isoserve/core/logger"
	"isoserve/core/middleware/isolation"
	"isoserve/core/middleware/rayid"

	"github.com/fatih/color"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Server is a static file server whose responses are cross-origin isolated.
type Server struct {
	cfg    Config
	app    *fiber.App
	logger *zap.Logger
}

// New builds the Fiber application for cfg and loads the enabled features
// registered on mgr. cfg is copied; later changes to it have no effect.
func New(cfg Config, logg *zap.Logger, mgr *loader.Manager) (*Server, error) {
	s := &Server{
		cfg:    cfg.withDefaults(),
		logger: logg,
	}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true, // The banner is printed by Banner
		ErrorHandler:          s.handleError,
	})

	// 1. RayID (Must be first to trace everything)
	s.app.Use(rayid.New())
	// 2. Request logging
	s.app.Use(s.logRequest)
	// 3. Isolation headers, innermost so they land after every other header
	s.app.Use(isolation.New(isolation.Config{Headers: s.cfg.Headers}))

	if err := mgr.LoadAll(s.app); err != nil {
		return nil, err
	}

	return s, nil
}

// App returns the underlying Fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Banner writes the startup message to w. On a terminal only the URL is
// colored; the surrounding text is unchanged.
func (s *Server) Banner(w io.Writer) {
	url := color.New(color.FgGreen, color.Bold).Sprint(s.cfg.URL())
	fmt.Fprintf(w, "서버가 %s 에서 실행 중입니다.\n", url)
	fmt.Fprintln(w, "브라우저에서 위 주소로 접속하세요.")
}

// Bind opens the listening socket on all interfaces.
func (s *Server) Bind() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr(), err)
	}
	return ln, nil
}

// Serve accepts connections on ln until Shutdown is called.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("Starting server",
		zap.String("addr", ln.Addr().String()),
		zap.String("root", s.cfg.Root),
	)
	return s.app.Listener(ln)
}

// Shutdown stops accepting connections and waits for active ones to finish.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// handleError renders err with the Fiber defaults and applies the configured
// headers. It also runs for requests the HTTP parser rejects, which never
// reach the middleware chain.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	herr := fiber.DefaultErrorHandler(c, err)
	isolation.Apply(c, s.cfg.Headers)
	return herr
}

func (s *Server) logRequest(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	l := logger.WithRayID(s.logger, c)
	fields := []zap.Field{
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.String("ip", c.IP()),
		zap.Int("status", c.Response().StatusCode()),
		zap.Duration("latency", time.Since(start)),
	}
	if err != nil {
		l.Error("Request error", append(fields, zap.Error(err))...)
		return err
	}
	if c.Response().StatusCode() >= fiber.StatusInternalServerError {
		l.Warn("Request failed", fields...)
		return nil
	}
	l.Info("Request served", fields...)
	return nil
}
