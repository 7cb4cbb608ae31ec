// Package web serves the portfolio page: markup rendered from the
// constellation, static assets, logos with a placeholder fallback, and
// operational endpoints.
package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dhruvywuvy/ursa-minor/internal/config"
	"github.com/dhruvywuvy/ursa-minor/internal/constellation"
	"github.com/dhruvywuvy/ursa-minor/internal/metrics"
	"github.com/dhruvywuvy/ursa-minor/internal/portfolio"
)

const readHeaderTimeout = 10 * time.Second

// Server is the HTTP host of the page.
type Server struct {
	cfg     *config.Config
	log     zerolog.Logger
	metrics *metrics.Manager
	layer   *constellation.Layer
	profile portfolio.Profile
	socials []portfolio.SocialLink
	logos   map[string]struct{}
	salt    string

	engine *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics records request metrics on m and serves them on /metrics
// when enabled in the configuration.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Server) { s.metrics = m }
}

// WithLayer replaces the constellation rendered by the page.
func WithLayer(l *constellation.Layer) Option {
	return func(s *Server) { s.layer = l }
}

// New builds the server and its routes.
func New(cfg *config.Config, log zerolog.Logger, opts ...Option) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("web: nil config")
	}
	salt, err := generateSalt()
	if err != nil {
		return nil, fmt.Errorf("web: %w", err)
	}

	s := &Server{
		cfg:     cfg,
		log:     log,
		layer:   constellation.New(portfolio.Stars()),
		profile: portfolio.DefaultProfile(),
		socials: portfolio.Socials(),
		salt:    salt,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = metrics.NewManager()
	}

	s.logos = make(map[string]struct{})
	for _, star := range s.layer.Stars() {
		s.logos[logoName(star.Experience.Logo)] = struct{}{}
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("web: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery(), s.requestID(), s.accessLog(), s.recordMetrics())
	s.routes(r)
	s.engine = r
	return s, nil
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		s.log.Info().Str("addr", ln.Addr().String()).Msg("portfolio listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info().Msg("portfolio stopped")
	return nil
}
