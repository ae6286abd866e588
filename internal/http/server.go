// Package http serves the trip companion UI and its JSON endpoints:
// the itinerary index, the expense ledger fragment and its mutations,
// map markers, and the chat assistant relay.
package http

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"sync/atomic"
	"time"

	"tabi/internal/cache"
	"tabi/internal/chat"
	"tabi/internal/ledger"
	"tabi/internal/log"
	"tabi/web"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 30 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 10 * time.Second

	ledgerCacheKey = "ledger"
	ledgerCacheTTL = 30 * time.Second

	cacheCleanInterval = 5 * time.Minute
)

// Config holds the server wiring.
type Config struct {
	Addr        string
	Store       *ledger.Store
	Assistant   chat.Assistant
	ChatTimeout time.Duration
	Logger      *log.Logger
}

// Server is the HTTP front of the application.
type Server struct {
	httpServer *http.Server
	store      *ledger.Store
	assistant  chat.Assistant
	chatLimit  time.Duration
	logger     *log.Logger

	templates   *template.Template
	ledgerCache *cache.TTLCache[[]byte]
	markersJSON []byte
	limiter     *rateLimiter

	// chatBusy serializes assistant calls: one round-trip at a time.
	chatBusy atomic.Bool

	stopCleanup chan struct{}
}

// NewServer builds the server, parses the embedded templates and
// precomputes the static marker payload.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, errors.New("http: ledger store is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(log.Config{Component: log.ComponentHTTP})
	}
	if cfg.Assistant == nil {
		cfg.Assistant = chat.Disabled{}
	}
	if cfg.ChatTimeout <= 0 {
		cfg.ChatTimeout = 30 * time.Second
	}

	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	markers, err := encodeMarkers()
	if err != nil {
		return nil, err
	}

	s := &Server{
		store:       cfg.Store,
		assistant:   cfg.Assistant,
		chatLimit:   cfg.ChatTimeout,
		logger:      cfg.Logger.WithComponent(log.ComponentHTTP),
		templates:   tmpl,
		ledgerCache: cache.New[[]byte](4, ledgerCacheTTL),
		markersJSON: markers,
		limiter:     newRateLimiter(30, time.Minute),
		stopCleanup: make(chan struct{}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.HandleFunc("GET /ui/ledger", s.handleLedgerView)
	mux.HandleFunc("POST /expenses", s.handleAddExpense)
	mux.HandleFunc("POST /expenses/toggle", s.handleTogglePaid)
	mux.HandleFunc("POST /expenses/delete", s.handleDeleteExpense)
	mux.HandleFunc("POST /rate", s.handleSetRate)
	mux.HandleFunc("GET /api/markers", s.handleMarkers)
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.Handle("GET /static/", http.FileServerFS(web.StaticFS))

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withMiddleware(mux),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return s, nil
}

// Start runs the server until the context is cancelled, then drains
// in-flight requests within the shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	go s.cleanupLoop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		close(s.stopCleanup)
		s.limiter.stop()
		return err
	case <-ctx.Done():
	}

	close(s.stopCleanup)
	s.limiter.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("server shutting down")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// invalidateLedger drops the cached ledger fragment after a mutation.
func (s *Server) invalidateLedger() {
	s.ledgerCache.Invalidate(ledgerCacheKey)
}

func (s *Server) cleanupLoop() {
	ticker := time.NewTicker(cacheCleanInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := s.ledgerCache.CleanExpired(); n > 0 {
				s.logger.Debug("cache cleaned", "removed", n)
			}
		case <-s.stopCleanup:
			return
		}
	}
}
