// Package restserver exposes the prayer-time calculator as a small JSON
// API. It contains no solver logic; it resolves a timezone, invokes the
// computation, and renders the result.
package restserver

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/nbouziani/praytimes/pkg/config"
)

// Controller represents the REST server controller
type Controller struct {
	ctx    context.Context
	wg     *sync.WaitGroup
	cfg    config.Config
	Server http.Server
	logger *zap.SugaredLogger
}

// NewController creates a new REST server controller
func NewController(ctx context.Context, wg *sync.WaitGroup, cfg config.Config, logger *zap.SugaredLogger) (*Controller, error) {
	ctrl := &Controller{
		ctx:    ctx,
		wg:     wg,
		cfg:    cfg,
		logger: logger,
	}

	// Validate the timezone preference up front so a bad config fails at
	// startup, not on the first request.
	if _, _, _, err := cfg.Zone(); err != nil {
		return nil, err
	}

	ctrl.Server.Addr = cfg.ListenAddr
	ctrl.Server.Handler = ctrl.setupRouter()
	return ctrl, nil
}

// StartController starts the REST server
func (c *Controller) StartController() error {
	c.logger.Info("starting REST server controller...")
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()
		if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
			c.logger.Errorf("REST server error: %v", err)
		}
	}()

	go func() {
		<-c.ctx.Done()
		c.logger.Info("shutting down the REST server...")
		c.Server.Shutdown(context.Background())
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(c.requestLogMiddleware)

	router.HandleFunc("/v1/timings", c.GetTimings)
	router.HandleFunc("/v1/methods", c.GetMethods)

	return router
}

// requestLogMiddleware tags every request with an ID and logs its
// outcome through the zap logger.
func (c *Controller) requestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		start := time.Now()
		next.ServeHTTP(w, r)
		c.logger.Infow("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"duration", time.Since(start),
		)
	})
}
