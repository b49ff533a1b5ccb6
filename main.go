package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"github.com/adarshrangare/portfolio/internal/config"
	"github.com/adarshrangare/portfolio/terminal"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server wires the portfolio page, the terminal sessions and the admin API.
type Server struct {
	cfg       config.Settings
	log       *slog.Logger
	sessions  *sessionRegistry
	analytics *Analytics
	metrics   *metrics
	admin     *adminAuth

	tracking sync.WaitGroup
}

// NewServer builds a server. analytics may be nil to disable tracking.
func NewServer(cfg config.Settings, log *slog.Logger, analytics *Analytics) *Server {
	s := &Server{
		cfg:       cfg,
		log:       log,
		sessions:  newSessionRegistry(terminal.DefaultTable(), cfg.SessionTTL),
		analytics: analytics,
		metrics:   newMetrics(),
		admin:     newAdminAuth(cfg.AdminUsername, cfg.AdminPassword, log),
	}
	s.sessions.onChange = func(n int) { s.metrics.sessions.Set(float64(n)) }
	return s
}

func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"name":       Name,
			"title":      Title,
			"tagline":    Tagline,
			"about":      AboutMe,
			"skills":     Skills,
			"experience": Experience,
			"projects":   Projects,
			"focusDelay": s.cfg.FocusDelay.Milliseconds(),
		})
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(s.metrics.handler))

	s.setupTerminalRoutes(r)
	s.setupAdminRoutes(r)
	return r
}

// Serve runs the HTTP server until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.cleanupLoop(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("portfolio listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func runServe(ctx context.Context, cfg config.Settings, log *slog.Logger) error {
	var analytics *Analytics
	if cfg.DatabasePath != "" {
		a, err := OpenAnalytics(ctx, cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer a.Close()
		analytics = a
		log.Info("terminal analytics enabled with hashed client addresses", "db", cfg.DatabasePath)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	srv := NewServer(cfg, log, analytics)
	err := srv.Serve(ctx)
	// analytics is closed by the deferred Close above, after pending records land
	srv.waitTracking()
	return err
}

func main() {
	Execute()
}
