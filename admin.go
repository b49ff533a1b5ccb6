// admin.go - privacy-conscious terminal analytics and the admin API
package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	_ "modernc.org/sqlite"
)

// Retention for analytics rows.
const analyticsRetention = 365 * 24 * time.Hour

// CommandMetric is one recorded terminal submission
type CommandMetric struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"` // Hashed instead of raw IP for privacy
	Command   string    `json:"command"`
	Outcome   string    `json:"outcome"`
	Timestamp time.Time `json:"timestamp"`
}

type CommandStat struct {
	Command string `json:"command"`
	Count   int64  `json:"count"`
}

type AdminStats struct {
	TotalSubmissions  int64           `json:"total_submissions"`
	UniqueVisitors    int64           `json:"unique_visitors"`
	UnknownCommands   int64           `json:"unknown_commands"`
	SubmissionsToday  int64           `json:"submissions_today"`
	SubmissionsWeek   int64           `json:"submissions_this_week"`
	TopCommands       []CommandStat   `json:"top_commands"`
	RecentSubmissions []CommandMetric `json:"recent_submissions"`
}

// Analytics stores per-submission usage counts in sqlite. It never stores
// transcripts, raw IPs or unrecognised input.
type Analytics struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

// OpenAnalytics opens (or creates) the sqlite database at path.
func OpenAnalytics(ctx context.Context, path string) (*Analytics, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	// a single connection keeps ":memory:" databases coherent
	db.SetMaxOpenConns(1)

	a := &Analytics{db: db, salt: generateToken(), now: time.Now}
	if err := a.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return a, nil
}

func (a *Analytics) migrate(ctx context.Context) error {
	_, err := a.db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS terminal_commands (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,  -- Store hashed IP instead of raw IP
		command TEXT NOT NULL,
		outcome TEXT NOT NULL,
		timestamp INTEGER NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create terminal_commands table: %w", err)
	}
	_, err = a.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_terminal_commands_ts ON terminal_commands (timestamp)`)
	if err != nil {
		return fmt.Errorf("create terminal_commands index: %w", err)
	}
	return nil
}

func (a *Analytics) Close() error {
	return a.db.Close()
}

// Hash IP address for privacy compliance (consistent per IP for the
// lifetime of the process)
func (a *Analytics) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + a.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// Record stores one submission.
func (a *Analytics) Record(ctx context.Context, ip, command, outcome string) error {
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO terminal_commands (hashed_ip, command, outcome, timestamp)
		VALUES (?, ?, ?, ?)
	`, a.hashIP(ip), command, outcome, a.now().Unix())
	if err != nil {
		return fmt.Errorf("record command: %w", err)
	}
	return nil
}

// Cleanup removes rows past the retention window.
func (a *Analytics) Cleanup(ctx context.Context) (int64, error) {
	cutoff := a.now().Add(-analyticsRetention).Unix()
	result, err := a.db.ExecContext(ctx, `DELETE FROM terminal_commands WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup analytics: %w", err)
	}
	return result.RowsAffected()
}

// Stats aggregates the admin dashboard numbers.
func (a *Analytics) Stats(ctx context.Context) (*AdminStats, error) {
	stats := &AdminStats{
		TopCommands:       []CommandStat{},
		RecentSubmissions: []CommandMetric{},
	}
	now := a.now()
	y, m, d := now.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, now.Location()).Unix()
	weekAgo := now.Add(-7 * 24 * time.Hour).Unix()

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalSubmissions, `SELECT COUNT(*) FROM terminal_commands`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM terminal_commands`, nil},
		{&stats.UnknownCommands, `SELECT COUNT(*) FROM terminal_commands WHERE outcome = ?`, []any{outcomeUnknown}},
		{&stats.SubmissionsToday, `SELECT COUNT(*) FROM terminal_commands WHERE timestamp >= ?`, []any{startOfDay}},
		{&stats.SubmissionsWeek, `SELECT COUNT(*) FROM terminal_commands WHERE timestamp >= ?`, []any{weekAgo}},
	}
	for _, c := range counts {
		if err := a.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("query stats: %w", err)
		}
	}

	// Top commands, unrecognised input excluded
	rows, err := a.db.QueryContext(ctx, `
		SELECT command, COUNT(*) AS n
		FROM terminal_commands
		WHERE outcome != ?
		GROUP BY command
		ORDER BY n DESC, command ASC
		LIMIT 10
	`, outcomeUnknown)
	if err != nil {
		return nil, fmt.Errorf("query top commands: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s CommandStat
		if err := rows.Scan(&s.Command, &s.Count); err != nil {
			continue
		}
		stats.TopCommands = append(stats.TopCommands, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query top commands: %w", err)
	}

	recent, err := a.db.QueryContext(ctx, `
		SELECT id, hashed_ip, command, outcome, timestamp
		FROM terminal_commands
		ORDER BY timestamp DESC, id DESC
		LIMIT 50
	`)
	if err != nil {
		return nil, fmt.Errorf("query recent submissions: %w", err)
	}
	defer recent.Close()
	for recent.Next() {
		var (
			cm CommandMetric
			ts int64
		)
		if err := recent.Scan(&cm.ID, &cm.HashedIP, &cm.Command, &cm.Outcome, &ts); err != nil {
			continue
		}
		cm.Timestamp = time.Unix(ts, 0).UTC()
		stats.RecentSubmissions = append(stats.RecentSubmissions, cm)
	}
	return stats, recent.Err()
}

func generateToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		panic(fmt.Sprintf("failed to generate token: %v", err))
	}
	return hex.EncodeToString(bytes)
}

// adminAuth holds the credentials and the per-process session token.
type adminAuth struct {
	username string
	password string
	token    string
}

func newAdminAuth(username, password string, log *slog.Logger) *adminAuth {
	// Default credentials for development (set them in production)
	if username == "" {
		username = "admin"
		if gin.Mode() == gin.DebugMode {
			log.Warn("using default admin username, set ADMIN_USERNAME")
		}
	}
	if password == "" {
		password = "admin123"
		if gin.Mode() == gin.DebugMode {
			log.Warn("using default admin password, set ADMIN_PASSWORD")
		}
	}
	return &adminAuth{username: username, password: password, token: generateToken()}
}

func (a *adminAuth) valid(username, password string) bool {
	u := subtle.ConstantTimeCompare([]byte(username), []byte(a.username))
	p := subtle.ConstantTimeCompare([]byte(password), []byte(a.password))
	return u&p == 1
}

// Middleware to check admin authentication
func (a *adminAuth) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Setup all admin routes
func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if s.admin.valid(c.PostForm("username"), c.PostForm("password")) {
			// Secure cookie (24 hours)
			c.SetCookie("admin_token", s.admin.token, 3600*24, "/admin", "", false, true)
			s.log.Info("admin login", "client", s.clientHash(c))
			c.Redirect(http.StatusFound, "/admin/api/stats")
			return
		}
		s.log.Warn("failed admin login", "client", s.clientHash(c))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie("admin_token", "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(s.admin.middleware())

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, ok := s.adminStats(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	// Statistics export (for backups or analysis)
	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, ok := s.adminStats(c)
		if !ok {
			return
		}
		c.Header("Content-Disposition", "attachment; filename=terminal-stats.json")
		s.log.Info("admin stats exported", "client", s.clientHash(c))
		c.JSON(http.StatusOK, stats)
	})

	// Privacy compliance: drop data past the retention window now
	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		if s.analytics == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analytics disabled"})
			return
		}
		n, err := s.analytics.Cleanup(c.Request.Context())
		if err != nil {
			s.log.Error("privacy cleanup failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": n})
	})
}

func (s *Server) adminStats(c *gin.Context) (*AdminStats, bool) {
	if s.analytics == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analytics disabled"})
		return nil, false
	}
	stats, err := s.analytics.Stats(c.Request.Context())
	if err != nil {
		s.log.Error("loading admin stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statistics"})
		return nil, false
	}
	return stats, true
}

// clientHash identifies a client in logs without exposing its IP.
func (s *Server) clientHash(c *gin.Context) string {
	if s.analytics == nil {
		return "-"
	}
	return s.analytics.hashIP(c.ClientIP())
}

// trackCommand records a submission in the background, honouring DNT.
func (s *Server) trackCommand(c *gin.Context, command, outcome string) {
	if s.analytics == nil || c.GetHeader("DNT") == "1" {
		return
	}
	ip := c.ClientIP()
	s.tracking.Add(1)
	go func() {
		defer s.tracking.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.analytics.Record(ctx, ip, command, outcome); err != nil {
			s.log.Error("recording terminal command", "error", err)
		}
	}()
}

// waitTracking blocks until every in-flight command record has finished.
func (s *Server) waitTracking() {
	s.tracking.Wait()
}

// cleanupLoop runs the retention cleanup daily until ctx is done.
func (s *Server) cleanupLoop(ctx context.Context) {
	if s.analytics == nil {
		return
	}
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		n, err := s.analytics.Cleanup(ctx)
		if err != nil {
			s.log.Error("privacy cleanup", "error", err)
		} else if n > 0 {
			s.log.Info("privacy cleanup", "removed", n)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
