package mcp

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/docdeck/docdeck/internal/catalog"
	"github.com/docdeck/docdeck/internal/source"
)

// HTTPOptions configures the HTTP transport.
type HTTPOptions struct {
	Addr          string
	APIKey        string // empty disables auth
	RatePerSecond float64
	RateBurst     int
}

// ServeHTTP starts the MCP server over streamable HTTP with optional
// bearer-token auth and a global rate limit on the MCP endpoint.
func ServeHTTP(cat *catalog.Catalog, src source.Source, opts HTTPOptions) error {
	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
	)

	registerTools(s, cat, src)

	httpServer := server.NewStreamableHTTPServer(s, server.WithStateLess(true))

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	var mcpHandler http.Handler = httpServer
	if opts.RatePerSecond > 0 {
		mcpHandler = rateLimit(rate.NewLimiter(rate.Limit(opts.RatePerSecond), opts.RateBurst), mcpHandler)
	}
	if opts.APIKey != "" {
		mcpHandler = bearerAuth(opts.APIKey, mcpHandler)
	}
	mux.Handle("/mcp", mcpHandler)

	srv := &http.Server{
		Addr:         opts.Addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logrus.WithFields(logrus.Fields{
		"addr":   opts.Addr,
		"guides": cat.Len(),
		"auth":   opts.APIKey != "",
	}).Info("docdeck MCP HTTP server listening")
	return srv.ListenAndServe()
}

func bearerAuth(apiKey string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" {
			w.Header().Set("WWW-Authenticate", `Bearer realm="mcp"`)
			http.Error(w, `{"error":"missing Authorization header"}`, http.StatusUnauthorized)
			return
		}
		token, found := strings.CutPrefix(auth, "Bearer ")
		if !found || subtle.ConstantTimeCompare([]byte(token), []byte(apiKey)) != 1 {
			w.Header().Set("WWW-Authenticate", `Bearer realm="mcp", error="invalid_token"`)
			http.Error(w, `{"error":"invalid token"}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// rateLimit rejects over-limit requests with 429 instead of queuing, so a
// noisy client fails fast rather than stalling everyone behind it.
func rateLimit(limiter *rate.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, `{"error":"rate limit exceeded"}`, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
