// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS, and
// bearer-token authentication, then mounts the public API and the realtime
// relay endpoint.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. CORS
//
// Gzip compression is applied to the API group only; compressing the
// websocket upgrade would break the handshake.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/petmatch/petmatch-server/internal/auth"
	"github.com/petmatch/petmatch-server/internal/config"
	"github.com/petmatch/petmatch-server/internal/http/handlers"
	"github.com/petmatch/petmatch-server/internal/http/middleware"
	"github.com/petmatch/petmatch-server/internal/services"
	"github.com/petmatch/petmatch-server/internal/ws"
)

// RegisterRoutes attaches all middleware and endpoints to the given Gin
// engine. The hub must already be running; this only mounts its handler.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, hub *ws.Hub, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured access logs
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) CORS posture (allow all when no origins configured)
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: services ← db
	matchSvc := &services.MatchService{DB: db}
	chatSvc := &services.ChatService{DB: db}
	settingsSvc := &services.SettingsService{DB: db}
	fbSvc := &services.FeedbackService{DB: db}
	reportSvc := &services.ReportService{DB: db}
	h := handlers.New(matchSvc, chatSvc, settingsSvc, fbSvc, reportSvc)

	verifier := auth.NewVerifier(cfg.JWTSecret)
	requireAuth := middleware.RequireAuth(verifier)

	// Realtime relay; identity is established in-band via registerUser.
	r.GET("/ws", ws.Handler(hub, chatSvc, ws.Options{
		WriteWait:       cfg.WS.WriteWait,
		PongWait:        cfg.WS.PongWait,
		MaxMessageBytes: cfg.WS.MaxMessageBytes,
		SendBuffer:      cfg.WS.SendBuffer,
	}))

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	api.Use(gzip.Gzip(gzip.DefaultCompression))
	{
		// Matchmaking
		api.GET("/pets/compatibility/:pet_id", requireAuth, h.GetPetCompatibility)
		api.GET("/matches", requireAuth, h.GetMatches)

		// Conversations
		api.GET("/conversations/:user_id", requireAuth, h.ListConversations)
		api.POST("/conversations", requireAuth, h.CreateConversation)

		// Messages
		api.GET("/messages/:conversation_id", requireAuth, h.ListMessages)
		api.POST("/messages", requireAuth, h.SendMessage)

		// Settings (identity from token)
		api.GET("/messaging-settings", requireAuth, h.GetMessagingSettings)
		api.PUT("/messaging-settings", requireAuth, h.UpdateMessagingSettings)

		// Feedback form and reports are public, as on the legacy API.
		api.POST("/feedback", h.SubmitFeedback)
		api.GET("/feedback", h.ListFeedback)
		api.GET("/reports", h.GetReports)
	}
}

// limitBody caps the request body size for all endpoints using
// http.MaxBytesReader; reads past the cap error downstream.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
