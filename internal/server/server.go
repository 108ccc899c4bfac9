package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/PlayPredix_Go/internal/auth"
	"github.com/osse101/PlayPredix_Go/internal/competition"
	"github.com/osse101/PlayPredix_Go/internal/database"
	"github.com/osse101/PlayPredix_Go/internal/grading"
	"github.com/osse101/PlayPredix_Go/internal/handler"
	"github.com/osse101/PlayPredix_Go/internal/leaderboard"
	"github.com/osse101/PlayPredix_Go/internal/league"
	"github.com/osse101/PlayPredix_Go/internal/logger"
	"github.com/osse101/PlayPredix_Go/internal/metrics"
	"github.com/osse101/PlayPredix_Go/internal/pick"
)

// Options holds the transport settings
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
}

// Services bundles the domain services exposed over HTTP
type Services struct {
	Competitions competition.Service
	Leaderboards leaderboard.Service
	Picks        pick.Service
	Leagues      league.Service
	Grading      grading.Service
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, verifier *auth.Verifier, svcs Services) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	leagueHandlers := handler.NewLeagueHandlers(svcs.Leagues)
	adminHandlers := handler.NewAdminHandlers(svcs.Competitions, svcs.Grading)

	r.Route("/api/v1", func(r chi.Router) {
		// Public reads; a token, when present, personalises the board
		r.Group(func(r chi.Router) {
			r.Use(verifier.Optional)
			r.Get("/competitions", handler.HandleListCompetitions(svcs.Competitions))
			r.Get("/competitions/{competitionID}", handler.HandleGetCompetition(svcs.Competitions))
			r.Get("/competitions/{competitionID}/leaderboard", handler.HandleGetLeaderboard(svcs.Leaderboards))
		})

		// Participant routes
		r.Group(func(r chi.Router) {
			r.Use(verifier.Required)
			r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))

			r.Post("/picks", handler.HandleSubmitPick(svcs.Picks))
			r.Get("/competitions/{competitionID}/picks", handler.HandleListMyPicks(svcs.Picks))

			r.Route("/leagues", func(r chi.Router) {
				r.Get("/", leagueHandlers.HandleListMine)
				r.Post("/", leagueHandlers.HandleCreate)
				r.Post("/join", leagueHandlers.HandleJoin)
				r.Get("/{leagueID}", leagueHandlers.HandleGet)
				r.Get("/{leagueID}/members", leagueHandlers.HandleMembers)
				r.Post("/{leagueID}/leave", leagueHandlers.HandleLeave)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(APIKeyMiddleware(opts.APIKey, opts.TrustedProxies, detector))

			// Logo uploads carry their own limit
			r.Put("/teams/{id}/logo", adminHandlers.HandleUploadTeamLogo)

			r.Group(func(r chi.Router) {
				r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))

				r.Post("/competitions", adminHandlers.HandleCreateCompetition)
				r.Put("/competitions/{id}", adminHandlers.HandleUpdateCompetition)
				r.Delete("/competitions/{id}", adminHandlers.HandleDeleteCompetition)

				r.Post("/teams", adminHandlers.HandleCreateTeam)
				r.Delete("/teams/{id}", adminHandlers.HandleDeleteTeam)

				r.Post("/games", adminHandlers.HandleCreateGame)
				r.Delete("/games/{id}", adminHandlers.HandleDeleteGame)
				r.Put("/games/{id}/result", adminHandlers.HandleSetGameResult)
				r.Delete("/games/{id}/result", adminHandlers.HandleClearGameResult)

				r.Post("/props", adminHandlers.HandleCreateProp)
				r.Delete("/props/{id}", adminHandlers.HandleDeleteProp)
				r.Put("/props/{id}/answer", adminHandlers.HandleSetPropAnswer)
				r.Delete("/props/{id}/answer", adminHandlers.HandleClearPropAnswer)
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: r,
		dbPool: dbPool,
	}
}

// Handler exposes the router, mainly for httptest
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// sanitizeHeaders copies h with credentials redacted
func sanitizeHeaders(h http.Header) http.Header {
	sanitized := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			sanitized[k] = []string{RedactedValue}
		} else {
			sanitized[k] = v
		}
	}
	return sanitized
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
