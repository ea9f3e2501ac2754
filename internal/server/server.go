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

	"github.com/osse101/Armory_Go/internal/auth"
	"github.com/osse101/Armory_Go/internal/catalog"
	"github.com/osse101/Armory_Go/internal/character"
	"github.com/osse101/Armory_Go/internal/database"
	"github.com/osse101/Armory_Go/internal/economy"
	"github.com/osse101/Armory_Go/internal/equipment"
	"github.com/osse101/Armory_Go/internal/handler"
	"github.com/osse101/Armory_Go/internal/inventory"
	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/metrics"
	"github.com/osse101/Armory_Go/internal/user"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	AdminAPIKey    string
	TrustedProxies []string
}

// Services are the application services the routes delegate to
type Services struct {
	Pool      database.Pool
	Verifier  auth.Verifier
	User      user.Service
	Character character.Service
	Catalog   catalog.Service
	Inventory inventory.Service
	Equipment equipment.Service
	Economy   economy.Service
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router with the full middleware stack
func NewRouter(opts Options, svc Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	requireID := RequireIdentity(svc.Verifier)
	optionalID := OptionalIdentity(svc.Verifier)
	adminKey := AdminKeyMiddleware(opts.AdminAPIKey, opts.TrustedProxies, detector)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.Pool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/sign-up", handler.HandleSignUp(svc.User))
			r.Post("/sign-in", handler.HandleSignIn(svc.User))
			r.Post("/token", handler.HandleRefreshToken(svc.User))
		})

		r.Route("/characters", func(r chi.Router) {
			r.With(requireID).Post("/", handler.HandleCreateCharacter(svc.Character))

			r.Route("/{characterID}", func(r chi.Router) {
				r.With(optionalID).Get("/", handler.HandleGetCharacter(svc.Character))
				r.Get("/equipped-items", handler.HandleListEquipped(svc.Equipment))

				r.Group(func(r chi.Router) {
					r.Use(requireID)
					r.Delete("/", handler.HandleDeleteCharacter(svc.Character))
					r.Post("/earn-money", handler.HandleEarnMoney(svc.Character))
					r.Get("/inventory", handler.HandleListInventory(svc.Inventory))
					r.Post("/equip-item", handler.HandleEquipItem(svc.Equipment))
					r.Post("/unequip-item", handler.HandleUnequipItem(svc.Equipment))
					r.Post("/buy", handler.HandleBuyItems(svc.Economy))
					r.Post("/sell", handler.HandleSellItems(svc.Economy))
				})
			})
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", handler.HandleListItems(svc.Catalog))
			r.Get("/prices", handler.HandleGetPrices(svc.Economy))
			r.Get("/{itemCode}", handler.HandleGetItem(svc.Catalog))

			r.Group(func(r chi.Router) {
				r.Use(adminKey)
				r.Post("/", handler.HandleCreateItem(svc.Catalog))
				r.Put("/{itemCode}", handler.HandleUpdateItem(svc.Catalog))
				r.Delete("/{itemCode}", handler.HandleDeleteItem(svc.Catalog))
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(adminKey)
			r.Post("/characters/{characterID}/inventory/grant", handler.HandleGrantItems(svc.Inventory))
			r.Post("/characters/{characterID}/inventory/revoke", handler.HandleRevokeItems(svc.Inventory))
		})
	})

	return r
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range quietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

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
