package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	_ "github.com/Aidin1998/contacts_manager/docs"
	"github.com/Aidin1998/contacts_manager/internal/contacts"
	"github.com/Aidin1998/contacts_manager/internal/database"
	"github.com/Aidin1998/contacts_manager/pkg/metrics"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	serviceName     = "contacts-api"
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// SessionProvider hands out request-scoped database sessions.
type SessionProvider interface {
	Session(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// ContactService is the contacts use-case surface used by the handlers.
type ContactService interface {
	List(ctx context.Context, filter contacts.ListFilter) ([]contacts.Contact, error)
	Get(ctx context.Context, id uint) (*contacts.Contact, error)
	Create(ctx context.Context, req *contacts.ContactRequest) (*contacts.Contact, error)
	Update(ctx context.Context, id uint, req *contacts.ContactRequest) (*contacts.Contact, error)
	Delete(ctx context.Context, id uint) (*contacts.Contact, error)
	UpcomingBirthdays(ctx context.Context, days int) ([]contacts.Contact, error)
}

// Options configure the server. They are resolved once at startup.
type Options struct {
	// Debug exposes error strings and tracebacks in 500 responses.
	Debug       bool
	CORSOrigins []string
	HealthQuery string
}

// Server represents the API server
type Server struct {
	router      *gin.Engine
	logger      *zap.Logger
	sessions    SessionProvider
	contacts    ContactService
	debug       bool
	healthQuery string
}

// NewServer creates a new API server with injected dependencies. A nil
// sessions provider behaves like an uninitialized session manager.
func NewServer(logger *zap.Logger, sessions SessionProvider, contactSvc ContactService, opts Options) *Server {
	if sessions == nil {
		sessions = (*database.SessionManager)(nil)
	}
	if opts.HealthQuery == "" {
		opts.HealthQuery = "SELECT 1"
	}
	useWireFieldNames()

	server := &Server{
		logger:      logger,
		sessions:    sessions,
		contacts:    contactSvc,
		debug:       opts.Debug,
		healthQuery: opts.HealthQuery,
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Outermost recovery only catches faults in the middleware below it;
	// handler panics are rendered by failureHandler.
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(requestID())
	router.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/metrics"},
		Context: func(c *gin.Context) []zapcore.Field {
			return []zapcore.Field{zap.String(requestIDKey, c.GetString(requestIDKey))}
		},
	}))
	router.Use(cors.New(corsConfig(opts.CORSOrigins)))
	router.Use(otelgin.Middleware(serviceName))
	router.Use(requestMetrics())
	router.Use(server.failureHandler())

	server.router = router
	server.registerRoutes()
	return server
}

// Router returns the internal Gin engine for testing purposes
func (s *Server) Router() *gin.Engine {
	return s.router
}

// HTTPServer wraps the router in an http.Server listening on addr.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.router.NoRoute(handle(notFound))
	s.router.NoMethod(handle(methodNotAllowed))

	s.router.GET("/", handle(s.root))
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := s.router.Group("/api")
	{
		api.GET("/healthchecker", handle(s.checkHealth))

		c := api.Group("/contacts")
		{
			c.GET("", handle(s.listContacts))
			c.GET("/birthdays", handle(s.upcomingBirthdays))
			c.GET("/:"+contactIDParam, handle(s.getContact))
			c.POST("", handle(s.createContact))
			c.PUT("/:"+contactIDParam, handle(s.updateContact))
			c.DELETE("/:"+contactIDParam, handle(s.deleteContact))
		}
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
