package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aiktp_sync/internal/metrics"
)

const (
	SyncBasePath  = "/wp-json/aiktp"
	AdminBasePath = "/admin"
)

type Config struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	Debug           bool

	SiteURL         string
	SessionSecret   string
	PageSize        int
	TagLimit        int
	PublicPerMinute int
	PublicBurst     int
}

func (c *Config) setDefaults() {
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 30 * time.Second
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 180 * time.Second
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 120 * time.Second
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 15 * time.Second
	}
	if c.PageSize <= 0 {
		c.PageSize = 50
	}
	if c.TagLimit <= 0 {
		c.TagLimit = 5
	}
	if c.PublicPerMinute <= 0 {
		c.PublicPerMinute = 120
	}
	if c.PublicBurst <= 0 {
		c.PublicBurst = 20
	}
}

type Deps struct {
	Gateway     Gateway
	Generator   Generator
	Jobs        BulkJobs
	Tokens      Tokens
	Connector   Connector
	APIKeys     APIKeys
	Principals  Principals
	Idempotency IdempotencyStore
	Metrics     *metrics.Metrics
}

type Server struct {
	gateway     Gateway
	generator   Generator
	jobs        BulkJobs
	tokens      Tokens
	connector   Connector
	apiKeys     APIKeys
	principals  Principals
	idempotency IdempotencyStore
	metrics     *metrics.Metrics

	router *gin.Engine
	server *http.Server
	logger *zap.Logger
	cfg    Config
	done   chan struct{}
	once   sync.Once
}

func NewServer(deps Deps, logger *zap.Logger, cfg Config) *Server {
	cfg.setDefaults()
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		gateway:     deps.Gateway,
		generator:   deps.Generator,
		jobs:        deps.Jobs,
		tokens:      deps.Tokens,
		connector:   deps.Connector,
		apiKeys:     deps.APIKeys,
		principals:  deps.Principals,
		idempotency: deps.Idempotency,
		metrics:     deps.Metrics,
		logger:      logger.With(zap.String("component", "httpapi")),
		cfg:         cfg,
		done:        make(chan struct{}),
	}

	router := gin.New()
	router.Use(RecoveryMiddleware(s.logger))
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(s.logger))
	if s.metrics != nil {
		router.Use(MetricsMiddleware(s.metrics))
	}
	s.routes(router)
	s.router = router

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

func (s *Server) routes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	api := r.Group(SyncBasePath)
	api.POST("/createpost", s.Idempotent("createpost"), s.createPost)
	api.POST("/doUploadImageToWP", s.Idempotent("doUploadImageToWP"), s.uploadImage)
	api.POST("/getPostById", s.getPostByID)
	api.GET("/getToken", s.SessionMiddleware(false), s.getToken)

	public := api.Group("")
	public.Use(RateLimiter(s.cfg.PublicPerMinute, s.cfg.PublicBurst, s.done))
	public.POST("/getPostByURL", s.getPostByURL)
	public.GET("/checkToken", s.checkToken)
	public.GET("/getCategories", s.getCategories)
	public.POST("/getPostByTags", s.getPostByTags)
	public.POST("/getAllPosts", s.getAllPosts)

	admin := r.Group(AdminBasePath)
	admin.Use(s.SessionMiddleware(true))
	admin.POST("/token/regenerate", s.regenerateToken)
	admin.POST("/connect", s.connect)
	admin.POST("/generate", s.generate)
	admin.POST("/bulk", s.enqueueBulk)
	admin.POST("/bulk/queue", s.consumeBulk)
	admin.POST("/bulk/generate", s.generateBulkItem)
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("starting http server",
		zap.String("address", s.server.Addr),
		zap.Duration("read_timeout", s.server.ReadTimeout),
		zap.Duration("write_timeout", s.server.WriteTimeout),
	)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Close stops background work started by the router.
func (s *Server) Close() {
	s.once.Do(func() { close(s.done) })
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server", zap.Duration("timeout", s.cfg.ShutdownTimeout))
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()

	s.Close()
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
