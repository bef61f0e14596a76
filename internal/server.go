package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/2beens/weblogin/internal/config"
	"github.com/2beens/weblogin/internal/credentials"
	"github.com/2beens/weblogin/internal/db"
	"github.com/2beens/weblogin/internal/login"
	"github.com/2beens/weblogin/internal/middleware"
	"github.com/2beens/weblogin/internal/session"
	"github.com/2beens/weblogin/internal/telemetry/metrics"
	"github.com/2beens/weblogin/internal/telemetry/tracing"
	"github.com/2beens/weblogin/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config       *config.Config
	dbPool       *pgxpool.Pool
	redisClient  *redis.Client
	verifier     credentials.Verifier
	sessionStore session.Store
	gate         *session.Gate

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config           *config.Config
	SecretKey        []byte
	RedisPassword    string
	PostgresPassword string
	// exported spans are written here, stdout when nil
	TraceOutput io.Writer
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	s := &Server{
		config: cfg,
	}

	traceOutput := params.TraceOutput
	if traceOutput == nil {
		traceOutput = os.Stdout
	}
	otelShutdown, err := tracing.Setup(cfg.TracingEnabled, traceOutput)
	if err != nil {
		return nil, fmt.Errorf("tracing setup: %w", err)
	}
	s.otelShutdown = otelShutdown

	var collectors []prometheus.Collector
	switch cfg.CredentialsBackend {
	case config.CredentialsBackendPostgres:
		s.dbPool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBUser:         cfg.PostgresUser,
			DBPassword:     params.PostgresPassword,
			TracingEnabled: cfg.TracingEnabled,
		})
		if err != nil {
			s.otelShutdown()
			return nil, fmt.Errorf("new db pool: %w", err)
		}

		if err := s.dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}

		collectors = append(collectors, pgxpoolprometheus.NewCollector(
			s.dbPool,
			map[string]string{"db_name": cfg.PostgresDBName},
		))
		s.verifier = credentials.NewPostgresStore(s.dbPool)
		log.Debugf("credentials from postgres db [%s]", cfg.PostgresDBName)
	default:
		fileStore := credentials.NewFileStore(cfg.CredentialsPath)
		s.verifier = fileStore
		log.Debugf("credentials from file [%s]", fileStore.Path())
	}

	s.promRegistry = metrics.SetupPrometheus(collectors...)
	s.metricsManager = metrics.NewManager("weblogin", "main", s.promRegistry)
	s.metricsManager.GaugeLifeSignal.Set(0)

	switch cfg.SessionBackend {
	case config.SessionBackendRedis:
		s.redisClient = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})
		if cfg.TracingEnabled {
			s.redisClient.AddHook(redisotel.NewTracingHook())
		}

		rdbStatus := s.redisClient.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}

		s.sessionStore = session.NewRedisStore(s.redisClient)
	default:
		s.sessionStore = session.NewMemoryStore(cfg.SessionCacheSizeMB * 1024 * 1024)
	}

	s.gate, err = session.NewGate(session.GateParams{
		SecretKey:    params.SecretKey,
		CookieName:   cfg.SessionCookieName,
		SecureCookie: cfg.SessionCookieSecure,
		Store:        s.sessionStore,
	})
	if err != nil {
		s.closeBackends()
		s.otelShutdown()
		return nil, fmt.Errorf("new session gate: %w", err)
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	loginHandler, err := login.NewHandler(s.verifier, s.gate, s.metricsManager)
	if err != nil {
		return nil, fmt.Errorf("new login handler: %w", err)
	}
	loginHandler.SetupRoutes(r)

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Tracef("unhandled path: [%s] %s", r.Method, r.URL.Path)
		pkg.WriteResponseBytes(w, pkg.ContentType.Text, []byte("404 page not found"), http.StatusNotFound)
	})

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{Registry: s.promRegistry},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before the sessions go away
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if err := s.sessionStore.Teardown(ctx); err != nil {
		log.Errorf("session store teardown: %s", err)
	} else {
		log.Debugln("session store torn down")
	}

	s.closeBackends()

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) closeBackends() {
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed, http.StateHijacked:
		s.metricsManager.GaugeRequests.Add(-1)
	}
}
