// Package api implements app.Runner for the bridge API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aviate-labs/agent-go"
	"github.com/aviate-labs/agent-go/identity"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/ckbridge-starter/pkg/app/http"
	"github.com/chainsafe/ckbridge-starter/pkg/auth"
	bridgeservice "github.com/chainsafe/ckbridge-starter/pkg/bridge/service"
	"github.com/chainsafe/ckbridge-starter/pkg/config"
	"github.com/chainsafe/ckbridge-starter/pkg/icsdk/dispatch"
	"github.com/chainsafe/ckbridge-starter/pkg/icsdk/ledger"
	"github.com/chainsafe/ckbridge-starter/pkg/icsdk/minter"
	"github.com/chainsafe/ckbridge-starter/pkg/icsdk/orchestrator"
	"github.com/chainsafe/ckbridge-starter/pkg/keys"
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging, zap.String("environment", cfg.Environment))
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	env, err := config.LookupEnvironment(cfg.Environment)
	if err != nil {
		return err
	}
	canisters := env.MustResolve()

	id, err := keys.LoadIdentity(cfg.Identity)
	if err != nil {
		return err
	}

	logger.Info("Starting bridge API server",
		zap.String("principal", id.Sender().String()),
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	svc, err := s.newService(id, canisters, logger)
	if err != nil {
		return err
	}

	router := s.setupRouter(bridgeservice.NewLog(svc, logger), logger)
	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

// newService wires the agent, dispatcher and canister clients behind the
// bridge service.
func (s *Server) newService(
	id identity.Identity,
	canisters *config.Canisters,
	logger *zap.Logger,
) (bridgeservice.Service, error) {
	icAgent, err := agent.New(agent.Config{
		Identity:      id,
		IngressExpiry: s.cfg.Agent.IngressExpiry,
	})
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}

	caller, err := dispatch.NewAgentCaller(icAgent)
	if err != nil {
		return nil, err
	}
	dispatcher, err := dispatch.New(caller,
		dispatch.WithLogger(logger.Named("dispatch")),
		dispatch.WithMetrics(s.cfg.Metrics.Enabled),
	)
	if err != nil {
		return nil, fmt.Errorf("create dispatcher: %w", err)
	}

	ledgerClient, err := ledger.New(dispatcher)
	if err != nil {
		return nil, fmt.Errorf("create ledger client: %w", err)
	}
	minterClient, err := minter.New(dispatcher)
	if err != nil {
		return nil, fmt.Errorf("create minter client: %w", err)
	}
	orchestratorClient, err := orchestrator.New(dispatcher)
	if err != nil {
		return nil, fmt.Errorf("create orchestrator client: %w", err)
	}

	return bridgeservice.NewService(
		id.Sender(),
		canisters,
		ledgerClient,
		minterClient,
		orchestratorClient,
		logger,
	), nil
}

func (s *Server) setupRouter(svc bridgeservice.Service, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Metrics.Enabled {
		r.Handle(s.cfg.Metrics.Path, promhttp.Handler())
	}

	var guard []func(http.Handler) http.Handler
	if s.cfg.Auth.Enabled {
		logger.Info("Bearer authentication enabled", zap.String("jwks_url", s.cfg.Auth.JWKSURL))
		validator := auth.NewJWTValidator(s.cfg.Auth.JWKSURL, s.cfg.Auth.Issuer)
		guard = append(guard, auth.Middleware(validator, logger))
	}

	bridgeservice.RegisterRoutes(r, svc, logger, guard...)
	return r
}
