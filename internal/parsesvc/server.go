package parsesvc

import (
	"context"
	"net"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	mdwlog "github.com/msto63/sable/foundation/core/log"
	"github.com/msto63/sable/foundation/lang/token"
	coreGrpc "github.com/msto63/sable/pkg/core/grpc"
	"github.com/msto63/sable/pkg/core/health"
	"github.com/msto63/sable/pkg/core/logging"
	"github.com/msto63/sable/pkg/core/version"
)

// Config holds server and service configuration
type Config struct {
	Host             string
	Port             int
	EnableReflection bool
	RequestTimeout   time.Duration
	HealthInterval   time.Duration

	MaxTokens int
	CacheSize int
	CacheTTL  time.Duration
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		Host:             "127.0.0.1",
		Port:             9470,
		EnableReflection: true,
		RequestTimeout:   10 * time.Second,
		HealthInterval:   30 * time.Second,
		CacheSize:        1024,
		CacheTTL:         5 * time.Minute,
	}
}

// Pinger is implemented by recorders that can report their own health
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server is the ParseService gRPC server
type Server struct {
	service *Service
	grpc    *coreGrpc.Server
	health  *health.Registry
	logger  *logging.Logger
	config  Config

	watchCtx  context.Context
	stopWatch context.CancelFunc
}

var _ ParseServer = (*Server)(nil)

// New creates a server. recorder may be nil to disable the journal.
func New(cfg Config, recorder Recorder, logger *mdwlog.Logger) *Server {
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	if cfg.HealthInterval <= 0 {
		cfg.HealthInterval = DefaultConfig().HealthInterval
	}

	svc := NewService(cfg, recorder, logger)

	grpcCfg := coreGrpc.DefaultServerConfig()
	grpcCfg.Host = cfg.Host
	grpcCfg.Port = cfg.Port
	grpcCfg.EnableReflection = cfg.EnableReflection

	grpcLogger := logging.Wrap(logger, "parse-server")
	grpcServer := coreGrpc.NewServer(grpcCfg, grpcLogger)

	registry := health.NewRegistry("sable", version.ParseService)
	registry.RegisterFunc("engine", func(ctx context.Context) health.CheckResult {
		probe := []token.Token{
			token.New(token.LeftParen, 1, 1),
			token.NewIdent("probe", 1, 2),
			token.New(token.RightParen, 1, 7),
		}
		if _, err := svc.engine.ParseTokens(probe); err != nil {
			return health.CheckResult{Status: health.StatusUnhealthy, Message: err.Error()}
		}
		return health.CheckResult{Status: health.StatusHealthy, Message: "parser operational"}
	})
	if p, ok := recorder.(Pinger); ok {
		registry.Register(health.PingCheck("journal", p.Ping))
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	s := &Server{
		service:   svc,
		grpc:      grpcServer,
		health:    registry,
		logger:    grpcLogger,
		config:    cfg,
		watchCtx:  watchCtx,
		stopWatch: stopWatch,
	}

	RegisterParseServer(grpcServer.GRPCServer(), s)

	return s
}

// Parse implements ParseServer
func (s *Server) Parse(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	if s.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.RequestTimeout)
		defer cancel()
	}

	req, err := DecodeRequest(in)
	if err != nil {
		return nil, toStatus(err)
	}

	resp, err := s.service.Parse(ctx, req)
	if err != nil {
		return nil, toStatus(err)
	}

	out, err := EncodeResponse(resp)
	if err != nil {
		return nil, toStatus(err)
	}
	return out, nil
}

// Start listens on the configured address and blocks until stopped
func (s *Server) Start() error {
	s.logger.Info("Starting parse server", "host", s.config.Host, "port", s.config.Port)
	s.watchHealth()
	return s.grpc.Start()
}

// Serve serves on an existing listener and blocks until stopped
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("Starting parse server", "address", lis.Addr().String())
	s.watchHealth()
	return s.grpc.Serve(lis)
}

func (s *Server) watchHealth() {
	go s.health.Watch(s.watchCtx, s.config.HealthInterval, s.grpc, "", ServiceName)
}

// Stop stops the server, forcing it down when ctx expires
func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Stopping parse server")
	s.stopWatch()
	s.grpc.StopWithTimeout(ctx)
	s.service.Close()
}

// Address returns the listening address
func (s *Server) Address() string {
	return s.grpc.Address()
}

// Service returns the underlying parse service
func (s *Server) Service() *Service {
	return s.service
}

// HealthRegistry returns the health check registry
func (s *Server) HealthRegistry() *health.Registry {
	return s.health
}
