package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	cyclingtrackerv1 "github.com/louisbranch/cyclingtracker/api/cyclingtracker/v1"
	grpcmeta "github.com/louisbranch/cyclingtracker/internal/platform/grpc/metadata"
	"github.com/louisbranch/cyclingtracker/internal/platform/timeouts"
	authservice "github.com/louisbranch/cyclingtracker/internal/services/auth/api/grpc/auth"
	"github.com/louisbranch/cyclingtracker/internal/services/auth/session"
	authredis "github.com/louisbranch/cyclingtracker/internal/services/auth/storage/redis"
	authsqlite "github.com/louisbranch/cyclingtracker/internal/services/auth/storage/sqlite"
	trackerservice "github.com/louisbranch/cyclingtracker/internal/services/tracker/api/grpc/tracker"
	trackersqlite "github.com/louisbranch/cyclingtracker/internal/services/tracker/storage/sqlite"
	"github.com/louisbranch/cyclingtracker/internal/services/tracker/workout"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Config holds everything needed to assemble a server.
type Config struct {
	// Addr is the listen address; it overrides Port when set.
	Addr           string
	Port           int
	DBPath         string
	AuthDBPath     string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	SessionTTL     time.Duration
	RequireSession bool
	DistanceRule   workout.DistanceRule
	TLSCertFile    string
	TLSKeyFile     string
	Reflection     bool
	// PasswordHashCost is the bcrypt cost; zero uses the library default.
	PasswordHashCost int
}

func (c Config) listenAddr() string {
	if strings.TrimSpace(c.Addr) != "" {
		return c.Addr
	}
	return fmt.Sprintf(":%d", c.Port)
}

// Server hosts the cycling tracker and session auth services.
type Server struct {
	listener     net.Listener
	grpcServer   *grpc.Server
	health       *health.Server
	trackerStore *trackersqlite.Store
	authStore    *authsqlite.Store
	tokenStore   *authredis.Store
}

// New opens the stores and builds a server listening on cfg's address.
func New(ctx context.Context, cfg Config) (*Server, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.TLSCertFile != "" && cfg.TLSKeyFile == "" || cfg.TLSCertFile == "" && cfg.TLSKeyFile != "" {
		return nil, fmt.Errorf("tls requires both cert and key files")
	}

	trackerStore, err := openTrackerStore(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	authStore, err := openAuthStore(cfg.AuthDBPath)
	if err != nil {
		_ = trackerStore.Close()
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeouts.StorePing)
	tokenStore, err := authredis.Open(pingCtx, authredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	cancel()
	if err != nil {
		_ = trackerStore.Close()
		_ = authStore.Close()
		return nil, fmt.Errorf("open session token store: %w", err)
	}

	closeStores := func() {
		_ = trackerStore.Close()
		_ = authStore.Close()
		_ = tokenStore.Close()
	}

	serverOptions := []grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.MaxRecvMsgSize(cyclingtrackerv1.MaxMessageBytes),
	}
	if cfg.TLSCertFile != "" {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			closeStores()
			return nil, fmt.Errorf("load tls key pair: %w", err)
		}
		serverOptions = append(serverOptions, grpc.Creds(creds))
	}

	sessions := session.NewManager(tokenStore, cfg.SessionTTL)
	unary := []grpc.UnaryServerInterceptor{grpcmeta.UnaryServerInterceptor(nil)}
	stream := []grpc.StreamServerInterceptor{grpcmeta.StreamServerInterceptor(nil)}
	if cfg.RequireSession {
		guarded := session.ServiceMethods(cyclingtrackerv1.CyclingTrackerServiceName)
		unary = append(unary, session.UnaryServerInterceptor(sessions, guarded))
		stream = append(stream, session.StreamServerInterceptor(sessions, guarded))
	}
	serverOptions = append(serverOptions,
		grpc.ChainUnaryInterceptor(unary...),
		grpc.ChainStreamInterceptor(stream...),
	)

	listener, err := net.Listen("tcp", cfg.listenAddr())
	if err != nil {
		closeStores()
		return nil, fmt.Errorf("listen on %s: %w", cfg.listenAddr(), err)
	}

	grpcServer := grpc.NewServer(serverOptions...)
	cyclingtrackerv1.RegisterCyclingTrackerServer(grpcServer,
		trackerservice.NewService(trackerStore, trackerStore, cfg.DistanceRule))
	cyclingtrackerv1.RegisterSessionAuthServer(grpcServer,
		authservice.NewService(authStore, sessions, cfg.PasswordHashCost))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(cyclingtrackerv1.CyclingTrackerServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(cyclingtrackerv1.SessionAuthServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	if cfg.Reflection {
		reflection.Register(grpcServer)
	}

	return &Server{
		listener:     listener,
		grpcServer:   grpcServer,
		health:       healthServer,
		trackerStore: trackerStore,
		authStore:    authStore,
		tokenStore:   tokenStore,
	}, nil
}

// Addr returns the listener address.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a server until the context ends.
func Run(ctx context.Context, cfg Config) error {
	srv, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	return srv.Serve(ctx)
}

// Serve starts the server and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.closeStores()

	log.Printf("tracker server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	handleErr := func(err error) error {
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.stop()
		return handleErr(<-serveErr)
	case err := <-serveErr:
		return handleErr(err)
	}
}

// stop drains open calls, forcing a hard stop once timeouts.Shutdown passes
// so a stuck live stream cannot hold the process open.
func (s *Server) stop() {
	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(timeouts.Shutdown):
		log.Printf("graceful stop timed out after %s; stopping", timeouts.Shutdown)
		s.grpcServer.Stop()
		<-stopped
	}
}

func openTrackerStore(path string) (*trackersqlite.Store, error) {
	path = defaultPath(path, "tracker.db")
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	store, err := trackersqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tracker sqlite store: %w", err)
	}
	return store, nil
}

func openAuthStore(path string) (*authsqlite.Store, error) {
	path = defaultPath(path, "auth.db")
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	store, err := authsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open auth sqlite store: %w", err)
	}
	return store, nil
}

func defaultPath(path string, name string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return filepath.Join("data", name)
	}
	return path
}

func ensureDir(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}
	return nil
}

func (s *Server) closeStores() {
	if s == nil {
		return
	}
	if err := s.trackerStore.Close(); err != nil {
		log.Printf("close tracker store: %v", err)
	}
	if err := s.authStore.Close(); err != nil {
		log.Printf("close auth store: %v", err)
	}
	if err := s.tokenStore.Close(); err != nil {
		log.Printf("close session token store: %v", err)
	}
}
