// Package tracker parses tracker command configuration and starts the server.
package tracker

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"strconv"
	"strings"
	"time"

	cyclingtrackerv1 "github.com/louisbranch/cyclingtracker/api/cyclingtracker/v1"
	entrypoint "github.com/louisbranch/cyclingtracker/internal/platform/cmd"
	platformgrpc "github.com/louisbranch/cyclingtracker/internal/platform/grpc"
	server "github.com/louisbranch/cyclingtracker/internal/services/tracker/app"
	"github.com/louisbranch/cyclingtracker/internal/services/tracker/workout"
	"google.golang.org/grpc/credentials"
)

// Config holds tracker command configuration.
type Config struct {
	Port             int                  `env:"CYCLING_TRACKER_PORT" envDefault:"10000"`
	Addr             string               `env:"CYCLING_TRACKER_ADDR"`
	DBPath           string               `env:"CYCLING_TRACKER_DB_PATH" envDefault:"data/tracker.db"`
	AuthDBPath       string               `env:"CYCLING_TRACKER_AUTH_DB_PATH" envDefault:"data/auth.db"`
	RedisAddr        string               `env:"CYCLING_TRACKER_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword    string               `env:"CYCLING_TRACKER_REDIS_PASSWORD"`
	RedisDB          int                  `env:"CYCLING_TRACKER_REDIS_DB" envDefault:"0"`
	SessionTTL       time.Duration        `env:"CYCLING_TRACKER_SESSION_TTL" envDefault:"5m"`
	RequireSession   bool                 `env:"CYCLING_TRACKER_REQUIRE_SESSION" envDefault:"true"`
	DistanceRule     workout.DistanceRule `env:"CYCLING_TRACKER_DISTANCE_RULE" envDefault:"speed"`
	TLSCertFile      string               `env:"CYCLING_TRACKER_TLS_CERT_FILE"`
	TLSKeyFile       string               `env:"CYCLING_TRACKER_TLS_KEY_FILE"`
	Reflection       bool                 `env:"CYCLING_TRACKER_REFLECTION" envDefault:"true"`
	PasswordHashCost int                  `env:"CYCLING_TRACKER_PASSWORD_HASH_COST"`

	// HealthCheck makes Run probe a running server instead of starting one.
	HealthCheck bool
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The tracker server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The tracker server listen address (overrides -port)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the workout SQLite database")
	fs.StringVar(&cfg.AuthDBPath, "auth-db", cfg.AuthDBPath, "Path to the user SQLite database")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address for session tokens")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Session token lifetime")
	fs.BoolVar(&cfg.RequireSession, "require-session", cfg.RequireSession, "Require a session token on tracker calls")
	fs.BoolVar(&cfg.HealthCheck, "healthcheck", false, "Check that the tracker server at -addr/-port is serving, then exit")
	fs.TextVar(&cfg.DistanceRule, "distance-rule", cfg.DistanceRule, `Distance added per live sample: "speed" or "fixed:<km>"`)
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the tracker server, or only probes it when HealthCheck is set.
func Run(ctx context.Context, cfg Config) error {
	if cfg.HealthCheck {
		return checkHealth(ctx, cfg)
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceTracker, func(ctx context.Context) error {
		return server.Run(ctx, cfg.serverConfig())
	})
}

func (c Config) serverConfig() server.Config {
	return server.Config{
		Addr:             c.Addr,
		Port:             c.Port,
		DBPath:           c.DBPath,
		AuthDBPath:       c.AuthDBPath,
		RedisAddr:        c.RedisAddr,
		RedisPassword:    c.RedisPassword,
		RedisDB:          c.RedisDB,
		SessionTTL:       c.SessionTTL,
		RequireSession:   c.RequireSession,
		DistanceRule:     c.DistanceRule,
		TLSCertFile:      c.TLSCertFile,
		TLSKeyFile:       c.TLSKeyFile,
		Reflection:       c.Reflection,
		PasswordHashCost: c.PasswordHashCost,
	}
}

// checkHealth dials the configured server and waits for the tracker service
// to report SERVING.
func checkHealth(ctx context.Context, cfg Config) error {
	opts := platformgrpc.ClientOptions{HealthService: cyclingtrackerv1.CyclingTrackerServiceName}
	if cfg.TLSCertFile != "" {
		creds, err := credentials.NewClientTLSFromFile(cfg.TLSCertFile, "")
		if err != nil {
			return fmt.Errorf("load tls cert: %w", err)
		}
		opts.Creds = creds
	}
	addr := cfg.probeAddr()
	conn, err := platformgrpc.Dial(ctx, addr, opts)
	if err != nil {
		return fmt.Errorf("health check %s: %w", addr, err)
	}
	log.Printf("tracker at %s is serving", addr)
	return conn.Close()
}

// probeAddr turns the listen address into one a local client can reach.
func (c Config) probeAddr() string {
	addr := strings.TrimSpace(c.Addr)
	if addr == "" {
		return net.JoinHostPort("localhost", strconv.Itoa(c.Port))
	}
	host, port, err := net.SplitHostPort(addr)
	if err != nil || host != "" {
		return addr
	}
	return net.JoinHostPort("localhost", port)
}
