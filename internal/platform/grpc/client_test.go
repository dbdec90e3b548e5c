package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

func startHealthServer(t *testing.T, service string, status grpc_health_v1.HealthCheckResponse_ServingStatus) (string, *health.Server) {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := gogrpc.NewServer()
	healthServer := health.NewServer()
	healthServer.SetServingStatus(service, status)
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)
	return lis.Addr().String(), healthServer
}

func TestDialWaitsForServing(t *testing.T) {
	addr, _ := startHealthServer(t, "", grpc_health_v1.HealthCheckResponse_SERVING)

	conn, err := Dial(context.Background(), addr, ClientOptions{Timeout: 2 * time.Second, Logf: t.Logf})
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestDialChecksNamedService(t *testing.T) {
	addr, healthServer := startHealthServer(t, "cyclingtracker.CyclingTracker", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	go func() {
		time.Sleep(150 * time.Millisecond)
		healthServer.SetServingStatus("cyclingtracker.CyclingTracker", grpc_health_v1.HealthCheckResponse_SERVING)
	}()

	conn, err := Dial(context.Background(), addr, ClientOptions{
		HealthService: "cyclingtracker.CyclingTracker",
		Timeout:       3 * time.Second,
	})
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	_ = conn.Close()
}

func TestDialFailsWhenNotServing(t *testing.T) {
	addr, _ := startHealthServer(t, "", grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	start := time.Now()
	conn, err := Dial(context.Background(), addr, ClientOptions{Timeout: 200 * time.Millisecond})
	if err == nil {
		_ = conn.Close()
		t.Fatal("expected error")
	}
	var dialErr *DialError
	if !errors.As(err, &dialErr) || dialErr.Stage != DialStageHealth {
		t.Fatalf("err = %v, want health stage dial error", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("dial took %v, want it bounded by the timeout", elapsed)
	}
}

func TestWaitForHealthRequiresConn(t *testing.T) {
	if err := WaitForHealth(context.Background(), nil, "", nil); err == nil {
		t.Fatal("expected error for nil connection")
	}
}

func TestDialErrorNil(t *testing.T) {
	var err *DialError
	if err.Error() != "gRPC dial error" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatal("expected nil unwrap")
	}
}
