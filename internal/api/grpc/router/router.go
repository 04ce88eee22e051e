// Package router assembles the gRPC server that exposes health checks and
// reflection next to the HTTP API.
package router

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/dtroode/yokai-server/internal/api/grpc/middleware"
	"github.com/dtroode/yokai-server/internal/logger"
)

const healthCheckMethod = "/grpc.health.v1.Health/Check"

// Router represents the gRPC router of the health endpoint.
type Router struct {
	health          *health.Server
	logHealthChecks bool
	logger          *logger.Logger
}

// New creates new gRPC Router instance. Probes call Check often, so they are
// only logged when logHealthChecks is set.
func New(healthServer *health.Server, logHealthChecks bool, logger *logger.Logger) *Router {
	return &Router{
		health:          healthServer,
		logHealthChecks: logHealthChecks,
		logger:          logger,
	}
}

func (r *Router) shouldLog(_ context.Context, c interceptors.CallMeta) bool {
	return r.logHealthChecks || c.FullMethod() != healthCheckMethod
}

func (r *Router) recoverPanic(p any) error {
	r.logger.Error("gRPC handler panicked", "panic", p)
	return status.Error(codes.Internal, "internal error")
}

// Register registers the health and reflection services with logging and
// panic recovery interceptors.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	recoveryOpt := recovery.WithRecoveryHandler(r.recoverPanic)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(recoveryOpt),
			selector.UnaryServerInterceptor(logging.HandleGRPC, selector.MatchFunc(r.shouldLog)),
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	healthpb.RegisterHealthServer(s, r.health)
	reflection.Register(s)

	return s
}
