package server

import (
	"time"

	"shortlink/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/grpc"
)

const defaultGRPCTimeout = 5 * time.Second

// NewGRPCServer new a gRPC server. It serves grpc.health.v1.Health, which
// reports SERVING once started and NOT_SERVING after stop.
func NewGRPCServer(c *conf.Server, logger log.Logger) *grpc.Server {
	var opts = []grpc.ServerOption{
		grpc.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
		),
	}
	timeout := defaultGRPCTimeout
	if c != nil && c.Grpc != nil {
		if c.Grpc.Network != "" {
			opts = append(opts, grpc.Network(c.Grpc.Network))
		}
		if c.Grpc.Addr != "" {
			opts = append(opts, grpc.Address(c.Grpc.Addr))
		}
		timeout = conf.Duration(c.Grpc.Timeout, defaultGRPCTimeout)
	}
	opts = append(opts, grpc.Timeout(timeout))

	return grpc.NewServer(opts...)
}
