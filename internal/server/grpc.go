package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	attributeHandler "github.com/fekuna/omnipos-catalog-service/internal/attribute/handler"
	categoryHandler "github.com/fekuna/omnipos-catalog-service/internal/category/handler"
	"github.com/fekuna/omnipos-catalog-service/internal/metrics"
	"github.com/fekuna/omnipos-catalog-service/internal/requestctx"
	"github.com/fekuna/omnipos-catalog-service/internal/rpc/catalogv1"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
)

type GRPCDeps struct {
	Attributes *attributeHandler.GRPCHandler
	Categories *categoryHandler.GRPCHandler
	Recorder   metrics.Recorder
	Logger     logger.ZapLogger
}

func NewGRPCServer(d GRPCDeps, opts ...grpc.ServerOption) *grpc.Server {
	recorder := d.Recorder
	if recorder == nil {
		recorder = metrics.NopRecorder{}
	}

	opts = append(opts, grpc.ChainUnaryInterceptor(
		RequestIDInterceptor(),
		MetricsInterceptor(recorder),
		LoggingInterceptor(d.Logger),
		RecoveryInterceptor(d.Logger),
	))
	srv := grpc.NewServer(opts...)

	catalogv1.RegisterAttributeServiceServer(srv, d.Attributes)
	catalogv1.RegisterCategoryServiceServer(srv, d.Categories)
	reflection.Register(srv)

	return srv
}

func RequestIDInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx, id := requestctx.Ensure(ctx, "")
		_ = grpc.SetHeader(ctx, metadata.Pairs(requestctx.MetadataKey, id))
		return handler(ctx, req)
	}
}

// MetricsInterceptor records one observation per call, with the gRPC code translated to
// the HTTP status the REST transport would have answered.
func MetricsInterceptor(recorder metrics.Recorder) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		record(recorder, info.FullMethod, httpStatusFromCode(status.Code(err)), time.Since(start))
		return resp, err
	}
}

func LoggingInterceptor(log logger.ZapLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		log.Info("grpc request",
			zap.String("request_id", requestctx.RequestID(ctx)),
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
			zap.Duration("duration", time.Since(start)),
		)
		return resp, err
	}
}

func RecoveryInterceptor(log logger.ZapLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic serving grpc call",
					zap.String("method", info.FullMethod),
					zap.String("panic", fmt.Sprint(rec)),
					zap.Stack("stack"),
				)
				resp, err = nil, status.Error(codes.Internal, "internal server error")
			}
		}()
		return handler(ctx, req)
	}
}

func httpStatusFromCode(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.Canceled:
		return 499
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return http.StatusBadRequest
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists, codes.Aborted:
		return http.StatusConflict
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Unimplemented:
		return http.StatusNotImplemented
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
