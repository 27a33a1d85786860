package grpc

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/simaogato/bankdash-backend/internal/logger"
	"github.com/simaogato/bankdash-backend/internal/usecase/dashboard"
)

// EditModeHeader is the metadata key carrying the presentation layer's edit-mode toggle
const EditModeHeader = "x-edit-mode"

// AuthInterceptor returns a gRPC unary server interceptor that validates
// the operator token from request metadata for protected methods.
// If the token is missing or invalid, it returns status.Unauthenticated.
// Unprotected methods are passed through untouched.
func AuthInterceptor(validToken string, isProtected func(fullMethod string) bool) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if !isProtected(info.FullMethod) {
			return handler(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		authHeaders := md.Get("authorization")
		if len(authHeaders) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing authorization header")
		}

		if authHeaders[0] != validToken {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		return handler(ctx, req)
	}
}

// EditModeInterceptor copies the edit-mode toggle from metadata into the context
// Edit mode is on for "on", "true" or "1"; anything else, or no header, is off.
func EditModeInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		on := false
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(EditModeHeader); len(values) > 0 {
				on = dashboard.ParseEditMode(values[0])
			}
		}
		return handler(dashboard.WithEditMode(ctx, on), req)
	}
}

// LoggingInterceptor attaches a per-call logger to the context and logs each call
func LoggingInterceptor(base zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		log := base.With().Str("method", info.FullMethod).Logger()

		resp, err := handler(logger.WithContext(ctx, log), req)

		log.Debug().
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Msg("grpc call")

		return resp, err
	}
}
