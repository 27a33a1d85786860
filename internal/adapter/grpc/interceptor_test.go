package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/simaogato/bankdash-backend/internal/usecase/dashboard"
)

func TestAuthInterceptor(t *testing.T) {
	validToken := "test-token-123"
	interceptor := AuthInterceptor(validToken, IsMutation)

	tests := []struct {
		name           string
		ctx            context.Context
		method         string
		handlerCalled  bool
		expectedCode   codes.Code
		expectedErrMsg string
	}{
		{
			name: "Valid Token",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("authorization", validToken),
			),
			method:         MethodUpdateBalance,
			handlerCalled:  true,
			expectedCode:   codes.OK,
			expectedErrMsg: "",
		},
		{
			name: "Invalid Token",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("authorization", "wrong-token"),
			),
			method:         MethodAddTransaction,
			handlerCalled:  false,
			expectedCode:   codes.Unauthenticated,
			expectedErrMsg: "invalid token",
		},
		{
			name:           "Missing Token",
			ctx:            context.Background(),
			method:         MethodEditTransactionField,
			handlerCalled:  false,
			expectedCode:   codes.Unauthenticated,
			expectedErrMsg: "missing metadata",
		},
		{
			name: "Missing Authorization Header",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("other-header", "value"),
			),
			method:         MethodUpdateProfileField,
			handlerCalled:  false,
			expectedCode:   codes.Unauthenticated,
			expectedErrMsg: "missing authorization header",
		},
		{
			name:           "Read Method Without Token",
			ctx:            context.Background(),
			method:         MethodGetAccounts,
			handlerCalled:  true,
			expectedCode:   codes.OK,
			expectedErrMsg: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				handlerCalled = true
				return "success", nil
			}

			info := &grpc.UnaryServerInfo{
				FullMethod: FullMethod(tt.method),
			}

			resp, err := interceptor(tt.ctx, "test-request", info, handler)

			assert.Equal(t, tt.handlerCalled, handlerCalled, "handler called status mismatch")

			if tt.expectedCode == codes.OK {
				assert.NoError(t, err)
				assert.Equal(t, "success", resp)
			} else {
				assert.Error(t, err)
				st, ok := status.FromError(err)
				assert.True(t, ok, "error should be a gRPC status")
				assert.Equal(t, tt.expectedCode, st.Code())
				assert.Contains(t, st.Message(), tt.expectedErrMsg)
			}
		})
	}
}

func TestEditModeInterceptor(t *testing.T) {
	interceptor := EditModeInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: FullMethod(MethodEditBalance)}

	tests := []struct {
		name string
		ctx  context.Context
		want bool
	}{
		{
			name: "On",
			ctx:  metadata.NewIncomingContext(context.Background(), metadata.Pairs(EditModeHeader, "on")),
			want: true,
		},
		{
			name: "True Mixed Case",
			ctx:  metadata.NewIncomingContext(context.Background(), metadata.Pairs(EditModeHeader, " TRUE ")),
			want: true,
		},
		{
			name: "Off",
			ctx:  metadata.NewIncomingContext(context.Background(), metadata.Pairs(EditModeHeader, "off")),
			want: false,
		},
		{
			name: "No Metadata",
			ctx:  context.Background(),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got bool
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				got = dashboard.EditModeFromContext(ctx)
				return nil, nil
			}

			_, err := interceptor(tt.ctx, nil, info, handler)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsMutation(t *testing.T) {
	assert.False(t, IsMutation(FullMethod(MethodGetAccounts)))
	assert.False(t, IsMutation(FullMethod(MethodGetAccountView)))
	assert.True(t, IsMutation(FullMethod(MethodUpdateBalance)))
	assert.True(t, IsMutation(FullMethod(MethodInjectTransactions)))
	assert.False(t, IsMutation("/grpc.reflection.v1.ServerReflection/ServerReflectionInfo"))
}
