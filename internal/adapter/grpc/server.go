package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/bankdash-backend/internal/domain"
	"github.com/simaogato/bankdash-backend/internal/usecase/dashboard"
)

const maxInjectCount = 100

// Server implements the DashboardService gRPC server
type Server struct {
	DashboardService *dashboard.DashboardService
}

// NewServer creates a new gRPC server instance
func NewServer(dashboardService *dashboard.DashboardService) *Server {
	return &Server{DashboardService: dashboardService}
}

// GetAccounts handles the GetAccounts RPC
func (s *Server) GetAccounts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	accounts := s.DashboardService.GetAccounts(ctx)
	return newStruct(map[string]interface{}{"accounts": accountsToList(accounts)}), nil
}

// GetTransactions handles the GetTransactions RPC
func (s *Server) GetTransactions(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	txs := s.DashboardService.GetTransactions(ctx)
	return newStruct(map[string]interface{}{"transactions": transactionsToList(txs)}), nil
}

// GetProfile handles the GetProfile RPC
func (s *Server) GetProfile(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	profile := s.DashboardService.GetProfile(ctx)
	return newStruct(map[string]interface{}{"profile": domainProfileToMap(profile)}), nil
}

// GetAccountView handles the GetAccountView RPC
func (s *Server) GetAccountView(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	accountID := stringField(req, "accountId")

	view, ok := s.DashboardService.GetAccountView(ctx, accountID)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "account not found: %s", accountID)
	}

	return newStruct(map[string]interface{}{
		"account":   domainAccountToMap(view.Account),
		"iban":      view.IBAN,
		"count":     view.Buckets.Len(),
		"pending":   transactionsToList(view.Buckets.Pending),
		"today":     transactionsToList(view.Buckets.Today),
		"yesterday": transactionsToList(view.Buckets.Yesterday),
		"earlier":   transactionsToList(view.Buckets.Earlier),
	}), nil
}

// UpdateBalance handles the UpdateBalance RPC
func (s *Server) UpdateBalance(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	balance, present, err := decimalField(req, "balance")
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	if !present {
		return nil, status.Error(codes.InvalidArgument, "balance is required")
	}

	s.DashboardService.UpdateBalance(ctx, stringField(req, "accountId"), balance)
	return newStruct(nil), nil
}

// EditBalance handles the EditBalance RPC (raw inline-edit text)
func (s *Server) EditBalance(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	s.DashboardService.EditBalance(ctx, stringField(req, "accountId"), stringField(req, "text"))
	return newStruct(nil), nil
}

// UpsertTransaction handles the UpsertTransaction RPC
func (s *Server) UpsertTransaction(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	tx, err := mapToTransaction(structField(req, "transaction"))
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	normalized := tx.Normalized()
	if err := normalized.Validate(); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	s.DashboardService.UpsertTransaction(ctx, tx)
	return newStruct(nil), nil
}

// EditTransactionField handles the EditTransactionField RPC (raw inline-edit text)
func (s *Server) EditTransactionField(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	s.DashboardService.EditTransactionField(ctx,
		stringField(req, "transactionId"),
		stringField(req, "field"),
		stringField(req, "text"),
	)
	return newStruct(nil), nil
}

// AddTransaction handles the AddTransaction RPC
// The request carries factory input; invalid input is ignored and reported as added=false.
func (s *Server) AddTransaction(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	input, err := mapToTransactionInput(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	tx, added := s.DashboardService.SubmitTransaction(ctx, input, stringField(req, "activeAccountId"))
	resp := map[string]interface{}{"added": added}
	if added {
		resp["transaction"] = domainTransactionToMap(tx)
	}
	return newStruct(resp), nil
}

// InjectTransactions handles the InjectTransactions RPC
func (s *Server) InjectTransactions(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	count := intField(req, "count", 1)
	if count < 1 || count > maxInjectCount {
		return nil, status.Errorf(codes.InvalidArgument, "count must be between 1 and %d", maxInjectCount)
	}

	txs := s.DashboardService.InjectTransactions(ctx, count, stringField(req, "activeAccountId"))
	return newStruct(map[string]interface{}{"transactions": transactionsToList(txs)}), nil
}

// UpdateProfileField handles the UpdateProfileField RPC
func (s *Server) UpdateProfileField(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	field := domain.ProfileField(stringField(req, "field"))
	s.DashboardService.UpdateProfileField(ctx, field, stringField(req, "value"))
	return newStruct(nil), nil
}

// EditProfileField handles the EditProfileField RPC (raw inline-edit text)
func (s *Server) EditProfileField(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	field := domain.ProfileField(stringField(req, "field"))
	s.DashboardService.EditProfileField(ctx, field, stringField(req, "text"))
	return newStruct(nil), nil
}
