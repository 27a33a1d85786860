//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	grpcadapter "github.com/simaogato/bankdash-backend/internal/adapter/grpc"
)

var (
	grpcClient *grpcadapter.Client
	grpcConn   *grpc.ClientConn
	httpBase   string
)

// TestMain connects to a running server (see cmd/server)
func TestMain(m *testing.M) {
	var err error
	grpcConn, err = grpc.NewClient(getGRPCAddress(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to gRPC server: %v", err))
	}

	grpcClient = grpcadapter.NewClient(grpcConn)
	httpBase = getHTTPAddress()

	code := m.Run()

	grpcConn.Close()
	os.Exit(code)
}

// getAuthContext returns a context with authorization metadata
func getAuthContext(editMode bool) context.Context {
	md := metadata.New(map[string]string{
		"authorization": getAPIToken(),
	})
	if editMode {
		md.Set(grpcadapter.EditModeHeader, "on")
	}
	return metadata.NewOutgoingContext(context.Background(), md)
}

func getAPIToken() string {
	if token := os.Getenv("API_TOKEN"); token != "" {
		return token
	}
	return "dev-token"
}

// getGRPCAddress returns the gRPC server address from environment or defaults
func getGRPCAddress() string {
	addr := os.Getenv("GRPC_ADDRESS")
	if addr == "" {
		addr = "localhost:8080"
	}
	return addr
}

// getHTTPAddress returns the HTTP base URL from environment or defaults
func getHTTPAddress() string {
	addr := os.Getenv("HTTP_ADDRESS")
	if addr == "" {
		addr = "http://localhost:8081"
	}
	return strings.TrimRight(addr, "/")
}

func findAccountByCurrency(t *testing.T, currency string) *structpb.Struct {
	t.Helper()
	resp, err := grpcClient.Call(context.Background(), grpcadapter.MethodGetAccounts, nil)
	require.NoError(t, err)
	for _, v := range resp.GetFields()["accounts"].GetListValue().GetValues() {
		acc := v.GetStructValue()
		if acc.GetFields()["currency"].GetStringValue() == currency {
			return acc
		}
	}
	t.Fatalf("no %s account", currency)
	return nil
}

// TestEndToEndFlow adds a transaction for the GBP account and edits it inline
func TestEndToEndFlow(t *testing.T) {
	gbp := findAccountByCurrency(t, "GBP")
	gbpID := gbp.GetFields()["id"].GetStringValue()

	// 1. Add a transaction while the GBP account is active
	addResp, err := grpcClient.Call(getAuthContext(false), grpcadapter.MethodAddTransaction, map[string]interface{}{
		"recipient":       "E2E Coffee",
		"amount":          "3.40",
		"currency":        "EUR",
		"activeAccountId": gbpID,
	})
	require.NoError(t, err, "AddTransaction should succeed")
	require.True(t, addResp.GetFields()["added"].GetBoolValue())

	added := addResp.GetFields()["transaction"].GetStructValue()
	txID := added.GetFields()["id"].GetStringValue()
	assert.Equal(t, "GBP", added.GetFields()["currency"].GetStringValue(), "Currency should follow the active account")

	// 2. It heads the feed
	feed, err := grpcClient.Call(context.Background(), grpcadapter.MethodGetTransactions, nil)
	require.NoError(t, err)
	head := feed.GetFields()["transactions"].GetListValue().GetValues()[0].GetStructValue()
	assert.Equal(t, txID, head.GetFields()["id"].GetStringValue())

	// 3. Inline edit without edit mode is ignored
	_, err = grpcClient.Call(getAuthContext(false), grpcadapter.MethodEditTransactionField, map[string]interface{}{
		"transactionId": txID,
		"field":         "amount",
		"text":          "99",
	})
	require.NoError(t, err)

	// 4. Inline edit in edit mode is applied and the account view reflects it
	_, err = grpcClient.Call(getAuthContext(true), grpcadapter.MethodEditTransactionField, map[string]interface{}{
		"transactionId": txID,
		"field":         "amount",
		"text":          "£7.25",
	})
	require.NoError(t, err)

	view, err := grpcClient.Call(context.Background(), grpcadapter.MethodGetAccountView, map[string]interface{}{"accountId": gbpID})
	require.NoError(t, err)

	found := false
	for _, v := range view.GetFields()["today"].GetListValue().GetValues() {
		tx := v.GetStructValue()
		if tx.GetFields()["id"].GetStringValue() == txID {
			found = true
			assert.Equal(t, "7.25", tx.GetFields()["amount"].GetStringValue())
		}
	}
	assert.True(t, found, "edited transaction should be in the Today bucket")
}

func TestNegativeScenarios(t *testing.T) {
	t.Run("MissingToken", func(t *testing.T) {
		_, err := grpcClient.Call(context.Background(), grpcadapter.MethodUpdateBalance, map[string]interface{}{
			"accountId": "1",
			"balance":   "1.00",
		})
		require.Error(t, err)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("InvalidBalance", func(t *testing.T) {
		_, err := grpcClient.Call(getAuthContext(false), grpcadapter.MethodUpdateBalance, map[string]interface{}{
			"accountId": "1",
			"balance":   "one hundred",
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("UnknownAccountView", func(t *testing.T) {
		_, err := grpcClient.Call(context.Background(), grpcadapter.MethodGetAccountView, map[string]interface{}{"accountId": "nope"})
		require.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}

// TestReadFlow checks the HTTP surface serves the same state as gRPC
func TestReadFlow(t *testing.T) {
	resp, err := http.Get(httpBase + "/api/accounts")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []struct {
			ID       string `json:"id"`
			Currency string `json:"currency"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	grpcResp, err := grpcClient.Call(context.Background(), grpcadapter.MethodGetAccounts, nil)
	require.NoError(t, err)
	accounts := grpcResp.GetFields()["accounts"].GetListValue().GetValues()

	require.Len(t, body.Data, len(accounts))
	for i, acc := range accounts {
		assert.Equal(t, acc.GetStructValue().GetFields()["id"].GetStringValue(), body.Data[i].ID)
	}

	metricsResp, err := http.Get(httpBase + "/metrics")
	require.NoError(t, err)
	defer metricsResp.Body.Close()
	assert.Equal(t, http.StatusOK, metricsResp.StatusCode)
}
