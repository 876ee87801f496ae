package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/ckbridge-starter/pkg/app/errors"
	apphttp "github.com/chainsafe/ckbridge-starter/pkg/app/http"
	"github.com/chainsafe/ckbridge-starter/pkg/auth"
	"github.com/chainsafe/ckbridge-starter/pkg/bridge"
	"github.com/chainsafe/ckbridge-starter/pkg/bridge/service/mocks"
	"github.com/chainsafe/ckbridge-starter/pkg/token"
)

func newBridgeTestServer(svc Service, guard ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, zap.NewNop(), guard...)
	return r
}

func actAs(subject string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.WithSubject(r.Context(), subject)))
		})
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apphttp.ErrorResponse {
	t.Helper()
	var got apphttp.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func TestBridgeHTTP_DepositAddress(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		DepositAddress(mock.Anything, &bridge.DepositAddressRequest{Principal: callerID}).
		Return(&bridge.DepositAddressResponse{Principal: callerID, Subaccount: "0x0104"}, nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/v1/deposit-address?principal="+callerID, nil)
	rec := httptest.NewRecorder()
	newBridgeTestServer(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"principal":"2vxsx-fae","subaccount":"0x0104"}`, rec.Body.String())
}

func TestBridgeHTTP_Balance_PathParams(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Balance(mock.Anything, &bridge.BalanceRequest{Asset: "usdc", Owner: callerID}).
		Return(&bridge.BalanceResponse{Owner: callerID, Asset: "usdc", Amount: "2500000", Formatted: "2.5"}, nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/v1/balance/usdc/"+callerID, nil)
	rec := httptest.NewRecorder()
	newBridgeTestServer(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got bridge.BalanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "2.5", got.Formatted)
}

func TestBridgeHTTP_Approve_InvalidJSON_ReturnsBadRequest(t *testing.T) {
	svc := mocks.NewService(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/approve", bytes.NewBufferString("{invalid"))
	rec := httptest.NewRecorder()
	newBridgeTestServer(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	got := decodeError(t, rec)
	assert.Equal(t, "invalid JSON", got.ErrMsg)
	assert.Equal(t, http.StatusBadRequest, got.ErrMsgCode)
}

func TestBridgeHTTP_Approve_SubjectMismatch_ReturnsForbidden(t *testing.T) {
	svc := mocks.NewService(t)

	body := `{"asset":"eth","caller":"2vxsx-fae","amount":"10"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/approve", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	newBridgeTestServer(svc, actAs(recipientID)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBridgeHTTP_Approve_SubjectMatch(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Approve(mock.Anything, &bridge.ApproveRequest{Asset: "eth", Caller: callerID, Amount: "10"}).
		Return(&bridge.ApproveResponse{BlockIndex: "5"}, nil).
		Once()

	body := `{"asset":"eth","caller":"2vxsx-fae","amount":"10"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/approve", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	newBridgeTestServer(svc, actAs(callerID)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"block_index":"5"}`, rec.Body.String())
}

func TestBridgeHTTP_Withdraw_RejectedVariant(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Withdraw(mock.Anything, mock.Anything).
		Return(nil, apperrors.RejectedError(nil, "AmountTooLow", "withdrawal failed: AmountTooLow")).
		Once()

	body := `{"asset":"eth","recipient":"` + ethRecipient + `","amount":"1"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/withdraw", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	newBridgeTestServer(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	got := decodeError(t, rec)
	assert.Equal(t, "AmountTooLow", got.Reason)
}

func TestBridgeHTTP_Transfer(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Transfer(mock.Anything, &bridge.TransferRequest{Asset: "usdc", To: recipientID, Amount: "250"}).
		Return(&bridge.TransferResponse{BlockIndex: "99"}, nil).
		Once()

	body := `{"asset":"usdc","to":"` + recipientID + `","amount":"250"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/transfer", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	newBridgeTestServer(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"block_index":"99"}`, rec.Body.String())
}

func TestBridgeHTTP_CanisterIDs(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		CanisterIDs(mock.Anything, token.CkUSDC).
		Return(&bridge.CanisterIDsResponse{
			Token:      "ckusdc",
			Registered: true,
			Ledger:     "xevnm-gaaaa-aaaar-qafnq-cai",
			Archives:   []string{},
		}, nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/v1/canister-ids/ckUSDC", nil)
	rec := httptest.NewRecorder()
	newBridgeTestServer(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"ckusdc","registered":true,"ledger":"xevnm-gaaaa-aaaar-qafnq-cai","archives":[]}`, rec.Body.String())
}

func TestBridgeHTTP_CanisterIDs_NotRegistered(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		CanisterIDs(mock.Anything, token.CkSepoliaUSDC).
		Return(&bridge.CanisterIDsResponse{Token: "cksepoliausdc", Archives: []string{}}, nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/v1/canister-ids/cksepoliausdc", nil)
	rec := httptest.NewRecorder()
	newBridgeTestServer(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"cksepoliausdc","registered":false,"archives":[]}`, rec.Body.String())
}

func TestBridgeHTTP_CanisterIDs_UnknownToken(t *testing.T) {
	svc := mocks.NewService(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/canister-ids/ckdoge", nil)
	rec := httptest.NewRecorder()
	newBridgeTestServer(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "unknown token", decodeError(t, rec).ErrMsg)
}

func TestBridgeHTTP_WrongMethod_ReturnsMethodNotAllowed(t *testing.T) {
	svc := mocks.NewService(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/transfer", nil)
	rec := httptest.NewRecorder()
	newBridgeTestServer(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.StatusMethodNotAllowed, decodeError(t, rec).ErrMsgCode)
}
