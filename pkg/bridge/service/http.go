package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/ckbridge-starter/pkg/app/errors"
	apphttp "github.com/chainsafe/ckbridge-starter/pkg/app/http"
	"github.com/chainsafe/ckbridge-starter/pkg/auth"
	"github.com/chainsafe/ckbridge-starter/pkg/bridge"
	"github.com/chainsafe/ckbridge-starter/pkg/token"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the bridge endpoints on the given chi router.
// guard wraps the state-changing endpoints (approve, withdraw, transfer).
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger, guard ...func(http.Handler) http.Handler) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/v1", func(r chi.Router) {
		r.MethodNotAllowed(apphttp.MethodNotAllowed)

		r.Get("/deposit-address", h.handle(h.depositAddress))
		r.Get("/balance/{asset}/{principal}", h.handle(h.balance))
		r.Get("/canister-ids/{token}", h.handle(h.canisterIDs))

		r.Group(func(r chi.Router) {
			r.Use(guard...)
			r.Post("/approve", h.handle(h.approve))
			r.Post("/withdraw", h.handle(h.withdraw))
			r.Post("/transfer", h.handle(h.transfer))
		})
	})
}

func (h *HTTP) handle(fn apphttp.HandlerFunc) http.HandlerFunc {
	return apphttp.LogErrors(h.logger, fn)
}

func (h *HTTP) depositAddress(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.DepositAddress(r.Context(), &bridge.DepositAddressRequest{
		Principal: r.URL.Query().Get("principal"),
	})
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) balance(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.Balance(r.Context(), &bridge.BalanceRequest{
		Asset: chi.URLParam(r, "asset"),
		Owner: chi.URLParam(r, "principal"),
	})
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) approve(w http.ResponseWriter, r *http.Request) error {
	var req bridge.ApproveRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	// An authenticated bearer may only approve from its own subaccount.
	if sub, ok := auth.SubjectFromContext(r.Context()); ok && sub != req.Caller {
		return apperrors.ForbiddenError(nil, "caller does not match authenticated principal")
	}

	resp, err := h.service.Approve(r.Context(), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) withdraw(w http.ResponseWriter, r *http.Request) error {
	var req bridge.WithdrawRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.Withdraw(r.Context(), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) transfer(w http.ResponseWriter, r *http.Request) error {
	var req bridge.TransferRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.Transfer(r.Context(), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) canisterIDs(w http.ResponseWriter, r *http.Request) error {
	tok, err := token.ParseToken(chi.URLParam(r, "token"))
	if err != nil {
		return apperrors.ResourceNotFoundError(err, "unknown token")
	}

	resp, err := h.service.CanisterIDs(r.Context(), tok)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}
