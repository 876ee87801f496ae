package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/ckbridge-starter/pkg/bridge"
	"github.com/chainsafe/ckbridge-starter/pkg/token"
)

const serviceName = "BridgeService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the bridge Service.
// It logs method entry/exit, duration, errors and the request fields that
// identify the operation.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) DepositAddress(
	ctx context.Context,
	req *bridge.DepositAddressRequest,
) (resp *bridge.DepositAddressResponse, err error) {
	defer ls.done("DepositAddress", time.Now(), &err, func() []zap.Field {
		return []zap.Field{
			zap.String("principal", resp.Principal),
			zap.String("subaccount", resp.Subaccount),
		}
	})
	return ls.svc.DepositAddress(ctx, req)
}

func (ls *logService) Balance(
	ctx context.Context,
	req *bridge.BalanceRequest,
) (resp *bridge.BalanceResponse, err error) {
	ls.started("Balance",
		zap.String("asset", req.Asset),
		zap.String("owner", req.Owner),
	)
	defer ls.done("Balance", time.Now(), &err, func() []zap.Field {
		return []zap.Field{zap.String("amount", resp.Amount)}
	})
	return ls.svc.Balance(ctx, req)
}

func (ls *logService) Approve(
	ctx context.Context,
	req *bridge.ApproveRequest,
) (resp *bridge.ApproveResponse, err error) {
	ls.started("Approve",
		zap.String("asset", req.Asset),
		zap.String("caller", req.Caller),
		zap.String("amount", req.Amount),
	)
	defer ls.done("Approve", time.Now(), &err, func() []zap.Field {
		return []zap.Field{zap.String("block_index", resp.BlockIndex)}
	})
	return ls.svc.Approve(ctx, req)
}

func (ls *logService) Withdraw(
	ctx context.Context,
	req *bridge.WithdrawRequest,
) (resp *bridge.WithdrawResponse, err error) {
	ls.started("Withdraw",
		zap.String("asset", req.Asset),
		zap.String("recipient", req.Recipient),
		zap.String("amount", req.Amount),
	)
	defer ls.done("Withdraw", time.Now(), &err, func() []zap.Field {
		return []zap.Field{
			zap.String("block_index", resp.BlockIndex),
			zap.String("cketh_block_index", resp.CkEthBlockIndex),
		}
	})
	return ls.svc.Withdraw(ctx, req)
}

func (ls *logService) Transfer(
	ctx context.Context,
	req *bridge.TransferRequest,
) (resp *bridge.TransferResponse, err error) {
	ls.started("Transfer",
		zap.String("asset", req.Asset),
		zap.String("to", req.To),
		zap.String("amount", req.Amount),
	)
	defer ls.done("Transfer", time.Now(), &err, func() []zap.Field {
		return []zap.Field{zap.String("block_index", resp.BlockIndex)}
	})
	return ls.svc.Transfer(ctx, req)
}

func (ls *logService) CanisterIDs(ctx context.Context, tok token.Token) (resp *bridge.CanisterIDsResponse, err error) {
	ls.started("CanisterIDs", zap.String("token", tok.String()))
	defer ls.done("CanisterIDs", time.Now(), &err, func() []zap.Field {
		return []zap.Field{
			zap.Bool("registered", resp.Registered),
			zap.String("ledger", resp.Ledger),
			zap.String("index", resp.Index),
			zap.Int("archives", len(resp.Archives)),
		}
	})
	return ls.svc.CanisterIDs(ctx, tok)
}

func (ls *logService) started(method string, fields ...zap.Field) {
	ls.logger.Info(method+" started", append([]zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
	}, fields...)...)
}

// done logs the outcome; result is only evaluated on success.
func (ls *logService) done(method string, start time.Time, err *error, result func() []zap.Field) {
	fields := []zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	}
	if *err != nil {
		ls.logger.Error(method+" failed", append(fields, zap.Error(*err))...)
		return
	}
	ls.logger.Info(method+" completed", append(fields, result()...)...)
}
