// Package service implements the bridge operations on top of the ckETH
// ledger, minter and orchestrator canister clients.
package service

import (
	"context"
	"math/big"

	"github.com/aviate-labs/agent-go/principal"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/ckbridge-starter/internal/metrics"
	apperrors "github.com/chainsafe/ckbridge-starter/pkg/app/errors"
	"github.com/chainsafe/ckbridge-starter/pkg/bridge"
	"github.com/chainsafe/ckbridge-starter/pkg/config"
	"github.com/chainsafe/ckbridge-starter/pkg/icsdk/ledger"
	"github.com/chainsafe/ckbridge-starter/pkg/icsdk/minter"
	"github.com/chainsafe/ckbridge-starter/pkg/icsdk/orchestrator"
	"github.com/chainsafe/ckbridge-starter/pkg/subaccount"
	"github.com/chainsafe/ckbridge-starter/pkg/token"
)

// Service defines the bridge operations. Every method other than
// DepositAddress issues exactly one canister call.
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	DepositAddress(ctx context.Context, req *bridge.DepositAddressRequest) (*bridge.DepositAddressResponse, error)
	Balance(ctx context.Context, req *bridge.BalanceRequest) (*bridge.BalanceResponse, error)
	Approve(ctx context.Context, req *bridge.ApproveRequest) (*bridge.ApproveResponse, error)
	Withdraw(ctx context.Context, req *bridge.WithdrawRequest) (*bridge.WithdrawResponse, error)
	Transfer(ctx context.Context, req *bridge.TransferRequest) (*bridge.TransferResponse, error)
	CanisterIDs(ctx context.Context, tok token.Token) (*bridge.CanisterIDsResponse, error)
}

type bridgeService struct {
	self         principal.Principal
	canisters    *config.Canisters
	ledger       ledger.Ledger
	minter       minter.Minter
	orchestrator orchestrator.Orchestrator
	logger       *zap.Logger
}

// NewService creates a new bridge service acting as self against the given
// environment's canisters.
func NewService(
	self principal.Principal,
	canisters *config.Canisters,
	ledgerClient ledger.Ledger,
	minterClient minter.Minter,
	orchestratorClient orchestrator.Orchestrator,
	logger *zap.Logger,
) Service {
	return &bridgeService{
		self:         self,
		canisters:    canisters,
		ledger:       ledgerClient,
		minter:       minterClient,
		orchestrator: orchestratorClient,
		logger:       logger,
	}
}

// DepositAddress returns the deposit subaccount of the requested principal,
// or of the service's own identity when none is given. No call is made.
func (s *bridgeService) DepositAddress(
	_ context.Context,
	req *bridge.DepositAddressRequest,
) (*bridge.DepositAddressResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	owner := s.self
	if req.Principal != "" {
		p, err := subaccount.Decode(req.Principal)
		if err != nil {
			return nil, apperrors.BadRequestError(err, "principal is not a valid principal")
		}
		owner = p
	}

	return &bridge.DepositAddressResponse{
		Principal:  owner.String(),
		Subaccount: subaccount.DepositAddress(owner),
	}, nil
}

// Balance queries icrc1_balance_of for the owner's default account.
func (s *bridgeService) Balance(ctx context.Context, req *bridge.BalanceRequest) (_ *bridge.BalanceResponse, err error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	asset, _ := token.ParseAsset(req.Asset)
	owner, err := subaccount.Decode(req.Owner)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "owner is not a valid principal")
	}
	defer observe("balance", asset.String(), &err)

	amount, err := s.ledger.BalanceOf(ctx, s.ledgerFor(asset), ledger.Account{Owner: owner})
	if err != nil {
		return nil, mapCallError(err, "balance query failed")
	}

	return &bridge.BalanceResponse{
		Owner:     owner.String(),
		Asset:     asset.String(),
		Amount:    amount.String(),
		Formatted: formatUnits(amount, asset.Decimals()),
	}, nil
}

// Approve lets the environment's minter spend from the caller's deposit
// subaccount on the ledger of the requested asset.
func (s *bridgeService) Approve(ctx context.Context, req *bridge.ApproveRequest) (_ *bridge.ApproveResponse, err error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	asset, _ := token.ParseAsset(req.Asset)
	caller, err := subaccount.Decode(req.Caller)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "caller is not a valid principal")
	}
	amount, err := bridge.ParseNat(req.Amount)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "amount must be a non-negative integer")
	}
	defer observe("approve", asset.String(), &err)

	from := subaccount.FromPrincipal(caller).Bytes()
	blockIndex, err := s.ledger.Approve(ctx, s.ledgerFor(asset), ledger.ApproveArgs{
		FromSubaccount: &from,
		Spender:        ledger.Account{Owner: s.canisters.EthMinter},
		Amount:         ledger.Nat(amount),
	})
	if err != nil {
		return nil, mapCallError(err, "approval failed")
	}

	return &bridge.ApproveResponse{BlockIndex: blockIndex.String()}, nil
}

// Withdraw burns the asset on the minter and schedules the transfer to the
// Ethereum recipient. ERC-20 withdrawals always name the environment's
// USDC ledger.
func (s *bridgeService) Withdraw(ctx context.Context, req *bridge.WithdrawRequest) (_ *bridge.WithdrawResponse, err error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	asset, _ := token.ParseAsset(req.Asset)
	amount, err := bridge.ParseNat(req.Amount)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "amount must be a non-negative integer")
	}
	recipient := common.HexToAddress(req.Recipient).Hex()
	defer observe("withdraw", asset.String(), &err)

	if asset == token.ETH {
		ethRes, ethErr := s.minter.WithdrawEth(ctx, s.canisters.EthMinter, minter.WithdrawalArg{
			Amount:    ledger.Nat(amount),
			Recipient: recipient,
		})
		if ethErr != nil {
			return nil, mapCallError(ethErr, "withdrawal failed")
		}
		return &bridge.WithdrawResponse{BlockIndex: ethRes.BlockIndex.String()}, nil
	}

	res, err := s.minter.WithdrawErc20(ctx, s.canisters.EthMinter, minter.WithdrawErc20Arg{
		Amount:          ledger.Nat(amount),
		CkErc20LedgerID: s.canisters.USDCLedger,
		Recipient:       recipient,
	})
	if err != nil {
		return nil, mapCallError(err, "withdrawal failed")
	}
	return &bridge.WithdrawResponse{
		BlockIndex:      res.CkErc20BlockIndex.String(),
		CkEthBlockIndex: res.CkEthBlockIndex.String(),
	}, nil
}

// Transfer moves tokens to the default account of the recipient principal.
func (s *bridgeService) Transfer(ctx context.Context, req *bridge.TransferRequest) (_ *bridge.TransferResponse, err error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	asset, _ := token.ParseAsset(req.Asset)
	to, err := subaccount.Decode(req.To)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "to is not a valid principal")
	}
	amount, err := bridge.ParseNat(req.Amount)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "amount must be a non-negative integer")
	}
	defer observe("transfer", asset.String(), &err)

	blockIndex, err := s.ledger.Transfer(ctx, s.ledgerFor(asset), ledger.TransferArg{
		To:     ledger.Account{Owner: to},
		Amount: ledger.Nat(amount),
	})
	if err != nil {
		return nil, mapCallError(err, "transfer failed")
	}

	return &bridge.TransferResponse{BlockIndex: blockIndex.String()}, nil
}

// CanisterIDs asks the orchestrator which canisters manage tok. Every call
// re-queries the orchestrator. A token without registration is not an error:
// the response carries Registered false and no ids.
func (s *bridgeService) CanisterIDs(ctx context.Context, tok token.Token) (_ *bridge.CanisterIDsResponse, err error) {
	defer observe("canister_ids", tok.String(), &err)

	contract := tok.Contract()
	ids, err := s.orchestrator.CanisterIDs(ctx, s.canisters.Orchestrator, orchestrator.Erc20Contract{
		ChainID: ledger.Nat(contract.ChainID),
		Address: contract.Address,
	})
	if err != nil {
		return nil, foldRegistryError(err)
	}

	resp := &bridge.CanisterIDsResponse{
		Token:    tok.String(),
		Archives: []string{},
	}
	if ids == nil {
		return resp, nil
	}

	resp.Registered = true
	if ids.Ledger != nil {
		resp.Ledger = ids.Ledger.String()
	}
	if ids.Index != nil {
		resp.Index = ids.Index.String()
	}
	for _, a := range ids.Archives {
		resp.Archives = append(resp.Archives, a.String())
	}
	resp.Configured = s.isConfiguredUSDC(ids)
	if ids.Ledger != nil && ids.Ledger.Equal(s.canisters.USDCLedger) && !resp.Configured {
		s.logger.Warn("orchestrator reports a different index for the configured USDC ledger",
			zap.String("token", tok.String()),
			zap.String("ledger", resp.Ledger),
			zap.String("index", resp.Index),
			zap.String("configured_index", s.canisters.USDCIndex.String()),
		)
	}
	return resp, nil
}

// isConfiguredUSDC reports whether ids name the environment's USDC ledger and index.
func (s *bridgeService) isConfiguredUSDC(ids *orchestrator.ManagedCanisterIDs) bool {
	return ids.Ledger != nil && ids.Index != nil &&
		ids.Ledger.Equal(s.canisters.USDCLedger) &&
		ids.Index.Equal(s.canisters.USDCIndex)
}

func (s *bridgeService) ledgerFor(asset token.Asset) principal.Principal {
	if asset == token.USDC {
		return s.canisters.USDCLedger
	}
	return s.canisters.EthLedger
}

func validateRequest(req any) error {
	if err := bridge.Validate(req); err != nil {
		return apperrors.BadRequestError(err, bridge.ValidationMessage(err))
	}
	return nil
}

// formatUnits renders amount base units as a decimal token amount.
func formatUnits(amount *big.Int, decimals int32) string {
	return decimal.NewFromBigInt(amount, -decimals).String()
}

func observe(operation, label string, err *error) {
	status := "success"
	if *err != nil {
		status = "error"
	}
	metrics.OperationsTotal.WithLabelValues(operation, label, status).Inc()
}
