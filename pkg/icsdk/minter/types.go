package minter

import (
	"fmt"

	"github.com/aviate-labs/agent-go/candid/idl"
	"github.com/aviate-labs/agent-go/principal"
)

// WithdrawalArg is the withdraw_eth argument record.
type WithdrawalArg struct {
	Amount    idl.Nat `ic:"amount" json:"amount"`
	Recipient string  `ic:"recipient" json:"recipient"`
}

// WithdrawErc20Arg is the withdraw_erc20 argument record.
type WithdrawErc20Arg struct {
	Amount          idl.Nat             `ic:"amount" json:"amount"`
	CkErc20LedgerID principal.Principal `ic:"ckerc20_ledger_id" json:"ckerc20_ledger_id"`
	Recipient       string              `ic:"recipient" json:"recipient"`
}

// RetrieveEthRequest identifies an accepted ETH withdrawal by its burn block.
type RetrieveEthRequest struct {
	BlockIndex idl.Nat `ic:"block_index" json:"block_index"`
}

// RetrieveErc20Request identifies an accepted ERC-20 withdrawal by its two burn blocks.
type RetrieveErc20Request struct {
	CkErc20BlockIndex idl.Nat `ic:"ckerc20_block_index" json:"ckerc20_block_index"`
	CkEthBlockIndex   idl.Nat `ic:"cketh_block_index" json:"cketh_block_index"`
}

// WithdrawEthResult is the withdraw_eth reply variant.
type WithdrawEthResult struct {
	Ok  *RetrieveEthRequest `ic:"Ok,variant"`
	Err *WithdrawalError    `ic:"Err,variant"`
}

// WithdrawErc20Result is the withdraw_erc20 reply variant.
type WithdrawErc20Result struct {
	Ok  *RetrieveErc20Request `ic:"Ok,variant"`
	Err *WithdrawErc20Error   `ic:"Err,variant"`
}

type AmountTooLow struct {
	MinWithdrawalAmount idl.Nat `ic:"min_withdrawal_amount" json:"min_withdrawal_amount"`
}

type InsufficientFunds struct {
	Balance idl.Nat `ic:"balance" json:"balance"`
}

type InsufficientAllowance struct {
	Allowance idl.Nat `ic:"allowance" json:"allowance"`
}

type RecipientAddressBlocked struct {
	Address string `ic:"address" json:"address"`
}

// WithdrawalError is the error variant of withdraw_eth.
type WithdrawalError struct {
	AmountTooLow            *AmountTooLow            `ic:"AmountTooLow,variant"`
	InsufficientFunds       *InsufficientFunds       `ic:"InsufficientFunds,variant"`
	InsufficientAllowance   *InsufficientAllowance   `ic:"InsufficientAllowance,variant"`
	RecipientAddressBlocked *RecipientAddressBlocked `ic:"RecipientAddressBlocked,variant"`
	TemporarilyUnavailable  *string                  `ic:"TemporarilyUnavailable,variant"`
}

// Variant returns the name of the populated case.
func (e *WithdrawalError) Variant() string {
	switch {
	case e.AmountTooLow != nil:
		return "AmountTooLow"
	case e.InsufficientFunds != nil:
		return "InsufficientFunds"
	case e.InsufficientAllowance != nil:
		return "InsufficientAllowance"
	case e.RecipientAddressBlocked != nil:
		return "RecipientAddressBlocked"
	case e.TemporarilyUnavailable != nil:
		return "TemporarilyUnavailable"
	default:
		return "Unknown"
	}
}

func (e *WithdrawalError) Error() string {
	switch {
	case e.AmountTooLow != nil:
		return fmt.Sprintf("withdrawal failed: AmountTooLow (minimum %s)", e.AmountTooLow.MinWithdrawalAmount.BigInt())
	case e.InsufficientFunds != nil:
		return fmt.Sprintf("withdrawal failed: InsufficientFunds (balance %s)", e.InsufficientFunds.Balance.BigInt())
	case e.InsufficientAllowance != nil:
		return fmt.Sprintf("withdrawal failed: InsufficientAllowance (allowance %s)", e.InsufficientAllowance.Allowance.BigInt())
	case e.RecipientAddressBlocked != nil:
		return fmt.Sprintf("withdrawal failed: RecipientAddressBlocked (%s)", e.RecipientAddressBlocked.Address)
	case e.TemporarilyUnavailable != nil:
		return fmt.Sprintf("withdrawal failed: TemporarilyUnavailable (%s)", *e.TemporarilyUnavailable)
	default:
		return "withdrawal failed: " + e.Variant()
	}
}

// LedgerBurnDetails describes a burn the minter attempted on a ledger.
type LedgerBurnDetails struct {
	FailedBurnAmount idl.Nat             `ic:"failed_burn_amount" json:"failed_burn_amount"`
	TokenSymbol      string              `ic:"token_symbol" json:"token_symbol"`
	LedgerID         principal.Principal `ic:"ledger_id" json:"ledger_id"`
}

type LedgerInsufficientFunds struct {
	Balance          idl.Nat             `ic:"balance" json:"balance"`
	FailedBurnAmount idl.Nat             `ic:"failed_burn_amount" json:"failed_burn_amount"`
	TokenSymbol      string              `ic:"token_symbol" json:"token_symbol"`
	LedgerID         principal.Principal `ic:"ledger_id" json:"ledger_id"`
}

type LedgerAmountTooLow struct {
	MinimumBurnAmount idl.Nat             `ic:"minimum_burn_amount" json:"minimum_burn_amount"`
	FailedBurnAmount  idl.Nat             `ic:"failed_burn_amount" json:"failed_burn_amount"`
	TokenSymbol       string              `ic:"token_symbol" json:"token_symbol"`
	LedgerID          principal.Principal `ic:"ledger_id" json:"ledger_id"`
}

type LedgerInsufficientAllowance struct {
	Allowance        idl.Nat             `ic:"allowance" json:"allowance"`
	FailedBurnAmount idl.Nat             `ic:"failed_burn_amount" json:"failed_burn_amount"`
	TokenSymbol      string              `ic:"token_symbol" json:"token_symbol"`
	LedgerID         principal.Principal `ic:"ledger_id" json:"ledger_id"`
}

// LedgerError is a burn failure reported by the minter for one of the ledgers.
type LedgerError struct {
	InsufficientFunds      *LedgerInsufficientFunds     `ic:"InsufficientFunds,variant"`
	AmountTooLow           *LedgerAmountTooLow          `ic:"AmountTooLow,variant"`
	InsufficientAllowance  *LedgerInsufficientAllowance `ic:"InsufficientAllowance,variant"`
	TemporarilyUnavailable *string                      `ic:"TemporarilyUnavailable,variant"`
}

func (e *LedgerError) String() string {
	switch {
	case e == nil:
		return "unknown ledger error"
	case e.InsufficientFunds != nil:
		return fmt.Sprintf("InsufficientFunds on %s (balance %s, burn %s)",
			e.InsufficientFunds.TokenSymbol, e.InsufficientFunds.Balance.BigInt(), e.InsufficientFunds.FailedBurnAmount.BigInt())
	case e.AmountTooLow != nil:
		return fmt.Sprintf("AmountTooLow on %s (minimum %s)",
			e.AmountTooLow.TokenSymbol, e.AmountTooLow.MinimumBurnAmount.BigInt())
	case e.InsufficientAllowance != nil:
		return fmt.Sprintf("InsufficientAllowance on %s (allowance %s, burn %s)",
			e.InsufficientAllowance.TokenSymbol, e.InsufficientAllowance.Allowance.BigInt(), e.InsufficientAllowance.FailedBurnAmount.BigInt())
	case e.TemporarilyUnavailable != nil:
		return "TemporarilyUnavailable: " + *e.TemporarilyUnavailable
	default:
		return "unknown ledger error"
	}
}

// Erc20Token is a ckERC20 token supported by the minter.
type Erc20Token struct {
	CkErc20TokenSymbol   string              `ic:"ckerc20_token_symbol" json:"ckerc20_token_symbol"`
	Erc20ContractAddress string              `ic:"erc20_contract_address" json:"erc20_contract_address"`
	LedgerCanisterID     principal.Principal `ic:"ledger_canister_id" json:"ledger_canister_id"`
	ChainID              idl.Nat             `ic:"chain_id" json:"chain_id"`
}

type TokenNotSupported struct {
	SupportedTokens []Erc20Token `ic:"supported_tokens" json:"supported_tokens"`
}

type CkEthLedgerError struct {
	Error LedgerError `ic:"error" json:"error"`
}

type CkErc20LedgerError struct {
	CkEthBlockIndex idl.Nat     `ic:"cketh_block_index" json:"cketh_block_index"`
	Error           LedgerError `ic:"error" json:"error"`
}

// WithdrawErc20Error is the error variant of withdraw_erc20.
type WithdrawErc20Error struct {
	TokenNotSupported       *TokenNotSupported       `ic:"TokenNotSupported,variant"`
	RecipientAddressBlocked *RecipientAddressBlocked `ic:"RecipientAddressBlocked,variant"`
	CkEthLedgerError        *CkEthLedgerError        `ic:"CkEthLedgerError,variant"`
	CkErc20LedgerError      *CkErc20LedgerError      `ic:"CkErc20LedgerError,variant"`
	TemporarilyUnavailable  *string                  `ic:"TemporarilyUnavailable,variant"`
}

// Variant returns the name of the populated case.
func (e *WithdrawErc20Error) Variant() string {
	switch {
	case e.TokenNotSupported != nil:
		return "TokenNotSupported"
	case e.RecipientAddressBlocked != nil:
		return "RecipientAddressBlocked"
	case e.CkEthLedgerError != nil:
		return "CkEthLedgerError"
	case e.CkErc20LedgerError != nil:
		return "CkErc20LedgerError"
	case e.TemporarilyUnavailable != nil:
		return "TemporarilyUnavailable"
	default:
		return "Unknown"
	}
}

func (e *WithdrawErc20Error) Error() string {
	switch {
	case e.TokenNotSupported != nil:
		return fmt.Sprintf("erc20 withdrawal failed: TokenNotSupported (%d supported tokens)", len(e.TokenNotSupported.SupportedTokens))
	case e.RecipientAddressBlocked != nil:
		return fmt.Sprintf("erc20 withdrawal failed: RecipientAddressBlocked (%s)", e.RecipientAddressBlocked.Address)
	case e.CkEthLedgerError != nil:
		return "erc20 withdrawal failed: CkEthLedgerError: " + e.CkEthLedgerError.Error.String()
	case e.CkErc20LedgerError != nil:
		return fmt.Sprintf("erc20 withdrawal failed: CkErc20LedgerError after ckETH burn %s: %s",
			e.CkErc20LedgerError.CkEthBlockIndex.BigInt(), e.CkErc20LedgerError.Error.String())
	case e.TemporarilyUnavailable != nil:
		return fmt.Sprintf("erc20 withdrawal failed: TemporarilyUnavailable (%s)", *e.TemporarilyUnavailable)
	default:
		return "erc20 withdrawal failed: " + e.Variant()
	}
}
