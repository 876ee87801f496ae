package ledger

import (
	"fmt"

	"github.com/aviate-labs/agent-go/candid/idl"
	"github.com/aviate-labs/agent-go/principal"
)

// Subaccount is an optional 32-byte partition of an account owner.
type Subaccount = []byte

// Account is an ICRC-1 account.
type Account struct {
	Owner      principal.Principal `ic:"owner" json:"owner"`
	Subaccount *Subaccount         `ic:"subaccount,omitempty" json:"subaccount,omitempty"`
}

// ApproveArgs mirrors the ICRC-2 icrc2_approve argument record.
type ApproveArgs struct {
	FromSubaccount    *Subaccount `ic:"from_subaccount,omitempty" json:"from_subaccount,omitempty"`
	Spender           Account     `ic:"spender" json:"spender"`
	Amount            idl.Nat     `ic:"amount" json:"amount"`
	ExpectedAllowance *idl.Nat    `ic:"expected_allowance,omitempty" json:"expected_allowance,omitempty"`
	ExpiresAt         *uint64     `ic:"expires_at,omitempty" json:"expires_at,omitempty"`
	Fee               *idl.Nat    `ic:"fee,omitempty" json:"fee,omitempty"`
	Memo              *[]byte     `ic:"memo,omitempty" json:"memo,omitempty"`
	CreatedAtTime     *uint64     `ic:"created_at_time,omitempty" json:"created_at_time,omitempty"`
}

// TransferArg mirrors the ICRC-1 icrc1_transfer argument record.
type TransferArg struct {
	FromSubaccount *Subaccount `ic:"from_subaccount,omitempty" json:"from_subaccount,omitempty"`
	To             Account     `ic:"to" json:"to"`
	Amount         idl.Nat     `ic:"amount" json:"amount"`
	Fee            *idl.Nat    `ic:"fee,omitempty" json:"fee,omitempty"`
	Memo           *[]byte     `ic:"memo,omitempty" json:"memo,omitempty"`
	CreatedAtTime  *uint64     `ic:"created_at_time,omitempty" json:"created_at_time,omitempty"`
}

// ApproveResult is the icrc2_approve reply variant.
type ApproveResult struct {
	Ok  *idl.Nat      `ic:"Ok,variant"`
	Err *ApproveError `ic:"Err,variant"`
}

// TransferResult is the icrc1_transfer reply variant.
type TransferResult struct {
	Ok  *idl.Nat       `ic:"Ok,variant"`
	Err *TransferError `ic:"Err,variant"`
}

type BadFee struct {
	ExpectedFee idl.Nat `ic:"expected_fee" json:"expected_fee"`
}

type BadBurn struct {
	MinBurnAmount idl.Nat `ic:"min_burn_amount" json:"min_burn_amount"`
}

type InsufficientFunds struct {
	Balance idl.Nat `ic:"balance" json:"balance"`
}

type AllowanceChanged struct {
	CurrentAllowance idl.Nat `ic:"current_allowance" json:"current_allowance"`
}

type LedgerTime struct {
	LedgerTime uint64 `ic:"ledger_time" json:"ledger_time"`
}

type Duplicate struct {
	DuplicateOf idl.Nat `ic:"duplicate_of" json:"duplicate_of"`
}

type GenericError struct {
	ErrorCode idl.Nat `ic:"error_code" json:"error_code"`
	Message   string  `ic:"message" json:"message"`
}

// ApproveError is the error variant returned by icrc2_approve.
type ApproveError struct {
	BadFee                 *BadFee            `ic:"BadFee,variant"`
	InsufficientFunds      *InsufficientFunds `ic:"InsufficientFunds,variant"`
	AllowanceChanged       *AllowanceChanged  `ic:"AllowanceChanged,variant"`
	Expired                *LedgerTime        `ic:"Expired,variant"`
	TooOld                 *idl.Null          `ic:"TooOld,variant"`
	CreatedInFuture        *LedgerTime        `ic:"CreatedInFuture,variant"`
	Duplicate              *Duplicate         `ic:"Duplicate,variant"`
	TemporarilyUnavailable *idl.Null          `ic:"TemporarilyUnavailable,variant"`
	GenericError           *GenericError      `ic:"GenericError,variant"`
}

// Variant returns the name of the populated case.
func (e *ApproveError) Variant() string {
	switch {
	case e.BadFee != nil:
		return "BadFee"
	case e.InsufficientFunds != nil:
		return "InsufficientFunds"
	case e.AllowanceChanged != nil:
		return "AllowanceChanged"
	case e.Expired != nil:
		return "Expired"
	case e.TooOld != nil:
		return "TooOld"
	case e.CreatedInFuture != nil:
		return "CreatedInFuture"
	case e.Duplicate != nil:
		return "Duplicate"
	case e.TemporarilyUnavailable != nil:
		return "TemporarilyUnavailable"
	case e.GenericError != nil:
		return "GenericError"
	default:
		return "Unknown"
	}
}

func (e *ApproveError) Error() string {
	switch {
	case e.BadFee != nil:
		return fmt.Sprintf("approve failed: BadFee (expected fee %s)", e.BadFee.ExpectedFee.BigInt())
	case e.InsufficientFunds != nil:
		return fmt.Sprintf("approve failed: InsufficientFunds (balance %s)", e.InsufficientFunds.Balance.BigInt())
	case e.AllowanceChanged != nil:
		return fmt.Sprintf("approve failed: AllowanceChanged (current allowance %s)", e.AllowanceChanged.CurrentAllowance.BigInt())
	case e.Duplicate != nil:
		return fmt.Sprintf("approve failed: Duplicate (of block %s)", e.Duplicate.DuplicateOf.BigInt())
	case e.GenericError != nil:
		return fmt.Sprintf("approve failed: GenericError %s: %s", e.GenericError.ErrorCode.BigInt(), e.GenericError.Message)
	default:
		return "approve failed: " + e.Variant()
	}
}

// TransferError is the error variant returned by icrc1_transfer.
type TransferError struct {
	BadFee                 *BadFee            `ic:"BadFee,variant"`
	BadBurn                *BadBurn           `ic:"BadBurn,variant"`
	InsufficientFunds      *InsufficientFunds `ic:"InsufficientFunds,variant"`
	TooOld                 *idl.Null          `ic:"TooOld,variant"`
	CreatedInFuture        *LedgerTime        `ic:"CreatedInFuture,variant"`
	Duplicate              *Duplicate         `ic:"Duplicate,variant"`
	TemporarilyUnavailable *idl.Null          `ic:"TemporarilyUnavailable,variant"`
	GenericError           *GenericError      `ic:"GenericError,variant"`
}

// Variant returns the name of the populated case.
func (e *TransferError) Variant() string {
	switch {
	case e.BadFee != nil:
		return "BadFee"
	case e.BadBurn != nil:
		return "BadBurn"
	case e.InsufficientFunds != nil:
		return "InsufficientFunds"
	case e.TooOld != nil:
		return "TooOld"
	case e.CreatedInFuture != nil:
		return "CreatedInFuture"
	case e.Duplicate != nil:
		return "Duplicate"
	case e.TemporarilyUnavailable != nil:
		return "TemporarilyUnavailable"
	case e.GenericError != nil:
		return "GenericError"
	default:
		return "Unknown"
	}
}

func (e *TransferError) Error() string {
	switch {
	case e.BadFee != nil:
		return fmt.Sprintf("transfer failed: BadFee (expected fee %s)", e.BadFee.ExpectedFee.BigInt())
	case e.BadBurn != nil:
		return fmt.Sprintf("transfer failed: BadBurn (min burn amount %s)", e.BadBurn.MinBurnAmount.BigInt())
	case e.InsufficientFunds != nil:
		return fmt.Sprintf("transfer failed: InsufficientFunds (balance %s)", e.InsufficientFunds.Balance.BigInt())
	case e.Duplicate != nil:
		return fmt.Sprintf("transfer failed: Duplicate (of block %s)", e.Duplicate.DuplicateOf.BigInt())
	case e.GenericError != nil:
		return fmt.Sprintf("transfer failed: GenericError %s: %s", e.GenericError.ErrorCode.BigInt(), e.GenericError.Message)
	default:
		return "transfer failed: " + e.Variant()
	}
}
