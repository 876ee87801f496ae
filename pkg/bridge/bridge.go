// Package bridge holds the request and response records of the bridge API.
package bridge

// DepositAddressRequest asks for the deposit subaccount of a principal.
// An empty Principal selects the service's own identity.
type DepositAddressRequest struct {
	Principal string `json:"principal,omitzero" validate:"omitempty,principal"`
}

// DepositAddressResponse is the bytes32 deposit subaccount of Principal.
type DepositAddressResponse struct {
	Principal  string `json:"principal"`
	Subaccount string `json:"subaccount"`
}

// BalanceRequest queries the balance of Owner's default account.
type BalanceRequest struct {
	Asset string `json:"asset" validate:"required,asset"`
	Owner string `json:"owner" validate:"required,principal"`
}

// BalanceResponse reports a balance in base units and in token units.
type BalanceResponse struct {
	Owner     string `json:"owner"`
	Asset     string `json:"asset"`
	Amount    string `json:"amount"`
	Formatted string `json:"formatted"`
}

// ApproveRequest lets the minter spend Amount from Caller's deposit subaccount.
type ApproveRequest struct {
	Asset  string `json:"asset" validate:"required,asset"`
	Caller string `json:"caller" validate:"required,principal"`
	Amount string `json:"amount" validate:"required,nat"`
}

// ApproveResponse carries the approval block index.
type ApproveResponse struct {
	BlockIndex string `json:"block_index"`
}

// WithdrawRequest withdraws Amount to an Ethereum address.
type WithdrawRequest struct {
	Asset     string `json:"asset" validate:"required,asset"`
	Recipient string `json:"recipient" validate:"required,eth_addr"`
	Amount    string `json:"amount" validate:"required,nat"`
}

// WithdrawResponse identifies the burn blocks of an accepted withdrawal.
// CkEthBlockIndex is only set for ERC-20 withdrawals, which also burn ckETH
// for the transaction fee.
type WithdrawResponse struct {
	BlockIndex      string `json:"block_index"`
	CkEthBlockIndex string `json:"cketh_block_index,omitzero"`
}

// TransferRequest moves Amount to the default account of To.
type TransferRequest struct {
	Asset  string `json:"asset" validate:"required,asset"`
	To     string `json:"to" validate:"required,principal"`
	Amount string `json:"amount" validate:"required,nat"`
}

// TransferResponse carries the transfer block index.
type TransferResponse struct {
	BlockIndex string `json:"block_index"`
}

// CanisterIDsResponse lists the canisters managing a ckERC20 token.
// Registered is false when the orchestrator knows no canisters for the token.
// Configured reports that Ledger and Index are the environment's own USDC
// ledger and index.
type CanisterIDsResponse struct {
	Token      string   `json:"token"`
	Registered bool     `json:"registered"`
	Configured bool     `json:"configured,omitzero"`
	Ledger     string   `json:"ledger,omitzero"`
	Index      string   `json:"index,omitzero"`
	Archives   []string `json:"archives"`
}
