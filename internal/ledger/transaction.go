package ledger

import "ledger-engine/internal/ledger/money"

// AccountId identifies a client account.
type AccountId uint16

// TransactionId identifies a single transaction request. Uniqueness of
// primary (deposit/withdraw) ids is assumed of the input and is not
// enforced by this package.
type TransactionId uint32

// Kind distinguishes the five transaction variants.
type Kind int

const (
	Deposit Kind = iota
	Withdraw
	Dispute
	Resolve
	Chargeback
)

// String renders the kind using the lowercase literal the decoder
// contract (spec.md §6) recognizes.
func (k Kind) String() string {
	switch k {
	case Deposit:
		return "deposit"
	case Withdraw:
		return "withdraw"
	case Dispute:
		return "dispute"
	case Resolve:
		return "resolve"
	case Chargeback:
		return "chargeback"
	default:
		return "unknown"
	}
}

// Transaction is a (target account, kind) pair. Deposit and Withdraw
// additionally carry a transaction id and amount; Dispute, Resolve, and
// Chargeback carry only the id of the deposit they target.
type Transaction struct {
	TargetAccount AccountId
	kind          Kind
	txID          TransactionId
	amount        money.Amount
}

// Kind reports which of the five variants this transaction is.
func (t Transaction) Kind() Kind { return t.kind }

// TxID is the transaction's own id for Deposit/Withdraw, or the id of the
// deposit being disputed/resolved/charged back for the other three kinds.
func (t Transaction) TxID() TransactionId { return t.txID }

// Amount is only meaningful for Deposit and Withdraw; it is the zero
// Amount for Dispute, Resolve, and Chargeback.
func (t Transaction) Amount() money.Amount { return t.amount }

// NewDeposit constructs a Deposit transaction. The amount must be
// strictly positive.
func NewDeposit(account AccountId, txID TransactionId, amount money.Amount) (Transaction, error) {
	if !amount.GreaterThanZero() {
		return Transaction{}, ErrInsufficientDepositAmount
	}
	return Transaction{TargetAccount: account, kind: Deposit, txID: txID, amount: amount}, nil
}

// NewWithdraw constructs a Withdraw transaction. The amount must be
// strictly positive.
func NewWithdraw(account AccountId, txID TransactionId, amount money.Amount) (Transaction, error) {
	if !amount.GreaterThanZero() {
		return Transaction{}, ErrInsufficientWithdrawAmount
	}
	return Transaction{TargetAccount: account, kind: Withdraw, txID: txID, amount: amount}, nil
}

// NewDispute constructs a Dispute referencing a prior deposit.
func NewDispute(account AccountId, targetTxID TransactionId) Transaction {
	return Transaction{TargetAccount: account, kind: Dispute, txID: targetTxID}
}

// NewResolve constructs a Resolve referencing a disputed deposit.
func NewResolve(account AccountId, targetTxID TransactionId) Transaction {
	return Transaction{TargetAccount: account, kind: Resolve, txID: targetTxID}
}

// NewChargeback constructs a Chargeback referencing a disputed deposit.
func NewChargeback(account AccountId, targetTxID TransactionId) Transaction {
	return Transaction{TargetAccount: account, kind: Chargeback, txID: targetTxID}
}
