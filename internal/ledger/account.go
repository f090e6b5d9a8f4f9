package ledger

import "ledger-engine/internal/ledger/money"

// disputeState tracks the lifecycle of a single accepted deposit.
type disputeState int

const (
	notDisputed disputeState = iota
	disputed
	chargedBack
)

// deposit is the immutable snapshot of an accepted Deposit transaction,
// kept around only so a later Dispute/Resolve/Chargeback can recover its
// amount.
type deposit struct {
	txID   TransactionId
	amount money.Amount
}

type depositEntry struct {
	deposit deposit
	state   disputeState
}

// AccountState is the observable output of an Account: the fields an
// encoder serializes once the input stream ends.
type AccountState struct {
	ID        AccountId
	Available money.Amount
	Held      money.Amount
	Locked    bool
}

// Total is available+held. It fails only if invariant (2) of the account
// state machine was somehow violated; under normal operation it never
// overflows.
func (s AccountState) Total() (money.Amount, error) {
	total, ok := s.Available.CheckedAdd(s.Held)
	if !ok {
		return money.Amount{}, ErrTotalOverflow
	}
	return total, nil
}

// Account is the internal ledger state machine for one client: its
// observable state plus the dispute ledger that only accepted deposits
// populate. It is mutated exclusively through Apply and is not safe for
// concurrent use — ownership is the caller's responsibility (see
// internal/ledger/broker, which partitions accounts one-per-goroutine).
type Account struct {
	state    AccountState
	deposits map[TransactionId]depositEntry
}

// NewAccount creates an empty, unlocked account for id.
func NewAccount(id AccountId) *Account {
	return &Account{
		state:    AccountState{ID: id, Available: money.Zero, Held: money.Zero},
		deposits: make(map[TransactionId]depositEntry),
	}
}

// State returns a copy of the account's current observable state.
func (a *Account) State() AccountState { return a.state }

// Apply applies one transaction to the account. It is transactional: on
// any error, no field of the account (including the dispute ledger) is
// modified — every branch below computes the new values into locals and
// only commits once every check has passed.
func (a *Account) Apply(tx Transaction) error {
	if a.state.Locked {
		return ErrLockedAccount
	}

	switch tx.Kind() {
	case Deposit:
		return a.applyDeposit(tx.TxID(), tx.Amount())
	case Withdraw:
		return a.applyWithdraw(tx.Amount())
	case Dispute:
		return a.applyDispute(tx.TxID())
	case Resolve:
		return a.applyResolve(tx.TxID())
	case Chargeback:
		return a.applyChargeback(tx.TxID())
	default:
		return ErrInvalidDisputeTarget
	}
}

func (a *Account) applyDeposit(txID TransactionId, amount money.Amount) error {
	newAvailable, ok := a.state.Available.CheckedAdd(amount)
	if !ok {
		return ErrDepositOverflow
	}

	a.state.Available = newAvailable
	// Duplicate primary tx ids are not checked: uniqueness is assumed of
	// the input (spec.md §9(b)).
	a.deposits[txID] = depositEntry{deposit: deposit{txID: txID, amount: amount}, state: notDisputed}
	return nil
}

func (a *Account) applyWithdraw(amount money.Amount) error {
	newAvailable, ok := a.state.Available.CheckedSub(amount)
	if !ok {
		return ErrInsufficientFundsForWithdraw
	}
	a.state.Available = newAvailable
	return nil
}

func (a *Account) applyDispute(targetTxID TransactionId) error {
	entry, ok := a.deposits[targetTxID]
	if !ok {
		return ErrInvalidDisputeTarget
	}

	switch entry.state {
	case disputed:
		return ErrAlreadyDisputed
	case chargedBack:
		return ErrAlreadyChargedBack
	}

	newAvailable, ok := a.state.Available.CheckedSub(entry.deposit.amount)
	if !ok {
		return ErrInsufficientFundsForDispute
	}
	newHeld, ok := a.state.Held.CheckedAdd(entry.deposit.amount)
	if !ok {
		return ErrDisputeOverflow
	}

	a.state.Available = newAvailable
	a.state.Held = newHeld
	entry.state = disputed
	a.deposits[targetTxID] = entry
	return nil
}

func (a *Account) applyResolve(targetTxID TransactionId) error {
	entry, ok := a.deposits[targetTxID]
	if !ok {
		return ErrInvalidResolveTarget
	}

	switch entry.state {
	case notDisputed:
		return ErrTargetNotDisputed
	case chargedBack:
		return ErrAlreadyChargedBack
	}

	newAvailable, ok := a.state.Available.CheckedAdd(entry.deposit.amount)
	if !ok {
		return ErrResolveOverflow
	}
	// held can never underflow here: the matching Dispute added exactly
	// this amount to held, and held has no other mutator.
	newHeld, ok := a.state.Held.CheckedSub(entry.deposit.amount)
	if !ok {
		panic("ledger: held underflow on resolve, dispute invariant violated")
	}

	a.state.Available = newAvailable
	a.state.Held = newHeld
	entry.state = notDisputed
	a.deposits[targetTxID] = entry
	return nil
}

func (a *Account) applyChargeback(targetTxID TransactionId) error {
	entry, ok := a.deposits[targetTxID]
	if !ok {
		return ErrInvalidChargeBackTarget
	}

	switch entry.state {
	case notDisputed:
		return ErrTargetNotDisputed
	case chargedBack:
		return ErrAlreadyChargedBack
	}

	// held can never underflow here, for the same reason as in resolve.
	newHeld, ok := a.state.Held.CheckedSub(entry.deposit.amount)
	if !ok {
		panic("ledger: held underflow on chargeback, dispute invariant violated")
	}

	a.state.Held = newHeld
	entry.state = chargedBack
	a.deposits[targetTxID] = entry
	a.state.Locked = true
	return nil
}
