package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-engine/internal/ledger/money"
)

func mustDeposit(t *testing.T, acc *Account, txID TransactionId, amount uint64) {
	t.Helper()
	tx, err := NewDeposit(acc.state.ID, txID, money.MustFromInt(amount))
	require.NoError(t, err)
	require.NoError(t, acc.Apply(tx))
}

func TestDeposit_IncreasesAvailable(t *testing.T) {
	acc := NewAccount(1)
	mustDeposit(t, acc, 1, 10)

	state := acc.State()
	assert.True(t, state.Available.Equal(money.MustFromInt(10)))
	assert.True(t, state.Held.Equal(money.Zero))
}

func TestWithdraw_RejectsInsufficientFunds(t *testing.T) {
	acc := NewAccount(1)
	mustDeposit(t, acc, 1, 5)

	tx, err := NewWithdraw(1, 2, money.MustFromInt(10))
	require.NoError(t, err)

	err = acc.Apply(tx)
	assert.ErrorIs(t, err, ErrInsufficientFundsForWithdraw)
	assert.True(t, acc.State().Available.Equal(money.MustFromInt(5)))
}

func TestWithdraw_SucceedsWithinBalance(t *testing.T) {
	acc := NewAccount(1)
	mustDeposit(t, acc, 1, 10)

	tx, err := NewWithdraw(1, 2, money.MustFromInt(4))
	require.NoError(t, err)
	require.NoError(t, acc.Apply(tx))

	assert.True(t, acc.State().Available.Equal(money.MustFromInt(6)))
}

func TestDispute_MovesFundsFromAvailableToHeld(t *testing.T) {
	acc := NewAccount(1)
	mustDeposit(t, acc, 1, 10)

	require.NoError(t, acc.Apply(NewDispute(1, 1)))

	state := acc.State()
	assert.True(t, state.Available.Equal(money.Zero))
	assert.True(t, state.Held.Equal(money.MustFromInt(10)))
	assert.False(t, state.Locked)
}

func TestDispute_UnknownTargetRejected(t *testing.T) {
	acc := NewAccount(1)
	mustDeposit(t, acc, 1, 10)

	err := acc.Apply(NewDispute(1, 99))
	assert.ErrorIs(t, err, ErrInvalidDisputeTarget)
}

func TestDispute_AlreadyDisputedRejected(t *testing.T) {
	acc := NewAccount(1)
	mustDeposit(t, acc, 1, 10)
	require.NoError(t, acc.Apply(NewDispute(1, 1)))

	err := acc.Apply(NewDispute(1, 1))
	assert.ErrorIs(t, err, ErrAlreadyDisputed)
}

func TestResolve_RestoresAvailableFromHeld(t *testing.T) {
	acc := NewAccount(1)
	mustDeposit(t, acc, 1, 10)
	require.NoError(t, acc.Apply(NewDispute(1, 1)))

	require.NoError(t, acc.Apply(NewResolve(1, 1)))

	state := acc.State()
	assert.True(t, state.Available.Equal(money.MustFromInt(10)))
	assert.True(t, state.Held.Equal(money.Zero))
}

func TestDispute_RejectsWhenWithdrawalLeftAvailableBelowDepositAmount(t *testing.T) {
	acc := NewAccount(1)
	mustDeposit(t, acc, 1, 10)

	withdraw, err := NewWithdraw(1, 2, money.MustFromInt(10))
	require.NoError(t, err)
	require.NoError(t, acc.Apply(withdraw))

	err = acc.Apply(NewDispute(1, 1))
	assert.ErrorIs(t, err, ErrInsufficientFundsForDispute)

	state := acc.State()
	assert.True(t, state.Available.Equal(money.Zero))
	assert.True(t, state.Held.Equal(money.Zero))
}

func TestDispute_PermittedAgainAfterResolve(t *testing.T) {
	acc := NewAccount(1)
	mustDeposit(t, acc, 1, 10)
	require.NoError(t, acc.Apply(NewDispute(1, 1)))
	require.NoError(t, acc.Apply(NewResolve(1, 1)))

	err := acc.Apply(NewDispute(1, 1))
	require.NoError(t, err)

	state := acc.State()
	assert.True(t, state.Available.Equal(money.Zero))
	assert.True(t, state.Held.Equal(money.MustFromInt(10)))
}

func TestResolve_RequiresDisputedTarget(t *testing.T) {
	acc := NewAccount(1)
	mustDeposit(t, acc, 1, 10)

	err := acc.Apply(NewResolve(1, 1))
	assert.ErrorIs(t, err, ErrTargetNotDisputed)
}

func TestChargeback_LocksAccountAndRemovesFromHeld(t *testing.T) {
	acc := NewAccount(1)
	mustDeposit(t, acc, 1, 10)
	require.NoError(t, acc.Apply(NewDispute(1, 1)))

	require.NoError(t, acc.Apply(NewChargeback(1, 1)))

	state := acc.State()
	assert.True(t, state.Held.Equal(money.Zero))
	assert.True(t, state.Locked)
}

func TestChargeback_AlreadyChargedBackRejected(t *testing.T) {
	acc := NewAccount(1)
	mustDeposit(t, acc, 1, 10)
	require.NoError(t, acc.Apply(NewDispute(1, 1)))
	require.NoError(t, acc.Apply(NewChargeback(1, 1)))

	acc.state.Locked = false // bypass the locked-account precheck to isolate this check
	err := acc.Apply(NewChargeback(1, 1))
	assert.ErrorIs(t, err, ErrAlreadyChargedBack)
}

func TestLockedAccount_RejectsAnyFurtherTransaction(t *testing.T) {
	acc := NewAccount(1)
	mustDeposit(t, acc, 1, 10)
	require.NoError(t, acc.Apply(NewDispute(1, 1)))
	require.NoError(t, acc.Apply(NewChargeback(1, 1)))

	tx, err := NewDeposit(1, 2, money.MustFromInt(5))
	require.NoError(t, err)

	err = acc.Apply(tx)
	assert.ErrorIs(t, err, ErrLockedAccount)
}

func TestAccountState_TotalIsAvailablePlusHeld(t *testing.T) {
	acc := NewAccount(1)
	mustDeposit(t, acc, 1, 10)
	mustDeposit(t, acc, 2, 5)
	require.NoError(t, acc.Apply(NewDispute(1, 1)))

	total, err := acc.State().Total()
	require.NoError(t, err)
	assert.True(t, total.Equal(money.MustFromInt(15)))
}

func TestApply_FailedTransactionDoesNotMutateState(t *testing.T) {
	acc := NewAccount(1)
	mustDeposit(t, acc, 1, 5)
	before := acc.State()

	tx, err := NewWithdraw(1, 2, money.MustFromInt(100))
	require.NoError(t, err)
	err = acc.Apply(tx)

	assert.Error(t, err)
	assert.Equal(t, before, acc.State())
}
