package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-engine/internal/ledger/money"
)

func TestNewDeposit_RejectsNonPositiveAmount(t *testing.T) {
	_, err := NewDeposit(1, 1, money.Zero)
	assert.ErrorIs(t, err, ErrInsufficientDepositAmount)

	tx, err := NewDeposit(1, 1, money.MustFromInt(10))
	require.NoError(t, err)
	assert.Equal(t, Deposit, tx.Kind())
	assert.Equal(t, AccountId(1), tx.TargetAccount)
	assert.Equal(t, TransactionId(1), tx.TxID())
}

func TestNewWithdraw_RejectsNonPositiveAmount(t *testing.T) {
	_, err := NewWithdraw(1, 1, money.Zero)
	assert.ErrorIs(t, err, ErrInsufficientWithdrawAmount)

	tx, err := NewWithdraw(1, 1, money.MustFromInt(10))
	require.NoError(t, err)
	assert.Equal(t, Withdraw, tx.Kind())
}

func TestDisputeResolveChargeback_CarryOnlyTargetId(t *testing.T) {
	dispute := NewDispute(1, 7)
	assert.Equal(t, Dispute, dispute.Kind())
	assert.Equal(t, TransactionId(7), dispute.TxID())
	assert.True(t, dispute.Amount().Equal(money.Zero))

	resolve := NewResolve(1, 7)
	assert.Equal(t, Resolve, resolve.Kind())

	chargeback := NewChargeback(1, 7)
	assert.Equal(t, Chargeback, chargeback.Kind())
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		Deposit:    "deposit",
		Withdraw:   "withdraw",
		Dispute:    "dispute",
		Resolve:    "resolve",
		Chargeback: "chargeback",
		Kind(99):   "unknown",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}
