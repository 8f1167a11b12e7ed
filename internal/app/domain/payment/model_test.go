package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionGeneratesID(t *testing.T) {
	tx, err := NewTransaction("", "order-1", 150)
	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, StatusPending, tx.Status)

	other, err := NewTransaction("", "order-2", 150)
	require.NoError(t, err)
	assert.NotEqual(t, tx.ID, other.ID)
}

func TestNewTransactionRejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []float64{0, -1, -99.99} {
		_, err := NewTransaction("", "order-1", amount)
		assert.ErrorIs(t, err, ErrInvalidAmount, "amount %v", amount)
	}
}

func TestNewTransactionRequiresOrderID(t *testing.T) {
	_, err := NewTransaction("", "  ", 150)
	assert.ErrorIs(t, err, ErrOrderIDRequired)
}

func TestProcessThreshold(t *testing.T) {
	cases := []struct {
		amount float64
		want   Status
	}{
		{150, StatusApproved},
		{100, StatusApproved},
		{100.01, StatusApproved},
		{99.99, StatusDeclined},
		{50, StatusDeclined},
		{0.01, StatusDeclined},
	}

	for _, tc := range cases {
		tx, err := NewTransaction("", "order-1", tc.amount)
		require.NoError(t, err)
		require.NoError(t, tx.Process())
		assert.Equal(t, tc.want, tx.Status, "amount %v", tc.amount)
	}
}

func TestTransitionsOnlyMoveForward(t *testing.T) {
	tx, err := NewTransaction("", "order-1", 150)
	require.NoError(t, err)
	require.NoError(t, tx.Approve())

	assert.ErrorIs(t, tx.Decline(), ErrFinalized)
	assert.ErrorIs(t, tx.Approve(), ErrFinalized)
	assert.ErrorIs(t, tx.Process(), ErrFinalized)
	assert.Equal(t, StatusApproved, tx.Status)
}
