package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDecimalString_RoundsBankerAndRejectsNegative(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "exact", input: "12.3456", want: "12.3456"},
		{name: "rounds half to even down", input: "1.00005", want: "1.0000"},
		{name: "rounds half to even up", input: "1.00015", want: "1.0002"},
		{name: "negative rejected", input: "-1.0", wantErr: true},
		{name: "garbage rejected", input: "not-a-number", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromDecimalString(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestFromInt_AcceptsZeroAndMaxRoundTripsThroughString(t *testing.T) {
	_, err := FromInt(0)
	require.NoError(t, err)

	huge, err := FromDecimalString(Max.String())
	require.NoError(t, err)
	assert.True(t, huge.Equal(Max))
}

func TestCheckedAdd_RejectsOverflowPastMax(t *testing.T) {
	_, ok := Max.CheckedAdd(MustFromInt(1))
	assert.False(t, ok)

	sum, ok := Zero.CheckedAdd(MustFromInt(5))
	require.True(t, ok)
	assert.Equal(t, "5.0000", sum.String())
}

func TestCheckedSub_RejectsNegativeResult(t *testing.T) {
	_, ok := Zero.CheckedSub(MustFromInt(1))
	assert.False(t, ok)

	diff, ok := MustFromInt(5).CheckedSub(MustFromInt(2))
	require.True(t, ok)
	assert.Equal(t, "3.0000", diff.String())
}

func TestCmpAndEqual(t *testing.T) {
	a := MustFromInt(1)
	b := MustFromInt(2)

	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
	assert.True(t, a.Equal(MustFromInt(1)))
	assert.False(t, a.Equal(b))
}

func TestGreaterThanZero(t *testing.T) {
	assert.False(t, Zero.GreaterThanZero())
	assert.True(t, MustFromInt(1).GreaterThanZero())
}
