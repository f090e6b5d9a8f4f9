package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"ledger-engine/internal/ledger"
)

// EncodeAccountStates writes the final account states to w as CSV:
// client, available, held, total, locked — in the order spec.md §6
// describes. Amounts are formatted with exactly four fractional digits
// and locked serializes as the literal true/false.
//
// The input order is unspecified per the broker's contract; callers that
// need deterministic output should pass states already sorted (see
// SortByAccount).
func EncodeAccountStates(w io.Writer, states []ledger.AccountState) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}

	for _, state := range states {
		total, err := state.Total()
		if err != nil {
			return fmt.Errorf("client %d: %w", state.ID, ledger.ErrTotalOverflow)
		}
		row := []string{
			fmt.Sprintf("%d", state.ID),
			state.Available.String(),
			state.Held.String(),
			total.String(),
			fmt.Sprintf("%t", state.Locked),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return writer.Error()
}

// SortByAccount returns states sorted by ascending client id, resolving
// spec.md §9(c): output is unordered by default, callers that need
// determinism sort after collection.
func SortByAccount(states []ledger.AccountState) []ledger.AccountState {
	sorted := make([]ledger.AccountState, len(states))
	copy(sorted, states)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return sorted
}
