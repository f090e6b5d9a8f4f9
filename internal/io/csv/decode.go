// Package csv implements the decoder/encoder contracts of spec.md §6: it
// is an external collaborator of the core ledger, never imported by it.
// Decoding follows the classic four-column transaction record (type,
// client, tx, amount) used by the original exercise this spec was
// distilled from, grounded on the pack's from-scratch CSV ledger
// transformer (other_examples/.../kraken-convert-kraken.go.go), itself
// built directly on encoding/csv.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ledger-engine/internal/ledger"
	"ledger-engine/internal/ledger/money"
)

// DecodeError wraps a row-level decode failure with enough context to
// log it without aborting the rest of the stream.
type DecodeError struct {
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("csv: line %d: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DecodeTransactions reads a CSV transaction stream from r and sends each
// successfully decoded Transaction on the returned channel. The channel
// is closed once r is exhausted. Rows that fail to parse are reported to
// onError (if non-nil) and skipped — an unknown record type is a decoder
// error, never a core ledger error, per spec.md §6.
func DecodeTransactions(r io.Reader, onError func(*DecodeError)) <-chan ledger.Transaction {
	out := make(chan ledger.Transaction)

	go func() {
		defer close(out)

		reader := csv.NewReader(r)
		reader.FieldsPerRecord = -1
		reader.TrimLeadingSpace = true

		header, err := reader.Read()
		if err == io.EOF {
			return
		}
		if err != nil {
			if onError != nil {
				onError(&DecodeError{Line: 1, Err: err})
			}
			return
		}
		cols := indexHeader(header)

		line := 1
		for {
			line++
			record, err := reader.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				if onError != nil {
					onError(&DecodeError{Line: line, Err: err})
				}
				continue
			}

			tx, err := decodeRecord(record, cols)
			if err != nil {
				if onError != nil {
					onError(&DecodeError{Line: line, Err: err})
				}
				continue
			}
			out <- tx
		}
	}()

	return out
}

type columns struct {
	typ, client, tx, amount int
}

// indexHeader maps header names to column positions so field order in
// the input file does not matter, only the presence of the four names.
func indexHeader(header []string) columns {
	cols := columns{typ: -1, client: -1, tx: -1, amount: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "type":
			cols.typ = i
		case "client":
			cols.client = i
		case "tx":
			cols.tx = i
		case "amount":
			cols.amount = i
		}
	}
	return cols
}

func decodeRecord(record []string, cols columns) (ledger.Transaction, error) {
	field := func(idx int) string {
		if idx < 0 || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	typ := strings.ToLower(field(cols.typ))
	clientStr := field(cols.client)
	txStr := field(cols.tx)
	amountStr := field(cols.amount)

	client, err := strconv.ParseUint(clientStr, 10, 16)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("invalid client id %q: %w", clientStr, err)
	}
	txID, err := strconv.ParseUint(txStr, 10, 32)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("invalid tx id %q: %w", txStr, err)
	}

	account := ledger.AccountId(client)
	target := ledger.TransactionId(txID)

	switch typ {
	case "deposit":
		amount, err := parseAmount(amountStr)
		if err != nil {
			return ledger.Transaction{}, err
		}
		return ledger.NewDeposit(account, target, amount)
	case "withdraw", "withdrawal":
		amount, err := parseAmount(amountStr)
		if err != nil {
			return ledger.Transaction{}, err
		}
		return ledger.NewWithdraw(account, target, amount)
	case "dispute":
		return ledger.NewDispute(account, target), nil
	case "resolve":
		return ledger.NewResolve(account, target), nil
	case "chargeback":
		return ledger.NewChargeback(account, target), nil
	default:
		return ledger.Transaction{}, fmt.Errorf("unrecognized record type %q", typ)
	}
}

func parseAmount(s string) (money.Amount, error) {
	if s == "" {
		return money.Amount{}, fmt.Errorf("missing amount")
	}
	return money.FromDecimalString(s)
}
