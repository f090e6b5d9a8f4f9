// Package broker implements the per-account fan-out dispatcher (spec.md
// §4.4): it routes an ordered global transaction stream into concurrent
// per-account workers while preserving per-account ordering, or, in
// Sequential mode, applies the same stream in-process against a single
// account map. Both modes produce the same unordered set of final
// AccountState values.
package broker

import (
	"sync"

	"ledger-engine/internal/ledger"
)

// ErrorSink is invoked for every rejected transaction (spec.md §7: an
// optional callback interface so a diagnostic backend can observe
// failures without coupling the core to one). It may be nil.
type ErrorSink func(tx ledger.Transaction, err error)

// ApplySink is invoked for every transaction the core accepted, after it
// has been applied. Like ErrorSink it exists purely so an external
// collaborator (metrics, audit) can observe the run without the core
// depending on one. It may be nil.
type ApplySink func(tx ledger.Transaction)

// Sequential applies transactions one at a time against a single
// AccountId->Account map and returns the final state of every account
// that was touched, in unspecified order.
func Sequential(transactions <-chan ledger.Transaction, onError ErrorSink, onApply ApplySink) []ledger.AccountState {
	accounts := make(map[ledger.AccountId]*ledger.Account)

	for tx := range transactions {
		acc, ok := accounts[tx.TargetAccount]
		if !ok {
			acc = ledger.NewAccount(tx.TargetAccount)
			accounts[tx.TargetAccount] = acc
		}
		if err := acc.Apply(tx); err != nil {
			if onError != nil {
				onError(tx, err)
			}
		} else if onApply != nil {
			onApply(tx)
		}
	}

	states := make([]ledger.AccountState, 0, len(accounts))
	for _, acc := range accounts {
		states = append(states, acc.State())
	}
	return states
}

// worker owns exactly one Account and the queue feeding it.
type worker struct {
	queue *txQueue
	done  chan ledger.AccountState
}

// Concurrent spawns one goroutine per distinct account id observed in the
// input stream. Each worker reads its own unbounded queue strictly in
// FIFO order, so every account sees its subsequence of the global input
// unmodified — no cross-account ordering is implied or required. Workers
// share no mutable state, so no locking is needed between them (spec.md
// §5, "Locking discipline").
func Concurrent(transactions <-chan ledger.Transaction, onError ErrorSink, onApply ApplySink) []ledger.AccountState {
	workers := make(map[ledger.AccountId]*worker)

	for tx := range transactions {
		w, ok := workers[tx.TargetAccount]
		if !ok {
			w = startWorker(tx.TargetAccount, onError, onApply)
			workers[tx.TargetAccount] = w
		}
		w.queue.Push(tx)
	}

	states := make([]ledger.AccountState, 0, len(workers))
	var wg sync.WaitGroup
	results := make(chan ledger.AccountState, len(workers))

	for _, w := range workers {
		w.queue.Close()
		wg.Add(1)
		go func(w *worker) {
			defer wg.Done()
			results <- <-w.done
		}(w)
	}

	wg.Wait()
	close(results)
	for state := range results {
		states = append(states, state)
	}
	return states
}

func startWorker(id ledger.AccountId, onError ErrorSink, onApply ApplySink) *worker {
	w := &worker{queue: newTxQueue(), done: make(chan ledger.AccountState, 1)}

	go func() {
		acc := ledger.NewAccount(id)
		for {
			tx, ok := w.queue.Pop()
			if !ok {
				break
			}
			if err := acc.Apply(tx); err != nil {
				if onError != nil {
					onError(tx, err)
				}
			} else if onApply != nil {
				onApply(tx)
			}
		}
		w.done <- acc.State()
	}()

	return w
}
