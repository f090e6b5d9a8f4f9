package broker

import (
	"sync"

	"github.com/eapache/queue"
	"ledger-engine/internal/ledger"
)

// txQueue is a genuinely unbounded, FIFO, single-producer/single-consumer
// queue of transactions, backed by eapache/queue's growable ring buffer.
// Unlike a buffered channel it never blocks a sender on capacity; a
// blocked Pop wakes as soon as either a Push or Close happens.
//
// This is the queue sizing spec.md §4.4.2 calls for: unbounded is
// acceptable for the core contract.
type txQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	q      *queue.Queue
	closed bool
}

func newTxQueue() *txQueue {
	tq := &txQueue{q: queue.New()}
	tq.cond = sync.NewCond(&tq.mu)
	return tq
}

// Push enqueues tx. Pushing to a closed queue is a no-op (spec.md §5:
// "subsequent sends must be silently dropped with a diagnostic; this is
// a programming error, not a runtime condition").
func (tq *txQueue) Push(tx ledger.Transaction) (droppedOnClosed bool) {
	tq.mu.Lock()
	defer tq.mu.Unlock()
	if tq.closed {
		return true
	}
	tq.q.Add(tx)
	tq.cond.Signal()
	return false
}

// Pop blocks until a transaction is available or the queue is closed and
// drained, returning (tx, true) or (zero, false) respectively.
func (tq *txQueue) Pop() (ledger.Transaction, bool) {
	tq.mu.Lock()
	defer tq.mu.Unlock()
	for tq.q.Length() == 0 {
		if tq.closed {
			return ledger.Transaction{}, false
		}
		tq.cond.Wait()
	}
	tx := tq.q.Peek().(ledger.Transaction)
	tq.q.Remove()
	return tx, true
}

// Close marks the queue closed: no further Push succeeds, and Pop drains
// whatever remains before reporting no more items.
func (tq *txQueue) Close() {
	tq.mu.Lock()
	defer tq.mu.Unlock()
	tq.closed = true
	tq.cond.Broadcast()
}
