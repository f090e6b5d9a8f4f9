// Package runid stamps a single ledger run with a correlation id, the
// same role the teacher's messaging.DepositRequestedEvent.OperationID
// UUID plays for a single banking operation.
package runid

import "github.com/google/uuid"

// New returns a fresh run correlation id.
func New() string {
	return uuid.NewString()
}
