package kafka

// Topic names for the engine's audit event stream.
const (
	TopicAccountLocked = "ledger.accounts.locked"
	TopicRunCompleted  = "ledger.runs.completed"
)
