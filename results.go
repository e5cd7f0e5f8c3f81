package nftoken

// KVPair is a key-value tag attached to a DeliverResult. The hosting
// environment may index and search request history by these pairs.
// Extensions use them as the event sink: one tag per emitted domain
// event, the key naming the event and the value carrying its
// serialized form.
type KVPair struct {
	Key   []byte
	Value []byte
}

// CheckResult captures any non-error result of a Check call,
// to make sure people use error for error cases.
type CheckResult struct {
	// Data is a machine-parseable return value, like the id of a
	// created entity.
	Data []byte
	// Log is a human-readable informational string.
	Log string
	// GasAllocated is the maximum units of work we allow this
	// request to perform.
	GasAllocated int64
}

// NewCheck sets the gas allocated and the log message, the most
// common info needed to be set by a Handler.
func NewCheck(gasAllocated int64, log string) CheckResult {
	return CheckResult{
		GasAllocated: gasAllocated,
		Log:          log,
	}
}

// DeliverResult captures any non-error result of a Deliver call,
// to make sure people use error for error cases.
type DeliverResult struct {
	// Data is a machine-parseable return value, like the id of a
	// created entity.
	Data []byte
	// Log is a human-readable informational string.
	Log string
	// Tags carry the domain events emitted by this delivery. A
	// successful mutating operation emits exactly one event; a
	// failed one emits none (the error return replaces the result).
	Tags []KVPair
	// GasUsed is the units of work performed by this delivery.
	GasUsed int64
}
