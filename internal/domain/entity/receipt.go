package entity

// FailureReason classifies why a print attempt failed.
type FailureReason string

const (
	FailureNone        FailureReason = ""
	FailureTimeout     FailureReason = "timeout"
	FailureUnreachable FailureReason = "unreachable"
	FailureIO          FailureReason = "io-error"
)

// PrintResult aggregates the two independent outcomes of an order
// submission: the ledger write and the print attempt. Printing is the
// staff-visible outcome, so a failed print always carries a human-readable
// message rather than a bare boolean.
type PrintResult struct {
	Printed bool          `json:"printed"`
	Reason  FailureReason `json:"reason,omitempty"`
	Message string        `json:"message,omitempty"`

	Logged        bool   `json:"logged"`
	LedgerMessage string `json:"ledger_message,omitempty"`
}

// Success reports whether the print attempt succeeded. Ledger failures are
// surfaced to operators but do not make the submission fail.
func (r PrintResult) Success() bool {
	return r.Printed
}
