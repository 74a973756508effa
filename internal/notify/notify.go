// Package notify presents short-lived, non-blocking feedback messages.
package notify

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Toast is one ephemeral message. It disappears on its own after the
// service TTL; there is no manual dismissal path.
type Toast struct {
	ID       int64    `json:"id"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}
