// internal/domain/session/entity.go
package session

// Phase represents the initialization state of a session store.
// Consumers must not trust User() before the store reaches PhaseReady.
type Phase int

const (
	// PhaseUninitialized means Hydrate has not been attempted yet
	PhaseUninitialized Phase = iota
	// PhaseHydrating means a persisted token is being validated remotely
	PhaseHydrating
	// PhaseReady means hydration finished, authenticated or not
	PhaseReady
)

// String returns a human-readable phase name
func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseHydrating:
		return "hydrating"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}
