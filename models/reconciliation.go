package models

// ReconcileState is the state of one reconciliation pass.
type ReconcileState int

const (
	Unreconciled ReconcileState = iota
	Reconciled
)

// ReconcileAction is the outcome chosen by a reconciliation pass.
type ReconcileAction int

const (
	// ActionNone leaves both sides untouched.
	ActionNone ReconcileAction = iota
	// ActionAdoptServer copies the server counters into the in-memory game.
	ActionAdoptServer
	// ActionPush sends the local counters to the server.
	ActionPush
	// ActionDiscard drops a locally cached progression whose signature
	// did not verify.
	ActionDiscard
)

// String implements [fmt.Stringer].
func (a ReconcileAction) String() string {
	switch a {
	case ActionAdoptServer:
		return "adopt_server"
	case ActionPush:
		return "push"
	case ActionDiscard:
		return "discard"
	default:
		return "none"
	}
}

// Reconciliation is the decision taken for a local and a server progression.
// It is recomputed on every load and never persisted.
type Reconciliation struct {
	State  ReconcileState
	Action ReconcileAction

	// MonstersKilled and DistanceTraveled are the counters the in-memory
	// game should carry after the decision.
	MonstersKilled   int32
	DistanceTraveled int32
}

// ShouldPush reports whether the local counters must be sent to the server.
func (r Reconciliation) ShouldPush() bool {
	return r.Action == ActionPush
}

// Discarded reports whether the local record was rejected as tampered.
func (r Reconciliation) Discarded() bool {
	return r.Action == ActionDiscard
}
