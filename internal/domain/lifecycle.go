package domain

// LifecycleState describes whether a multi-step operation is in progress.
type LifecycleState int

const (
	LifecycleNormal LifecycleState = iota
	LifecycleMerge
	LifecycleRevert
	LifecycleRevertSequence
	LifecycleCherryPick
	LifecycleCherryPickSequence
	LifecycleRebase
	LifecycleRebaseInteractive
	LifecycleRebaseMerge
	LifecycleApplyMailbox
	LifecycleApplyMailboxOrRebase
	LifecycleBisect
)

// String returns a kebab-case name of the state.
func (s LifecycleState) String() string {
	switch s {
	case LifecycleNormal:
		return "normal"
	case LifecycleMerge:
		return "merge"
	case LifecycleRevert:
		return "revert"
	case LifecycleRevertSequence:
		return "revert-sequence"
	case LifecycleCherryPick:
		return "cherry-pick"
	case LifecycleCherryPickSequence:
		return "cherry-pick-sequence"
	case LifecycleRebase:
		return "rebase"
	case LifecycleRebaseInteractive:
		return "rebase-interactive"
	case LifecycleRebaseMerge:
		return "rebase-merge"
	case LifecycleApplyMailbox:
		return "apply-mailbox"
	case LifecycleApplyMailboxOrRebase:
		return "apply-mailbox-or-rebase"
	case LifecycleBisect:
		return "bisect"
	default:
		return "unknown"
	}
}

// Operation returns the display label of the in-progress operation.
// The mapping is total: states without a label report false.
func (s LifecycleState) Operation() (string, bool) {
	switch s {
	case LifecycleMerge:
		return "merge", true
	case LifecycleRevert, LifecycleRevertSequence:
		return "revert", true
	case LifecycleCherryPick, LifecycleCherryPickSequence:
		return "cherry pick", true
	case LifecycleRebase, LifecycleRebaseInteractive, LifecycleRebaseMerge:
		return "rebase", true
	default:
		return "", false
	}
}
