package combat

import "fmt"

// InsufficientResourcesError means a skill's cost exceeds the caster's
// current speed or magic points. It is recovered locally: the engine logs
// the reason and lets the same actor choose again without losing the turn.
type InsufficientResourcesError struct {
	// Resource is "speed" or "magic".
	Resource string
	Need     int
	Have     int
}

// Error returns the player-facing reason line, e.g.
// "Not enough speed points. You need 2 but only have 1."
func (e *InsufficientResourcesError) Error() string {
	return fmt.Sprintf("Not enough %s points. You need %d but only have %d.",
		e.Resource, e.Need, e.Have)
}

// SkillIndexError means a skill index outside the loadout was requested.
// Reported to the caller, never fatal; no state is mutated.
type SkillIndexError struct {
	Index int
	Count int
}

func (e *SkillIndexError) Error() string {
	return fmt.Sprintf("skill index %d out of range (have %d skills)", e.Index, e.Count)
}

// MissingTargetError means a skill that requires a target was invoked
// without one. The action is aborted with no state mutated.
type MissingTargetError struct {
	Skill string
}

func (e *MissingTargetError) Error() string {
	return fmt.Sprintf("skill %q requires a target", e.Skill)
}
