// Package policy selects actions for rule-driven enemy combatants.
//
// The default selector is a fixed priority ladder evaluated against the
// active player each round; an optional Lua tactic script can override it.
package policy

import "github.com/wildcatcafe/catastrophe/internal/game/combat"

// Action is the primitive an enemy performs on its turn.
type Action int

const (
	ActionAttack Action = iota
	ActionHeal
	ActionDefend
)

// String returns the action's script-facing name.
func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionHeal:
		return "heal"
	case ActionDefend:
		return "defend"
	default:
		return "unknown"
	}
}

// actionByName maps script return values back to Actions.
var actionByName = map[string]Action{
	"attack": ActionAttack,
	"heal":   ActionHeal,
	"defend": ActionDefend,
}

// Selector picks an enemy's action for the current round.
type Selector interface {
	// Select returns the action self should take against player.
	// Precondition: self and player must be non-nil and alive.
	Select(self, player *combat.Combatant) Action
}

// RuleLadder is the deterministic priority ladder:
//
//  1. A basic attack can break through the player's combined health and
//     defense in one hit: attack.
//  2. Own health below 20% of max: heal.
//  3. Own defense below 50% of max: defend.
//  4. Otherwise: attack.
type RuleLadder struct{}

// Select evaluates the ladder. No randomness is consumed.
func (RuleLadder) Select(self, player *combat.Combatant) Action {
	if player.HealthPoints+player.DefensePoints < self.AttackPoints {
		return ActionAttack
	}
	// hp < 0.2*max and dp < 0.5*max, kept in integer arithmetic.
	if self.HealthPoints*5 < self.MaxHealthPoints {
		return ActionHeal
	}
	if self.DefensePoints*2 < self.MaxDefensePoints {
		return ActionDefend
	}
	return ActionAttack
}
