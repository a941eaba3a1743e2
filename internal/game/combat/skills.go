package combat

import (
	"fmt"

	"github.com/wildcatcafe/catastrophe/internal/game/catalog"
	"github.com/wildcatcafe/catastrophe/internal/game/dice"
)

// effectFunc applies one skill's stat mutations and returns the summary
// line appended to the flavor message. Skills hold no per-use state; each
// function is pure apart from the mutations on caster/target and the draws
// from src.
type effectFunc func(caster *Combatant, skill *catalog.Skill, target *Combatant, src dice.Source) string

// effectFuncs dispatches a skill's catalog effect tag to its behavior.
// Data-driven records keyed by tag replace the original design's
// class-per-skill hierarchy.
var effectFuncs = map[string]effectFunc{
	"whisker_guard":     whiskerGuard,
	"claw_swipe":        clawSwipe,
	"illusionary_aura":  illusionaryAura,
	"reflective_shield": reflectiveShield,
	"healing_purr":      healingPurr,
	"lucky_charm":       luckyCharm,
	"purrfect_strike":   purrfectStrike,
	"crippling_strike":  cripplingStrike,
}

// KnownEffect reports whether tag has an entry in the effect table, so
// catalog content can be cross-checked at startup.
func KnownEffect(tag string) bool {
	_, ok := effectFuncs[tag]
	return ok
}

// whiskerGuard raises the caster's defense by 5 to 15 points.
func whiskerGuard(caster *Combatant, _ *catalog.Skill, _ *Combatant, src dice.Source) string {
	gain := dice.RollRange(src, 5, 15)
	caster.DefensePoints += gain
	return fmt.Sprintf("(+%d Defense Points)", gain)
}

// clawSwipe strips the target's defense to zero; if the 25–35 roll exceeds
// the old defense, the excess lands on health.
func clawSwipe(_ *Combatant, _ *catalog.Skill, target *Combatant, src dice.Source) string {
	summary := fmt.Sprintf("(removed %s defense)", target.Name)

	damage := dice.RollRange(src, 25, 35)
	if damage > target.DefensePoints {
		net := damage - target.DefensePoints
		target.HealthPoints -= net
		summary = fmt.Sprintf("(removed %s defense and dealt %dHP)", target.Name, net)
	}
	target.DefensePoints = 0

	return summary
}

// illusionaryAura attaches a one-use Invincible effect to the caster,
// blocking the next incoming basic attack entirely.
func illusionaryAura(caster *Combatant, skill *catalog.Skill, _ *Combatant, _ dice.Source) string {
	caster.AttachEffect(&Effect{Kind: EffectInvincible, UseCount: 1, Source: skill.Name})
	return "(Invincible Effect Activated)"
}

// reflectiveShield attaches a one-use ReflectiveShield effect to the
// caster, bouncing the next incoming basic attack back at the attacker.
func reflectiveShield(caster *Combatant, skill *catalog.Skill, _ *Combatant, _ dice.Source) string {
	caster.AttachEffect(&Effect{Kind: EffectReflectiveShield, UseCount: 1, Source: skill.Name})
	return "(reflective shield effect activated)"
}

// healingPurr restores 5 to 15 health points, uncapped.
func healingPurr(caster *Combatant, _ *catalog.Skill, _ *Combatant, src dice.Source) string {
	gain := dice.RollRange(src, 5, 15)
	caster.HealthPoints += gain
	return fmt.Sprintf("(+%d health points)", gain)
}

// luckyCharm raises the caster's luck by 5. There is no upper bound; the
// crit roll saturates once luck reaches 100.
func luckyCharm(caster *Combatant, _ *catalog.Skill, _ *Combatant, _ dice.Source) string {
	const gain = 5
	caster.Luck += gain
	return fmt.Sprintf("(+%d%% luck)", gain)
}

// purrfectStrike strips the target's defense to zero and deals 15 to 25
// damage straight to health.
func purrfectStrike(_ *Combatant, _ *catalog.Skill, target *Combatant, src dice.Source) string {
	target.DefensePoints = 0
	damage := dice.RollRange(src, 15, 25)
	target.HealthPoints -= damage
	return fmt.Sprintf("(removed %s's defense and dealt %dHP)", target.Name, damage)
}

// cripplingStrike drains 5 to 15 speed points from the target, clamped at
// zero.
func cripplingStrike(_ *Combatant, _ *catalog.Skill, target *Combatant, src dice.Source) string {
	drain := dice.RollRange(src, 5, 15)
	target.SpeedPoints -= drain
	if target.SpeedPoints < 0 {
		target.SpeedPoints = 0
	}
	return fmt.Sprintf("(Reduced %s speed points by %d)", target.Name, drain)
}
