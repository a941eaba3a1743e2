package combat

import (
	"fmt"
	"strings"

	"github.com/wildcatcafe/catastrophe/internal/game/catalog"
	"github.com/wildcatcafe/catastrophe/internal/game/dice"
)

// BasicAttack strikes target and returns the battle log line.
//
// Acting costs the attacker 1 speed point up front. If the target holds an
// Invincible effect the attack is fully negated; a ReflectiveShield bounces
// the attacker's own attack points back onto them. Otherwise the attack
// rolls for a critical (percentile <= luck): criticals deal double attack
// points and bypass defense, normal hits deal max(AP - target DP, 0).
//
// The target always loses 1 defense point on a resolved (non-intercepted)
// attack, even when the damage dealt was 0 and even on a critical. Defense
// is deliberately not clamped here; it may go negative until the idle
// regeneration step corrects it.
//
// Precondition: target and src must be non-nil.
// Postcondition: attacker.SpeedPoints is decremented by 1; returns a
// non-empty log line.
func (c *Combatant) BasicAttack(target *Combatant, src dice.Source) string {
	c.SpeedPoints--

	if effect := target.ActiveEffect(EffectInvincible); effect != nil {
		log := fmt.Sprintf("%s's attack was REJECTED due to %s's %s.",
			c.Name, target.Name, effect.Source)
		target.consumeEffect(effect)
		return log
	}

	if effect := target.ActiveEffect(EffectReflectiveShield); effect != nil {
		log := reflectDamage(c, c.AttackPoints)
		target.consumeEffect(effect)
		return log
	}

	var totalDamage int
	var log string
	if c.rollCritical(src) {
		totalDamage = 2 * c.AttackPoints
		log = fmt.Sprintf("%s lands a CRITICAL hit and dealt %dHP on %s!",
			c.Name, totalDamage, target.Name)
	} else {
		totalDamage = c.AttackPoints - target.DefensePoints
		if totalDamage < 0 {
			totalDamage = 0
		}
		log = fmt.Sprintf("%s attacked %s, dealing %dHP.", c.Name, target.Name, totalDamage)
		if totalDamage == 0 {
			log = fmt.Sprintf("%s tried attacking %s but cant get through its defense!",
				c.Name, target.Name)
		}
	}

	target.HealthPoints -= totalDamage
	target.DefensePoints--

	return log
}

// Heal raises the combatant's health by 1 to 10 points, uncapped, at the
// cost of 1 speed point.
//
// Postcondition: SpeedPoints is decremented by 1; HealthPoints increases
// by a value in [1,10].
func (c *Combatant) Heal(src dice.Source) string {
	c.SpeedPoints--
	gain := dice.RollRange(src, 1, 10)
	c.HealthPoints += gain
	return fmt.Sprintf("%s used heal and gained %dHP.", c.Name, gain)
}

// Defend restores defense points to their maximum. It is the enemy
// policy's guard action and costs no speed points; that asymmetry with the
// player's attack/heal is intentional.
//
// Postcondition: DefensePoints == MaxDefensePoints; SpeedPoints unchanged.
func (c *Combatant) Defend() string {
	c.DefensePoints = c.MaxDefensePoints
	return fmt.Sprintf("%s restored its defense points!", c.Name)
}

// CheckSkillCost reports whether the combatant can pay for skillIdx's
// costs. Speed is checked before magic; the first failing resource is the
// one reported.
//
// Postcondition: Returns nil, or an *InsufficientResourcesError naming the
// lacking resource. No state is mutated.
func (c *Combatant) CheckSkillCost(skillIdx int) error {
	if skillIdx < 0 || skillIdx >= len(c.skills) {
		return &SkillIndexError{Index: skillIdx, Count: len(c.skills)}
	}
	skill := c.skills[skillIdx]
	if c.SpeedPoints < skill.SpeedPointsCost {
		return &InsufficientResourcesError{Resource: "speed", Need: skill.SpeedPointsCost, Have: c.SpeedPoints}
	}
	if c.MagicPoints < skill.MagicPointsCost {
		return &InsufficientResourcesError{Resource: "magic", Need: skill.MagicPointsCost, Have: c.MagicPoints}
	}
	return nil
}

// UseSkill executes the skill at skillIdx against target (which may be nil
// for self-targeted skills) and returns the battle log line.
//
// Failure modes, none of which mutate state:
//   - *SkillIndexError for an index outside the loadout
//   - *MissingTargetError when the skill requires a target and none was given
//   - *InsufficientResourcesError when speed or magic cannot cover the cost
//
// On success the speed and magic costs are deducted, the skill's effect
// function runs, and the returned log is a flavor line (chosen by src from
// the skill's messages) plus the effect summary.
//
// Precondition: src must be non-nil.
func (c *Combatant) UseSkill(skillIdx int, target *Combatant, src dice.Source) (string, error) {
	if skillIdx < 0 || skillIdx >= len(c.skills) {
		return "", &SkillIndexError{Index: skillIdx, Count: len(c.skills)}
	}
	skill := c.skills[skillIdx]

	if skill.RequireTarget && target == nil {
		return "", &MissingTargetError{Skill: skill.Name}
	}
	if err := c.CheckSkillCost(skillIdx); err != nil {
		return "", err
	}

	fn, ok := effectFuncs[skill.Effect]
	if !ok {
		return "", fmt.Errorf("skill %q: unknown effect tag %q", skill.ID, skill.Effect)
	}

	c.SpeedPoints -= skill.SpeedPointsCost
	c.MagicPoints -= skill.MagicPointsCost

	summary := fn(c, skill, target, src)
	return flavorLine(skill, c, target, src) + "\n" + summary, nil
}

// flavorLine picks one of the skill's flavor messages and substitutes the
// {character} and {target} placeholders.
func flavorLine(skill *catalog.Skill, caster, target *Combatant, src dice.Source) string {
	msgs := skill.Messages
	msg := msgs[src.Intn(len(msgs))]
	msg = strings.ReplaceAll(msg, "{character}", caster.Name)
	if target != nil {
		msg = strings.ReplaceAll(msg, "{target}", target.Name)
	}
	return msg
}
