package combat

import "fmt"

// EffectKind identifies a status effect's interception behavior.
type EffectKind int

const (
	// EffectInvincible fully negates the next incoming basic attack.
	EffectInvincible EffectKind = iota
	// EffectReflectiveShield bounces the next incoming basic attack's
	// damage back onto the attacker.
	EffectReflectiveShield
)

// String returns a human-readable effect label.
func (k EffectKind) String() string {
	switch k {
	case EffectInvincible:
		return "Invincible"
	case EffectReflectiveShield:
		return "Reflective Shield"
	default:
		return "unknown"
	}
}

// Effect is a limited-use status modifier attached to one combatant. It is
// owned by that combatant's effect list and has no independent lifetime.
type Effect struct {
	Kind EffectKind
	// UseCount is decremented each time the effect intercepts an attack;
	// the effect is removed when it reaches zero.
	UseCount int
	// Source is the display name of the skill that attached the effect,
	// used in rejection logs.
	Source string
}

// ActiveEffect returns the first active effect of the given kind, or nil.
// Enemies have no effects capability and always return nil.
func (c *Combatant) ActiveEffect(kind EffectKind) *Effect {
	if c.Kind != KindPlayer {
		return nil
	}
	for _, e := range c.effects {
		if e.Kind == kind {
			return e
		}
	}
	return nil
}

// AttachEffect appends a status effect to the combatant's active list.
//
// Precondition: the combatant must be a player; enemies have no effects
// capability.
func (c *Combatant) AttachEffect(e *Effect) {
	if c.Kind != KindPlayer {
		return
	}
	c.effects = append(c.effects, e)
}

// ActiveEffects returns a snapshot of the active effect list.
func (c *Combatant) ActiveEffects() []*Effect {
	cp := make([]*Effect, len(c.effects))
	copy(cp, c.effects)
	return cp
}

// consumeEffect decrements e's use count and removes it from c when
// exhausted.
//
// Postcondition: e.UseCount is decremented; if it reaches <= 0, e is no
// longer in c's active list.
func (c *Combatant) consumeEffect(e *Effect) {
	e.UseCount--
	if e.UseCount > 0 {
		return
	}
	for i, cur := range c.effects {
		if cur == e {
			c.effects = append(c.effects[:i], c.effects[i+1:]...)
			return
		}
	}
}

// reflectDamage applies a reflected basic attack back onto the original
// attacker: defense soaks up to its current value, any excess lands on
// health.
//
// Postcondition: attacker loses dpLoss+hpLoss total where dpLoss+hpLoss ==
// damage; the shield's owner is untouched.
func reflectDamage(attacker *Combatant, damage int) string {
	dpLoss := damage
	if attacker.DefensePoints < dpLoss {
		dpLoss = attacker.DefensePoints
	}
	hpLoss := damage - attacker.DefensePoints
	if hpLoss < 0 {
		hpLoss = 0
	}
	attacker.DefensePoints -= dpLoss
	attacker.HealthPoints -= hpLoss

	return fmt.Sprintf(
		"%s's attack was met with a defensive shield, causing the damage to reflect back to themselves. (-%dDP and -%dHP)",
		attacker.Name, dpLoss, hpLoss,
	)
}
