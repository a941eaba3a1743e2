// Package combat implements combatants and their actions for the
// CATastrophe combat core: basic attacks, healing, class skills, and the
// limited-use status effects that intercept incoming attacks.
package combat

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/wildcatcafe/catastrophe/internal/game/catalog"
	"github.com/wildcatcafe/catastrophe/internal/game/dice"
)

// Kind distinguishes player-controlled combatants from rule-driven enemies.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
)

// String returns a human-readable kind label.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Combatant is one participant in a combat session.
//
// Players and enemies share the basic stat block and the attack/heal
// actions; skills, magic points, and status effects are player-only
// capabilities (nil/zero for enemies).
//
// Invariant: MaxHealthPoints and MaxDefensePoints never change during a
// battle. HealthPoints may exceed MaxHealthPoints (heals are uncapped) and
// DefensePoints may go negative after a hit; the idle-regeneration step in
// the engine is the only place negative defense is corrected.
type Combatant struct {
	ID   string
	Kind Kind
	Name string
	// JobClass is the catalog job class ID; empty for enemies.
	JobClass string

	HealthPoints     int
	MaxHealthPoints  int
	DefensePoints    int
	MaxDefensePoints int
	AttackPoints     int
	SpeedPoints      int
	// MagicPoints is a player-only resource; always 0 for enemies.
	MagicPoints int
	// Luck in [0,100] drives the critical-hit roll. Skills may push it
	// past 100, at which point every basic attack crits.
	Luck int

	skills  []*catalog.Skill
	effects []*Effect

	job   *catalog.JobClass
	enemy *catalog.Enemy
}

// NewPlayer creates a player combatant with full stats and the two-skill
// loadout from the given job class.
//
// Precondition: cat must contain classID and its skill references.
// Postcondition: Returns a living combatant at max HP/DP, or an error
// wrapping catalog.ErrUnknownKey.
func NewPlayer(cat *catalog.Catalog, name, classID string) (*Combatant, error) {
	job, err := cat.JobClass(classID)
	if err != nil {
		return nil, fmt.Errorf("creating player %q: %w", name, err)
	}
	skills := make([]*catalog.Skill, 0, len(job.Skills))
	for _, sid := range job.Skills {
		s, err := cat.Skill(sid)
		if err != nil {
			return nil, fmt.Errorf("creating player %q: %w", name, err)
		}
		skills = append(skills, s)
	}
	return &Combatant{
		ID:               uuid.NewString(),
		Kind:             KindPlayer,
		Name:             name,
		JobClass:         job.ID,
		HealthPoints:     job.HealthPoints,
		MaxHealthPoints:  job.HealthPoints,
		DefensePoints:    job.DefensePoints,
		MaxDefensePoints: job.DefensePoints,
		AttackPoints:     job.AttackPoints,
		SpeedPoints:      job.SpeedPoints,
		MagicPoints:      job.MagicPoints,
		Luck:             job.Luck,
		skills:           skills,
		job:              job,
	}, nil
}

// NewEnemy creates an enemy combatant with full stats from the given
// archetype. Enemies have no skills, magic points, or effects.
//
// Postcondition: Returns a living combatant at max HP/DP, or an error
// wrapping catalog.ErrUnknownKey.
func NewEnemy(cat *catalog.Catalog, enemyID string) (*Combatant, error) {
	def, err := cat.Enemy(enemyID)
	if err != nil {
		return nil, fmt.Errorf("creating enemy: %w", err)
	}
	return &Combatant{
		ID:               uuid.NewString(),
		Kind:             KindEnemy,
		Name:             def.Name,
		HealthPoints:     def.HealthPoints,
		MaxHealthPoints:  def.HealthPoints,
		DefensePoints:    def.DefensePoints,
		MaxDefensePoints: def.DefensePoints,
		AttackPoints:     def.AttackPoints,
		SpeedPoints:      def.SpeedPoints,
		Luck:             def.Luck,
		enemy:            def,
	}, nil
}

// IsAlive reports whether the combatant can still act.
//
// Postcondition: Returns true iff HealthPoints > 0.
func (c *Combatant) IsAlive() bool { return c.HealthPoints > 0 }

// IsPlayer reports whether this combatant is player-controlled.
func (c *Combatant) IsPlayer() bool { return c.Kind == KindPlayer }

// Skills returns the combatant's skill loadout in order. Nil for enemies.
func (c *Combatant) Skills() []*catalog.Skill {
	cp := make([]*catalog.Skill, len(c.skills))
	copy(cp, c.skills)
	return cp
}

// RestoreStats resets health and defense back to their catalog maxima.
// Speed, magic, and luck are scene-level progression owned by the caller
// and are left untouched.
//
// Postcondition: HealthPoints == MaxHealthPoints and
// DefensePoints == MaxDefensePoints; all other stats unchanged.
func (c *Combatant) RestoreStats() {
	switch {
	case c.job != nil:
		c.MaxHealthPoints = c.job.HealthPoints
		c.MaxDefensePoints = c.job.DefensePoints
	case c.enemy != nil:
		c.MaxHealthPoints = c.enemy.HealthPoints
		c.MaxDefensePoints = c.enemy.DefensePoints
	}
	c.HealthPoints = c.MaxHealthPoints
	c.DefensePoints = c.MaxDefensePoints
}

// rollCritical reports whether a basic attack from this combatant crits:
// a percentile roll at or under Luck.
func (c *Combatant) rollCritical(src dice.Source) bool {
	return dice.Percentile(src) <= c.Luck
}
