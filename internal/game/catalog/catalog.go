// Package catalog holds the immutable attribute tables for job classes,
// skills, and enemies. The tables are populated once at startup from YAML
// content files and injected into constructors; nothing mutates them after
// load.
package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownKey is returned by lookups for names absent from the catalog.
// A miss is a construction-time fatal condition (bad content data), never
// a runtime combat condition.
var ErrUnknownKey = errors.New("catalog: unknown key")

// JobClass is one playable class's base attributes.
type JobClass struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	HealthPoints  int      `yaml:"hp"`
	DefensePoints int      `yaml:"dp"`
	AttackPoints  int      `yaml:"ap"`
	SpeedPoints   int      `yaml:"sp"`
	MagicPoints   int      `yaml:"mp"`
	Luck          int      `yaml:"luck"`
	// Skills lists the two skill IDs granted at creation, in loadout order.
	Skills []string `yaml:"skills"`
}

// Validate checks the job class invariants.
//
// Postcondition: nil return guarantees non-empty ID and Name, positive HP,
// non-negative DP/AP/SP/MP, luck in [0,100], and exactly two skills.
func (j *JobClass) Validate() error {
	if j.ID == "" {
		return fmt.Errorf("job class: id must not be empty")
	}
	if j.Name == "" {
		return fmt.Errorf("job class %q: name must not be empty", j.ID)
	}
	if j.HealthPoints < 1 {
		return fmt.Errorf("job class %q: hp must be >= 1", j.ID)
	}
	if j.DefensePoints < 0 || j.AttackPoints < 0 || j.SpeedPoints < 0 || j.MagicPoints < 0 {
		return fmt.Errorf("job class %q: dp/ap/sp/mp must not be negative", j.ID)
	}
	if j.Luck < 0 || j.Luck > 100 {
		return fmt.Errorf("job class %q: luck must be in [0,100], got %d", j.ID, j.Luck)
	}
	if len(j.Skills) != 2 {
		return fmt.Errorf("job class %q: must grant exactly 2 skills, got %d", j.ID, len(j.Skills))
	}
	return nil
}

// Skill is the static definition of one class skill.
type Skill struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	Description     string `yaml:"description"`
	MagicPointsCost int    `yaml:"mp_cost"`
	SpeedPointsCost int    `yaml:"sp_cost"`
	RequireTarget   bool   `yaml:"require_target"`
	// BelongsTo is the job class ID this skill is part of.
	BelongsTo string `yaml:"belongs_to"`
	// Effect is the behavior tag dispatched through the combat package's
	// effect table (e.g. "whisker_guard", "crippling_strike").
	Effect string `yaml:"effect"`
	// Messages are the flavor lines one of which prefixes the skill's
	// battle log entry, chosen at random.
	Messages []string `yaml:"messages"`
}

// Validate checks the skill invariants.
//
// Postcondition: nil return guarantees non-empty ID, Name, and Effect,
// non-negative costs, and at least one flavor message.
func (s *Skill) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("skill: id must not be empty")
	}
	if s.Name == "" {
		return fmt.Errorf("skill %q: name must not be empty", s.ID)
	}
	if s.Effect == "" {
		return fmt.Errorf("skill %q: effect must not be empty", s.ID)
	}
	if s.MagicPointsCost < 0 || s.SpeedPointsCost < 0 {
		return fmt.Errorf("skill %q: costs must not be negative", s.ID)
	}
	if len(s.Messages) == 0 {
		return fmt.Errorf("skill %q: must have at least one message", s.ID)
	}
	return nil
}

// Enemy is one enemy archetype's base attributes. Enemies have no magic
// points, skills, or effects.
type Enemy struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	HealthPoints  int    `yaml:"hp"`
	DefensePoints int    `yaml:"dp"`
	AttackPoints  int    `yaml:"ap"`
	SpeedPoints   int    `yaml:"sp"`
	Luck          int    `yaml:"luck"`
}

// Validate checks the enemy invariants.
func (e *Enemy) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("enemy: id must not be empty")
	}
	if e.Name == "" {
		return fmt.Errorf("enemy %q: name must not be empty", e.ID)
	}
	if e.HealthPoints < 1 {
		return fmt.Errorf("enemy %q: hp must be >= 1", e.ID)
	}
	if e.Luck < 0 || e.Luck > 100 {
		return fmt.Errorf("enemy %q: luck must be in [0,100], got %d", e.ID, e.Luck)
	}
	return nil
}

// Catalog is the read-only lookup table for all static game data.
//
// Invariant: every job class's skill references resolve; no entry is
// modified after New returns.
type Catalog struct {
	jobs    map[string]*JobClass
	skills  map[string]*Skill
	enemies map[string]*Enemy
}

// New builds a Catalog from the given entries, validating each entry and
// the cross-references between job classes and skills.
//
// Postcondition: Returns a non-nil Catalog or an error naming the first
// invalid or duplicate entry.
func New(jobs []*JobClass, skills []*Skill, enemies []*Enemy) (*Catalog, error) {
	c := &Catalog{
		jobs:    make(map[string]*JobClass, len(jobs)),
		skills:  make(map[string]*Skill, len(skills)),
		enemies: make(map[string]*Enemy, len(enemies)),
	}
	for _, s := range skills {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.skills[s.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate skill ID %q", s.ID)
		}
		c.skills[s.ID] = s
	}
	for _, j := range jobs {
		if err := j.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.jobs[j.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate job class ID %q", j.ID)
		}
		for _, sid := range j.Skills {
			if _, ok := c.skills[sid]; !ok {
				return nil, fmt.Errorf("catalog: job class %q references unknown skill %q", j.ID, sid)
			}
		}
		c.jobs[j.ID] = j
	}
	for _, e := range enemies {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.enemies[e.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate enemy ID %q", e.ID)
		}
		c.enemies[e.ID] = e
	}
	return c, nil
}

// JobClass returns the job class with the given ID.
//
// Postcondition: Returns the entry, or an error wrapping ErrUnknownKey.
func (c *Catalog) JobClass(id string) (*JobClass, error) {
	j, ok := c.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job class %q: %w", id, ErrUnknownKey)
	}
	return j, nil
}

// Skill returns the skill with the given ID.
//
// Postcondition: Returns the entry, or an error wrapping ErrUnknownKey.
func (c *Catalog) Skill(id string) (*Skill, error) {
	s, ok := c.skills[id]
	if !ok {
		return nil, fmt.Errorf("skill %q: %w", id, ErrUnknownKey)
	}
	return s, nil
}

// Enemy returns the enemy archetype with the given ID.
//
// Postcondition: Returns the entry, or an error wrapping ErrUnknownKey.
func (c *Catalog) Enemy(id string) (*Enemy, error) {
	e, ok := c.enemies[id]
	if !ok {
		return nil, fmt.Errorf("enemy %q: %w", id, ErrUnknownKey)
	}
	return e, nil
}

// JobClassCount returns the number of registered job classes.
func (c *Catalog) JobClassCount() int { return len(c.jobs) }

// SkillCount returns the number of registered skills.
func (c *Catalog) SkillCount() int { return len(c.skills) }

// EnemyCount returns the number of registered enemy archetypes.
func (c *Catalog) EnemyCount() int { return len(c.enemies) }
