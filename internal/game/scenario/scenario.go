// Package scenario handles between-battle progression: a campaign plays an
// ordered series of encounters against the same party, restoring stats and
// granting bonus points between battles.
package scenario

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wildcatcafe/catastrophe/internal/game/catalog"
	"github.com/wildcatcafe/catastrophe/internal/game/combat"
	"github.com/wildcatcafe/catastrophe/internal/game/dice"
	"github.com/wildcatcafe/catastrophe/internal/game/engine"
	"github.com/wildcatcafe/catastrophe/internal/game/policy"
)

// Stat names a combatant stat a scene reward can raise.
type Stat int

const (
	StatHealth Stat = iota
	StatDefense
	StatSpeed
	StatMagic
	StatLuck
)

// Party is the player roster carried from encounter to encounter. Defeated
// members stay in the roster but are excluded from restoration and rewards.
type Party struct {
	members []*combat.Combatant
}

// NewParty wraps the given roster.
// Precondition: members must be non-empty.
func NewParty(members []*combat.Combatant) *Party {
	return &Party{members: members}
}

// Members returns the roster in order, defeated members included.
func (p *Party) Members() []*combat.Combatant {
	cp := make([]*combat.Combatant, len(p.members))
	copy(cp, p.members)
	return cp
}

// RestoreAll resets health and defense for every living member. The fallen
// stay fallen.
func (p *Party) RestoreAll() {
	for _, m := range p.members {
		if m.IsAlive() {
			m.RestoreStats()
		}
	}
}

// GrantStat raises one stat by amount for every living member. Maxima are
// untouched: a later RestoreStats absorbs health and defense grants, while
// speed, magic, and luck persist as scene-level progression.
func (p *Party) GrantStat(stat Stat, amount int) {
	for _, m := range p.members {
		if !m.IsAlive() {
			continue
		}
		switch stat {
		case StatHealth:
			m.HealthPoints += amount
		case StatDefense:
			m.DefensePoints += amount
		case StatSpeed:
			m.SpeedPoints += amount
		case StatMagic:
			m.MagicPoints += amount
		case StatLuck:
			m.Luck += amount
		}
	}
}

// Encounter is one battle in a campaign: the enemies met, and an optional
// preparation step (restores, rewards) run before the battle starts.
type Encounter struct {
	Name     string
	EnemyIDs []string
	// Prepare runs against the party before the battle; may be nil.
	Prepare func(p *Party)
}

// Deps are the collaborators a campaign threads into every battle session.
type Deps struct {
	Catalog  *catalog.Catalog
	Source   dice.Source
	Chooser  engine.Chooser
	Renderer engine.Renderer
	Clock    engine.Clock
	Selector policy.Selector
	Logger   *zap.Logger

	LogCapacity    int
	EnemyTurnDelay time.Duration
}

// Campaign plays encounters in order until the party loses or the list is
// exhausted.
type Campaign struct {
	party      *Party
	encounters []Encounter
	deps       Deps
}

// NewCampaign builds a campaign over the given encounters.
// Precondition: deps.Catalog, deps.Source, deps.Chooser, and deps.Renderer
// must be non-nil; party must have at least one living member.
func NewCampaign(party *Party, encounters []Encounter, deps Deps) *Campaign {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Campaign{party: party, encounters: encounters, deps: deps}
}

// Run plays the campaign. It returns true when the party survives every
// encounter, false on the first lost battle, and an error only for bad data
// (unknown enemy ID, empty roster).
func (c *Campaign) Run() (bool, error) {
	for i, enc := range c.encounters {
		c.deps.Logger.Info("encounter starting",
			zap.Int("index", i),
			zap.String("encounter", enc.Name))

		if enc.Prepare != nil {
			enc.Prepare(c.party)
		}

		enemies := make([]*combat.Combatant, 0, len(enc.EnemyIDs))
		for _, id := range enc.EnemyIDs {
			e, err := combat.NewEnemy(c.deps.Catalog, id)
			if err != nil {
				return false, fmt.Errorf("encounter %q: %w", enc.Name, err)
			}
			enemies = append(enemies, e)
		}

		session, err := engine.NewSession(engine.Params{
			Players:        alive(c.party.members),
			Enemies:        enemies,
			Source:         c.deps.Source,
			Chooser:        c.deps.Chooser,
			Renderer:       c.deps.Renderer,
			Clock:          c.deps.Clock,
			Selector:       c.deps.Selector,
			Logger:         c.deps.Logger,
			LogCapacity:    c.deps.LogCapacity,
			EnemyTurnDelay: c.deps.EnemyTurnDelay,
		})
		if err != nil {
			return false, fmt.Errorf("encounter %q: %w", enc.Name, err)
		}

		if session.Run() == engine.OutcomeEnemyWon {
			c.deps.Logger.Info("campaign lost",
				zap.String("encounter", enc.Name))
			return false, nil
		}
	}
	return true, nil
}

// alive filters the roster down to members that can still fight.
func alive(members []*combat.Combatant) []*combat.Combatant {
	out := make([]*combat.Combatant, 0, len(members))
	for _, m := range members {
		if m.IsAlive() {
			out = append(out, m)
		}
	}
	return out
}
