package scenario

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildcatcafe/catastrophe/internal/game/catalog"
	"github.com/wildcatcafe/catastrophe/internal/game/combat"
	"github.com/wildcatcafe/catastrophe/internal/game/engine"
)

type fixedSource struct{ v int }

func (f fixedSource) Intn(n int) int {
	if f.v >= n {
		return n - 1
	}
	return f.v
}

type attackChooser struct{}

func (attackChooser) Choose(title string, options []string) int { return 0 }

type nopRenderer struct{}

func (nopRenderer) RenderCombat(engine.CombatView) {}
func (nopRenderer) Notify(string)                 {}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	jobs := []*catalog.JobClass{{
		ID: "tank", Name: "Tank",
		HealthPoints: 70, DefensePoints: 20, AttackPoints: 8,
		SpeedPoints: 5, MagicPoints: 10, Luck: 10,
		Skills: []string{"whisker_guard", "claw_swipe"},
	}}
	skills := []*catalog.Skill{
		{
			ID: "whisker_guard", Name: "Whisker Guard", Description: "Bristle.",
			MagicPointsCost: 3, SpeedPointsCost: 1,
			BelongsTo: "tank", Effect: "whisker_guard",
			Messages: []string{"{character} raises a whisker guard!"},
		},
		{
			ID: "claw_swipe", Name: "Claw Swipe", Description: "Shred.",
			MagicPointsCost: 5, SpeedPointsCost: 2, RequireTarget: true,
			BelongsTo: "tank", Effect: "claw_swipe",
			Messages: []string{"{character} swipes at {target}!"},
		},
	}
	enemies := []*catalog.Enemy{
		{ID: "viperstrike", Name: "Viperstrike", HealthPoints: 10, DefensePoints: 2, AttackPoints: 3, SpeedPoints: 1, Luck: 0},
		{ID: "doomshroud", Name: "Doomshroud", HealthPoints: 12, DefensePoints: 3, AttackPoints: 4, SpeedPoints: 1, Luck: 0},
	}
	cat, err := catalog.New(jobs, skills, enemies)
	require.NoError(t, err)
	return cat
}

func newTank(t *testing.T, cat *catalog.Catalog, name string) *combat.Combatant {
	t.Helper()
	c, err := combat.NewPlayer(cat, name, "tank")
	require.NoError(t, err)
	return c
}

func TestRestoreAllSkipsDefeatedMembers(t *testing.T) {
	cat := testCatalog(t)
	a := newTank(t, cat, "Whiskers")
	b := newTank(t, cat, "Mittens")
	a.HealthPoints = 12
	a.DefensePoints = -2
	b.HealthPoints = 0

	party := NewParty([]*combat.Combatant{a, b})
	party.RestoreAll()

	assert.Equal(t, 70, a.HealthPoints)
	assert.Equal(t, 20, a.DefensePoints)
	assert.Equal(t, 0, b.HealthPoints) // the fallen stay fallen
}

func TestRestoreAllLeavesProgressionStats(t *testing.T) {
	cat := testCatalog(t)
	a := newTank(t, cat, "Whiskers")
	a.HealthPoints = 12
	a.SpeedPoints = 9
	a.MagicPoints = 25
	a.Luck = 40

	NewParty([]*combat.Combatant{a}).RestoreAll()

	assert.Equal(t, 70, a.HealthPoints)
	assert.Equal(t, 9, a.SpeedPoints)
	assert.Equal(t, 25, a.MagicPoints)
	assert.Equal(t, 40, a.Luck)
}

func TestGrantStatOnlyTouchesLivingMembers(t *testing.T) {
	cat := testCatalog(t)
	a := newTank(t, cat, "Whiskers")
	b := newTank(t, cat, "Mittens")
	b.HealthPoints = 0

	party := NewParty([]*combat.Combatant{a, b})
	party.GrantStat(StatMagic, 10)

	assert.Equal(t, 20, a.MagicPoints)
	assert.Equal(t, 10, b.MagicPoints) // unchanged from creation
}

func TestGrantStatPerStat(t *testing.T) {
	cat := testCatalog(t)
	a := newTank(t, cat, "Whiskers")
	party := NewParty([]*combat.Combatant{a})

	party.GrantStat(StatHealth, 5)
	party.GrantStat(StatDefense, 4)
	party.GrantStat(StatSpeed, 3)
	party.GrantStat(StatMagic, 2)
	party.GrantStat(StatLuck, 1)

	assert.Equal(t, 75, a.HealthPoints)
	assert.Equal(t, 70, a.MaxHealthPoints) // maxima stay catalog-owned
	assert.Equal(t, 24, a.DefensePoints)
	assert.Equal(t, 8, a.SpeedPoints)
	assert.Equal(t, 12, a.MagicPoints)
	assert.Equal(t, 11, a.Luck)
}

func TestPartyMembersReturnsCopy(t *testing.T) {
	cat := testCatalog(t)
	a := newTank(t, cat, "Whiskers")
	party := NewParty([]*combat.Combatant{a})

	got := party.Members()
	got[0] = nil
	assert.Same(t, a, party.Members()[0])
}

func campaignDeps(t *testing.T, cat *catalog.Catalog) Deps {
	t.Helper()
	return Deps{
		Catalog:  cat,
		Source:   fixedSource{v: 99}, // percentile 100, never a crit
		Chooser:  attackChooser{},
		Renderer: nopRenderer{},
		Clock:    engine.ClockFunc(func() time.Time { return time.Time{} }),
	}
}

func TestCampaignWinsAllEncounters(t *testing.T) {
	cat := testCatalog(t)
	hero := newTank(t, cat, "Whiskers")
	hero.AttackPoints = 50
	hero.SpeedPoints = 1000 // always acts first

	prepared := 0
	camp := NewCampaign(
		NewParty([]*combat.Combatant{hero}),
		[]Encounter{
			{Name: "The Forest", EnemyIDs: []string{"viperstrike"}},
			{Name: "The Caverns", EnemyIDs: []string{"doomshroud"}, Prepare: func(p *Party) {
				prepared++
				p.RestoreAll()
			}},
		},
		campaignDeps(t, cat),
	)

	won, err := camp.Run()
	require.NoError(t, err)
	assert.True(t, won)
	assert.Equal(t, 1, prepared)
	assert.True(t, hero.IsAlive())
}

func TestCampaignStopsOnFirstLoss(t *testing.T) {
	cat := testCatalog(t)
	hero := newTank(t, cat, "Whiskers")
	hero.HealthPoints = 1
	hero.DefensePoints = 0
	hero.AttackPoints = 0
	hero.SpeedPoints = 0 // enemy always acts first

	secondPrepared := false
	camp := NewCampaign(
		NewParty([]*combat.Combatant{hero}),
		[]Encounter{
			{Name: "The Forest", EnemyIDs: []string{"doomshroud"}},
			{Name: "The Caverns", EnemyIDs: []string{"viperstrike"}, Prepare: func(*Party) {
				secondPrepared = true
			}},
		},
		campaignDeps(t, cat),
	)

	won, err := camp.Run()
	require.NoError(t, err)
	assert.False(t, won)
	assert.False(t, secondPrepared)
	assert.False(t, hero.IsAlive())
}

func TestCampaignRejectsUnknownEnemy(t *testing.T) {
	cat := testCatalog(t)
	hero := newTank(t, cat, "Whiskers")

	camp := NewCampaign(
		NewParty([]*combat.Combatant{hero}),
		[]Encounter{{Name: "The Void", EnemyIDs: []string{"nonexistent"}}},
		campaignDeps(t, cat),
	)

	_, err := camp.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrUnknownKey)
	assert.ErrorContains(t, err, "The Void")
}
