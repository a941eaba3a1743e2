package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildcatcafe/catastrophe/internal/game/catalog"
)

func testSkills() []*catalog.Skill {
	return []*catalog.Skill{
		{ID: "whisker_guard", Name: "Whisker Guard", SpeedPointsCost: 1, MagicPointsCost: 3,
			BelongsTo: "tank", Effect: "whisker_guard", Messages: []string{"{character} guards."}},
		{ID: "claw_swipe", Name: "Claw Swipe", SpeedPointsCost: 2, MagicPointsCost: 5,
			RequireTarget: true, BelongsTo: "tank", Effect: "claw_swipe",
			Messages: []string{"{character} swipes {target}."}},
	}
}

func testJobs() []*catalog.JobClass {
	return []*catalog.JobClass{
		{ID: "tank", Name: "Tank", HealthPoints: 70, DefensePoints: 20, AttackPoints: 8,
			SpeedPoints: 5, MagicPoints: 10, Luck: 10, Skills: []string{"whisker_guard", "claw_swipe"}},
	}
}

func testEnemies() []*catalog.Enemy {
	return []*catalog.Enemy{
		{ID: "viperstrike", Name: "Viperstrike", HealthPoints: 60, DefensePoints: 12,
			AttackPoints: 12, SpeedPoints: 6, Luck: 10},
	}
}

func TestNew_LookupRoundTrip(t *testing.T) {
	c, err := catalog.New(testJobs(), testSkills(), testEnemies())
	require.NoError(t, err)

	j, err := c.JobClass("tank")
	require.NoError(t, err)
	assert.Equal(t, 70, j.HealthPoints)

	s, err := c.Skill("claw_swipe")
	require.NoError(t, err)
	assert.True(t, s.RequireTarget)

	e, err := c.Enemy("viperstrike")
	require.NoError(t, err)
	assert.Equal(t, 12, e.AttackPoints)
}

func TestLookup_UnknownKey(t *testing.T) {
	c, err := catalog.New(testJobs(), testSkills(), testEnemies())
	require.NoError(t, err)

	_, err = c.JobClass("bard")
	assert.ErrorIs(t, err, catalog.ErrUnknownKey)
	_, err = c.Skill("fireball")
	assert.ErrorIs(t, err, catalog.ErrUnknownKey)
	_, err = c.Enemy("dragon")
	assert.ErrorIs(t, err, catalog.ErrUnknownKey)
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	jobs := append(testJobs(), testJobs()...)
	_, err := catalog.New(jobs, testSkills(), testEnemies())
	assert.ErrorContains(t, err, "duplicate job class")
}

func TestNew_RejectsDanglingSkillReference(t *testing.T) {
	jobs := testJobs()
	jobs[0].Skills = []string{"whisker_guard", "missing_skill"}
	_, err := catalog.New(jobs, testSkills(), testEnemies())
	assert.ErrorContains(t, err, "unknown skill")
}

func TestNew_RejectsWrongSkillCount(t *testing.T) {
	jobs := testJobs()
	jobs[0].Skills = []string{"whisker_guard"}
	_, err := catalog.New(jobs, testSkills(), testEnemies())
	assert.ErrorContains(t, err, "exactly 2 skills")
}

func TestJobClass_Validate_LuckBounds(t *testing.T) {
	j := testJobs()[0]
	j.Luck = 101
	assert.ErrorContains(t, j.Validate(), "luck")
	j.Luck = -1
	assert.ErrorContains(t, j.Validate(), "luck")
	j.Luck = 100
	assert.NoError(t, j.Validate())
}

func TestSkill_Validate_RequiresMessage(t *testing.T) {
	s := testSkills()[0]
	s.Messages = nil
	assert.ErrorContains(t, s.Validate(), "message")
}

func writeContentRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, d := range []string{"classes", "skills", "enemies"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o755))
	}
	write := func(rel, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(root, rel), []byte(body), 0o644))
	}
	write("classes/tank.yaml", `
id: tank
name: Tank
hp: 70
dp: 20
ap: 8
sp: 5
mp: 10
luck: 10
skills: [whisker_guard, claw_swipe]
`)
	write("skills/whisker_guard.yaml", `
id: whisker_guard
name: Whisker Guard
sp_cost: 1
mp_cost: 3
belongs_to: tank
effect: whisker_guard
messages:
  - "{character} activates Whisker Guard."
`)
	write("skills/claw_swipe.yaml", `
id: claw_swipe
name: Claw Swipe
sp_cost: 2
mp_cost: 5
require_target: true
belongs_to: tank
effect: claw_swipe
messages:
  - "{character} claws {target}."
`)
	write("enemies/viperstrike.yaml", `
id: viperstrike
name: Viperstrike
hp: 60
dp: 12
ap: 12
sp: 6
luck: 10
`)
	return root
}

func TestLoad_ContentRoot(t *testing.T) {
	c, err := catalog.Load(writeContentRoot(t))
	require.NoError(t, err)
	assert.Equal(t, 1, c.JobClassCount())
	assert.Equal(t, 2, c.SkillCount())
	assert.Equal(t, 1, c.EnemyCount())

	j, err := c.JobClass("tank")
	require.NoError(t, err)
	assert.Equal(t, []string{"whisker_guard", "claw_swipe"}, j.Skills)
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	root := writeContentRoot(t)
	bad := filepath.Join(root, "enemies", "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("id: x\nname: X\nhp: 5\nmana: 3\n"), 0o644))
	_, err := catalog.Load(root)
	assert.Error(t, err)
}

func TestLoad_MissingDirFails(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
