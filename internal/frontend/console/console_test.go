package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wildcatcafe/catastrophe/internal/game/engine"
)

func TestChooseReturnsZeroBasedIndex(t *testing.T) {
	var out bytes.Buffer
	c := NewClient(strings.NewReader("2\n"), &out)

	idx := c.Choose("Choose an Action", []string{"Attack", "Heal", "Switch characters"})

	assert.Equal(t, 1, idx)
	assert.Contains(t, out.String(), "Choose an Action")
	assert.Contains(t, out.String(), "1. Attack")
	assert.Contains(t, out.String(), "3. Switch characters")
}

func TestChooseTrimsWhitespace(t *testing.T) {
	c := NewClient(strings.NewReader("  3  \n"), &bytes.Buffer{})
	assert.Equal(t, 2, c.Choose("Menu", []string{"a", "b", "c"}))
}

func TestChooseNonNumericIsInvalid(t *testing.T) {
	c := NewClient(strings.NewReader("attack\n"), &bytes.Buffer{})
	assert.Equal(t, -1, c.Choose("Menu", []string{"a", "b"}))
}

func TestChooseEmptyInputIsInvalid(t *testing.T) {
	c := NewClient(strings.NewReader(""), &bytes.Buffer{})
	assert.Equal(t, -1, c.Choose("Menu", []string{"a"}))
}

func TestChooseOutOfRangePassesThrough(t *testing.T) {
	// range validation belongs to the session; the client only translates
	c := NewClient(strings.NewReader("9\n"), &bytes.Buffer{})
	assert.Equal(t, 8, c.Choose("Menu", []string{"a", "b"}))
}

func TestRenderCombatIncludesStatsAndLog(t *testing.T) {
	var out bytes.Buffer
	c := NewClient(strings.NewReader(""), &out)

	c.RenderCombat(engine.CombatView{
		PlayerName: "Whiskers",
		PlayerHP:   13, PlayerDP: 2, PlayerSP: 5, PlayerMP: 9,
		EnemyName: "Viperstrike",
		EnemyHP:   20, EnemyDP: 3, EnemySP: 4,
		Log: []string{"12:30:45 - Whiskers attacked Viperstrike, dealing 7HP."},
	})

	s := out.String()
	assert.Contains(t, s, "Whiskers")
	assert.Contains(t, s, "Viperstrike")
	assert.Contains(t, s, "HP: 13")
	assert.Contains(t, s, "MP: 9")
	assert.Contains(t, s, "Whiskers attacked Viperstrike, dealing 7HP.")
}

func TestNotifyWritesLine(t *testing.T) {
	var out bytes.Buffer
	c := NewClient(strings.NewReader(""), &out)
	c.Notify("It's your turn!")
	assert.Equal(t, "It's your turn!\n", out.String())
}
