package policy

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/wildcatcafe/catastrophe/internal/game/combat"
	"github.com/wildcatcafe/catastrophe/internal/scripting"
)

// Scripted delegates action selection to a Lua tactic script. The script
// defines a global function
//
//	select_action(self, player) -> "attack" | "heal" | "defend"
//
// where self and player are tables of the combatants' current stats. Any
// script failure, missing function, or unrecognized return value falls back
// to the rule ladder so a broken script never stalls a battle.
type Scripted struct {
	state    *lua.LState
	fallback RuleLadder
	logger   *zap.Logger
}

// NewScripted loads the tactic script at path into a fresh sandboxed
// interpreter. The script body runs once at load time; select_action is
// invoked per round.
func NewScripted(path string, logger *zap.Logger) (*Scripted, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tactic script: %w", err)
	}
	L := scripting.NewSandboxedState(0)
	if err := L.DoString(string(src)); err != nil {
		L.Close()
		return nil, fmt.Errorf("loading tactic script %s: %w", path, err)
	}
	return &Scripted{state: L, logger: logger}, nil
}

// Close releases the underlying interpreter.
func (s *Scripted) Close() {
	s.state.Close()
}

// Select runs select_action and maps its result to an Action.
func (s *Scripted) Select(self, player *combat.Combatant) Action {
	name, err := scripting.CallStringFunc(s.state, "select_action",
		statsTable(s.state, self), statsTable(s.state, player))
	if err != nil {
		s.logger.Warn("tactic script failed, using rule ladder",
			zap.String("combatant", self.Name),
			zap.Error(err))
		return s.fallback.Select(self, player)
	}
	if action, ok := actionByName[name]; ok {
		return action
	}
	if name != "" {
		s.logger.Warn("tactic script returned unknown action, using rule ladder",
			zap.String("combatant", self.Name),
			zap.String("action", name))
	}
	return s.fallback.Select(self, player)
}

// statsTable exposes a combatant's stats to the script as a plain table.
func statsTable(L *lua.LState, c *combat.Combatant) *lua.LTable {
	t := L.NewTable()
	L.SetField(t, "name", lua.LString(c.Name))
	L.SetField(t, "hp", lua.LNumber(c.HealthPoints))
	L.SetField(t, "max_hp", lua.LNumber(c.MaxHealthPoints))
	L.SetField(t, "dp", lua.LNumber(c.DefensePoints))
	L.SetField(t, "max_dp", lua.LNumber(c.MaxDefensePoints))
	L.SetField(t, "ap", lua.LNumber(c.AttackPoints))
	L.SetField(t, "sp", lua.LNumber(c.SpeedPoints))
	L.SetField(t, "luck", lua.LNumber(c.Luck))
	return t
}
