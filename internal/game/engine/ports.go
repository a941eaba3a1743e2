package engine

import "time"

// Chooser collects the player's decision from an ordered list of option
// labels. Choose blocks until a selection is made and returns the chosen
// index. An out-of-range index is treated as an invalid selection: the
// session leaves its state untouched and re-prompts.
type Chooser interface {
	Choose(title string, options []string) int
}

// ChooserFunc adapts a function to the Chooser interface.
type ChooserFunc func(title string, options []string) int

func (f ChooserFunc) Choose(title string, options []string) int { return f(title, options) }

// Renderer presents the combat state between decisions. Implementations own
// all formatting; the session only hands over data.
type Renderer interface {
	// RenderCombat draws the active combatants and the battle log.
	RenderCombat(view CombatView)
	// Notify shows a transient one-line message (turn banners, invalid
	// selection hints).
	Notify(message string)
}

// CombatView is the read-only snapshot handed to the Renderer each round.
type CombatView struct {
	PlayerName string
	PlayerHP   int
	PlayerDP   int
	PlayerSP   int
	PlayerMP   int
	EnemyName  string
	EnemyHP    int
	EnemyDP    int
	EnemySP    int
	Log        []string
}

// Clock supplies timestamps for battle log prefixes.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
func SystemClock() Clock { return ClockFunc(time.Now) }
