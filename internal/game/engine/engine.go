// Package engine runs a combat session: a synchronous round loop over two
// rosters with a bounded battle log and injected collaborators for choice,
// rendering, time, and randomness.
package engine

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wildcatcafe/catastrophe/internal/game/combat"
	"github.com/wildcatcafe/catastrophe/internal/game/dice"
	"github.com/wildcatcafe/catastrophe/internal/game/policy"
)

// Outcome is the terminal result of a session.
type Outcome int

const (
	OutcomePlayerWon Outcome = iota
	OutcomeEnemyWon
)

// Params carries everything a Session needs. Source, Chooser, and Renderer
// are required; Clock, Selector, and Logger fall back to sensible defaults.
type Params struct {
	Players []*combat.Combatant
	Enemies []*combat.Combatant

	Source   dice.Source
	Chooser  Chooser
	Renderer Renderer
	Clock    Clock
	Selector policy.Selector
	Logger   *zap.Logger

	// LogCapacity bounds the battle log; <= 0 means DefaultLogCapacity.
	LogCapacity int
	// EnemyTurnDelay paces enemy actions for readability.
	EnemyTurnDelay time.Duration
}

// Session owns one battle between two fixed rosters. It is single-threaded:
// each round, including the blocking Chooser call, runs to completion before
// the next begins.
type Session struct {
	players []*combat.Combatant
	enemies []*combat.Combatant

	activePlayer int
	activeEnemy  int
	turn         *combat.Combatant

	log      *BattleLog
	src      dice.Source
	chooser  Chooser
	renderer Renderer
	clock    Clock
	selector policy.Selector
	logger   *zap.Logger

	enemyDelay time.Duration
	sleep      func(time.Duration)
}

// NewSession validates params and builds a session with both active pointers
// on the first roster member.
//
// Precondition: both rosters must be non-empty and every member alive;
// Source, Chooser, and Renderer must be non-nil.
func NewSession(p Params) (*Session, error) {
	if len(p.Players) == 0 {
		return nil, errors.New("engine: player roster is empty")
	}
	if len(p.Enemies) == 0 {
		return nil, errors.New("engine: enemy roster is empty")
	}
	if p.Source == nil {
		return nil, errors.New("engine: dice source is required")
	}
	if p.Chooser == nil {
		return nil, errors.New("engine: chooser is required")
	}
	if p.Renderer == nil {
		return nil, errors.New("engine: renderer is required")
	}
	for _, c := range append(append([]*combat.Combatant{}, p.Players...), p.Enemies...) {
		if !c.IsAlive() {
			return nil, fmt.Errorf("engine: %s joins the battle already defeated", c.Name)
		}
	}

	clock := p.Clock
	if clock == nil {
		clock = SystemClock()
	}
	var selector policy.Selector = policy.RuleLadder{}
	if p.Selector != nil {
		selector = p.Selector
	}
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Session{
		players:    p.Players,
		enemies:    p.Enemies,
		log:        NewBattleLog(p.LogCapacity),
		src:        p.Source,
		chooser:    p.Chooser,
		renderer:   p.Renderer,
		clock:      clock,
		selector:   selector,
		logger:     logger,
		enemyDelay: p.EnemyTurnDelay,
		sleep:      time.Sleep,
	}, nil
}

// ActivePlayer returns this side's combatant currently engaged in battle.
func (s *Session) ActivePlayer() *combat.Combatant { return s.players[s.activePlayer] }

// ActiveEnemy returns the enemy currently engaged in battle.
func (s *Session) ActiveEnemy() *combat.Combatant { return s.enemies[s.activeEnemy] }

// BattleLog returns the current battle log lines, oldest first.
func (s *Session) BattleLog() []string { return s.log.Lines() }

// Run drives rounds until one roster is wiped out, renders the final state,
// and reports the outcome.
func (s *Session) Run() Outcome {
	for !s.IsGameOver() {
		s.RunRound()
	}
	s.renderer.RenderCombat(s.view())

	outcome := OutcomeEnemyWon
	if s.PlayerWon() {
		outcome = OutcomePlayerWon
	}
	s.logger.Info("battle finished",
		zap.Bool("playerWon", outcome == OutcomePlayerWon),
		zap.Int("battleLogLines", s.log.Len()))
	return outcome
}

// RunRound executes one full round: turn determination, the acting side's
// action, idle regeneration, and the defeat check. An action that fails for
// insufficient resources re-prompts the same actor without recomputing turn
// order.
func (s *Session) RunRound() {
	sameHolder := false
	for {
		player := s.ActivePlayer()
		enemy := s.ActiveEnemy()

		if !sameHolder {
			s.turn = s.determineTurnOrder()
		}

		s.renderer.RenderCombat(s.view())

		if s.turn == player {
			if retry := s.playerTurn(player, enemy); retry {
				sameHolder = true
				continue
			}
		} else {
			s.enemyTurn(enemy, player)
		}

		if !player.IsAlive() {
			s.handleDefeat(player, enemy)
		} else if !enemy.IsAlive() {
			s.handleDefeat(enemy, player)
		}
		return
	}
}

// playerTurn presents the action menu and executes the choice. It returns
// true when the actor must choose again (insufficient resources or an
// aborted skill), leaving all combat state untouched apart from the appended
// failure reason.
func (s *Session) playerTurn(player, enemy *combat.Combatant) (retry bool) {
	s.renderer.Notify("\nIt's your turn!")

	skills := player.Skills()
	options := []string{"Attack", "Heal"}
	for _, sk := range skills {
		options = append(options, fmt.Sprintf("%s (skill)", sk.Name))
	}
	options = append(options, "Switch characters")
	switchIdx := len(options) - 1

	choice := s.choose("Choose an Action", options)
	s.logger.Debug("player action chosen",
		zap.String("player", player.Name),
		zap.String("action", options[choice]))

	var line string
	switch {
	case choice == 0:
		line = player.BasicAttack(enemy, s.src)
	case choice == 1:
		line = player.Heal(s.src)
	case choice == switchIdx:
		s.log.Append(s.timestamp() + s.switchActiveCharacter())
		// a switch leaves the enemy's idle stats alone
		return false
	default:
		var err error
		line, err = player.UseSkill(choice-2, enemy, s.src)
		if err != nil {
			var insufficient *combat.InsufficientResourcesError
			if errors.As(err, &insufficient) {
				// the raw reason carries no timestamp
				s.log.Append(err.Error())
			} else {
				s.logger.Error("skill use aborted",
					zap.String("player", player.Name),
					zap.Error(err))
			}
			return true
		}
	}

	s.log.Append(s.timestamp() + line)
	s.idleRegen(enemy)
	return false
}

// enemyTurn asks the policy for an action, executes it, and paces the
// presentation.
func (s *Session) enemyTurn(enemy, player *combat.Combatant) {
	s.renderer.Notify(fmt.Sprintf("\nIt's %s turn.", enemy.Name))

	action := s.selector.Select(enemy, player)
	s.logger.Debug("enemy action selected",
		zap.String("enemy", enemy.Name),
		zap.Stringer("action", action))

	var line string
	switch action {
	case policy.ActionHeal:
		line = enemy.Heal(s.src)
	case policy.ActionDefend:
		line = enemy.Defend()
	default:
		line = enemy.BasicAttack(player, s.src)
	}
	s.log.Append(s.timestamp() + line)

	if s.enemyDelay > 0 {
		s.sleep(s.enemyDelay)
	}
	s.idleRegen(player)
}

// switchActiveCharacter runs the roster sub-menu and returns the log line.
// Choosing a defeated member still consumes the turn.
func (s *Session) switchActiveCharacter() string {
	options := make([]string, len(s.players))
	for i, c := range s.players {
		label := fmt.Sprintf("%s - %s", c.Name, c.JobClass)
		if i == s.activePlayer {
			label += " (current)"
		}
		if !c.IsAlive() {
			label += " (defeated)"
		}
		options[i] = label
	}

	old := s.ActivePlayer()
	choice := s.choose("Switch Active Characters", options)
	chosen := s.players[choice]

	if !chosen.IsAlive() {
		return fmt.Sprintf("%s is defeated and can't be chosen!", chosen.Name)
	}

	s.activePlayer = choice
	s.logger.Info("active character switched",
		zap.String("from", old.Name),
		zap.String("to", chosen.Name))
	return fmt.Sprintf("Active character switched from %s to %s.", old.Name, chosen.Name)
}

// choose re-prompts until the chooser returns an in-range index. Invalid
// selections never touch combat state.
func (s *Session) choose(title string, options []string) int {
	for {
		idx := s.chooser.Choose(title, options)
		if idx >= 0 && idx < len(options) {
			return idx
		}
		s.logger.Debug("invalid selection",
			zap.String("menu", title),
			zap.Int("index", idx))
		s.renderer.Notify("Invalid choice. Please choose again.")
		s.renderer.RenderCombat(s.view())
	}
}

// idleRegen updates the side that did not act: +1 speed, defense clamped to
// zero (the only point where negative defense is corrected), and +1 magic
// for players.
func (s *Session) idleRegen(idle *combat.Combatant) {
	idle.SpeedPoints++
	if idle.DefensePoints < 0 {
		idle.DefensePoints = 0
	}
	if idle.IsPlayer() {
		idle.MagicPoints++
	}
}

// handleDefeat zeroes the loser's health, logs the defeat, and advances the
// loser's side to its first living member unless the battle just ended.
func (s *Session) handleDefeat(loser, winner *combat.Combatant) {
	loser.HealthPoints = 0
	s.log.Append(s.timestamp() + fmt.Sprintf("%s has been defeated by %s!", loser.Name, winner.Name))
	s.logger.Info("combatant defeated",
		zap.String("loser", loser.Name),
		zap.String("winner", winner.Name))

	if s.IsGameOver() {
		// the pointer keeps referencing the fallen combatant for the
		// final display
		return
	}

	if loser.IsPlayer() {
		s.activePlayer = firstAlive(s.players)
	} else {
		s.activeEnemy = firstAlive(s.enemies)
	}
}

// determineTurnOrder picks the active combatant with higher speed; ties are
// broken by a coin flip on the session's dice source.
func (s *Session) determineTurnOrder() *combat.Combatant {
	player := s.ActivePlayer()
	enemy := s.ActiveEnemy()

	switch {
	case player.SpeedPoints > enemy.SpeedPoints:
		return player
	case enemy.SpeedPoints > player.SpeedPoints:
		return enemy
	case s.src.Intn(2) == 0:
		return player
	default:
		return enemy
	}
}

// IsGameOver reports whether a full roster has no living member.
func (s *Session) IsGameOver() bool {
	return firstAlive(s.players) < 0 || firstAlive(s.enemies) < 0
}

// PlayerWon reports whether the battle is over with at least one player
// alive and every enemy defeated.
func (s *Session) PlayerWon() bool {
	return firstAlive(s.players) >= 0 && firstAlive(s.enemies) < 0
}

func (s *Session) timestamp() string {
	return s.clock.Now().Format("15:04:05") + " - "
}

func (s *Session) view() CombatView {
	p := s.ActivePlayer()
	e := s.ActiveEnemy()
	return CombatView{
		PlayerName: p.Name,
		PlayerHP:   p.HealthPoints,
		PlayerDP:   p.DefensePoints,
		PlayerSP:   p.SpeedPoints,
		PlayerMP:   p.MagicPoints,
		EnemyName:  e.Name,
		EnemyHP:    e.HealthPoints,
		EnemyDP:    e.DefensePoints,
		EnemySP:    e.SpeedPoints,
		Log:        s.log.Lines(),
	}
}

// firstAlive returns the index of the first living roster member, or -1.
func firstAlive(roster []*combat.Combatant) int {
	for i, c := range roster {
		if c.IsAlive() {
			return i
		}
	}
	return -1
}
