// Package main provides the CATastrophe Chronicles console binary: party
// selection followed by the campaign's combat encounters.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/wildcatcafe/catastrophe/internal/config"
	"github.com/wildcatcafe/catastrophe/internal/frontend/console"
	"github.com/wildcatcafe/catastrophe/internal/game/catalog"
	"github.com/wildcatcafe/catastrophe/internal/game/combat"
	"github.com/wildcatcafe/catastrophe/internal/game/dice"
	"github.com/wildcatcafe/catastrophe/internal/game/policy"
	"github.com/wildcatcafe/catastrophe/internal/game/scenario"
	"github.com/wildcatcafe/catastrophe/internal/observability"
)

// hero is a selectable party member.
type hero struct {
	name    string
	classID string
}

var heroes = []hero{
	{"Whiskerwall", "tank"},
	{"Purrception", "mirrormage"},
	{"Meowdicine", "healer"},
	{"Shadowpaw", "assassin"},
}

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/game.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	catalogStart := time.Now()
	cat, err := catalog.Load(cfg.Game.ContentDir)
	if err != nil {
		logger.Fatal("loading content catalog", zap.Error(err))
	}
	logger.Info("catalog loaded",
		zap.Int("jobClasses", cat.JobClassCount()),
		zap.Int("skills", cat.SkillCount()),
		zap.Int("enemies", cat.EnemyCount()),
		zap.Duration("elapsed", time.Since(catalogStart)),
	)

	src := dice.NewLoggedSource(dice.NewCryptoSource(), logger)
	client := console.NewClient(os.Stdin, os.Stdout)

	var selector policy.Selector = policy.RuleLadder{}
	if cfg.Game.TacticsScript != "" {
		scripted, err := policy.NewScripted(cfg.Game.TacticsScript, logger)
		if err != nil {
			logger.Warn("tactic script unavailable, using rule ladder",
				zap.String("script", cfg.Game.TacticsScript),
				zap.Error(err))
		} else {
			defer scripted.Close()
			selector = scripted
		}
	}

	party, err := selectParty(client, cat)
	if err != nil {
		logger.Fatal("building party", zap.Error(err))
	}
	logger.Info("party assembled",
		zap.Int("members", len(party.Members())),
		zap.Duration("startupElapsed", time.Since(start)),
	)

	deps := scenario.Deps{
		Catalog:        cat,
		Source:         src,
		Chooser:        client,
		Renderer:       client,
		Selector:       selector,
		Logger:         logger,
		LogCapacity:    cfg.Game.BattleLogCapacity,
		EnemyTurnDelay: cfg.Game.EnemyTurnDelay,
	}

	campaign := scenario.NewCampaign(party, encounters(client), deps)
	won, err := campaign.Run()
	if err != nil {
		logger.Fatal("running campaign", zap.Error(err))
	}

	if won {
		fmt.Println("You won!")
	} else {
		fmt.Println("You lost...")
	}
}

// selectParty lets the player pick a party size and that many distinct
// heroes.
func selectParty(client *console.Client, cat *catalog.Catalog) (*scenario.Party, error) {
	size := chooseValid(client, "Choose Number of Playable Characters", []string{"1", "2", "3"}) + 1

	available := make([]hero, len(heroes))
	copy(available, heroes)

	members := make([]*combat.Combatant, 0, size)
	for i := 0; i < size; i++ {
		labels := make([]string, len(available))
		for j, h := range available {
			labels[j] = h.name
			if job, err := cat.JobClass(h.classID); err == nil {
				labels[j] = fmt.Sprintf("%s (%s)", h.name, job.Name)
			}
		}
		pick := chooseValid(client, fmt.Sprintf("Choose Your Character #%d", i+1), labels)

		chosen := available[pick]
		member, err := combat.NewPlayer(cat, chosen.name, chosen.classID)
		if err != nil {
			return nil, err
		}
		members = append(members, member)

		available = append(available[:pick], available[pick+1:]...)
	}
	return scenario.NewParty(members), nil
}

// encounters builds the campaign in story order. Before the final battle the
// player picks a path: rest to restore the party, or brave the storm for a
// magic surge.
func encounters(client *console.Client) []scenario.Encounter {
	return []scenario.Encounter{
		{
			Name:     "The Forest Ambush",
			EnemyIDs: []string{"viperstrike"},
		},
		{
			Name:     "The Enchanted Meadows",
			EnemyIDs: []string{"doomshroud"},
			Prepare: func(p *scenario.Party) {
				path := chooseValid(client, "Choose a Path", []string{
					"The Whispering Caverns",
					"The Misty Peaks",
					"The Enchanted Meadows",
				})
				switch path {
				case 0:
					p.RestoreAll()
				case 2:
					p.GrantStat(scenario.StatMagic, 10)
				}
			},
		},
	}
}

// chooseValid re-prompts until the selection is in range.
func chooseValid(client *console.Client, title string, options []string) int {
	for {
		idx := client.Choose(title, options)
		if idx >= 0 && idx < len(options) {
			return idx
		}
		client.Notify("Invalid choice. Please choose again.")
	}
}
