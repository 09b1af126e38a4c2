package experiments

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"mnk/engine"
	"mnk/experiments/metrics"
	"mnk/game"
	"mnk/searcher"
)

const (
	NumGames = 20 // Per matchup

	Rows      = 3
	Cols      = 3
	WinLength = 3
)

var pruningConfigs = []metrics.AgentConfig{
	{ID: 1, Seed: 1, Pruning: true},
	{ID: 2, Seed: 1, Pruning: false},
	{ID: 3, Seed: 42, Pruning: true},
	{ID: 4, Seed: 42, Pruning: false},
}

// RunPruningExperiment pits pruned agents against unpruned agents. Pruning
// must not change outcomes, only the node counts per move, so the game
// records should show the usual perfect-play draws while the move records
// show the work saved.
func RunPruningExperiment() {
	matchUps := [][]metrics.AgentConfig{}
	for i := 0; i+1 < len(pruningConfigs); i += 2 {
		matchUps = append(matchUps, []metrics.AgentConfig{pruningConfigs[i], pruningConfigs[i+1]})
	}

	runExperiment("pruning", pruningConfigs, matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		configX := matchup[0]
		configO := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agentX=%+v and agentO=%+v...",
			mi+1, len(matchUps), configX, configO)

		for i := 0; i < NumGames; i++ {
			log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, NumGames)

			gameMetric, moveMetrics, err := runGame(configX, configO)
			if err != nil {
				log.Error().Err(err).Msg("game failed")
				continue
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				AgentX:     configX.ID,
				AgentO:     configO.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
		}
	}

	writer, err := metrics.NewWriter(name)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create metrics writer")
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		log.Fatal().Err(err).Msg("failed to write agent configs")
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to write game records")
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to write move records")
	}

	log.Info().Msgf("finished %s experiment", name)
}

// runGame plays a single game between two agent configurations and returns
// its metrics.
func runGame(configX, configO metrics.AgentConfig) (metrics.GameMetric, []metrics.MoveMetric, error) {
	playerX := game.NewPlayer("AgentX", game.X)
	playerO := game.NewPlayer("AgentO", game.O)

	g, err := game.NewGame(game.SetupParameters{
		Rows:      Rows,
		Cols:      Cols,
		WinLength: WinLength,
		PlayerX:   playerX,
		PlayerO:   playerO,
		Starting:  game.StartRandom,
	})
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	agentX := engine.NewMinimaxAgent(newMinimax(g, playerX, configX))
	agentO := engine.NewMinimaxAgent(newMinimax(g, playerO, configO))
	e := engine.Local(g, agentX, agentO)

	start := time.Now()
	result, err := e.Run()
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	end := time.Now()

	winner := ""
	if result.Winner != nil {
		winner = result.Winner.Name()
	}
	return metrics.GameMetric{
		StartingMarking: g.StartingMarking(),
		Winner:          winner,
		StartTime:       start,
		EndTime:         end,
		Duration:        end.Sub(start),
		TotalMoves:      len(result.Moves),
	}, result.Moves, nil
}

func newMinimax(g *game.Game, maximising *game.Player, config metrics.AgentConfig) *searcher.Minimax {
	options := []searcher.Option{
		searcher.WithRand(rand.New(rand.NewSource(config.Seed))),
		searcher.WithMetrics(),
	}
	if !config.Pruning {
		options = append(options, searcher.WithoutPruning())
	}
	return searcher.NewMinimax(g, maximising, options...)
}
