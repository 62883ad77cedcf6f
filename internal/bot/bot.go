// Package bot implements the computer opponent. A bot never touches
// live game state, it only looks at board snapshots and names the
// column it wants to play.
package bot

import (
	"math/rand"

	"connectfour/internal/domain"
)

type Difficulty string

const (
	DifficultyEasy Difficulty = "easy"
	DifficultyHard Difficulty = "hard"
)

// ParseDifficulty validates and returns the bot difficulty.
// Defaults to easy if invalid or empty.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "hard":
		return DifficultyHard
	default:
		return DifficultyEasy
	}
}

type Bot struct {
	player     domain.PlayerID
	difficulty Difficulty
	rng        *rand.Rand
}

// New builds a bot playing as the given seat. rng is only consulted
// by the easy strategy; pass a seeded source for reproducible games.
func New(player domain.PlayerID, difficulty Difficulty, rng *rand.Rand) *Bot {
	return &Bot{player: player, difficulty: difficulty, rng: rng}
}

func (b *Bot) Player() domain.PlayerID {
	return b.player
}

// ChooseColumn picks the column to play on the given board, or -1
// when no move is possible.
func (b *Bot) ChooseColumn(board domain.Board) int {
	switch b.difficulty {
	case DifficultyHard:
		return b.calculateHardMove(board)
	default:
		return b.calculateEasyMove(board)
	}
}
