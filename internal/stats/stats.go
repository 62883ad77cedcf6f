// Package stats keeps per-session game statistics in memory. Nothing
// here survives the process; history persistence is deliberately not
// offered.
package stats

import "connectfour/internal/domain"

// Tracker accumulates outcomes for the two seats of one session.
type Tracker struct {
	gamesPlayed  int
	player1Wins  int
	player2Wins  int
	ties         int
	totalMoves   int
	longestGame  int
	shortestGame int

	player1Rating int
	player2Rating int
}

func NewTracker() *Tracker {
	return &Tracker{
		player1Rating: StartingRating,
		player2Rating: StartingRating,
	}
}

// Record counts one finished game. InProgress is ignored so callers
// can pass the engine result unconditionally after every move.
func (t *Tracker) Record(result domain.Result, moves int) {
	if !result.Terminal() {
		return
	}

	t.gamesPlayed++
	t.totalMoves += moves
	if moves > t.longestGame {
		t.longestGame = moves
	}
	if t.shortestGame == 0 || moves < t.shortestGame {
		t.shortestGame = moves
	}

	var score1 float64
	switch result {
	case domain.Player1Wins:
		t.player1Wins++
		score1 = 1.0
	case domain.Player2Wins:
		t.player2Wins++
		score1 = 0.0
	case domain.Tie:
		t.ties++
		score1 = 0.5
	}

	r1, r2 := t.player1Rating, t.player2Rating
	t.player1Rating = CalculateElo(r1, r2, score1)
	t.player2Rating = CalculateElo(r2, r1, 1.0-score1)
}

// Summary is a read-only snapshot of the tracker.
type Summary struct {
	GamesPlayed  int `json:"games_played"`
	Player1Wins  int `json:"player1_wins"`
	Player2Wins  int `json:"player2_wins"`
	Ties         int `json:"ties"`
	TotalMoves   int `json:"total_moves"`
	LongestGame  int `json:"longest_game"`
	ShortestGame int `json:"shortest_game"`

	Player1WinRate float64 `json:"player1_win_rate"`
	Player2WinRate float64 `json:"player2_win_rate"`
	Player1Rating  int     `json:"player1_rating"`
	Player2Rating  int     `json:"player2_rating"`
}

func (t *Tracker) Snapshot() Summary {
	s := Summary{
		GamesPlayed:   t.gamesPlayed,
		Player1Wins:   t.player1Wins,
		Player2Wins:   t.player2Wins,
		Ties:          t.ties,
		TotalMoves:    t.totalMoves,
		LongestGame:   t.longestGame,
		ShortestGame:  t.shortestGame,
		Player1Rating: t.player1Rating,
		Player2Rating: t.player2Rating,
	}
	if t.gamesPlayed > 0 {
		s.Player1WinRate = float64(t.player1Wins) / float64(t.gamesPlayed)
		s.Player2WinRate = float64(t.player2Wins) / float64(t.gamesPlayed)
	}
	return s
}
