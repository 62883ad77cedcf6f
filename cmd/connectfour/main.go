package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"connectfour/internal/bot"
	"connectfour/internal/config"
	"connectfour/internal/domain"
	"connectfour/internal/session"
)

var ansiColors = map[string]string{
	"red":     "\x1b[31m",
	"green":   "\x1b[32m",
	"yellow":  "\x1b[33m",
	"blue":    "\x1b[34m",
	"magenta": "\x1b[35m",
	"cyan":    "\x1b[36m",
	"white":   "\x1b[37m",
}

const ansiReset = "\x1b[0m"

func main() {
	vsBot := flag.Bool("bot", false, "play against the computer")
	difficulty := flag.String("difficulty", "", "bot difficulty: easy or hard (overrides BOT_DIFFICULTY)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	manager := session.NewManager()
	sess, err := manager.Create()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create session")
	}
	log.Debug().Str("session_id", sess.ID).Msg("session created")

	var opponent *bot.Bot
	if *vsBot {
		level := cfg.BotDifficulty
		if *difficulty != "" {
			level = *difficulty
		}
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		opponent = bot.New(domain.Player2, bot.ParseDifficulty(level), rng)
		cfg.Player2Name = "Computer"
		log.Info().Str("difficulty", string(bot.ParseDifficulty(level))).Msg("playing against the computer")
	}

	ui := &terminal{
		cfg:   cfg,
		in:    bufio.NewScanner(os.Stdin),
		sess:  sess,
		bot:   opponent,
		prune: func() { manager.PruneFinished(cfg.SessionPruneAge) },
	}
	ui.run()
}

type terminal struct {
	cfg   config.Config
	in    *bufio.Scanner
	sess  *session.Session
	bot   *bot.Bot
	prune func()
}

func (t *terminal) run() {
	fmt.Println("Connect Four — drop four in a row to win. Enter a column (1-7), or q to quit.")

	for {
		t.render()

		mover := t.sess.CurrentPlayer()
		var column int
		if t.bot != nil && mover == t.bot.Player() {
			column = t.bot.ChooseColumn(t.sess.Board())
			fmt.Printf("%s plays column %d\n", t.playerName(mover), column+1)
		} else {
			var ok, quit bool
			column, ok, quit = t.promptColumn(mover)
			if quit {
				return
			}
			if !ok {
				continue
			}
		}

		_, result, err := t.sess.Play(column)
		if err != nil {
			fmt.Println(moveErrorMessage(err))
			continue
		}

		if result.Terminal() {
			t.render()
			t.announce(result)
			t.printStats()
			if !t.promptRematch() {
				return
			}
			t.sess.Restart()
			t.prune()
		}
	}
}

// promptColumn reads one move. ok is false on unparseable input so
// the caller re-prompts; out-of-range numbers are passed through and
// rejected by the engine.
func (t *terminal) promptColumn(mover domain.PlayerID) (column int, ok, quit bool) {
	fmt.Printf("%s, column (1-%d): ", t.playerName(mover), domain.Columns)
	if !t.in.Scan() {
		return 0, false, true
	}
	input := strings.TrimSpace(t.in.Text())
	if strings.EqualFold(input, "q") {
		return 0, false, true
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		fmt.Println("please enter a column number")
		return 0, false, false
	}
	return n - 1, true, false
}

func (t *terminal) promptRematch() bool {
	fmt.Print("Play again? [y/n]: ")
	if !t.in.Scan() {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(t.in.Text()), "y")
}

func (t *terminal) render() {
	fmt.Println()
	board := t.sess.Board()
	for row := domain.Rows - 1; row >= 0; row-- {
		fmt.Print("|")
		for col := 0; col < domain.Columns; col++ {
			switch board.At(row, col) {
			case domain.Player1:
				fmt.Print(" " + t.disk(domain.Player1) + " ")
			case domain.Player2:
				fmt.Print(" " + t.disk(domain.Player2) + " ")
			default:
				fmt.Print(" · ")
			}
			fmt.Print("|")
		}
		fmt.Println()
	}
	fmt.Println("  1   2   3   4   5   6   7")
	fmt.Println()
}

func (t *terminal) disk(p domain.PlayerID) string {
	color := t.cfg.Player1Color
	if p == domain.Player2 {
		color = t.cfg.Player2Color
	}
	if code, ok := ansiColors[strings.ToLower(color)]; ok {
		return code + "●" + ansiReset
	}
	return "●"
}

func (t *terminal) playerName(p domain.PlayerID) string {
	if p == domain.Player2 {
		return t.cfg.Player2Name
	}
	return t.cfg.Player1Name
}

func (t *terminal) announce(result domain.Result) {
	switch result {
	case domain.Tie:
		fmt.Println("It's a tie — the board is full.")
	default:
		fmt.Printf("%s wins!\n", t.playerName(result.Winner()))
	}
}

func (t *terminal) printStats() {
	s := t.sess.Stats()
	fmt.Printf("Session stats: %d game(s), %s %d — %d %s, %d tie(s)\n",
		s.GamesPlayed, t.playerName(domain.Player1), s.Player1Wins,
		s.Player2Wins, t.playerName(domain.Player2), s.Ties)
	fmt.Printf("Ratings: %s %d, %s %d\n",
		t.playerName(domain.Player1), s.Player1Rating,
		t.playerName(domain.Player2), s.Player2Rating)
}

func moveErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidColumn):
		return fmt.Sprintf("pick a column between 1 and %d", domain.Columns)
	case errors.Is(err, domain.ErrColumnFull):
		return "that column is full, try another"
	case errors.Is(err, domain.ErrGameOver):
		return "the game is over, start a new one"
	default:
		return err.Error()
	}
}
