// Command tellerkit is an interactive event source for the ATM transition
// engine: it reads keypad and card events from stdin, feeds them through a
// terminal one at a time, and prints the resulting state. All I/O lives
// here; the engine itself performs none.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/tellerlabs/tellerkit/pkg/atm"
	"github.com/tellerlabs/tellerkit/pkg/config"
	"github.com/tellerlabs/tellerkit/pkg/keypad"
	"github.com/tellerlabs/tellerkit/pkg/logger"
	"github.com/tellerlabs/tellerkit/pkg/pindigest"
	"github.com/tellerlabs/tellerkit/pkg/terminal"
)

type appConfig struct {
	CashInside uint64 `env:"TELLER_CASH_INSIDE" envDefault:"100"`
	PIN        string `env:"TELLER_PIN" envDefault:"1234"`
	LogLevel   string `env:"TELLER_LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"TELLER_LOG_FORMAT" envDefault:"text"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithService("tellerkit"),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithLevel(parseLevel(cfg.LogLevel)),
		logger.WithOutput(os.Stderr),
	)

	digest, err := pindigest.SumPIN(cfg.PIN)
	if err != nil {
		log.Error("invalid TELLER_PIN", slog.Any("error", err))
		os.Exit(1)
	}

	term := terminal.New(atm.New(), atm.NewState(cfg.CashInside),
		terminal.WithLogger(log),
	)

	fmt.Println("tellerkit - type 'help' for commands")
	printState(term.State())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		switch cmd := strings.ToLower(strings.TrimSpace(scanner.Text())); cmd {
		case "":
			continue
		case "help":
			printHelp()
		case "swipe":
			apply(term, atm.SwipeCard{PINDigest: digest})
		case "1":
			apply(term, atm.PressKey{Key: keypad.One})
		case "2":
			apply(term, atm.PressKey{Key: keypad.Two})
		case "3":
			apply(term, atm.PressKey{Key: keypad.Three})
		case "4":
			apply(term, atm.PressKey{Key: keypad.Four})
		case "enter":
			apply(term, atm.PressKey{Key: keypad.Enter})
		case "state":
			printState(term.State())
		case "journal":
			printJournal(term.Journal())
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q; type 'help'\n", cmd)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Error("reading stdin", slog.Any("error", err))
		os.Exit(1)
	}
}

func apply(term *terminal.Terminal, ev atm.Event) {
	state, outcome := term.Apply(ev)
	fmt.Printf("%s -> %s\n", outcome, state)
}

func printState(state atm.State) {
	fmt.Println(state)
}

func printJournal(entries []terminal.Entry) {
	if len(entries) == 0 {
		fmt.Println("journal is empty")
		return
	}
	for _, e := range entries {
		fmt.Printf("%s %s %s cash %d -> %d\n",
			e.At.Format("15:04:05.000"), e.ID, e.Outcome, e.CashBefore, e.CashAfter)
	}
}

func printHelp() {
	fmt.Println(`commands:
  swipe     swipe the enrolled card
  1..4      press a digit key
  enter     press Enter (submit PIN or withdrawal amount)
  state     show the current machine state
  journal   show journaled transitions
  quit      exit`)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
