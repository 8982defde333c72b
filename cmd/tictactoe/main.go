// Command tictactoe plays a game in the terminal, against the computer or hot-seat.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

var computer = flag.String("computer", "O", "mark played by the computer: X, O or none")

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func main() {
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("component", "cli")

	if err := run(); err != nil {
		logger.Error("tictactoe stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "tictactoe> ",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return fmt.Errorf("failed to start readline: %w", err)
	}
	defer rl.Close()

	sh, err := newShell(rl.Stdout(), *computer)
	if err != nil {
		return err
	}

	sh.println(`type "help" for commands`)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return fmt.Errorf("failed to read line: %w", err)
		}

		quit, err := sh.execute(strings.TrimSpace(line))
		if err != nil {
			return err
		}

		if quit {
			return nil
		}
	}
}
