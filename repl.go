package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/maplefeline/nboard/chess"
)

func prompt(out io.Writer, board *chess.Board) {
	fmt.Fprintf(out, "%s to move: ", board.ToMove)
}

// repl reads one move in short notation per line and applies it to board. Bad
// input is reported and the loop goes on.
func repl(in io.Reader, out io.Writer, board *chess.Board) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, board.ToStr())
	prompt(out, board)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
		case "quit", "exit":
			return nil
		case "board":
			fmt.Fprint(out, board.ToStr())
		case "moves":
			options := moveOptions(board)
			notations := make([]string, 0, len(options))
			for _, option := range options {
				notations = append(notations, option.Notation)
			}
			fmt.Fprintln(out, strings.Join(notations, " "))
		default:
			m, err := board.ParsePGNMove(line)
			if err == nil {
				_, err = applyPlay(board, m)
			}
			if err != nil {
				log.WithError(err).WithField("move", line).Warn("rejected move")
				fmt.Fprintln(out, err)
				break
			}
			fmt.Fprint(out, board.ToStr())
		}
		prompt(out, board)
	}
	return scanner.Err()
}
