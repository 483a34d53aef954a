package session

import "strings"

type commandKind int

const (
	commandUnknown commandKind = iota
	commandMove
	commandHint
	commandForfeit
	commandQuit
)

type command struct {
	kind commandKind
	arg  string
}

func parseCommand(line string) command {
	input := strings.ToLower(strings.TrimSpace(line))

	switch input {
	case "q", "quit":
		return command{kind: commandQuit}
	case "f", "forfeit":
		return command{kind: commandForfeit}
	case "h", "help":
		return command{kind: commandHint}
	}

	if len(input) == 2 {
		return command{kind: commandMove, arg: input}
	}

	return command{kind: commandUnknown, arg: input}
}
