package main

import (
	"fmt"
	"log"
	"os"
)

type Command int

const (
	COMMAND_PARSE Command = iota
	COMMAND_TOKENS
	COMMAND_HELP
)

type CliResult struct {
	Command  Command
	Path     string
	DumpTree bool
}

var HELP_COMMAND string = `Starfleet script front end.
Parses the behavior scripts that drive entities inside the simulation
and reports lexical, syntax and type name errors with positions.

Usage:
  starfleet <command> [arguments]

Available Commands:
  parse <file> [-dump]   Parse a script and check break placement
      <file>    Path to the script file
      -dump     Print the syntax tree after a successful parse

  tokens <file>          Print the token stream of a script

  help                   Show this help message

Examples:
  starfleet parse shields.sf         Parse shields.sf and report diagnostics
  starfleet parse shields.sf -dump   Parse and print the syntax tree
  starfleet tokens shields.sf        Print the tokens of shields.sf
`

func cli() (CliResult, error) {
	result := CliResult{}

	args := os.Args[1:]
	if len(args) == 0 {
		result.Command = COMMAND_HELP
		return result, nil
	}

	command := args[0]
	switch command {
	case "help":
		result.Command = COMMAND_HELP
	case "parse", "tokens":
		result.Command = COMMAND_PARSE
		if command == "tokens" {
			result.Command = COMMAND_TOKENS
		}

		if len(args) < 2 {
			return result, fmt.Errorf("'%s' expects a script file", command)
		}
		path := args[1]

		_, err := os.Stat(path)
		if err != nil {
			log.Fatalf("No such file or directory: %s\n", path)
		}
		result.Path = path

		for _, arg := range args[2:] {
			switch arg {
			case "-dump":
				result.DumpTree = true
			default:
				return result, fmt.Errorf("unknown flag '%s'", arg)
			}
		}
	default:
		return result, fmt.Errorf("unknown command '%s', run '%s help'", command, APP_NAME)
	}
	return result, nil
}
