package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Bendi11/Starfleet/ast"
	"github.com/Bendi11/Starfleet/diagnostics"
	"github.com/Bendi11/Starfleet/lexer"
	"github.com/Bendi11/Starfleet/parser"
	"github.com/Bendi11/Starfleet/sema"
)

var APP_NAME = "starfleet"

func main() {
	args, err := cli()
	if err != nil {
		log.Fatal(err)
	}

	switch args.Command {
	case COMMAND_HELP:
		fmt.Print(HELP_COMMAND)
	case COMMAND_TOKENS:
		err := showTokens(args.Path)
		if err != nil {
			os.Exit(1)
		}
	case COMMAND_PARSE:
		collector := diagnostics.New()

		program, err := parseScript(args.Path, collector)
		if err != nil {
			os.Exit(1)
		}

		err = sema.CheckBreaks(program, collector)
		if err != nil {
			os.Exit(1)
		}

		if args.DumpTree {
			dumpProgram(os.Stdout, program)
		}
	}
}

func parseScript(path string, collector *diagnostics.Collector) (*ast.Program, error) {
	lex, err := lexer.NewFromFilePath(path, collector)
	if err != nil {
		log.Fatal(err)
	}

	tokens, err := lex.Tokenize()
	if err != nil {
		return nil, err
	}

	return parser.New(tokens, collector).ParseProgram()
}

func showTokens(path string) error {
	collector := diagnostics.New()

	lex, err := lexer.NewFromFilePath(path, collector)
	if err != nil {
		log.Fatal(err)
	}

	tokens, err := lex.Tokenize()
	if err != nil {
		return err
	}

	for _, tok := range tokens {
		fmt.Println(tok)
	}
	return nil
}
