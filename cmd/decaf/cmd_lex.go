package main

import (
	"fmt"
	"os"

	"github.com/decaf-lang/decaf/decaf/parser"
	"github.com/spf13/cobra"
)

func newLexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lex <file>",
		Short: "Tokenize a Decaf source file and dump the tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read source file: %w", err)
			}

			queue, err := parser.Tokenize(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			for !queue.IsEmpty() {
				tok := queue.Remove()
				fmt.Printf("%4d  %-16s %s\n", tok.Line, tok.Kind, tok.Text)
			}
			return nil
		},
	}
}
