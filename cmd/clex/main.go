package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"clex/pkg/driver"
)

const historyFile = ".clex_history"

func main() {
	// Define flags
	exprFlag := flag.String("e", "", "Tokenize the given expression and exit")
	jsonFlag := flag.Bool("json", false, "Emit tokens as JSON instead of the line report")
	strictFlag := flag.Bool("strict-comments", false, "Report nested block comments as errors")

	flag.Parse() // Parses the command-line flags

	opts := driver.Options{
		StrictComments: *strictFlag,
		JSON:           *jsonFlag,
	}
	clex := driver.NewWithOptions(opts)

	if *exprFlag != "" {
		// Tokenize the expression provided via -e flag
		if !clex.RunExpr(*exprFlag) {
			os.Exit(65) // Exit code 65: input data error
		}
		return
	}

	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Usage: clex [script] or clex -e \"expression\"\n")
		os.Exit(64) // Exit code 64: command line usage error
	} else if flag.NArg() == 1 {
		runFile(clex, flag.Arg(0))
	} else {
		// No file provided, start the REPL
		runRepl(clex)
	}
}

// runFile tokenizes the script file provided as an argument.
func runFile(clex *driver.Clex, path string) {
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read file '%s': %s\n", path, err.Error())
		os.Exit(70) // Exit code 70: internal software error
	}
	if !clex.RunFile(path) {
		os.Exit(65)
	}
}

// runRepl starts the Read-Tokenize-Print Loop.
func runRepl(clex *driver.Clex) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}

	fmt.Println("clex (Ctrl+C cancels input, Ctrl+D exits)")

	for {
		line, err := ln.Prompt("> ")
		if err != nil {
			if err == liner.ErrPromptAborted {
				continue // Ctrl+C cancels the current line
			}
			if err == io.EOF {
				fmt.Println("\nGoodbye!")
				break
			}
			fmt.Fprintf(os.Stderr, "Error reading input: %s\n", err)
			break
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		_ = clex.RunRepl(line) // Ignore the bool return in REPL
	}

	if f, err := os.Create(histPath); err == nil {
		ln.WriteHistory(f)
		f.Close()
	}
}

// historyPath places the REPL history in the home directory, falling back to
// the working directory when no home is available.
func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}
