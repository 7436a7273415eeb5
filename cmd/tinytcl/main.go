/*
 * TCL  example interactive/script runner.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/upvalue/tcl3/internal/replio"
	"github.com/upvalue/tcl3/tcl"
)

var (
	replFlag  bool
	traceFlag bool
)

func main() {
	root := &cobra.Command{
		Use:   "tinytcl [script ...]",
		Short: "A minimal Tcl-like command language interpreter",
		RunE:  run,
	}
	root.Flags().BoolVarP(&replFlag, "repl", "r", false, "start an interactive read-eval-print loop")
	root.Flags().BoolVarP(&traceFlag, "trace-parser", "t", false, "emit tokenizer tracing diagnostics on stderr")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	in := tcl.New()
	if err := in.RegisterCoreCommands(); err != nil {
		return fmt.Errorf("registering built-ins: %w", err)
	}
	in.SetTraceParser(traceFlag)

	failed := false
	for _, path := range args {
		script, err := readScript(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		status, err := in.Evaluate(string(script))
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", in.Result())
			failed = true
			continue
		}
		if status != tcl.StatusOK {
			fmt.Fprintf(os.Stderr, "Error: %s outside a loop\n", status)
			failed = true
		}
	}

	if len(args) > 0 && !replFlag {
		if failed {
			os.Exit(1)
		}
		return nil
	}

	runREPL(in)
	if failed {
		os.Exit(1)
	}
	return nil
}

// readScript loads a script body from a file path, or from stdin when path
// is "-".
func readScript(path string) ([]byte, error) {
	if path == "-" {
		stdin, err := replio.NewStdin()
		if err != nil {
			return nil, err
		}
		defer stdin.Close()
		return stdin.ReadAll()
	}
	return os.ReadFile(path)
}

// runREPL drives an interactive prompt: liner for editing/history/`\`
// multi-line continuation. Ctrl-C aborts the current prompt
// (liner.ErrPromptAborted) instead of killing the process.
func runREPL(in *tcl.Interpreter) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetMultiLineMode(true)

outer:
	for {
		multi := true
		command := ""
		for multi {
			prompt := "tcl> "
			if command != "" {
				prompt = "tcl# "
			}
			text, err := line.Prompt(prompt)
			if err != nil {
				if err == liner.ErrPromptAborted {
					fmt.Println("^C")
					command = ""
					continue
				}
				break outer
			}
			if text == "" {
				continue
			}
			if strings.HasSuffix(text, "\\") {
				command += text[:len(text)-1] + "\n"
			} else {
				command += text
				multi = false
			}
		}

		line.AppendHistory(command)
		status, err := in.Evaluate(command)
		switch {
		case err != nil:
			fmt.Println("Error:", in.Result())
		case status != tcl.StatusOK:
			fmt.Printf("Error: %s outside a loop\n", status)
		case in.Result() != "":
			fmt.Println("=> " + in.Result())
		}
	}
}
