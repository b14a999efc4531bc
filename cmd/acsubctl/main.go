// Command acsubctl is a demo host for the acsub substitution engine:
// it loads a YAML rule file once, compiles it once, and rewrites
// stdin to stdout by supplying a coalesced input buffer to
// ReplaceWithCallback.
//
// Flag parsing follows peco/peco's struct-with-tags convention via
// github.com/jessevdk/go-flags rather than a hand-rolled flag.FlagSet.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	flags "github.com/jessevdk/go-flags"

	acsub "github.com/PilouGit/mod-replace"
	"github.com/PilouGit/mod-replace/rulefile"
	"github.com/PilouGit/mod-replace/tmplvar"
)

type options struct {
	RuleFile string   `short:"r" long:"rules" description:"path to a YAML rule file" required:"true"`
	Vars     []string `short:"v" long:"var" description:"NAME=VALUE, may be repeated; overrides the environment"`
	Capacity int      `short:"c" long:"capacity" description:"automaton node-arena capacity (0 = default)" default:"0"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1) // go-flags already printed usage/errors
	}

	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("acsubctl: %v", err)
	}
}

func run(opts options, in io.Reader, out io.Writer) error {
	a := acsub.New(opts.Capacity)

	if err := rulefile.LoadInto(a, opts.RuleFile); err != nil {
		return fmt.Errorf("loading rules: %w", err)
	}
	if err := a.Compile(); err != nil {
		return fmt.Errorf("compiling automaton: %w", err)
	}

	ctx := tmplvar.FromEnv().WithOverrides(parseVars(opts.Vars))

	input, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result, err := a.ReplaceWithCallback(input, tmplvar.Callback, ctx)
	if err != nil {
		// Pass input through unchanged on any engine error rather
		// than failing the whole pipeline.
		log.Printf("acsubctl: replace failed, passing input through unchanged: %v", err)
		result = input
	}

	_, err = out.Write(result)
	return err
}

func parseVars(assignments []string) map[string]string {
	m := make(map[string]string, len(assignments))
	for _, a := range assignments {
		for i := 0; i < len(a); i++ {
			if a[i] == '=' {
				m[a[:i]] = a[i+1:]
				break
			}
		}
	}
	return m
}
