// Command pegrun drives the calculator and recovery example grammars
// from the command line, either against one expression or as an
// interactive REPL.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"github.com/go-peg/peg"
	"github.com/go-peg/peg/examples/calculator"
	"github.com/go-peg/peg/examples/recovery"
)

// fileConfig mirrors the subset of peg.Config a user may override from a
// TOML config file passed via -config.
type fileConfig struct {
	CallstackLimit int `toml:"callstack_limit"`
	LoopLimit      int `toml:"loop_limit"`
}

// flags groups the per-run display options, threaded through rather than
// passed as a growing list of bool parameters.
type flags struct {
	trace  bool
	ast    bool
	errors bool
}

func main() {
	mode := pflag.StringP("mode", "m", "calculator", "grammar to run: calculator|recovery")
	trace := pflag.BoolP("trace", "t", false, "print an entry/exit trace of the calculator grammar while parsing")
	ast := pflag.Bool("ast", false, "print the match/AST tree for the calculator grammar")
	errs := pflag.Bool("errors", true, "print recovered-error reports for the recovery grammar")
	configPath := pflag.StringP("config", "c", "", "path to a TOML config file")
	pflag.Parse()

	cfg := peg.Config{}
	if *configPath != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(*configPath, &fc); err != nil {
			pterm.Error.Printfln("reading config: %v", err)
			os.Exit(1)
		}
		cfg.CallstackLimit = fc.CallstackLimit
		cfg.LoopLimit = fc.LoopLimit
	}

	f := flags{trace: *trace, ast: *ast, errors: *errs}

	args := pflag.Args()
	if len(args) > 0 {
		runLine(*mode, strings.Join(args, " "), cfg, f)
		return
	}

	repl(*mode, cfg, f)
}

func runLine(mode, line string, cfg peg.Config, f flags) {
	switch mode {
	case "calculator":
		runCalculator(line, cfg, f)
	case "recovery":
		runRecovery(line, f)
	default:
		pterm.Error.Printfln("unknown mode %q", mode)
		os.Exit(1)
	}
}

func runCalculator(line string, cfg peg.Config, f flags) {
	grammar := peg.Pattern(calculator.Grammar())
	if f.trace {
		grammar = peg.Debug(grammar, "expr")
	}
	grammar = peg.Sequence(grammar, peg.End)

	res, err := peg.ParseString(line, grammar, cfg)
	if err != nil {
		pterm.Error.Printfln("%v", err)
		return
	}
	if !res.Ok || len(res.Matches) != 1 {
		pterm.Error.Printfln("%s: syntax error at %s", line, res.End)
		return
	}

	if f.ast {
		node, err := peg.Project(res.Matches[0], nil)
		if err != nil {
			pterm.Error.Printfln("%v", err)
			return
		}
		tree, err := peg.Dump(node)
		if err != nil {
			pterm.Error.Printfln("%v", err)
			return
		}
		fmt.Print(tree)
	}

	v, err := calculator.EvalWith(line, grammar, cfg)
	if err != nil {
		pterm.Error.Printfln("%v", err)
		return
	}
	pterm.Success.Printfln("%s = %d", line, v)
}

func runRecovery(line string, f flags) {
	stmts, reports, err := recovery.Parse(line)
	if err != nil {
		pterm.Error.Printfln("%v", err)
		return
	}
	for _, s := range stmts {
		if s.Missing {
			pterm.Warning.Printfln("statement %q recovered (missing ';')", s.Word)
		} else {
			pterm.Success.Printfln("statement %q", s.Word)
		}
	}
	if f.errors {
		for _, r := range reports {
			fmt.Println(r)
		}
	}
}

func repl(mode string, cfg peg.Config, f flags) {
	rl, err := readline.New(mode + "> ")
	if err != nil {
		pterm.Error.Printfln("%v", err)
		os.Exit(1)
	}
	defer rl.Close()

	pterm.Info.Printfln("pegrun: mode=%s, quit with ctrl-D", mode)
	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		runLine(mode, line, cfg, f)
	}
}
