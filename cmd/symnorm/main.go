package main

import (
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// Flag values
var (
	traceLevel string
	initFile   string
	fullFnCmp  bool
	maxPooled  int
)

func main() {
	initDisplay()
	if err := rootCommand().Execute(); err != nil {
		os.Exit(2)
	}
}

func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "symnorm [flags] <expr…>",
		Short: "Print the canonical form of symbolic expressions",
		Args:  cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			input := strings.TrimSpace(strings.Join(args, " "))
			tracer().Infof("Input argument is \"%s\"", input)
			_, err := newIntp().Eval(input)
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true, // errors are printed by the interpreter
	}
	root.PersistentFlags().StringVar(&traceLevel, "trace", "Error", "Trace level [Debug|Info|Error]")
	root.PersistentFlags().BoolVar(&fullFnCmp, "full-fn-cmp", false,
		"compare functions argument by argument instead of by fingerprint")
	root.PersistentFlags().IntVar(&maxPooled, "max-pooled", 0, "free buffers kept per workspace frame")
	repl := &cobra.Command{
		Use:   "repl",
		Short: "Read, normalize and print expressions interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL()
		},
	}
	repl.Flags().StringVar(&initFile, "init", "", "file with lines to evaluate before prompting")
	root.AddCommand(repl)
	return root
}

// gtraceKeys are the configuration keys for schuko's global tracers.
var gtraceKeys = []string{
	"tracinginterpreter", "tracingcommands", "tracingequations", "tracingsyntax",
	"tracinggraphics", "tracingscripting", "tracingcore", "tracingengine",
}

// setup loads the configuration and installs the tracers. Flags which have been
// given on the command line override configuration values.
func setup(cmd *cobra.Command) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := koanfadapter.New(nil, "symnorm", []string{"nt"})
	for _, key := range gtraceKeys {
		conf.Set(key, traceLevel)
	}
	gconf.Initialize(conf)
	flags := cmd.Flags()
	if flags.Changed("full-fn-cmp") {
		conf.Set("full-function-compare", fullFnCmp)
	}
	if flags.Changed("max-pooled") {
		conf.Set("workspace-max-pooled", maxPooled)
	}
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(traceLevel))
	tracer().Debugf("full function compare = %v", gconf.GetBool("full-function-compare"))
}

func runREPL() error {
	pterm.Info.Println("Welcome to symnorm") // colored welcome message
	repl, err := readline.New("symnorm> ")
	if err != nil {
		tracer().Errorf(err.Error())
		return err
	}
	defer repl.Close()
	intp := newIntp()
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(initFile)
	intp.REPL()
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
