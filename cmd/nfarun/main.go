package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/comalice/nfa"
	"github.com/comalice/nfa/internal/config"
	"github.com/comalice/nfa/internal/definition"
	"github.com/comalice/nfa/internal/log"
	"github.com/comalice/nfa/internal/trace"
)

var (
	ErrUsage          = errors.New("usage")
	ErrLoadConfig     = errors.New("failed to load configuration")
	ErrLoadDefinition = errors.New("failed to load definition")
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, ErrUsage) {
			fmt.Fprintf(os.Stderr, "nfarun: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	fs := flag.NewFlagSet("nfarun", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: nfarun [-def FILE] [-start S1,S2] [-trace] EVENT...\n")
		fmt.Fprintf(stderr, "  -def FILE      YAML definition (default $NFA_DEFINITION or %q)\n", cfg.DefinitionPath)
		fmt.Fprintf(stderr, "  -start STATES  comma separated start states (default: the definition's initial states)\n")
		fmt.Fprintf(stderr, "  -trace         print every transition taken after the run\n")
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  nfarun drop25 drop50 drop50 drop25\n")
		fmt.Fprintf(stderr, "  nfarun -def testdata/ab_suffix.yaml a b a b\n")
	}
	defPath := fs.String("def", cfg.DefinitionPath, "YAML definition file")
	start := fs.String("start", "", "comma separated start states")
	showTrace := fs.Bool("trace", false, "print transitions taken")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}

	logger := log.New(stderr, cfg.LogFormat, cfg.LogLevel)

	def, err := definition.LoadFile(*defPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadDefinition, err)
	}
	logger.Info("Definition loaded",
		log.Definition(def.ID, def.Fingerprint()),
		slog.Int("transitions", len(def.Transitions)))

	initial := def.Initial
	if *start != "" {
		initial = strings.Split(*start, ",")
	}

	steps := make(chan trace.Step, cfg.TraceBuffer)
	publisher := trace.NewChannelPublisher(steps)
	tracer := trace.NewTracer[string, string](ctx, logger, publisher)

	automaton := def.Build(
		nfa.WithListener(tracer.Listener()),
		nfa.WithLogger[string, string](logger),
	)

	cursor := automaton.Start(initial...)
	for _, e := range fs.Args() {
		cursor = cursor.AndThen(e)
		if cursor.IsEmpty() {
			logger.Warn("No active states left", log.Event(e), slog.Int("step", cursor.Steps()))
		}
	}
	_ = publisher.Close()

	logger.Info("Run complete",
		slog.Int("events", cursor.Steps()),
		slog.Int("transitions", tracer.Steps()),
		log.States("active", cursor.States()))

	if *showTrace {
		for step := range steps {
			fmt.Fprintf(stdout, "%d: %s --%s--> %s\n", step.Seq, step.From, step.Event, step.To)
		}
		if dropped := publisher.Dropped(); dropped > 0 {
			fmt.Fprintf(stdout, "(%d transitions not shown, raise NFA_TRACE_BUFFER)\n", dropped)
		}
	}

	if cursor.IsEmpty() {
		fmt.Fprintln(stdout, "(no active states)")
		return nil
	}
	for s := range cursor.State() {
		fmt.Fprintln(stdout, s)
	}
	return nil
}
