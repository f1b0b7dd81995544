package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/cinskabotanicka/IPP2/internal/config"
	"github.com/cinskabotanicka/IPP2/internal/logger"
	"github.com/cinskabotanicka/IPP2/pkg/color"
	"github.com/cinskabotanicka/IPP2/pkg/fault"
	"github.com/cinskabotanicka/IPP2/pkg/interpreter"
	"github.com/cinskabotanicka/IPP2/pkg/parser"
	"github.com/cinskabotanicka/IPP2/pkg/program"
)

type Runner struct {
	Help       bool   // Show help message
	Verbose    bool   // Debug logging and instruction listing
	NoColor    bool   // Disable colored output
	SourceFile string // Program file, XML or text (stdin when empty)
	InputFile  string // File READ takes its lines from (stdin when empty)
	ConfigFile string // Optional YAML configuration
	MaxSteps   int    // Step limit, negative keeps the configured one

	Stdin  io.Reader // defaults to os.Stdin
	Stdout io.Writer // defaults to os.Stdout
	Stderr io.Writer // defaults to os.Stderr
}

// Run loads the program, executes it and returns the process exit status.
// Failures are reported on stderr and mapped to their configured status.
func (opts *Runner) Run() int {
	opts.defaults()
	logger.InitWriter(opts.Stderr, opts.Verbose, opts.NoColor, config.Default().Log)

	cfg, err := opts.config()
	if err != nil {
		opts.report(err)
		return config.Default().ExitCodeOf(err)
	}
	logger.InitWriter(opts.Stderr, opts.Verbose, opts.NoColor, cfg.Log)

	runID := uuid.NewString()
	l := log.With("run", runID)

	code, err := opts.execute(cfg, runID, l)
	if err != nil {
		l.Error("Run failed", "kind", fault.KindOf(err), "status", cfg.ExitCodeOf(err))
		opts.report(err)
		return cfg.ExitCodeOf(err)
	}

	l.Info("Program finished", "status", code)
	return code
}

func (opts *Runner) defaults() {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
}

// config loads the YAML file if any and applies flag overrides
func (opts *Runner) config() (*config.Config, error) {
	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigFile); err != nil {
			return nil, err
		}
	}
	if opts.MaxSteps >= 0 {
		cfg.MaxSteps = opts.MaxSteps
	}
	return cfg, nil
}

func (opts *Runner) execute(cfg *config.Config, runID string, l *log.Logger) (int, error) {
	if opts.SourceFile == "" && opts.InputFile == "" {
		return 0, fault.Errorf(fault.Usage, "at least one of the source and input files must be given")
	}

	src, err := opts.readSource()
	if err != nil {
		return 0, err
	}

	prog, err := Load(src)
	if err != nil {
		return 0, err
	}
	l.Info("Program loaded", "file", opts.SourceFile, "instructions", prog.Len())

	if opts.Verbose {
		opts.listing(prog)
	}

	in, closeInput, err := opts.openInput()
	if err != nil {
		return 0, err
	}
	defer closeInput()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	intr := interpreter.NewInterpreter(prog.Instructions(),
		interpreter.WithInput(interpreter.NewLineReader(in)),
		interpreter.WithOutput(interpreter.NewWriter(opts.Stdout)),
		interpreter.WithDiagnostics(opts.Stderr),
		interpreter.WithMaxSteps(cfg.MaxSteps),
		interpreter.WithContext(ctx),
		interpreter.WithRunID(runID),
	)

	code, err := intr.Run()
	l.Debug("Interpreter stopped", "steps", intr.Steps())
	if err != nil {
		return 0, fmt.Errorf("interpretation failed: %w", err)
	}
	return code, nil
}

func (opts *Runner) readSource() ([]byte, error) {
	if opts.SourceFile == "" {
		data, err := io.ReadAll(opts.Stdin)
		if err != nil {
			return nil, fault.Errorf(fault.InputFile, "read source from stdin: %v", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(opts.SourceFile)
	if err != nil {
		return nil, fault.Errorf(fault.InputFile, "read source: %v", err)
	}
	return data, nil
}

func (opts *Runner) openInput() (io.Reader, func(), error) {
	if opts.InputFile == "" {
		return opts.Stdin, func() {}, nil
	}

	f, err := os.Open(opts.InputFile)
	if err != nil {
		return nil, nil, fault.Errorf(fault.InputFile, "open input: %v", err)
	}
	return f, func() { f.Close() }, nil
}

// Load picks the loader by the first significant character: XML documents start with '<'
func Load(src []byte) (*program.Program, error) {
	trimmed := bytes.TrimLeft(bytes.TrimPrefix(src, []byte("\xef\xbb\xbf")), " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '<' {
		return program.LoadXML(bytes.NewReader(src))
	}
	return parser.Parse(string(src))
}

func (opts *Runner) listing(prog *program.Program) {
	fmt.Fprintln(opts.Stderr, color.GreenText("=== Instructions ==="))
	if prog.Len() == 0 {
		fmt.Fprintln(opts.Stderr, color.GrayText("No instructions."))
		return
	}

	for _, ins := range prog.Instructions() {
		args := make([]string, 0, len(ins.Args))
		for _, a := range ins.Args {
			args = append(args, a.String())
		}
		fmt.Fprintf(opts.Stderr, "%s: %s %s\n",
			color.Order(ins.Order),
			color.YellowText(ins.Op.String()),
			color.BlueText(strings.Join(args, " ")))
	}
	fmt.Fprintln(opts.Stderr, color.GreenText("=== Program Output ==="))
}

// report prints a single diagnostic line for err
func (opts *Runner) report(err error) {
	var fe *fault.Error
	switch {
	case errors.As(err, &fe) && fe.Order > 0:
		fmt.Fprintln(opts.Stderr, color.ErrorAt(fe.Order, fe.Opcode, fe.Kind.String(), fe.Msg))
	case errors.As(err, &fe):
		fmt.Fprintln(opts.Stderr, color.Error(fmt.Sprintf("[%s] %s", fe.Kind, fe.Msg)))
	default:
		fmt.Fprintln(opts.Stderr, color.Error(err.Error()))
	}
}
