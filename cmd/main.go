package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cinskabotanicka/IPP2/internal/runner"
	"github.com/cinskabotanicka/IPP2/pkg/color"
)

// Main entry point for the IPPcode24 interpreter.
func main() {
	options := runner.Runner{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode (debug log and instruction listing)")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.StringVar(&options.SourceFile, "s", "", "Program source, XML or text (default stdin)")
	flag.StringVar(&options.InputFile, "i", "", "Input for READ (default stdin)")
	flag.StringVar(&options.ConfigFile, "c", "", "YAML configuration file")
	flag.IntVar(&options.MaxSteps, "m", -1, "Maximum executed instructions, 0 for unlimited (default from config)")

	flag.Parse()
	args := flag.Args()

	if options.Help {
		fmt.Printf("Usage: %s [options] [source]\n", os.Args[0])
		fmt.Println("At least one of the source and input files must be given; the other is read from stdin.")
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if options.NoColor {
		color.EnableColor(false)
	}

	if len(args) > 0 && options.SourceFile == "" {
		options.SourceFile = args[0]
	}

	os.Exit(options.Run())
}
