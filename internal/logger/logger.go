package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/cinskabotanicka/IPP2/internal/config"
)

// Init initializes the logger
func Init(debug, noColor bool, opts config.Log) {
	InitWriter(os.Stderr, debug, noColor, opts)
}

// InitWriter installs the default logger writing to w
func InitWriter(w io.Writer, debug, noColor bool, opts config.Log) {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "IPP"
	}

	log.SetDefault(log.NewWithOptions(w,
		log.Options{
			ReportCaller:    debug,
			ReportTimestamp: opts.Timestamps,
			TimeFormat:      time.RFC3339,
			Prefix:          prefix,
		}))

	if !debug {
		log.SetLevel(log.WarnLevel)
	} else {
		log.SetLevel(log.DebugLevel)
	}

	log.SetColorProfile(termenv.ANSI256)
	if noColor {
		log.SetColorProfile(termenv.Ascii)
	}
}
