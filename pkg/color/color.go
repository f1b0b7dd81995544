// Package color renders diagnostics with ANSI colors when stderr is a terminal.
package color

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red       = "\033[31m"
	Green     = "\033[32m"
	Yellow    = "\033[33m"
	Blue      = "\033[34m"
	Magenta   = "\033[35m"
	Cyan      = "\033[36m"
	Gray      = "\033[90m"
	BrightRed = "\033[91m"
)

var colorEnabled = true

func init() {
	if os.Getenv("NO_COLOR") != "" || !IsTerminal(os.Stderr) {
		colorEnabled = false
	}
}

// IsTerminal reports whether f is an interactive terminal that understands ANSI colors
func IsTerminal(f *os.File) bool {
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

func EnableColor(enable bool) {
	colorEnabled = enable
}

func IsColorEnabled() bool {
	return colorEnabled
}

func Colorize(color, text string) string {
	if !colorEnabled {
		return text
	}
	return color + text + Reset
}

func RedText(text string) string {
	return Colorize(Red, text)
}

func BrightRedText(text string) string {
	return Colorize(BrightRed, text)
}

func GreenText(text string) string {
	return Colorize(Green, text)
}

func YellowText(text string) string {
	return Colorize(Yellow, text)
}

func BlueText(text string) string {
	return Colorize(Blue, text)
}

func MagentaText(text string) string {
	return Colorize(Magenta, text)
}

func CyanText(text string) string {
	return Colorize(Cyan, text)
}

func GrayText(text string) string {
	return Colorize(Gray, text)
}

func BoldText(text string) string {
	return Colorize(Bold, text)
}

// Error prefixes a driver-level failure message
func Error(message string) string {
	return BrightRedText(BoldText("Error")) + ": " + message
}

// Order renders an instruction order number
func Order(order int) string {
	return CyanText(fmt.Sprintf("%d", order))
}

// ErrorAt renders a runtime error of the given kind located at an instruction
func ErrorAt(order int, opcode, kind, message string) string {
	return fmt.Sprintf("%s [%s] at %s (%s): %s",
		BrightRedText(BoldText("Error")),
		MagentaText(kind),
		Order(order),
		YellowText(opcode),
		message)
}
