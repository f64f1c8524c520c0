// Package log prints console messages for the chunkopt command.
package log

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

const (
	debugEnvName  = "CHUNKOPT_DEBUG"
	debugEnvValue = "1"
)

var (
	// ColorRed is a red foreground color
	ColorRed = color.New(color.FgRed)
	// ColorYellow is a yellow foreground color
	ColorYellow = color.New(color.FgYellow)
	// ColorBlue is a blue foreground color
	ColorBlue = color.New(color.FgBlue)
	// ColorGray is a gray foreground color
	ColorGray = color.New(color.FgHiBlack)
)

// Infof prints information to stderr.
func Infof(msg string, v ...interface{}) {
	fmt.Fprintf(color.Error, "%s %s\n", ColorBlue.Sprint("•"), fmt.Sprintf(msg, v...))
}

// Warnf prints a warning to stderr.
func Warnf(msg string, v ...interface{}) {
	fmt.Fprintf(color.Error, "%s %s\n", ColorYellow.Sprint("•"), fmt.Sprintf(msg, v...))
}

// Errorf prints an error to stderr.
func Errorf(msg string, v ...interface{}) {
	fmt.Fprintf(color.Error, "%s %s\n", ColorRed.Sprint("⨯"), fmt.Sprintf(msg, v...))
}

func isDebug() bool {
	return os.Getenv(debugEnvName) == debugEnvValue
}

// Debug prints to stderr if CHUNKOPT_DEBUG is set
func Debug(msg string, v ...interface{}) {
	if isDebug() {
		fmt.Fprintf(color.Error, "%s %s\n", ColorGray.Sprint("DEBUG:"), fmt.Sprintf(msg, v...))
	}
}
