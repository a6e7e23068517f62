package osabootstrap

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

var (
	styleOK   = pterm.NewStyle(pterm.FgGreen)
	styleFail = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	styleSkip = pterm.NewStyle(pterm.FgGray)
)

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	// Only apply formatting if output is a terminal
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// stepReporter renders one status line per bootstrap step.
type stepReporter struct{}

func (stepReporter) StepStarted(name string) {
	fmt.Printf("  %s ...\n", formatBold(name))
}

func (stepReporter) StepCompleted(name string, err error, d time.Duration) {
	if err != nil {
		fmt.Printf("  %s %s: %v\n", styleFail.Sprint("✗"), name, err)
		return
	}
	fmt.Printf("  %s %s (%s)\n", styleOK.Sprint("✓"), name, d.Round(time.Millisecond))
}

func (stepReporter) StepSkipped(name string, reason string) {
	fmt.Printf("  %s %s (%s)\n", styleSkip.Sprint("-"), name, reason)
}
