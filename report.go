package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// colorize reports whether w is a terminal that should get colored output.
func colorize(w io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func printSummary(w io.Writer, stats scanStats, colored bool) error {
	label := fmt.Sprint
	value := fmt.Sprint
	if colored {
		label = color.New(color.FgCyan).Sprint
		value = color.New(color.FgGreen, color.Bold).Sprint
	}

	rows := []struct {
		name string
		val  any
	}{
		{"tokens", stats.Tokens},
		{"integers", stats.Ints},
		{"lines", stats.Lines},
		{"filtered", stats.Filtered},
		{"skipped", stats.Skipped},
		{"reads", stats.Reads},
		{"bytes in", stats.BytesIn},
		{"writes", stats.Writes},
		{"bytes out", stats.BytesOut},
		{"buffer", fmt.Sprintf("%v (%v growths)", stats.Capacity, stats.Growths)},
		{"elapsed", stats.Elapsed},
		{"tokens/sec", stats.TokensSec},
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-11s %s\n", label(row.name+":"), value(row.val)); err != nil {
			return err
		}
	}
	return nil
}
