// SPDX-License-Identifier: MIT
package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

var (
	clrDim     = color.New(color.FgHiBlack)
	clrSubtle  = color.New(color.FgWhite)
	clrBold    = color.New(color.FgWhite, color.Bold)
	clrSuccess = color.New(color.FgGreen)
	clrError   = color.New(color.FgRed)
	clrWarning = color.New(color.FgYellow)
	clrInfo    = color.New(color.FgBlue)
	clrAccent  = color.New(color.FgCyan, color.Bold)
)

// Output is where status lines go. Tests swap it.
var Output io.Writer = os.Stdout

// LogStatus prints a timestamped status line with a category icon
func LogStatus(category, message string) {
	ts := clrDim.Sprint(time.Now().Format("15:04:05"))

	var icon string
	var styledMsg string

	switch category {
	case "success":
		icon = clrSuccess.Sprint("✔")
		styledMsg = clrSuccess.Sprint(message)
	case "error":
		icon = clrError.Sprint("✖")
		styledMsg = clrError.Sprint(message)
	case "warning":
		icon = clrWarning.Sprint("⚠")
		styledMsg = clrWarning.Sprint(message)
	case "info":
		icon = clrInfo.Sprint("ℹ")
		styledMsg = clrSubtle.Sprint(message)
	default:
		icon = clrDim.Sprint("●")
		styledMsg = clrSubtle.Sprint(message)
	}

	fmt.Fprintf(Output, "%s  %s  %s\n", ts, icon, styledMsg)
}

// LogItem prints an indented label/value pair
func LogItem(label, value string) {
	fmt.Fprintf(Output, "  %s %s\n", clrDim.Sprintf("%-18s", label), clrBold.Sprint(value))
}

// LogSwatch prints a palette entry
func LogSwatch(name string, shade int, value string) {
	fmt.Fprintf(Output, "  %s %s\n", clrAccent.Sprintf("%-10s %4d", name, shade), clrSubtle.Sprint(value))
}
