package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"
)

var (
	bold   = color.New(color.Bold)
	green  = color.New(color.FgGreen)
	cyan   = color.New(color.FgCyan)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
)

// Currency prefixes money amounts.
var Currency = "₹"

const ruleWidth = 70

func rule(ch string) string { return strings.Repeat(ch, ruleWidth) }

func sectionHeader(w io.Writer, title string) {
	fmt.Fprintln(w)
	_, _ = bold.Fprintln(w, rule("="))
	_, _ = bold.Fprintln(w, title)
	_, _ = bold.Fprintln(w, rule("="))
}

func subHeader(w io.Writer, c *color.Color, title string) {
	_, _ = c.Fprintln(w, title)
	fmt.Fprintln(w, rule("-"))
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func money(v float64) string { return Currency + num(v) }

// primary formats a duration or cost the way totals are shown.
func primary(d model.Domain, v float64) string {
	if d == model.DomainJobs {
		return fmt.Sprintf("%.1f hrs", v)
	}
	return fmt.Sprintf("%s%.2f", Currency, v)
}

func capacity(d model.Domain, v float64) string {
	if d == model.DomainJobs {
		return num(v) + " hrs"
	}
	return money(v)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
