// Package report renders detection results for the terminal.
// Simple streaming output in the Swiss-minimal style: clean labels, muted
// detail, no interactive TUI.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/encscan/encscan/pkg/detect"
	"github.com/encscan/encscan/pkg/scan"
)

// Colors (Swiss minimal)
var (
	accent  = lipgloss.Color("#FF0000")
	muted   = lipgloss.Color("#666666")
	success = lipgloss.Color("#00CC66")
	white   = lipgloss.Color("#FFFFFF")
)

// Styles
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(white)
	accentStyle  = lipgloss.NewStyle().Foreground(accent).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(muted)
	successStyle = lipgloss.NewStyle().Foreground(success).Bold(true)
)

// topRanks limits the per-byte and per-pair dumps to the interesting head of
// each ranking.
const topRanks = 10

// WriteAnalysis writes the diagnostic dump for one analysis: top byte
// counts, top double-byte counts, and the summary totals the decision
// cascade consumed.
func WriteAnalysis(w io.Writer, a *detect.Analysis) {
	if a.FromBOM {
		fmt.Fprintln(w, mutedStyle.Render("byte-order mark matched; no statistics collected"))
		return
	}

	fmt.Fprintln(w, accentStyle.Render("▸ TOP BYTE VALUES"))
	for i, bc := range a.ByteCounts {
		if bc.Count == 0 || i >= topRanks {
			break
		}
		c := '?'
		if unicode.IsPrint(rune(bc.Value)) && bc.Value < 0x80 {
			c = rune(bc.Value)
		}
		fmt.Fprintf(w, "  %02x ('%c'): %-6d\n", bc.Value, c, bc.Count)
	}

	if len(a.PairCounts) > 0 {
		fmt.Fprintln(w, accentStyle.Render("▸ TOP DOUBLE-BYTE VALUES"))
		for i, pc := range a.PairCounts {
			if i >= topRanks {
				break
			}
			fmt.Fprintf(w, "  %04x: %-6d\n", pc.Value, pc.Count)
		}
	}

	fmt.Fprintln(w, mutedStyle.Render("  ─────────────────────────────────────"))
	fmt.Fprintf(w, "  %s %s\n", mutedStyle.Render("characters:"), titleStyle.Render(strconv.Itoa(a.Length)))
	fmt.Fprintf(w, "  %s %s\n", mutedStyle.Render("double-byte characters:"), titleStyle.Render(strconv.Itoa(a.PairTotal)))
	fmt.Fprintf(w, "  %s %s\n", mutedStyle.Render("double-byte hi-hi characters:"), titleStyle.Render(strconv.Itoa(a.HighHighPairs)))
	fmt.Fprintf(w, "  %s %s\n", mutedStyle.Render("unique double-byte characters:"), titleStyle.Render(strconv.Itoa(a.UniquePairs())))
	fmt.Fprintln(w, mutedStyle.Render("  ─────────────────────────────────────"))
}

// WriteLabel writes the final label line for single-file mode.
func WriteLabel(w io.Writer, enc detect.Encoding) {
	fmt.Fprintln(w, enc.String())
}

// WriteScanReport writes the per-file table and tally for a batch scan.
func WriteScanReport(w io.Writer, rep *scan.Report) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", mutedStyle.Render("session"), titleStyle.Render(rep.SessionID))
	fmt.Fprintf(w, "%s %s\n", mutedStyle.Render("root"), titleStyle.Render(rep.Root))
	fmt.Fprintln(w)

	width := 0
	for _, r := range rep.Results {
		if len(r.Path) > width {
			width = len(r.Path)
		}
	}

	for _, r := range rep.Results {
		if r.Err != nil {
			fmt.Fprintf(w, "  %-*s  %s\n", width, r.Path, accentStyle.Render("error: "+r.Err.Error()))
			continue
		}
		fmt.Fprintf(w, "  %-*s  %s\n", width, r.Path, successStyle.Render(r.Encoding.String()))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, mutedStyle.Render("  ─────────────────────────────────────"))
	for _, enc := range sortedTally(rep.Tally) {
		fmt.Fprintf(w, "  %s %d\n", mutedStyle.Render(enc.String()+":"), rep.Tally[enc])
	}
	if rep.Errors > 0 {
		fmt.Fprintf(w, "  %s %d\n", accentStyle.Render("errors:"), rep.Errors)
	}
	fmt.Fprintf(w, "  %s %s\n", mutedStyle.Render("elapsed:"), rep.Elapsed.Round(time.Millisecond).String())
	fmt.Fprintln(w, mutedStyle.Render("  ─────────────────────────────────────"))
}

// sortedTally orders tally keys by descending count, ties by label.
func sortedTally(tally map[detect.Encoding]int) []detect.Encoding {
	encs := make([]detect.Encoding, 0, len(tally))
	for enc := range tally {
		encs = append(encs, enc)
	}
	sort.Slice(encs, func(i, j int) bool {
		if tally[encs[i]] != tally[encs[j]] {
			return tally[encs[i]] > tally[encs[j]]
		}
		return encs[i].String() < encs[j].String()
	})
	return encs
}
