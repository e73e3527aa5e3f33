// Package stats contains typing metrics and the end-of-test report.
package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/verte-zerg/wpmtest/internal/model"
)

const sparkChars = " .:-=+*#%@"

const (
	charsPerWord     = 5.0
	defaultLineWidth = 80
)

// WPM converts typed characters over elapsed time into words per minute,
// counting five characters as one word. Non-positive elapsed yields 0.
func WPM(chars int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return (float64(chars) / charsPerWord) / elapsed.Minutes()
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = min(max(idx, 0), len(sparkChars)-1)
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// Resample shrinks values to at most width points by averaging buckets.
func Resample(values []float64, width int) []float64 {
	if width <= 0 || len(values) <= width {
		return values
	}
	out := make([]float64, width)
	for i := range out {
		lo := i * len(values) / width
		hi := (i + 1) * len(values) / width
		var sum float64
		for _, v := range values[lo:hi] {
			sum += v
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}

// RenderSummary prints the result of a completed test.
func RenderSummary(w io.Writer, r model.Result) error {
	rows := [][]string{
		{"WPM", fmt.Sprintf("%.2f", r.WPM)},
		{"Accuracy", fmt.Sprintf("%.2f%%", r.Accuracy*100)},
		{"Words", fmt.Sprintf("%d/%d correct", r.CorrectWords, r.Words)},
		{"Characters", fmt.Sprintf("%d", r.Chars)},
		{"Time", r.Elapsed.Round(10 * time.Millisecond).String()},
	}
	lines := formatTable(nil, rows, map[int]bool{1: false})
	if _, err := fmt.Fprintln(w, "Result"); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if len(r.PerWordWPM) > 1 {
		const label = "Pace       "
		width := terminalWidth(w) - len(label)
		spark := Sparkline(Resample(r.PerWordWPM, width))
		if _, err := fmt.Fprintln(w, label+spark); err != nil {
			return err
		}
	}
	return nil
}

func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return defaultLineWidth
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return defaultLineWidth
	}
	return width
}
