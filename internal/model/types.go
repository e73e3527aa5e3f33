// Package model defines shared data structures.
package model

import "time"

// Config defines test settings.
type Config struct {
	Lang         string
	Words        int
	WordListPath string
	CapsPct      float64
	PunctPct     float64
	PunctSet     string
	Seed         int64
}

// Result summarizes a completed typing session.
type Result struct {
	StartedAt time.Time
	EndedAt   time.Time
	Elapsed   time.Duration

	WPM          float64
	Chars        int
	Words        int
	CorrectWords int

	// Accuracy is the share of Correct cells among all classified cells of
	// the sealed words.
	Accuracy float64

	// PerWordWPM holds the running WPM after each sealed word.
	PerWordWPM []float64
}
