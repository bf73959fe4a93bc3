// Package gamedate builds the GameDate query value the stats endpoint expects.
package gamedate

import (
	"fmt"
	"time"
)

// Options overrides parts of the date. Zero fields take the value from now.
type Options struct {
	Month time.Month
	Day   int
	Year  int
}

// Resolve returns the date as MM/DD/YYYY.
func Resolve(now time.Time, opts Options) string {
	year, month, day := now.Date()
	if opts.Month != 0 {
		month = opts.Month
	}
	if opts.Day != 0 {
		day = opts.Day
	}
	if opts.Year != 0 {
		year = opts.Year
	}
	return fmt.Sprintf("%02d/%02d/%d", int(month), day, year)
}

// Today is Resolve with no overrides.
func Today(now time.Time) string {
	return Resolve(now, Options{})
}
