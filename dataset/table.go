package dataset

import (
	"errors"
	"strconv"
	"time"
)

// Sentinel errors shared by all generators.
var (
	// ErrInvalidSampleSize is returned when a requested sample count is
	// not positive. Generators fail fast rather than emit a malformed table.
	ErrInvalidSampleSize = errors.New("dataset: sample size must be positive")

	// ErrEmptyUpstream is returned when a derived generator is invoked
	// with an empty upstream table and defines no synthetic fallback.
	ErrEmptyUpstream = errors.New("dataset: upstream table is empty")
)

// Table is a read-only row view over a generated record slice.
// Header and Row(i) must agree column-for-column; Row formats each value
// at its documented CSV precision.
type Table interface {
	// Len reports the number of records.
	Len() int
	// Header returns the CSV column names, in output order.
	Header() []string
	// Row formats record i as CSV fields, in Header order.
	Row(i int) []string
}

// Epoch is the fixed origin for every synthetic timestamp column.
var Epoch = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// StampLayout is the timestamp format used in CSV output.
const StampLayout = "2006-01-02 15:04:05"

// Stamp returns the i-th synthetic timestamp at the given stride from Epoch.
func Stamp(i int, stride time.Duration) time.Time {
	return Epoch.Add(time.Duration(i) * stride)
}

// Float formats v with prec digits after the decimal point.
func Float(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// Int formats an integer column value.
func Int(v int) string { return strconv.Itoa(v) }

// Bool formats a boolean column value.
func Bool(v bool) string { return strconv.FormatBool(v) }

// Time formats a timestamp column value.
func Time(t time.Time) string { return t.Format(StampLayout) }
