// Package stopwatch provides simple wall-clock timing helpers: a lap-based
// Stopwatch for ad-hoc measurements and Measure for repeated runs with
// aggregate statistics.
package stopwatch

import (
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// ErrNoRuns is returned when Measure is asked for fewer than one run.
var ErrNoRuns = errors.New("run count must be at least 1")

// Lap is one named split recorded by a Stopwatch.
type Lap struct {
	Name    string
	Elapsed time.Duration
}

// Stopwatch measures elapsed wall-clock time. It starts running on New and
// is not safe for concurrent use.
type Stopwatch struct {
	start time.Time
	mark  time.Time
	laps  []Lap
}

// New returns a running Stopwatch.
func New() *Stopwatch {
	now := time.Now()
	return &Stopwatch{start: now, mark: now}
}

// Elapsed returns the time since the stopwatch was started or restarted.
func (s *Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}

// Lap records a named split and returns the time since the previous lap
// (or since the start for the first lap).
func (s *Stopwatch) Lap(name string) time.Duration {
	now := time.Now()
	elapsed := now.Sub(s.mark)
	s.mark = now
	s.laps = append(s.laps, Lap{Name: name, Elapsed: elapsed})
	return elapsed
}

// Laps returns the recorded laps in order.
func (s *Stopwatch) Laps() []Lap {
	return s.laps
}

// Restart zeroes the stopwatch and discards recorded laps.
func (s *Stopwatch) Restart() {
	now := time.Now()
	s.start = now
	s.mark = now
	s.laps = nil
}

func (s *Stopwatch) String() string {
	return s.Elapsed().Round(time.Microsecond).String()
}

// Result aggregates the timings of repeated runs of one operation.
type Result struct {
	Name  string
	Runs  []time.Duration
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
	Mean  time.Duration

	// Failed is the 0-based index of the run that returned an error, or -1.
	// Err is that error. Timings cover only the completed runs.
	Failed int
	Err    error
}

// Measure invokes fn runs times and aggregates the timings. A failing run
// stops the measurement; its index and error are recorded in the Result,
// which still covers the completed runs.
func Measure(name string, runs int, fn func() error) (*Result, error) {
	if runs < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNoRuns, runs)
	}

	result := &Result{
		Name:   name,
		Runs:   make([]time.Duration, 0, runs),
		Failed: -1,
	}

	for i := 0; i < runs; i++ {
		start := time.Now()
		err := fn()
		elapsed := time.Since(start)
		if err != nil {
			result.Failed = i
			result.Err = err
			break
		}
		result.Runs = append(result.Runs, elapsed)
	}

	result.aggregate()
	return result, nil
}

func (r *Result) aggregate() {
	if len(r.Runs) == 0 {
		return
	}
	r.Min = r.Runs[0]
	r.Max = r.Runs[0]
	for _, d := range r.Runs {
		r.Total += d
		if d < r.Min {
			r.Min = d
		}
		if d > r.Max {
			r.Max = d
		}
	}
	r.Mean = r.Total / time.Duration(len(r.Runs))
}

// Summary renders a one-line human-readable report.
func (r *Result) Summary() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: failed on run %d after %s: %v",
			r.Name, r.Failed+1, round(r.Total), r.Err)
	}
	perSec := 0.0
	if r.Total > 0 {
		perSec = float64(len(r.Runs)) / r.Total.Seconds()
	}
	return fmt.Sprintf("%s: %s run(s) in %s, min %s, mean %s, max %s, %s runs/sec",
		r.Name,
		humanize.Comma(int64(len(r.Runs))),
		round(r.Total), round(r.Min), round(r.Mean), round(r.Max),
		humanize.CommafWithDigits(perSec, 1))
}

func round(d time.Duration) time.Duration {
	return d.Round(time.Microsecond)
}
