// Package report aggregates task counts over a trailing time window.
package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nibzard/quickdo/internal/task"
)

// ErrUnsupportedPeriod is returned for periods other than day and week.
var ErrUnsupportedPeriod = errors.New("unsupported report period")

// Period selects the trailing window for a report.
type Period string

const (
	PeriodDay  Period = "day"
	PeriodWeek Period = "week"
)

// Window returns the trailing window duration for the period.
func (p Period) Window() (time.Duration, error) {
	switch p {
	case PeriodDay:
		return 24 * time.Hour, nil
	case PeriodWeek:
		return 7 * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedPeriod, string(p))
	}
}

// CategoryCount is one per-category tally. Categories keep the order of
// their first appearance during the scan.
type CategoryCount struct {
	Category string
	Count    int
}

// Summary holds the aggregated counts for one report window.
type Summary struct {
	Period     Period
	Completed  int
	Remaining  int
	Categories []CategoryCount
}

// Aggregate scans tasks created within the window ending at now. Tasks
// older than the window are excluded from every tally. A task whose stored
// creation timestamp does not parse is skipped with a diagnostic, matching
// the load-time policy for malformed lines.
func Aggregate(tasks []task.Task, now time.Time, period Period, logger *log.Logger) (*Summary, error) {
	window, err := period.Window()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}

	start := now.Add(-window)
	sum := &Summary{Period: period}
	index := make(map[string]int)
	for _, t := range tasks {
		created, err := t.CreatedTime()
		if err != nil {
			logger.Warn("skipping task with unparseable creation time",
				"title", t.Title, "created_at", t.CreatedAt, "err", err)
			continue
		}
		if created.Before(start) {
			continue
		}
		if t.Completed {
			sum.Completed++
		} else {
			sum.Remaining++
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(sum.Categories)
			index[t.Category] = i
			sum.Categories = append(sum.Categories, CategoryCount{Category: t.Category})
		}
		sum.Categories[i].Count++
	}
	return sum, nil
}
