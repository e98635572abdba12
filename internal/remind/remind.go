// Package remind schedules one-shot delayed notifications.
package remind

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// ParseDelay parses delays like "30m", "2h" or "1d". A bare integer means
// minutes.
func ParseDelay(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("empty delay")
	}
	unit := time.Minute
	digits := s
	switch s[len(s)-1] {
	case 'm':
		digits = s[:len(s)-1]
	case 'h':
		unit = time.Hour
		digits = s[:len(s)-1]
	case 'd':
		unit = 24 * time.Hour
		digits = s[:len(s)-1]
	}
	value, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("invalid delay %q: want an integer with optional m/h/d suffix", s)
	}
	if value < 0 {
		return 0, fmt.Errorf("invalid delay %q: negative", s)
	}
	return time.Duration(value) * unit, nil
}

// Notifier delivers a reminder message to the user.
type Notifier interface {
	Notify(message string)
}

// Log records a scheduled reminder before its timer starts.
type Log interface {
	AppendReminder(fireAt time.Time, message string) error
}

// Scheduler spawns fire-and-forget reminder timers. Reminders still
// pending when the process exits are lost; only the log line written at
// schedule time survives.
type Scheduler struct {
	notifier Notifier
	log      Log
	logger   *log.Logger
	wg       sync.WaitGroup
}

// NewScheduler creates a scheduler. log may be nil to skip reminder
// logging.
func NewScheduler(notifier Notifier, rlog Log, logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{notifier: notifier, log: rlog, logger: logger}
}

// Schedule records the reminder and spawns its timer, returning the fire
// time immediately. The log write is best-effort: a failure is logged and
// the reminder still fires.
func (s *Scheduler) Schedule(message string, delay time.Duration) time.Time {
	fireAt := time.Now().Add(delay)
	if s.log != nil {
		if err := s.log.AppendReminder(fireAt, message); err != nil {
			s.logger.Warn("could not record reminder", "err", err)
		}
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		timer := time.NewTimer(delay)
		defer timer.Stop()
		<-timer.C
		s.notifier.Notify(message)
	}()
	return fireAt
}

// Wait blocks until every scheduled reminder has fired. The CLI does not
// call this; it exists so callers that want to outlive their timers can.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}
