package remind

import (
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestParseDelay(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"30m", 30 * time.Minute, false},
		{"2h", 2 * time.Hour, false},
		{"1d", 24 * time.Hour, false},
		{"0m", 0, false},
		{"15", 15 * time.Minute, false}, // bare integer means minutes
		{"", 0, true},
		{"m", 0, true},
		{"abc", 0, true},
		{"-5m", 0, true},
		{"2w", 0, true}, // unknown suffix is not a digit
	}
	for _, tt := range tests {
		got, err := ParseDelay(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDelay(%q): err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseDelay(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

type fakeNotifier struct {
	fired atomic.Bool
	msg   atomic.Value
}

func (f *fakeNotifier) Notify(message string) {
	f.msg.Store(message)
	f.fired.Store(true)
}

type fakeLog struct {
	fireAt  time.Time
	message string
}

func (f *fakeLog) AppendReminder(fireAt time.Time, message string) error {
	f.fireAt = fireAt
	f.message = message
	return nil
}

func TestScheduleReturnsImmediately(t *testing.T) {
	notifier := &fakeNotifier{}
	rlog := &fakeLog{}
	s := NewScheduler(notifier, rlog, log.New(io.Discard))

	delay := 50 * time.Millisecond
	start := time.Now()
	fireAt := s.Schedule("stretch your legs", delay)
	if elapsed := time.Since(start); elapsed >= delay {
		t.Fatalf("Schedule blocked for %s", elapsed)
	}
	if notifier.fired.Load() {
		t.Error("reminder fired before the delay elapsed")
	}

	if want := start.Add(delay); fireAt.Before(want) || fireAt.After(want.Add(time.Second)) {
		t.Errorf("fireAt = %s, want about %s", fireAt, want)
	}
	if rlog.message != "stretch your legs" {
		t.Errorf("logged message = %q", rlog.message)
	}
	if !rlog.fireAt.Equal(fireAt) {
		t.Errorf("logged fireAt = %s, want %s", rlog.fireAt, fireAt)
	}

	s.Wait()
	if !notifier.fired.Load() {
		t.Error("reminder never fired")
	}
	if got := notifier.msg.Load(); got != "stretch your legs" {
		t.Errorf("notified message = %v", got)
	}
}

func TestScheduleWithoutLog(t *testing.T) {
	notifier := &fakeNotifier{}
	s := NewScheduler(notifier, nil, log.New(io.Discard))
	s.Schedule("no log", time.Millisecond)
	s.Wait()
	if !notifier.fired.Load() {
		t.Error("reminder never fired")
	}
}
