package store

import (
	"fmt"
	"os"
	"time"

	"github.com/nibzard/quickdo/internal/task"
)

// AppendReminder appends one <fire-time>|<message> line to the reminders
// log. The log is write-only; nothing in quickdo reads it back.
func (s *Store) AppendReminder(fireAt time.Time, message string) error {
	f, err := os.OpenFile(s.remindersPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open reminders log: %w", err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "%s|%s\n", fireAt.Format(task.CreatedAtLayout), message); err != nil {
		return fmt.Errorf("append reminder: %w", err)
	}
	return nil
}
