// Package store persists the task sequence to a flat text file.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/quickdo/internal/task"
)

// ErrInvalidTaskNumber is returned when a position is out of range.
var ErrInvalidTaskNumber = errors.New("invalid task number")

// Store holds the in-memory task sequence backed by a tasks file. A task's
// identity is its 1-based position in the full sequence; tasks are only
// ever appended or status-flipped, never deleted or reordered.
type Store struct {
	tasksPath     string
	remindersPath string
	logger        *log.Logger
	tasks         []task.Task
}

// Open creates the data directory and backing files if missing, then loads
// every task from the tasks file. A missing tasks file is an empty store.
func Open(dataDir, tasksFile, remindersFile string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &Store{
		tasksPath:     filepath.Join(dataDir, tasksFile),
		remindersPath: filepath.Join(dataDir, remindersFile),
		logger:        logger,
	}
	if err := touch(s.remindersPath); err != nil {
		return nil, err
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the tasks file, replacing the in-memory sequence. Blank
// lines are skipped; lines that fail to decode are logged and dropped so a
// single bad record never aborts the load.
func (s *Store) Reload() error {
	f, err := os.Open(s.tasksPath)
	if err != nil {
		if os.IsNotExist(err) {
			s.tasks = nil
			return touch(s.tasksPath)
		}
		return fmt.Errorf("open tasks file: %w", err)
	}
	defer f.Close()

	var tasks []task.Task
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := task.Decode(line)
		if err != nil {
			s.logger.Warn("dropping task line", "err", err)
			continue
		}
		tasks = append(tasks, t)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read tasks file: %w", err)
	}
	s.tasks = tasks
	return nil
}

// Add appends a new task created now and rewrites the tasks file. The
// stored record is returned for display.
func (s *Store) Add(title, dueDate string, priority task.Priority, category string) (task.Task, error) {
	t := task.New(title, dueDate, priority, category)
	s.tasks = append(s.tasks, t)
	if err := s.save(); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// Complete flips the completed flag of the task at the given 1-based
// position and rewrites the tasks file. Positions count the full sequence,
// completed tasks included. Out-of-range positions write nothing.
func (s *Store) Complete(pos int) (task.Task, error) {
	if pos < 1 || pos > len(s.tasks) {
		return task.Task{}, fmt.Errorf("%w: %d", ErrInvalidTaskNumber, pos)
	}
	s.tasks[pos-1].Completed = !s.tasks[pos-1].Completed
	if err := s.save(); err != nil {
		return task.Task{}, err
	}
	return s.tasks[pos-1], nil
}

// List yields (position, task) pairs in insertion order. When
// includeCompleted is false, completed tasks are skipped but never
// renumbered: positions are 1-based over the full sequence.
func (s *Store) List(includeCompleted bool) iter.Seq2[int, task.Task] {
	return func(yield func(int, task.Task) bool) {
		for i, t := range s.tasks {
			if t.Completed && !includeCompleted {
				continue
			}
			if !yield(i+1, t) {
				return
			}
		}
	}
}

// Len returns the number of stored tasks, completed ones included.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Tasks returns a copy of the full sequence in insertion order.
func (s *Store) Tasks() []task.Task {
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// save rewrites the whole tasks file from memory. Last writer wins; the
// tool is single-user, single-process by design.
func (s *Store) save() error {
	var b strings.Builder
	for _, t := range s.tasks {
		b.WriteString(task.Encode(t))
		b.WriteByte('\n')
	}
	if err := os.WriteFile(s.tasksPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write tasks file: %w", err)
	}
	return nil
}

func touch(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
