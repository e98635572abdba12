package task

import (
	"fmt"
	"regexp"
	"strings"
)

// Storage line format:
//
//	<mark>|<created_at>|<priority>|<category>|<title>[ due:<date>]
//
// where <mark> is "+" for completed tasks and "-" otherwise. The due date
// is not a delimited field; it rides inside the title tail as a due:<date>
// token so the file stays a flat, hand-editable five-field line.

var dueToken = regexp.MustCompile(`due:(\S+)`)

// Encode serializes a task to one storage line.
func Encode(t Task) string {
	mark := "-"
	if t.Completed {
		mark = "+"
	}
	line := fmt.Sprintf("%s|%s|%s|%s|%s", mark, t.CreatedAt, t.Priority, t.Category, t.Title)
	if t.DueDate != "" {
		line += " due:" + t.DueDate
	}
	return line
}

// Decode parses one storage line. Lines with fewer than 4 fields are a
// structural error; callers drop the line and keep loading. The title may
// itself contain the field delimiter, so everything past the fourth field
// is rejoined before the due token is extracted.
func Decode(line string) (Task, error) {
	parts := strings.Split(strings.TrimSpace(line), "|")
	if len(parts) < 4 {
		return Task{}, fmt.Errorf("malformed record %q: want at least 4 fields, got %d", line, len(parts))
	}
	title, due := ExtractDue(strings.Join(parts[4:], "|"))
	return Task{
		Title:     title,
		DueDate:   due,
		Priority:  Priority(parts[2]),
		Category:  parts[3],
		Completed: parts[0] == "+",
		CreatedAt: parts[1],
	}, nil
}

// ExtractDue splits a title tail into the title text and an embedded
// due:<date> token. Text before the first token becomes the title; without
// a token the whole tail is the title. Both are whitespace-trimmed.
func ExtractDue(tail string) (title, due string) {
	loc := dueToken.FindStringSubmatchIndex(tail)
	if loc == nil {
		return strings.TrimSpace(tail), ""
	}
	return strings.TrimSpace(tail[:loc[0]]), tail[loc[2]:loc[3]]
}
