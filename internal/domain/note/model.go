package note

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const MaxContentLength = 2000

var ErrNotFound = errors.New("note not found")

// Note is a free-form scratch note kept next to the tracker data.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeContent trims content and enforces the length bounds.
func NormalizeContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("note content is required")
	}
	if n := utf8.RuneCountInString(content); n > MaxContentLength {
		return "", fmt.Errorf("note content must be at most %d characters, got %d", MaxContentLength, n)
	}
	return content, nil
}
