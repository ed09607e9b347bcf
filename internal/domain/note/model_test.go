package note

import (
	"strings"
	"testing"
)

func TestNormalizeContent(t *testing.T) {
	t.Parallel()

	got, err := NormalizeContent("  remind admins about match 12  ")
	if err != nil || got != "remind admins about match 12" {
		t.Fatalf("unexpected result: got=%q err=%v", got, err)
	}

	if _, err := NormalizeContent(" \n\t "); err == nil {
		t.Fatalf("expected blank content to be rejected")
	}
	if _, err := NormalizeContent(strings.Repeat("é", MaxContentLength)); err != nil {
		t.Fatalf("content at the limit must pass: %v", err)
	}
	if _, err := NormalizeContent(strings.Repeat("x", MaxContentLength+1)); err == nil {
		t.Fatalf("expected oversized content to be rejected")
	}
}
