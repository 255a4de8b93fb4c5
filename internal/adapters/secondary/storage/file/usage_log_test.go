package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestUsageLog_AppendKeepsPreviousLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "users.txt")
	l := NewUsageLog(path)

	first := "2026-01-01: User a with name A (chatId - 1) has performed 3 requests\n"
	second := "2026-01-02: User б with name Б (chatId - 2) has performed 0 requests\n"

	if err := l.Append(context.Background(), "2026-01-01", first); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := l.Append(context.Background(), "2026-01-02", second); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if string(data) != first+second {
		t.Fatalf("log content = %q", data)
	}
}

func TestUsageLog_AppendToDirectoryFails(t *testing.T) {
	l := NewUsageLog(t.TempDir())
	if err := l.Append(context.Background(), "d", "x"); err == nil {
		t.Fatal("Append() to a directory path succeeded")
	}
}
