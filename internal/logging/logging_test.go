package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tcaption.log")
	log, closer, err := New(path, "debug")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.WithField("caption_id", "c1").Debug("caption updated")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", data, err)
	}
	if entry["msg"] != "caption updated" || entry["caption_id"] != "c1" || entry["level"] != "debug" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, _, err := New("", "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewWithoutPathDiscards(t *testing.T) {
	log, closer, err := New("", "info")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("dropped")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
