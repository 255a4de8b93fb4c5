package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "defaults", cfg: Config{}},
		{name: "json_debug", cfg: Config{Encoding: "json", Level: "DEBUG"}},
		{name: "bad_level", cfg: Config{Level: "trace"}, wantErr: true},
		{name: "bad_encoding", cfg: Config{Encoding: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewWithWriter_JSONCarriesAppAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("gpt_bot", &Config{Encoding: "json", Level: "warn"}, &buf)

	log.Info("dropped")
	log.Warn("kept", "chat_id", int64(42))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), buf.String())
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if rec["app"] != "gpt_bot" || rec["msg"] != "kept" || rec["chat_id"] != float64(42) {
		t.Fatalf("unexpected record: %v", rec)
	}
}
