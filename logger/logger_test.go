package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
)

func reset(t *testing.T) *bytes.Buffer {
	t.Helper()
	std = log.New()
	var buf bytes.Buffer
	std.SetOutput(&buf)
	t.Cleanup(func() {
		std = log.New()
		std.SetOutput(os.Stderr)
	})
	return &buf
}

func TestInitLevels(t *testing.T) {
	buf := reset(t)
	Init("warn", "text")
	Infof("hidden")
	Warnf("shown %d", 1)
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown 1") {
		t.Fatalf("unexpected output %q", out)
	}
	if std.GetLevel() != log.WarnLevel {
		t.Fatalf("expected warn level, got %v", std.GetLevel())
	}

	Init("DEBUG", "")
	if std.GetLevel() != log.DebugLevel {
		t.Fatalf("expected debug level, got %v", std.GetLevel())
	}
	Init("nonsense", "")
	if std.GetLevel() != log.InfoLevel {
		t.Fatalf("expected info fallback, got %v", std.GetLevel())
	}
}

func TestInitJSON(t *testing.T) {
	buf := reset(t)
	Init("info", "json")
	WithError(errors.New("boom")).Errorf("save %s", "skill")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "save skill" || entry["error"] != "boom" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestInitOff(t *testing.T) {
	reset(t)
	if !Enabled() {
		t.Fatal("expected logging enabled by default")
	}
	Init("off", "")
	if Enabled() {
		t.Fatal("expected logging disabled")
	}
}

func TestFatalfVisibleWhenOff(t *testing.T) {
	reset(t)
	var out bytes.Buffer
	prev := fatalOut
	fatalOut = &out
	t.Cleanup(func() { fatalOut = prev })

	Init("off", "")
	code := -1
	std.ExitFunc = func(c int) { code = c }
	Fatalf("listen: %v", errors.New("address already in use"))

	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "address already in use") {
		t.Fatalf("expected fatal message on stderr, got %q", out.String())
	}
}
