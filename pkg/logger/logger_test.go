package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInit_EmitsServiceField(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "debug", Service: "admin-portal", Output: &buf})
	log.Info().Msg("started")

	line := buf.String()
	if !strings.Contains(line, `"service":"admin-portal"`) {
		t.Fatalf("service field missing: %s", line)
	}
	if !strings.Contains(line, `"message":"started"`) {
		t.Fatalf("message missing: %s", line)
	}
}

func TestInit_LevelFiltersOutput(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "warn", Output: &buf})
	log.Info().Msg("dropped")
	log.Warn().Msg("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("info line emitted at warn level: %s", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn line missing: %s", out)
	}
}

func TestInit_OnlyFirstCallWins(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var first, second bytes.Buffer
	Init(Options{Level: "info", Output: &first})
	log := Init(Options{Level: "info", Output: &second})
	log.Info().Msg("routed")

	if second.Len() != 0 {
		t.Fatalf("second Init replaced the singleton: %s", second.String())
	}
	if !strings.Contains(first.String(), "routed") {
		t.Fatalf("log line lost: %q", first.String())
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	Get()
}
