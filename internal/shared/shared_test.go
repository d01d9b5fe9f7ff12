package shared

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	t.Run("writes to the provided writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewLogger(buf)

		logger.Info("hello")

		if !strings.Contains(buf.String(), "hello") {
			t.Errorf("expected log output to contain hello, got %q", buf.String())
		}
	})

	t.Run("nil writer defaults to stderr", func(t *testing.T) {
		logger := NewLogger(nil)
		if logger == nil {
			t.Fatal("expected a logger, got nil")
		}
	})

	t.Run("WithLogger attaches fields", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := WithLogger(NewLogger(buf), "component", "test")

		logger.Info("tagged")

		if !strings.Contains(buf.String(), "component") {
			t.Errorf("expected log output to carry the component field, got %q", buf.String())
		}
	})
}

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	if len(a) != 36 {
		t.Errorf("expected a 36 character uuid, got %d characters", len(a))
	}
	if a == b {
		t.Error("expected successive ids to differ")
	}
}

func TestMarshalJSON(t *testing.T) {
	v := map[string]int{"n": 1}

	t.Run("compact", func(t *testing.T) {
		data, err := MarshalJSON(v, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != `{"n":1}` {
			t.Errorf("expected compact JSON, got %s", data)
		}
	})

	t.Run("pretty", func(t *testing.T) {
		data, err := MarshalJSON(v, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(string(data), "\n") {
			t.Errorf("expected indented JSON, got %s", data)
		}
	})
}

func TestValidateJSON(t *testing.T) {
	if err := ValidateJSON([]byte(`{"ok":true}`)); err != nil {
		t.Errorf("expected valid JSON to pass, got %v", err)
	}
	if err := ValidateJSON([]byte(`{"ok":`)); err == nil {
		t.Error("expected truncated JSON to fail")
	}
}

func TestVerifyAndReadFile(t *testing.T) {
	t.Run("reads a regular file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.json")
		if err := os.WriteFile(path, []byte(`{}`), 0644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		data, err := VerifyAndReadFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != `{}` {
			t.Errorf("expected file contents, got %s", data)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := VerifyAndReadFile(filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})

	t.Run("directory", func(t *testing.T) {
		if _, err := VerifyAndReadFile(t.TempDir()); err == nil {
			t.Error("expected an error for a directory")
		}
	})
}

func TestOpenBrowser(t *testing.T) {
	orig := getRuntime
	defer func() { getRuntime = orig }()

	getRuntime = func() string { return "plan9" }
	if err := OpenBrowser("http://127.0.0.1:8888/login"); err == nil {
		t.Error("expected an error for an unsupported platform")
	}
}
