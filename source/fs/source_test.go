package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/yacchi/kasane/source"
)

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir() error = %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"config.jsonc", "config.jsonc"},
		{"~", home},
		{"~/config.jsonc", filepath.Join(home, "config.jsonc")},
		{"~someone/config.jsonc", "~someone/config.jsonc"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := expandTilde(tt.in)
			if err != nil {
				t.Fatalf("expandTilde() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("expandTilde(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExpandTilde_HomeError(t *testing.T) {
	orig := userHomeDir
	userHomeDir = func() (string, error) { return "", errors.New("no home") }
	defer func() { userHomeDir = orig }()

	if _, err := expandTilde("~/x"); err == nil {
		t.Fatal("expandTilde() expected error, got nil")
	}

	s := New("~/x")
	if got := s.ResolvedPath(); got != "~/x" {
		t.Fatalf("ResolvedPath() = %q, want %q", got, "~/x")
	}
	_, err := s.Load(context.Background())
	if !errors.Is(err, source.ErrNotExist) {
		t.Fatalf("Load() error = %v, want ErrNotExist", err)
	}
}

func TestResolvePathAndResolvedPath(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "primary.jsonc")
	alt := filepath.Join(dir, "alt.jsonc")

	if err := os.WriteFile(alt, []byte("alt"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	s := New(primary, WithSearchPaths(alt))
	if got := s.Path(); got != primary {
		t.Fatalf("Path() = %q, want %q", got, primary)
	}
	if s.Type() != source.TypeFS {
		t.Fatalf("Type() = %q, want %q", s.Type(), source.TypeFS)
	}

	if got := s.ResolvedPath(); got != primary {
		t.Fatalf("ResolvedPath() before Load = %q, want %q", got, primary)
	}

	data, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(data) != "alt" {
		t.Fatalf("Load() data = %q, want %q", string(data), "alt")
	}
	if got := s.ResolvedPath(); got != alt {
		t.Fatalf("ResolvedPath() after Load = %q, want %q", got, alt)
	}
}

func TestLoad_PrimaryWins(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "primary.jsonc")
	alt := filepath.Join(dir, "alt.jsonc")
	for p, content := range map[string]string{primary: "primary", alt: "alt"} {
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}

	data, err := New(primary, WithSearchPaths(alt)).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(data) != "primary" {
		t.Fatalf("Load() data = %q, want %q", string(data), "primary")
	}
}

func TestLoad_NoFilesFound(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "missing.jsonc")
	s := New(primary, WithSearchPaths(filepath.Join(dir, "also-missing.jsonc")))

	_, err := s.Load(context.Background())
	if !errors.Is(err, source.ErrNotExist) {
		t.Fatalf("Load() error = %v, want ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), "missing.jsonc") {
		t.Fatalf("error = %q, want to mention the primary path", err.Error())
	}
}

func TestLoad_DirectoryIsNotAFile(t *testing.T) {
	dir := t.TempDir()

	_, err := New(dir).Load(context.Background())
	if !errors.Is(err, source.ErrNotExist) {
		t.Fatalf("Load(dir) error = %v, want ErrNotExist", err)
	}
}

func TestLoad_ReadError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission semantics differ on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}

	dir := t.TempDir()
	target := filepath.Join(dir, "config.jsonc")
	if err := os.WriteFile(target, []byte("{}"), 0o000); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	_, err := New(target).Load(context.Background())
	if err == nil {
		t.Fatal("Load() expected error, got nil")
	}
	if errors.Is(err, source.ErrNotExist) {
		t.Fatalf("Load() error = %v, must not be ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), "failed to read file") {
		t.Fatalf("error = %q, want to contain %q", err.Error(), "failed to read file")
	}
}

func TestLoad_RemovedAfterStat(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "config.jsonc")
	if err := os.WriteFile(target, []byte("{}"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	orig := osReadFile
	osReadFile = func(name string) ([]byte, error) { return nil, os.ErrNotExist }
	defer func() { osReadFile = orig }()

	_, err := New(target).Load(context.Background())
	if !errors.Is(err, source.ErrNotExist) {
		t.Fatalf("Load() error = %v, want ErrNotExist", err)
	}
}

func TestLoad_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New("whatever.jsonc").Load(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Load() error = %v, want context.Canceled", err)
	}
}
