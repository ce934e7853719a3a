package kasane

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func stubPaths(t *testing.T, exe, home, xdgHome string) {
	t.Helper()
	origExe, origHome, origXDG := osExecutable, userHomeDir, xdgConfigHome
	t.Cleanup(func() {
		osExecutable, userHomeDir, xdgConfigHome = origExe, origHome, origXDG
	})

	osExecutable = func() (string, error) { return exe, nil }
	userHomeDir = func() (string, error) { return home, nil }
	xdgConfigHome = func() string { return xdgHome }
}

func TestDiscoverPaths(t *testing.T) {
	root := t.TempDir()
	exe := filepath.Join(root, "bin", "berkide")
	home := filepath.Join(root, "home")
	xdgHome := filepath.Join(home, ".config")
	stubPaths(t, exe, home, xdgHome)

	t.Run("default app", func(t *testing.T) {
		p, err := DiscoverPaths("")
		if err != nil {
			t.Fatalf("DiscoverPaths() error = %v", err)
		}
		want := Paths{
			AppDir:  filepath.Join(root, "bin", ".berkide"),
			XDGDir:  filepath.Join(xdgHome, "berkide"),
			UserDir: filepath.Join(home, ".berkide"),
		}
		if p != want {
			t.Errorf("DiscoverPaths() = %+v, want %+v", p, want)
		}

		files := p.ConfigFiles()
		wantFiles := []string{
			filepath.Join(want.AppDir, ConfigFileName),
			filepath.Join(want.XDGDir, ConfigFileName),
			filepath.Join(want.UserDir, ConfigFileName),
		}
		if !reflect.DeepEqual(files, wantFiles) {
			t.Errorf("ConfigFiles() = %v, want %v", files, wantFiles)
		}
	})

	t.Run("custom app", func(t *testing.T) {
		p, err := DiscoverPaths("myapp")
		if err != nil {
			t.Fatalf("DiscoverPaths() error = %v", err)
		}
		if p.UserDir != filepath.Join(home, ".myapp") || p.XDGDir != filepath.Join(xdgHome, "myapp") {
			t.Errorf("DiscoverPaths() = %+v", p)
		}
	})
}

func TestDiscoverPaths_NoXDG(t *testing.T) {
	stubPaths(t, "/opt/berkide/berkide", "/home/u", "")

	p, err := DiscoverPaths("berkide")
	if err != nil {
		t.Fatalf("DiscoverPaths() error = %v", err)
	}
	if p.XDGDir != "" {
		t.Errorf("XDGDir = %q, want empty", p.XDGDir)
	}
	if n := len(p.ConfigFiles()); n != 2 {
		t.Errorf("len(ConfigFiles()) = %d, want 2", n)
	}
}

func TestDiscoverPaths_Errors(t *testing.T) {
	t.Run("executable", func(t *testing.T) {
		stubPaths(t, "", "/home/u", "")
		boom := errors.New("no exe")
		osExecutable = func() (string, error) { return "", boom }

		if _, err := DiscoverPaths("berkide"); !errors.Is(err, boom) {
			t.Errorf("DiscoverPaths() error = %v, want %v", err, boom)
		}
	})

	t.Run("home", func(t *testing.T) {
		stubPaths(t, "/bin/berkide", "", "")
		boom := errors.New("no home")
		userHomeDir = func() (string, error) { return "", boom }

		if _, err := DiscoverPaths("berkide"); !errors.Is(err, boom) {
			t.Errorf("DiscoverPaths() error = %v, want %v", err, boom)
		}
	})
}

func TestPaths_ConfigFiles_Loadable(t *testing.T) {
	dir := t.TempDir()
	user := filepath.Join(dir, "user")
	p := Paths{AppDir: filepath.Join(dir, "app"), UserDir: user}

	if err := os.MkdirAll(user, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, user, ConfigFileName, `{"locale": "tr"} // user`)

	store := New()
	if err := store.LoadLayers(context.Background(), p.ConfigFiles()...); err != nil {
		t.Fatalf("LoadLayers() error = %v", err)
	}
	if got := store.GetString("locale", ""); got != "tr" {
		t.Errorf("locale = %q, want tr", got)
	}
	if n := len(store.Layers()); n != 2 {
		t.Errorf("len(Layers()) = %d, want 2", n)
	}
}
