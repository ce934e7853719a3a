package kasane

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// DefaultAppName is the application whose configuration directories are discovered by default.
const DefaultAppName = "berkide"

// ConfigFileName is the configuration file looked up in every directory.
const ConfigFileName = "config.jsonc"

// Variables for testing
var (
	osExecutable  = os.Executable
	userHomeDir   = os.UserHomeDir
	xdgConfigHome = func() string { return xdg.ConfigHome }
)

// Paths holds the directories configuration layers are discovered in.
type Paths struct {
	// AppDir is .<app> next to the executable. It carries packaged settings.
	AppDir string

	// XDGDir is <app> under the XDG config home.
	XDGDir string

	// UserDir is ~/.<app>. It has the highest file priority.
	UserDir string
}

// DiscoverPaths resolves the configuration directories of app.
// The directories are not required to exist.
func DiscoverPaths(app string) (Paths, error) {
	if app == "" {
		app = DefaultAppName
	}
	dot := "." + app

	exe, err := osExecutable()
	if err != nil {
		return Paths{}, fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	home, err := userHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("failed to get home directory: %w", err)
	}

	p := Paths{
		AppDir:  filepath.Join(filepath.Dir(exe), dot),
		UserDir: filepath.Join(home, dot),
	}
	if cfg := xdgConfigHome(); cfg != "" {
		p.XDGDir = filepath.Join(cfg, app)
	}
	return p, nil
}

// ConfigFiles returns the candidate configuration files in ascending priority.
// Empty directories are skipped.
func (p Paths) ConfigFiles() []string {
	var files []string
	for _, dir := range []string{p.AppDir, p.XDGDir, p.UserDir} {
		if dir != "" {
			files = append(files, filepath.Join(dir, ConfigFileName))
		}
	}
	return files
}
