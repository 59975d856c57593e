package utils

import (
	"os"
	"path/filepath"
	"runtime"
)

// XDGDataHome returns the per-user data directory of app, e.g.
// ~/.local/share/app or %APPDATA%\app.
func XDGDataHome(app string) string {
	home, _ := os.UserHomeDir()
	if runtime.GOOS == "windows" {
		if roaming := os.Getenv("APPDATA"); roaming != "" {
			return filepath.Join(roaming, app)
		}
		return filepath.Join(home, "AppData", "Roaming", app)
	}
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, app)
	}
	return filepath.Join(home, ".local", "share", app)
}

// DefaultHistoryDB is where the download history lives when not configured.
func DefaultHistoryDB() string {
	return filepath.Join(XDGDataHome("sayobot"), "history.db")
}
