package domain

import "path/filepath"

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.toml"

// LocalDirName is the per-directory settings folder.
const LocalDirName = ".todo"

// GlobalConfigDir returns the global config directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "todo")
}

// DataDir returns the data directory under dataHome.
func DataDir(dataHome string) string {
	return filepath.Join(dataHome, "todo")
}

// StoreFilePath returns the default path of the file backend.
func StoreFilePath(dataDir string) string {
	return filepath.Join(dataDir, "storage.json")
}

// LogPath returns the path to the diagnostic log file.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", "todo.log")
}
