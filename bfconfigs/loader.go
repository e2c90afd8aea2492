package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"bf.cue",
	".bf.cue",
}

// ConfigFiles lists config files by precedence: working directory, user config dir, /etc.
type ConfigFiles []string

func (Module) ConfigFiles() ConfigFiles {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	var paths []string
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return paths
}

func (Module) ConfigsLoader(
	files ConfigFiles,
	logger logs.Logger,
) configs.Loader {
	if len(files) > 0 {
		logger.Debug("config files", "paths", []string(files))
	}
	return configs.NewLoader(files, schema)
}

// lookup leaves a broken config file to whoever checks loader.Err, so that
// providers never panic on it.
func lookup[T any](loader configs.Loader, path string) (ret T) {
	if loader.Err() != nil {
		return
	}
	return configs.First[T](loader, path)
}
