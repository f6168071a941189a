package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/xioustic/bf-naive/cmds"
	"github.com/xioustic/bf-naive/configs"
	"github.com/xioustic/bf-naive/logs"
)

//go:embed schema.cue
var Schema string

var configFlag = cmds.Var[string]("-config")

var filenames = []string{
	"bf.cue",
	".bf.cue",
}

// ConfigsLoader loads the file given by -config, then config files from the working directory,
// the user config directory and /etc, in that order of precedence.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	var paths []string
	if *configFlag != "" {
		paths = append(paths, *configFlag)
	}

	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	if len(paths) > 0 {
		logger.Info("config file", "paths", paths)
	}

	return configs.NewLoader(paths, Schema)
}
