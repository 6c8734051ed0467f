package palconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/pal/actions"
	"github.com/reusee/pal/cmds"
	"github.com/reusee/pal/configs"
	"github.com/reusee/pal/logs"
	"github.com/reusee/pal/starlarks"
)

// -config adds an explicit file to the discovered set, with the highest
// precedence. Routed to the cue or starlark loader by extension.
var configFlag = cmds.Var[string]("-config")

//go:embed schema.cue
var schema string

var cueFilenames = []string{
	"pal.cue",
	".pal.cue",
}

var starFilenames = []string{
	"pal.star",
	".pal.star",
}

// searchDirs returns config directories, most local first.
func searchDirs() []string {
	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")
	return dirs
}

func discover(filenames []string) []string {
	var paths []string
	if path := *configFlag; path != "" {
		for _, filename := range filenames {
			if filepath.Ext(path) == filepath.Ext(filename) {
				paths = append(paths, path)
				break
			}
		}
	}
	for _, dir := range searchDirs() {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return paths
}

// NewLoader builds a fresh loader over the discovered config files. A
// loader caches file contents, so rebuilds use a new one.
type NewLoader func() configs.Loader

func (Module) NewLoader(
	logger logs.Logger,
) NewLoader {
	return func() configs.Loader {
		paths := discover(cueFilenames)
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
		return configs.NewLoader(paths, schema)
	}
}

func (Module) ConfigsLoader(
	newLoader NewLoader,
) configs.Loader {
	return newLoader()
}

// StarPaths are in load order: definitions in more local files shadow the
// more global ones, so the most local file comes last.
func (Module) StarPaths() starlarks.StarPaths {
	paths := discover(starFilenames)
	for i, j := 0, len(paths)-1; i < j; i, j = i+1, j-1 {
		paths[i], paths[j] = paths[j], paths[i]
	}
	return starlarks.StarPaths(paths)
}

func (Module) ConfigPaths(
	starPaths starlarks.StarPaths,
) actions.ConfigPaths {
	paths := discover(cueFilenames)
	paths = append(paths, starPaths...)
	return actions.ConfigPaths(paths)
}
