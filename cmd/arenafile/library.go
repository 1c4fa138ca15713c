package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/mthorne/arenafile/internal/assets"
	"github.com/mthorne/arenafile/internal/core"
	"github.com/mthorne/arenafile/internal/resource"
)

// loadLibrary decodes every game data table reachable from the configured
// data directory, exiting with a message when any of them cannot be read.
func loadLibrary() (*assets.Library, *core.Config) {
	cfg := core.LoadConfig(ConfigFlag)

	logger, err := core.NewLogger(cfg)
	if err != nil {
		fmt.Println("error initializing logger:", err)
		os.Exit(1)
	}

	loader := assets.Loader{
		Source: resource.NewCachedSource(resource.NewDir(cfg.GameDataPath)),
		Logger: logger,
	}
	if cfg.UnpackedExePath != "" {
		exe, err := ioutil.ReadFile(cfg.UnpackedExePath)
		if err != nil {
			fmt.Println("error reading unpacked executable:", err)
			os.Exit(1)
		}
		loader.ExeImage = exe
	}

	library, err := loader.Load()
	if err != nil {
		fmt.Println("error loading game data:", err)
		os.Exit(1)
	}
	return library, cfg
}
