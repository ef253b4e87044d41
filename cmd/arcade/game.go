package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/arcade-portal/internal/config"
	"github.com/vovakirdan/arcade-portal/internal/core"
	"github.com/vovakirdan/arcade-portal/internal/platform/tui"
	"github.com/vovakirdan/arcade-portal/internal/registry"
)

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// createGame builds a game. Games with difficulty presets show the preset
// picker first unless --difficulty was given. ok is false when the player
// backed out of the picker.
func createGame(info registry.GameInfo, cfg core.RuntimeConfig) (game registry.Game, ok bool, err error) {
	store := config.Active()

	if config.HasPresets(info.ID) && flagDifficulty == "" {
		preset, selErr := tui.RunDifficultySelector(info.Title, config.DifficultyNormal, cfg)
		if selErr != nil {
			return nil, false, selErr
		}
		if preset == nil {
			return nil, false, nil
		}
		if store, err = store.WithPreset(*preset); err != nil {
			return nil, false, err
		}
	}

	game, err = registry.CreateWithStore(info.ID, store)
	if err != nil {
		return nil, false, err
	}
	return game, true, nil
}
