package console

import (
	"log/slog"
	"reflect"
)

// Config configures the console Model.
type Config struct {
	// Initial line content. It is not undoable.
	Text string

	// Prompt is rendered before the line. Default: "> ".
	Prompt string

	// Style and KeyMap default to DefaultStyle and DefaultKeyMap when zero.
	Style  Style
	KeyMap KeyMap

	// Logger receives debug records for edits, undo and submit. Nil
	// discards.
	Logger *slog.Logger

	// OnChange is called after an update that changed the buffer version.
	OnChange func(ChangeEvent)

	// OnSubmit is called with the line when the submit key is pressed.
	OnSubmit func(line string)
}

const defaultPrompt = "> "

func normalizeConfig(cfg Config) Config {
	if cfg.Prompt == "" {
		cfg.Prompt = defaultPrompt
	}
	if reflect.DeepEqual(cfg.Style, Style{}) {
		cfg.Style = DefaultStyle()
	}
	cfg.KeyMap = normalizeKeyMap(cfg.KeyMap)
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}
