package app

import (
	"fmt"

	"go.uber.org/zap"

	"calcpad/internal/config"
	"calcpad/internal/domain"
	"calcpad/internal/services/editor"
	"calcpad/internal/store"
)

// Wire bundles configuration, logging and storage for the CLI.
type Wire struct {
	Config *config.Config
	Logger *zap.Logger
	State  domain.StateStore
}

// NewWire constructs the dependency graph from cfg. A nil logger is
// replaced by a no-op logger.
func NewWire(cfg *config.Config, logger *zap.Logger) (*Wire, error) {
	if cfg == nil {
		return nil, fmt.Errorf("app: nil config")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Wire{
		Config: cfg,
		Logger: logger,
		State:  store.NewStateFileStore(cfg.Home),
	}, nil
}

// EditorOptions returns the editor options implied by the config.
func (w *Wire) EditorOptions() []editor.Option {
	return []editor.Option{
		editor.WithLogger(w.Logger.Named("editor")),
		editor.WithErrorMarker(w.Config.ErrorMarker),
	}
}

// NewEditor returns an empty editor rendering to render.
func (w *Wire) NewEditor(render domain.Renderer) *editor.Service {
	return editor.New(render, w.EditorOptions()...)
}

// LoadEditor returns an editor seeded from the persisted state, if any.
func (w *Wire) LoadEditor(render domain.Renderer) (*editor.Service, error) {
	ed := w.NewEditor(render)
	snap, ok, err := w.State.LoadState()
	if err != nil {
		return nil, fmt.Errorf("loading state: %w", err)
	}
	if ok {
		if err := ed.Restore(snap); err != nil {
			return nil, fmt.Errorf("loading state: %w", err)
		}
	}
	return ed, nil
}

// SaveEditor persists ed's snapshot.
func (w *Wire) SaveEditor(ed domain.Editor) error {
	if err := w.State.SaveState(ed.Snapshot()); err != nil {
		return fmt.Errorf("saving state: %w", err)
	}
	return nil
}
