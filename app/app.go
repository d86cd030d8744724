// Package app wires a HAL to the editor and hands the per-frame step
// function to whichever runner (window or headless) drives it.
package app

import (
	"pixed/hal"
	"pixed/paint/editor"
)

type Config struct {
	// ScaleImports resizes imported images to the canvas instead of
	// rejecting ones whose size differs.
	ScaleImports bool
	// OpenProject loads the given project folder on startup.
	OpenProject string
}

// New builds the editor with default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig builds the editor and returns its step function.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	e := editor.New(h.Logger(), h.Display(), h.Input(), h.Dialogs(), editor.Config{
		ScaleImports: cfg.ScaleImports,
		OpenProject:  cfg.OpenProject,
	})
	return e.Step
}
