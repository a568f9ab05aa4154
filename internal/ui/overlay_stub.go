//go:build !ebiten

package ui

import "godforce-ca/internal/grid"

type gridProvider interface {
	Grid() *grid.Grid
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(gridProvider, int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Layer always reports the first layer.
func (o *Overlay) Layer() int { return 0 }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
