//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"godforce-ca/internal/core"
	"godforce-ca/internal/palette"
	"godforce-ca/internal/params"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type godforceProvider interface {
	Params() params.Params
	Palette() string
	Book() *palette.Book
}

// HUD renders the parameter panel to the right of the simulation view: the
// live godforce record, a hue swatch, the active palette and the adjustable
// controls.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
	title        string
	status       string
	recordBottom int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = buildTitle(sim)
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// SetStatus sets the single status line shown under the title.
func (h *HUD) SetStatus(s string) {
	if h != nil {
		h.status = s
	}
}

// Update refreshes the cached parameter snapshot and handles clicks on the
// control buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 220})
	y := h.drawRecord()
	h.drawControls(y)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}

var (
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
)

// drawRecord paints the title, status, godforce record and swatches and
// returns the y coordinate below them.
func (h *HUD) drawRecord() int {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	if h.status != "" {
		y += textLine
		text.Draw(h.panel, h.status, face, panelPadding, y, dimColor)
	}

	for _, group := range h.snapshot.Groups {
		if group.Name != "Godforce" {
			continue
		}
		if group.Summary != "" {
			y += textLine
			text.Draw(h.panel, fmt.Sprintf("theme: %s", group.Summary), face, panelPadding, y, textColor)
		}
		for _, p := range group.Params {
			y += textLine
			text.Draw(h.panel, fmt.Sprintf("%s: %s", p.Label, shortValue(p)), face, panelPadding, y, textColor)
		}
	}

	gp, ok := h.sim.(godforceProvider)
	if !ok {
		return y + sectionGap
	}
	y += sectionGap / 2
	h.fillRect(image.Rect(panelPadding, y, h.width-panelPadding, y+swatchHeight), HueStrip(gp.Params(), h.width-2*panelPadding))

	y += swatchHeight + 4
	y += textLine
	text.Draw(h.panel, "palette: "+gp.Palette(), face, panelPadding, y, dimColor)
	y += 4
	colors := gp.Book().Lookup(gp.Palette()).Colors
	if n := len(colors); n > 0 {
		w := (h.width - 2*panelPadding) / n
		for i, c := range colors {
			x := panelPadding + i*w
			h.fillRect(image.Rect(x, y, x+w-2, y+swatchHeight), []color.RGBA{toRGBA(c)})
		}
	}
	return y + swatchHeight + sectionGap
}

// fillRect paints rect with cols stretched across its width.
func (h *HUD) fillRect(rect image.Rectangle, cols []color.RGBA) {
	if h.pixel == nil || len(cols) == 0 || rect.Dx() <= 0 {
		return
	}
	w := float64(rect.Dx()) / float64(len(cols))
	for i, c := range cols {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(math.Ceil(w), float64(rect.Dy()))
		op.GeoM.Translate(float64(rect.Min.X)+float64(i)*w, float64(rect.Min.Y))
		op.ColorScale.ScaleWithColor(c)
		h.panel.DrawImage(h.pixel, op)
	}
}

func (h *HUD) refreshControlValues() {
	if len(h.controls) == 0 {
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		state.hasValue = false
		state.value = "--"
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my-h.controlsTop(), state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my-h.controlsTop(), state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

// controlsTop is where drawRecord left off on the last frame.
func (h *HUD) controlsTop() int { return h.recordBottom }

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	target, ok := nextValue(state, direction)
	if !ok {
		return
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter != nil && h.intSetter.SetIntParameter(state.control.Key, int(target)) {
			state.intValue = int(target)
			state.floatValue = target
			state.value = strconv.Itoa(state.intValue)
		}
	case core.ParamTypeFloat:
		if h.floatSetter != nil && h.floatSetter.SetFloatParameter(state.control.Key, target) {
			state.floatValue = target
			state.value = formatFloat(state.control, target)
		}
	}
}

func (h *HUD) drawControls(top int) {
	face := basicfont.Face7x13
	h.recordBottom = top
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, top+labelBaseline, dimColor)
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		rowTop := top + state.top
		text.Draw(h.panel, state.control.Label, face, panelPadding, rowTop+labelBaseline, textColor)
		valueColor := textColor
		if !state.hasValue {
			valueColor = dimColor
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, rowTop+labelBaseline, valueColor)

		_, minusOK := nextValue(state, -1)
		_, plusOK := nextValue(state, 1)
		h.drawButton(state.minusRect.Add(image.Pt(0, top)), "-", state.hasValue && minusOK)
		h.drawButton(state.plusRect.Add(image.Pt(0, top)), "+", state.hasValue && plusOK)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fillRect(rect, []color.RGBA{bg})

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

// layoutControls positions each control row relative to the top of the
// controls section.
func (h *HUD) layoutControls() {
	if len(h.controls) == 0 || h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := i * lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 30
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	textLine       = 15
	sectionGap     = 16
	swatchHeight   = 12
)
