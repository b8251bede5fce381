package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/codegen/internal/display"
)

// Preview is the fixed-size surface that shows the last generated code.
// Every Show replaces the previous image; nothing is cached.
type Preview struct {
	surface image.Point

	background  *canvas.Rectangle
	placeholder *canvas.Text
	holder      *fyne.Container
	root        *fyne.Container

	shown image.Image
}

// NewPreview creates an empty preview showing placeholderText
func NewPreview(surface image.Point, placeholderText string) *Preview {
	p := &Preview{surface: surface}

	p.background = canvas.NewRectangle(PreviewBackground)
	p.background.SetMinSize(fyne.NewSize(float32(surface.X), float32(surface.Y)))

	p.placeholder = canvas.NewText(placeholderText, PlaceholderColor)
	p.placeholder.TextSize = PlaceholderTextSize
	p.placeholder.Alignment = fyne.TextAlignCenter

	p.holder = container.NewCenter(p.placeholder)
	p.root = container.NewStack(p.background, p.holder)
	return p
}

// Container returns the canvas object to place in a layout
func (p *Preview) Container() fyne.CanvasObject {
	return p.root
}

// Show fits img to the surface and displays it in place of anything shown before
func (p *Preview) Show(img image.Image) {
	fitted := display.Fit(img, p.surface)
	if fitted == nil {
		p.Clear()
		return
	}

	size := fitted.Bounds().Size()
	view := canvas.NewImageFromImage(fitted)
	view.FillMode = canvas.ImageFillContain
	view.ScaleMode = canvas.ImageScaleSmooth
	view.SetMinSize(fyne.NewSize(float32(size.X), float32(size.Y)))

	p.shown = fitted
	p.holder.Objects = []fyne.CanvasObject{view}
	p.holder.Refresh()
}

// Clear removes the image and shows the placeholder again
func (p *Preview) Clear() {
	p.shown = nil
	p.holder.Objects = []fyne.CanvasObject{p.placeholder}
	p.holder.Refresh()
}

// SetPlaceholder changes the placeholder text
func (p *Preview) SetPlaceholder(text string) {
	p.placeholder.Text = text
	p.placeholder.Refresh()
}

// Shown returns the fitted image currently displayed, or nil
func (p *Preview) Shown() image.Image {
	return p.shown
}
