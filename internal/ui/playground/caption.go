package playground

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/porkengine/gutenberg/internal/dom"
)

// captionInput adapts a bubbles textinput to dom.SimpleInput so the caret
// package can treat the image block's caption as a plain single-line input.
type captionInput struct {
	ti textinput.Model
}

func newCaptionInput(placeholder string) *captionInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	return &captionInput{ti: ti}
}

var _ dom.SimpleInput = (*captionInput)(nil)

func (c *captionInput) Focus() { c.ti.Focus() }

func (c *captionInput) Blur() { c.ti.Blur() }

func (c *captionInput) Text() string { return c.ti.Value() }

// SelectionBounds reports the collapsed cursor; textinput has no expanded
// selections.
func (c *captionInput) SelectionBounds() (int, int) {
	pos := c.ti.Position()
	return pos, pos
}

func (c *captionInput) SetSelectionRange(start, end int) {
	c.ti.SetCursor(start)
}
