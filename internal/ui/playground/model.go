// Package playground hosts the editor surface in a Bubble Tea program: a
// vertical list of paragraph and image blocks wired to the caret package
// for cross-block navigation. It is the reference host for the dom
// capabilities; the editing itself is deliberately bare.
package playground

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/porkengine/gutenberg/internal/blocks"
	"github.com/porkengine/gutenberg/internal/blocks/image"
	"github.com/porkengine/gutenberg/internal/caret"
	"github.com/porkengine/gutenberg/internal/config"
	"github.com/porkengine/gutenberg/internal/dom"
	"github.com/porkengine/gutenberg/internal/log"
	"github.com/porkengine/gutenberg/internal/media"
	"github.com/porkengine/gutenberg/internal/platform"
	"github.com/porkengine/gutenberg/internal/pubsub"
)

const (
	defaultWidth = 60
	// imageBoxRows is the rendered height of the image frame, caption
	// row excluded.
	imageBoxRows = 4
	// blockGap is the blank rows between blocks.
	blockGap = 1
)

type blockKind int

const (
	kindParagraph blockKind = iota
	kindImage
)

// blockEntry is one block in the document plus its caret container.
type blockEntry struct {
	id      string
	kind    blockKind
	region  *paragraphRegion // paragraph only
	image   *image.Block     // image only
	caption *captionInput    // image only
}

func (e *blockEntry) container() dom.TextContainer {
	if e.kind == kindParagraph {
		return e.region
	}
	return e.caption
}

func (e *blockEntry) height() int {
	if e.kind == kindParagraph {
		return len(e.region.lines)
	}
	return imageBoxRows + 1
}

// Model is the playground's Bubble Tea model.
type Model struct {
	cfg      config.Config
	registry *blocks.Registry
	notifier *blocks.Notifier
	library  *media.Service

	cancel      context.CancelFunc
	attrEvents  *pubsub.ContinuousListener[blocks.AttributeChange]
	focusEvents *pubsub.ContinuousListener[blocks.FocusChange]
	lastChange  string

	entries []*blockEntry
	focus   int
	width   int
	height  int
}

// New builds a playground with two paragraphs around an image block.
func New(cfg config.Config, library *media.Service) *Model {
	m := &Model{
		cfg:      cfg,
		registry: blocks.NewRegistry(),
		notifier: blocks.NewNotifier(),
		library:  library,
		width:    defaultWidth,
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.attrEvents = pubsub.NewContinuousListener(ctx, m.notifier.Attributes())
	m.focusEvents = pubsub.NewContinuousListener(ctx, m.notifier.Focus())

	if err := m.registry.Register(image.TypeName, m.newImageBlock); err != nil {
		log.ErrorErr(log.CatBlocks, "image block registration failed", err)
	}

	m.entries = []*blockEntry{
		m.newParagraph("p-1", "Every block is its own editable region."),
		m.newImage("img-1"),
		m.newParagraph("p-2", "Arrow past an edge to hop between blocks."),
	}
	m.entries[0].region.hasCaret = true
	m.entries[0].region.Focus()
	m.layout()
	return m
}

func (m *Model) newParagraph(id, text string) *blockEntry {
	return &blockEntry{
		id:     id,
		kind:   kindParagraph,
		region: newParagraphRegion(text, m.width),
	}
}

func (m *Model) newImage(id string) *blockEntry {
	block, err := m.registry.New(image.TypeName)
	if err != nil {
		log.ErrorErr(log.CatBlocks, "image block instantiation failed", err)
		block = m.newImageBlock()
	}
	img := block.(*image.Block)
	return &blockEntry{
		id:      id,
		kind:    kindImage,
		image:   img,
		caption: newCaptionInput("Write a caption…"),
	}
}

// newImageBlock is the registry factory for image blocks.
func (m *Model) newImageBlock() blocks.Block {
	cfg := image.Config{
		SetAttributes: func(partial blocks.Attributes) {
			m.notifier.PublishAttributes(image.TypeName, partial)
		},
		SetFocus: func(fd blocks.FocusDescriptor) {
			m.notifier.PublishFocus(image.TypeName, fd)
		},
	}
	if m.library != nil {
		cfg.Uploader = m.library
		cfg.Library = m.library
	}
	return image.New(cfg)
}

// layout assigns origins to every region, top to bottom.
func (m *Model) layout() {
	y := 0
	for _, e := range m.entries {
		if e.kind == kindParagraph {
			e.region.originX = 0
			e.region.originY = float64(y)
			e.region.width = m.width
		}
		y += e.height() + blockGap
	}
}

func (m *Model) focused() *blockEntry { return m.entries[m.focus] }

// Init implements tea.Model, arming the notifier listeners.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.attrEvents.Listen(), m.focusEvents.Listen())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pubsub.Event[blocks.AttributeChange]:
		m.lastChange = describeChange(msg.Payload)
		return m, m.attrEvents.Listen()

	case pubsub.Event[blocks.FocusChange]:
		m.lastChange = "focus " + msg.Payload.BlockID
		return m, m.focusEvents.Listen()
	}
	return m, nil
}

// describeChange summarizes an attribute mutation for the status bar.
func describeChange(c blocks.AttributeChange) string {
	keys := make([]string, 0, len(c.Attrs))
	for k := range c.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return c.BlockID + " " + strings.Join(keys, ", ")
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.cancel()
		m.notifier.Close()
		return m, tea.Quit

	case "up":
		m.navigateVertical(true)
	case "down":
		m.navigateVertical(false)
	case "left":
		m.navigateHorizontal(true)
	case "right":
		m.navigateHorizontal(false)

	case "home":
		m.caretToLineEdge(true)
	case "end":
		m.caretToLineEdge(false)
	case "ctrl+a", "ctrl+e":
		// Emacs-style jumps only where users expect them natively.
		if platform.IsMac() {
			m.caretToLineEdge(msg.String() == "ctrl+a")
		}

	default:
		m.handleEditKey(msg)
	}
	return m, nil
}

// caretToLineEdge moves the caret to the start or end of the current line
// without leaving the block.
func (m *Model) caretToLineEdge(start bool) {
	entry := m.focused()
	if entry.kind == kindImage {
		offset := 0
		if !start {
			offset = graphemeCount(entry.caption.Text())
		}
		entry.caption.SetSelectionRange(offset, offset)
		return
	}

	r := entry.region
	r.hasCaret = true
	if start {
		r.caretCol = 0
		return
	}
	r.caretCol = graphemeCount(r.lines[r.caretLine])
}

func (m *Model) handleEditKey(msg tea.KeyMsg) {
	entry := m.focused()
	if entry.kind == kindImage {
		// The caption input owns all remaining keys for image blocks.
		entry.caption.ti, _ = entry.caption.ti.Update(msg)
		entry.image.SetCaption(entry.caption.Text())
		return
	}

	region := entry.region
	switch msg.Type {
	case tea.KeyRunes:
		region.insert(string(msg.Runes))
	case tea.KeySpace:
		region.insert(" ")
	case tea.KeyBackspace:
		region.backspace()
	case tea.KeyEnter:
		region.newline()
	}
	m.layout()
}

// navigateVertical moves the caret a row up or down, hopping to the
// adjacent block when the caret sits at the region's vertical edge.
func (m *Model) navigateVertical(reverse bool) {
	entry := m.focused()
	res := caret.VerticalEdge(entry.container(), reverse)

	if !res.IsEdge {
		if entry.kind == kindParagraph {
			delta := 1
			if reverse {
				delta = -1
			}
			entry.region.moveCaret(0, delta)
		}
		return
	}

	next := m.adjacent(reverse)
	if next < 0 {
		return
	}

	m.moveFocus(next)
	caret.PlaceCaretAtVerticalEdge(m.entries[next].container(), reverse, res.Rect, true)
	log.Debug(log.CatUI, "vertical block hop", "from", entry.id, "to", m.entries[next].id, "reverse", reverse)
}

// navigateHorizontal moves the caret one column, hopping blocks at the
// horizontal edge: left from a block start lands at the end of the
// previous block, right from a block end at the start of the next.
func (m *Model) navigateHorizontal(reverse bool) {
	entry := m.focused()

	if !m.atHorizontalHop(entry, reverse) {
		if entry.kind == kindParagraph {
			delta := 1
			if reverse {
				delta = -1
			}
			entry.region.moveCaret(delta, 0)
		} else {
			start, _ := entry.caption.SelectionBounds()
			if reverse {
				entry.caption.SetSelectionRange(start-1, start-1)
			} else {
				entry.caption.SetSelectionRange(start+1, start+1)
			}
		}
		return
	}

	next := m.adjacent(reverse)
	if next < 0 {
		return
	}

	m.moveFocus(next)
	// Entering from the left places the caret at the start; entering
	// from the right at the end.
	caret.PlaceCaretAtHorizontalEdge(m.entries[next].container(), !reverse)
}

// atHorizontalHop reports whether a horizontal move should leave the
// block: the caret package's edge chain plus the host's own column check
// for paragraphs (the chain alone ignores the column by design of the
// edge query).
func (m *Model) atHorizontalHop(entry *blockEntry, reverse bool) bool {
	if !caret.IsHorizontalEdge(entry.container(), reverse) {
		return false
	}
	if entry.kind != kindParagraph {
		return true
	}
	r := entry.region
	if reverse {
		return r.caretCol == 0
	}
	return r.caretCol == graphemeCount(r.lines[r.caretLine])
}

// adjacent returns the index of the neighboring block, -1 at the
// document boundary.
func (m *Model) adjacent(reverse bool) int {
	if reverse {
		if m.focus == 0 {
			return -1
		}
		return m.focus - 1
	}
	if m.focus == len(m.entries)-1 {
		return -1
	}
	return m.focus + 1
}

func (m *Model) moveFocus(next int) {
	cur := m.focused()
	if cur.kind == kindParagraph {
		cur.region.focused = false
	} else {
		cur.caption.Blur()
		cur.image.SetFocused(false)
	}

	m.focus = next
	if e := m.entries[next]; e.kind == kindImage {
		e.image.SetFocused(true)
	}
	m.notifier.PublishFocus(m.entries[next].id, blocks.FocusDescriptor{})
}

// View implements tea.Model.
func (m *Model) View() string {
	highlight := lipgloss.Color(m.cfg.UI.Highlight)
	subtle := lipgloss.Color(m.cfg.UI.Subtle)

	caretStyle := lipgloss.NewStyle().Reverse(true)
	focusedBar := lipgloss.NewStyle().Foreground(highlight).Render("┃ ")
	blurredBar := lipgloss.NewStyle().Foreground(subtle).Render("│ ")

	out := ""
	for i, e := range m.entries {
		bar := blurredBar
		if i == m.focus {
			bar = focusedBar
		}
		switch e.kind {
		case kindParagraph:
			out += m.viewParagraph(e, i == m.focus, bar, caretStyle)
		case kindImage:
			out += m.viewImage(e, i == m.focus, bar, subtle, highlight)
		}
		out += "\n"
	}

	if m.cfg.UI.ShowStatusBar {
		status := fmt.Sprintf("block %d/%d · %s", m.focus+1, len(m.entries), m.blockLabel())
		if m.lastChange != "" {
			status += " · " + m.lastChange
		}
		out += lipgloss.NewStyle().Foreground(subtle).Render(truncateCells(status, m.width))
	}
	return out
}

func (m *Model) blockLabel() string {
	e := m.focused()
	if e.kind == kindParagraph {
		return "core/paragraph"
	}
	return e.image.Type()
}

func (m *Model) viewParagraph(e *blockEntry, focused bool, bar string, caretStyle lipgloss.Style) string {
	out := ""
	r := e.region
	for i, line := range r.lines {
		rendered := truncateCells(line, m.width-2)
		if focused && r.hasCaret && i == r.caretLine {
			rendered = renderWithCaret(line, r.caretCol, caretStyle)
		}
		out += bar + rendered + "\n"
	}
	return out
}

func (m *Model) viewImage(e *blockEntry, focused bool, bar string, subtle, highlight lipgloss.Color) string {
	inner := m.width - 6
	if inner < 10 {
		inner = 10
	}

	body := ""
	attrs := e.image.Attributes()
	if e.image.HasImage() {
		url, _ := attrs.String("url")
		w, _ := attrs.Int("width")
		h, _ := attrs.Int("height")
		align, _ := attrs.String("align")
		body = fmt.Sprintf("%s\n%d×%d · align %s", url, w, h, align)
	} else {
		body = wordwrap.String("No image selected. Upload media to attach one to this block.", inner)
	}
	if msg, ok := attrs.String("error"); ok {
		body += "\n" + wordwrap.String("upload error: "+msg, inner)
	}

	border := subtle
	if focused {
		border = highlight
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(inner).
		Height(imageBoxRows - 2).
		Render(body)

	out := ""
	for _, line := range strings.Split(frame, "\n") {
		out += bar + line + "\n"
	}
	out += bar + e.caption.ti.View() + "\n"
	return out
}

// renderWithCaret styles the grapheme under the caret, appending a styled
// space when the caret sits past the end of the line.
func renderWithCaret(line string, col int, style lipgloss.Style) string {
	before, rest := splitGraphemes(line, col)
	if rest == "" {
		return before + style.Render(" ")
	}
	cell, after := splitGraphemes(rest, 1)
	return before + style.Render(cell) + after
}
