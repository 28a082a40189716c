// Package image implements the image block: presentational glue binding
// upload and media-metadata services to block attributes. The host
// framework owns rendering; this package owns attribute state transitions.
package image

import (
	"context"

	"github.com/porkengine/gutenberg/internal/blocks"
	"github.com/porkengine/gutenberg/internal/log"
	"github.com/porkengine/gutenberg/internal/media"
)

// TypeName is the block's registered type.
const TypeName = "core/image"

// FocusCaption targets the caption input of an image block.
const FocusCaption = "caption"

// Alignments an image block accepts.
var validAlignments = map[string]struct{}{
	"none": {}, "left": {}, "center": {}, "right": {}, "wide": {}, "full": {},
}

// Config wires an image block to its host and services.
type Config struct {
	// SetAttributes mirrors every partial attribute mutation to the host.
	SetAttributes blocks.SetAttrsFunc
	// SetFocus asks the host to move focus within the block.
	SetFocus blocks.SetFocusFunc
	// Uploader handles file uploads; nil disables uploading.
	Uploader media.Uploader
	// Library resolves media metadata by id; nil disables size selection.
	Library media.Reader
}

// Block is an image block instance.
type Block struct {
	cfg     Config
	attrs   blocks.Attributes
	focused bool
}

// New creates an image block with default attributes.
func New(cfg Config) *Block {
	return &Block{
		cfg:   cfg,
		attrs: blocks.Attributes{"align": "none"},
	}
}

var _ blocks.Block = (*Block)(nil)

// Type returns the registered block type name.
func (b *Block) Type() string { return TypeName }

// Attributes returns a copy of the block's attributes.
func (b *Block) Attributes() blocks.Attributes { return b.attrs.Clone() }

// SetAttributes merges partial into the block's attributes and mirrors the
// partial to the host.
func (b *Block) SetAttributes(partial blocks.Attributes) {
	b.attrs = b.attrs.Merge(partial)
	if b.cfg.SetAttributes != nil {
		b.cfg.SetAttributes(partial)
	}
}

// SetFocused records host focus state.
func (b *Block) SetFocused(focused bool) { b.focused = focused }

// Focused reports whether the block holds focus.
func (b *Block) Focused() bool { return b.focused }

// HasImage reports whether an image is attached.
func (b *Block) HasImage() bool {
	_, ok := b.attrs.String("url")
	return ok
}

// UploadFrom hands the files to the upload service and applies the first
// registered item's identity to the block. Upload failures land in the
// "error" attribute; nothing panics or raises.
func (b *Block) UploadFrom(ctx context.Context, files []media.File) {
	if b.cfg.Uploader == nil || len(files) == 0 {
		return
	}
	b.cfg.Uploader.Upload(ctx, files, func(items []*media.Item, err error) {
		if err != nil {
			log.ErrorErr(log.CatBlocks, "image upload failed", err)
			b.SetAttributes(blocks.Attributes{"error": err.Error()})
			return
		}
		if len(items) == 0 {
			return
		}
		item := items[0]
		b.SetAttributes(blocks.Attributes{
			"error":    nil,
			"id":       item.ID,
			"url":      item.URL,
			"alt":      item.Alt,
			"width":    item.Width,
			"height":   item.Height,
			"sizeSlug": media.SlugFull,
		})
	})
}

// SelectSize switches the block to the named size variant of its media
// item. Unknown ids or slugs leave the attributes unchanged.
func (b *Block) SelectSize(ctx context.Context, slug string) {
	if b.cfg.Library == nil {
		return
	}
	id, ok := b.attrs.Int64("id")
	if !ok {
		return
	}
	item, err := b.cfg.Library.ItemByID(ctx, id)
	if err != nil {
		log.ErrorErr(log.CatBlocks, "size lookup failed", err, "id", id)
		return
	}
	variant, ok := item.Size(slug)
	if !ok {
		log.Warn(log.CatBlocks, "unknown size slug", "slug", slug, "id", id)
		return
	}
	b.SetAttributes(blocks.Attributes{
		"url":      variant.URL,
		"width":    variant.Width,
		"height":   variant.Height,
		"sizeSlug": variant.Slug,
	})
}

// UpdateAlignment sets the alignment attribute; invalid values are ignored.
func (b *Block) UpdateAlignment(align string) {
	if _, ok := validAlignments[align]; !ok {
		log.Warn(log.CatBlocks, "ignoring invalid alignment", "align", align)
		return
	}
	b.SetAttributes(blocks.Attributes{"align": align})
}

// UpdateDimensions sets explicit display dimensions. Non-positive values
// reset to the natural size.
func (b *Block) UpdateDimensions(width, height int) {
	if width <= 0 || height <= 0 {
		b.ResetSize()
		return
	}
	b.SetAttributes(blocks.Attributes{"width": width, "height": height})
}

// ConstrainToWidth sets display dimensions to the target width, keeping
// the natural aspect ratio.
func (b *Block) ConstrainToWidth(targetWidth int) {
	w, okW := b.attrs.Int("width")
	h, okH := b.attrs.Int("height")
	if !okW || !okH {
		return
	}
	cw, ch := media.ConstrainDimensions(w, h, targetWidth)
	b.SetAttributes(blocks.Attributes{"width": cw, "height": ch})
}

// ResetSize drops explicit dimensions and returns to the full rendition.
func (b *Block) ResetSize() {
	b.SetAttributes(blocks.Attributes{
		"width":    nil,
		"height":   nil,
		"sizeSlug": media.SlugFull,
	})
}

// SetCaption updates the caption attribute; an empty caption removes it.
func (b *Block) SetCaption(caption string) {
	if caption == "" {
		b.SetAttributes(blocks.Attributes{"caption": nil})
		return
	}
	b.SetAttributes(blocks.Attributes{"caption": caption})
}

// RemoveImage detaches the image, keeping the caption. When the block is
// focused, focus falls back to the caption input so the user is never left
// without a focused, navigable element.
func (b *Block) RemoveImage() {
	b.SetAttributes(blocks.Attributes{
		"id": nil, "url": nil, "alt": nil,
		"width": nil, "height": nil, "sizeSlug": nil, "error": nil,
	})
	if b.focused && b.cfg.SetFocus != nil {
		b.cfg.SetFocus(blocks.FocusDescriptor{Target: FocusCaption})
	}
}
