// Package blocks defines the block abstraction of the editor: typed units
// of content identified by a name, carrying an attribute set mutated
// through partial updates, plus the registry hosts use to instantiate
// them and the pub/sub channels over which mutations are observed.
package blocks

import (
	"github.com/porkengine/gutenberg/internal/log"
	"github.com/porkengine/gutenberg/internal/pubsub"
)

// Block is a unit of editable content.
type Block interface {
	// Type returns the block's registered type name, e.g. "core/image".
	Type() string
	Attributes() Attributes
	// SetAttributes merges a partial attribute set into the block.
	// A nil value deletes the attribute.
	SetAttributes(partial Attributes)
}

// FocusDescriptor names the element within a block that should receive
// focus, e.g. "caption". An empty target means the block's primary
// editable surface.
type FocusDescriptor struct {
	Target string
}

// SetAttrsFunc is the attribute mutation channel a host hands to a block.
type SetAttrsFunc func(partial Attributes)

// SetFocusFunc is the focus channel a host hands to a block.
type SetFocusFunc func(FocusDescriptor)

// AttributeChange is published when a block's attributes mutate.
type AttributeChange struct {
	BlockID string
	Attrs   Attributes
}

// FocusChange is published when focus moves within or onto a block.
type FocusChange struct {
	BlockID string
	Focus   FocusDescriptor
}

// Notifier bundles the brokers over which block mutations are broadcast.
type Notifier struct {
	attrs *pubsub.Broker[AttributeChange]
	focus *pubsub.Broker[FocusChange]
}

// notifierBuffer bounds the undelivered backlog per subscriber. Block
// mutations arrive at keystroke rate, so a small buffer suffices.
const notifierBuffer = 16

// NewNotifier creates a notifier with fresh brokers.
func NewNotifier() *Notifier {
	return &Notifier{
		attrs: pubsub.NewBrokerWithBuffer[AttributeChange](notifierBuffer),
		focus: pubsub.NewBrokerWithBuffer[FocusChange](notifierBuffer),
	}
}

// Attributes returns the attribute change broker.
func (n *Notifier) Attributes() *pubsub.Broker[AttributeChange] { return n.attrs }

// Focus returns the focus change broker.
func (n *Notifier) Focus() *pubsub.Broker[FocusChange] { return n.focus }

// PublishAttributes broadcasts a partial attribute mutation.
func (n *Notifier) PublishAttributes(blockID string, attrs Attributes) {
	n.attrs.Publish(pubsub.AttributesEvent, AttributeChange{BlockID: blockID, Attrs: attrs})
}

// PublishFocus broadcasts a focus change.
func (n *Notifier) PublishFocus(blockID string, fd FocusDescriptor) {
	n.focus.Publish(pubsub.FocusEvent, FocusChange{BlockID: blockID, Focus: fd})
}

// Close shuts down both brokers.
func (n *Notifier) Close() {
	log.Debug(log.CatBlocks, "notifier closing",
		"attrSubs", n.attrs.SubscriberCount(),
		"focusSubs", n.focus.SubscriberCount())
	n.attrs.Close()
	n.focus.Close()
}
