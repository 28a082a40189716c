package blocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porkengine/gutenberg/internal/pubsub"
)

func TestAttributes_Merge(t *testing.T) {
	attrs := Attributes{"url": "a.png", "width": 100}

	merged := attrs.Merge(Attributes{"width": 200, "align": "center"})

	assert.Equal(t, "a.png", merged["url"])
	assert.Equal(t, 200, merged["width"])
	assert.Equal(t, "center", merged["align"])

	// Original untouched.
	assert.Equal(t, 100, attrs["width"])
	assert.NotContains(t, attrs, "align")
}

func TestAttributes_MergeNilDeletes(t *testing.T) {
	attrs := Attributes{"url": "a.png", "caption": "hi"}

	merged := attrs.Merge(Attributes{"caption": nil})

	assert.NotContains(t, merged, "caption")
	assert.Contains(t, merged, "url")
}

func TestAttributes_NumericCoercion(t *testing.T) {
	attrs := Attributes{"a": 1, "b": int64(2), "c": 3.0, "d": "nope"}

	for key, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		got, ok := attrs.Int(key)
		require.True(t, ok, key)
		assert.Equal(t, want, got)
	}

	_, ok := attrs.Int("d")
	assert.False(t, ok)

	id, ok := attrs.Int64("c")
	require.True(t, ok)
	assert.Equal(t, int64(3), id)
}

type stubBlock struct{ attrs Attributes }

func (b *stubBlock) Type() string                   { return "test/stub" }
func (b *stubBlock) Attributes() Attributes         { return b.attrs }
func (b *stubBlock) SetAttributes(p Attributes)     { b.attrs = b.attrs.Merge(p) }

func TestRegistry_RegisterAndNew(t *testing.T) {
	reg := NewRegistry()

	err := reg.Register("test/stub", func() Block { return &stubBlock{attrs: Attributes{}} })
	require.NoError(t, err)

	b, err := reg.New("test/stub")
	require.NoError(t, err)
	assert.Equal(t, "test/stub", b.Type())
}

func TestRegistry_DuplicateRejected(t *testing.T) {
	reg := NewRegistry()
	factory := func() Block { return &stubBlock{} }

	require.NoError(t, reg.Register("test/stub", factory))
	err := reg.Register("test/stub", factory)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistry_UnknownType(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.New("test/missing")
	require.Error(t, err)
}

func TestRegistry_TypesSorted(t *testing.T) {
	reg := NewRegistry()
	factory := func() Block { return &stubBlock{} }
	require.NoError(t, reg.Register("core/paragraph", factory))
	require.NoError(t, reg.Register("core/image", factory))

	assert.Equal(t, []string{"core/image", "core/paragraph"}, reg.Types())
}

func TestNotifier_PublishesAttributeChanges(t *testing.T) {
	n := NewNotifier()
	defer n.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := n.Attributes().Subscribe(ctx)

	n.PublishAttributes("block-1", Attributes{"url": "a.png"})

	select {
	case event := <-ch:
		assert.Equal(t, pubsub.AttributesEvent, event.Type)
		assert.Equal(t, "block-1", event.Payload.BlockID)
		assert.Equal(t, "a.png", event.Payload.Attrs["url"])
	case <-time.After(100 * time.Millisecond):
		require.Fail(t, "timeout waiting for attribute event")
	}
}

func TestNotifier_PublishesFocusChanges(t *testing.T) {
	n := NewNotifier()
	defer n.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := n.Focus().Subscribe(ctx)

	n.PublishFocus("block-2", FocusDescriptor{Target: "caption"})

	select {
	case event := <-ch:
		assert.Equal(t, pubsub.FocusEvent, event.Type)
		assert.Equal(t, "caption", event.Payload.Focus.Target)
	case <-time.After(100 * time.Millisecond):
		require.Fail(t, "timeout waiting for focus event")
	}
}
