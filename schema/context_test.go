package schema

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_DefaultIsActive(t *testing.T) {
	// Test: before any Enter, declarations attach to the default schema
	assert.Same(t, Default(), Active())

	n := Declare("Orphan", "_orphan", "")
	entries := Default().Entries()
	assert.Same(t, n, entries[len(entries)-1])
}

func TestContext_EnterRestore(t *testing.T) {
	// Test: Enter redirects declarations; restore reinstates the previous schema
	prev := Active()

	api := New("Test API.")
	restore := api.Enter()
	assert.Same(t, api, Active())

	n := Declare("Color", "_color", "")
	require.Len(t, api.Entries(), 1)
	assert.Same(t, n, api.Entries()[0])

	restore()
	assert.Same(t, prev, Active())
}

func TestContext_NestedScopes(t *testing.T) {
	// Test: scopes nest with stack discipline
	outer := New("outer")
	inner := New("inner")

	restoreOuter := outer.Enter()
	restoreInner := inner.Enter()
	assert.Same(t, inner, Active())

	Declare("A", "_a", "")
	restoreInner()
	assert.Same(t, outer, Active())

	Declare("B", "_b", "")
	restoreOuter()

	require.Len(t, inner.Entries(), 1)
	require.Len(t, outer.Entries(), 1)
	assert.Equal(t, "A", inner.Entries()[0].Name)
	assert.Equal(t, "B", outer.Entries()[0].Name)
}

func TestContext_RestoreIsIdempotent(t *testing.T) {
	// Test: calling restore twice does not unwind an extra level
	outer := New("outer")
	inner := New("inner")

	restoreOuter := outer.Enter()
	restoreInner := inner.Enter()

	restoreInner()
	restoreInner()
	assert.Same(t, outer, Active())

	restoreOuter()
}

func TestContext_RestoreRunsOnPanic(t *testing.T) {
	// Test: deferring the restore reinstates the previous schema even when
	// the scoped block panics
	prev := Active()
	api := New("panics")

	func() {
		defer func() { _ = recover() }()
		defer api.Enter()()
		panic("schema authoring went wrong")
	}()

	assert.Same(t, prev, Active())
}

func TestContext_FullBuild(t *testing.T) {
	// Test: a complete build through the active-schema scope
	api := New("Test API.")

	func() {
		defer api.Enter()()

		color := Declare("Color", "_color", "A color.").
			Attr("r", Int64, "").
			Attr("g", Int64, "").
			Attr("b", Int64, "")

		Declare("Apple", "_apple", "A scrumptious apple.").
			Attr("color", color, "")
	}()

	t.Logf("built schema:\n%s", spew.Sdump(api.Entries()))

	require.NoError(t, api.Err())
	require.Len(t, api.Entries(), 2)
	assert.Equal(t, "Color", api.Entries()[0].Name)
	assert.Equal(t, "Apple", api.Entries()[1].Name)
	assert.Same(t, api.Entries()[0], api.Entries()[1].Attrs()[0].Type)
}
