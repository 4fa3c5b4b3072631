package writer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_BasicWriting(t *testing.T) {
	// Test: basic write operations concatenate
	w := New()

	w.Write("hello")
	w.Write(" world")

	assert.Equal(t, "hello world", w.String())
}

func TestWriter_EmptyWriteIsNoop(t *testing.T) {
	// Test: writing the empty string changes neither buffer nor line state
	w := New()

	w.Write("")
	assert.Equal(t, "", w.String())

	restore := w.Prefix("> ")
	w.Write("")
	w.Write("x")
	restore()

	assert.Equal(t, "> x", w.String())
}

func TestWriter_WriteLine(t *testing.T) {
	// Test: WriteLine adds a trailing newline
	w := New()

	w.WriteLine("line1")
	w.WriteLine("line2")

	assert.Equal(t, "line1\nline2\n", w.String())
}

func TestWriter_PrefixAppliesAtLineStart(t *testing.T) {
	// Test: the prefix is emitted before the first byte of every line
	w := New()

	restore := w.Prefix("/// ")
	w.WriteLine("Test API.")
	restore()

	assert.Equal(t, "/// Test API.\n", w.String())
}

func TestWriter_MultilineWrite(t *testing.T) {
	// Test: a single write containing newlines re-emits the prefix after
	// every interior line break
	w := New()

	restore := w.Prefix("P")
	w.Write("a\nb\n")
	restore()

	assert.Equal(t, "Pa\nPb\n", w.String())
}

func TestWriter_TrailingNewlineDoesNotDanglePrefix(t *testing.T) {
	// Test: the final newline of a write does not emit a prefix for a line
	// nothing was written to
	w := New()

	restore := w.Prefix("  ")
	w.WriteLine("x")
	restore()
	w.WriteLine("y")

	assert.Equal(t, "  x\ny\n", w.String())
}

func TestWriter_NewlineOnlyWrite(t *testing.T) {
	// Test: writing a bare newline at line start emits the current prefix
	w := New()

	restore := w.Prefix("// ")
	w.WriteLine("a")
	w.WriteLine("")
	w.WriteLine("b")
	restore()

	assert.Equal(t, "// a\n// \n// b\n", w.String())
}

func TestWriter_SplitLineAcrossWrites(t *testing.T) {
	// Test: a line assembled from several writes gets one prefix
	w := New()

	restore := w.Prefix("  ")
	w.Write("int64_t")
	w.Write(" r")
	w.WriteLine(";")
	restore()

	assert.Equal(t, "  int64_t r;\n", w.String())
}

func TestWriter_NestedPrefixes(t *testing.T) {
	// Test: prefixes compose in the order entered and unwind in reverse
	w := New()

	restoreIndent := w.Indent(2)
	restoreComment := w.Prefix("// ")
	w.WriteLine("x")
	restoreComment()
	w.WriteLine("y")
	restoreIndent()
	w.WriteLine("z")

	assert.Equal(t, "  // x\n  y\nz\n", w.String())
}

func TestWriter_PrefixRestoredOnPanic(t *testing.T) {
	// Test: a deferred restore reinstates the prior prefix even when the
	// scoped block panics
	w := New()

	func() {
		defer func() { _ = recover() }()
		defer w.Prefix("  ")()
		defer w.Prefix("// ")()
		w.WriteLine("inside")
		panic("emitter went wrong")
	}()

	w.WriteLine("after")

	assert.Equal(t, "  // inside\nafter\n", w.String())
}

func TestWriter_RestoreIsIdempotent(t *testing.T) {
	// Test: running a restore twice does not strip an enclosing prefix
	w := New()

	restoreOuter := w.Prefix("  ")
	restoreInner := w.Prefix("// ")
	restoreInner()
	restoreInner()
	w.WriteLine("x")
	restoreOuter()

	assert.Equal(t, "  x\n", w.String())
}

func TestWriter_Writef(t *testing.T) {
	// Test: formatted write operations
	w := New()

	w.WriteLinef("class %sNode {", "Color")
	restore := w.Indent(2)
	w.Writef("%s %s;", "int64_t", "r")
	w.Write("\n")
	restore()
	w.WriteLine("};")

	assert.Equal(t, "class ColorNode {\n  int64_t r;\n};\n", w.String())
}

func TestWriter_StringIsSnapshot(t *testing.T) {
	// Test: reading the buffer does not consume it
	w := New()

	w.WriteLine("a")
	first := w.String()
	w.WriteLine("b")

	assert.Equal(t, "a\n", first)
	assert.Equal(t, "a\nb\n", w.String())
	assert.Equal(t, []byte("a\nb\n"), w.Bytes())
}

func TestWriter_Reset(t *testing.T) {
	// Test: Reset clears text and prefix state
	w := New()

	w.Prefix("  ")
	w.WriteLine("content")
	w.Reset()

	w.WriteLine("fresh")
	assert.Equal(t, "fresh\n", w.String())
}

func TestWriter_ComplexExample(t *testing.T) {
	// Test: a representative emission sequence
	w := New()

	func() {
		defer w.Prefix("/// ")()
		w.WriteLine("A color.")
	}()
	w.WriteLine("class ColorNode {")
	w.WriteLine("public:")
	func() {
		defer w.Indent(2)()
		w.WriteLine("int64_t r;")
		func() {
			defer w.Prefix("/// ")()
			w.WriteLine("green channel\nwith a second doc line")
		}()
		w.WriteLine("int64_t g;")
	}()
	w.WriteLine("};")

	expected := "/// A color.\n" +
		"class ColorNode {\n" +
		"public:\n" +
		"  int64_t r;\n" +
		"  /// green channel\n" +
		"  /// with a second doc line\n" +
		"  int64_t g;\n" +
		"};\n"
	require.Equal(t, expected, w.String())
}
