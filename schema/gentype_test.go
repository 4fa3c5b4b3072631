package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimitive_Singletons(t *testing.T) {
	// Test: primitives compare equal by identity, not structure
	assert.Same(t, Int64, Int64)
	assert.NotSame(t, Int64, Uint64)

	var typ GenType = Int64
	assert.True(t, typ == Int64)
	assert.False(t, typ == Uint64)
}

func TestPrimitive_Float64Alias(t *testing.T) {
	// Test: Float64 is the same value as Double
	assert.Same(t, Double, Float64)
	assert.Equal(t, KindDouble, Float64.Kind())
	assert.Equal(t, "double", Float64.TypeName())
}

func TestPrimitive_Kinds(t *testing.T) {
	tests := []struct {
		name string
		prim *Primitive
		kind Kind
	}{
		{name: "int64", prim: Int64, kind: KindInt64},
		{name: "uint64", prim: Uint64, kind: KindUint64},
		{name: "double", prim: Double, kind: KindDouble},
		{name: "string", prim: String, kind: KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.prim.Kind())
			assert.Equal(t, tt.name, tt.prim.TypeName())
			assert.Equal(t, tt.name, tt.kind.String())
		})
	}
}

func TestKind_StringInvalid(t *testing.T) {
	// Test: the zero Kind and out-of-range kinds stringify as invalid
	assert.Equal(t, "invalid", KindInvalid.String())
	assert.Equal(t, "invalid", Kind(99).String())
}

func TestNode_IsGenType(t *testing.T) {
	// Test: a node is usable wherever an attribute type is required
	s := New("")
	n := s.Declare("Color", "_color", "")

	var typ GenType = n
	assert.Equal(t, "Color", typ.TypeName())
}
