package schema

// Kind identifies one of the primitive types usable in attribute
// declarations.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt64
	KindUint64
	KindDouble
	KindString
)

// String returns the kind's canonical spelling.
func (k Kind) String() string {
	switch k {
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// GenType is any type usable as an attribute type: one of the primitive
// singletons or a *Node. The set is closed; generators dispatch over the
// two variants and over Kind for primitives.
type GenType interface {
	// TypeName returns the type's schema-level name. Targets map types to
	// their own spellings and use TypeName only for diagnostics and
	// node references.
	TypeName() string

	genType()
}

// Primitive is a built-in scalar type. Primitives are compared by
// identity: every attribute referencing a given primitive references the
// same singleton value below.
type Primitive struct {
	kind Kind
	name string
}

// The primitive singletons. Attribute declarations must use these exact
// values; a Primitive constructed any other way resolves to no target
// spelling.
var (
	Int64  = &Primitive{kind: KindInt64, name: "int64"}
	Uint64 = &Primitive{kind: KindUint64, name: "uint64"}
	Double = &Primitive{kind: KindDouble, name: "double"}
	String = &Primitive{kind: KindString, name: "string"}

	// Float64 is an alias for Double: the same value, so identity
	// comparison treats the two names as one type.
	Float64 = Double
)

// Kind returns the primitive's kind.
func (p *Primitive) Kind() Kind { return p.kind }

// TypeName returns the primitive's canonical name.
func (p *Primitive) TypeName() string { return p.name }

func (p *Primitive) genType() {}
