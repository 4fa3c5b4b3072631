package schema

import "sync"

// The active schema is process-wide state so that declaration calls need
// not pass a schema handle explicitly. It is kept as a stack: Enter
// pushes, the returned restore pops, and the bottom element is the
// implicit default schema. The mutex keeps the stack consistent if
// schemas are ever built from more than one goroutine.
var (
	activeMu sync.Mutex
	active   = []*Schema{New("")}
)

// Default returns the implicit schema that is active before any Enter.
func Default() *Schema {
	activeMu.Lock()
	defer activeMu.Unlock()
	return active[0]
}

// Active returns the currently active schema.
func Active() *Schema {
	activeMu.Lock()
	defer activeMu.Unlock()
	return active[len(active)-1]
}

// Enter makes s the active schema and returns a restore function that
// reinstates whichever schema was active before. Pair the two with defer
// so the restore runs on every exit path, including panics:
//
//	defer api.Enter()()
//
// Scopes nest; each restore unwinds exactly its own Enter and is a no-op
// if an enclosing scope already unwound past it.
func (s *Schema) Enter() (restore func()) {
	activeMu.Lock()
	defer activeMu.Unlock()

	active = append(active, s)
	depth := len(active)

	return func() {
		activeMu.Lock()
		defer activeMu.Unlock()
		if len(active) >= depth {
			active = active[:depth-1]
		}
	}
}

// Declare appends a new node definition to the active schema and returns
// it for attribute declaration.
func Declare(name, typeKey, doc string) *Node {
	return Active().Declare(name, typeKey, doc)
}
