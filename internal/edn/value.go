package edn

import "strings"

// Value is a sealed interface representing one node of a query tree.
// Only Nil, Bool, Int, Float, String, Symbol, Keyword, Vector, List,
// Set, and Map implement this.
type Value interface {
	ednValue() // Sealed - only these types implement it
}

// Nil represents the nil value.
// Using an explicit type ensures all values satisfy the sealed interface.
type Nil struct{}

func (Nil) ednValue() {}

// Bool represents a boolean value.
type Bool bool

func (Bool) ednValue() {}

// Int represents an integer value. Always int64.
type Int int64

func (Int) ednValue() {}

// Float represents a floating-point value.
type Float float64

func (Float) ednValue() {}

// String represents a string value.
type String string

func (String) ednValue() {}

// Symbol represents an identifier, optionally namespaced (ns/name).
type Symbol struct {
	Namespace string // empty for plain symbols
	Name      string
}

func (Symbol) ednValue() {}

// NewSymbol creates a plain (un-namespaced) symbol.
func NewSymbol(name string) Symbol {
	return Symbol{Name: name}
}

// NewNamespacedSymbol creates a namespaced symbol.
func NewNamespacedSymbol(ns, name string) Symbol {
	return Symbol{Namespace: ns, Name: name}
}

// IsPlain reports whether the symbol has no namespace.
func (s Symbol) IsPlain() bool {
	return s.Namespace == ""
}

// IsVariable reports whether the symbol is a logic variable (plain, "?" prefix).
func (s Symbol) IsVariable() bool {
	return s.IsPlain() && strings.HasPrefix(s.Name, "?")
}

// IsSource reports whether the symbol is a source variable (plain, "$" prefix).
// The default unnamed source is the symbol "$" itself.
func (s Symbol) IsSource() bool {
	return s.IsPlain() && strings.HasPrefix(s.Name, "$")
}

// IsRuleSet reports whether the symbol is a rule-set variable (plain, "%" prefix).
func (s Symbol) IsRuleSet() bool {
	return s.IsPlain() && strings.HasPrefix(s.Name, "%")
}

// IsScalarMarker reports whether the symbol is the scalar marker ".".
func (s Symbol) IsScalarMarker() bool {
	return s.IsPlain() && s.Name == "."
}

// IsEllipsis reports whether the symbol is the collection ellipsis "...".
func (s Symbol) IsEllipsis() bool {
	return s.IsPlain() && s.Name == "..."
}

// Keyword represents a field/clause marker, optionally namespaced.
// Keywords are distinct from symbols: ":find" is a keyword, "find" a symbol.
type Keyword struct {
	Namespace string // empty for plain keywords
	Name      string
}

func (Keyword) ednValue() {}

// NewKeyword creates a plain (un-namespaced) keyword.
func NewKeyword(name string) Keyword {
	return Keyword{Name: name}
}

// Vector represents an ordered sequence delimited by [].
type Vector []Value

func (Vector) ednValue() {}

// List represents an ordered sequence delimited by ().
type List []Value

func (List) ednValue() {}

// Set represents an unordered collection with unique members.
// Members are kept in reader/insertion order for deterministic output;
// uniqueness is structural (Equal).
type Set []Value

func (Set) ednValue() {}

// MapEntry is one key/value pair of a Map.
type MapEntry struct {
	Key   Value
	Value Value
}

// Map represents an insertion-ordered mapping with unique keys.
// A slice of entries rather than a Go map: key types are arbitrary
// values and entry order must be preserved.
type Map []MapEntry

func (Map) ednValue() {}

// Get returns the value for a structurally equal key.
func (m Map) Get(key Value) (Value, bool) {
	for _, e := range m {
		if Equal(e.Key, key) {
			return e.Value, true
		}
	}
	return nil, false
}

// IsKeyword reports whether v is a Keyword.
func IsKeyword(v Value) bool {
	_, ok := v.(Keyword)
	return ok
}

// Equal reports structural equality of two values.
// Sets compare as unordered collections; everything else is ordered.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Float:
		bv, ok := b.(Float)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av == bv
	case Keyword:
		bv, ok := b.(Keyword)
		return ok && av == bv
	case Vector:
		bv, ok := b.(Vector)
		return ok && equalSeq(av, bv)
	case List:
		bv, ok := b.(List)
		return ok && equalSeq(av, bv)
	case Set:
		bv, ok := b.(Set)
		return ok && equalSet(av, bv)
	case Map:
		bv, ok := b.(Map)
		return ok && equalMap(av, bv)
	default:
		return false
	}
}

func equalSeq(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalSet(a, b Set) bool {
	if len(a) != len(b) {
		return false
	}
	for _, av := range a {
		found := false
		for _, bv := range b {
			if Equal(av, bv) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func equalMap(a, b Map) bool {
	if len(a) != len(b) {
		return false
	}
	for _, e := range a {
		bv, ok := b.Get(e.Key)
		if !ok || !Equal(e.Value, bv) {
			return false
		}
	}
	return true
}
