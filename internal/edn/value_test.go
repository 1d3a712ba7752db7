package edn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueSealed(t *testing.T) {
	// Verify all types implement Value (compile-time check via assignment)
	var _ Value = Nil{}
	var _ Value = Bool(true)
	var _ Value = Int(42)
	var _ Value = Float(1.5)
	var _ Value = String("test")
	var _ Value = NewSymbol("?x")
	var _ Value = NewKeyword("find")
	var _ Value = Vector{Int(1)}
	var _ Value = List{Int(1)}
	var _ Value = Set{Int(1)}
	var _ Value = Map{{Key: NewKeyword("a"), Value: Int(1)}}
}

func TestSymbolPredicates(t *testing.T) {
	tests := []struct {
		name    string
		sym     Symbol
		variab  bool
		source  bool
		ruleSet bool
	}{
		{"variable", NewSymbol("?x"), true, false, false},
		{"default source", NewSymbol("$"), false, true, false},
		{"named source", NewSymbol("$db"), false, true, false},
		{"default rule set", NewSymbol("%"), false, false, true},
		{"named rule set", NewSymbol("%rules"), false, false, true},
		{"plain", NewSymbol("foo"), false, false, false},
		{"namespaced not variable", NewNamespacedSymbol("ns", "?x"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.variab, tt.sym.IsVariable())
			assert.Equal(t, tt.source, tt.sym.IsSource())
			assert.Equal(t, tt.ruleSet, tt.sym.IsRuleSet())
		})
	}
}

func TestSymbolMarkers(t *testing.T) {
	assert.True(t, NewSymbol(".").IsScalarMarker())
	assert.True(t, NewSymbol("...").IsEllipsis())
	assert.False(t, NewSymbol("...").IsScalarMarker())
	assert.False(t, NewSymbol(".").IsEllipsis())
	assert.False(t, NewSymbol("..").IsEllipsis())
}

func TestEqualScalars(t *testing.T) {
	assert.True(t, Equal(Nil{}, Nil{}))
	assert.True(t, Equal(Int(1), Int(1)))
	assert.False(t, Equal(Int(1), Int(2)))
	assert.False(t, Equal(Int(1), Float(1)))
	assert.True(t, Equal(NewSymbol("?x"), NewSymbol("?x")))
	assert.False(t, Equal(NewSymbol("find"), NewKeyword("find")))
	assert.True(t, Equal(NewKeyword("find"), NewKeyword("find")))
	assert.False(t, Equal(NewKeyword("find"), Keyword{Namespace: "q", Name: "find"}))
}

func TestEqualCollections(t *testing.T) {
	assert.True(t, Equal(Vector{Int(1), Int(2)}, Vector{Int(1), Int(2)}))
	assert.False(t, Equal(Vector{Int(1), Int(2)}, Vector{Int(2), Int(1)}))
	assert.False(t, Equal(Vector{Int(1)}, List{Int(1)}))

	// Sets are unordered
	assert.True(t, Equal(Set{Int(1), Int(2)}, Set{Int(2), Int(1)}))
	assert.False(t, Equal(Set{Int(1)}, Set{Int(1), Int(2)}))

	// Maps compare by key, not entry order
	a := Map{
		{Key: NewKeyword("x"), Value: Int(1)},
		{Key: NewKeyword("y"), Value: Int(2)},
	}
	b := Map{
		{Key: NewKeyword("y"), Value: Int(2)},
		{Key: NewKeyword("x"), Value: Int(1)},
	}
	assert.True(t, Equal(a, b))
}

func TestMapGet(t *testing.T) {
	m := Map{
		{Key: NewKeyword("find"), Value: Vector{NewSymbol("?x")}},
		{Key: NewKeyword("where"), Value: Vector{}},
	}

	v, ok := m.Get(NewKeyword("find"))
	assert.True(t, ok)
	assert.True(t, Equal(Vector{NewSymbol("?x")}, v))

	_, ok = m.Get(NewKeyword("in"))
	assert.False(t, ok)
}
