package edn

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// WriteString produces the canonical textual form of a value.
//
// The output is deterministic: sequences and maps preserve their order,
// and string contents are NFC normalized so that equal values always
// render identically. This is what golden tests and diagnostics compare.
func WriteString(v Value) string {
	var sb strings.Builder
	writeValue(&sb, v)
	return sb.String()
}

func writeValue(sb *strings.Builder, v Value) {
	switch val := v.(type) {
	case Nil:
		sb.WriteString("nil")
	case Bool:
		if val {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case Int:
		sb.WriteString(strconv.FormatInt(int64(val), 10))
	case Float:
		writeFloat(sb, float64(val))
	case String:
		writeQuoted(sb, string(val))
	case Symbol:
		writeName(sb, val.Namespace, val.Name)
	case Keyword:
		sb.WriteByte(':')
		writeName(sb, val.Namespace, val.Name)
	case Vector:
		writeSeq(sb, "[", "]", val)
	case List:
		writeSeq(sb, "(", ")", val)
	case Set:
		writeSeq(sb, "#{", "}", val)
	case Map:
		sb.WriteByte('{')
		for i, e := range val {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeValue(sb, e.Key)
			sb.WriteByte(' ')
			writeValue(sb, e.Value)
		}
		sb.WriteByte('}')
	}
}

func writeSeq(sb *strings.Builder, open, close string, items []Value) {
	sb.WriteString(open)
	for i, item := range items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		writeValue(sb, item)
	}
	sb.WriteString(close)
}

func writeName(sb *strings.Builder, ns, name string) {
	if ns != "" {
		sb.WriteString(ns)
		sb.WriteByte('/')
	}
	sb.WriteString(name)
}

// writeFloat always renders a decimal point or exponent so the output
// reads back as a float, never an integer.
func writeFloat(sb *strings.Builder, f float64) {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	sb.WriteString(s)
}

func writeQuoted(sb *strings.Builder, s string) {
	s = norm.NFC.String(s)
	sb.WriteByte('"')
	for _, ch := range s {
		switch ch {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(ch)
		}
	}
	sb.WriteByte('"')
}
