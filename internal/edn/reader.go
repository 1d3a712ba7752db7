package edn

import (
	"fmt"
	"strconv"
	"strings"
)

// ReadError represents a failure to read a value from source text.
// It carries the source position where reading stopped.
type ReadError struct {
	Line    int    // 1-based line of the failure
	Column  int    // 1-based column of the failure
	Message string // human-readable description
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	return fmt.Sprintf("read error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// ReadString reads exactly one value from source text.
// Leading and trailing whitespace and comments are permitted; any other
// trailing content is an error.
func ReadString(src string) (Value, error) {
	r := &reader{src: []rune(src), line: 1, col: 1}
	r.skipSpace()
	v, err := r.readValue()
	if err != nil {
		return nil, err
	}
	r.skipSpace()
	if !r.eof() {
		return nil, r.errorf("unexpected trailing content %q", string(r.peek()))
	}
	return v, nil
}

// reader walks the source rune by rune, tracking position for errors.
type reader struct {
	src  []rune
	pos  int
	line int
	col  int
}

func (r *reader) eof() bool {
	return r.pos >= len(r.src)
}

func (r *reader) peek() rune {
	return r.src[r.pos]
}

func (r *reader) peekAt(offset int) (rune, bool) {
	if r.pos+offset >= len(r.src) {
		return 0, false
	}
	return r.src[r.pos+offset], true
}

func (r *reader) next() rune {
	ch := r.src[r.pos]
	r.pos++
	if ch == '\n' {
		r.line++
		r.col = 1
	} else {
		r.col++
	}
	return ch
}

func (r *reader) errorf(format string, args ...any) *ReadError {
	return &ReadError{Line: r.line, Column: r.col, Message: fmt.Sprintf(format, args...)}
}

// skipSpace consumes whitespace, commas, and line comments.
// Commas are whitespace in this notation.
func (r *reader) skipSpace() {
	for !r.eof() {
		ch := r.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == ',':
			r.next()
		case ch == ';':
			for !r.eof() && r.peek() != '\n' {
				r.next()
			}
		default:
			return
		}
	}
}

func (r *reader) readValue() (Value, error) {
	if r.eof() {
		return nil, r.errorf("unexpected end of input")
	}
	ch := r.peek()
	switch {
	case ch == '[':
		r.next()
		items, err := r.readSeq(']')
		if err != nil {
			return nil, err
		}
		return Vector(items), nil
	case ch == '(':
		r.next()
		items, err := r.readSeq(')')
		if err != nil {
			return nil, err
		}
		return List(items), nil
	case ch == '{':
		r.next()
		return r.readMap()
	case ch == '#':
		if nxt, ok := r.peekAt(1); ok && nxt == '{' {
			r.next()
			r.next()
			return r.readSet()
		}
		return nil, r.errorf("unsupported dispatch %q", "#")
	case ch == '"':
		return r.readString()
	case ch == ':':
		return r.readKeyword()
	case isDigit(ch):
		return r.readNumber()
	case ch == '+' || ch == '-':
		if nxt, ok := r.peekAt(1); ok && isDigit(nxt) {
			return r.readNumber()
		}
		return r.readSymbol()
	case ch == ']' || ch == ')' || ch == '}':
		return nil, r.errorf("unexpected %q", string(ch))
	default:
		return r.readSymbol()
	}
}

// readSeq reads values until the closing delimiter, which has not been
// consumed yet. The opening delimiter already has been.
func (r *reader) readSeq(close rune) ([]Value, error) {
	var items []Value
	for {
		r.skipSpace()
		if r.eof() {
			return nil, r.errorf("unterminated sequence, expected %q", string(close))
		}
		if r.peek() == close {
			r.next()
			return items, nil
		}
		v, err := r.readValue()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
}

func (r *reader) readMap() (Value, error) {
	var m Map
	for {
		r.skipSpace()
		if r.eof() {
			return nil, r.errorf("unterminated map")
		}
		if r.peek() == '}' {
			r.next()
			return m, nil
		}
		key, err := r.readValue()
		if err != nil {
			return nil, err
		}
		r.skipSpace()
		if r.eof() || r.peek() == '}' {
			return nil, r.errorf("map has a key with no value")
		}
		val, err := r.readValue()
		if err != nil {
			return nil, err
		}
		if _, dup := m.Get(key); dup {
			return nil, r.errorf("duplicate map key %s", WriteString(key))
		}
		m = append(m, MapEntry{Key: key, Value: val})
	}
}

func (r *reader) readSet() (Value, error) {
	var s Set
	for {
		r.skipSpace()
		if r.eof() {
			return nil, r.errorf("unterminated set")
		}
		if r.peek() == '}' {
			r.next()
			return s, nil
		}
		v, err := r.readValue()
		if err != nil {
			return nil, err
		}
		for _, existing := range s {
			if Equal(existing, v) {
				return nil, r.errorf("duplicate set member %s", WriteString(v))
			}
		}
		s = append(s, v)
	}
}

func (r *reader) readString() (Value, error) {
	r.next() // opening quote
	var sb strings.Builder
	for {
		if r.eof() {
			return nil, r.errorf("unterminated string")
		}
		ch := r.next()
		switch ch {
		case '"':
			return String(sb.String()), nil
		case '\\':
			if r.eof() {
				return nil, r.errorf("unterminated escape")
			}
			esc := r.next()
			switch esc {
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			case 'r':
				sb.WriteRune('\r')
			case '"':
				sb.WriteRune('"')
			case '\\':
				sb.WriteRune('\\')
			default:
				return nil, r.errorf("invalid escape %q", string(esc))
			}
		default:
			sb.WriteRune(ch)
		}
	}
}

func (r *reader) readKeyword() (Value, error) {
	r.next() // colon
	tok := r.readToken()
	if tok == "" {
		return nil, r.errorf("empty keyword")
	}
	ns, name, ok := splitNamespace(tok)
	if !ok {
		return nil, r.errorf("malformed keyword :%s", tok)
	}
	return Keyword{Namespace: ns, Name: name}, nil
}

func (r *reader) readNumber() (Value, error) {
	tok := r.readToken()
	if strings.ContainsAny(tok, ".eE") {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, r.errorf("invalid number %q", tok)
		}
		return Float(f), nil
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil, r.errorf("invalid number %q", tok)
	}
	return Int(n), nil
}

func (r *reader) readSymbol() (Value, error) {
	tok := r.readToken()
	if tok == "" {
		return nil, r.errorf("unexpected end of input")
	}
	switch tok {
	case "nil":
		return Nil{}, nil
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	}
	ns, name, ok := splitNamespace(tok)
	if !ok {
		return nil, r.errorf("malformed symbol %s", tok)
	}
	return Symbol{Namespace: ns, Name: name}, nil
}

// readToken consumes runes until a delimiter or whitespace.
func (r *reader) readToken() string {
	var sb strings.Builder
	for !r.eof() && !isDelimiter(r.peek()) {
		sb.WriteRune(r.next())
	}
	return sb.String()
}

// splitNamespace splits "ns/name" into its parts. A bare "/" is the
// division symbol and has no namespace. Multiple slashes are malformed.
func splitNamespace(tok string) (ns, name string, ok bool) {
	if tok == "/" {
		return "", "/", true
	}
	idx := strings.Index(tok, "/")
	if idx < 0 {
		return "", tok, true
	}
	ns, name = tok[:idx], tok[idx+1:]
	if ns == "" || name == "" || strings.Contains(name, "/") {
		return "", "", false
	}
	return ns, name, true
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isDelimiter(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', ',', '[', ']', '(', ')', '{', '}', '"', ';':
		return true
	}
	return false
}
