package object

// String is immutable Unicode text.
type String struct{ V string }

func NewString(s string) *String { return &String{V: s} }

func (s *String) Class() Class    { return ClassString }
func (s *String) Truthy() bool    { return s.V != "" }
func (s *String) Format() string  { return "\"" + s.V + "\"" }
func (s *String) HashKey() HashKey { return HashKey{kind: "string", text: s.V} }

// Runes returns the string's content as a slice of single-character
// strings, the unit iteration/indexing works over per the spec's "lazy
// sequence of single-character strings" description.
func (s *String) Runes() []string {
	rs := []rune(s.V)
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}

func (s *String) Len() int { return len([]rune(s.V)) }

// Index returns the single-character String at the given 1-based index.
func (s *String) Index(i *Int) (*String, bool) {
	rs := []rune(s.V)
	idx, ok := i.AsIndex(len(rs))
	if !ok {
		return nil, false
	}
	return NewString(string(rs[idx])), true
}
