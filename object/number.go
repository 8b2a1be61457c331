package object

import (
	"strconv"
	"strings"
)

// Float is an IEEE-754 double.
type Float struct{ V float64 }

func NewFloat(f float64) *Float { return &Float{V: f} }

// ParseFloat parses decimal text (as produced by the lexer) into a Float.
func ParseFloat(text string) (*Float, bool) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, false
	}
	return &Float{V: v}, true
}

func (f *Float) Class() Class { return ClassNumber }
func (f *Float) Truthy() bool { return f.V != 0 }

// Format always includes a decimal point, even for whole-valued floats
// (2.0 formats as "2." not "2"), so re-lexing the text produces a Float
// literal rather than an Integer one.
func (f *Float) Format() string {
	s := strconv.FormatFloat(f.V, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += "."
	}
	return s
}
