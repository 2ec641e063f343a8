package sqlbuilder

// Kind identifies the concrete type carried by a Scalar.
type Kind uint8

const (
	KindNull Kind = iota
	KindText
	KindInt
	KindReal
	KindBool
)

// Scalar is a typed SQL parameter value. The set of kinds is closed:
// every value the API layer can hand to a statement is text, integer,
// real, boolean or null.
type Scalar struct {
	kind Kind
	text string
	num  int64
	real float64
	flag bool
}

// Text returns a text Scalar.
func Text(v string) Scalar { return Scalar{kind: KindText, text: v} }

// Int returns an integer Scalar.
func Int(v int64) Scalar { return Scalar{kind: KindInt, num: v} }

// Real returns a floating-point Scalar.
func Real(v float64) Scalar { return Scalar{kind: KindReal, real: v} }

// Bool returns a boolean Scalar.
func Bool(v bool) Scalar { return Scalar{kind: KindBool, flag: v} }

// Null returns the SQL NULL Scalar. The zero Scalar is also NULL.
func Null() Scalar { return Scalar{} }

// Kind reports which kind of value the Scalar holds.
func (s Scalar) Kind() Kind { return s.kind }

// IsNull reports whether the Scalar is SQL NULL.
func (s Scalar) IsNull() bool { return s.kind == KindNull }

// Value returns the native Go value for the database driver:
// string, int64, float64, bool, or nil.
func (s Scalar) Value() any {
	switch s.kind {
	case KindText:
		return s.text
	case KindInt:
		return s.num
	case KindReal:
		return s.real
	case KindBool:
		return s.flag
	default:
		return nil
	}
}
