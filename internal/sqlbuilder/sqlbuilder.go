// Package sqlbuilder assembles the dynamic parts of parameterized SQL
// statements: SET clauses for partial updates and WHERE clauses for
// optional search filters. It builds clause text and value lists under
// Postgres conventions ($n positional placeholders, double-quoted
// identifiers); executing the statement stays with the caller.
//
// Column names and predicate templates must come from static, code-level
// configuration. The builders do not escape identifiers and must never
// be fed user-controlled names.
package sqlbuilder

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNoUpdateData reports an update request that carries no fields.
// Callers surface it as a client-input error.
var ErrNoUpdateData = errors.New("no update data")

// Fragment is one assembled piece of SQL plus the values bound to its
// placeholders. Placeholder $i always refers to Values[i-1].
type Fragment struct {
	Clause string
	Values []Scalar
}

// Empty reports whether the fragment carries no SQL. Callers must omit
// the surrounding keyword (WHERE, SET) entirely for an empty fragment.
func (f Fragment) Empty() bool { return f.Clause == "" }

// Args converts the bound values into a fresh driver-ready slice.
// Callers may append further positional parameters to the result,
// continuing the numbering at $len(Values)+1.
func (f Fragment) Args() []any {
	args := make([]any, len(f.Values))
	for i, v := range f.Values {
		args[i] = v.Value()
	}
	return args
}

// ColumnMap translates logical API field names to physical column names.
// Fields missing from the map keep their logical name verbatim, so maps
// only list the fields whose spellings differ.
type ColumnMap map[string]string

func (m ColumnMap) resolve(name string) string {
	if col, ok := m[name]; ok {
		return col
	}
	return name
}

// UpdateClause turns a set of field updates into a SET clause fragment:
//
//	"first_name"=$1, "age"=$2
//
// with the bound values in matching order. The caller interpolates the
// clause into its UPDATE statement and appends its own row selector,
// numbering it $len(Values)+1. An empty or nil set is an error: an
// UPDATE with no assignments is always a caller bug or bad client input.
func UpdateClause(updates *UpdateSet, columns ColumnMap) (Fragment, error) {
	if updates.Len() == 0 {
		return Fragment{}, ErrNoUpdateData
	}
	assignments := make([]string, 0, updates.Len())
	values := make([]Scalar, 0, updates.Len())
	for _, name := range updates.names {
		values = append(values, updates.values[name])
		assignments = append(assignments, quoteIdent(columns.resolve(name))+"="+placeholder(len(values)))
	}
	return Fragment{Clause: strings.Join(assignments, ", "), Values: values}, nil
}

// Criteria holds the recognized filter keys present on a request, already
// validated and type-coerced by the API layer.
type Criteria map[string]Scalar

// FilterRule declares how one recognized filter key becomes a SQL
// predicate. Template is the predicate text with a single ? marking where
// the bound value's placeholder goes. Transform, when set, derives the
// bound value from the criteria value.
type FilterRule struct {
	Key       string
	Template  string
	Transform func(Scalar) Scalar
}

// FilterClause turns the present filter criteria into a WHERE clause
// fragment, evaluating rules in their declared order. Criteria keys
// without a rule are ignored; rules whose key is absent contribute
// nothing. Zero matching rules yield an empty fragment: no filtering,
// not an error.
func FilterClause(criteria Criteria, rules []FilterRule) Fragment {
	var predicates []string
	var values []Scalar
	for _, rule := range rules {
		value, ok := criteria[rule.Key]
		if !ok {
			continue
		}
		if rule.Transform != nil {
			value = rule.Transform(value)
		}
		values = append(values, value)
		predicates = append(predicates, strings.Replace(rule.Template, "?", placeholder(len(values)), 1))
	}
	if len(predicates) == 0 {
		return Fragment{}
	}
	return Fragment{Clause: strings.Join(predicates, " AND "), Values: values}
}

// ContainsPattern wraps a text value in % wildcards for ILIKE partial
// matching. Non-text values pass through unchanged.
func ContainsPattern(v Scalar) Scalar {
	if v.kind != KindText {
		return v
	}
	return Text("%" + v.text + "%")
}

// BindLiteral returns a transform that discards the criteria value and
// binds the given literal instead, for rules where only the key's
// presence matters.
func BindLiteral(v Scalar) func(Scalar) Scalar {
	return func(Scalar) Scalar { return v }
}

// quoteIdent wraps a column name in double quotes. Names come from static
// maps, never user input, so no escaping is performed.
func quoteIdent(name string) string { return `"` + name + `"` }

func placeholder(n int) string { return "$" + strconv.Itoa(n) }
