package extraction

import "strings"

// The identifier grammar. Every eligible symbol is expected to match
//
//	___finch_bindgen___<package>___<category>___...
//
// a fixed prefix followed by three-underscore-delimited fields. Splitting on
// the delimiter yields an empty leading field, so the meaningful fields start
// at index 2.
const (
	identifierPrefix = "___finch_bindgen"
	fieldDelimiter   = "___"
)

// Field positions within the split identifier.
const (
	fieldPackage    = 2
	fieldCategory   = 3
	fieldClassName  = 4
	fieldMemberKind = 5
	fieldMemberName = 6
)

// categoryClass is the only identifier category currently emitted; other
// values are reserved for future non-class-scoped symbols.
const categoryClass = "class"

// memberCategory selects which member descriptor a class-scoped function
// declaration produces.
type memberCategory string

const (
	memberDrop          memberCategory = "drop"
	memberMethod        memberCategory = "method"
	memberMethodConsume memberCategory = "method_consume"
	memberStatic        memberCategory = "static"
	memberGetter        memberCategory = "getter"
	memberSetter        memberCategory = "setter"
)

// constructorName is the static-function name reserved for the constructor.
const constructorName = "new"

// splitIdentifierFields rejects identifiers that do not start with the fixed
// prefix and returns the delimiter-separated fields otherwise. Decoding is a
// pure function of the identifier string; the same input always yields the
// same fields.
func splitIdentifierFields(identifier string) ([]string, bool) {
	if !strings.HasPrefix(identifier, identifierPrefix) {
		return nil, false
	}
	return strings.Split(identifier, fieldDelimiter), true
}

// hasField reports whether the split result carries a value at the given
// position. Decoded names containing the delimiter sequence produce extra
// fields rather than missing ones, so a short split always means a malformed
// identifier and never an indexing fault.
func hasField(fields []string, position int) bool {
	return position < len(fields)
}
