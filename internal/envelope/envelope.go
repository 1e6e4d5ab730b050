// Package envelope checks that client-submitted strings have the shape of
// an encrypted envelope. It never decrypts: the server holds no keys.
//
// An envelope is a version digit, a dot, then one or more base64 segments
// (standard alphabet, standard padding) separated by '|':
//
//	2.<base64 iv>|<base64 ciphertext>
package envelope

import (
	"regexp"

	"github.com/heartmarshall/agenda-backend/internal/domain"
)

// MessageNotEnvelope is the field message reported for rejected values.
const MessageNotEnvelope = "not an encrypted envelope"

const segment = `(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{4}|[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)`

var grammar = regexp.MustCompile(`^[0-9]\.` + segment + `(?:\|` + segment + `)*$`)

// LooksLikeEnvelope reports whether s matches the envelope grammar in full.
func LooksLikeEnvelope(s string) bool {
	return grammar.MatchString(s)
}

// Field is a named value to check.
type Field struct {
	Name  string
	Value string
}

// F is shorthand for building a Field.
func F(name, value string) Field {
	return Field{Name: name, Value: value}
}

// Opt returns a single-element slice when value is non-nil and nothing
// otherwise, so optional fields can be spread into Violations.
func Opt(name string, value *string) []Field {
	if value == nil {
		return nil
	}
	return []Field{{Name: name, Value: *value}}
}

// Violations checks every field and returns one FieldError per rejected
// value. It always inspects all fields so the caller sees the full set.
func Violations(fields ...Field) []domain.FieldError {
	var errs []domain.FieldError
	for _, f := range fields {
		if !LooksLikeEnvelope(f.Value) {
			errs = append(errs, domain.FieldError{Field: f.Name, Message: MessageNotEnvelope})
		}
	}
	return errs
}
