package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

type numericKind uint8

const (
	numericAbsent numericKind = iota
	numericNumber
	numericText
)

// Numeric is a numeric-ish input field as it arrived: a number, free text that
// may carry currency symbols or separators, or nothing at all. The zero value
// is absent. Conversion to a float happens in one place, normalize.ParseNumber.
type Numeric struct {
	kind numericKind
	num  float64
	text string
}

// NumberValue returns a Numeric holding a number.
func NumberValue(v float64) Numeric {
	return Numeric{kind: numericNumber, num: v}
}

// TextValue returns a Numeric holding raw text such as "$1,200,000".
func TextValue(s string) Numeric {
	return Numeric{kind: numericText, text: s}
}

// IsZero reports whether the field is absent.
func (n Numeric) IsZero() bool {
	return n.kind == numericAbsent
}

// Number returns the value when the field arrived as a number.
func (n Numeric) Number() (float64, bool) {
	return n.num, n.kind == numericNumber
}

// Text returns the value when the field arrived as text.
func (n Numeric) Text() (string, bool) {
	return n.text, n.kind == numericText
}

// Filled reports whether the field counts as populated for completeness
// checks. A numeric zero counts as empty; any non-blank text, including "0",
// counts as populated.
func (n Numeric) Filled() bool {
	switch n.kind {
	case numericNumber:
		return n.num != 0
	case numericText:
		return strings.TrimSpace(n.text) != ""
	default:
		return false
	}
}

// Raw returns the value as it should be echoed back to a user: text
// verbatim, numbers in shortest decimal form, absent as "".
func (n Numeric) Raw() string {
	switch n.kind {
	case numericNumber:
		return strconv.FormatFloat(n.num, 'f', -1, 64)
	case numericText:
		return n.text
	default:
		return ""
	}
}

func (n Numeric) String() string {
	return n.Raw()
}

// MarshalJSON emits the value in the kind it arrived as.
func (n Numeric) MarshalJSON() ([]byte, error) {
	switch n.kind {
	case numericNumber:
		return []byte(strconv.FormatFloat(n.num, 'f', -1, 64)), nil
	case numericText:
		return json.Marshal(n.text)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a string, a number or null. Any other JSON value
// (bool, object, array) decodes as absent rather than failing.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*n = Numeric{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*n = TextValue(s)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = NumberValue(f)
	}
	return nil
}
