package dekode

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType    = "invalid_type"
	CodeInvalidFormat  = "invalid_format"
	CodeInvalidLiteral = "invalid_literal"
	CodeItemFailed     = "item_failed"
	CodePropertyFailed = "property_failed"
	CodeBindFailed     = "bind_failed"
	CodeParseError     = "parse_error"
)

// Decoder kinds as they appear in messages.
const (
	KindBoolean = "Boolean"
	KindNumber  = "Number"
	KindString  = "String"
	KindDate    = "Date"
	KindLiteral = "Literal"
	KindType    = "Type"
	KindArray   = "Array"
	KindObject  = "Object"
	KindStruct  = "Struct"
)

// Issue represents a single failed decode.
type Issue struct {
	Kind    string // Decoder kind, one of the Kind consts or a custom descriptor kind.
	Code    string // One of the codes listed above.
	Message string // Fully formatted message; Error returns it verbatim.
	Raw     any    // The offending raw value.
	Cause   error  // Optional: inner failure when this issue frames another.
}

func (i *Issue) Error() string { return i.Message }

// Unwrap exposes the inner failure to errors.Is / errors.As.
func (i *Issue) Unwrap() error { return i.Cause }

// WithCause returns a copy of i carrying err as its cause.
func (i *Issue) WithCause(err error) *Issue {
	if err == nil {
		return i
	}
	cp := *i
	cp.Cause = err
	return &cp
}

// AsIssue extracts an *Issue from err, unwrapping as needed.
func AsIssue(err error) (*Issue, bool) {
	var iss *Issue
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// Expected builds the leaf-failure issue:
//
//	"<Kind> Decoder: Expected raw value to be <expectation> but got: <raw>."
func Expected(kind, code, expectation string, raw any) *Issue {
	return &Issue{
		Kind:    kind,
		Code:    code,
		Raw:     raw,
		Message: fmt.Sprintf("%s Decoder: Expected raw value to be %s but got: %s.", kind, expectation, RawString(raw)),
	}
}

// ItemFailed frames an array element failure with its zero-based index.
func ItemFailed(index int, inner error) *Issue {
	return &Issue{
		Kind:    KindArray,
		Code:    CodeItemFailed,
		Cause:   inner,
		Message: fmt.Sprintf("Array Decoder: Item '%d' failed with: \"%s\"", index, inner.Error()),
	}
}

// PropertyFailed frames an object field failure with both the output property
// name and the raw key it was read from.
func PropertyFailed(property, rawKey string, inner error) *Issue {
	return &Issue{
		Kind:    KindObject,
		Code:    CodePropertyFailed,
		Cause:   inner,
		Message: fmt.Sprintf("Object Decoder: Attempted to decode property '%s' from raw key '%s' but failed with: \"%s\"", property, rawKey, inner.Error()),
	}
}

// RawString renders a raw value for embedding in messages. Strings appear
// verbatim (unquoted), nil renders as "null", numbers in their shortest
// round-trippable form.
func RawString(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}
