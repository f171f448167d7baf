package dsl

import (
	"encoding/json"
	"math"
	"strconv"

	dekode "github.com/corefold/dekode"
)

// numericValue coerces raw to a float64. Accepted: Go numerics, json.Number,
// and numeric strings. NaN and infinities are rejected.
func numericValue(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return finite(f)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return finite(f)
	default:
		return 0, false
	}
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// boolValue interprets raw under the boolean truth table: bool verbatim, the
// string forms "true"/"false"/"1"/"0", numeric 1/0, and nil (absent), which
// is false.
func boolValue(raw any) (bool, bool) {
	switch b := raw.(type) {
	case nil:
		return false, true
	case bool:
		return b, true
	case string:
		switch b {
		case "true", "1":
			return true, true
		case "false", "0":
			return false, true
		}
		return false, false
	}
	if f, ok := numericValue(raw); ok {
		switch f {
		case 1:
			return true, true
		case 0:
			return false, true
		}
	}
	return false, false
}

// stringValue stringifies raw. Accepted: strings verbatim, bools, and
// anything numeric-coercible; numbers render in their shortest
// round-trippable form, json.Number keeps its wire text.
func stringValue(raw any) (string, bool) {
	switch raw.(type) {
	case string, bool, json.Number:
		return dekode.RawString(raw), true
	}
	if _, ok := numericValue(raw); ok {
		return dekode.RawString(raw), true
	}
	return "", false
}
