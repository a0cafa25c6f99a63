package bigreal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
)

// JSONMode defines the way all values are marshaled into json, see the
// JSONMode* constants. This variable is not thread-safe, so this should
// be changed on program start.
var JSONMode = JSONModeString

const (
	// JSONModeString produces values as decimal strings, like "1234.5678".
	// The fractional part is cut after defaultStringDecimals digits,
	// so a non-terminating value such as 1/3 does not survive a round trip.
	JSONModeString = iota
	// JSONModeRational marshals the reduced components, like
	// {"n":"1","d":"3"}. This form is exact for every finite value.
	JSONModeRational
)

type jsonRational struct {
	N string `json:"n"`
	D string `json:"d"`
}

// MarshalJSON marshals the value according to the current JSONMode.
func (v Value) MarshalJSON() ([]byte, error) {
	switch JSONMode {
	case JSONModeRational:
		s := v.Simplify()
		return json.Marshal(jsonRational{N: s.num.String(), D: s.den.String()})
	default:
		return json.Marshal(v.String())
	}
}

// UnmarshalJSON unmarshals a string or a component object into a value.
func (v *Value) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '{' {
		var r jsonRational
		if err := json.Unmarshal(data, &r); err != nil {
			return err
		}
		num, ok := new(big.Int).SetString(r.N, 10)
		if !ok {
			return fmt.Errorf("bad numerator %q", r.N)
		}
		den, ok := new(big.Int).SetString(r.D, 10)
		if !ok {
			return fmt.Errorf("bad denominator %q", r.D)
		}
		*v = makeValue(num, den)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// a bare number literal
		s = string(data)
	}
	value, err := FromString(s)
	if err != nil {
		return err
	}
	*v = value
	return nil
}
