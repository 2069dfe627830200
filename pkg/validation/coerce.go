package validation

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Number is a float64 that also accepts string-encoded numbers in JSON
// payloads, e.g. "49.99". Clients coming from form-based frontends send
// both shapes.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*n = Number(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("cannot parse %q as number", v)
		}
		*n = Number(f)
	default:
		return fmt.Errorf("cannot parse %T as number", raw)
	}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(n))
}

// Boolean accepts JSON booleans as well as string encodings understood by
// strconv.ParseBool ("true", "1", "0", ...).
type Boolean bool

func (b *Boolean) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case bool:
		*b = Boolean(v)
	case string:
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("cannot parse %q as boolean", v)
		}
		*b = Boolean(parsed)
	default:
		return fmt.Errorf("cannot parse %T as boolean", raw)
	}
	return nil
}

func (b Boolean) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}
