package firefly

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// amount decodes Firefly monetary values, which are serialized as strings
// ("100.50") but may appear as plain numbers or null.
type amount struct {
	value float64
	valid bool
}

func (a *amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = amount{}
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}

		s = strings.TrimSpace(s)
		if s == "" {
			*a = amount{}
			return nil
		}

		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", s, err)
		}

		*a = amount{value: v, valid: true}

		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("invalid amount %s: %w", b, err)
	}

	*a = amount{value: v, valid: true}

	return nil
}

func (a amount) ptr() *float64 {
	if !a.valid {
		return nil
	}

	v := a.value

	return &v
}
