package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Number is a float64 that tolerates JSON numbers arriving as strings.
// The storage layer may hand NUMERIC columns back as strings, and clients
// occasionally submit quoted numbers; both decode to the same value.
// It always marshals as a plain JSON number.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("invalid numeric value %q", str)
		}
		*n = Number(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}
