package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexID is the canonical numeric form of every external identifier
// (conversations, messages, users). The backend is inconsistent about
// representation: the same id arrives as 42 on one path and "42" on another.
// All comparisons and map keys in this module go through FlexID, so a
// representation mismatch can never cause a false negative.
type FlexID int64

func (f FlexID) Int64() int64   { return int64(f) }
func (f FlexID) String() string { return strconv.FormatInt(int64(f), 10) }

// IsZero reports whether the id is unset.
func (f FlexID) IsZero() bool { return f == 0 }

func (f FlexID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(f), 10)), nil
}

// UnmarshalJSON accepts a JSON number, a numeric string, or null.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("identifier %q is not numeric: %w", s, err)
		}
		*f = FlexID(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n)
	return nil
}

// ParseFlexID canonicalizes an identifier given as text.
func ParseFlexID(s string) (FlexID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("identifier %q is not numeric: %w", s, err)
	}
	return FlexID(n), nil
}
