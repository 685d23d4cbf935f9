package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON stores an arbitrary JSON document in a text column.
type JSON json.RawMessage

// Value implements driver.Valuer.
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

// Scan implements sql.Scanner.
func (j *JSON) Scan(value any) error {
	if value == nil {
		*j = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*j = JSON(append([]byte(nil), v...))
	case string:
		*j = JSON(v)
	default:
		return fmt.Errorf("unsupported JSON column type %T", value)
	}
	return nil
}

// MarshalJSON returns j as the JSON encoding it already holds.
func (j JSON) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

// UnmarshalJSON stores data verbatim.
func (j *JSON) UnmarshalJSON(data []byte) error {
	*j = JSON(append([]byte(nil), data...))
	return nil
}

// MustJSON marshals v, panicking on failure. Intended for values that are
// always encodable (maps and slices of basic types).
func MustJSON(v any) JSON {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return JSON(b)
}

// FlexString decodes from either a JSON string or a JSON number. Retailer
// APIs disagree on whether product ids are numeric.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = FlexString(n.String())
	return nil
}

// String returns the plain string value.
func (s FlexString) String() string { return string(s) }
