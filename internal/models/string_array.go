package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringArray stores a []string column as a JSON document. Rows written
// before the JSON encoding existed may hold a bare string or raw text;
// Scan absorbs those into a single-element slice instead of failing the
// whole read.
type StringArray []string

// Value implements driver.Valuer. A nil or empty slice persists as an
// empty JSON array so a later read never sees SQL NULL.
func (sa StringArray) Value() (driver.Value, error) {
	if len(sa) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]string(sa))
	if err != nil {
		return nil, fmt.Errorf("models.StringArray: encode: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (sa *StringArray) Scan(src interface{}) error {
	var text string
	switch v := src.(type) {
	case nil:
		*sa = StringArray{}
		return nil
	case []byte:
		text = string(v)
	case string:
		text = v
	default:
		return fmt.Errorf("models.StringArray: cannot scan %T", src)
	}

	text = strings.TrimSpace(text)
	if text == "" || text == "null" {
		*sa = StringArray{}
		return nil
	}

	var items []string
	if err := json.Unmarshal([]byte(text), &items); err == nil {
		*sa = items
		return nil
	}

	// Legacy column contents: a JSON-encoded string, or plain text that
	// was never encoded at all.
	var single string
	if err := json.Unmarshal([]byte(text), &single); err == nil {
		if single == "" {
			*sa = StringArray{}
		} else {
			*sa = StringArray{single}
		}
		return nil
	}
	*sa = StringArray{text}
	return nil
}
