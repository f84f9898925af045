package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Record is a single row or request body keyed by column name
type Record map[string]any

// Has reports whether field is present with a non-null value
func (r Record) Has(field string) bool {
	v, ok := r[field]
	return ok && v != nil
}

// Filled reports whether field is present, non-null and not an empty string
func (r Record) Filled(field string) bool {
	if !r.Has(field) {
		return false
	}
	if s, ok := r[field].(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return true
}

// String returns the field rendered as a string. Numbers keep their literal form.
func (r Record) String(field string) (string, bool) {
	if !r.Has(field) {
		return "", false
	}
	switch v := r[field].(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case []byte:
		return string(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return fmt.Sprint(v), true
	}
}

// Int returns the field as a whole number. Numeric strings are accepted,
// fractional values are not.
func (r Record) Int(field string) (int64, bool) {
	if !r.Has(field) {
		return 0, false
	}
	switch v := r[field].(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, true
		}
		f, err := v.Float64()
		if err != nil || f != math.Trunc(f) {
			return 0, false
		}
		return int64(f), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

// Float returns the field as a number. Numeric strings are accepted.
func (r Record) Float(field string) (float64, bool) {
	if !r.Has(field) {
		return 0, false
	}
	var (
		f   float64
		err error
	)
	switch v := r[field].(type) {
	case json.Number:
		f, err = v.Float64()
	case float64:
		f = v
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return 0, false
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Time parses the field using the layouts accepted from console forms
func (r Record) Time(field string) (time.Time, bool) {
	if !r.Has(field) {
		return time.Time{}, false
	}
	switch v := r[field].(type) {
	case time.Time:
		return v, true
	case string:
		t, err := ParseTime(v)
		return t, err == nil
	}
	return time.Time{}, false
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime accepts RFC 3339 and the zone-less layouts produced by HTML
// date and datetime-local inputs. Zone-less values are read as UTC.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q", s)
}

// Only returns a copy holding just the given fields that are present in r
func (r Record) Only(fields []string) Record {
	out := make(Record, len(fields))
	for _, f := range fields {
		if v, ok := r[f]; ok {
			out[f] = Bindable(v)
		}
	}
	return out
}

// Bindable turns decoder-specific values into types every SQL driver binds
func Bindable(v any) any {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return f
		}
		return n.String()
	case bool, string, float64, int64, int, time.Time, nil:
		return v
	default:
		// nested objects and arrays are stored as their JSON text
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}
