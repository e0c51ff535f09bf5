package services

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// hasValue reports whether raw holds a truthy JSON value.
// Absent, null, "", 0, false, [] and {} all count as missing.
func hasValue(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}

	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return false
	}

	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	case []interface{}:
		return len(val) > 0
	case map[string]interface{}:
		return len(val) > 0
	}
	return true
}

// validateUserID returns raw compacted for echoing back.
func validateUserID(raw json.RawMessage) (json.RawMessage, error) {
	if !hasValue(raw) {
		return nil, ErrUserIDRequired
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, ErrUserIDRequired
	}
	return json.RawMessage(buf.Bytes()), nil
}

// parseCourseID converts integers, numeric strings and numbers (truncated toward zero).
func parseCourseID(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, ErrCourseIDRequired
	}

	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return 0, ErrCourseIDNotInteger
	}

	switch val := v.(type) {
	case json.Number:
		if i, err := strconv.Atoi(val.String()); err == nil {
			return i, nil
		}
		f, err := val.Float64()
		if err != nil {
			return 0, ErrCourseIDNotInteger
		}
		return truncate(f)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, ErrCourseIDNotInteger
		}
		return i, nil
	}
	return 0, ErrCourseIDNotInteger
}

func truncate(f float64) (int, error) {
	t := math.Trunc(f)
	if math.IsNaN(t) || t >= math.MaxInt64 || t < math.MinInt64 {
		return 0, ErrCourseIDNotInteger
	}
	return int(t), nil
}

// parseInterests accepts an absent/null value or any JSON array. It returns
// the array as sent, for echoing, and its string elements as lookup keys.
// Elements of other types are kept in the echo but match nothing.
func parseInterests(raw json.RawMessage) ([]interface{}, []string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []interface{}{}, []string{}, nil
	}

	var items []interface{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&items); err != nil {
		return nil, nil, ErrInterestsInvalid
	}
	if items == nil {
		items = []interface{}{}
	}

	keys := make([]string, 0, len(items))
	for _, item := range items {
		if keyword, ok := item.(string); ok {
			keys = append(keys, keyword)
		}
	}
	return items, keys, nil
}
