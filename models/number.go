package models

import (
	"bytes"
	"strconv"
)

// Game review submissions come from HTML forms, so numeric fields arrive as
// either JSON numbers or numeric strings. Float64String and Int64String
// accept both and decode absent/null/empty values as zero.

type Float64String float64

func (f *Float64String) UnmarshalJSON(data []byte) error {
	s, ok := numericToken(data)
	if !ok {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = Float64String(v)
	return nil
}

type Int64String int64

func (i *Int64String) UnmarshalJSON(data []byte) error {
	s, ok := numericToken(data)
	if !ok {
		*i = 0
		return nil
	}
	// parse as float first so "2015.0" and 2015.0 both decode
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*i = Int64String(int64(v))
	return nil
}

// numericToken strips surrounding quotes and reports whether data holds a
// parseable value at all.
func numericToken(data []byte) (string, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", false
	}
	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil || s == "" {
			return "", false
		}
		return s, true
	}
	return string(data), true
}
