package util

import (
	"encoding/json"
	"io"
	"strings"
)

// EncodeJSON only fails for values that cannot be serialized, which is a
// programming error.
func EncodeJSON(v any) []byte {
	b, err := json.Marshal(v)
	FailOnError(err)
	return b
}

func DecodeJSON(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}

func FailOnError(err error) {
	if err != nil {
		panic(err)
	}
}

// SplitTrim splits s on sep, trims every entry and drops the empty ones.
func SplitTrim(s, sep string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
