package adapter

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/philipp01105/slug/core"
)

// appendKV appends " key=value". Strings that would be ambiguous in
// key=value text are quoted.
func appendKV(dst []byte, key string, value any) []byte {
	dst = append(dst, ' ')
	dst = append(dst, key...)
	dst = append(dst, '=')
	if s, ok := value.(string); ok {
		if needsQuoting(s) {
			return strconv.AppendQuote(dst, s)
		}
		return append(dst, s...)
	}
	return core.AppendPart(dst, value)
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	if !utf8.ValidString(s) {
		return true
	}
	return strings.ContainsAny(s, " =\"\t\r\n")
}
