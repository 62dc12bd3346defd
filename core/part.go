package core

import (
	"encoding"
	"fmt"
	"strconv"
	"time"
)

// AppendPart appends the text form of v to dst. The result matches fmt's
// %v verb, with two exceptions: byte slices are written as raw text, and
// values implementing encoding.TextAppender or encoding.TextMarshaler
// (but not error or fmt.Stringer) are rendered through that interface.
func AppendPart(dst []byte, v any) []byte {
	switch p := v.(type) {
	case nil:
		return append(dst, "<nil>"...)
	case string:
		return append(dst, p...)
	case []byte:
		return append(dst, p...)
	case bool:
		return strconv.AppendBool(dst, p)
	case int:
		return strconv.AppendInt(dst, int64(p), 10)
	case int8:
		return strconv.AppendInt(dst, int64(p), 10)
	case int16:
		return strconv.AppendInt(dst, int64(p), 10)
	case int32:
		return strconv.AppendInt(dst, int64(p), 10)
	case int64:
		return strconv.AppendInt(dst, p, 10)
	case uint:
		return strconv.AppendUint(dst, uint64(p), 10)
	case uint8:
		return strconv.AppendUint(dst, uint64(p), 10)
	case uint16:
		return strconv.AppendUint(dst, uint64(p), 10)
	case uint32:
		return strconv.AppendUint(dst, uint64(p), 10)
	case uint64:
		return strconv.AppendUint(dst, p, 10)
	case float32:
		return strconv.AppendFloat(dst, float64(p), 'g', -1, 32)
	case float64:
		return strconv.AppendFloat(dst, p, 'g', -1, 64)
	case time.Duration:
		return append(dst, p.String()...)
	case error, fmt.Stringer, encoding.TextAppender, encoding.TextMarshaler:
		return appendMethod(dst, v)
	}
	return fmt.Append(dst, v)
}

// appendMethod renders v through its text method. A method that panics,
// as most do on a nil pointer receiver, is retried through fmt, which
// prints "<nil>" or a %!v(PANIC=...) marker instead of unwinding.
func appendMethod(dst []byte, v any) (out []byte) {
	n := len(dst)
	defer func() {
		if recover() != nil {
			out = fmt.Append(dst[:n], v)
		}
	}()

	switch p := v.(type) {
	case error:
		return append(dst, p.Error()...)
	case fmt.Stringer:
		return append(dst, p.String()...)
	case encoding.TextAppender:
		if out, err := p.AppendText(dst); err == nil {
			return out
		}
	case encoding.TextMarshaler:
		if text, err := p.MarshalText(); err == nil {
			return append(dst, text...)
		}
	}
	return fmt.Append(dst[:n], v)
}

// AppendParts appends every part to dst in order, with no separator.
func AppendParts(dst []byte, parts ...any) []byte {
	for _, p := range parts {
		dst = AppendPart(dst, p)
	}
	return dst
}
