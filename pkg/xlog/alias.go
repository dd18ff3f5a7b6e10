package xlog

import (
	"fmt"
	"log/slog"
)

// Attr is an alias of slog.Attr.
type Attr = slog.Attr

// Level aliases of the slog levels so that callers do not need to import
// log/slog alongside this package.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// NewLevelVar returns a *slog.LevelVar initialized to lvl.
func NewLevelVar(lvl slog.Level) *slog.LevelVar {
	v := &slog.LevelVar{}
	v.Set(lvl)
	return v
}

// try runs fn and converts a panic into an error.
func try(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("panic: %v", r)
			}
		}
	}()
	return fn()
}

const badKey = "!BADKEY"

// argsToAttrSlice converts loosely-typed key-value pairs into Attrs the same
// way slog.Logger.Log does.
func argsToAttrSlice(args []any) []slog.Attr {
	var (
		attr  slog.Attr
		attrs []slog.Attr
	)
	for len(args) > 0 {
		attr, args = argsToAttr(args)
		attrs = append(attrs, attr)
	}
	return attrs
}

// argsToAttr turns a prefix of args into an Attr and returns the unconsumed
// portion of args.
//
// If args[0] is an Attr, it returns it.
// If args[0] is a string, it treats the first two elements as a key-value
// pair.
// Otherwise, it treats args[0] as a value with a missing key.
func argsToAttr(args []any) (slog.Attr, []any) {
	switch x := args[0].(type) {
	case string:
		if len(args) == 1 {
			return slog.String(badKey, x), nil
		}
		return slog.Any(x, args[1]), args[2:]
	case slog.Attr:
		return x, args[1:]
	default:
		return slog.Any(badKey, x), args[1:]
	}
}
