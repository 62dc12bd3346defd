// Package adapter lets code written against log/slog or go.uber.org/zap
// write through a slug Logger.
//
// Both adapters map the foreign level onto the nearest slug level and
// render attributes or fields after the message as plain " key=value"
// text, so the output keeps the usual slug line layout:
//
//	slog.New(adapter.NewSlogHandler(log)).Warn("slow query", "ms", 812)
//	// [   12, 4.310] WARN:  slow query ms=812
//
// zap's Fatal and Panic still exit or panic inside zap itself after the
// line is written; the slug side never does.
package adapter
