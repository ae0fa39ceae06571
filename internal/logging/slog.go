// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

// slog.go - Bridge from log/slog to the zerolog backend

package logging

import (
	"context"
	"log/slog"

	"github.com/rs/zerolog"
)

// NewSlogLogger returns an slog.Logger that writes through the global
// zerolog logger. The supervision tree logs via sutureslog, which wants
// an slog.Logger; with this bridge its records land in the same stream
// as everything else.
func NewSlogLogger() *slog.Logger {
	return slog.New(&slogBridge{logger: Logger()})
}

// slogBridge adapts zerolog to the slog.Handler interface. Group names
// become dotted key prefixes rather than nested objects, keeping the
// output flat like the rest of the zerolog fields.
type slogBridge struct {
	logger zerolog.Logger
	prefix string
	attrs  []slog.Attr
}

func (b *slogBridge) Enabled(_ context.Context, level slog.Level) bool {
	return zerologLevel(level) >= b.logger.GetLevel()
}

//nolint:gocritic // slog.Record is passed by value per slog.Handler
func (b *slogBridge) Handle(_ context.Context, record slog.Record) error {
	event := b.logger.WithLevel(zerologLevel(record.Level))

	// Bound attrs carry their prefix from WithAttrs time.
	for _, attr := range b.attrs {
		event = appendAttr(event, "", attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		event = appendAttr(event, b.prefix, attr)
		return true
	})

	event.Msg(record.Message)
	return nil
}

// WithAttrs prefixes the new attrs with the current group so that attrs
// bound before a WithGroup call keep their original keys.
func (b *slogBridge) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(b.attrs)+len(attrs))
	merged = append(merged, b.attrs...)
	for _, attr := range attrs {
		attr.Key = b.prefix + attr.Key
		merged = append(merged, attr)
	}
	return &slogBridge{logger: b.logger, prefix: b.prefix, attrs: merged}
}

func (b *slogBridge) WithGroup(name string) slog.Handler {
	if name == "" {
		return b
	}
	return &slogBridge{logger: b.logger, prefix: b.prefix + name + ".", attrs: b.attrs}
}

// appendAttr writes one slog attribute onto a zerolog event under a
// dotted key prefix. Group values recurse with a deeper prefix; empty
// attrs are dropped as slog.Handler requires.
func appendAttr(event *zerolog.Event, prefix string, attr slog.Attr) *zerolog.Event {
	if attr.Equal(slog.Attr{}) {
		return event
	}
	value := attr.Value.Resolve()
	key := prefix + attr.Key

	switch value.Kind() {
	case slog.KindGroup:
		memberPrefix := key + "."
		if attr.Key == "" {
			// Inline group: members keep the enclosing prefix.
			memberPrefix = prefix
		}
		for _, member := range value.Group() {
			event = appendAttr(event, memberPrefix, member)
		}
		return event
	case slog.KindString:
		return event.Str(key, value.String())
	case slog.KindBool:
		return event.Bool(key, value.Bool())
	case slog.KindInt64:
		return event.Int64(key, value.Int64())
	case slog.KindUint64:
		return event.Uint64(key, value.Uint64())
	case slog.KindFloat64:
		return event.Float64(key, value.Float64())
	case slog.KindDuration:
		return event.Dur(key, value.Duration())
	case slog.KindTime:
		return event.Time(key, value.Time())
	default:
		return event.Interface(key, value.Any())
	}
}

// zerologLevel maps an slog level onto the nearest zerolog level.
// Custom levels between the standard four round down.
func zerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level >= slog.LevelError:
		return zerolog.ErrorLevel
	case level >= slog.LevelWarn:
		return zerolog.WarnLevel
	case level >= slog.LevelInfo:
		return zerolog.InfoLevel
	case level >= slog.LevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}
