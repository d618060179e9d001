// SPDX-License-Identifier: MIT

package degseq

import "log/slog"

// runAttrs renders a RunStats as structured log attributes.
func runAttrs(s RunStats) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("method", s.Method.String()),
		slog.Bool("directed", s.Directed),
		slog.Int("vertices", s.Vertices),
		slog.Int("edges", s.Edges),
		slog.Int("restarts", s.Restarts),
		slog.Duration("elapsed", s.Elapsed),
	}
	if s.Err != nil {
		attrs = append(attrs, slog.String("error", s.Err.Error()))
	}

	return attrs
}
