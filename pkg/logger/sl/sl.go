// Package sl holds small slog attribute helpers shared across the module.
package sl

import "log/slog"

// Err renders an error under the "error" key.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}

	return slog.String("error", err.Error())
}
