package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID       = "run_id"
	KeyScenario    = "scenario"
	KeyStep        = "step"
	KeyProject     = "project"
	KeyPath        = "path"
	KeyFile        = "file"
	KeyCommand     = "command"
	KeyPlatform    = "platform"
	KeyDestination = "destination"
	KeyCount       = "count"
	KeyDurationMS  = "duration_ms"
	KeyError       = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr          { return slog.String(KeyRunID, id) }
func Scenario(name string) slog.Attr     { return slog.String(KeyScenario, name) }
func Step(name string) slog.Attr         { return slog.String(KeyStep, name) }
func Project(name string) slog.Attr      { return slog.String(KeyProject, name) }
func Path(p string) slog.Attr            { return slog.String(KeyPath, p) }
func File(f string) slog.Attr            { return slog.String(KeyFile, f) }
func Command(c string) slog.Attr         { return slog.String(KeyCommand, c) }
func Platform(p string) slog.Attr        { return slog.String(KeyPlatform, p) }
func Destination(d string) slog.Attr     { return slog.String(KeyDestination, d) }
func Count(n int) slog.Attr              { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr    { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
