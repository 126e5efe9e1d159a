package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyComponent   = "component"
	KeyOperation   = "op"
	KeyCapacity    = "capacity"
	KeyOldCapacity = "old_capacity"
	KeyLoad        = "load"
	KeyRehashed    = "rehashed"
	KeyProbes      = "probes"
	KeyRelocated   = "relocated"
	KeyError       = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Component(name string) slog.Attr { return slog.String(KeyComponent, name) }
func Operation(op string) slog.Attr   { return slog.String(KeyOperation, op) }
func Capacity(n int) slog.Attr        { return slog.Int(KeyCapacity, n) }
func OldCapacity(n int) slog.Attr     { return slog.Int(KeyOldCapacity, n) }
func Load(n int) slog.Attr            { return slog.Int(KeyLoad, n) }
func Rehashed(n int) slog.Attr        { return slog.Int(KeyRehashed, n) }
func Probes(n int) slog.Attr          { return slog.Int(KeyProbes, n) }
func Relocated(n int) slog.Attr       { return slog.Int(KeyRelocated, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
