package scanner

// This package re-exports types from internal/types for convenience.
// The canonical types live in internal/types to avoid import cycles.

import "github.com/hamb0n-3/sigscan/internal/types"

type (
	Record       = types.Record
	Finding      = types.Finding
	PluginResult = types.PluginResult
	ScanResult   = types.ScanResult
)
