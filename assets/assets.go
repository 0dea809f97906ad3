package assets

import "embed"

// Presets holds the scenario presets as JSON, one file per preset name.
//
//go:embed presets/*.json
var Presets embed.FS
