package config

import (
	_ "embed"
)

//go:embed defaults/torosnake.yaml
var defaultYAML []byte
