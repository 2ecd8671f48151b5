package config

import (
	_ "embed"
)

//go:embed defaults/valleyseer.yaml
var defaultYAML []byte

// DefaultFile returns the built-in defaults: only the optional hints are set.
func DefaultFile() File {
	return File{
		MineLevel:    Ptr(DefaultMineLevel),
		QisCrop:      Ptr(DefaultQisCrop),
		GoldenHelmet: Ptr(DefaultGoldenHelmet),
	}
}
