package config

import "time"

// app constants
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	Version = "0.3.0"
)

// scale mode names as they appear in kelvin.yaml
const (
	ScaleLinear     = "linear"
	ScaleNormalized = "normalized"
	ScaleLog        = "log"
)

// watch constants
const (
	DefaultPollInterval = time.Second
	DefaultDebounce     = 300 * time.Millisecond
)

// plot constants
const (
	// DefaultRollInterval is the minimum time between two roll shifts of
	// the x window while following a growing file
	DefaultRollInterval = time.Second
)

// bus constants
const (
	DefaultBusBuffer = 64
)

// DefaultPalette is cycled over channels without a configured color
var DefaultPalette = []string{
	"#00afff", "#ff5f87", "#5fd700", "#ffaf00",
	"#af87ff", "#00d7d7", "#ff8700", "#d75fd7",
}
