package board

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidConfig is returned when a detector is configured with
	// out-of-range parameters.
	ErrInvalidConfig = errors.New("invalid detector configuration")

	// ErrUnknownPreset is returned by Preset for unregistered names.
	ErrUnknownPreset = errors.New("unknown preset")
)

// Reference selects how the reference tone is sampled.
type Reference int

const (
	// Corners averages the four corner pixels. The reference is assumed to
	// be the background: samples that differ from it are foreground.
	Corners Reference = iota

	// CenterPatch averages a square patch at the center of the image. The
	// reference is assumed to be the board: samples that match it are
	// foreground.
	CenterPatch
)

var referenceNames = map[Reference]string{
	Corners:     "corners",
	CenterPatch: "center-patch",
}

func (r Reference) String() string {
	if name, ok := referenceNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Reference(%d)", int(r))
}

// matchesBoard is true when the reference samples the board itself.
func (r Reference) matchesBoard() bool {
	return r == CenterPatch
}

// ParseReference returns the reference strategy with given name.
func ParseReference(s string) (Reference, error) {
	for r, name := range referenceNames {
		if strings.EqualFold(s, name) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown reference strategy %q", ErrInvalidConfig, s)
}

// Metric selects how rows and columns are scored.
type Metric int

const (
	// ChannelDiff counts the samples whose summed absolute channel
	// difference to the reference exceeds the threshold.
	ChannelDiff Metric = iota

	// EdgeMagnitude sums the output of a 3x3 edge filter over each line.
	EdgeMagnitude

	// MeanDiff compares the mean intensity of each line to the reference.
	MeanDiff
)

var metricNames = map[Metric]string{
	ChannelDiff:   "sum-abs-channel-diff",
	EdgeMagnitude: "edge-magnitude",
	MeanDiff:      "mean-diff",
}

func (m Metric) String() string {
	if name, ok := metricNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// ParseMetric returns the metric with given name.
func ParseMetric(s string) (Metric, error) {
	for m, name := range metricNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown difference metric %q", ErrInvalidConfig, s)
}

// Config holds every tunable of the boundary detector.
type Config struct {
	Reference Reference
	Metric    Metric

	// Per-pixel difference threshold, on an 8-bit channel scale.
	Threshold float64

	// For ChannelDiff, the fraction of a row (column) that must be
	// foreground. For EdgeMagnitude, the fraction of the strongest row
	// (column) energy. Ignored by MeanDiff.
	RowFraction float64
	ColFraction float64

	// Pixels added outward to each detected edge.
	Padding int

	// Fraction of lines skipped at each border before scanning.
	MarginSkip float64
}

// Defaults
const (
	DefaultThreshold     = 30
	DefaultFraction      = 0.05
	DefaultEdgeFraction  = 0.1
	DefaultPadding       = 5
	DefaultEdgePadding   = 10
	DefaultEdgeMargin    = 0.1
	DefaultMeanThreshold = 20
)

// DefaultConfig returns the configuration of the "corners" preset.
func DefaultConfig() Config {
	return Config{
		Reference:   Corners,
		Metric:      ChannelDiff,
		Threshold:   DefaultThreshold,
		RowFraction: DefaultFraction,
		ColFraction: DefaultFraction,
		Padding:     DefaultPadding,
	}
}

var presets = map[string]Config{
	"corners": DefaultConfig(),
	"edges": {
		Reference:   Corners,
		Metric:      EdgeMagnitude,
		Threshold:   DefaultThreshold,
		RowFraction: DefaultEdgeFraction,
		ColFraction: DefaultEdgeFraction,
		Padding:     DefaultEdgePadding,
		MarginSkip:  DefaultEdgeMargin,
	},
	"center": {
		Reference:   CenterPatch,
		Metric:      MeanDiff,
		Threshold:   DefaultMeanThreshold,
		RowFraction: DefaultFraction,
		ColFraction: DefaultFraction,
		Padding:     DefaultPadding,
	},
}

// Preset returns a named configuration: "corners" (the default), "edges" or
// "center". An empty name selects the default.
func Preset(name string) (Config, error) {
	if name == "" {
		return DefaultConfig(), nil
	}
	cfg, ok := presets[strings.ToLower(name)]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return cfg, nil
}

// PresetNames lists registered presets in alphabetical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that every parameter is within range.
func (c Config) Validate() error {
	if _, ok := referenceNames[c.Reference]; !ok {
		return fmt.Errorf("%w: reference strategy %v", ErrInvalidConfig, c.Reference)
	}
	if _, ok := metricNames[c.Metric]; !ok {
		return fmt.Errorf("%w: difference metric %v", ErrInvalidConfig, c.Metric)
	}
	if c.Threshold < 0 {
		return fmt.Errorf("%w: negative threshold %v", ErrInvalidConfig, c.Threshold)
	}
	if c.RowFraction < 0 || c.RowFraction > 1 {
		return fmt.Errorf("%w: row fraction %v not in [0, 1]", ErrInvalidConfig, c.RowFraction)
	}
	if c.ColFraction < 0 || c.ColFraction > 1 {
		return fmt.Errorf("%w: column fraction %v not in [0, 1]", ErrInvalidConfig, c.ColFraction)
	}
	if c.Padding < 0 {
		return fmt.Errorf("%w: negative padding %d", ErrInvalidConfig, c.Padding)
	}
	if c.MarginSkip < 0 || c.MarginSkip >= 0.5 {
		return fmt.Errorf("%w: margin skip %v not in [0, 0.5)", ErrInvalidConfig, c.MarginSkip)
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf(
		"reference=%v, metric=%v, threshold=%v, fractions=%v/%v, padding=%d, margin=%v",
		c.Reference, c.Metric, c.Threshold, c.RowFraction, c.ColFraction, c.Padding, c.MarginSkip,
	)
}
