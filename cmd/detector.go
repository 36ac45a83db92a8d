package cmd

import (
	"fmt"
	"strings"

	"github.com/ArnaudCalmettes/boardcrop/board"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag names and the configuration keys they are bound to
var detectorKeys = map[string]string{
	"preset":       "crop.preset",
	"reference":    "crop.reference",
	"metric":       "crop.metric",
	"threshold":    "crop.threshold",
	"row-fraction": "crop.row_fraction",
	"col-fraction": "crop.col_fraction",
	"padding":      "crop.padding",
	"margin-skip":  "crop.margin_skip",
}

func addDetectorFlags(flags *pflag.FlagSet) {
	flags.StringP("preset", "p", "corners",
		fmt.Sprintf("detection preset (%s)", strings.Join(board.PresetNames(), ", ")))
	flags.String("reference", "", "reference strategy: corners, center-patch (overrides preset)")
	flags.String("metric", "", "difference metric: sum-abs-channel-diff, edge-magnitude, mean-diff (overrides preset)")
	flags.Float64("threshold", 0, "per-pixel difference threshold (overrides preset)")
	flags.Float64("row-fraction", 0, "row classification fraction (overrides preset)")
	flags.Float64("col-fraction", 0, "column classification fraction (overrides preset)")
	flags.Int("padding", 0, "pixels added around the detected board (overrides preset)")
	flags.Float64("margin-skip", 0, "fraction of lines skipped at each border (overrides preset)")
}

// bindDetectorFlags binds the detector flags of cmd to the configuration.
// Commands sharing the flags bind them when they run, so that the running
// command wins.
func bindDetectorFlags(cmd *cobra.Command) error {
	for flag, key := range detectorKeys {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}

// detectorConfig builds the detector configuration: the selected preset,
// with every explicitly set parameter applied on top of it.
func detectorConfig(v *viper.Viper) (board.Config, error) {
	cfg, err := board.Preset(v.GetString("crop.preset"))
	if err != nil {
		return cfg, err
	}

	if v.IsSet("crop.reference") && v.GetString("crop.reference") != "" {
		if cfg.Reference, err = board.ParseReference(v.GetString("crop.reference")); err != nil {
			return cfg, err
		}
	}
	if v.IsSet("crop.metric") && v.GetString("crop.metric") != "" {
		if cfg.Metric, err = board.ParseMetric(v.GetString("crop.metric")); err != nil {
			return cfg, err
		}
	}
	if v.IsSet("crop.threshold") {
		cfg.Threshold = v.GetFloat64("crop.threshold")
	}
	if v.IsSet("crop.row_fraction") {
		cfg.RowFraction = v.GetFloat64("crop.row_fraction")
	}
	if v.IsSet("crop.col_fraction") {
		cfg.ColFraction = v.GetFloat64("crop.col_fraction")
	}
	if v.IsSet("crop.padding") {
		cfg.Padding = v.GetInt("crop.padding")
	}
	if v.IsSet("crop.margin_skip") {
		cfg.MarginSkip = v.GetFloat64("crop.margin_skip")
	}
	return cfg, cfg.Validate()
}

// detectCmd represents the detect command
var detectCmd = &cobra.Command{
	Use:   "detect FILE",
	Short: "Print the bounding box of the board without cropping",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindDetectorFlags(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := detectorConfig(viper.GetViper())
		if err != nil {
			return err
		}
		det, err := board.NewDetector(cfg)
		if err != nil {
			return err
		}
		img, err := loadImage(args[0])
		if err != nil {
			return err
		}
		box, err := det.Detect(img)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), box)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
	addDetectorFlags(detectCmd.Flags())
}
