package cmd

import (
	"context"
	"image"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ArnaudCalmettes/boardcrop/board"
	"github.com/ArnaudCalmettes/boardcrop/imp"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

var output string

// cropCmd represents the crop command
var cropCmd = &cobra.Command{
	Use:   "crop FILE...",
	Short: "Crop images down to the board",
	Long: `Detects the board in each image and writes a cropped copy next to it,
named after the original with a "_cropped" suffix.`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if output != "" && len(args) > 1 {
			return errors.New("--output can only be used with a single input")
		}
		if err := bindDetectorFlags(cmd); err != nil {
			return err
		}
		if err := viper.BindPFlag("workers", cmd.Flags().Lookup("workers")); err != nil {
			return err
		}
		return viper.BindPFlag("debug_dir", cmd.Flags().Lookup("debug-dir"))
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
		c := &cropper{
			detector: det,
			debugDir: viper.GetString("debug_dir"),
		}
		if len(args) == 1 {
			dst := output
			if dst == "" {
				dst = imp.CroppedName(args[0])
			}
			return c.cropFile(args[0], dst)
		}
		return c.cropFiles(context.Background(), args, viper.GetInt("workers"))
	},
}

// A cropper crops image files down to the board detected in them.
type cropper struct {
	detector *board.Detector
	debugDir string
}

// cropFiles crops every file, one image per task, using at most workers
// concurrent tasks. The first failure cancels the remaining files.
func (c *cropper) cropFiles(ctx context.Context, files []string, workers int) error {
	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return c.cropFile(file, imp.CroppedName(file))
		})
	}
	return g.Wait()
}

func (c *cropper) cropFile(src, dst string) error {
	log.Printf("Loading image: %s", src)
	img, err := loadImage(src)
	if err != nil {
		return err
	}
	size := img.Bounds().Size()
	log.Printf("Original size: %dx%d", size.X, size.Y)

	log.Printf("Detecting board boundaries (%v)...", c.detector.Config())
	box, err := c.detector.Detect(img)
	if err != nil {
		return errors.Wrapf(err, "detecting board in %s", src)
	}
	log.Printf("Board bounds: %v", box)

	if c.debugDir != "" {
		if err := c.saveDebug(src, img); err != nil {
			return err
		}
	}

	cropped := imaging.Crop(img, box.Rect(img.Bounds()))
	log.Printf("Cropped size: %dx%d", cropped.Bounds().Dx(), cropped.Bounds().Dy())

	if err := imp.Save(dst, cropped); err != nil {
		return err
	}
	log.Printf("Saved cropped image to: %s", dst)
	return nil
}

// saveDebug writes the normalized difference map and the foreground mask
// used to classify pixels.
func (c *cropper) saveDebug(src string, img image.Image) error {
	cfg := c.detector.Config()
	diff, err := board.DifferenceMap(img, cfg)
	if err != nil {
		return err
	}
	mask := imp.Mask(diff, uint8(min(255, cfg.Threshold)))
	if err := imp.Normalize(diff, diff); err != nil {
		return err
	}

	if err := os.MkdirAll(c.debugDir, 0755); err != nil {
		return err
	}
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	if err := imp.Save(filepath.Join(c.debugDir, base+"_diff.png"), diff); err != nil {
		return err
	}
	return imp.Save(filepath.Join(c.debugDir, base+"_mask.png"), mask)
}

func loadImage(filename string) (image.Image, error) {
	img, err := imp.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, errors.Wrap(board.ErrEmptyImage, filename)
	}
	return img, nil
}

func init() {
	rootCmd.AddCommand(cropCmd)

	addDetectorFlags(cropCmd.Flags())
	cropCmd.Flags().StringVarP(&output, "output", "o", "", "output file (single input only)")
	cropCmd.Flags().IntP("workers", "w", runtime.NumCPU(), "number of images processed concurrently")
	cropCmd.Flags().String("debug-dir", "", "directory receiving difference maps and masks")
}
