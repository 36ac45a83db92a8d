package cmd

import (
	"fmt"
	"io"

	"github.com/ArnaudCalmettes/boardcrop/imp"
	"github.com/spf13/cobra"
)

// avgColorCmd represents the avgcolor command
var avgColorCmd = &cobra.Command{
	Use:   "avgcolor FILE",
	Short: "Print the average color of an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := imp.ReadFile(args[0])
		if err != nil {
			return err
		}
		avg, err := imp.AverageColor(img)
		if err != nil {
			return err
		}
		printAverageColor(cmd.OutOrStdout(), avg)
		return nil
	},
}

func printAverageColor(w io.Writer, c imp.RGB) {
	fmt.Fprintf(w, "Average color (RGB): %v\n", c)
	fmt.Fprintf(w, "Average color (Hex): %s\n", c.Hex())
	fmt.Fprintf(w, "CSS rgb: %s\n", c.CSS())
}

func init() {
	rootCmd.AddCommand(avgColorCmd)
}
