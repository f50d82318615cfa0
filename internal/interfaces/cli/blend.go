package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/turtacn/CineStyle-Engine/internal/application/blending"
)

var (
	blendPrimary   string
	blendSecondary string
	blendWeight    float64
)

func newBlendCmd(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blend",
		Short: "Blend two catalog directors into a hybrid style profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBlend(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&blendPrimary, "primary", "", "primary director id (required)")
	f.StringVar(&blendSecondary, "secondary", "", "secondary director id (required)")
	f.Float64Var(&blendWeight, "weight", 0.5, "primary director weight [0.10-0.90], snapped to 0.05 steps")
	_ = cmd.MarkFlagRequired("primary")
	_ = cmd.MarkFlagRequired("secondary")

	return cmd
}

func runBlend(ctx context.Context, opts *RootOptions) error {
	if err := validateOutput(opts.OutputFormat); err != nil {
		return err
	}

	rt, err := newRuntime(opts)
	if err != nil {
		return err
	}

	hybrid, err := rt.Blender.BlendSelection(ctx, blending.Selection{
		PrimaryID:   blendPrimary,
		SecondaryID: blendSecondary,
		Weight:      blendWeight,
	})
	if err != nil {
		return err
	}

	if opts.OutputFormat == "json" {
		return json.NewEncoder(os.Stdout).Encode(hybrid)
	}
	renderBlend(hybrid, opts.NoColor)
	return nil
}

func renderBlend(hybrid *blending.Hybrid, noColor bool) {
	heading := color.New(color.FgCyan, color.Bold).SprintfFunc()
	if noColor {
		heading = fmt.Sprintf
	}

	fmt.Println(heading("%s x %s (weight %.2f)", hybrid.Primary.Name, hybrid.Secondary.Name, hybrid.Weight))
	fmt.Printf("cluster: %s  quadrant: %s  emotion tier: %s\n",
		hybrid.Cluster, hybrid.Quadrant.Label(), hybrid.EmotionTier)
	fmt.Printf("distance to %s: %.2f, to %s: %.2f\n",
		hybrid.Primary.Name, hybrid.DistancePrimary,
		hybrid.Secondary.Name, hybrid.DistanceSecondary)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Axis", "Value"})
	table.SetBorder(false)

	for _, axis := range hybrid.Vector.Axes() {
		table.Append([]string{string(axis), fmt.Sprintf("%.2f", hybrid.Vector[axis])})
	}
	table.Render()
}
