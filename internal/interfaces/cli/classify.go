package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/turtacn/CineStyle-Engine/internal/domain/style"
)

var (
	classifyScale     float64
	classifySpectacle float64
	classifyStructure float64
	classifyFluidity  float64
	classifyEmotion   float64
)

func newClassifyCmd(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a style vector into quadrant and emotional tier",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(opts)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&classifyScale, "scale", 5, "scale axis value [0-10]")
	f.Float64Var(&classifySpectacle, "spectacle", 5, "spectacle axis value [0-10]")
	f.Float64Var(&classifyStructure, "structure", 5, "structure axis value [0-10]")
	f.Float64Var(&classifyFluidity, "fluidity", 5, "genre-fluidity axis value [0-10]")
	f.Float64Var(&classifyEmotion, "emotion", 5, "emotion axis value [0-10]")

	return cmd
}

func runClassify(opts *RootOptions) error {
	if err := validateOutput(opts.OutputFormat); err != nil {
		return err
	}

	v, err := vectorFromFlags(classifyScale, classifySpectacle, classifyStructure, classifyFluidity, classifyEmotion, -1, -1)
	if err != nil {
		return err
	}

	quadrant := style.QuadrantOf(v)
	tier := style.EmotionTierOf(v)

	if opts.OutputFormat == "json" {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"quadrant":      quadrant,
			"quadrantLabel": quadrant.Label(),
			"emotionTier":   tier,
			"compositeX":    style.CompositeX(v),
			"compositeY":    style.CompositeY(v),
		})
	}

	fmt.Printf("quadrant:     %s (%s)\n", quadrant, quadrant.Label())
	fmt.Printf("emotion tier: %s\n", tier)
	fmt.Printf("composite:    x=%.2f y=%.2f\n", style.CompositeX(v), style.CompositeY(v))
	return nil
}
