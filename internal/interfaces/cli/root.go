// Package cli implements the cinestyle command line interface: matching,
// blending, classification, and catalog inspection against a local catalog.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turtacn/CineStyle-Engine/internal/application/blending"
	"github.com/turtacn/CineStyle-Engine/internal/application/matching"
	"github.com/turtacn/CineStyle-Engine/internal/domain/director"
	"github.com/turtacn/CineStyle-Engine/internal/domain/style"
	"github.com/turtacn/CineStyle-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CineStyle-Engine/pkg/errors"
)

// Build metadata, overridden at link time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// RootOptions holds the persistent flags shared by every subcommand.
type RootOptions struct {
	CatalogPath  string
	LogLevel     string
	OutputFormat string
	NoColor      bool
}

// Runtime is the wired set of services a subcommand runs against.
type Runtime struct {
	Logger   logging.Logger
	Provider *director.Provider
	Matcher  matching.Service
	Blender  blending.Service
}

// newRuntime loads the catalog named by the options (or the built-in one)
// and wires the application services over it.
func newRuntime(opts *RootOptions) (*Runtime, error) {
	logger, err := logging.NewLogger(logging.LogConfig{
		Level:       opts.LogLevel,
		Format:      "console",
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return nil, err
	}

	catalog := director.DefaultCatalog()
	if opts.CatalogPath != "" {
		catalog, err = director.LoadCatalogFile(opts.CatalogPath)
		if err != nil {
			return nil, err
		}
	}
	provider := director.NewProvider(catalog)

	matcher, err := matching.NewService(matching.ServiceConfig{Provider: provider, Logger: logger})
	if err != nil {
		return nil, err
	}
	blender, err := blending.NewService(blending.ServiceConfig{Provider: provider, Logger: logger})
	if err != nil {
		return nil, err
	}

	return &Runtime{Logger: logger, Provider: provider, Matcher: matcher, Blender: blender}, nil
}

// NewRootCommand builds the cinestyle root command with all subcommands
// attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "cinestyle",
		Short: "CineStyle — director style matching and blending engine",
		Long: "CineStyle ranks a catalog of film directors against a target style vector,\n" +
			"blends director styles into hybrid profiles, and classifies any style vector\n" +
			"into a quadrant and emotional tier.",
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.CatalogPath, "catalog", "c", "", "catalog YAML path (default: built-in catalog)")
	pf.StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVarP(&opts.OutputFormat, "output", "o", "table", "output format (table, json)")
	pf.BoolVar(&opts.NoColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		newMatchCmd(opts),
		newBlendCmd(opts),
		newClassifyCmd(opts),
		newDirectorsCmd(opts),
	)
	return cmd
}

// vectorFromFlags assembles a style vector from per-axis flag values.
func vectorFromFlags(scale, spectacle, structure, fluidity, emotion, pacing, texture float64) (style.Vector, error) {
	values := map[style.Axis]float64{
		style.AxisScale:         scale,
		style.AxisSpectacle:     spectacle,
		style.AxisStructure:     structure,
		style.AxisGenreFluidity: fluidity,
		style.AxisEmotion:       emotion,
	}
	if pacing >= 0 {
		values[style.AxisPacing] = pacing
	}
	if texture >= 0 {
		values[style.AxisTexture] = texture
	}
	return style.NewVector(values)
}

// validateOutput rejects unsupported output formats before any work runs.
func validateOutput(format string) error {
	switch format {
	case "table", "json":
		return nil
	default:
		return errors.InvalidParam("output format must be table or json").WithDetail("format=" + format)
	}
}
