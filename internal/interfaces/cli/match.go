package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/turtacn/CineStyle-Engine/internal/application/matching"
)

var (
	matchScale     float64
	matchSpectacle float64
	matchStructure float64
	matchFluidity  float64
	matchEmotion   float64
	matchGenres    []string
	matchN         int
)

func newMatchCmd(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Rank catalog directors against a target style vector",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&matchScale, "scale", 5, "scale axis value [0-10]")
	f.Float64Var(&matchSpectacle, "spectacle", 5, "spectacle axis value [0-10]")
	f.Float64Var(&matchStructure, "structure", 5, "structure axis value [0-10]")
	f.Float64Var(&matchFluidity, "fluidity", 5, "genre-fluidity axis value [0-10]")
	f.Float64Var(&matchEmotion, "emotion", 5, "emotion axis value [0-10]")
	f.StringSliceVar(&matchGenres, "genres", nil, "film genres for genre-aware ranking (e.g., Drama,Thriller)")
	f.IntVarP(&matchN, "top", "n", 0, "number of results (0 = full catalog)")

	return cmd
}

func runMatch(ctx context.Context, opts *RootOptions) error {
	if err := validateOutput(opts.OutputFormat); err != nil {
		return err
	}

	rt, err := newRuntime(opts)
	if err != nil {
		return err
	}

	target, err := vectorFromFlags(matchScale, matchSpectacle, matchStructure, matchFluidity, matchEmotion, -1, -1)
	if err != nil {
		return err
	}

	matches, err := rt.Matcher.NearestDirectors(ctx, target, matchN, matchGenres)
	if err != nil {
		return err
	}

	if opts.OutputFormat == "json" {
		return json.NewEncoder(os.Stdout).Encode(matches)
	}
	renderMatchTable(matches, opts.NoColor)
	return nil
}

func renderMatchTable(matches []matching.Match, noColor bool) {
	highlight := color.New(color.FgGreen, color.Bold).SprintFunc()
	if noColor {
		highlight = fmt.Sprint
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Rank", "Director", "Cluster", "Distance", "Known For"})
	table.SetBorder(false)

	for _, m := range matches {
		name := m.Director.Name
		if m.Rank == 1 {
			name = highlight(name)
		}
		table.Append([]string{
			strconv.Itoa(m.Rank),
			name,
			string(m.Director.Cluster),
			fmt.Sprintf("%.2f", m.Distance),
			strings.Join(m.Director.KnownFor, ", "),
		})
	}
	table.Render()
}
