package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/turtacn/CineStyle-Engine/internal/domain/director"
	"github.com/turtacn/CineStyle-Engine/internal/domain/style"
)

func newDirectorsCmd(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "directors",
		Short: "Inspect the director catalog",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all directors in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDirectorsList(opts)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one director's full profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDirectorsShow(opts, args[0])
		},
	}

	cmd.AddCommand(listCmd, showCmd)
	return cmd
}

func runDirectorsList(opts *RootOptions) error {
	if err := validateOutput(opts.OutputFormat); err != nil {
		return err
	}

	rt, err := newRuntime(opts)
	if err != nil {
		return err
	}
	profiles := rt.Provider.Current().Profiles()

	if opts.OutputFormat == "json" {
		return json.NewEncoder(os.Stdout).Encode(profiles)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Cluster", "Quadrant", "Tier", "Known For"})
	table.SetBorder(false)
	for _, p := range profiles {
		table.Append([]string{
			p.ID,
			p.Name,
			string(p.Cluster),
			string(style.QuadrantOf(p.Vector)),
			string(style.EmotionTierOf(p.Vector)),
			strings.Join(p.KnownFor, ", "),
		})
	}
	table.Render()
	return nil
}

func runDirectorsShow(opts *RootOptions, id string) error {
	if err := validateOutput(opts.OutputFormat); err != nil {
		return err
	}

	rt, err := newRuntime(opts)
	if err != nil {
		return err
	}

	p, err := rt.Provider.Current().ByID(id)
	if err != nil {
		return err
	}

	if opts.OutputFormat == "json" {
		return json.NewEncoder(os.Stdout).Encode(p)
	}
	renderDirector(p, opts.NoColor)
	return nil
}

func renderDirector(p director.Profile, noColor bool) {
	heading := color.New(color.FgCyan, color.Bold).SprintFunc()
	if noColor {
		heading = fmt.Sprint
	}

	fmt.Println(heading(p.Name))
	fmt.Printf("id: %s  cluster: %s\n", p.ID, p.Cluster)
	fmt.Printf("quadrant: %s  emotion tier: %s\n",
		style.QuadrantOf(p.Vector).Label(), style.EmotionTierOf(p.Vector))
	if len(p.KnownFor) > 0 {
		fmt.Printf("known for: %s\n", strings.Join(p.KnownFor, ", "))
	}
	if p.VisualMandate != "" {
		fmt.Printf("visual mandate: %s\n", p.VisualMandate)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Axis", "Value"})
	table.SetBorder(false)
	for _, axis := range p.Vector.Axes() {
		table.Append([]string{string(axis), fmt.Sprintf("%.2f", p.Vector[axis])})
	}
	table.Render()
}
