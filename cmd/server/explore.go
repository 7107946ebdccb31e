package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"changemakers-go/internal/filter"
	"changemakers-go/internal/model"
	"changemakers-go/internal/providers/common"
	"changemakers-go/internal/providers/seed"
)

func newExploreCmd() *cobra.Command {
	var (
		seedPath string
		search   string
		options  = map[model.Dimension]*string{}
	)

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Filter the seed projects the way the explore screen does",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := filter.NewState()
			for _, d := range model.Dimensions {
				next, err := st.Select(d, *options[d])
				if err != nil {
					return err
				}
				st = next
			}

			projects, err := seed.NewSource(seedPath).Fetch(cmd.Context())
			if err != nil {
				return err
			}

			results := filter.Run(projects, filter.Query{Selection: st.Selection(), Search: search})
			renderProjects(cmd.OutOrStdout(), results)
			return nil
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", "db/seed.yaml", "path to the seed YAML")
	cmd.Flags().StringVarP(&search, "search", "q", "", "match title or location, ignoring case")
	for _, d := range model.Dimensions {
		value := model.All
		options[d] = &value
		cmd.Flags().StringVar(options[d], string(d), model.All, fmt.Sprintf("one of: %s", strings.Join(model.Options(d), ", ")))
	}
	return cmd
}

func newFiltersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List filter dimensions and their options",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderCatalog(cmd.OutOrStdout(), model.Catalog())
			return nil
		},
	}
}

func renderProjects(w io.Writer, projects []model.Project) {
	if len(projects) == 0 {
		_, _ = fmt.Fprintln(w, "(0 projects)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Title", "Location", "Category", "Funding", "Volunteers"})
	for _, p := range projects {
		funding := fmt.Sprintf("%s / %s (%.0f%%)", common.FormatUSD(p.FundingRaised), common.FormatUSD(p.FundingGoal), p.FundingRatio())
		t.AppendRow(table.Row{p.ID, p.Title, p.Location, p.Category, funding, p.Volunteers})
	}
	t.Render()
}

func renderCatalog(w io.Writer, groups []model.FilterGroup) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Filter", "Options"})
	for _, g := range groups {
		t.AppendRow(table.Row{g.Label, strings.Join(g.Options, ", ")})
	}
	t.Render()
}
