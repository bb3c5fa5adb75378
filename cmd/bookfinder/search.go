// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bookfinder/internal/oreilly"
	"github.com/pdiddy/bookfinder/internal/query"
	"github.com/pdiddy/bookfinder/internal/tabular"
	"github.com/pdiddy/bookfinder/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [free text...]",
	Short: "Search the catalog for books",
	Long: `Search queries the catalog for books matching a free-text query, author,
topics, and publication date range. By default only data science and AI
topics are searched; pass --all-topics to disable the default topic filter.

Results print as a readable listing, or as JSON with --json. Use --output
to export the results to a CSV file and --save to store the search and its
results in a YAML file that --from-file can reload without re-querying.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	filter, err := filterFromFlags(cmd, args)
	if err != nil {
		return err
	}
	cfg := searchConfig(cmd)

	allTopics, _ := cmd.Flags().GetBool("all-topics")
	filter.UseDefaultTopics = defaultTopicPolicy(cfg, allTopics)

	fromFile, _ := cmd.Flags().GetString("from-file")

	var table tabular.Table
	if fromFile != "" {
		rf, err := oreilly.ReadResultFile(fromFile)
		if err != nil {
			return err
		}
		table = rf.Table()
	} else {
		builder := query.NewBuilder()
		if len(cfg.DefaultTopics) > 0 {
			builder.DefaultTopics = cfg.DefaultTopics
		}
		params := builder.Build(filter, cfg.Limit, cfg.Page)

		client := &oreilly.Client{HTTPClient: &http.Client{Timeout: cfg.Timeout}}
		results, err := client.Search(cmd.Context(), params, cfg)
		if err != nil {
			var te *oreilly.TransportError
			if errors.As(err, &te) {
				return fmt.Errorf("search aborted: %w", te)
			}
			return err
		}
		table = tabular.Normalize(results)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		if err := tabular.FormatJSON(table, os.Stdout); err != nil {
			return err
		}
	} else {
		tabular.FormatBooks(table, os.Stdout)
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := writeCSVFile(output, table); err != nil {
			return err
		}
		fmt.Printf("\nResults saved to %s\n", output)
	}

	if save, _ := cmd.Flags().GetString("save"); save != "" {
		if err := oreilly.WriteResultFile(save, filter, table); err != nil {
			return err
		}
		fmt.Printf("\nSearch saved to %s\n", save)
	}

	return nil
}

// filterFromFlags assembles the search filter, validating date flags here
// so malformed input never reaches the query builder.
func filterFromFlags(cmd *cobra.Command, args []string) (query.Filter, error) {
	author, _ := cmd.Flags().GetString("author")
	topics, _ := cmd.Flags().GetStringSlice("topic")
	fields, _ := cmd.Flags().GetStringSlice("fields")

	f := query.Filter{
		FreeText: strings.Join(args, " "),
		Author:   author,
		Topics:   topics,
		Fields:   fields,
	}

	var err error
	if f.PublishedAfter, err = dateFlag(cmd, "after"); err != nil {
		return query.Filter{}, err
	}
	if f.PublishedBefore, err = dateFlag(cmd, "before"); err != nil {
		return query.Filter{}, err
	}
	return f, nil
}

func dateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s date %q: expected YYYY-MM-DD", name, s)
	}
	return t, nil
}

// defaultTopicPolicy resolves whether default topics apply: the config knob
// enables them, and --all-topics always disables them.
func defaultTopicPolicy(cfg types.SearchConfig, allTopics bool) bool {
	return cfg.UseDefaultTopics && !allTopics
}

// searchConfig resolves config-file settings, letting changed flags win.
func searchConfig(cmd *cobra.Command) types.SearchConfig {
	cfg := types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("http.timeout"),
			UserAgent: viper.GetString("http.user_agent"),
		},
		Limit:            viper.GetInt("search.limit"),
		UseDefaultTopics: viper.GetBool("search.use_default_topics"),
		DefaultTopics:    viper.GetStringSlice("search.default_topics"),
		MaxRetries:       viper.GetInt("http.max_retries"),
	}

	if cmd.Flags().Changed("limit") {
		cfg.Limit, _ = cmd.Flags().GetInt("limit")
	}
	cfg.Page, _ = cmd.Flags().GetInt("page")
	return cfg
}

func writeCSVFile(path string, table tabular.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}
	defer f.Close()

	if err := tabular.WriteCSV(f, tabular.ToExport(table)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func init() {
	searchCmd.Flags().StringP("author", "a", "", "filter by author name")
	searchCmd.Flags().StringSliceP("topic", "t", nil, "filter by topic (repeatable)")
	searchCmd.Flags().String("after", "", "only books published after this date (YYYY-MM-DD)")
	searchCmd.Flags().String("before", "", "only books published before this date (YYYY-MM-DD)")
	searchCmd.Flags().IntP("limit", "l", 10, "number of results to return")
	searchCmd.Flags().IntP("page", "p", 0, "page number for pagination")
	searchCmd.Flags().StringSlice("fields", nil, "record fields to request (comma-separated; default all)")
	searchCmd.Flags().Bool("all-topics", false, "search all topics (disable default data science filter)")
	searchCmd.Flags().StringP("output", "o", "", "save results to a CSV file")
	searchCmd.Flags().String("save", "", "save the search and results to a YAML file")
	searchCmd.Flags().String("from-file", "", "display a previously saved search instead of querying")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
