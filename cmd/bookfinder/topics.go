// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bookfinder/internal/query"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the available topic filters",
	Long: `Topics prints the curated catalog of topics accepted by the --topic flag.
The list is static; it is not fetched from the provider.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("\nAvailable topics:")
		for _, t := range query.AvailableTopics() {
			fmt.Printf("- %s\n", t)
		}
	},
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}
