package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"openform/internal/classify"
)

var classifyCmd = &cobra.Command{
	Use:   "classify token...",
	Short: "Print the category and tag of each token",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, t := range args {
			fmt.Fprintf(w, "%s\t%s\t%s\n", t, classify.Categorize(t), classify.Tag(t))
		}
		return nil
	},
}

var correctCmd = &cobra.Command{
	Use:   "correct word...",
	Short: "Print the correction chosen for each word",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		sc := a.Pipeline.Model().Corrector
		w := cmd.OutOrStdout()
		for _, word := range args {
			c := sc.Explain(strings.ToLower(word))
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", c.Original, c.Corrected, c.Tier, c.Count)
		}
		return nil
	},
}

var wordsLimit int

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Print the most frequent words of the trained model",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		table := a.Pipeline.Model().Table
		words := table.Words()
		if wordsLimit > 0 && len(words) > wordsLimit {
			words = words[:wordsLimit]
		}
		w := cmd.OutOrStdout()
		for _, word := range words {
			n, _ := table.Count(word)
			fmt.Fprintf(w, "%s\t%d\n", word, n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd, correctCmd, wordsCmd)
	wordsCmd.Flags().IntVarP(&wordsLimit, "limit", "n", 20, "number of words to print; 0 prints all")
}
