package main

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"openform/pkg/options"
)

var processFlags struct {
	removeStopwords bool
	tagNumeric      bool
	correctSpelling bool
	killNonwords    bool
	tagGarbage      bool
}

var processCmd = &cobra.Command{
	Use:   "process [answer...]",
	Short: "Normalize answers and print one JSON token array per answer",
	Long: `Normalize each argument as one answer. With no arguments, every line
of standard input is an answer.

Flags that are not given keep the configured defaults.

Examples:
  openform process "I have 42 apples"
  openform process --tag-numeric --kill-nonwords=false < answers.txt`,
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	f := processCmd.Flags()
	f.BoolVar(&processFlags.removeStopwords, "remove-stopwords", false, "drop stopwords")
	f.BoolVar(&processFlags.tagNumeric, "tag-numeric", false, "replace numeric tokens with their category")
	f.BoolVar(&processFlags.correctSpelling, "correct-spelling", false, "spell-correct tokens")
	f.BoolVar(&processFlags.killNonwords, "kill-nonwords", false, "replace non-words with nonsense_word")
	f.BoolVar(&processFlags.tagGarbage, "tag-garbage", false, "replace filler tokens such as lol with garbage")
}

// overrides returns options only for the flags set on the command line.
func overrides(cmd *cobra.Command) []options.Options {
	var o options.Overrides
	set := func(name string, v bool, dst **bool) {
		if cmd.Flags().Changed(name) {
			*dst = &v
		}
	}
	set("remove-stopwords", processFlags.removeStopwords, &o.RemoveStopwords)
	set("tag-numeric", processFlags.tagNumeric, &o.TagNumeric)
	set("correct-spelling", processFlags.correctSpelling, &o.CorrectSpelling)
	set("kill-nonwords", processFlags.killNonwords, &o.KillNonwords)
	set("tag-garbage", processFlags.tagGarbage, &o.TagGarbage)
	return o.Options()
}

func runProcess(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	opts := overrides(cmd)
	enc := json.NewEncoder(cmd.OutOrStdout())
	emit := func(answer string) error {
		return enc.Encode(a.Pipeline.Process(answer, opts...))
	}

	if len(args) > 0 {
		for _, answer := range args {
			if err := emit(answer); err != nil {
				return err
			}
		}
		return nil
	}
	return eachLine(cmd.InOrStdin(), emit)
}

func eachLine(r io.Reader, fn func(string) error) error {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 1024*1024)
	for s.Scan() {
		if err := fn(s.Text()); err != nil {
			return err
		}
	}
	return s.Err()
}
