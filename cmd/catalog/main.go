// Command catalog replays YAML scripts of book catalog operations against a BST or an AVL tree.
package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/g-m-twostay/go-catalog/Catalog"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func loadScript(path string) (*Catalog.Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Catalog.LoadScript(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var debug bool
	var variant string

	cmdRun := &cobra.Command{
		Use:   "run <script>",
		Short: "Replay a script and print what each step did",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScript(args[0])
			if err != nil {
				return err
			}
			cfg := s.Config()
			if variant != "" {
				if cfg.Variant, err = Catalog.ParseVariant(variant); err != nil {
					return err
				}
			}
			log := newLogger(errOut, debug)
			c, err := Catalog.New(cfg, log)
			if err != nil {
				return err
			}
			if err = c.Replay(s.Steps, out); err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"variant": c.Variant(), "size": c.Len(), "height": c.Height()}).Debug("script replayed")
			return nil
		},
	}
	cmdRun.Flags().StringVar(&variant, "variant", "", "tree to use, bst or avl; overrides the script")

	cmdCompare := &cobra.Command{
		Use:   "compare <script>",
		Short: "Replay a script on both trees and compare their shapes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScript(args[0])
			if err != nil {
				return err
			}
			sums, err := Catalog.Compare(s, newLogger(errOut, debug))
			if err != nil {
				return err
			}
			return printSummaries(out, sums)
		},
	}

	cmdVersion := &cobra.Command{
		Use:   "version",
		Short: "Print the catalog version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(out, version)
		},
	}

	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Book catalog backed by a binary search tree",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log every catalog operation to stderr")
	root.SetOut(out)
	root.SetErr(errOut)
	root.AddCommand(cmdRun, cmdCompare, cmdVersion)
	return root
}

func printSummaries(w io.Writer, sums []Catalog.Summary) error {
	data := pterm.TableData{{"variant", "size", "height"}}
	for _, s := range sums {
		data = append(data, []string{string(s.Variant), strconv.Itoa(s.Size), strconv.FormatUint(uint64(s.Height), 10)})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintln(w, table); err != nil {
		return err
	}
	same := len(sums) == 2 && slices.Equal(sums[0].Keys, sums[1].Keys)
	_, err = fmt.Fprintf(w, "same keys: %t\n", same)
	return err
}
