// Command visitctl inspects entity hierarchies declared in YAML documents.
//
// It resolves ancestor tables the same way the programmatic API does and can
// simulate dispatch against a set of handled types:
//
//	visitctl lineage hierarchy.yaml
//	visitctl probe hierarchy.yaml --entity F --types A,B,C
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/visitmesh/hierarchy"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "visitctl",
	Short:   "Inspect visitmesh entity hierarchies",
	Long:    `visitctl resolves the ancestor tables of YAML-declared entity hierarchies and simulates visitor dispatch against them.`,
	Version: version,
}

var lineageCmd = &cobra.Command{
	Use:   "lineage <file>",
	Short: "Print the ancestor table of every declared entity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := hierarchy.LoadFile(args[0])
		if err != nil {
			return err
		}
		for _, name := range table.Names() {
			l, _ := table.Lineage(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", name, strings.Join(l.Names(), " -> "))
		}
		return nil
	},
}

var (
	probeEntity string
	probeTypes  string
)

var probeCmd = &cobra.Command{
	Use:   "probe <file>",
	Short: "Simulate dispatch of an entity against a set of handled types",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := hierarchy.LoadFile(args[0])
		if err != nil {
			return err
		}
		handled := strings.Split(probeTypes, ",")
		for i := range handled {
			handled[i] = strings.TrimSpace(handled[i])
		}

		match, ok, err := table.Probe(probeEntity, handled...)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintf(cmd.OutOrStdout(), "plain dispatch:     %s\n", match)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "plain dispatch:     incompatible visitor for %s\n", probeEntity)
		}

		order, err := table.VisitOrder(probeEntity, handled...)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "recursive dispatch: %s\n", strings.Join(order, " -> "))
		return nil
	},
}

func init() {
	probeCmd.Flags().StringVarP(&probeEntity, "entity", "e", "", "entity to dispatch")
	probeCmd.Flags().StringVarP(&probeTypes, "types", "t", "", "comma-separated handled types")
	_ = probeCmd.MarkFlagRequired("entity")
	_ = probeCmd.MarkFlagRequired("types")

	rootCmd.AddCommand(lineageCmd)
	rootCmd.AddCommand(probeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
