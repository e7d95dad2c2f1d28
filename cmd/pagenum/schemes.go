package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/openscan/pagenum/internal/scheme"
)

var dumpRegistryFlag bool

var schemesCmd = &cobra.Command{
	Use:   "schemes [word]...",
	Short: "Show which numbering scheme (if any) each given word matches",
	Args:  requireWordsUnlessDumping,
	RunE:  runSchemes,
}

func init() {
	schemesCmd.Flags().BoolVar(&dumpRegistryFlag, "dump-registry", false, "dump the registry (builtins plus any composite discovered from the given words) as YAML")
}

// requireWordsUnlessDumping allows zero word arguments only when
// --dump-registry is set; otherwise at least one word is required.
func requireWordsUnlessDumping(cmd *cobra.Command, args []string) error {
	if dumpRegistryFlag || len(args) >= 1 {
		return nil
	}
	return fmt.Errorf("requires at least 1 arg(s), only received %d", len(args))
}

func runSchemes(cmd *cobra.Command, args []string) error {
	registry := scheme.NewRegistry(newLogger())

	for _, word := range args {
		h, ok := registry.Match(word)
		if !ok {
			if scheme.EligibleForComposite(word) {
				if newHandle, discovered := registry.DiscoverComposite(word); discovered {
					h, ok = newHandle, true
				}
			}
			if !ok {
				fmt.Printf("%-20s no match\n", word)
				continue
			}
		}
		s := registry.Scheme(h)
		value, err := s.NumeralValue(word)
		if err != nil {
			fmt.Printf("%-20s %s (value error: %v)\n", word, s.Name(), err)
			continue
		}
		fmt.Printf("%-20s %-12s value=%d extrapolates=%v\n", word, s.Name(), value, s.SupportsExtrapolation())
	}

	if dumpRegistryFlag {
		return dumpRegistry(registry)
	}
	return nil
}

// registryDump is the YAML shape printed by --dump-registry.
type registryDump struct {
	CompositeCount int          `yaml:"composite_count"`
	Schemes        []schemeDump `yaml:"schemes"`
}

type schemeDump struct {
	Handle       int    `yaml:"handle"`
	Name         string `yaml:"name"`
	Extrapolates bool   `yaml:"extrapolates"`
}

func dumpRegistry(registry *scheme.Registry) error {
	dump := registryDump{CompositeCount: registry.CompositeCount()}
	for i, s := range registry.Schemes() {
		dump.Schemes = append(dump.Schemes, schemeDump{
			Handle:       i,
			Name:         s.Name(),
			Extrapolates: s.SupportsExtrapolation(),
		})
	}

	out, err := yaml.Marshal(dump)
	if err != nil {
		return fmt.Errorf("pagenum schemes: marshaling registry dump: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
