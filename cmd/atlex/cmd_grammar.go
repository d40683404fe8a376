package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbaskett248/atlex"
	"github.com/kbaskett248/atlex/atlang"
	"github.com/kbaskett248/atlex/grammar"
	"github.com/kbaskett248/atlex/ruledef"
)

var (
	grammarCmd = &cobra.Command{
		Use:   "grammar [file]",
		Short: "Validate a grammar description and show the resolved catalog",
		Long: `Loads a grammar description and prints its modes with their
effective rule counts and the stripped identifiers. Without a file the
embedded AT grammar is shown. A load error is printed as a diagnostic
with its position in the description.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGrammar,
	}
	grammarJSON bool
)

func init() {
	rootCmd.AddCommand(grammarCmd)
	grammarCmd.Flags().BoolVar(&grammarJSON, "json", false, "export the resolved catalog as JSON")
}

type ruleExport struct {
	Name     string   `json:"name"`
	Kind     string   `json:"kind"`
	Pattern  string   `json:"pattern,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

type modeExport struct {
	Name  string       `json:"name"`
	Rules []ruleExport `json:"rules"`
}

type catalogExport struct {
	Source string       `json:"source,omitempty"`
	Modes  []modeExport `json:"modes"`
	Drop   []string     `json:"drop,omitempty"`
}

func exportCatalog(name string, c *grammar.Catalog) catalogExport {
	exp := catalogExport{Source: name, Drop: c.Drop}
	for i := range c.Modes {
		m := &c.Modes[i]
		me := modeExport{Name: m.Name, Rules: make([]ruleExport, 0, len(m.Rules))}
		for j := range m.Rules {
			r := &m.Rules[j]
			me.Rules = append(me.Rules, ruleExport{
				Name:     r.Name,
				Kind:     r.Kind.String(),
				Pattern:  r.Pattern,
				Keywords: r.Keywords,
			})
		}
		exp.Modes = append(exp.Modes, me)
	}
	return exp
}

func runGrammar(cmd *cobra.Command, args []string) error {
	name := atlang.DescriptionName
	var c *grammar.Catalog

	if len(args) == 0 {
		c = atlang.Catalog()
	} else {
		name = args[0]
		data, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		c, err = ruledef.LoadBytes(name, data)
		if err != nil {
			var le *atlex.Error
			if errors.As(err, &le) {
				fmt.Println(le.Message)
				return errDiagnostics
			}
			return err
		}
	}

	if grammarJSON {
		data, err := json.MarshalIndent(exportCatalog(name, c), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%s: %d modes\n", name, len(c.Modes))
	for i := range c.Modes {
		fmt.Printf("  %-16s %d rules\n", c.Modes[i].Name, len(c.Modes[i].Rules))
	}
	if len(c.Drop) > 0 {
		fmt.Printf("  stripped: %s\n", strings.Join(c.Drop, ", "))
	}
	return nil
}
