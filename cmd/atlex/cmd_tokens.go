package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	tokensCmd = &cobra.Command{
		Use:   "tokens [file]",
		Short: "Dump the token stream of an AT source",
		Long: `Tokenizes one source and prints every token with its position.
Reads stdin when no file is given. Error tokens are printed too; the
stream skips to the next line after each one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTokens,
	}
	tokensMode    string
	tokensJSON    bool
	tokensDropped bool
	tokensGrammar string
)

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().StringVarP(&tokensMode, "mode", "m", "", "start mode (default from settings)")
	tokensCmd.Flags().BoolVar(&tokensJSON, "json", false, "one JSON object per token and line")
	tokensCmd.Flags().BoolVar(&tokensDropped, "dropped", false, "include stripped tokens")
	tokensCmd.Flags().StringVar(&tokensGrammar, "grammar", "", "grammar description file (default embedded AT)")
}

func runTokens(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := loadSettings(path)
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cfg, tokensGrammar)
	if err != nil {
		return err
	}
	src, err := readSource(path)
	if err != nil {
		return err
	}

	mode := tokensMode
	if mode == "" {
		mode = cfg.StartMode
	}
	stream, err := newStream(catalog, mode, src)
	if err != nil {
		return err
	}

	_, err = dumpTokens(os.Stdout, stream, tokensDropped || cfg.ShowDropped, tokensJSON)
	return err
}
