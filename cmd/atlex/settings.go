package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kbaskett248/atlex/config"
	"github.com/kbaskett248/atlex/grammar"
	"github.com/kbaskett248/atlex/source"
)

const defaultConfigHint = config.FileName + " found upward from the source"

// catalogs caches grammars loaded through settings for the lifetime of
// the process; a watch session hits it on every re-check.
var catalogs = config.NewCatalogs()

// loadSettings resolves the settings for checking forPath: the --config
// flag when given, otherwise the nearest settings file upward from the
// source, otherwise defaults.
func loadSettings(forPath string) (*config.Config, error) {
	if configFlag != "" {
		return config.Load(configFlag)
	}

	dir := "."
	if forPath != "" && forPath != "-" {
		dir = filepath.Dir(forPath)
	}
	found, err := config.Search(dir)
	if err != nil || found == "" {
		return config.Default(), err
	}

	slog.Debug("using settings", "path", found)
	return config.Load(found)
}

// loadCatalog returns the catalog the settings select, with the
// grammar flag of a command taking precedence over the settings file.
func loadCatalog(cfg *config.Config, grammarFlag string) (*grammar.Catalog, error) {
	if grammarFlag != "" {
		over := *cfg
		over.Grammar = grammarFlag
		cfg = &over
	}
	return catalogs.Load(cfg)
}

// readSource reads the named file, or stdin for "-" or an empty name.
func readSource(path string) (*source.Source, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return source.New("<stdin>", source.NormalizeNewlines(data)), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return source.New(path, source.NormalizeNewlines(data)), nil
}
