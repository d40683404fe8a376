package config

import (
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kbaskett248/atlex/atlang"
	"github.com/kbaskett248/atlex/grammar"
	"github.com/kbaskett248/atlex/ruledef"
)

const catalogCacheSize = 32

// Catalogs caches resolved grammar catalogs by description path, so a
// session checking files from several projects loads each grammar once.
// Catalogs are immutable; handing one cached copy to every stream is
// safe.
type Catalogs struct {
	cache *lru.Cache[string, *grammar.Catalog]
}

func NewCatalogs() *Catalogs {
	cache, err := lru.New[string, *grammar.Catalog](catalogCacheSize)
	// New only errors if given invalid parameters, which we don't.
	if err != nil {
		panic(err)
	}
	return &Catalogs{cache: cache}
}

// Load returns the catalog for the grammar the settings name, or the
// embedded AT grammar when cfg.Grammar is empty.
func (cs *Catalogs) Load(cfg *Config) (*grammar.Catalog, error) {
	if cfg.Grammar == "" {
		return atlang.Catalog(), nil
	}
	if c, ok := cs.cache.Get(cfg.Grammar); ok {
		return c, nil
	}

	data, err := os.ReadFile(cfg.Grammar)
	if err != nil {
		return nil, fmt.Errorf("error reading grammar file %s: %w", cfg.Grammar, err)
	}
	c, err := ruledef.LoadBytes(cfg.Grammar, data)
	if err != nil {
		return nil, err
	}

	cs.cache.Add(cfg.Grammar, c)
	return c, nil
}
