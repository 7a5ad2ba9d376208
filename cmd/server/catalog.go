package main

import (
	"fmt"
	"log"

	"smartenum/internal/builtin"
	"smartenum/internal/config"
	"smartenum/internal/reference"
	"smartenum/internal/smartenum"
)

// loadCatalog собирает справочники из файлов и встроенные семейства.
// При FailFast все семейства инициализируются сразу: их ошибка кэшируется
// до перезапуска, поэтому лучше не стартовать вовсе.
func loadCatalog(cfg config.Config, logger *log.Logger) (reference.Catalog, error) {
	catalog, err := reference.LoadEnumCatalog(cfg.EnumsDir, smartenum.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("load enum catalogs: %w", err)
	}
	if err := builtin.Register(catalog); err != nil {
		return nil, fmt.Errorf("register builtin families: %w", err)
	}
	logger.Printf("loaded %d enum catalogs from %s", len(catalog), cfg.EnumsDir)

	if !cfg.FailFast {
		return catalog, nil
	}
	if issues := catalog.Validate(); len(issues) > 0 {
		for _, it := range issues {
			logger.Printf("catalog %s: %s: %s", it.Catalog, it.Code, it.Message)
		}
		return nil, fmt.Errorf("%d enum catalogs failed validation", len(issues))
	}
	return catalog, nil
}
