// Package config provides map-backed configuration with typed accessors
// for didway components.
//
// Config values come from YAML or JSON files (or a plain map) and are read
// with defaulting accessors, so components never fail on missing keys:
//
//	cfg, err := config.FromFile("didway.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	storage := cfg.Sub("storage")
//	path := storage.String("path", "")           // "" = in-memory
//	capacity := storage.Int("cache_capacity", 0) // 0 = no cache
//	ttl := storage.Duration("cache_ttl", 5*time.Minute)
//
// A matching didway.yaml:
//
//	storage:
//	  path: ./documents.db
//	  cache_capacity: 1024
//	  cache_ttl: 30s
package config
