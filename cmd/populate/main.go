package main

import (
	"flag"
	"log"

	"github.com/ilystsov/vocabulary-builder/internal/config"
	"github.com/ilystsov/vocabulary-builder/internal/database"
	"github.com/ilystsov/vocabulary-builder/internal/vocab"
)

func main() {
	filePath := flag.String("file", "data/words.json", "Path to word data JSON file")
	flag.Parse()

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	entries, err := vocab.LoadWordEntries(*filePath)
	if err != nil {
		log.Fatalf("Failed to load word data: %v", err)
	}

	log.Printf("Populating %d words from %s", len(entries), *filePath)

	inserted, skipped := vocab.PopulateWords(db, entries)
	log.Printf("Population complete. Inserted: %d, skipped: %d", inserted, skipped)
}
