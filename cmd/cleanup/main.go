package main

import (
	"flag"
	"log"

	"github.com/ilystsov/vocabulary-builder/internal/config"
	"github.com/ilystsov/vocabulary-builder/internal/database"
	"github.com/ilystsov/vocabulary-builder/internal/vocab"
)

func main() {
	word := flag.String("word", "", "Delete a single word and its subtree")
	all := flag.Bool("all", false, "Delete all words and related records")
	flag.Parse()

	if (*word == "") == !*all {
		log.Fatal("Usage: cleanup -word <word> | cleanup -all")
	}

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *all {
		if err := vocab.DeleteAllWords(db); err != nil {
			log.Fatalf("Failed to delete all words: %v", err)
		}
		log.Println("Successfully deleted all words and related records")
		return
	}

	if err := vocab.DeleteWord(db, *word); err != nil {
		log.Fatalf("Failed to delete word %q: %v", *word, err)
	}
	log.Printf("Successfully deleted all records for word %q", *word)
}
