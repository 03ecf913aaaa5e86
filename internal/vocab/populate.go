package vocab

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/ilystsov/vocabulary-builder/internal/language"
	"github.com/ilystsov/vocabulary-builder/internal/model"
	"gorm.io/gorm"
)

// audioPlaceholder stands in for entries shipped without audio data.
var audioPlaceholder = []byte("Audio Placeholder")

// WordEntry mirrors one element of the population JSON file.
type WordEntry struct {
	Word          string          `json:"word"`
	PartOfSpeech  string          `json:"part_of_speech"`
	Transcription string          `json:"transcription"`
	Audio         []byte          `json:"audio"`
	Semantics     []SemanticEntry `json:"semantics"`
}

type SemanticEntry struct {
	Examples     []string                    `json:"examples"`
	Translations map[string]TranslationEntry `json:"translations"`
}

type TranslationEntry struct {
	Word     string   `json:"word"`
	Examples []string `json:"examples"`
}

// LoadWordEntries reads the population JSON file.
func LoadWordEntries(path string) ([]WordEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []WordEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// PopulateWords inserts each word's full subtree in its own transaction.
// A failing word rolls back and is skipped; the batch continues. No
// partial subtree is ever committed.
func PopulateWords(db *gorm.DB, entries []WordEntry) (inserted, skipped int) {
	for _, entry := range entries {
		if err := populateWord(db, entry); err != nil {
			log.Printf("Error populating word %q: %v", entry.Word, err)
			skipped++
			continue
		}
		inserted++
	}
	return inserted, skipped
}

func populateWord(db *gorm.DB, entry WordEntry) error {
	return db.Transaction(func(tx *gorm.DB) error {
		audio := entry.Audio
		if len(audio) == 0 {
			audio = audioPlaceholder
		}

		word := model.Word{
			Word:          entry.Word,
			PartOfSpeech:  entry.PartOfSpeech,
			Transcription: entry.Transcription,
			Audio:         audio,
		}
		if err := tx.Create(&word).Error; err != nil {
			return err
		}

		for _, semanticEntry := range entry.Semantics {
			semantic := model.Semantic{WordID: word.ID}
			if err := tx.Create(&semantic).Error; err != nil {
				return err
			}

			for _, exampleText := range semanticEntry.Examples {
				example := model.Example{SemanticID: semantic.ID, Example: exampleText}
				if err := tx.Create(&example).Error; err != nil {
					return err
				}
			}

			for code, translationEntry := range semanticEntry.Translations {
				lang, err := language.Parse(code)
				if err != nil {
					return fmt.Errorf("word %q: %w", entry.Word, err)
				}

				translation := model.Translation{
					SemanticID: semantic.ID,
					Language:   lang.String(),
					Word:       translationEntry.Word,
				}
				if err := tx.Create(&translation).Error; err != nil {
					return err
				}

				for _, translatedExample := range translationEntry.Examples {
					exampleTranslation := model.ExampleTranslation{
						TranslationID: translation.ID,
						Example:       translatedExample,
					}
					if err := tx.Create(&exampleTranslation).Error; err != nil {
						return err
					}
				}
			}
		}

		return nil
	})
}
