package vocab

import (
	"github.com/ilystsov/vocabulary-builder/internal/model"
	"gorm.io/gorm"
)

// DeleteWord removes every word with the given surface text together
// with its whole subtree and any favorite links pointing at it.
// Children go before parents; the store does not cascade.
func DeleteWord(db *gorm.DB, surface string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var words []model.Word
		if err := tx.Where("word = ?", surface).Find(&words).Error; err != nil {
			return err
		}
		if len(words) == 0 {
			return ErrWordNotFound
		}

		wordIDs := make([]string, 0, len(words))
		for _, word := range words {
			wordIDs = append(wordIDs, word.ID)
		}

		return deleteWordSubtrees(tx, wordIDs)
	})
}

// DeleteAllWords empties the word store and all dependent tables,
// favorite links included.
func DeleteAllWords(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{
			"DELETE FROM examples_translations",
			"DELETE FROM examples",
			"DELETE FROM translations",
			"DELETE FROM semantics",
			"DELETE FROM favorite_words",
			"DELETE FROM words",
		} {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func deleteWordSubtrees(tx *gorm.DB, wordIDs []string) error {
	semanticIDs := func() *gorm.DB {
		return tx.Model(&model.Semantic{}).Select("id").Where("word_id IN ?", wordIDs)
	}
	translationIDs := func() *gorm.DB {
		return tx.Model(&model.Translation{}).Select("id").Where("semantic_id IN (?)", semanticIDs())
	}

	if err := tx.Where("translation_id IN (?)", translationIDs()).Delete(&model.ExampleTranslation{}).Error; err != nil {
		return err
	}
	if err := tx.Where("semantic_id IN (?)", semanticIDs()).Delete(&model.Example{}).Error; err != nil {
		return err
	}
	if err := tx.Where("semantic_id IN (?)", semanticIDs()).Delete(&model.Translation{}).Error; err != nil {
		return err
	}
	if err := tx.Where("word_id IN ?", wordIDs).Delete(&model.Semantic{}).Error; err != nil {
		return err
	}
	if err := tx.Where("word_id IN ?", wordIDs).Delete(&model.FavoriteWord{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", wordIDs).Delete(&model.Word{}).Error
}
