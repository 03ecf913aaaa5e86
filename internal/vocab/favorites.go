package vocab

import (
	"context"
	"errors"

	"github.com/ilystsov/vocabulary-builder/internal/model"
	"gorm.io/gorm"
)

// FavoriteService mutates the user/word favorites relation. All checks
// and writes for one call run inside a single transaction.
type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// SaveWordForUser adds a word to the user's favorites. Saving an
// already-favorited word is a no-op, not a duplicate.
func (s *FavoriteService) SaveWordForUser(ctx context.Context, wordID, userID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUserExists(tx, userID); err != nil {
			return err
		}
		if err := ensureWordExists(tx, wordID); err != nil {
			return err
		}

		var existing model.FavoriteWord
		err := tx.Where("user_id = ? AND word_id = ?", userID, wordID).First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(&model.FavoriteWord{UserID: userID, WordID: wordID}).Error
	})
}

// RemoveWordForUser removes a word from the user's favorites. A word
// that is not currently favorited fails with ErrWordNotFound.
func (s *FavoriteService) RemoveWordForUser(ctx context.Context, wordID, userID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUserExists(tx, userID); err != nil {
			return err
		}
		if err := ensureWordExists(tx, wordID); err != nil {
			return err
		}

		result := tx.Where("user_id = ? AND word_id = ?", userID, wordID).Delete(&model.FavoriteWord{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrWordNotFound
		}
		return nil
	})
}

// AllSavedWordsForUser returns the user's favorite words with their full
// subtrees preloaded, ready for FormatWordInfo.
func (s *FavoriteService) AllSavedWordsForUser(ctx context.Context, userID string) ([]model.Word, error) {
	db := s.db.WithContext(ctx)
	if err := ensureUserExists(db, userID); err != nil {
		return nil, err
	}

	var words []model.Word
	err := db.
		Joins("JOIN favorite_words ON favorite_words.word_id = words.id").
		Where("favorite_words.user_id = ?", userID).
		Preload("Semantics.Examples").
		Preload("Semantics.Translations.Examples").
		Find(&words).Error
	if err != nil {
		return nil, err
	}
	return words, nil
}

func ensureUserExists(tx *gorm.DB, userID string) error {
	var count int64
	if err := tx.Model(&model.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrUserNotFound
	}
	return nil
}

func ensureWordExists(tx *gorm.DB, wordID string) error {
	var count int64
	if err := tx.Model(&model.Word{}).Where("id = ?", wordID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrWordNotFound
	}
	return nil
}
