package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Word is a lexical entry. It strictly owns its subtree of semantics,
// examples and translations: cleanup must delete children before parents
// since the store guarantees no cascading.
type Word struct {
	ID            string     `gorm:"type:uuid;primaryKey" json:"id"`
	Word          string     `gorm:"not null;index" json:"word"`
	PartOfSpeech  string     `gorm:"not null" json:"partOfSpeech"`
	Transcription string     `gorm:"not null" json:"transcription"`
	Audio         []byte     `gorm:"not null" json:"audio"`
	Semantics     []Semantic `gorm:"foreignKey:WordID" json:"semantics"`
}

func (Word) TableName() string {
	return "words"
}

func (w *Word) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// Semantic is one sense of a word, grouping its original-language usage
// examples and its per-language translations.
type Semantic struct {
	ID           string        `gorm:"type:uuid;primaryKey" json:"id"`
	WordID       string        `gorm:"type:uuid;not null;index" json:"wordId"`
	Examples     []Example     `gorm:"foreignKey:SemanticID" json:"examples"`
	Translations []Translation `gorm:"foreignKey:SemanticID" json:"translations"`
}

func (Semantic) TableName() string {
	return "semantics"
}

func (s *Semantic) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Translation is a target-language rendering of one semantic. One
// translation per language per semantic is expected but not enforced.
type Translation struct {
	ID         string               `gorm:"type:uuid;primaryKey" json:"id"`
	SemanticID string               `gorm:"type:uuid;not null;index" json:"semanticId"`
	Language   string               `gorm:"not null;size:10" json:"language"`
	Word       string               `gorm:"not null" json:"word"`
	Examples   []ExampleTranslation `gorm:"foreignKey:TranslationID" json:"examples"`
}

func (Translation) TableName() string {
	return "translations"
}

func (t *Translation) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// Example is an original-language usage example tied to a semantic.
type Example struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	SemanticID string `gorm:"type:uuid;not null;index" json:"semanticId"`
	Example    string `gorm:"not null" json:"example"`
}

func (Example) TableName() string {
	return "examples"
}

func (e *Example) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// ExampleTranslation is a translated example sentence tied to a translation.
type ExampleTranslation struct {
	ID            string `gorm:"type:uuid;primaryKey" json:"id"`
	TranslationID string `gorm:"type:uuid;not null;index" json:"translationId"`
	Example       string `gorm:"not null" json:"example"`
}

func (ExampleTranslation) TableName() string {
	return "examples_translations"
}

func (e *ExampleTranslation) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
