// Package vocab implements the word-data aggregation core and the
// user/favorites persistence mutations around it.
package vocab

import (
	"context"
	"errors"

	"github.com/ilystsov/vocabulary-builder/internal/model"
	"gorm.io/gorm"
)

// TranslationInfo is the per-language slice of a formatted semantic.
type TranslationInfo struct {
	Word     string   `json:"word"`
	Examples []string `json:"examples"`
}

// SemanticInfo is one formatted sense of a word.
type SemanticInfo struct {
	Examples     []string                   `json:"examples"`
	Translations map[string]TranslationInfo `json:"translations"`
}

// WordInfo is the flattened, JSON-serializable form of a word subtree.
// Audio is emitted as base64 by encoding/json.
type WordInfo struct {
	WordID        string         `json:"word_id"`
	Word          string         `json:"word"`
	PartOfSpeech  string         `json:"part_of_speech"`
	Transcription string         `json:"transcription"`
	Audio         []byte         `json:"audio"`
	Semantics     []SemanticInfo `json:"semantics"`
}

// Empty reports whether this is the no-word-found record. Callers
// distinguish absence from a populated response solely by this.
func (w WordInfo) Empty() bool {
	return w.WordID == ""
}

type WordService struct {
	db *gorm.DB
}

func NewWordService(db *gorm.DB) *WordService {
	return &WordService{db: db}
}

// RandomWord selects one word uniformly at random with its full subtree
// preloaded. An empty store yields (nil, nil), never an error.
func (s *WordService) RandomWord(ctx context.Context) (*model.Word, error) {
	var word model.Word
	err := s.db.WithContext(ctx).
		Preload("Semantics.Examples").
		Preload("Semantics.Translations.Examples").
		Order("RANDOM()").
		Take(&word).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &word, nil
}

// FormatWordInfo flattens a word subtree into nested lists and maps. The
// shape is deterministic: zero semantics, translations or examples come
// out as empty collections, never missing fields. All languages present
// are returned; language selection is left to the caller.
func FormatWordInfo(word *model.Word) WordInfo {
	info := WordInfo{
		WordID:        word.ID,
		Word:          word.Word,
		PartOfSpeech:  word.PartOfSpeech,
		Transcription: word.Transcription,
		Audio:         word.Audio,
		Semantics:     make([]SemanticInfo, 0, len(word.Semantics)),
	}

	for _, semantic := range word.Semantics {
		semanticInfo := SemanticInfo{
			Examples:     make([]string, 0, len(semantic.Examples)),
			Translations: make(map[string]TranslationInfo, len(semantic.Translations)),
		}
		for _, example := range semantic.Examples {
			semanticInfo.Examples = append(semanticInfo.Examples, example.Example)
		}
		for _, translation := range semantic.Translations {
			translationInfo := TranslationInfo{
				Word:     translation.Word,
				Examples: make([]string, 0, len(translation.Examples)),
			}
			for _, exampleTranslation := range translation.Examples {
				translationInfo.Examples = append(translationInfo.Examples, exampleTranslation.Example)
			}
			semanticInfo.Translations[translation.Language] = translationInfo
		}
		info.Semantics = append(info.Semantics, semanticInfo)
	}

	return info
}

// FetchRandomWordData composes RandomWord and FormatWordInfo. When no
// word exists it returns the empty record, not an error.
func (s *WordService) FetchRandomWordData(ctx context.Context) (WordInfo, error) {
	word, err := s.RandomWord(ctx)
	if err != nil {
		return WordInfo{}, err
	}
	if word == nil {
		return WordInfo{}, nil
	}
	return FormatWordInfo(word), nil
}
