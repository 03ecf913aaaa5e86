package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ilystsov/vocabulary-builder/internal/language"
	"github.com/ilystsov/vocabulary-builder/internal/middleware"
	"github.com/ilystsov/vocabulary-builder/internal/vocab"
)

type WordHandler struct {
	words *vocab.WordService
}

func NewWordHandler(words *vocab.WordService) *WordHandler {
	return &WordHandler{words: words}
}

// NewWord returns a random word with its full translation tree, or a
// "No word found" message when the store is empty.
func (h *WordHandler) NewWord(c *gin.Context) {
	if _, err := language.Parse(c.DefaultQuery("language", language.Default.String())); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := h.words.FetchRandomWordData(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch word"})
		return
	}

	if info.Empty() {
		middleware.RecordWordFetch(false)
		c.JSON(http.StatusOK, gin.H{"message": "No word found"})
		return
	}

	middleware.RecordWordFetch(true)
	c.JSON(http.StatusOK, info)
}
