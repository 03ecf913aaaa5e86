package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ilystsov/vocabulary-builder/internal/vocab"
)

type UserHandler struct {
	favorites *vocab.FavoriteService
}

func NewUserHandler(favorites *vocab.FavoriteService) *UserHandler {
	return &UserHandler{favorites: favorites}
}

type wordRequest struct {
	WordID string `json:"word_id" binding:"required"`
}

func (h *UserHandler) SaveWord(c *gin.Context) {
	userID := c.Param("user_id")

	var req wordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "word_id is required"})
		return
	}

	if err := h.favorites.SaveWordForUser(c.Request.Context(), req.WordID, userID); err != nil {
		respondFavoriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Word saved successfully."})
}

func (h *UserHandler) RemoveWord(c *gin.Context) {
	userID := c.Param("user_id")

	var req wordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "word_id is required"})
		return
	}

	if err := h.favorites.RemoveWordForUser(c.Request.Context(), req.WordID, userID); err != nil {
		respondFavoriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Word removed successfully."})
}

func (h *UserHandler) SavedWords(c *gin.Context) {
	userID := c.Param("user_id")

	words, err := h.favorites.AllSavedWordsForUser(c.Request.Context(), userID)
	if err != nil {
		respondFavoriteError(c, err)
		return
	}

	formatted := make([]vocab.WordInfo, 0, len(words))
	for i := range words {
		formatted = append(formatted, vocab.FormatWordInfo(&words[i]))
	}

	c.JSON(http.StatusOK, formatted)
}

func respondFavoriteError(c *gin.Context, err error) {
	if errors.Is(err, vocab.ErrUserNotFound) || errors.Is(err, vocab.ErrWordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
