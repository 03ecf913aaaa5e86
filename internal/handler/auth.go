package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ilystsov/vocabulary-builder/internal/auth"
	"github.com/ilystsov/vocabulary-builder/internal/language"
	"github.com/ilystsov/vocabulary-builder/internal/middleware"
	"github.com/ilystsov/vocabulary-builder/internal/vocab"
)

type AuthHandler struct {
	auth       *auth.Service
	users      *vocab.UserService
	bcryptCost int
	cookieTTL  int
}

func NewAuthHandler(authService *auth.Service, users *vocab.UserService, bcryptCost, cookieTTLSeconds int) *AuthHandler {
	return &AuthHandler{
		auth:       authService,
		users:      users,
		bcryptCost: bcryptCost,
		cookieTTL:  cookieTTLSeconds,
	}
}

// formLanguage normalizes the language form value, falling back to the
// default rather than failing a signup or login over a bad code.
func formLanguage(c *gin.Context) language.Language {
	lang, err := language.Parse(c.DefaultPostForm("language", language.Default.String()))
	if err != nil {
		return language.Default
	}
	return lang
}

func (h *AuthHandler) Signup(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	lang := formLanguage(c)

	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	existing, err := h.users.UserByUsername(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already registered"})
		return
	}

	hashed, err := auth.HashPassword(password, h.bcryptCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	if _, err := h.users.CreateUser(c.Request.Context(), username, hashed); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/login?language="+lang.String())
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	lang := formLanguage(c)

	identity, err := h.auth.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrIncorrectUsernamePassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	token, err := h.auth.CreateAccessToken(identity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.SetCookie(middleware.AccessTokenCookie, auth.TokenScheme+" "+token, h.cookieTTL, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/learn?language="+lang.String())
}

func (h *AuthHandler) Logout(c *gin.Context) {
	lang, err := language.Parse(c.DefaultQuery("language", language.Default.String()))
	if err != nil {
		lang = language.Default
	}

	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/?language="+lang.String())
}

// Learn is the authenticated landing endpoint: the current identity plus
// a fresh random word.
func (h *AuthHandler) Learn(words *vocab.WordService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		if _, err := language.Parse(c.DefaultQuery("language", language.Default.String())); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		info, err := words.FetchRandomWordData(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch word"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"username": identity.Username,
			"user_id":  identity.UserID,
			"word":     info,
		})
	}
}
