package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ilystsov/vocabulary-builder/internal/auth"
	"github.com/ilystsov/vocabulary-builder/internal/handler"
	"github.com/ilystsov/vocabulary-builder/internal/middleware"
	"github.com/ilystsov/vocabulary-builder/internal/model"
	"github.com/ilystsov/vocabulary-builder/internal/vocab"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	dbPath := "./test_handler_" + t.Name() + ".db"
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.Word{},
		&model.Semantic{},
		&model.Translation{},
		&model.Example{},
		&model.ExampleTranslation{},
		&model.User{},
		&model.FavoriteWord{},
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	})

	wordService := vocab.NewWordService(db)
	userService := vocab.NewUserService(db)
	favoriteService := vocab.NewFavoriteService(db)
	authService := auth.NewService(db, "test-secret", time.Minute)

	wordHandler := handler.NewWordHandler(wordService)
	authHandler := handler.NewAuthHandler(authService, userService, bcrypt.MinCost, 60)
	userHandler := handler.NewUserHandler(favoriteService)

	r := gin.New()
	r.GET("/new_word", wordHandler.NewWord)
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)
	r.GET("/learn", middleware.AuthMiddleware(authService), authHandler.Learn(wordService))
	r.POST("/users/:user_id/words", userHandler.SaveWord)
	r.DELETE("/users/:user_id/words", userHandler.RemoveWord)
	r.GET("/users/:user_id/words", userHandler.SavedWords)

	return r, db
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signupAndLogin(t *testing.T, r *gin.Engine, username, password string) *http.Cookie {
	w := postForm(r, "/signup", url.Values{"username": {username}, "password": {password}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = postForm(r, "/login", url.Values{"username": {username}, "password": {password}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.AccessTokenCookie {
			return cookie
		}
	}
	t.Fatal("login response carries no access token cookie")
	return nil
}

func TestSignupRejectsDuplicateUsername(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postForm(r, "/signup", url.Values{"username": {"alice"}, "password": {"wonder1"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	w = postForm(r, "/signup", url.Values{"username": {"alice"}, "password": {"wonder1"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Username already registered")
}

func TestLoginSetsBearerCookie(t *testing.T) {
	r, _ := newTestRouter(t)

	cookie := signupAndLogin(t, r, "alice", "wonder1")

	value, err := url.QueryUnescape(cookie.Value)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(value, auth.TokenScheme+" "))
	assert.True(t, cookie.HttpOnly)
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := newTestRouter(t)

	postForm(r, "/signup", url.Values{"username": {"alice"}, "password": {"wonder1"}})

	w := postForm(r, "/login", url.Values{"username": {"alice"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Incorrect username or password")
}

func TestLearnRequiresAuth(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/learn?language=ru", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/learn?language=ru", nil)
	req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: "Bearer bogus"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLearnWithValidCookie(t *testing.T) {
	r, _ := newTestRouter(t)

	cookie := signupAndLogin(t, r, "alice", "wonder1")

	req := httptest.NewRequest(http.MethodGet, "/learn?language=ru", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestNewWordEmptyStore(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/new_word?language=ru", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No word found")
}

func TestNewWordRejectsUnknownLanguage(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/new_word?language=xx", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNewWordReturnsFormattedWord(t *testing.T) {
	r, db := newTestRouter(t)

	word := &model.Word{
		Word:          "accomplish",
		PartOfSpeech:  "verb",
		Transcription: "[əˈkʌmplɪʃ]",
		Audio:         []byte("audio"),
	}
	require.NoError(t, db.Create(word).Error)

	req := httptest.NewRequest(http.MethodGet, "/new_word?language=ru", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var info vocab.WordInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, word.ID, info.WordID)
	assert.NotNil(t, info.Semantics)
}

func TestFavoritesEndpoints(t *testing.T) {
	r, db := newTestRouter(t)

	user := &model.User{Username: "alice", HashedPassword: "hash"}
	require.NoError(t, db.Create(user).Error)
	word := &model.Word{Word: "accomplish", PartOfSpeech: "verb", Transcription: "[x]", Audio: []byte("a")}
	require.NoError(t, db.Create(word).Error)

	body := `{"word_id":"` + word.ID + `"}`

	w := doJSON(r, http.MethodPost, "/users/"+user.ID+"/words", body)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/users/"+user.ID+"/words", "")
	require.Equal(t, http.StatusOK, w.Code)
	var words []vocab.WordInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &words))
	require.Len(t, words, 1)
	assert.Equal(t, word.ID, words[0].WordID)

	w = doJSON(r, http.MethodDelete, "/users/"+user.ID+"/words", body)
	require.Equal(t, http.StatusOK, w.Code)

	// Removing a word that is no longer favorited fails loudly.
	w = doJSON(r, http.MethodDelete, "/users/"+user.ID+"/words", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFavoritesUnknownUser(t *testing.T) {
	r, db := newTestRouter(t)

	word := &model.Word{Word: "accomplish", PartOfSpeech: "verb", Transcription: "[x]", Audio: []byte("a")}
	require.NoError(t, db.Create(word).Error)

	body := `{"word_id":"` + word.ID + `"}`
	w := doJSON(r, http.MethodPost, "/users/00000000-0000-0000-0000-000000000000/words", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "user not found")
}
