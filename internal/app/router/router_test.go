package router

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"accounts_backend/internal/feature/accounts/adapters"
	"accounts_backend/internal/feature/accounts/domain/entity"
	accounthandler "accounts_backend/internal/feature/accounts/transport/handler"
	"accounts_backend/internal/feature/accounts/usecase"
	"accounts_backend/internal/platform/storage"
)

// setupServer wires the full stack - router, handler, usecase, GORM
// repository over in-memory SQLite and a temp-dir file store - so requests
// exercise the real wire contract end to end.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")
	require.NoError(t, db.AutoMigrate(&entity.User{}), "failed to migrate table")

	files, err := storage.NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	uc := usecase.NewAccountUsecase(adapters.NewUserGorm(db), files)
	return NewRouter(accounthandler.NewAccountHandler(uc), files.Dir())
}

// postJSON sends a JSON body and returns the recorded response.
func postJSON(t *testing.T, r *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func listUsers(t *testing.T, r *gin.Engine) []gin.H {
	t.Helper()

	req, _ := http.NewRequest(http.MethodGet, "/users", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var users []gin.H
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	return users
}

func TestAccountLifecycle(t *testing.T) {
	r := setupServer(t)

	signupBody := gin.H{
		"name":     "A",
		"number":   "1234567890",
		"dob":      "2000-01-01",
		"email":    "a@x.com",
		"password": "secret1",
	}

	// Signup creates the record and never leaks the hash.
	w := postJSON(t, r, "/signup", signupBody)
	require.Equal(t, http.StatusCreated, w.Code)

	var created gin.H
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "a@x.com", created["email"])
	assert.Equal(t, "2000-01-01", created["dob"])
	assert.NotContains(t, w.Body.String(), "$2a$")

	id := created["id"]
	require.NotNil(t, id)

	// A second signup with the same email fails and the store keeps
	// exactly one record.
	w = postJSON(t, r, "/signup", signupBody)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Len(t, listUsers(t, r), 1)

	// Correct credentials log in.
	w = postJSON(t, r, "/login", gin.H{"email": "a@x.com", "password": "secret1"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"login successful"}`, w.Body.String())

	// Wrong password and never-registered email yield the identical
	// rejection, status and message.
	wrongPass := postJSON(t, r, "/login", gin.H{"email": "a@x.com", "password": "wrong"})
	unknownEmail := postJSON(t, r, "/login", gin.H{"email": "nobody@x.com", "password": "secret1"})
	assert.Equal(t, http.StatusBadRequest, wrongPass.Code)
	assert.Equal(t, wrongPass.Code, unknownEmail.Code)
	assert.Equal(t, wrongPass.Body.String(), unknownEmail.Body.String())

	// Partial update: a new name plus a picture; email survives untouched
	// and the old password still verifies.
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("name", "B"))
	fw, err := mw.CreateFormFile("profilePicture", "avatar.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, _ := http.NewRequest(http.MethodPut, "/users/1", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	uw := httptest.NewRecorder()
	r.ServeHTTP(uw, req)
	require.Equal(t, http.StatusOK, uw.Code)

	var updated gin.H
	require.NoError(t, json.Unmarshal(uw.Body.Bytes(), &updated))
	assert.Equal(t, "B", updated["name"])
	assert.Equal(t, "a@x.com", updated["email"])
	assert.Contains(t, updated["profilePicture"], "/uploads/")
	assert.NotContains(t, uw.Body.String(), "$2a$")

	w = postJSON(t, r, "/login", gin.H{"email": "a@x.com", "password": "secret1"})
	assert.Equal(t, http.StatusOK, w.Code, "password must survive an update that did not supply one")

	// The uploaded picture is served back from the static route.
	req, _ = http.NewRequest(http.MethodGet, updated["profilePicture"].(string), nil)
	sw := httptest.NewRecorder()
	r.ServeHTTP(sw, req)
	assert.Equal(t, http.StatusOK, sw.Code)
	assert.Equal(t, "png-bytes", sw.Body.String())

	// Delete removes the record; a repeat delete is still a 200.
	req, _ = http.NewRequest(http.MethodDelete, "/users/1", nil)
	dw := httptest.NewRecorder()
	r.ServeHTTP(dw, req)
	assert.Equal(t, http.StatusOK, dw.Code)
	assert.Empty(t, listUsers(t, r))

	req, _ = http.NewRequest(http.MethodDelete, "/users/1", nil)
	dw = httptest.NewRecorder()
	r.ServeHTTP(dw, req)
	assert.Equal(t, http.StatusOK, dw.Code)
}

func TestPasswordChangeOverTheWire(t *testing.T) {
	r := setupServer(t)

	w := postJSON(t, r, "/signup", gin.H{"email": "a@x.com", "password": "oldpass"})
	require.Equal(t, http.StatusCreated, w.Code)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("password", "newpass"))
	require.NoError(t, mw.Close())

	req, _ := http.NewRequest(http.MethodPut, "/users/1", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	uw := httptest.NewRecorder()
	r.ServeHTTP(uw, req)
	require.Equal(t, http.StatusOK, uw.Code)

	w = postJSON(t, r, "/login", gin.H{"email": "a@x.com", "password": "newpass"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, r, "/login", gin.H{"email": "a@x.com", "password": "oldpass"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid email or password"}`, w.Body.String())
}
