package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/globals"
)

func TestMain(m *testing.M) {
	globals.JwtSecret = []byte("test-signing-key")
	m.Run()
}

func TestSignAndValidateToken(t *testing.T) {
	token, err := SignToken("u12345", "Ada", "Lovelace", "ada@example.com", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "u12345", claims.UserID)
	assert.Equal(t, "Ada", claims.FirstName)
	assert.Equal(t, "Lovelace", claims.LastName)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestValidateJWTRejectsMissingBearer(t *testing.T) {
	token, err := SignToken("u12345", "Ada", "Lovelace", "ada@example.com", false)
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsTampering(t *testing.T) {
	token, err := SignToken("u12345", "Ada", "Lovelace", "ada@example.com", false)
	require.NoError(t, err)

	_, err = ValidateJWT("Bearer " + token + "xx")
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongKey(t *testing.T) {
	token, err := SignToken("u12345", "Ada", "Lovelace", "ada@example.com", false)
	require.NoError(t, err)

	old := globals.JwtSecret
	globals.JwtSecret = []byte("some-other-key")
	defer func() { globals.JwtSecret = old }()

	_, err = ValidateJWT("Bearer " + token)
	assert.Error(t, err)
}

func TestAuthenticateStoresClaims(t *testing.T) {
	token, err := SignToken("u12345", "Ada", "Lovelace", "ada@example.com", false)
	require.NoError(t, err)

	var gotUserID string
	var gotClaims *Claims
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUserID = UserIDFromContext(r.Context())
		gotClaims = ClaimsFromContext(r.Context())
	})

	r := httptest.NewRequest("GET", "/api/v1/user/details/u12345", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler(rec, r, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u12345", gotUserID)
	require.NotNil(t, gotClaims)
	assert.Equal(t, "ada@example.com", gotClaims.Email)
}

func TestAuthenticateRejectsAnonymous(t *testing.T) {
	called := false
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/api/v1/user/allUsers", nil), nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestOptionalAuthPassesAnonymous(t *testing.T) {
	var gotUserID string
	handler := OptionalAuth(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUserID = UserIDFromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/api/v1/blog/allPosts", nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, gotUserID)
}

func TestOptionalAuthAttachesClaims(t *testing.T) {
	token, err := SignToken("u777", "Ada", "Lovelace", "ada@example.com", false)
	require.NoError(t, err)

	var gotUserID string
	handler := OptionalAuth(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUserID = UserIDFromContext(r.Context())
	})

	r := httptest.NewRequest("GET", "/api/v1/blog/allPosts", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	handler(httptest.NewRecorder(), r, nil)

	assert.Equal(t, "u777", gotUserID)
}

func TestRequireAdmin(t *testing.T) {
	adminToken, err := SignToken("u1", "A", "B", "a@b.c", true)
	require.NoError(t, err)
	plainToken, err := SignToken("u2", "C", "D", "c@d.e", false)
	require.NoError(t, err)

	called := false
	handler := Authenticate(RequireAdmin(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
	}))

	r := httptest.NewRequest("GET", "/api/v1/user/allUsers", nil)
	r.Header.Set("Authorization", "Bearer "+plainToken)
	rec := httptest.NewRecorder()
	handler(rec, r, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)

	r = httptest.NewRequest("GET", "/api/v1/user/allUsers", nil)
	r.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	handler(rec, r, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
