package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestLimitAllowsBurstThenRejects(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		r := httptest.NewRequest("POST", "/api/v1/user/auth", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler(rec, r, nil)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d within the burst", i+1)
	}

	r := httptest.NewRequest("POST", "/api/v1/user/auth", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	handler(rec, r, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestLimitSharesBucketAcrossPorts(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	// each request arrives on a fresh connection, so a fresh source port
	for _, port := range []string{"1111", "2222", "3333"} {
		r := httptest.NewRequest("POST", "/api/v1/user/auth", nil)
		r.RemoteAddr = "10.0.0.1:" + port
		rec := httptest.NewRecorder()
		handler(rec, r, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	r := httptest.NewRequest("POST", "/api/v1/user/auth", nil)
	r.RemoteAddr = "10.0.0.1:4444"
	rec := httptest.NewRecorder()
	handler(rec, r, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestLimitIsPerClient(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 4; i++ {
		r := httptest.NewRequest("POST", "/api/v1/user/auth", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		handler(httptest.NewRecorder(), r, nil)
	}

	r := httptest.NewRequest("POST", "/api/v1/user/auth", nil)
	r.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	handler(rec, r, nil)
	assert.Equal(t, http.StatusOK, rec.Code, "another client keeps its own bucket")
}
