package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vendorhub.backend/pkg/logger"
)

func TestActorMiddleware_ValidHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	actorID := uuid.New()

	var got *uuid.UUID
	r := gin.New()
	r.Use(ActorMiddleware())
	r.GET("/", func(c *gin.Context) {
		got = GetActorID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Actor-ID", actorID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.NotNil(t, got)
	assert.Equal(t, actorID, *got)
}

func TestActorMiddleware_MissingOrMalformedHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, header := range []string{"", "not-a-uuid"} {
		var got *uuid.UUID
		r := gin.New()
		r.Use(ActorMiddleware())
		r.GET("/", func(c *gin.Context) {
			got = GetActorID(c)
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("X-Actor-ID", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Nil(t, got, "header %q should yield a system actor", header)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestGetActorID_WrongTypeInContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(ActorIDKey, "string, not uuid")

	assert.Nil(t, GetActorID(c))
}

func TestRequestIDMiddleware_HonorsIncomingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var inContext string
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		inContext = c.GetString(RequestIDKey)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-abc-123", inContext)
	assert.Equal(t, "req-abc-123", w.Header().Get("X-Request-ID"))
}

func TestRequestIDMiddleware_GeneratesWhenAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	generated := w.Header().Get("X-Request-ID")
	require.NotEmpty(t, generated)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}

func TestLoggerMiddleware_PassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Init("development")

	r := gin.New()
	r.Use(RequestIDMiddleware(), LoggerMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping?verbose=1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}
