package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"sdg-knowledge/pkg/auth"
	"sdg-knowledge/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// UsernameKey is the gin context key set by FakeAPI.RequireToken.
const UsernameKey = "username"

// RecordedRequest is a request the fake API received.
type RecordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

// Decode unmarshals the recorded JSON body into target.
func (r RecordedRequest) Decode(t *testing.T, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body, target))
}

// FakeAPI is a gin server standing in for the SDG Knowledge System backend.
// Every request is recorded before routing.
type FakeAPI struct {
	Router *gin.Engine
	Server *httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewFakeAPI starts a fake backend that is closed when the test ends.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()

	f := &FakeAPI{Router: SetupRouter()}
	f.Router.Use(f.record)
	f.Server = httptest.NewServer(f.Router)
	t.Cleanup(f.Server.Close)
	return f
}

// URL returns the base URL with a trailing slash.
func (f *FakeAPI) URL() string {
	return f.Server.URL + "/"
}

// Handle registers a handler. path is relative to the base URL.
func (f *FakeAPI) Handle(method, path string, handlers ...gin.HandlerFunc) {
	f.Router.Handle(method, "/"+strings.TrimPrefix(path, "/"), handlers...)
}

// Reply registers a handler that always answers status with body.
func (f *FakeAPI) Reply(method, path string, status int, body interface{}) {
	f.Handle(method, path, func(c *gin.Context) {
		if body == nil {
			c.Status(status)
			return
		}
		c.JSON(status, body)
	})
}

// ReplyRaw registers a handler that always answers with a literal JSON body.
func (f *FakeAPI) ReplyRaw(method, path string, status int, body string) {
	f.Handle(method, path, func(c *gin.Context) {
		c.Data(status, "application/json", []byte(body))
	})
}

// Requests returns a copy of everything received so far.
func (f *FakeAPI) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// RequestsTo returns the requests matching method and path.
func (f *FakeAPI) RequestsTo(method, path string) []RecordedRequest {
	path = "/" + strings.TrimPrefix(path, "/")
	var out []RecordedRequest
	for _, r := range f.Requests() {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// Count returns how many requests matched method and path.
func (f *FakeAPI) Count(method, path string) int {
	return len(f.RequestsTo(method, path))
}

// RequireToken returns a middleware that validates "<scheme> <jwt>" the
// way the backend's token authentication does.
func RequireToken(scheme string, tokens auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
		if len(parts) != 2 || parts[0] != scheme {
			response.Unauthorized(c, "Authentication credentials were not provided.")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid token.")
			c.Abort()
			return
		}

		c.Set(UsernameKey, claims.Username)
		c.Next()
	}
}

func (f *FakeAPI) record(c *gin.Context) {
	var body []byte
	if c.Request.Body != nil {
		body, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}

	f.mu.Lock()
	f.requests = append(f.requests, RecordedRequest{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		Query:  c.Request.URL.RawQuery,
		Header: c.Request.Header.Clone(),
		Body:   body,
	})
	f.mu.Unlock()

	c.Next()
}
