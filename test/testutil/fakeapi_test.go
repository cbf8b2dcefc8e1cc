package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sdg-knowledge/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeAPI_RecordsRequests(t *testing.T) {
	api := NewFakeAPI(t)
	api.Reply(http.MethodPost, "api/auth/activity/", http.StatusCreated, gin.H{"ok": true})

	resp, err := http.Post(api.URL()+"api/auth/activity/?x=1", "application/json", strings.NewReader(`{"page":"Home"}`))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	reqs := api.RequestsTo(http.MethodPost, "/api/auth/activity/")
	require.Len(t, reqs, 1)
	assert.Equal(t, "x=1", reqs[0].Query)

	var body map[string]string
	reqs[0].Decode(t, &body)
	assert.Equal(t, "Home", body["page"])
	assert.Equal(t, 0, api.Count(http.MethodGet, "api/auth/activity/"))
}

func TestRequireToken(t *testing.T) {
	tokens := auth.NewJWTManager("fake-api-secret", time.Hour)
	valid, err := tokens.GenerateToken("alice")
	require.NoError(t, err)

	router := SetupRouter()
	router.GET("/me", RequireToken("Token", tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString(UsernameKey)})
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Token " + valid, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Bearer " + valid, http.StatusUnauthorized},
		{"bad token", "Token abc", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			var body map[string]string
			ParseResponse(t, w, &body)
			if tt.status == http.StatusOK {
				assert.Equal(t, "alice", body["username"])
			} else {
				assert.NotEmpty(t, body["detail"])
			}
		})
	}
}
