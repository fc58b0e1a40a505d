package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mgamergo/MacroMate/config"
	"github.com/mgamergo/MacroMate/identity"
	"github.com/mgamergo/MacroMate/routes"
)

// stubProvider resolves the fixed token "valid-<subject>" to that
// subject and serves a canned profile, standing in for the external
// identity provider.
type stubProvider struct{}

func (stubProvider) ResolveCaller(_ context.Context, credential string) (string, error) {
	subject, ok := strings.CutPrefix(credential, "valid-")
	if !ok || subject == "" {
		return "", identity.ErrUnauthenticated
	}
	return subject, nil
}

func (stubProvider) FetchProfile(_ context.Context, subjectID string) (identity.Profile, error) {
	return identity.Profile{
		ID:    subjectID,
		Name:  "Test User",
		Email: subjectID + "@example.com",
	}, nil
}

// testWebhookSecret is the base64 of "webhook-test-secret-key!", in
// the provider's whsec format.
const testWebhookSecret = "whsec_d2ViaG9vay10ZXN0LXNlY3JldC1rZXkh"

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// A named in-memory database so the connection pool sees one
	// store; a fresh one per test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	verifier, err := identity.NewSvixVerifier(testWebhookSecret)
	require.NoError(t, err)

	cfg := &config.Config{FrontendURL: "http://localhost:5173"}
	return routes.SetupRouter(db, cfg, stubProvider{}, verifier), db
}

// doJSON performs a request against the router. An empty token leaves
// the Authorization header off entirely.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
