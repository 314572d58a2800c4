package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	handymanhttp "github.com/toolshed/handyman/internal/handyman/http"
	"github.com/toolshed/handyman/internal/handyman/service"
	"github.com/toolshed/handyman/internal/handyman/store/drivers/sqlite"
	"github.com/toolshed/handyman/pkg/cryptox"
	"github.com/toolshed/handyman/pkg/jwtx"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "handyman-http-test")
	if err != nil {
		os.Exit(1)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("test-key", pemKey)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := handymanhttp.NewRouter(handymanhttp.RouterConfig{
		Logger:    logger,
		Store:     st,
		Verifier:  jwtx.NewVerifierEdDSA(keys, "handyman-test"),
		JWKS:      keys.PublicJWKS(),
		Accounts:  service.NewAccountService(st, signer, "handyman-test", time.Hour),
		Projects:  service.NewProjectService(st),
		Materials: service.NewMaterialService(st),
		Laborers:  service.NewLaborerService(st),
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var parsed map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func signUp(t *testing.T, srv *httptest.Server, email string) {
	t.Helper()

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/v1/accounts", "", map[string]string{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     email,
		"password":  "hunter22",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func signIn(t *testing.T, srv *httptest.Server, email string) string {
	t.Helper()

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/v1/sessions", "", map[string]string{
		"email":    email,
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func projectsOf(t *testing.T, body map[string]any) []any {
	t.Helper()

	projects, ok := body["projects"].([]any)
	require.True(t, ok, "response has no projects list: %v", body)
	return projects
}

func TestAccountEndpoints(t *testing.T) {
	srv := newTestServer(t)

	signUp(t, srv, "jane@example.com")

	// Duplicate email conflicts.
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/v1/accounts", "", map[string]string{
		"firstName": "Janet", "lastName": "Doe",
		"email": "jane@example.com", "password": "other",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	// Missing fields are client errors.
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/v1/accounts", "", map[string]string{
		"firstName": "Jane",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Wrong password and unknown email both give the same 401.
	resp, badPw := doJSON(t, http.MethodPost, srv.URL+"/v1/sessions", "", map[string]string{
		"email": "jane@example.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, unknown := doJSON(t, http.MethodPost, srv.URL+"/v1/sessions", "", map[string]string{
		"email": "nobody@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, badPw["error"], unknown["error"])

	// The real credentials produce a session with the project list.
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/v1/sessions", "", map[string]string{
		"email": "jane@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "jane@example.com", body["email"])
	require.NotEmpty(t, body["token"])
	require.Empty(t, body["projects"])
}

func TestAuthRequiredOnProjectRoutes(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/v1/projects", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/v1/projects", "garbage-token", map[string]string{
		"name": "Deck Build", "memo": "memo",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProjectCRUDOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	signUp(t, srv, "jane@example.com")
	token := signIn(t, srv, "jane@example.com")

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/v1/projects", token, map[string]string{
		"name": "Deck Build", "memo": "backyard deck",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	projects := projectsOf(t, body)
	require.Len(t, projects, 1)

	project := projects[0].(map[string]any)
	projectID := project["id"].(string)
	require.Equal(t, "Deck Build", project["name"])
	require.Equal(t, 0.0, project["jobPay"])

	// Finances are present even on an empty project.
	fin := project["finances"].(map[string]any)
	require.Equal(t, 0.0, fin["grossIncome"])

	resp, body = doJSON(t, http.MethodPut, srv.URL+"/v1/projects/"+projectID, token, map[string]string{
		"name": "Deck Rebuild", "memo": "tear down and redo",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	project = projectsOf(t, body)[0].(map[string]any)
	require.Equal(t, "Deck Rebuild", project["name"])

	resp, body = doJSON(t, http.MethodPut, srv.URL+"/v1/projects/"+projectID+"/pay", token, map[string]float64{
		"jobPay": 500,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	project = projectsOf(t, body)[0].(map[string]any)
	require.Equal(t, 500.0, project["jobPay"])

	// Negative pay is rejected.
	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/v1/projects/"+projectID+"/pay", token, map[string]float64{
		"jobPay": -1,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = doJSON(t, http.MethodDelete, srv.URL+"/v1/projects/"+projectID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, projectsOf(t, body))

	// Deleting again is a 404.
	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/v1/projects/"+projectID, token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLineItemsAndFinancesOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	signUp(t, srv, "jane@example.com")
	token := signIn(t, srv, "jane@example.com")

	_, body := doJSON(t, http.MethodPost, srv.URL+"/v1/projects", token, map[string]string{
		"name": "Deck Build", "memo": "backyard deck",
	})
	projectID := projectsOf(t, body)[0].(map[string]any)["id"].(string)

	_, _ = doJSON(t, http.MethodPut, srv.URL+"/v1/projects/"+projectID+"/pay", token, map[string]float64{
		"jobPay": 500,
	})

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/v1/projects/"+projectID+"/materials", token, map[string]any{
		"name": "Lumber", "quantity": 20, "value": 5.50,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/v1/projects/"+projectID+"/laborers", token, map[string]any{
		"name": "Sam", "job": "Carpenter", "hourlyWage": 30, "hoursWorked": 8,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	project := projectsOf(t, body)[0].(map[string]any)
	fin := project["finances"].(map[string]any)
	require.Equal(t, 110.0, fin["totalMaterialCost"])
	require.Equal(t, 240.0, fin["totalLaborCost"])
	require.Equal(t, 150.0, fin["grossIncome"])

	materialID := project["materials"].([]any)[0].(map[string]any)["id"].(string)
	laborerID := project["laborers"].([]any)[0].(map[string]any)["id"].(string)

	resp, body = doJSON(t, http.MethodPut, srv.URL+"/v1/projects/"+projectID+"/materials/"+materialID, token, map[string]any{
		"name": "Cedar Lumber", "quantity": 10, "value": 5.50,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	project = projectsOf(t, body)[0].(map[string]any)
	require.Len(t, project["materials"].([]any), 1)
	fin = project["finances"].(map[string]any)
	require.Equal(t, 55.0, fin["totalMaterialCost"])

	resp, body = doJSON(t, http.MethodDelete, srv.URL+"/v1/projects/"+projectID+"/laborers/"+laborerID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	project = projectsOf(t, body)[0].(map[string]any)
	require.Empty(t, project["laborers"])
	fin = project["finances"].(map[string]any)
	require.Equal(t, 445.0, fin["grossIncome"])
}

func TestForeignProjectIsNotFound(t *testing.T) {
	srv := newTestServer(t)
	signUp(t, srv, "owner@example.com")
	signUp(t, srv, "other@example.com")
	ownerToken := signIn(t, srv, "owner@example.com")
	otherToken := signIn(t, srv, "other@example.com")

	_, body := doJSON(t, http.MethodPost, srv.URL+"/v1/projects", ownerToken, map[string]string{
		"name": "Deck Build", "memo": "memo",
	})
	projectID := projectsOf(t, body)[0].(map[string]any)["id"].(string)

	resp, _ := doJSON(t, http.MethodPut, srv.URL+"/v1/projects/"+projectID, otherToken, map[string]string{
		"name": "Hijacked", "memo": "memo",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/v1/projects/"+projectID+"/materials", otherToken, map[string]any{
		"name": "Lumber", "quantity": 1, "value": 1,
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Other users' lists stay empty.
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/v1/projects", otherToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, projectsOf(t, body))
}

func TestMetaEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/livez", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", body["status"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/readyz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", body["status"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/.well-known/jwks.json", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	keys := body["keys"].([]any)
	require.Len(t, keys, 1)
	key := keys[0].(map[string]any)
	require.Equal(t, "OKP", key["kty"])
	require.Equal(t, "Ed25519", key["crv"])
}

func TestMalformedBodyIsBadRequest(t *testing.T) {
	srv := newTestServer(t)
	signUp(t, srv, "jane@example.com")
	token := signIn(t, srv, "jane@example.com")

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/v1/projects", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
