package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func checkAgainst(t *testing.T, status int, body, current string) *Result {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	old := releasesURL
	releasesURL = srv.URL
	t.Cleanup(func() { releasesURL = old })

	return Check(context.Background(), current)
}

func TestCheckNewerVersion(t *testing.T) {
	res := checkAgainst(t, http.StatusOK, `{"tag_name":"v1.2.0"}`, "v1.1.0")
	if res == nil {
		t.Fatal("expected a result for a newer release")
	}
	if res.LatestVersion != "1.2.0" {
		t.Errorf("LatestVersion = %q, want %q", res.LatestVersion, "1.2.0")
	}
}

func TestCheckSameVersion(t *testing.T) {
	if res := checkAgainst(t, http.StatusOK, `{"tag_name":"v1.1.0"}`, "1.1.0"); res != nil {
		t.Errorf("expected nil for current version, got %+v", res)
	}
}

func TestCheckServerError(t *testing.T) {
	if res := checkAgainst(t, http.StatusInternalServerError, "", "1.0.0"); res != nil {
		t.Errorf("expected nil on server error, got %+v", res)
	}
}

func TestCheckBadJSON(t *testing.T) {
	if res := checkAgainst(t, http.StatusOK, "not json", "1.0.0"); res != nil {
		t.Errorf("expected nil on bad payload, got %+v", res)
	}
}
