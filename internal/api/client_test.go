package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoutbox/internal/board"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, 2*time.Second)
}

func TestListSentencesQuery(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `[]`)
	})

	f := board.Filters{Category: board.Jokes, User: board.All, Sort: board.SortNewest, Search: ""}
	_, err := client.ListSentences(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, "/api/sentences", gotPath)
	require.Len(t, gotQuery, 4, "query must carry exactly the four filter keys")
	assert.Equal(t, []string{"jokes"}, gotQuery["category"])
	assert.Equal(t, []string{"all"}, gotQuery["user"])
	assert.Equal(t, []string{"newest"}, gotQuery["sortBy"])
	assert.Equal(t, []string{""}, gotQuery["search"])
}

func TestListSentencesDecode(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"id":"s1","text":"hello","name":"alice","category":"thoughts","createdAt":"2026-08-20T10:30:00Z"},
			{"id":"s2","text":"knock knock","name":"bob","category":"jokes","createdAt":"2026-08-21T09:00:00Z"}
		]`)
	})

	got, err := client.ListSentences(context.Background(), board.DefaultFilters())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "s1", got[0].ID)
	assert.Equal(t, "alice", got[0].Name)
	assert.Equal(t, board.Thoughts, got[0].Category)
	assert.Equal(t, 2026, got[0].CreatedAt.Year())
	assert.Equal(t, board.Jokes, got[1].Category)
}

func TestListUsers(t *testing.T) {
	var gotPath string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `["alice","bob"]`)
	})

	users, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/sentences/users", gotPath)
	assert.Equal(t, []string{"alice", "bob"}, users)
}

func TestCreateSentence(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody board.Draft
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	})

	d := board.Draft{Text: "hi", Name: "bob", Category: board.Facts}
	require.NoError(t, client.CreateSentence(context.Background(), d))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, d, gotBody)
}

func TestDeleteSentence(t *testing.T) {
	var gotMethod, gotPath string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteSentence(context.Background(), "abc123"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/sentences/abc123", gotPath)
}

func TestAuthRequired(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	err := client.CreateSentence(context.Background(), board.Draft{Text: "hi", Name: "bob", Category: board.Facts})
	assert.ErrorIs(t, err, ErrAuthRequired)

	err = client.DeleteSentence(context.Background(), "x")
	assert.ErrorIs(t, err, ErrAuthRequired)

	_, err = client.ListSentences(context.Background(), board.DefaultFilters())
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestDeleteForbidden(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	err := client.DeleteSentence(context.Background(), "not-mine")
	assert.ErrorIs(t, err, ErrForbidden)
	assert.NotErrorIs(t, err, ErrAuthRequired)
}

func TestServerErrorMessage(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"error":"text is too long"}`)
	})

	err := client.CreateSentence(context.Background(), board.Draft{Text: "hi", Name: "bob", Category: board.Facts})
	var se *ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnprocessableEntity, se.Status)
	assert.Equal(t, "text is too long", se.Message)
}

func TestServerErrorFallbackMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"not json", "<html>oops</html>"},
		{"wrong shape", `{"detail":"nope"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, tt.body)
			})
			err := client.DeleteSentence(context.Background(), "x")
			var se *ServerError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, genericErrMsg, se.Message)
		})
	}
}

func TestNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := New(server.URL, time.Second)
	server.Close()

	_, err := client.ListSentences(context.Background(), board.DefaultFilters())
	require.Error(t, err)
	var se *ServerError
	assert.False(t, errors.As(err, &se), "transport failure must not look like a server answer")
	assert.NotErrorIs(t, err, ErrAuthRequired)
}

func TestLoginURL(t *testing.T) {
	assert.Equal(t, "http://example.com/login", New("http://example.com", time.Second).LoginURL())
	assert.Equal(t, "http://example.com/login", New("http://example.com/", time.Second).LoginURL())
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"auth", ErrAuthRequired, "you need to log in first"},
		{"wrapped auth", fmt.Errorf("deleting sentence: %w", ErrAuthRequired), "you need to log in first"},
		{"forbidden", ErrForbidden, "only the author can delete a sentence"},
		{"server", &ServerError{Status: 500, Message: "db down"}, "db down"},
		{"other", errors.New("connection refused"), "connection refused"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Message(tt.err), tt.name)
	}
}
