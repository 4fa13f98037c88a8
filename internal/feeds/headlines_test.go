package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newsServer mimics the ranked-list plus per-item lookup shape of the
// primary headline source.
func newsServer(t *testing.T, ids string, items map[string]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/top.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(ids))
	})
	mux.HandleFunc("/item/", func(w http.ResponseWriter, r *http.Request) {
		body, ok := items[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(body))
	})
	return httptest.NewServer(mux)
}

func wire(c *Client, srv *httptest.Server) {
	c.hnTopURL = srv.URL + "/top.json"
	c.hnItemURL = srv.URL + "/item/%d.json"
	c.algoliaURL = srv.URL + "/search.json"
}

func TestHeadlines_CollectsTitlesInRankOrder(t *testing.T) {
	srv := newsServer(t, `[11, 22, 33]`, map[string]string{
		"/item/11.json": `{"title":"First"}`,
		"/item/22.json": `{"title":"Second"}`,
		"/item/33.json": `{"title":"Third"}`,
	})
	defer srv.Close()

	c := newTestClient(t)
	wire(c, srv)

	got := c.Headlines(context.Background(), 2)
	assert.Equal(t, []string{"First", "Second"}, got)
}

func TestHeadlines_SkipsFailedAndUntitledItems(t *testing.T) {
	srv := newsServer(t, `[11, 22, 33, 44]`, map[string]string{
		// 11 is missing (404), 22 has no title field.
		"/item/22.json": `{"type":"job"}`,
		"/item/33.json": `{"title":"Third"}`,
		"/item/44.json": `{"title":"Fourth"}`,
	})
	defer srv.Close()

	c := newTestClient(t)
	wire(c, srv)

	got := c.Headlines(context.Background(), 5)
	assert.Equal(t, []string{"Third", "Fourth"}, got)
}

func TestHeadlines_FallsBackToSearchSource(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/top.json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	mux.HandleFunc("/search.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"hits":[
			{"title":"Alpha"},
			{"title":""},
			{"story_text":"no title"},
			{"title":"Beta"},
			{"title":"Gamma"}
		]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t)
	wire(c, srv)

	got := c.Headlines(context.Background(), 2)
	assert.Equal(t, []string{"Alpha", "Beta"}, got)
}

func TestHeadlines_EmptyPrimaryListTriggersFallback(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/top.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	mux.HandleFunc("/search.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"hits":[{"title":"Only"}]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t)
	wire(c, srv)

	got := c.Headlines(context.Background(), 5)
	assert.Equal(t, []string{"Only"}, got)
}

func TestHeadlines_TotalFailureReturnsEmptySlice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t)
	wire(c, srv)

	got := c.Headlines(context.Background(), 5)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestHeadlines_NonPositiveLimit(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := newTestClient(t)
	wire(c, srv)

	assert.Empty(t, c.Headlines(context.Background(), 0))
	assert.Equal(t, 0, calls, "no network traffic for a zero limit")
}
