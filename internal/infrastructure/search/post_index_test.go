package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-social/internal/domain/entity"
)

func TestSearchBody(t *testing.T) {
	b, err := json.Marshal(searchBody("hello world", 5))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"query": {"multi_match": {"query": "hello world", "fields": ["title^2", "body"]}},
		"_source": false,
		"size": 5
	}`, string(b))
}

func TestDecodeHits(t *testing.T) {
	ids, err := decodeHits(strings.NewReader(`{"hits":{"total":{"value":2},"hits":[{"_id":"b","_score":2.1},{"_id":"a","_score":1.3}]}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids)

	ids, err = decodeHits(strings.NewReader(`{"hits":{"hits":[]}}`))
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = decodeHits(strings.NewReader(`not json`))
	assert.Error(t, err)
}

func newTestIndex(t *testing.T, h http.HandlerFunc) *PostIndex {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		h(w, r)
	}))
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return NewPostIndex(es, "posts")
}

func TestPostIndex_Index(t *testing.T) {
	var gotPath string
	var gotDoc map[string]any
	idx := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotDoc)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"result":"created"}`))
	})

	p := &entity.Post{ID: "p1", Title: "Hello", Body: "World", AuthorID: "u1", CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}
	require.NoError(t, idx.Index(context.Background(), p))
	assert.Equal(t, "/posts/_doc/p1", gotPath)
	assert.Equal(t, "Hello", gotDoc["title"])
	assert.Equal(t, "u1", gotDoc["author_id"])
	assert.Equal(t, "2024-01-02T03:04:05Z", gotDoc["created_at"])
}

func TestPostIndex_Search(t *testing.T) {
	idx := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/_search", r.URL.Path)
		_, _ = w.Write([]byte(`{"hits":{"hits":[{"_id":"x"},{"_id":"y"}]}}`))
	})

	ids, err := idx.Search(context.Background(), "hello", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, ids)
}

func TestPostIndex_SearchError(t *testing.T) {
	idx := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"type":"index_not_found_exception"}}`))
	})

	_, err := idx.Search(context.Background(), "hello", 10)
	assert.Error(t, err)
}
