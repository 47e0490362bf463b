package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdoc/pkg/utils"
)

func newTestSearcher(t *testing.T, handler http.HandlerFunc) *GoogleImageSearcher {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	searcher := NewGoogleImageSearcher("key", "cx")
	searcher.BaseURL = server.URL
	return searcher
}

func TestSearchImagesDecodesLinks(t *testing.T) {
	searcher := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Tokyo Tower", r.URL.Query().Get("q"))
		assert.Equal(t, "image", r.URL.Query().Get("searchType"))
		assert.Equal(t, "9", r.URL.Query().Get("num"))
		_, _ = w.Write([]byte(`{"items":[{"link":"https://a/1.jpg"},{"link":"https://a/2.jpg"},{"link":""}]}`))
	})

	links, err := searcher.SearchImages(context.Background(), "Tokyo Tower")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a/1.jpg", "https://a/2.jpg"}, links)
}

func TestSearchImagesNoItemsIsNotAnError(t *testing.T) {
	searcher := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	links, err := searcher.SearchImages(context.Background(), "Nowhere Special")
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestSearchImagesAPIError(t *testing.T) {
	searcher := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded"}}`))
	})

	_, err := searcher.SearchImages(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestSearchImagesBadStatus(t *testing.T) {
	searcher := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := searcher.SearchImages(context.Background(), "anything")
	assert.Error(t, err)
}

func TestSearchImagesMissingCredentials(t *testing.T) {
	searcher := NewGoogleImageSearcher("", "")

	_, err := searcher.SearchImages(context.Background(), "Tokyo Tower")
	assert.ErrorIs(t, err, utils.ErrImageSearchUnavailable)
}
