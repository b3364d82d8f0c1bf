package registry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	recoerrors "github.com/nutrireco/go-reco-engine/internal/errors"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient("samplekey", WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	return client, server
}

func TestFetch_Success(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/samplekey/C003/json/1/2", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"C003": {
				"RESULT": {"CODE": "INFO-000", "MSG": "success"},
				"total_count": "42",
				"row": [
					{"PRDLST_NM": "비타민C 1000", "BSSH_NM": "회사A"},
					{"PRDLST_NM": "홍삼정", "BSSH_NM": "회사B"}
				]
			}
		}`))
	})
	defer server.Close()

	rows, total, err := client.Fetch(context.Background(), "C003", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 42, total, "string total_count must be tolerated")
	require.Len(t, rows, 2)
	assert.Equal(t, "비타민C 1000", rows[0]["PRDLST_NM"])
}

func TestFetch_NumericTotalCount(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"C003": {"total_count": 7, "row": []}}`))
	})
	defer server.Close()

	rows, total, err := client.Fetch(context.Background(), "C003", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	assert.NotNil(t, rows)
	assert.Len(t, rows, 0)
}

func TestFetch_HTTPError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("upstream down"))
	})
	defer server.Close()

	_, _, err := client.Fetch(context.Background(), "C003", 1, 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, recoerrors.ErrFetchFailed))

	var fetchErr *recoerrors.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusServiceUnavailable, fetchErr.Status)
	assert.Contains(t, fetchErr.URL, "/C003/json/1/10")
	assert.Contains(t, fetchErr.Preview, "upstream down")
}

func TestFetch_NonJSONBody(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>blocked</body></html>"))
	})
	defer server.Close()

	_, _, err := client.Fetch(context.Background(), "C003", 1, 10)
	require.Error(t, err)

	var fetchErr *recoerrors.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, fetchErr.Reason, "non-JSON")
	assert.Contains(t, fetchErr.Preview, "<html>")
}

func TestFetch_MissingServiceKey(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"OTHER": {}}`))
	})
	defer server.Close()

	_, _, err := client.Fetch(context.Background(), "C003", 1, 10)
	require.Error(t, err)

	var fetchErr *recoerrors.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, fetchErr.Reason, "missing 'C003' key")
}

func TestFetch_APIResultError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"C003": {"RESULT": {"CODE": "INFO-300", "MSG": "no data"}}}`))
	})
	defer server.Close()

	_, _, err := client.Fetch(context.Background(), "C003", 1, 10)
	require.Error(t, err)

	var fetchErr *recoerrors.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, fetchErr.Reason, "INFO-300")
}

func TestFetch_InvalidArguments(t *testing.T) {
	client := NewClient("samplekey")

	_, _, err := client.Fetch(context.Background(), "", 1, 10)
	assert.True(t, errors.Is(err, recoerrors.ErrInvalidInput))

	_, _, err = client.Fetch(context.Background(), "C003", 0, 10)
	assert.True(t, errors.Is(err, recoerrors.ErrInvalidInput))

	_, _, err = client.Fetch(context.Background(), "C003", 10, 5)
	assert.True(t, errors.Is(err, recoerrors.ErrInvalidInput))
}

func TestFetch_ContextCancelled(t *testing.T) {
	client := NewClient("samplekey")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := client.Fetch(ctx, "C003", 1, 10)
	require.Error(t, err)
}
