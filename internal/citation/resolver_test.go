package citation_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antarctica/mdlib/internal/citation"
	"github.com/antarctica/mdlib/pkg/mdlib"
)

const doi = "https://doi.org/10.5285/example"

func newResolver(t *testing.T, handler http.HandlerFunc) *citation.DOIResolver {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return citation.NewDOIResolver(
		citation.WithBaseURL(srv.URL),
		citation.WithRetries(1, time.Millisecond),
	)
}

func TestResolve_Success(t *testing.T) {
	var gotAccept, gotPath string
	r := newResolver(t, func(w http.ResponseWriter, req *http.Request) {
		gotAccept = req.Header.Get("Accept")
		gotPath = req.URL.Path
		_, _ = w.Write([]byte("Fox, A. (2020). Example dataset. NERC EDS.\n"))
	})

	text, err := r.Resolve(context.Background(), doi)
	require.NoError(t, err)
	assert.Equal(t, "Fox, A. (2020). Example dataset. NERC EDS.", text)
	assert.Equal(t, mdlib.CitationAccept, gotAccept)
	assert.Equal(t, "/10.5285/example", gotPath)
}

func TestResolve_RetriesOnceOnServerError(t *testing.T) {
	var calls atomic.Int32
	r := newResolver(t, func(w http.ResponseWriter, req *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("citation"))
	})

	text, err := r.Resolve(context.Background(), doi)
	require.NoError(t, err)
	assert.Equal(t, "citation", text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestResolve_FailsAfterRetry(t *testing.T) {
	var calls atomic.Int32
	r := newResolver(t, func(w http.ResponseWriter, req *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := r.Resolve(context.Background(), doi)
	var httpErr *citation.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.Status)
	assert.ErrorIs(t, err, mdlib.ErrCitationLookup)
	assert.Equal(t, int32(2), calls.Load())
}

func TestResolve_NotFoundIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	r := newResolver(t, func(w http.ResponseWriter, req *http.Request) {
		calls.Add(1)
		http.NotFound(w, req)
	})

	_, err := r.Resolve(context.Background(), doi)
	assert.ErrorIs(t, err, mdlib.ErrCitationLookup)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, mdlib.ExitCitationError, mdlib.ExitCodeForError(err))
}

func TestResolve_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		select {
		case <-req.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	t.Cleanup(srv.Close)
	r := citation.NewDOIResolver(
		citation.WithBaseURL(srv.URL),
		citation.WithTimeout(20*time.Millisecond),
		citation.WithRetries(0, 0),
	)

	_, err := r.Resolve(context.Background(), doi)
	assert.ErrorIs(t, err, mdlib.ErrCitationLookup)
}
