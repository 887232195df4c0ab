package infrastructure

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"resume-builder/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const noSuchKeyXML = `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`

// bucketServer is a path-style S3 endpoint holding objects in memory.
type bucketServer struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func (b *bucketServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		b.objects[r.URL.Path] = body
		b.types[r.URL.Path] = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		body, ok := b.objects[r.URL.Path]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, noSuchKeyXML)
			return
		}
		w.Header().Set("Content-Type", b.types[r.URL.Path])
		_, _ = w.Write(body)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestS3Archive(t *testing.T) (*S3Archive, *bucketServer) {
	t.Helper()
	bs := &bucketServer{objects: map[string][]byte{}, types: map[string]string{}}
	srv := httptest.NewServer(bs)
	t.Cleanup(srv.Close)

	a, err := NewS3Archive(context.Background(), S3Config{
		Bucket:    "renders",
		Region:    "us-east-1",
		Endpoint:  srv.URL,
		AccessKey: "test",
		SecretKey: "test",
	})
	require.NoError(t, err)
	return a, bs
}

func TestS3ArchiveMissingKey(t *testing.T) {
	a, _ := newTestS3Archive(t)

	_, err := a.Get(context.Background(), "renders/x/modern.pdf")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestS3ArchiveGet(t *testing.T) {
	a, bs := newTestS3Archive(t)
	bs.objects["/renders/renders/x/modern.pdf"] = []byte("%PDF-1.4 stored")

	got, err := a.Get(context.Background(), "renders/x/modern.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 stored"), got)
}

func TestS3ArchivePut(t *testing.T) {
	a, bs := newTestS3Archive(t)

	require.NoError(t, a.Put(context.Background(), "renders/x/curve.pdf", []byte("%PDF-1.4 fresh"), "application/pdf"))

	bs.mu.Lock()
	defer bs.mu.Unlock()
	assert.Contains(t, string(bs.objects["/renders/renders/x/curve.pdf"]), "%PDF-1.4 fresh")
	assert.Equal(t, "application/pdf", bs.types["/renders/renders/x/curve.pdf"])
}
