package qrimage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageURL(t *testing.T) {
	c := New("https://api.qrserver.com/v1/create-qr-code/")

	got := c.ImageURL("CORA-REAL-COMO-VILLA-3101", 0)

	assert.Equal(t, "https://api.qrserver.com/v1/create-qr-code/?data=CORA-REAL-COMO-VILLA-3101&size=220x220", got)
}

func TestImageURLCustomSize(t *testing.T) {
	c := New("https://qr.test") // no trailing slash

	got := c.ImageURL("CORA-GEN-POP-UP-1234", 300)

	assert.Equal(t, "https://qr.test/?data=CORA-GEN-POP-UP-1234&size=300x300", got)
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "CORA-DEMO-MARKER", r.URL.Query().Get("data"))
		assert.Equal(t, "220x220", r.URL.Query().Get("size"))
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	img, err := c.Fetch(context.Background(), "CORA-DEMO-MARKER", 0)

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), img)
}

func TestFetchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Fetch(context.Background(), "CORA-DEMO-MARKER", 0)

	assert.ErrorContains(t, err, "status 503")
}
