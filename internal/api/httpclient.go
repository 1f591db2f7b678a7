package api

import (
	"net/http"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
)

// newHTTPClient creates the transport for the API client with HTTP caching.
// Catalog GETs carry Cache-Control headers from the backend; caching them
// keeps repeated browsing cheap. If cacheDir is empty the cache lives in
// memory only and dies with the process.
func newHTTPClient(cacheDir string, timeout time.Duration) *http.Client {
	if cacheDir == "" {
		return &http.Client{
			Transport: httpcache.NewTransport(httpcache.NewMemoryCache()),
			Timeout:   timeout,
		}
	}

	cache := diskcache.New(cacheDir)

	return &http.Client{
		Transport: httpcache.NewTransport(cache),
		Timeout:   timeout,
	}
}
