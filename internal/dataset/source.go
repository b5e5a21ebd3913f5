package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Source is one readable dataset location.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	String() string
}

// NewSource returns an HTTPSource for http(s) URLs and a FileSource otherwise.
// A nil client means http.DefaultClient.
func NewSource(location string, client *http.Client) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		if client == nil {
			client = http.DefaultClient
		}
		return &HTTPSource{URL: location, Client: client}
	}
	return FileSource{Path: location}
}

// FileSource reads a dataset from the local filesystem.
type FileSource struct {
	Path string
}

func (s FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.Path, err)
	}
	return f, nil
}

func (s FileSource) String() string { return s.Path }

// HTTPSource fetches a dataset with a single GET request.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.URL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("fetch %s returned status %d", s.URL, resp.StatusCode)
	}
	return resp.Body, nil
}

func (s *HTTPSource) String() string { return s.URL }
