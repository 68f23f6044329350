package models

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/rohanthewiz/serr"
)

// DataSource retrieves the travel dataset. Implementations fetch afresh on
// every call; there is no caching between searches.
type DataSource interface {
	Fetch(ctx context.Context) (*Dataset, error)
	String() string
}

// HTTPSource fetches the dataset over HTTP with a single GET.
// Any non-2xx status or a body that is not valid dataset JSON is an error.
// There is no retry.
type HTTPSource struct {
	URL        string
	httpClient *http.Client
}

// NewHTTPSource resolves ref against base and returns a source for the result.
// ref may be absolute, in which case base is ignored.
// A zero timeout leaves requests unbounded.
func NewHTTPSource(base, ref string, timeout time.Duration) (*HTTPSource, error) {
	refURL, err := url.Parse(ref)
	if err != nil {
		return nil, serr.Wrap(err, "invalid data url")
	}

	if !refURL.IsAbs() {
		baseURL, err := url.Parse(base)
		if err != nil {
			return nil, serr.Wrap(err, "invalid base url")
		}
		if !baseURL.IsAbs() {
			return nil, serr.New("base url must be absolute to resolve a relative data url")
		}
		refURL = baseURL.ResolveReference(refURL)
	}

	return &HTTPSource{
		URL:        refURL.String(),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Fetch implements DataSource
func (s *HTTPSource) Fetch(ctx context.Context) (*Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, serr.Wrap(err, "failed to build dataset request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, serr.Wrap(err, "failed to fetch dataset")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, serr.New(fmt.Sprintf("HTTP error! status: %d", resp.StatusCode))
	}

	ds, err := DecodeDataset(resp.Body)
	if err != nil {
		return nil, serr.Wrap(err, "invalid dataset from "+s.URL)
	}
	return ds, nil
}

func (s *HTTPSource) String() string {
	return s.URL
}

// FSSource reads the dataset file from a filesystem on each fetch
type FSSource struct {
	FS   fs.FS
	Path string
}

// Fetch implements DataSource
func (s *FSSource) Fetch(ctx context.Context) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, serr.Wrap(err, "dataset fetch cancelled")
	}

	f, err := s.FS.Open(s.Path)
	if err != nil {
		return nil, serr.Wrap(err, "failed to open dataset file")
	}
	defer f.Close()

	ds, err := DecodeDataset(f)
	if err != nil {
		return nil, serr.Wrap(err, "invalid dataset file "+s.Path)
	}
	return ds, nil
}

func (s *FSSource) String() string {
	return "fs:" + s.Path
}

// NewDataSource picks the source described by cfg.
// With neither a data URL nor a data file, fallback (normally the embedded
// static files) is read at DatasetFileName.
func NewDataSource(cfg *Config, fallback fs.FS) (DataSource, error) {
	switch {
	case cfg.DataURL != "":
		return NewHTTPSource(cfg.BaseURL, cfg.DataURL, cfg.FetchTimeout)
	case cfg.DataFile != "":
		return &FSSource{
			FS:   os.DirFS(filepath.Dir(cfg.DataFile)),
			Path: filepath.Base(cfg.DataFile),
		}, nil
	case fallback != nil:
		return &FSSource{FS: fallback, Path: DatasetFileName}, nil
	}
	return nil, serr.New("no dataset source configured")
}
