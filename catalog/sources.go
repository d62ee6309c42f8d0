package catalog

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"
)

// Fetcher is one leg of the reconciler: a source that yields normalized
// products.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Product, error)
}

// StaticSource fetches the fixed product feed over HTTP.
type StaticSource struct {
	URL    string
	Client *http.Client
}

func NewStaticSource(url string) *StaticSource {
	return &StaticSource{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *StaticSource) Fetch(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("static feed: unexpected status " + resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	records, err := decodeStaticFeed(data)
	if err != nil {
		return nil, err
	}

	products := make([]Product, 0, len(records))
	for _, r := range records {
		products = append(products, NormalizeStatic(r))
	}
	return products, nil
}

// ManagedLister lists raw managed-catalog records; implemented by the REST
// client.
type ManagedLister interface {
	Products(ctx context.Context) ([]ManagedRecord, error)
}

// ManagedSource fetches the mutable catalog through the managed API.
type ManagedSource struct {
	Lister ManagedLister
}

func NewManagedSource(lister ManagedLister) *ManagedSource {
	return &ManagedSource{Lister: lister}
}

func (m *ManagedSource) Fetch(ctx context.Context) ([]Product, error) {
	records, err := m.Lister.Products(ctx)
	if err != nil {
		return nil, err
	}
	products := make([]Product, 0, len(records))
	for _, r := range records {
		products = append(products, NormalizeManaged(r))
	}
	return products, nil
}
