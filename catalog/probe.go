package catalog

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// ImageProber is an optional enrichment pass that drops products whose
// image URL does not answer a HEAD request. It is never part of the normal
// catalog load; callers invoke it explicitly when a view wants only
// displayable products.
type ImageProber struct {
	Client *http.Client

	// Limiter, when set, paces the probe requests. A nil limiter probes
	// every image at once, which is fine for catalogs of a few hundred
	// items.
	Limiter *rate.Limiter

	// FailClosed drops products that have no image URL at all. The default
	// keeps them, leaving the decision to the rendering layer.
	FailClosed bool
}

func NewImageProber() *ImageProber {
	return &ImageProber{
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

// Filter probes every product image concurrently and returns the products
// whose images answered 2xx, preserving input order. A failed or timed-out
// probe excludes that product only; the batch itself never fails.
func (p *ImageProber) Filter(ctx context.Context, products []Product) []Product {
	keep := make([]bool, len(products))

	g, ctx := errgroup.WithContext(ctx)
	for i := range products {
		i := i
		g.Go(func() error {
			keep[i] = p.probe(ctx, products[i].ImageURL)
			return nil
		})
	}
	// Workers never return errors; Wait is a pure join.
	_ = g.Wait()

	filtered := make([]Product, 0, len(products))
	for i, ok := range keep {
		if ok {
			filtered = append(filtered, products[i])
		}
	}
	return filtered
}

func (p *ImageProber) probe(ctx context.Context, url string) bool {
	if url == "" {
		return !p.FailClosed
	}
	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx); err != nil {
			return false
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
