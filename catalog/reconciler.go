package catalog

import (
	"context"
	"sync"
)

// SourceWarning reports a source that failed to load. Warnings are
// non-fatal; the reconciler keeps whatever the other leg produced.
type SourceWarning struct {
	Source string
	Err    error
}

func (w SourceWarning) Error() string {
	return w.Source + ": " + w.Err.Error()
}

// Result is the outcome of one catalog load.
type Result struct {
	Products []Product
	Warnings []SourceWarning
}

// Reconciler joins the static feed and the managed catalog into one merged
// list. Either leg may be nil, in which case it contributes nothing.
type Reconciler struct {
	Static  Fetcher
	Managed Fetcher
}

func NewReconciler(static, managed Fetcher) *Reconciler {
	return &Reconciler{Static: static, Managed: managed}
}

// Load fetches both sources concurrently and merges once both have settled.
// A failed source degrades to an empty contribution plus a warning; Load
// never returns an error.
func (r *Reconciler) Load(ctx context.Context) Result {
	var (
		wg         sync.WaitGroup
		static     []Product
		managed    []Product
		staticErr  error
		managedErr error
	)

	if r.Static != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			static, staticErr = r.Static.Fetch(ctx)
		}()
	}
	if r.Managed != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			managed, managedErr = r.Managed.Fetch(ctx)
		}()
	}
	wg.Wait()

	var warnings []SourceWarning
	if staticErr != nil {
		static = nil
		warnings = append(warnings, SourceWarning{Source: "static", Err: staticErr})
	}
	if managedErr != nil {
		managed = nil
		warnings = append(warnings, SourceWarning{Source: "managed", Err: managedErr})
	}

	return Result{
		Products: Merge(static, managed),
		Warnings: warnings,
	}
}
