package discovery

import (
	"fmt"

	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/shared"
)

// ErrNoRoute indicates the provider could not find a route between origin
// and destination. It is a normal lookup outcome and is absorbed by the
// enricher's fail-open policy.
var ErrNoRoute = shared.NewDomainError("NO_ROUTE", "No route found between origin and destination")

// CatalogFetchError reports a failed catalog page fetch. Prior pages stay
// visible; the session remains retryable at the same page.
type CatalogFetchError struct {
	Page int
	Err  error
}

func (e *CatalogFetchError) Error() string {
	return fmt.Sprintf("catalog fetch for page %d failed: %v", e.Page, e.Err)
}

func (e *CatalogFetchError) Unwrap() error {
	return e.Err
}

// GeoLookupError reports a failed distance or travel-time lookup for a
// single offer. It is never surfaced to the user; the offer's metric value
// simply stays unresolved.
type GeoLookupError struct {
	Destination string
	Err         error
}

func (e *GeoLookupError) Error() string {
	return fmt.Sprintf("geo lookup for %q failed: %v", e.Destination, e.Err)
}

func (e *GeoLookupError) Unwrap() error {
	return e.Err
}
