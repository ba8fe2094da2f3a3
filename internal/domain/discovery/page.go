package discovery

// PageState tracks incremental pagination progress for one snapshot.
// Total is authoritative: it comes from the catalog source's first page
// and is trusted thereafter.
type PageState struct {
	Page      int // next page to fetch, 0-based
	Loaded    int
	Total     int64
	Exhausted bool
}

// Apply records a successfully fetched page of received items. Exhaustion
// is reached when the cumulative loaded count covers the total, or when a
// page comes back shorter than requested.
func (p *PageState) Apply(pageSize, received int, total int64) {
	if p.Page == 0 {
		p.Total = total
	}
	p.Loaded += received
	p.Page++
	if int64(p.Loaded) >= p.Total || received < pageSize {
		p.Exhausted = true
	}
}

// Reset returns the state to page zero for a new snapshot.
func (p *PageState) Reset() {
	*p = PageState{}
}
