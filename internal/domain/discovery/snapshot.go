package discovery

// Location is an opaque origin understood by the distance provider: a
// free-form address or "lat,lon". Empty means no location is set.
type Location string

// IsSet reports whether a location has been provided.
func (l Location) IsSet() bool {
	return l != ""
}

// Snapshot is the tuple that defines one coherent result set. Changing any
// element starts a new snapshot; results fetched under an old snapshot must
// never reach the aggregated list.
type Snapshot struct {
	Query    string
	Location Location
	Filter   TravelFilter
}

// Equal reports whether two snapshots describe the same result set.
func (s Snapshot) Equal(other Snapshot) bool {
	return s.Query == other.Query &&
		s.Location == other.Location &&
		s.Filter == other.Filter
}
