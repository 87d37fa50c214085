package gateway

//go:generate mockgen -source=gateway.go -destination=mocks/mock_source.go -package=mocks Source

// Source abstracts where configuration values come from.
// Lookup reports whether the key is present so callers can tell an absent
// value from an empty one.
type Source interface {
	Lookup(key string) (string, bool)
}

// Map is an in-memory Source.
type Map map[string]string

// Lookup implements Source.
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Chain consults each source in order; the first one holding the key wins.
type Chain []Source

// Lookup implements Source.
func (c Chain) Lookup(key string) (string, bool) {
	for _, s := range c {
		if s == nil {
			continue
		}
		if v, ok := s.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}
