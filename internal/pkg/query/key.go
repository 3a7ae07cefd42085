package query

// Key identifies a cached query. The set of keys is closed, see AllKeys.
type Key int

const (
	KeyCustomers Key = iota + 1
	KeyStats
)

// AllKeys returns all known keys in a stable order.
func AllKeys() []Key {
	return []Key{KeyCustomers, KeyStats}
}

func (k Key) String() string {
	switch k {
	case KeyCustomers:
		return "customers"
	case KeyStats:
		return "stats"
	default:
		return "unknown"
	}
}

// Status of a cache entry.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}
