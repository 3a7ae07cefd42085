package env

import (
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sasha-s/go-deadlock"

	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

// Provider is a read-only view of ENV variables.
type Provider interface {
	Lookup(key string) (string, bool)
	Get(key string) string
}

// Map of ENV variables, keys are stored in upper case.
type Map struct {
	lock *deadlock.RWMutex
	data map[string]string
}

func Empty() *Map {
	return &Map{lock: &deadlock.RWMutex{}, data: make(map[string]string)}
}

func FromMap(data map[string]string) *Map {
	m := Empty()
	for k, v := range data {
		m.Set(k, v)
	}
	return m
}

// FromOs copies the process environment.
func FromOs() *Map {
	m := Empty()
	for _, pair := range os.Environ() { // nolint: forbidigo
		if k, v, ok := strings.Cut(pair, "="); ok {
			m.Set(k, v)
		}
	}
	return m
}

// FromString parses the dotenv format.
func FromString(str string) (*Map, error) {
	data, err := godotenv.Unmarshal(str)
	if err != nil {
		return nil, err
	}
	return FromMap(data), nil
}

func (m *Map) String() string {
	m.lock.RLock()
	defer m.lock.RUnlock()
	out, err := godotenv.Marshal(m.data)
	if err != nil {
		panic(errors.Wrap(err, "cannot marshal envs"))
	}
	return out
}

func (m *Map) Keys() []string {
	m.lock.RLock()
	defer m.lock.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *Map) ToMap() map[string]string {
	m.lock.RLock()
	defer m.lock.RUnlock()
	out := make(map[string]string, len(m.data))
	for k, v := range m.data {
		out[k] = v
	}
	return out
}

func (m *Map) Lookup(key string) (string, bool) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	v, found := m.data[strings.ToUpper(key)]
	return v, found
}

func (m *Map) Get(key string) string {
	v, _ := m.Lookup(key)
	return v
}

func (m *Map) Set(key, value string) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.data[strings.ToUpper(key)] = value
}

// Merge copies keys from other map. Existing keys are kept unless overwrite is set.
func (m *Map) Merge(other *Map, overwrite bool) {
	for k, v := range other.ToMap() {
		if _, found := m.Lookup(k); found && !overwrite {
			continue
		}
		m.Set(k, v)
	}
}
