package dashboard

import (
	"github.com/furniture-crm/crm-cli/internal/pkg/api"
	"github.com/furniture-crm/crm-cli/internal/pkg/model"
	"github.com/furniture-crm/crm-cli/internal/pkg/query"
)

var (
	customersQuery = query.Definition[[]model.Customer]{Key: query.KeyCustomers}
	statsQuery     = query.Definition[*model.Stats]{Key: query.KeyStats}
)

// RegisterQueries binds the gateway reads to the cache keys.
func RegisterQueries(cache *query.Cache, gateway *api.Gateway) {
	customers := customersQuery
	customers.Fetch = gateway.ListCustomers
	customers.Register(cache)

	stats := statsQuery
	stats.Fetch = gateway.GetStats
	stats.Register(cache)
}

// CustomersData returns the customers of the snapshot, false if there are no data yet.
func CustomersData(s query.Snapshot) ([]model.Customer, bool) {
	return customersQuery.Data(s)
}

// StatsData returns the stats of the snapshot, false if there are no data yet.
func StatsData(s query.Snapshot) (*model.Stats, bool) {
	return statsQuery.Data(s)
}
