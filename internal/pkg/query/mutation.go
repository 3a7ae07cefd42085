package query

import (
	"context"
)

// Mutation describes a server write and the keys it makes stale.
type Mutation struct {
	Name        string
	Invalidates []Key
}

// CustomerMutation invalidates customers and stats, a customer change always changes the aggregates.
func CustomerMutation(name string) Mutation {
	return Mutation{Name: name, Invalidates: []Key{KeyCustomers, KeyStats}}
}

// Outcome of a mutation. Err is nil on success.
type Outcome struct {
	Mutation Mutation
	Data     any
	Err      error
}

func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// Mutate calls fn exactly once, it is never retried.
// On success all keys of the mutation are invalidated, on failure nothing changes and the error is returned in the Outcome.
// Mutations are not queued, concurrent calls run in parallel and the server decides the order.
func (c *Cache) Mutate(ctx context.Context, m Mutation, fn func(ctx context.Context) (any, error)) Outcome {
	data, err := fn(ctx)
	if err != nil {
		c.metrics.mutation(m.Name, mutationFailed)
		c.logger.Debugf(`Mutation "%s" failed: %s`, m.Name, err)
		return Outcome{Mutation: m, Err: err}
	}

	c.metrics.mutation(m.Name, mutationSucceeded)
	c.logger.Debugf(`Mutation "%s" succeeded.`, m.Name)
	c.Invalidate(m.Invalidates...)
	return Outcome{Mutation: m, Data: data}
}
