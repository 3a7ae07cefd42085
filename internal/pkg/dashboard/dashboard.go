// Package dashboard composes the session, the query cache and the presentation components.
//
// The dashboard owns only the modal state, all server data are read from the cache.
// Mutations go through the cache and their results are applied as typed outcomes.
package dashboard

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/furniture-crm/crm-cli/internal/pkg/api"
	"github.com/furniture-crm/crm-cli/internal/pkg/auth"
	"github.com/furniture-crm/crm-cli/internal/pkg/log"
	"github.com/furniture-crm/crm-cli/internal/pkg/model"
	"github.com/furniture-crm/crm-cli/internal/pkg/query"
	"github.com/furniture-crm/crm-cli/internal/pkg/ui"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

// Confirmer asks the user before a delete.
type Confirmer interface {
	ConfirmDelete(customer model.Customer) bool
}

// Dialogs are the user interactions of the Run loop.
type Dialogs interface {
	Confirmer
	AskAction(options []string) (string, bool)
	AskCustomer(form ui.CustomerForm, values model.CustomerFields, message string) (model.CustomerFields, bool)
	AskCustomerID(table ui.CustomerTable, label string) (int, bool)
}

type dependencies interface {
	Logger() log.Logger
	Stdout() io.Writer
	Theme() ui.Theme
	Session() *auth.Provider
	Gateway() *api.Gateway
	QueryCache() *query.Cache
}

type Dashboard struct {
	logger  log.Logger
	stdout  io.Writer
	theme   ui.Theme
	session *auth.Provider
	gateway *api.Gateway
	cache   *query.Cache
	dialogs Dialogs

	modal  ModalState
	notice Notice

	customers          *query.Subscription
	stats              *query.Subscription
	unsubscribeSession func()
}

// View is the state rendered by one frame.
type View struct {
	User      *auth.User
	Customers query.Snapshot
	Stats     query.Snapshot
}

func New(d dependencies, dialogs Dialogs) *Dashboard {
	return &Dashboard{
		logger:  d.Logger().WithComponent("dashboard"),
		stdout:  d.Stdout(),
		theme:   d.Theme(),
		session: d.Session(),
		gateway: d.Gateway(),
		cache:   d.QueryCache(),
		dialogs: dialogs,
		modal:   ModalClosed{},
	}
}

// Mount subscribes both queries and watches the session.
// Any identity change drops the cached data, so nothing leaks to the next session.
// The data of a new user are fetched right away.
func (d *Dashboard) Mount() {
	if d.customers != nil {
		return
	}
	d.unsubscribeSession = d.session.OnSessionChange(func(user *auth.User) {
		d.cache.Clear()
		if user == nil {
			d.logger.Debug("Signed out, cached data dropped.")
			return
		}
		d.logger.Debugf(`Signed in as "%s", reloading data.`, user.Email)
		d.cache.Invalidate(query.AllKeys()...)
	})
	d.customers = d.cache.Subscribe(query.KeyCustomers)
	d.stats = d.cache.Subscribe(query.KeyStats)
}

func (d *Dashboard) Unmount() {
	if d.customers == nil {
		return
	}
	d.unsubscribeSession()
	d.customers.Close()
	d.stats.Close()
	d.customers, d.stats, d.unsubscribeSession = nil, nil, nil
}

// View returns the current state without waiting.
func (d *Dashboard) View() View {
	return View{
		User:      d.session.CurrentUser(),
		Customers: d.cache.Snapshot(query.KeyCustomers),
		Stats:     d.cache.Snapshot(query.KeyStats),
	}
}

// Wait until both queries are settled.
func (d *Dashboard) Wait(ctx context.Context) (View, error) {
	if d.customers == nil {
		return View{}, errors.New("dashboard is not mounted")
	}

	view := View{User: d.session.CurrentUser()}
	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() (err error) {
		view.Customers, err = d.customers.Settled(ctx)
		return err
	})
	grp.Go(func() (err error) {
		view.Stats, err = d.stats.Settled(ctx)
		return err
	})
	if err := grp.Wait(); err != nil {
		return View{}, err
	}
	return view, nil
}

// Notice returns the message of the last applied outcome.
func (d *Dashboard) Notice() Notice {
	return d.notice
}

// Submit validates the form values and creates or updates the customer, according to the modal state.
// Invalid values are rejected without a request, the modal stays open.
func (d *Dashboard) Submit(ctx context.Context, values model.CustomerFields) Outcome {
	outcome := d.submit(ctx, values)
	d.apply(outcome)
	return outcome
}

func (d *Dashboard) submit(ctx context.Context, values model.CustomerFields) Outcome {
	var form ui.CustomerForm
	switch m := d.modal.(type) {
	case ModalCreating:
		form = ui.NewCustomerForm(nil)
	case ModalEditing:
		form = ui.NewCustomerForm(&m.Customer)
	default:
		return Failed{Err: errors.New("no customer form is open")}
	}

	fields, err := form.Submit(ctx, values)
	if err != nil {
		var validationErr *ui.ValidationError
		if errors.As(err, &validationErr) {
			return Rejected{Message: validationErr.Message(), Err: validationErr}
		}
		return Failed{Err: err}
	}

	if m, ok := d.modal.(ModalEditing); ok {
		id := m.Customer.ID
		return fromMutation(d.cache.Mutate(ctx, query.CustomerMutation(mutationUpdate), func(ctx context.Context) (any, error) {
			return d.gateway.UpdateCustomer(ctx, id, model.PatchFromFields(fields))
		}))
	}
	return fromMutation(d.cache.Mutate(ctx, query.CustomerMutation(mutationCreate), func(ctx context.Context) (any, error) {
		return d.gateway.CreateCustomer(ctx, fields)
	}))
}

// Delete asks for the confirmation, then deletes the customer.
// A declined confirmation sends no request and changes nothing.
func (d *Dashboard) Delete(ctx context.Context, id int) Outcome {
	customer := model.Customer{ID: id}
	if customers, ok := customersQuery.Data(d.cache.Snapshot(query.KeyCustomers)); ok {
		if c, found := model.FindCustomer(customers, id); found {
			customer = c
		}
	}

	if !d.dialogs.ConfirmDelete(customer) {
		return Cancelled{}
	}

	outcome := fromMutation(d.cache.Mutate(ctx, query.CustomerMutation(mutationDelete), func(ctx context.Context) (any, error) {
		return nil, d.gateway.DeleteCustomer(ctx, id)
	}))
	d.apply(outcome)
	return outcome
}

// SignOut ends the session, the session listener drops the cached data before it returns.
func (d *Dashboard) SignOut(ctx context.Context) error {
	d.CloseModal()
	return d.session.SignOut(ctx)
}
