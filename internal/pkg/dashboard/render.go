package dashboard

import (
	"fmt"
	"io"

	"github.com/furniture-crm/crm-cli/internal/pkg/query"
	"github.com/furniture-crm/crm-cli/internal/pkg/ui"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

// Render writes one frame: header, read warnings, stats and the customers table.
func (d *Dashboard) Render(w io.Writer, view View) error {
	email := ""
	if view.User != nil {
		email = view.User.Email
	}
	if err := (ui.Header{Email: email}).Render(w, d.theme); err != nil {
		return err
	}

	// A failed read keeps the previous data, the failure is only a warning.
	for _, s := range []query.Snapshot{view.Customers, view.Stats} {
		if s.Status == query.StatusError && s.Err != nil {
			msg := fmt.Sprintf("Cannot load %s: %s", s.Key, errors.Format(s.Err, errors.FormatAsSentences()))
			if _, err := fmt.Fprintln(w, d.theme.Warning.Sprint(msg)); err != nil {
				return err
			}
		}
	}

	stats, _ := statsQuery.Data(view.Stats)
	if err := (ui.StatsSummary{Stats: stats}).Render(w); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return d.table(view).Render(w)
}

func (d *Dashboard) table(view View) ui.CustomerTable {
	customers, _ := customersQuery.Data(view.Customers)
	return ui.CustomerTable{
		Customers: customers,
		Loading:   view.Customers.IsLoading(),
		OnEdit:    d.OpenEdit,
	}
}

// printNotice writes and resets the notice of the last action.
func (d *Dashboard) printNotice() {
	if d.notice.Text == "" {
		return
	}
	c := d.theme.Success
	if d.notice.Error {
		c = d.theme.Danger
	}
	_, _ = fmt.Fprintln(d.stdout, c.Sprint(d.notice.Text))
	d.notice = Notice{}
}
