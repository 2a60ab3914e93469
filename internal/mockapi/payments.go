package mockapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/iliyamo/renttrack/internal/api"
	"github.com/iliyamo/renttrack/internal/events"
	"github.com/iliyamo/renttrack/internal/latency"
	"github.com/iliyamo/renttrack/internal/model"
	"github.com/iliyamo/renttrack/internal/utils"
)

// MonthLabel formats a billing month, e.g. "March 2025".
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}

func (f *Facade) date(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = f.today()
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, invalid("date %q is not YYYY-MM-DD", s)
	}
	return t, nil
}

// ListPayments returns every payment with its tenant name resolved.
func (f *Facade) ListPayments(ctx context.Context) ([]model.Payment, error) {
	if err := f.wait(ctx, latency.OpPayments); err != nil {
		return nil, err
	}
	return f.payments(), nil
}

func (f *Facade) payments() []model.Payment {
	list := f.store.Payments.List()
	for i := range list {
		list[i] = f.store.ResolvePayment(list[i])
	}
	return list
}

// MarkPaymentPaid stamps a payment as paid.  Calling it again re-stamps
// method and date.  An unknown id is reported before the date is checked
// and leaves the store untouched.
func (f *Facade) MarkPaymentPaid(ctx context.Context, id string, in api.MarkPaidInput) (model.Payment, error) {
	if err := f.wait(ctx, latency.OpMarkPaid); err != nil {
		return model.Payment{}, err
	}
	p, err := f.store.Payments.Update(id, func(p *model.Payment) error {
		paid, err := f.date(in.PaidDate)
		if err != nil {
			return err
		}
		p.Status = model.PaymentPaid
		p.PaidDate = paid.Format(dateLayout)
		p.Method = strings.TrimSpace(in.Method)
		return nil
	})
	if err != nil {
		return model.Payment{}, notFound(err)
	}
	p = f.store.ResolvePayment(p)

	ev := events.New(events.PaymentReceived, p.ID, fmt.Sprintf("Payment received from %s for %s", p.TenantName, p.Month), f.now())
	ev.Amount = p.Amount
	f.publish(ctx, ev)
	return p, nil
}

// RecordManualPayment books an already settled payment against a tenant
// and the tenant's property.
func (f *Facade) RecordManualPayment(ctx context.Context, in api.ManualPaymentInput) (model.Payment, error) {
	if err := f.wait(ctx, latency.OpManualPayment); err != nil {
		return model.Payment{}, err
	}
	t, err := f.store.Tenants.Get(in.TenantID)
	if err != nil {
		return model.Payment{}, notFound(err)
	}
	if err := checkAmount("amount", in.Amount); err != nil {
		return model.Payment{}, err
	}
	on, err := f.date(in.Date)
	if err != nil {
		return model.Payment{}, err
	}
	day := on.Format(dateLayout)

	p := model.Payment{
		ID:         utils.NewID("pay"),
		TenantID:   t.ID,
		PropertyID: t.PropertyID,
		Month:      MonthLabel(on),
		DueDate:    day,
		Amount:     in.Amount.Float(),
		Status:     model.PaymentPaid,
		PaidDate:   day,
		Method:     strings.TrimSpace(in.Method),
		ReceiptURL: strings.TrimSpace(in.ReceiptURL),
	}
	saved, err := f.store.Payments.Insert(p)
	if err != nil {
		return model.Payment{}, err
	}
	saved = f.store.ResolvePayment(saved)

	ev := events.New(events.PaymentReceived, saved.ID, fmt.Sprintf("Manual payment recorded for %s", saved.TenantName), f.now())
	ev.Amount = saved.Amount
	f.publish(ctx, ev)
	return saved, nil
}

// SweepOverduePayments marks every due payment whose due date is before
// asOf as overdue and returns how many changed.  An empty asOf means today.
func (f *Facade) SweepOverduePayments(ctx context.Context, asOf string) (int, error) {
	if err := f.wait(ctx, latency.OpSweepOverdue); err != nil {
		return 0, err
	}
	cutoff, err := f.date(asOf)
	if err != nil {
		return 0, err
	}
	late := func(p model.Payment) bool {
		if p.Status != model.PaymentDue {
			return false
		}
		due, err := time.Parse(dateLayout, p.DueDate)
		return err == nil && due.Before(cutoff)
	}

	n := 0
	for _, p := range f.store.Payments.Find(late) {
		_, err := f.store.Payments.Update(p.ID, func(cur *model.Payment) error {
			if !late(*cur) {
				return errSkip
			}
			cur.Status = model.PaymentOverdue
			return nil
		})
		if err == nil {
			n++
		}
	}
	return n, nil
}
