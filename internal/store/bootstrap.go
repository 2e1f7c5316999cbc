package store

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

// Mock invoice shape: one unpaid invoice for the current month plus three
// paid ones for the months before it. Amounts for the paid months vary inside
// a fixed band so seeded data does not look copy-pasted.
const (
	currentInvoiceAmount = 85000
	paidAmountBase       = 82000
	paidAmountSpread     = 6000
	dueDay               = 15
	paidDay              = 12
)

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// monthLabel renders a month the way the portal displays it, e.g.
// "septiembre de 2026".
func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s de %d", spanishMonths[t.Month()-1], t.Year())
}

func isoDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// GenerateMockInvoices builds the default invoice set relative to now. Pure
// apart from the amount randomization; it persists nothing.
func GenerateMockInvoices(now time.Time) []Invoice {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	invoices := []Invoice{{
		ID:      "1",
		Month:   monthLabel(firstOfMonth),
		Amount:  currentInvoiceAmount,
		DueDate: isoDate(firstOfMonth.AddDate(0, 0, dueDay-1)),
		Paid:    false,
	}}

	for i := 1; i <= 3; i++ {
		month := firstOfMonth.AddDate(0, -i, 0)
		invoices = append(invoices, Invoice{
			ID:       fmt.Sprintf("%d", i+1),
			Month:    monthLabel(month),
			Amount:   paidAmountBase + rand.IntN(paidAmountSpread),
			DueDate:  isoDate(month.AddDate(0, 0, dueDay-1)),
			Paid:     true,
			PaidDate: isoDate(month.AddDate(0, 0, paidDay-1)),
		})
	}

	return invoices
}

// BootstrapInvoices returns the invoice collection, generating and persisting
// the mock set when none exists yet. This is the impure read-with-default
// counterpart of Invoices.
func (s *Store) BootstrapInvoices(ctx context.Context, now time.Time) ([]Invoice, error) {
	ctx, span := tracer.Start(ctx, "store.bootstrap "+KeyInvoices)
	defer span.End()

	_, ok, err := s.kv.Read(ctx, KeyInvoices)
	if err != nil {
		return nil, err
	}
	if ok {
		return s.Invoices(ctx)
	}

	invoices := GenerateMockInvoices(now)
	if err := s.SetInvoices(ctx, invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}
