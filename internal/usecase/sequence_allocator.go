package usecase

import (
	"context"
	"log"

	"garage_manager/internal/domain/billing"
	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"
)

// maxSequenceAttempts bounds how often a numbered write is retried after
// losing the counter race to a concurrent writer.
const maxSequenceAttempts = 5

// ISequenceAllocator hands out per-garage job card numbers and per-garage,
// per-bill-type invoice numbers.
//
// Reserve* returns a reservation that the caller commits atomically with the
// numbered record; Next* only peeks at the number the next reservation would
// carry.
type ISequenceAllocator interface {
	ReserveJobCardNumber(ctx context.Context, garageID string) (interfaces.SequenceReservation, error)
	ReserveInvoiceNumber(ctx context.Context, garageID string, billType entities.BillType) (interfaces.SequenceReservation, error)
	NextJobCardNumber(ctx context.Context, garageID string) (int64, error)
	NextInvoiceNumber(ctx context.Context, garageID string, billType entities.BillType) (string, error)
}

type SequenceAllocator struct {
	counters interfaces.ICounterStore
	jobCards interfaces.IJobCardRepository
	bills    interfaces.IBillRepository
}

var _ ISequenceAllocator = (*SequenceAllocator)(nil)

func NewSequenceAllocator(counters interfaces.ICounterStore, jobCards interfaces.IJobCardRepository, bills interfaces.IBillRepository) *SequenceAllocator {
	return &SequenceAllocator{counters: counters, jobCards: jobCards, bills: bills}
}

func jobCardSequenceKey(garageID string) string {
	return "jobcard#" + garageID
}

func invoiceSequenceKey(garageID string, billType entities.BillType) string {
	return "invoice#" + garageID + "#" + string(billType)
}

func (a *SequenceAllocator) ReserveJobCardNumber(ctx context.Context, garageID string) (interfaces.SequenceReservation, error) {
	key := jobCardSequenceKey(garageID)
	current, exists, err := a.counters.Current(ctx, key)
	if err != nil {
		return interfaces.SequenceReservation{}, err
	}
	if !exists {
		// First allocation through the counter: continue after whatever is
		// already stored so existing numbers are never handed out again.
		current, err = a.jobCards.MaxJobCardNumber(ctx, garageID)
		if err != nil {
			return interfaces.SequenceReservation{}, err
		}
		log.Printf("[sequence][usecase] seeding job card counter garage_id=%s from=%d", garageID, current)
	}
	return interfaces.SequenceReservation{Key: key, Previous: current, Exists: exists, Value: current + 1}, nil
}

func (a *SequenceAllocator) ReserveInvoiceNumber(ctx context.Context, garageID string, billType entities.BillType) (interfaces.SequenceReservation, error) {
	key := invoiceSequenceKey(garageID, billType)
	current, exists, err := a.counters.Current(ctx, key)
	if err != nil {
		return interfaces.SequenceReservation{}, err
	}
	if !exists {
		last, err := a.bills.LatestInSeries(ctx, garageID, billType)
		if err != nil {
			return interfaces.SequenceReservation{}, err
		}
		current = 0
		if n, ok := billing.ParseInvoiceNumber(last.InvoiceNo); ok {
			current = n
		}
		log.Printf("[sequence][usecase] seeding invoice counter garage_id=%s bill_type=%s from=%d", garageID, billType, current)
	}
	return interfaces.SequenceReservation{Key: key, Previous: current, Exists: exists, Value: current + 1}, nil
}

func (a *SequenceAllocator) NextJobCardNumber(ctx context.Context, garageID string) (int64, error) {
	r, err := a.ReserveJobCardNumber(ctx, garageID)
	if err != nil {
		return 0, err
	}
	return r.Value, nil
}

func (a *SequenceAllocator) NextInvoiceNumber(ctx context.Context, garageID string, billType entities.BillType) (string, error) {
	r, err := a.ReserveInvoiceNumber(ctx, garageID, billType)
	if err != nil {
		return "", err
	}
	return billing.FormatInvoiceNumber(billType, r.Value), nil
}
