package usecase

import (
	"context"
	"sort"
	"sync"

	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"
)

// memStore mimics the DynamoDB transaction used by the repositories: the
// record, its guard item and the counter CAS succeed or fail together.
type memStore struct {
	mu       sync.Mutex
	counters map[string]int64
	guards   map[string]struct{}
	jobCards map[string]entities.JobCard
	bills    map[string]entities.Bill
}

func newMemStore() *memStore {
	return &memStore{
		counters: map[string]int64{},
		guards:   map[string]struct{}{},
		jobCards: map[string]entities.JobCard{},
		bills:    map[string]entities.Bill{},
	}
}

var (
	_ interfaces.ICounterStore      = (*memStore)(nil)
	_ interfaces.IJobCardRepository = (*memJobCardRepo)(nil)
	_ interfaces.IBillRepository    = (*memBillRepo)(nil)
)

func (s *memStore) Current(_ context.Context, key string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.counters[key]
	return v, ok, nil
}

// commit must be called with mu held.
func (s *memStore) commit(seq interfaces.SequenceReservation) error {
	if _, taken := s.guards[seq.GuardKey()]; taken {
		return interfaces.ErrSequenceConflict
	}
	current, exists := s.counters[seq.Key]
	if exists != seq.Exists || (exists && current != seq.Previous) {
		return interfaces.ErrSequenceConflict
	}
	s.counters[seq.Key] = seq.Value
	s.guards[seq.GuardKey()] = struct{}{}
	return nil
}

type memJobCardRepo struct{ s *memStore }

func (r *memJobCardRepo) Create(_ context.Context, jc entities.JobCard, seq interfaces.SequenceReservation) (entities.JobCard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.commit(seq); err != nil {
		return entities.JobCard{}, err
	}
	r.s.jobCards[jc.ID] = jc
	return jc, nil
}

func (r *memJobCardRepo) GetByID(_ context.Context, id string) (entities.JobCard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.jobCards[id], nil
}

func (r *memJobCardRepo) GetByJobID(_ context.Context, garageID, jobID string) (entities.JobCard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, jc := range r.s.jobCards {
		if jc.GarageID == garageID && jc.JobID == jobID {
			return jc, nil
		}
	}
	return entities.JobCard{}, nil
}

func (r *memJobCardRepo) GetByIDs(_ context.Context, ids []string) (map[string]entities.JobCard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := map[string]entities.JobCard{}
	for _, id := range ids {
		if jc, ok := r.s.jobCards[id]; ok {
			out[id] = jc
		}
	}
	return out, nil
}

func (r *memJobCardRepo) ListByGarage(_ context.Context, garageID string) ([]entities.JobCard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.JobCard
	for _, jc := range r.s.jobCards {
		if jc.GarageID == garageID {
			out = append(out, jc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JobCardNumber < out[j].JobCardNumber })
	return out, nil
}

func (r *memJobCardRepo) MaxJobCardNumber(ctx context.Context, garageID string) (int64, error) {
	cards, _ := r.ListByGarage(ctx, garageID)
	if len(cards) == 0 {
		return 0, nil
	}
	return cards[len(cards)-1].JobCardNumber, nil
}

func (r *memJobCardRepo) Update(_ context.Context, id string, patch entities.JobCardPatch) (entities.JobCard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	jc, ok := r.s.jobCards[id]
	if !ok {
		return entities.JobCard{}, nil
	}
	if patch.Status != nil {
		jc.Status = *patch.Status
	}
	if patch.GenerateBill != nil {
		jc.GenerateBill = *patch.GenerateBill
	}
	if patch.EngineerIDs != nil {
		jc.EngineerIDs = *patch.EngineerIDs
	}
	r.s.jobCards[id] = jc
	return jc, nil
}

func (r *memJobCardRepo) RecordQualityCheck(_ context.Context, id string, qc entities.QualityCheck) (entities.JobCard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	jc, ok := r.s.jobCards[id]
	if !ok {
		return entities.JobCard{}, nil
	}
	if jc.QualityCheck != nil {
		return entities.JobCard{}, interfaces.ErrConditionFailed
	}
	jc.QualityCheck = &qc
	r.s.jobCards[id] = jc
	return jc, nil
}

func (r *memJobCardRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.jobCards, id)
	return nil
}

type memBillRepo struct{ s *memStore }

func (r *memBillRepo) Create(_ context.Context, b entities.Bill, seq interfaces.SequenceReservation) (entities.Bill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.commit(seq); err != nil {
		return entities.Bill{}, err
	}
	r.s.bills[b.ID] = b
	return b, nil
}

func (r *memBillRepo) GetByID(_ context.Context, id string) (entities.Bill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.bills[id], nil
}

func (r *memBillRepo) filter(keep func(entities.Bill) bool) []entities.Bill {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.Bill
	for _, b := range r.s.bills {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (r *memBillRepo) ListByJobID(_ context.Context, garageID, jobID string) ([]entities.Bill, error) {
	return r.filter(func(b entities.Bill) bool { return b.GarageID == garageID && b.JobID == jobID }), nil
}

func (r *memBillRepo) ListByGarage(_ context.Context, garageID string, period entities.ReportPeriod) ([]entities.Bill, error) {
	return r.filter(func(b entities.Bill) bool { return b.GarageID == garageID && period.Contains(b.CreatedAt) }), nil
}

func (r *memBillRepo) LatestInSeries(_ context.Context, garageID string, billType entities.BillType) (entities.Bill, error) {
	series := r.filter(func(b entities.Bill) bool { return b.GarageID == garageID && b.BillType == billType })
	latest, _ := entities.LatestBill(series)
	return latest, nil
}

func (r *memBillRepo) FindByInvoiceNo(_ context.Context, garageID string, billType entities.BillType, invoiceNo string) (entities.Bill, error) {
	found := r.filter(func(b entities.Bill) bool {
		return b.GarageID == garageID && b.BillType == billType && b.InvoiceNo == invoiceNo
	})
	if len(found) == 0 {
		return entities.Bill{}, nil
	}
	return found[0], nil
}

func (r *memBillRepo) MarkPaid(_ context.Context, id, paymentMethod string) (entities.Bill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bills[id]
	if !ok {
		return entities.Bill{}, nil
	}
	b.IsPaid = true
	b.PaymentMethod = paymentMethod
	r.s.bills[id] = b
	return b, nil
}
