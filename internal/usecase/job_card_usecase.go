package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"garage_manager/internal/domain/billing"
	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobCardNotFound         = errors.New("job card not found")
	ErrJobCardNumberConflict   = errors.New("job card number already exists, retry")
	ErrNoEngineersProvided     = errors.New("at least one engineer is required")
	ErrEngineerNotInGarage     = errors.New("engineer does not belong to garage")
	ErrNoEngineerAssigned      = errors.New("no engineer assigned to job card")
	ErrQualityCheckAlreadyDone = errors.New("quality check already performed")
	ErrInvalidJobStatus        = errors.New("invalid job status")
	ErrInvalidJobCardGarageID  = errors.New("invalid garage_id")
	ErrNothingToUpdate         = errors.New("nothing to update")
)

const defaultQualityCheckNotes = "No remarks"

type CreateJobCardInput struct {
	GarageID string
	Details  entities.JobCardDetails
}

// WorkProgressInput carries the fields an engineer may log. Nil fields are
// left untouched.
type WorkProgressInput struct {
	PartsUsed         *[]billing.PartInput
	LaborHours        *float64
	EngineerRemarks   *string
	Status            *string
	LabourServiceCost *[]billing.LabourInput
}

type IJobCardUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in CreateJobCardInput) (entities.JobCard, error)
	Get(ctx context.Context, actor entities.Actor, id string) (entities.JobCard, error)
	ListByGarage(ctx context.Context, actor entities.Actor, garageID string) ([]entities.JobCard, error)
	UpdateDetails(ctx context.Context, actor entities.Actor, id string, details entities.JobCardDetails) (entities.JobCard, error)
	UpdateStatus(ctx context.Context, actor entities.Actor, id string, status string) (entities.JobCard, error)
	Delete(ctx context.Context, actor entities.Actor, id string) error
	AssignEngineers(ctx context.Context, actor entities.Actor, id string, engineerIDs []string) (entities.JobCard, error)
	LogWorkProgress(ctx context.Context, actor entities.Actor, id string, in WorkProgressInput) (entities.JobCard, error)
	QualityCheck(ctx context.Context, actor entities.Actor, id string, notes string) (entities.JobCard, error)
	MarkForBilling(ctx context.Context, actor entities.Actor, id string) (entities.JobCard, error)
}

type JobCardUseCase struct {
	repo      interfaces.IJobCardRepository
	garages   interfaces.IGarageRepository
	engineers interfaces.IEngineerRepository
	sequences ISequenceAllocator
}

var _ IJobCardUseCase = (*JobCardUseCase)(nil)

func NewJobCardUseCase(repo interfaces.IJobCardRepository, garages interfaces.IGarageRepository, engineers interfaces.IEngineerRepository, sequences ISequenceAllocator) *JobCardUseCase {
	return &JobCardUseCase{repo: repo, garages: garages, engineers: engineers, sequences: sequences}
}

func (u *JobCardUseCase) Create(ctx context.Context, actor entities.Actor, in CreateJobCardInput) (entities.JobCard, error) {
	garageID := strings.TrimSpace(in.GarageID)
	if garageID == "" {
		garageID = actor.GarageID
	}
	log.Printf("[jobcard][usecase] create start garage_id=%s actor=%s", garageID, actor.ID)
	if garageID == "" {
		return entities.JobCard{}, ErrInvalidJobCardGarageID
	}
	if !actor.CanAccessGarage(garageID) {
		return entities.JobCard{}, ErrForbidden
	}
	if err := validateJobCardDetails(in.Details); err != nil {
		return entities.JobCard{}, err
	}

	garage, err := u.garages.GetByID(ctx, garageID)
	if err != nil {
		return entities.JobCard{}, err
	}
	if garage.ID == "" {
		log.Printf("[jobcard][usecase] garage not found garage_id=%s", garageID)
		return entities.JobCard{}, ErrGarageNotFound
	}

	now := time.Now().UTC()
	for attempt := 1; attempt <= maxSequenceAttempts; attempt++ {
		seq, err := u.sequences.ReserveJobCardNumber(ctx, garageID)
		if err != nil {
			return entities.JobCard{}, err
		}

		jc := entities.JobCard{
			ID:             uuid.NewString(),
			GarageID:       garageID,
			JobCardNumber:  seq.Value,
			JobID:          entities.JobIDFor(garageID, seq.Value),
			JobCardDetails: in.Details,
			Status:         entities.JobStatusInProgress,
			EngineerIDs:    []string{},
			CreatedBy:      actor.Creator(),
			GenerateBill:   false,
			PartsUsed:      []entities.PartLine{},
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		created, err := u.repo.Create(ctx, jc, seq)
		if errors.Is(err, interfaces.ErrSequenceConflict) {
			log.Printf("[jobcard][usecase] number taken, retrying garage_id=%s number=%d attempt=%d", garageID, seq.Value, attempt)
			continue
		}
		if err != nil {
			log.Printf("[jobcard][usecase] create failed garage_id=%s err=%v", garageID, err)
			return entities.JobCard{}, err
		}
		log.Printf("[jobcard][usecase] create success id=%s garage_id=%s number=%d", created.ID, garageID, created.JobCardNumber)
		return created, nil
	}
	log.Printf("[jobcard][usecase] giving up after %d attempts garage_id=%s", maxSequenceAttempts, garageID)
	return entities.JobCard{}, ErrJobCardNumberConflict
}

func (u *JobCardUseCase) Get(ctx context.Context, actor entities.Actor, id string) (entities.JobCard, error) {
	return u.load(ctx, actor, id)
}

func (u *JobCardUseCase) ListByGarage(ctx context.Context, actor entities.Actor, garageID string) ([]entities.JobCard, error) {
	garageID = strings.TrimSpace(garageID)
	if garageID == "" {
		return nil, ErrInvalidJobCardGarageID
	}
	if !actor.CanAccessGarage(garageID) {
		return nil, ErrForbidden
	}
	cards, err := u.repo.ListByGarage(ctx, garageID)
	if err != nil {
		return nil, err
	}
	// Staff accounts only see the cards they opened.
	if actor.Kind == entities.ActorKindUser && !actor.ManagesGarage(garageID) {
		own := make([]entities.JobCard, 0, len(cards))
		for _, jc := range cards {
			if jc.CreatedBy.Kind == entities.CreatorKindUser && jc.CreatedBy.ID == actor.ID {
				own = append(own, jc)
			}
		}
		cards = own
	}
	return cards, nil
}

func (u *JobCardUseCase) UpdateDetails(ctx context.Context, actor entities.Actor, id string, details entities.JobCardDetails) (entities.JobCard, error) {
	if _, err := u.load(ctx, actor, id); err != nil {
		return entities.JobCard{}, err
	}
	if err := validateJobCardDetails(details); err != nil {
		return entities.JobCard{}, err
	}
	return u.apply(ctx, id, entities.JobCardPatch{Details: &details})
}

func (u *JobCardUseCase) UpdateStatus(ctx context.Context, actor entities.Actor, id string, status string) (entities.JobCard, error) {
	s := entities.JobStatus(strings.TrimSpace(status))
	if !s.Valid() {
		return entities.JobCard{}, ErrInvalidJobStatus
	}
	if _, err := u.load(ctx, actor, id); err != nil {
		return entities.JobCard{}, err
	}
	log.Printf("[jobcard][usecase] status update id=%s status=%s", id, s)
	return u.apply(ctx, id, entities.JobCardPatch{Status: &s})
}

func (u *JobCardUseCase) Delete(ctx context.Context, actor entities.Actor, id string) error {
	if _, err := u.load(ctx, actor, id); err != nil {
		return err
	}
	log.Printf("[jobcard][usecase] delete id=%s", id)
	return u.repo.Delete(ctx, id)
}

func (u *JobCardUseCase) AssignEngineers(ctx context.Context, actor entities.Actor, id string, engineerIDs []string) (entities.JobCard, error) {
	ids := uniqueNonEmpty(engineerIDs)
	if len(ids) == 0 {
		return entities.JobCard{}, ErrNoEngineersProvided
	}
	jc, err := u.load(ctx, actor, id)
	if err != nil {
		return entities.JobCard{}, err
	}

	found, err := u.engineers.FindByIDs(ctx, jc.GarageID, ids)
	if err != nil {
		return entities.JobCard{}, err
	}
	if len(found) != len(ids) {
		log.Printf("[jobcard][usecase] engineer membership check failed id=%s requested=%d found=%d", id, len(ids), len(found))
		return entities.JobCard{}, ErrEngineerNotInGarage
	}

	log.Printf("[jobcard][usecase] assign engineers id=%s count=%d", id, len(ids))
	return u.apply(ctx, id, entities.JobCardPatch{EngineerIDs: &ids})
}

func (u *JobCardUseCase) LogWorkProgress(ctx context.Context, actor entities.Actor, id string, in WorkProgressInput) (entities.JobCard, error) {
	if _, err := u.load(ctx, actor, id); err != nil {
		return entities.JobCard{}, err
	}

	var patch entities.JobCardPatch
	if in.PartsUsed != nil {
		lines, err := billing.NormalizePartLines("parts_used", *in.PartsUsed)
		if err != nil {
			return entities.JobCard{}, err
		}
		patch.PartsUsed = &lines
	}
	if in.LabourServiceCost != nil {
		services, err := billing.NormalizeLabourServices("labour_service_cost", *in.LabourServiceCost)
		if err != nil {
			return entities.JobCard{}, err
		}
		total, tax := billing.SumLabour(services)
		patch.LabourServiceCost = &services
		patch.LaborServicesTotal = &total
		patch.LaborServicesTax = &tax
	}
	if in.LaborHours != nil {
		patch.LaborHours = in.LaborHours
	}
	if in.EngineerRemarks != nil {
		patch.EngineerRemarks = in.EngineerRemarks
	}
	if in.Status != nil {
		// Unknown statuses are dropped, the rest of the log still applies.
		if s := entities.JobStatus(strings.TrimSpace(*in.Status)); s.Valid() {
			patch.Status = &s
		} else {
			log.Printf("[jobcard][usecase] ignoring invalid status id=%s status=%q", id, *in.Status)
		}
	}
	if patch.IsEmpty() {
		return entities.JobCard{}, ErrNothingToUpdate
	}

	log.Printf("[jobcard][usecase] log work id=%s", id)
	return u.apply(ctx, id, patch)
}

func (u *JobCardUseCase) QualityCheck(ctx context.Context, actor entities.Actor, id string, notes string) (entities.JobCard, error) {
	jc, err := u.load(ctx, actor, id)
	if err != nil {
		return entities.JobCard{}, err
	}
	if !jc.HasEngineers() {
		return entities.JobCard{}, ErrNoEngineerAssigned
	}
	if jc.QualityCheckDone() {
		return entities.JobCard{}, ErrQualityCheckAlreadyDone
	}

	notes = strings.TrimSpace(notes)
	if notes == "" {
		notes = defaultQualityCheckNotes
	}
	qc := entities.QualityCheck{
		Notes:        notes,
		Date:         time.Now().UTC(),
		DoneBy:       append([]string(nil), jc.EngineerIDs...),
		BillApproved: true,
	}

	updated, err := u.repo.RecordQualityCheck(ctx, id, qc)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		// Lost the race against a concurrent check.
		return entities.JobCard{}, ErrQualityCheckAlreadyDone
	}
	if err != nil {
		return entities.JobCard{}, err
	}
	if updated.ID == "" {
		return entities.JobCard{}, ErrJobCardNotFound
	}
	log.Printf("[jobcard][usecase] quality check recorded id=%s done_by=%d", id, len(qc.DoneBy))
	return updated, nil
}

func (u *JobCardUseCase) MarkForBilling(ctx context.Context, actor entities.Actor, id string) (entities.JobCard, error) {
	jc, err := u.load(ctx, actor, id)
	if err != nil {
		return entities.JobCard{}, err
	}
	if jc.GenerateBill {
		return jc, nil
	}
	flag := true
	log.Printf("[jobcard][usecase] marked for billing id=%s", id)
	return u.apply(ctx, id, entities.JobCardPatch{GenerateBill: &flag})
}

// load fetches the job card and checks the actor may act on its garage.
func (u *JobCardUseCase) load(ctx context.Context, actor entities.Actor, id string) (entities.JobCard, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.JobCard{}, ErrJobCardNotFound
	}
	jc, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.JobCard{}, err
	}
	if jc.ID == "" {
		return entities.JobCard{}, ErrJobCardNotFound
	}
	if !actor.CanAccessGarage(jc.GarageID) {
		log.Printf("[jobcard][usecase] forbidden id=%s garage_id=%s actor_garage_id=%s", id, jc.GarageID, actor.GarageID)
		return entities.JobCard{}, ErrForbidden
	}
	return jc, nil
}

func (u *JobCardUseCase) apply(ctx context.Context, id string, patch entities.JobCardPatch) (entities.JobCard, error) {
	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.JobCard{}, err
	}
	if updated.ID == "" {
		return entities.JobCard{}, ErrJobCardNotFound
	}
	return updated, nil
}

func validateJobCardDetails(d entities.JobCardDetails) error {
	required := []struct {
		field string
		value string
	}{
		{"customer_number", d.CustomerNumber},
		{"customer_name", d.CustomerName},
		{"contact_number", d.ContactNumber},
		{"car_number", d.CarNumber},
		{"model", d.Model},
		{"fuel_type", d.FuelType},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return entities.NewValidationError(r.field, "is required")
		}
	}
	if d.Kilometer < 0 {
		return entities.NewValidationError("kilometer", "must be greater than or equal to 0")
	}
	return nil
}

func uniqueNonEmpty(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
