package interfaces

import (
	"context"

	"garage_manager/internal/domain/entities"
)

type IGarageRepository interface {
	// Create fails with ErrConditionFailed when the email is already registered.
	Create(ctx context.Context, g entities.Garage) (entities.Garage, error)
	GetByID(ctx context.Context, id string) (entities.Garage, error)
	GetByEmail(ctx context.Context, email string) (entities.Garage, error)
	Update(ctx context.Context, g entities.Garage) (entities.Garage, error)
	ListPending(ctx context.Context) ([]entities.Garage, error)
	Delete(ctx context.Context, g entities.Garage) error
}

type IEngineerRepository interface {
	Create(ctx context.Context, e entities.Engineer) (entities.Engineer, error)
	ListByGarage(ctx context.Context, garageID string) ([]entities.Engineer, error)
	// FindByIDs returns only the engineers among ids that belong to the garage.
	FindByIDs(ctx context.Context, garageID string, ids []string) ([]entities.Engineer, error)
}

type IJobCardRepository interface {
	// Create commits the job card together with its number reservation.
	Create(ctx context.Context, jc entities.JobCard, seq SequenceReservation) (entities.JobCard, error)
	GetByID(ctx context.Context, id string) (entities.JobCard, error)
	// GetByJobID resolves a job id within one garage.
	GetByJobID(ctx context.Context, garageID, jobID string) (entities.JobCard, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]entities.JobCard, error)
	ListByGarage(ctx context.Context, garageID string) ([]entities.JobCard, error)
	MaxJobCardNumber(ctx context.Context, garageID string) (int64, error)
	Update(ctx context.Context, id string, patch entities.JobCardPatch) (entities.JobCard, error)
	// RecordQualityCheck fails with ErrConditionFailed if a check exists.
	RecordQualityCheck(ctx context.Context, id string, qc entities.QualityCheck) (entities.JobCard, error)
	Delete(ctx context.Context, id string) error
}

type IBillRepository interface {
	// Create commits the bill together with its invoice number reservation.
	Create(ctx context.Context, b entities.Bill, seq SequenceReservation) (entities.Bill, error)
	GetByID(ctx context.Context, id string) (entities.Bill, error)
	ListByJobID(ctx context.Context, garageID, jobID string) ([]entities.Bill, error)
	ListByGarage(ctx context.Context, garageID string, period entities.ReportPeriod) ([]entities.Bill, error)
	LatestInSeries(ctx context.Context, garageID string, billType entities.BillType) (entities.Bill, error)
	FindByInvoiceNo(ctx context.Context, garageID string, billType entities.BillType, invoiceNo string) (entities.Bill, error)
	MarkPaid(ctx context.Context, id, paymentMethod string) (entities.Bill, error)
}

type IInventoryRepository interface {
	Create(ctx context.Context, p entities.InventoryPart) (entities.InventoryPart, error)
	GetByID(ctx context.Context, id string) (entities.InventoryPart, error)
	ListByGarage(ctx context.Context, garageID string) ([]entities.InventoryPart, error)
	Update(ctx context.Context, id string, patch entities.InventoryPartPatch) (entities.InventoryPart, error)
	Delete(ctx context.Context, id string) error
}

type IPlanRepository interface {
	Create(ctx context.Context, p entities.Plan) (entities.Plan, error)
	GetByID(ctx context.Context, id string) (entities.Plan, error)
	List(ctx context.Context) ([]entities.Plan, error)
	// Update returns a zero plan when id does not exist.
	Update(ctx context.Context, p entities.Plan) (entities.Plan, error)
	Delete(ctx context.Context, id string) error
}

type IUserRepository interface {
	// Create fails with ErrConditionFailed when the email is already taken.
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	ListByGarage(ctx context.Context, garageID string) ([]entities.User, error)
	Update(ctx context.Context, u entities.User) (entities.User, error)
	Delete(ctx context.Context, u entities.User) error
}
