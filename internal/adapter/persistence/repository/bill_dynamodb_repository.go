package repository

import (
	"context"

	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBillsTableName = "bills"
	billsGarageIDIndex    = "garage_id-index"
	billsJobIDIndex       = "job_id-index"
	billsSeriesIndex      = "series-index"
)

type billPartItem struct {
	PartName     string  `dynamodbav:"part_name"`
	PartNumber   string  `dynamodbav:"part_number"`
	HSNNumber    string  `dynamodbav:"hsn_number"`
	Quantity     float64 `dynamodbav:"quantity"`
	SellingPrice float64 `dynamodbav:"selling_price"`
	Total        float64 `dynamodbav:"total"`
}

type billServiceItem struct {
	Description string  `dynamodbav:"description"`
	LaborCost   float64 `dynamodbav:"labor_cost"`
}

type partyItem struct {
	Name    string `dynamodbav:"name"`
	Address string `dynamodbav:"address"`
	GSTIN   string `dynamodbav:"gstin"`
	Phone   string `dynamodbav:"phone"`
}

type billItem struct {
	ID             string            `dynamodbav:"id"`
	GarageID       string            `dynamodbav:"garage_id"`
	JobCardID      string            `dynamodbav:"job_card_id"`
	JobID          string            `dynamodbav:"job_id"`
	Series         string            `dynamodbav:"series"`
	InvoiceNo      string            `dynamodbav:"invoice_no"`
	BillType       string            `dynamodbav:"bill_type"`
	Parts          []billPartItem    `dynamodbav:"parts"`
	Services       []billServiceItem `dynamodbav:"services"`
	TotalPartsCost float64           `dynamodbav:"total_parts_cost"`
	TotalLaborCost float64           `dynamodbav:"total_labor_cost"`
	SubTotal       float64           `dynamodbav:"sub_total"`
	GST            float64           `dynamodbav:"gst"`
	GSTPercentage  float64           `dynamodbav:"gst_percentage"`
	Discount       float64           `dynamodbav:"discount"`
	FinalAmount    float64           `dynamodbav:"final_amount"`
	HSNCode        string            `dynamodbav:"hsn_code"`
	Logo           string            `dynamodbav:"logo,omitempty"`
	BankDetails    bankDetailsItem   `dynamodbav:"bank_details"`
	BillToParty    partyItem         `dynamodbav:"bill_to_party"`
	ShiftToParty   partyItem         `dynamodbav:"shift_to_party"`
	IsPaid         bool              `dynamodbav:"is_paid"`
	PaymentMethod  string            `dynamodbav:"payment_method,omitempty"`
	PaidAt         string            `dynamodbav:"paid_at,omitempty"`
	CreatedAt      string            `dynamodbav:"created_at"`
	UpdatedAt      string            `dynamodbav:"updated_at"`
}

// BillDynamoRepository persists Bill entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: garage_id-index (PK: garage_id, SK: created_at)
//   - GSI: job_id-index (PK: job_id, SK: created_at)
//   - GSI: series-index (PK: series, SK: created_at)
//
// series is "<garage_id>#<bill_type>", one invoice numbering series.
type BillDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillRepository = (*BillDynamoRepository)(nil)

func NewBillDynamoRepository(ddb *dynamodb.Client) *BillDynamoRepository {
	return &BillDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BILLS_TABLE", defaultBillsTableName),
	}
}

func seriesKey(garageID string, billType entities.BillType) string {
	return garageID + "#" + string(billType)
}

// Create writes the bill, claims its invoice number and advances the series
// counter in one transaction.
func (r *BillDynamoRepository) Create(ctx context.Context, b entities.Bill, seq interfaces.SequenceReservation) (entities.Bill, error) {
	av, err := attributevalue.MarshalMap(toBillItem(b))
	if err != nil {
		return entities.Bill{}, err
	}

	items := append([]types.TransactWriteItem{{
		Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	}}, sequenceWrites(seq, b.ID)...)

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isConditionCancellation(err) {
			return entities.Bill{}, interfaces.ErrSequenceConflict
		}
		return entities.Bill{}, err
	}
	return b, nil
}

func (r *BillDynamoRepository) GetByID(ctx context.Context, id string) (entities.Bill, error) {
	raw, err := getItemByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.Bill{}, err
	}
	return decodeBill(raw)
}

// ListByJobID returns the garage's bills for a job. Job ids are only unique
// inside a garage, so the garage filter is mandatory.
func (r *BillDynamoRepository) ListByJobID(ctx context.Context, garageID, jobID string) ([]entities.Bill, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(billsJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		FilterExpression:       aws.String("garage_id = :gid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
			":gid": &types.AttributeValueMemberS{Value: garageID},
		},
	})
}

// ListByGarage returns the garage's bills created inside period, oldest first.
func (r *BillDynamoRepository) ListByGarage(ctx context.Context, garageID string, period entities.ReportPeriod) ([]entities.Bill, error) {
	keyCond, values := periodKeyCondition(period)
	values[":gid"] = &types.AttributeValueMemberS{Value: garageID}
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(billsGarageIDIndex),
		KeyConditionExpression:    aws.String("garage_id = :gid" + keyCond),
		ExpressionAttributeValues: values,
		ScanIndexForward:          aws.Bool(true),
	})
}

func periodKeyCondition(period entities.ReportPeriod) (string, map[string]types.AttributeValue) {
	values := map[string]types.AttributeValue{}
	switch {
	case period.Start != nil && period.End != nil:
		values[":start"] = &types.AttributeValueMemberS{Value: formatTime(*period.Start)}
		values[":end"] = &types.AttributeValueMemberS{Value: formatTime(*period.End)}
		return " AND created_at BETWEEN :start AND :end", values
	case period.Start != nil:
		values[":start"] = &types.AttributeValueMemberS{Value: formatTime(*period.Start)}
		return " AND created_at >= :start", values
	case period.End != nil:
		values[":end"] = &types.AttributeValueMemberS{Value: formatTime(*period.End)}
		return " AND created_at <= :end", values
	}
	return "", values
}

// LatestInSeries returns the most recently created bill of the series.
func (r *BillDynamoRepository) LatestInSeries(ctx context.Context, garageID string, billType entities.BillType) (entities.Bill, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(billsSeriesIndex),
		KeyConditionExpression: aws.String("series = :series"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":series": &types.AttributeValueMemberS{Value: seriesKey(garageID, billType)},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return entities.Bill{}, err
	}
	if len(out.Items) == 0 {
		return entities.Bill{}, nil
	}
	return decodeBill(out.Items[0])
}

func (r *BillDynamoRepository) FindByInvoiceNo(ctx context.Context, garageID string, billType entities.BillType, invoiceNo string) (entities.Bill, error) {
	bills, err := r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(billsSeriesIndex),
		KeyConditionExpression: aws.String("series = :series"),
		FilterExpression:       aws.String("invoice_no = :inv"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":series": &types.AttributeValueMemberS{Value: seriesKey(garageID, billType)},
			":inv":    &types.AttributeValueMemberS{Value: invoiceNo},
		},
	})
	if err != nil {
		return entities.Bill{}, err
	}
	if len(bills) == 0 {
		return entities.Bill{}, nil
	}
	return bills[0], nil
}

// MarkPaid only touches the payment fields; cost fields are immutable.
func (r *BillDynamoRepository) MarkPaid(ctx context.Context, id, paymentMethod string) (entities.Bill, error) {
	raw, err := updateItem(ctx, r.ddb, r.tableName, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		s := newSetExpr()
		s.boolean("is_paid", true)
		s.str("payment_method", paymentMethod)
		s.str("paid_at", now)
		return s.build(now)
	})
	if err != nil {
		return entities.Bill{}, err
	}
	return decodeBill(raw)
}

func (r *BillDynamoRepository) query(ctx context.Context, in *dynamodb.QueryInput) ([]entities.Bill, error) {
	raw, err := queryAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	items, err := unmarshalAll[billItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Bill, 0, len(items))
	for _, it := range items {
		out = append(out, fromBillItem(it))
	}
	return out, nil
}

func decodeBill(raw map[string]types.AttributeValue) (entities.Bill, error) {
	if len(raw) == 0 {
		return entities.Bill{}, nil
	}
	var it billItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Bill{}, err
	}
	return fromBillItem(it), nil
}

func toBillItem(b entities.Bill) billItem {
	it := billItem{
		ID:             b.ID,
		GarageID:       b.GarageID,
		JobCardID:      b.JobCardID,
		JobID:          b.JobID,
		Series:         seriesKey(b.GarageID, b.BillType),
		InvoiceNo:      b.InvoiceNo,
		BillType:       string(b.BillType),
		TotalPartsCost: b.TotalPartsCost,
		TotalLaborCost: b.TotalLaborCost,
		SubTotal:       b.SubTotal,
		GST:            b.GST,
		GSTPercentage:  b.GSTPercentage,
		Discount:       b.Discount,
		FinalAmount:    b.FinalAmount,
		HSNCode:        b.HSNCode,
		Logo:           b.Logo,
		BankDetails:    bankDetailsItem(b.BankDetails),
		BillToParty:    partyItem(b.BillToParty),
		ShiftToParty:   partyItem(b.ShiftToParty),
		IsPaid:         b.IsPaid,
		PaymentMethod:  b.PaymentMethod,
		CreatedAt:      formatTime(b.CreatedAt),
		UpdatedAt:      formatTime(b.UpdatedAt),
	}
	for _, p := range b.Parts {
		it.Parts = append(it.Parts, billPartItem(p))
	}
	for _, s := range b.Services {
		it.Services = append(it.Services, billServiceItem(s))
	}
	if b.PaidAt != nil {
		it.PaidAt = formatTime(*b.PaidAt)
	}
	return it
}

func fromBillItem(it billItem) entities.Bill {
	b := entities.Bill{
		ID:             it.ID,
		GarageID:       it.GarageID,
		JobCardID:      it.JobCardID,
		JobID:          it.JobID,
		InvoiceNo:      it.InvoiceNo,
		BillType:       entities.BillType(it.BillType),
		TotalPartsCost: it.TotalPartsCost,
		TotalLaborCost: it.TotalLaborCost,
		SubTotal:       it.SubTotal,
		GST:            it.GST,
		GSTPercentage:  it.GSTPercentage,
		Discount:       it.Discount,
		FinalAmount:    it.FinalAmount,
		HSNCode:        it.HSNCode,
		Logo:           it.Logo,
		BankDetails:    entities.BankDetails(it.BankDetails),
		BillToParty:    entities.Party(it.BillToParty),
		ShiftToParty:   entities.Party(it.ShiftToParty),
		IsPaid:         it.IsPaid,
		PaymentMethod:  it.PaymentMethod,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
	for _, p := range it.Parts {
		b.Parts = append(b.Parts, entities.BillPartLine(p))
	}
	for _, s := range it.Services {
		b.Services = append(b.Services, entities.BillServiceLine(s))
	}
	if t := parseTime(it.PaidAt); !t.IsZero() {
		paidAt := t
		b.PaidAt = &paidAt
	}
	return b
}
