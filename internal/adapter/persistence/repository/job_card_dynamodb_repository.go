package repository

import (
	"context"
	"errors"
	"strconv"

	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultJobCardsTableName = "job_cards"
	jobCardsGarageIDIndex    = "garage_id-index"
	jobCardsJobIDIndex       = "job_id-index"
	batchGetLimit            = 100
)

type partLineItem struct {
	PartName      string  `dynamodbav:"part_name"`
	PartNumber    string  `dynamodbav:"part_number"`
	Quantity      float64 `dynamodbav:"quantity"`
	PricePerPiece float64 `dynamodbav:"price_per_piece"`
	TotalPrice    float64 `dynamodbav:"total_price"`
	TaxAmount     float64 `dynamodbav:"tax_amount"`
	TaxPercentage float64 `dynamodbav:"tax_percentage"`
	HSNNumber     string  `dynamodbav:"hsn_number"`
	IGST          float64 `dynamodbav:"igst"`
	CGSTSGST      float64 `dynamodbav:"cgst_sgst"`
}

type labourServiceItem struct {
	LabourCost  float64        `dynamodbav:"labour_cost"`
	LabourTax   float64        `dynamodbav:"labour_tax"`
	LabourType  string         `dynamodbav:"labour_type"`
	LabourNotes string         `dynamodbav:"labour_notes"`
	Parts       []partLineItem `dynamodbav:"parts"`
}

type qualityCheckItem struct {
	Notes        string   `dynamodbav:"notes"`
	Date         string   `dynamodbav:"date"`
	DoneBy       []string `dynamodbav:"done_by"`
	BillApproved bool     `dynamodbav:"bill_approved"`
}

type jobCardDetailsItem struct {
	CustomerNumber     string   `dynamodbav:"customer_number"`
	CustomerName       string   `dynamodbav:"customer_name"`
	ContactNumber      string   `dynamodbav:"contact_number"`
	Email              string   `dynamodbav:"email"`
	Company            string   `dynamodbav:"company"`
	CarNumber          string   `dynamodbav:"car_number"`
	Model              string   `dynamodbav:"model"`
	Kilometer          float64  `dynamodbav:"kilometer"`
	FuelType           string   `dynamodbav:"fuel_type"`
	FuelLevel          string   `dynamodbav:"fuel_level"`
	InsuranceProvider  string   `dynamodbav:"insurance_provider"`
	PolicyNumber       string   `dynamodbav:"policy_number"`
	ExpiryDate         string   `dynamodbav:"expiry_date,omitempty"`
	RegistrationNumber string   `dynamodbav:"registration_number"`
	Type               string   `dynamodbav:"type"`
	JobDetails         string   `dynamodbav:"job_details"`
	ExcessAmount       float64  `dynamodbav:"excess_amount"`
	GSTApplicable      bool     `dynamodbav:"gst_applicable"`
	Images             []string `dynamodbav:"images"`
	Video              string   `dynamodbav:"video"`
}

type jobCardItem struct {
	ID                 string              `dynamodbav:"id"`
	GarageID           string              `dynamodbav:"garage_id"`
	JobCardNumber      int64               `dynamodbav:"job_card_number"`
	JobID              string              `dynamodbav:"job_id"`
	Details            jobCardDetailsItem  `dynamodbav:"details"`
	Status             string              `dynamodbav:"status"`
	EngineerIDs        []string            `dynamodbav:"engineer_ids"`
	CreatedByKind      string              `dynamodbav:"created_by_kind"`
	CreatedByID        string              `dynamodbav:"created_by_id"`
	GenerateBill       bool                `dynamodbav:"generate_bill"`
	PartsUsed          []partLineItem      `dynamodbav:"parts_used"`
	LaborHours         float64             `dynamodbav:"labor_hours"`
	LaborServicesTotal float64             `dynamodbav:"labor_services_total"`
	LaborServicesTax   float64             `dynamodbav:"labor_services_tax"`
	LabourServiceCost  []labourServiceItem `dynamodbav:"labour_service_cost"`
	EngineerRemarks    string              `dynamodbav:"engineer_remarks"`
	QualityCheck       *qualityCheckItem   `dynamodbav:"quality_check,omitempty"`
	CreatedAt          string              `dynamodbav:"created_at"`
	UpdatedAt          string              `dynamodbav:"updated_at"`
}

// JobCardDynamoRepository persists JobCard entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: garage_id-index (PK: garage_id, SK: job_card_number)
//   - GSI: job_id-index (PK: job_id)
type JobCardDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobCardRepository = (*JobCardDynamoRepository)(nil)

func NewJobCardDynamoRepository(ddb *dynamodb.Client) *JobCardDynamoRepository {
	return &JobCardDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOB_CARDS_TABLE", defaultJobCardsTableName),
	}
}

// Create writes the job card, claims its number and advances the garage
// counter in one transaction.
func (r *JobCardDynamoRepository) Create(ctx context.Context, jc entities.JobCard, seq interfaces.SequenceReservation) (entities.JobCard, error) {
	av, err := attributevalue.MarshalMap(toJobCardItem(jc))
	if err != nil {
		return entities.JobCard{}, err
	}

	items := append([]types.TransactWriteItem{{
		Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	}}, sequenceWrites(seq, jc.ID)...)

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isConditionCancellation(err) {
			return entities.JobCard{}, interfaces.ErrSequenceConflict
		}
		return entities.JobCard{}, err
	}
	return jc, nil
}

func (r *JobCardDynamoRepository) GetByID(ctx context.Context, id string) (entities.JobCard, error) {
	raw, err := getItemByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.JobCard{}, err
	}
	return decodeJobCard(raw)
}

func (r *JobCardDynamoRepository) GetByJobID(ctx context.Context, garageID, jobID string) (entities.JobCard, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobCardsJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		FilterExpression:       aws.String("garage_id = :gid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
			":gid": &types.AttributeValueMemberS{Value: garageID},
		},
	})
	if err != nil {
		return entities.JobCard{}, err
	}
	if len(out.Items) == 0 {
		return entities.JobCard{}, nil
	}
	return decodeJobCard(out.Items[0])
}

// GetByIDs loads job cards in BatchGetItem chunks. Missing ids are absent
// from the result.
func (r *JobCardDynamoRepository) GetByIDs(ctx context.Context, ids []string) (map[string]entities.JobCard, error) {
	out := make(map[string]entities.JobCard, len(ids))
	for start := 0; start < len(ids); start += batchGetLimit {
		end := min(start+batchGetLimit, len(ids))
		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			})
		}

		request := map[string]types.KeysAndAttributes{r.tableName: {Keys: keys}}
		for len(request) > 0 {
			res, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, err
			}
			for _, raw := range res.Responses[r.tableName] {
				jc, err := decodeJobCard(raw)
				if err != nil {
					return nil, err
				}
				out[jc.ID] = jc
			}
			request = res.UnprocessedKeys
		}
	}
	return out, nil
}

func (r *JobCardDynamoRepository) ListByGarage(ctx context.Context, garageID string) ([]entities.JobCard, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobCardsGarageIDIndex),
		KeyConditionExpression: aws.String("garage_id = :gid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gid": &types.AttributeValueMemberS{Value: garageID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.JobCard, 0, len(raw))
	for _, item := range raw {
		jc, err := decodeJobCard(item)
		if err != nil {
			return nil, err
		}
		out = append(out, jc)
	}
	return out, nil
}

// MaxJobCardNumber reads the highest number through the garage index.
func (r *JobCardDynamoRepository) MaxJobCardNumber(ctx context.Context, garageID string) (int64, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobCardsGarageIDIndex),
		KeyConditionExpression: aws.String("garage_id = :gid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gid": &types.AttributeValueMemberS{Value: garageID},
		},
		ProjectionExpression:     aws.String("#n"),
		ExpressionAttributeNames: map[string]string{"#n": "job_card_number"},
		ScanIndexForward:         aws.Bool(false),
		Limit:                    aws.Int32(1),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Items) == 0 {
		return 0, nil
	}
	n, ok := out.Items[0]["job_card_number"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, nil
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func (r *JobCardDynamoRepository) Update(ctx context.Context, id string, patch entities.JobCardPatch) (entities.JobCard, error) {
	s := jobCardPatchExpr(patch)
	if s.err != nil {
		return entities.JobCard{}, s.err
	}
	raw, err := updateItem(ctx, r.ddb, r.tableName, id, s.build)
	if err != nil {
		return entities.JobCard{}, err
	}
	return decodeJobCard(raw)
}

// RecordQualityCheck writes the sign-off only if none exists yet.
func (r *JobCardDynamoRepository) RecordQualityCheck(ctx context.Context, id string, qc entities.QualityCheck) (entities.JobCard, error) {
	s := newSetExpr()
	s.value("quality_check", toQualityCheckItem(qc))
	if s.err != nil {
		return entities.JobCard{}, s.err
	}
	expr, values, names := s.build(formatTime(qc.Date))

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:                 aws.String("attribute_exists(#id) AND attribute_not_exists(#quality_check)"),
		UpdateExpression:                    aws.String(expr),
		ExpressionAttributeValues:           values,
		ExpressionAttributeNames:            mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.JobCard{}, nil
			}
			return entities.JobCard{}, interfaces.ErrConditionFailed
		}
		return entities.JobCard{}, err
	}
	return decodeJobCard(out.Attributes)
}

// Delete removes the card. Its number marker is kept so the number is never
// handed out again.
func (r *JobCardDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteItemByID(ctx, r.ddb, r.tableName, id)
}

func jobCardPatchExpr(p entities.JobCardPatch) *setExpr {
	s := newSetExpr()
	if p.Details != nil {
		s.value("details", toJobCardDetailsItem(*p.Details))
	}
	if p.Status != nil {
		s.str("status", string(*p.Status))
	}
	if p.EngineerIDs != nil {
		s.value("engineer_ids", *p.EngineerIDs)
	}
	if p.GenerateBill != nil {
		s.boolean("generate_bill", *p.GenerateBill)
	}
	if p.PartsUsed != nil {
		s.value("parts_used", toPartLineItems(*p.PartsUsed))
	}
	if p.LaborHours != nil {
		s.num("labor_hours", *p.LaborHours)
	}
	if p.LabourServiceCost != nil {
		services := make([]labourServiceItem, 0, len(*p.LabourServiceCost))
		for _, ls := range *p.LabourServiceCost {
			services = append(services, toLabourServiceItem(ls))
		}
		s.value("labour_service_cost", services)
	}
	if p.LaborServicesTotal != nil {
		s.num("labor_services_total", *p.LaborServicesTotal)
	}
	if p.LaborServicesTax != nil {
		s.num("labor_services_tax", *p.LaborServicesTax)
	}
	if p.EngineerRemarks != nil {
		s.str("engineer_remarks", *p.EngineerRemarks)
	}
	return s
}

func decodeJobCard(raw map[string]types.AttributeValue) (entities.JobCard, error) {
	if len(raw) == 0 {
		return entities.JobCard{}, nil
	}
	var it jobCardItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.JobCard{}, err
	}
	return fromJobCardItem(it), nil
}

func toPartLineItems(parts []entities.PartLine) []partLineItem {
	out := make([]partLineItem, 0, len(parts))
	for _, p := range parts {
		out = append(out, partLineItem(p))
	}
	return out
}

func fromPartLineItems(items []partLineItem) []entities.PartLine {
	out := make([]entities.PartLine, 0, len(items))
	for _, it := range items {
		out = append(out, entities.PartLine(it))
	}
	return out
}

func toLabourServiceItem(ls entities.LabourService) labourServiceItem {
	return labourServiceItem{
		LabourCost:  ls.LabourCost,
		LabourTax:   ls.LabourTax,
		LabourType:  ls.LabourType,
		LabourNotes: ls.LabourNotes,
		Parts:       toPartLineItems(ls.Parts),
	}
}

func toQualityCheckItem(qc entities.QualityCheck) qualityCheckItem {
	return qualityCheckItem{
		Notes:        qc.Notes,
		Date:         formatTime(qc.Date),
		DoneBy:       qc.DoneBy,
		BillApproved: qc.BillApproved,
	}
}

func toJobCardDetailsItem(d entities.JobCardDetails) jobCardDetailsItem {
	it := jobCardDetailsItem{
		CustomerNumber:     d.CustomerNumber,
		CustomerName:       d.CustomerName,
		ContactNumber:      d.ContactNumber,
		Email:              d.Email,
		Company:            d.Company,
		CarNumber:          d.CarNumber,
		Model:              d.Model,
		Kilometer:          d.Kilometer,
		FuelType:           d.FuelType,
		FuelLevel:          d.FuelLevel,
		InsuranceProvider:  d.InsuranceProvider,
		PolicyNumber:       d.PolicyNumber,
		RegistrationNumber: d.RegistrationNumber,
		Type:               d.Type,
		JobDetails:         d.JobDetails,
		ExcessAmount:       d.ExcessAmount,
		GSTApplicable:      d.GSTApplicable,
		Images:             d.Images,
		Video:              d.Video,
	}
	if d.ExpiryDate != nil {
		it.ExpiryDate = formatTime(*d.ExpiryDate)
	}
	return it
}

func fromJobCardDetailsItem(it jobCardDetailsItem) entities.JobCardDetails {
	d := entities.JobCardDetails{
		CustomerNumber:     it.CustomerNumber,
		CustomerName:       it.CustomerName,
		ContactNumber:      it.ContactNumber,
		Email:              it.Email,
		Company:            it.Company,
		CarNumber:          it.CarNumber,
		Model:              it.Model,
		Kilometer:          it.Kilometer,
		FuelType:           it.FuelType,
		FuelLevel:          it.FuelLevel,
		InsuranceProvider:  it.InsuranceProvider,
		PolicyNumber:       it.PolicyNumber,
		RegistrationNumber: it.RegistrationNumber,
		Type:               it.Type,
		JobDetails:         it.JobDetails,
		ExcessAmount:       it.ExcessAmount,
		GSTApplicable:      it.GSTApplicable,
		Images:             it.Images,
		Video:              it.Video,
	}
	if t := parseTime(it.ExpiryDate); !t.IsZero() {
		d.ExpiryDate = &t
	}
	return d
}

func toJobCardItem(jc entities.JobCard) jobCardItem {
	it := jobCardItem{
		ID:                 jc.ID,
		GarageID:           jc.GarageID,
		JobCardNumber:      jc.JobCardNumber,
		JobID:              jc.JobID,
		Details:            toJobCardDetailsItem(jc.JobCardDetails),
		Status:             string(jc.Status),
		EngineerIDs:        jc.EngineerIDs,
		CreatedByKind:      string(jc.CreatedBy.Kind),
		CreatedByID:        jc.CreatedBy.ID,
		GenerateBill:       jc.GenerateBill,
		PartsUsed:          toPartLineItems(jc.PartsUsed),
		LaborHours:         jc.LaborHours,
		LaborServicesTotal: jc.LaborServicesTotal,
		LaborServicesTax:   jc.LaborServicesTax,
		EngineerRemarks:    jc.EngineerRemarks,
		CreatedAt:          formatTime(jc.CreatedAt),
		UpdatedAt:          formatTime(jc.UpdatedAt),
	}
	for _, ls := range jc.LabourServiceCost {
		it.LabourServiceCost = append(it.LabourServiceCost, toLabourServiceItem(ls))
	}
	if jc.QualityCheck != nil {
		qc := toQualityCheckItem(*jc.QualityCheck)
		it.QualityCheck = &qc
	}
	return it
}

func fromJobCardItem(it jobCardItem) entities.JobCard {
	jc := entities.JobCard{
		ID:                 it.ID,
		GarageID:           it.GarageID,
		JobCardNumber:      it.JobCardNumber,
		JobID:              it.JobID,
		JobCardDetails:     fromJobCardDetailsItem(it.Details),
		Status:             entities.JobStatus(it.Status),
		EngineerIDs:        it.EngineerIDs,
		CreatedBy:          entities.Creator{Kind: entities.CreatorKind(it.CreatedByKind), ID: it.CreatedByID},
		GenerateBill:       it.GenerateBill,
		PartsUsed:          fromPartLineItems(it.PartsUsed),
		LaborHours:         it.LaborHours,
		LaborServicesTotal: it.LaborServicesTotal,
		LaborServicesTax:   it.LaborServicesTax,
		EngineerRemarks:    it.EngineerRemarks,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
	for _, ls := range it.LabourServiceCost {
		jc.LabourServiceCost = append(jc.LabourServiceCost, entities.LabourService{
			LabourCost:  ls.LabourCost,
			LabourTax:   ls.LabourTax,
			LabourType:  ls.LabourType,
			LabourNotes: ls.LabourNotes,
			Parts:       fromPartLineItems(ls.Parts),
		})
	}
	if it.QualityCheck != nil {
		jc.QualityCheck = &entities.QualityCheck{
			Notes:        it.QualityCheck.Notes,
			Date:         parseTime(it.QualityCheck.Date),
			DoneBy:       it.QualityCheck.DoneBy,
			BillApproved: it.QualityCheck.BillApproved,
		}
	}
	return jc
}
