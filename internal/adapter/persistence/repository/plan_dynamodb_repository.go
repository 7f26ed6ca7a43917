package repository

import (
	"context"
	"errors"

	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPlansTableName = "plans"

type planItem struct {
	ID               string   `dynamodbav:"id"`
	Name             string   `dynamodbav:"name"`
	DurationInMonths int      `dynamodbav:"duration_in_months"`
	Amount           float64  `dynamodbav:"amount"`
	Features         []string `dynamodbav:"features,omitempty"`
	SubscriptionType string   `dynamodbav:"subscription_type,omitempty"`
	CreatedAt        string   `dynamodbav:"created_at"`
	UpdatedAt        string   `dynamodbav:"updated_at"`
}

// PlanDynamoRepository persists subscription plans in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type PlanDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPlanRepository = (*PlanDynamoRepository)(nil)

func NewPlanDynamoRepository(ddb *dynamodb.Client) *PlanDynamoRepository {
	return &PlanDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PLANS_TABLE", defaultPlansTableName),
	}
}

func (r *PlanDynamoRepository) Create(ctx context.Context, p entities.Plan) (entities.Plan, error) {
	av, err := attributevalue.MarshalMap(toPlanItem(p))
	if err != nil {
		return entities.Plan{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Plan{}, err
	}
	return p, nil
}

func (r *PlanDynamoRepository) GetByID(ctx context.Context, id string) (entities.Plan, error) {
	raw, err := getItemByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.Plan{}, err
	}
	if len(raw) == 0 {
		return entities.Plan{}, nil
	}
	var it planItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Plan{}, err
	}
	return fromPlanItem(it), nil
}

// List scans the whole table. Plans are a short admin-managed catalogue.
func (r *PlanDynamoRepository) List(ctx context.Context) ([]entities.Plan, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})

	plans := []entities.Plan{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items, err := unmarshalAll[planItem](page.Items)
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			plans = append(plans, fromPlanItem(it))
		}
	}
	return plans, nil
}

func (r *PlanDynamoRepository) Update(ctx context.Context, p entities.Plan) (entities.Plan, error) {
	av, err := attributevalue.MarshalMap(toPlanItem(p))
	if err != nil {
		return entities.Plan{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Plan{}, nil
		}
		return entities.Plan{}, err
	}
	return p, nil
}

func (r *PlanDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteItemByID(ctx, r.ddb, r.tableName, id)
}

func toPlanItem(p entities.Plan) planItem {
	return planItem{
		ID:               p.ID,
		Name:             p.Name,
		DurationInMonths: p.DurationInMonths,
		Amount:           p.Amount,
		Features:         p.Features,
		SubscriptionType: p.SubscriptionType,
		CreatedAt:        formatTime(p.CreatedAt),
		UpdatedAt:        formatTime(p.UpdatedAt),
	}
}

func fromPlanItem(it planItem) entities.Plan {
	return entities.Plan{
		ID:               it.ID,
		Name:             it.Name,
		DurationInMonths: it.DurationInMonths,
		Amount:           it.Amount,
		Features:         it.Features,
		SubscriptionType: it.SubscriptionType,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
