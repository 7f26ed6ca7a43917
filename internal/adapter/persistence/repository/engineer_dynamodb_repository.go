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
	defaultEngineersTableName = "engineers"
	engineersGarageIDIndex    = "garage_id-index"
)

type engineerItem struct {
	ID        string `dynamodbav:"id"`
	GarageID  string `dynamodbav:"garage_id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// EngineerDynamoRepository persists Engineer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: garage_id-index (PK: garage_id)
type EngineerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEngineerRepository = (*EngineerDynamoRepository)(nil)

func NewEngineerDynamoRepository(ddb *dynamodb.Client) *EngineerDynamoRepository {
	return &EngineerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ENGINEERS_TABLE", defaultEngineersTableName),
	}
}

func (r *EngineerDynamoRepository) Create(ctx context.Context, e entities.Engineer) (entities.Engineer, error) {
	av, err := attributevalue.MarshalMap(toEngineerItem(e))
	if err != nil {
		return entities.Engineer{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Engineer{}, err
	}
	return e, nil
}

func (r *EngineerDynamoRepository) ListByGarage(ctx context.Context, garageID string) ([]entities.Engineer, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(engineersGarageIDIndex),
		KeyConditionExpression: aws.String("garage_id = :gid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gid": &types.AttributeValueMemberS{Value: garageID},
		},
	})
	if err != nil {
		return nil, err
	}
	items, err := unmarshalAll[engineerItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Engineer, 0, len(items))
	for _, it := range items {
		out = append(out, fromEngineerItem(it))
	}
	return out, nil
}

// FindByIDs lists the garage's engineers and keeps the requested ones, which
// also drops ids that belong to another garage.
func (r *EngineerDynamoRepository) FindByIDs(ctx context.Context, garageID string, ids []string) ([]entities.Engineer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	all, err := r.ListByGarage(ctx, garageID)
	if err != nil {
		return nil, err
	}
	var out []entities.Engineer
	for _, e := range all {
		if _, ok := wanted[e.ID]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func toEngineerItem(e entities.Engineer) engineerItem {
	return engineerItem{
		ID:        e.ID,
		GarageID:  e.GarageID,
		Name:      e.Name,
		Email:     e.Email,
		Phone:     e.Phone,
		CreatedAt: formatTime(e.CreatedAt),
		UpdatedAt: formatTime(e.UpdatedAt),
	}
}

func fromEngineerItem(it engineerItem) entities.Engineer {
	return entities.Engineer{
		ID:        it.ID,
		GarageID:  it.GarageID,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
