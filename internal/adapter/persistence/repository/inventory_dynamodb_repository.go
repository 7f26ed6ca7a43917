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
	defaultInventoryTableName = "inventory"
	inventoryGarageIDIndex    = "garage_id-index"
)

type inventoryItem struct {
	ID            string  `dynamodbav:"id"`
	GarageID      string  `dynamodbav:"garage_id"`
	CarName       string  `dynamodbav:"car_name"`
	Model         string  `dynamodbav:"model"`
	PartNumber    string  `dynamodbav:"part_number"`
	PartName      string  `dynamodbav:"part_name"`
	Quantity      float64 `dynamodbav:"quantity"`
	PurchasePrice float64 `dynamodbav:"purchase_price"`
	SellingPrice  float64 `dynamodbav:"selling_price"`
	TaxAmount     float64 `dynamodbav:"tax_amount"`
	HSNNumber     string  `dynamodbav:"hsn_number"`
	IGST          float64 `dynamodbav:"igst"`
	CGSTSGST      float64 `dynamodbav:"cgst_sgst"`
	CreatedAt     string  `dynamodbav:"created_at"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
}

// InventoryDynamoRepository persists InventoryPart entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: garage_id-index (PK: garage_id)
type InventoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInventoryRepository = (*InventoryDynamoRepository)(nil)

func NewInventoryDynamoRepository(ddb *dynamodb.Client) *InventoryDynamoRepository {
	return &InventoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVENTORY_TABLE", defaultInventoryTableName),
	}
}

func (r *InventoryDynamoRepository) Create(ctx context.Context, p entities.InventoryPart) (entities.InventoryPart, error) {
	av, err := attributevalue.MarshalMap(toInventoryItem(p))
	if err != nil {
		return entities.InventoryPart{}, err
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
		return entities.InventoryPart{}, err
	}
	return p, nil
}

func (r *InventoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.InventoryPart, error) {
	raw, err := getItemByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.InventoryPart{}, err
	}
	return decodeInventory(raw)
}

func (r *InventoryDynamoRepository) ListByGarage(ctx context.Context, garageID string) ([]entities.InventoryPart, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(inventoryGarageIDIndex),
		KeyConditionExpression: aws.String("garage_id = :gid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gid": &types.AttributeValueMemberS{Value: garageID},
		},
	})
	if err != nil {
		return nil, err
	}
	items, err := unmarshalAll[inventoryItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.InventoryPart, 0, len(items))
	for _, it := range items {
		out = append(out, fromInventoryItem(it))
	}
	return out, nil
}

func (r *InventoryDynamoRepository) Update(ctx context.Context, id string, patch entities.InventoryPartPatch) (entities.InventoryPart, error) {
	s := inventoryPatchExpr(patch)
	raw, err := updateItem(ctx, r.ddb, r.tableName, id, s.build)
	if err != nil {
		return entities.InventoryPart{}, err
	}
	return decodeInventory(raw)
}

func (r *InventoryDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteItemByID(ctx, r.ddb, r.tableName, id)
}

func inventoryPatchExpr(p entities.InventoryPartPatch) *setExpr {
	s := newSetExpr()
	for attr, v := range map[string]*string{
		"car_name":    p.CarName,
		"model":       p.Model,
		"part_number": p.PartNumber,
		"part_name":   p.PartName,
		"hsn_number":  p.HSNNumber,
	} {
		if v != nil {
			s.str(attr, *v)
		}
	}
	for attr, v := range map[string]*float64{
		"quantity":       p.Quantity,
		"purchase_price": p.PurchasePrice,
		"selling_price":  p.SellingPrice,
		"tax_amount":     p.TaxAmount,
		"igst":           p.IGST,
		"cgst_sgst":      p.CGSTSGST,
	} {
		if v != nil {
			s.num(attr, *v)
		}
	}
	return s
}

func decodeInventory(raw map[string]types.AttributeValue) (entities.InventoryPart, error) {
	if len(raw) == 0 {
		return entities.InventoryPart{}, nil
	}
	var it inventoryItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.InventoryPart{}, err
	}
	return fromInventoryItem(it), nil
}

func toInventoryItem(p entities.InventoryPart) inventoryItem {
	return inventoryItem{
		ID:            p.ID,
		GarageID:      p.GarageID,
		CarName:       p.CarName,
		Model:         p.Model,
		PartNumber:    p.PartNumber,
		PartName:      p.PartName,
		Quantity:      p.Quantity,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		TaxAmount:     p.TaxAmount,
		HSNNumber:     p.HSNNumber,
		IGST:          p.IGST,
		CGSTSGST:      p.CGSTSGST,
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	}
}

func fromInventoryItem(it inventoryItem) entities.InventoryPart {
	return entities.InventoryPart{
		ID:            it.ID,
		GarageID:      it.GarageID,
		CarName:       it.CarName,
		Model:         it.Model,
		PartNumber:    it.PartNumber,
		PartName:      it.PartName,
		Quantity:      it.Quantity,
		PurchasePrice: it.PurchasePrice,
		SellingPrice:  it.SellingPrice,
		TaxAmount:     it.TaxAmount,
		HSNNumber:     it.HSNNumber,
		IGST:          it.IGST,
		CGSTSGST:      it.CGSTSGST,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
