package repository

import (
	"context"
	"errors"
	"strings"

	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultGaragesTableName = "garages"
	garagesEmailIndex       = "email-index"
)

type bankDetailsItem struct {
	AccountHolderName string `dynamodbav:"account_holder_name"`
	AccountNumber     string `dynamodbav:"account_number"`
	IFSCCode          string `dynamodbav:"ifsc_code"`
	BankName          string `dynamodbav:"bank_name"`
	BranchName        string `dynamodbav:"branch_name"`
	UPIID             string `dynamodbav:"upi_id"`
}

type garageItem struct {
	ID                string          `dynamodbav:"id"`
	Name              string          `dynamodbav:"name"`
	Address           string          `dynamodbav:"address"`
	Phone             string          `dynamodbav:"phone"`
	Email             string          `dynamodbav:"email"`
	PasswordHash      string          `dynamodbav:"password_hash"`
	Logo              string          `dynamodbav:"logo,omitempty"`
	Approved          bool            `dynamodbav:"approved"`
	IsVerified        bool            `dynamodbav:"is_verified"`
	GSTNum            string          `dynamodbav:"gst_num,omitempty"`
	PANNum            string          `dynamodbav:"pan_num,omitempty"`
	SubscriptionType  string          `dynamodbav:"subscription_type"`
	SubscriptionStart string          `dynamodbav:"subscription_start"`
	SubscriptionEnd   string          `dynamodbav:"subscription_end"`
	IsSubscribed      bool            `dynamodbav:"is_subscribed"`
	BankDetails       bankDetailsItem `dynamodbav:"bank_details"`
	PaymentID         string          `dynamodbav:"payment_id,omitempty"`
	PaymentAmount     float64         `dynamodbav:"payment_amount"`
	PaymentMethod     string          `dynamodbav:"payment_method"`
	PaymentStatus     string          `dynamodbav:"payment_status"`
	PaymentPlanID     string          `dynamodbav:"payment_plan_id,omitempty"`
	CreatedAt         string          `dynamodbav:"created_at"`
	UpdatedAt         string          `dynamodbav:"updated_at"`
}

// GarageDynamoRepository persists Garage entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)
//
// Email uniqueness is enforced with a marker item in the sequences table,
// written in the same transaction as the garage.
type GarageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IGarageRepository = (*GarageDynamoRepository)(nil)

func NewGarageDynamoRepository(ddb *dynamodb.Client) *GarageDynamoRepository {
	return &GarageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("GARAGES_TABLE", defaultGaragesTableName),
	}
}

func emailGuardKey(email string) string {
	return "garage-email#" + strings.ToLower(strings.TrimSpace(email))
}

func (r *GarageDynamoRepository) Create(ctx context.Context, g entities.Garage) (entities.Garage, error) {
	av, err := attributevalue.MarshalMap(toGarageItem(g))
	if err != nil {
		return entities.Garage{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     av,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			guardPut(emailGuardKey(g.Email), g.ID),
		},
	})
	if err != nil {
		if isConditionCancellation(err) {
			return entities.Garage{}, interfaces.ErrConditionFailed
		}
		return entities.Garage{}, err
	}
	return g, nil
}

func (r *GarageDynamoRepository) GetByID(ctx context.Context, id string) (entities.Garage, error) {
	raw, err := getItemByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.Garage{}, err
	}
	if len(raw) == 0 {
		return entities.Garage{}, nil
	}
	var it garageItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Garage{}, err
	}
	return fromGarageItem(it), nil
}

func (r *GarageDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Garage, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(garagesEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: strings.ToLower(strings.TrimSpace(email))},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Garage{}, err
	}
	if len(out.Items) == 0 {
		return entities.Garage{}, nil
	}
	var it garageItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Garage{}, err
	}
	return fromGarageItem(it), nil
}

// Update replaces the stored garage. The email is immutable after
// registration, so the email marker is left alone.
func (r *GarageDynamoRepository) Update(ctx context.Context, g entities.Garage) (entities.Garage, error) {
	av, err := attributevalue.MarshalMap(toGarageItem(g))
	if err != nil {
		return entities.Garage{}, err
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
			return entities.Garage{}, nil
		}
		return entities.Garage{}, err
	}
	return g, nil
}

// ListPending scans for garages that were neither approved nor verified.
func (r *GarageDynamoRepository) ListPending(ctx context.Context) ([]entities.Garage, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#approved = :false AND #verified = :false"),
		ExpressionAttributeNames: map[string]string{
			"#approved": "approved",
			"#verified": "is_verified",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
		},
	})

	var garages []entities.Garage
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items, err := unmarshalAll[garageItem](page.Items)
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			garages = append(garages, fromGarageItem(it))
		}
	}
	return garages, nil
}

// Delete removes the garage and releases its email.
func (r *GarageDynamoRepository) Delete(ctx context.Context, g entities.Garage) error {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Delete: &types.Delete{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: g.ID},
					},
				},
			},
			guardDelete(emailGuardKey(g.Email)),
		},
	})
	return err
}

func toGarageItem(g entities.Garage) garageItem {
	return garageItem{
		ID:                g.ID,
		Name:              g.Name,
		Address:           g.Address,
		Phone:             g.Phone,
		Email:             strings.ToLower(strings.TrimSpace(g.Email)),
		PasswordHash:      g.PasswordHash,
		Logo:              g.Logo,
		Approved:          g.Approved,
		IsVerified:        g.IsVerified,
		GSTNum:            g.GSTNum,
		PANNum:            g.PANNum,
		SubscriptionType:  g.SubscriptionType,
		SubscriptionStart: formatTime(g.SubscriptionStart),
		SubscriptionEnd:   formatTime(g.SubscriptionEnd),
		IsSubscribed:      g.IsSubscribed,
		BankDetails:       bankDetailsItem(g.BankDetails),
		PaymentID:         g.PaymentDetails.PaymentID,
		PaymentAmount:     g.PaymentDetails.Amount,
		PaymentMethod:     g.PaymentDetails.Method,
		PaymentStatus:     g.PaymentDetails.Status,
		PaymentPlanID:     g.PaymentDetails.PlanID,
		CreatedAt:         formatTime(g.CreatedAt),
		UpdatedAt:         formatTime(g.UpdatedAt),
	}
}

func fromGarageItem(it garageItem) entities.Garage {
	return entities.Garage{
		ID:                it.ID,
		Name:              it.Name,
		Address:           it.Address,
		Phone:             it.Phone,
		Email:             it.Email,
		PasswordHash:      it.PasswordHash,
		Logo:              it.Logo,
		Approved:          it.Approved,
		IsVerified:        it.IsVerified,
		GSTNum:            it.GSTNum,
		PANNum:            it.PANNum,
		SubscriptionType:  it.SubscriptionType,
		SubscriptionStart: parseTime(it.SubscriptionStart),
		SubscriptionEnd:   parseTime(it.SubscriptionEnd),
		IsSubscribed:      it.IsSubscribed,
		BankDetails:       entities.BankDetails(it.BankDetails),
		PaymentDetails: entities.PaymentDetails{
			PaymentID: it.PaymentID,
			Amount:    it.PaymentAmount,
			Method:    it.PaymentMethod,
			Status:    it.PaymentStatus,
			PlanID:    it.PaymentPlanID,
		},
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
