package database

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type index struct {
	name      string
	hashKey   string
	rangeKey  string
	rangeType types.ScalarAttributeType
}

type tableSpec struct {
	envKey  string
	name    string
	hashKey string
	indexes []index
}

// Tables lists every table the service reads or writes, with the indexes the
// repositories query.
var Tables = []tableSpec{
	{envKey: "GARAGES_TABLE", name: "garages", hashKey: "id", indexes: []index{
		{name: "email-index", hashKey: "email"},
	}},
	{envKey: "ENGINEERS_TABLE", name: "engineers", hashKey: "id", indexes: []index{
		{name: "garage_id-index", hashKey: "garage_id"},
	}},
	{envKey: "JOB_CARDS_TABLE", name: "job_cards", hashKey: "id", indexes: []index{
		{name: "garage_id-index", hashKey: "garage_id", rangeKey: "job_card_number", rangeType: types.ScalarAttributeTypeN},
		{name: "job_id-index", hashKey: "job_id"},
	}},
	{envKey: "BILLS_TABLE", name: "bills", hashKey: "id", indexes: []index{
		{name: "garage_id-index", hashKey: "garage_id", rangeKey: "created_at", rangeType: types.ScalarAttributeTypeS},
		{name: "job_id-index", hashKey: "job_id", rangeKey: "created_at", rangeType: types.ScalarAttributeTypeS},
		{name: "series-index", hashKey: "series", rangeKey: "created_at", rangeType: types.ScalarAttributeTypeS},
	}},
	{envKey: "INVENTORY_TABLE", name: "inventory", hashKey: "id", indexes: []index{
		{name: "garage_id-index", hashKey: "garage_id"},
	}},
	{envKey: "PLANS_TABLE", name: "plans", hashKey: "id"},
	{envKey: "USERS_TABLE", name: "users", hashKey: "id", indexes: []index{
		{name: "email-index", hashKey: "email"},
		{name: "garage_id-index", hashKey: "garage_id"},
	}},
	{envKey: "SEQUENCES_TABLE", name: "sequences", hashKey: "key"},
}

// CreateTablesEnabled reports whether DYNAMODB_CREATE_TABLES asks for the
// tables to be created at startup (local development).
func CreateTablesEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(getenvDefault("DYNAMODB_CREATE_TABLES", ""))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// EnsureTables creates the missing tables and waits until they are active.
// Existing tables are left untouched.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client) error {
	for _, spec := range Tables {
		name := getenvDefault(spec.envKey, spec.name)
		_, err := ddb.CreateTable(ctx, spec.input(name))
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			log.Printf("[database][bootstrap] create table failed table=%s err=%v", name, err)
			return err
		}
		log.Printf("[database][bootstrap] table created table=%s", name)

		waiter := dynamodb.NewTableExistsWaiter(ddb)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}, 2*time.Minute); err != nil {
			return err
		}
	}
	return nil
}

func (s tableSpec) input(name string) *dynamodb.CreateTableInput {
	attrs := map[string]types.ScalarAttributeType{s.hashKey: types.ScalarAttributeTypeS}
	var gsis []types.GlobalSecondaryIndex
	for _, idx := range s.indexes {
		attrs[idx.hashKey] = types.ScalarAttributeTypeS
		schema := []types.KeySchemaElement{{AttributeName: aws.String(idx.hashKey), KeyType: types.KeyTypeHash}}
		if idx.rangeKey != "" {
			attrs[idx.rangeKey] = idx.rangeType
			schema = append(schema, types.KeySchemaElement{AttributeName: aws.String(idx.rangeKey), KeyType: types.KeyTypeRange})
		}
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName:  aws.String(idx.name),
			KeySchema:  schema,
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	defs := make([]types.AttributeDefinition, 0, len(attrs))
	for name, typ := range attrs {
		defs = append(defs, types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: typ})
	}

	return &dynamodb.CreateTableInput{
		TableName:              aws.String(name),
		BillingMode:            types.BillingModePayPerRequest,
		AttributeDefinitions:   defs,
		KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String(s.hashKey), KeyType: types.KeyTypeHash}},
		GlobalSecondaryIndexes: gsis,
	}
}
