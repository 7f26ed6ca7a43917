package repository

import (
	"context"
	"errors"
	"strconv"

	"garage_manager/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSequencesTableName = "sequences"

// SequenceDynamoRepository reads the per-garage counters that back job card
// and invoice numbering. The same table holds the uniqueness markers written
// next to every numbered record, and the garage email markers.
//
// Table requirements:
//   - PK: key (string)
//
// Counter items carry a numeric "value"; marker items carry the id of the
// record that owns them in "ref".
type SequenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICounterStore = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb *dynamodb.Client) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{
		ddb:       ddb,
		tableName: sequencesTableName(),
	}
}

func sequencesTableName() string {
	return getenvDefault("SEQUENCES_TABLE", defaultSequencesTableName)
}

func (r *SequenceDynamoRepository) Current(ctx context.Context, key string) (int64, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, false, err
	}
	if len(out.Item) == 0 {
		return 0, false, nil
	}
	n, ok := out.Item["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, false, nil
	}
	v, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

// sequenceWrites returns the transaction items that move the counter and
// claim the reserved number for ref. They are meant to be committed in the
// same TransactWriteItems call as the numbered record.
func sequenceWrites(seq interfaces.SequenceReservation, ref string) []types.TransactWriteItem {
	table := aws.String(sequencesTableName())
	next := strconv.FormatInt(seq.Value, 10)

	counter := types.TransactWriteItem{}
	if seq.Exists {
		counter.Update = &types.Update{
			TableName: table,
			Key: map[string]types.AttributeValue{
				"key": &types.AttributeValueMemberS{Value: seq.Key},
			},
			UpdateExpression:    aws.String("SET #value = :next"),
			ConditionExpression: aws.String("#value = :prev"),
			ExpressionAttributeNames: map[string]string{
				"#value": "value",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":next": &types.AttributeValueMemberN{Value: next},
				":prev": &types.AttributeValueMemberN{Value: strconv.FormatInt(seq.Previous, 10)},
			},
		}
	} else {
		counter.Put = &types.Put{
			TableName: table,
			Item: map[string]types.AttributeValue{
				"key":   &types.AttributeValueMemberS{Value: seq.Key},
				"value": &types.AttributeValueMemberN{Value: next},
			},
			ConditionExpression:      aws.String("attribute_not_exists(#key)"),
			ExpressionAttributeNames: map[string]string{"#key": "key"},
		}
	}

	return []types.TransactWriteItem{counter, guardPut(seq.GuardKey(), ref)}
}

func guardPut(key, ref string) types.TransactWriteItem {
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName: aws.String(sequencesTableName()),
			Item: map[string]types.AttributeValue{
				"key": &types.AttributeValueMemberS{Value: key},
				"ref": &types.AttributeValueMemberS{Value: ref},
			},
			ConditionExpression:      aws.String("attribute_not_exists(#key)"),
			ExpressionAttributeNames: map[string]string{"#key": "key"},
		},
	}
}

func guardDelete(key string) types.TransactWriteItem {
	return types.TransactWriteItem{
		Delete: &types.Delete{
			TableName: aws.String(sequencesTableName()),
			Key: map[string]types.AttributeValue{
				"key": &types.AttributeValueMemberS{Value: key},
			},
		},
	}
}

// isConditionCancellation reports whether a transaction was cancelled
// because one of its conditions failed.
func isConditionCancellation(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}
