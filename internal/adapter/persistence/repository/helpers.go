package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// sortableTime is a fixed-width UTC layout, so lexical order on index sort
// keys matches chronological order.
const sortableTime = "2006-01-02T15:04:05.000000000Z"

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(sortableTime)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// setExpr accumulates the clauses of a DynamoDB SET update expression.
type setExpr struct {
	clauses []string
	names   map[string]string
	values  map[string]types.AttributeValue
	err     error
}

func newSetExpr() *setExpr {
	return &setExpr{names: map[string]string{}, values: map[string]types.AttributeValue{}}
}

func (s *setExpr) set(attr string, v types.AttributeValue) {
	s.names["#"+attr] = attr
	s.values[":"+attr] = v
	s.clauses = append(s.clauses, fmt.Sprintf("#%s = :%s", attr, attr))
}

func (s *setExpr) str(attr, v string) {
	s.set(attr, &types.AttributeValueMemberS{Value: v})
}

func (s *setExpr) num(attr string, v float64) {
	s.set(attr, &types.AttributeValueMemberN{Value: floatToString(v)})
}

func (s *setExpr) boolean(attr string, v bool) {
	s.set(attr, &types.AttributeValueMemberBOOL{Value: v})
}

// value marshals any Go value with attributevalue.
func (s *setExpr) value(attr string, v any) {
	av, err := attributevalue.Marshal(v)
	if err != nil {
		s.err = errors.Join(s.err, fmt.Errorf("%s: %w", attr, err))
		return
	}
	s.set(attr, av)
}

func (s *setExpr) empty() bool {
	return len(s.clauses) == 0
}

func (s *setExpr) build(now string) (string, map[string]types.AttributeValue, map[string]string) {
	s.str("updated_at", now)
	expr := "SET "
	for i, c := range s.clauses {
		if i > 0 {
			expr += ", "
		}
		expr += c
	}
	return expr, s.values, s.names
}

// updateItem applies build to the item with the given id and returns the new
// attributes. A missing item yields (nil, nil).
func updateItem(
	ctx context.Context,
	ddb *dynamodb.Client,
	table, id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (map[string]types.AttributeValue, error) {
	now := time.Now().UTC().Format(sortableTime)
	updateExpr, values, names := build(now)

	out, err := ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil, nil
		}
		return nil, err
	}
	return out.Attributes, nil
}

func getItemByID(ctx context.Context, ddb *dynamodb.Client, table, id string) (map[string]types.AttributeValue, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return out.Item, nil
}

func deleteItemByID(ctx context.Context, ddb *dynamodb.Client, table, id string) error {
	_, err := ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// queryAll follows LastEvaluatedKey until the query is exhausted.
func queryAll(ctx context.Context, ddb *dynamodb.Client, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewQueryPaginator(ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

func unmarshalAll[T any](raw []map[string]types.AttributeValue) ([]T, error) {
	items := make([]T, 0, len(raw))
	for _, r := range raw {
		var it T
		if err := attributevalue.UnmarshalMap(r, &it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}
