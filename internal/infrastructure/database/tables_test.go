package database

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestTableSpecInput(t *testing.T) {
	var bills tableSpec
	for _, s := range Tables {
		if s.name == "bills" {
			bills = s
		}
	}
	in := bills.input("bills-test")

	if aws.ToString(in.TableName) != "bills-test" {
		t.Fatalf("unexpected table name %q", aws.ToString(in.TableName))
	}
	if len(in.GlobalSecondaryIndexes) != 3 {
		t.Fatalf("expected 3 indexes, got %d", len(in.GlobalSecondaryIndexes))
	}
	// id, garage_id, created_at, job_id, series
	if len(in.AttributeDefinitions) != 5 {
		t.Fatalf("expected 5 attribute definitions, got %d", len(in.AttributeDefinitions))
	}
	if in.BillingMode != types.BillingModePayPerRequest {
		t.Fatalf("unexpected billing mode %v", in.BillingMode)
	}
}

func TestCreateTablesEnabled(t *testing.T) {
	t.Setenv("DYNAMODB_CREATE_TABLES", "")
	if CreateTablesEnabled() {
		t.Fatalf("expected disabled")
	}
	t.Setenv("DYNAMODB_CREATE_TABLES", "true")
	if !CreateTablesEnabled() {
		t.Fatalf("expected enabled")
	}
}

func TestUsersTableIndexes(t *testing.T) {
	var users tableSpec
	for _, s := range Tables {
		if s.name == "users" {
			users = s
		}
	}
	in := users.input("users")
	names := map[string]bool{}
	for _, gsi := range in.GlobalSecondaryIndexes {
		names[aws.ToString(gsi.IndexName)] = true
	}
	if !names["email-index"] || !names["garage_id-index"] {
		t.Fatalf("expected email and garage indexes, got %v", names)
	}
}
