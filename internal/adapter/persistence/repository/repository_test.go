package repository

import (
	"errors"
	"strings"
	"testing"
	"time"

	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceWrites(t *testing.T) {
	t.Run("first number creates the counter", func(t *testing.T) {
		items := sequenceWrites(interfaces.SequenceReservation{Key: "jobcard#g1", Value: 1}, "jc-1")
		require.Len(t, items, 2)

		require.NotNil(t, items[0].Put)
		assert.Equal(t, "attribute_not_exists(#key)", aws.ToString(items[0].Put.ConditionExpression))
		assert.Equal(t, &types.AttributeValueMemberN{Value: "1"}, items[0].Put.Item["value"])

		require.NotNil(t, items[1].Put)
		assert.Equal(t, &types.AttributeValueMemberS{Value: "jobcard#g1#1"}, items[1].Put.Item["key"])
		assert.Equal(t, &types.AttributeValueMemberS{Value: "jc-1"}, items[1].Put.Item["ref"])
	})

	t.Run("existing counter moves by compare and swap", func(t *testing.T) {
		items := sequenceWrites(interfaces.SequenceReservation{Key: "invoice#g1#gst", Exists: true, Previous: 7, Value: 8}, "b-1")
		require.NotNil(t, items[0].Update)
		assert.Equal(t, "#value = :prev", aws.ToString(items[0].Update.ConditionExpression))
		assert.Equal(t, &types.AttributeValueMemberN{Value: "7"}, items[0].Update.ExpressionAttributeValues[":prev"])
		assert.Equal(t, &types.AttributeValueMemberN{Value: "8"}, items[0].Update.ExpressionAttributeValues[":next"])
		assert.Equal(t, &types.AttributeValueMemberS{Value: "invoice#g1#gst#8"}, items[1].Put.Item["key"])
	})

	t.Run("table name from env", func(t *testing.T) {
		t.Setenv("SEQUENCES_TABLE", "seq-test")
		items := sequenceWrites(interfaces.SequenceReservation{Key: "k", Value: 1}, "r")
		assert.Equal(t, "seq-test", aws.ToString(items[0].Put.TableName))
	})
}

func TestIsConditionCancellation(t *testing.T) {
	conflict := &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("None")},
			{Code: aws.String("ConditionalCheckFailed")},
		},
	}
	throttled := &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{{Code: aws.String("ThrottlingError")}},
	}

	assert.True(t, isConditionCancellation(conflict))
	assert.False(t, isConditionCancellation(throttled))
	assert.False(t, isConditionCancellation(errors.New("boom")))
}

func TestSetExpr(t *testing.T) {
	s := newSetExpr()
	s.str("status", "Completed")
	s.num("labor_hours", 2.5)
	s.boolean("generate_bill", true)
	s.value("engineer_ids", []string{"e1"})
	require.NoError(t, s.err)

	expr, values, names := s.build("2024-01-01T00:00:00.000000000Z")

	assert.True(t, strings.HasPrefix(expr, "SET #status = :status, "))
	assert.True(t, strings.HasSuffix(expr, "#updated_at = :updated_at"))
	assert.Equal(t, "labor_hours", names["#labor_hours"])
	assert.Equal(t, &types.AttributeValueMemberN{Value: "2.5"}, values[":labor_hours"])
	assert.Equal(t, &types.AttributeValueMemberBOOL{Value: true}, values[":generate_bill"])
	assert.IsType(t, &types.AttributeValueMemberL{}, values[":engineer_ids"])
}

func TestJobCardPatchExpr(t *testing.T) {
	status := entities.JobStatusCompleted
	remarks := "done"
	s := jobCardPatchExpr(entities.JobCardPatch{Status: &status, EngineerRemarks: &remarks})
	require.NoError(t, s.err)
	_, values, names := s.build("now")

	assert.Len(t, names, 3)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "Completed"}, values[":status"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "done"}, values[":engineer_remarks"])
	assert.True(t, jobCardPatchExpr(entities.JobCardPatch{}).empty())
}

func TestInventoryPatchExpr(t *testing.T) {
	qty := 3.0
	name := "Clutch plate"
	s := inventoryPatchExpr(entities.InventoryPartPatch{Quantity: &qty, PartName: &name})
	_, values, _ := s.build("now")

	assert.Equal(t, &types.AttributeValueMemberN{Value: "3"}, values[":quantity"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "Clutch plate"}, values[":part_name"])
	assert.NotContains(t, values, ":selling_price")
}

func TestPeriodKeyCondition(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	cond, values := periodKeyCondition(entities.ReportPeriod{})
	assert.Empty(t, cond)
	assert.Empty(t, values)

	cond, values = periodKeyCondition(entities.ReportPeriod{Start: &start, End: &end})
	assert.Equal(t, " AND created_at BETWEEN :start AND :end", cond)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "2024-01-01T00:00:00.000000000Z"}, values[":start"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "2024-01-31T23:59:59.000000000Z"}, values[":end"])

	cond, _ = periodKeyCondition(entities.ReportPeriod{End: &end})
	assert.Equal(t, " AND created_at <= :end", cond)
}

func TestSortableTimeOrdersLexically(t *testing.T) {
	a := formatTime(time.Date(2024, 1, 1, 9, 0, 0, 5, time.UTC))
	b := formatTime(time.Date(2024, 1, 1, 9, 0, 0, 40, time.UTC))
	c := formatTime(time.Date(2024, 1, 1, 10, 0, 0, 0, time.FixedZone("IST", 5*3600+1800)))

	assert.Less(t, a, b)
	assert.Less(t, c, a)
	assert.Equal(t, time.Date(2024, 1, 1, 9, 0, 0, 40, time.UTC), parseTime(b))
	assert.True(t, parseTime("").IsZero())
}

func TestJobCardItemConversion(t *testing.T) {
	expiry := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)
	jc := entities.JobCard{
		ID:            "jc-1",
		GarageID:      "g1",
		JobCardNumber: 12,
		JobID:         "JC-12",
		JobCardDetails: entities.JobCardDetails{
			CustomerName: "Asha",
			ExpiryDate:   &expiry,
			Images:       []string{"a.jpg"},
		},
		Status:      entities.JobStatusInProgress,
		EngineerIDs: []string{"e1"},
		CreatedBy:   entities.Creator{Kind: entities.CreatorKindGarage, ID: "g1"},
		PartsUsed:   []entities.PartLine{{PartName: "Filter", Quantity: 2, PricePerPiece: 100, TotalPrice: 200}},
		LabourServiceCost: []entities.LabourService{
			{LabourCost: 300, LabourType: "Service", Parts: []entities.PartLine{{PartName: "Oil"}}},
		},
		QualityCheck: &entities.QualityCheck{Notes: "ok", Date: created, DoneBy: []string{"e1"}},
		CreatedAt:    created,
		UpdatedAt:    created,
	}

	got := fromJobCardItem(toJobCardItem(jc))
	assert.Equal(t, jc, got)
}

func TestBillItemSeries(t *testing.T) {
	it := toBillItem(entities.Bill{ID: "b1", GarageID: "g1", BillType: entities.BillTypeNonGST, InvoiceNo: "04"})
	assert.Equal(t, "g1#non-gst", it.Series)

	b := fromBillItem(it)
	assert.Nil(t, b.PaidAt)
	assert.Equal(t, "INV-04", b.DisplayInvoiceNo())
}

func TestEmailGuardKey(t *testing.T) {
	assert.Equal(t, "garage-email#owner@garage.in", emailGuardKey(" Owner@Garage.in "))
}

func TestUserEmailGuardKey(t *testing.T) {
	assert.Equal(t, "user-email#desk@garage.in", userEmailGuardKey(" Desk@Garage.in "))
	assert.NotEqual(t, emailGuardKey("a@b.in"), userEmailGuardKey("a@b.in"))
}

func TestUserItemConversion(t *testing.T) {
	created := time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)
	u := entities.User{
		ID:           "u1",
		GarageID:     "g1",
		Name:         "Ravi",
		Email:        "ravi@garage.in",
		PasswordHash: "$2a$hash",
		Role:         entities.UserRoleManager,
		Permissions:  []string{"billing", "inventory"},
		CreatedAt:    created,
		UpdatedAt:    created,
	}
	it := toUserItem(u)
	assert.Equal(t, "manager", it.Role)
	assert.Equal(t, u, fromUserItem(it))
}

func TestPlanItemConversion(t *testing.T) {
	created := time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)
	p := entities.Plan{
		ID:               "p1",
		Name:             "Half year",
		DurationInMonths: 6,
		Amount:           2999.5,
		Features:         []string{"billing"},
		CreatedAt:        created,
		UpdatedAt:        created,
	}
	assert.Equal(t, p, fromPlanItem(toPlanItem(p)))
}

func TestGarageItemKeepsPendingPlan(t *testing.T) {
	g := entities.Garage{ID: "g1", PaymentDetails: entities.PaymentDetails{PaymentID: "42", Status: "pending", PlanID: "p1"}}
	it := toGarageItem(g)
	assert.Equal(t, "p1", it.PaymentPlanID)
	assert.Equal(t, g.PaymentDetails, fromGarageItem(it).PaymentDetails)
}
