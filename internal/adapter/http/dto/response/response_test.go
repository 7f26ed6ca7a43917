package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"garage_manager/internal/domain/billing"
	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase"
)

func TestFromBill(t *testing.T) {
	now := time.Now().UTC()
	b := entities.Bill{
		ID:             "b1",
		JobID:          "JC-1",
		InvoiceNo:      "007",
		BillType:       entities.BillTypeGST,
		TotalPartsCost: 1000.004,
		GST:            234.005,
		FinalAmount:    1484.006,
		CreatedAt:      now,
	}

	res := FromBill(b)
	if res.InvoiceNo != "INV-007" {
		t.Fatalf("unexpected invoice number: %s", res.InvoiceNo)
	}
	if res.TotalPartsCost.String() != "1000.00" || res.FinalAmount.String() != "1484.01" {
		t.Fatalf("unexpected rounding: %+v", res)
	}
	if res.Parts == nil || res.Services == nil {
		t.Fatalf("line items must render as empty arrays")
	}
	if res.BillType != "gst" || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}

func TestFromGarage(t *testing.T) {
	g := entities.Garage{ID: "g1", Name: "Garage", Email: "g@x.com", PasswordHash: "secret", Approved: true}
	res := FromGarage(g)
	if res.ID != "g1" || res.Email != "g@x.com" || !res.Approved {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if list := FromGarages(nil); list == nil || len(list) != 0 {
		t.Fatalf("expected empty slice, got %v", list)
	}
}

func TestListHelpers(t *testing.T) {
	if JobCards(nil) == nil || Engineers(nil) == nil || InventoryParts(nil) == nil {
		t.Fatalf("nil lists must become empty slices")
	}
}

func TestMoneyRendersTwoDecimals(t *testing.T) {
	bill := FromBill(entities.Bill{
		InvoiceNo:      "001",
		BillType:       entities.BillTypeGST,
		Parts:          []entities.BillPartLine{{PartName: "Pad", Quantity: 2, SellingPrice: 500, Total: 1000}},
		Services:       []entities.BillServiceLine{{Description: "Labour", LaborCost: 300}},
		TotalPartsCost: 1000,
		TotalLaborCost: 300,
		SubTotal:       1300,
		GST:            234,
		GSTPercentage:  18,
		Discount:       50,
		FinalAmount:    1484,
	})
	report := FromFinancialReport(entities.FinancialReport{
		Summary:           entities.ReportSummary{TotalRevenue: 1484, NetProfit: 1250.5},
		BillTypeBreakdown: entities.BillTypeBreakdown{GST: 1484},
		RecentBills:       []entities.RecentBill{{InvoiceNo: "INV-001", Amount: 1484}},
	})
	card := FromJobCard(entities.JobCard{
		JobCardDetails:     entities.JobCardDetails{ExcessAmount: 2500},
		LaborServicesTotal: 500,
		PartsUsed:          []entities.PartLine{{PartName: "Pad", PricePerPiece: 250, TotalPrice: 500}},
	})
	part := FromInventoryPart(entities.InventoryPart{PurchasePrice: 80, SellingPrice: 100.5})

	cases := []struct {
		name  string
		value any
		want  []string
	}{
		{"bill", bill, []string{`"gst":234.00`, `"final_amount":1484.00`, `"sub_total":1300.00`, `"discount":50.00`, `"selling_price":500.00`, `"labor_cost":300.00`}},
		{"report", report, []string{`"total_revenue":1484.00`, `"net_profit":1250.50`, `"gst":1484.00`, `"amount":1484.00`}},
		{"job card", card, []string{`"excess_amount":2500.00`, `"labor_services_total":500.00`, `"price_per_piece":250.00`}},
		{"inventory part", part, []string{`"purchase_price":80.00`, `"selling_price":100.50`}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := json.Marshal(tc.value)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			for _, w := range tc.want {
				if !strings.Contains(string(raw), w) {
					t.Fatalf("expected %s in %s", w, raw)
				}
			}
			if strings.Count(string(raw), `"excess_amount"`) > 1 {
				t.Fatalf("excess_amount rendered twice: %s", raw)
			}
		})
	}
}

func TestMoneyUnmarshal(t *testing.T) {
	var m billing.Money
	if err := json.Unmarshal([]byte(`"12.345"`), &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.String() != "12.35" {
		t.Fatalf("unexpected value: %s", m)
	}
}

func TestFromUserHidesPasswordHash(t *testing.T) {
	raw, err := json.Marshal(FromUser(entities.User{ID: "u1", Email: "desk@speedy.in", PasswordHash: "$2a$secret", Role: entities.UserRoleStaff}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := string(raw)
	if strings.Contains(body, "secret") || strings.Contains(body, "password") {
		t.Fatalf("password hash leaked: %s", body)
	}
	if !strings.Contains(body, `"permissions":[]`) || !strings.Contains(body, `"role":"staff"`) {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestFromPlanAndRenewal(t *testing.T) {
	p := entities.Plan{ID: "p6", Name: "Half year", DurationInMonths: 6, Amount: 2999}
	raw, _ := json.Marshal(FromPlan(p))
	if !strings.Contains(string(raw), `"amount":2999.00`) || !strings.Contains(string(raw), `"subscription_type":"6_months"`) {
		t.Fatalf("unexpected plan body: %s", raw)
	}

	pending := FromRenewal(usecase.RenewalResult{Plan: p, PaymentID: "mp-1", Status: "pending"})
	if pending.Completed || pending.Message != "Subscription payment pending" {
		t.Fatalf("unexpected pending renewal: %+v", pending)
	}
	done := FromRenewal(usecase.RenewalResult{Plan: p, PaymentID: "mp-1", Status: "paid", Completed: true,
		Garage: entities.Garage{ID: "g1", PaymentDetails: entities.PaymentDetails{PlanID: "p6", Amount: 2999}}})
	if done.Message != "Subscription renewed successfully" || done.Garage.PaymentDetails.PlanID != "p6" {
		t.Fatalf("unexpected renewal: %+v", done)
	}
}

func TestFromSubscriptionStatus(t *testing.T) {
	days := -2
	s := FromSubscriptionStatus(entities.SubscriptionStatus{GarageID: "g1", IsExpired: true, DaysUntilExpiry: &days})
	raw, _ := json.Marshal(s)
	if !strings.Contains(string(raw), `"days_until_expiry":-2`) || !strings.Contains(string(raw), `"is_expired":true`) {
		t.Fatalf("unexpected body: %s", raw)
	}

	raw, _ = json.Marshal(FromSubscriptionStatus(entities.SubscriptionStatus{GarageID: "g1"}))
	if !strings.Contains(string(raw), `"days_until_expiry":null`) {
		t.Fatalf("expected null days: %s", raw)
	}
}
