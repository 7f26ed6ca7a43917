package entities

import (
	"errors"
	"testing"
	"time"
)

func TestActor(t *testing.T) {
	t.Run("garage actor only reaches its own garage", func(t *testing.T) {
		a := Actor{Kind: ActorKindGarage, ID: "g1", GarageID: "g1"}
		if !a.CanAccessGarage("g1") {
			t.Fatalf("expected access to own garage")
		}
		if a.CanAccessGarage("g2") {
			t.Fatalf("expected no access to foreign garage")
		}
		if got := a.Creator(); got.Kind != CreatorKindGarage || got.ID != "g1" {
			t.Fatalf("unexpected creator: %+v", got)
		}
	})

	t.Run("admin role reaches every garage", func(t *testing.T) {
		a := Actor{Kind: ActorKindUser, ID: "u1", Role: "super-admin"}
		if !a.IsAdmin() || !a.CanAccessGarage("any") {
			t.Fatalf("expected admin access")
		}
	})

	t.Run("garage admin user is not a platform admin", func(t *testing.T) {
		a := Actor{Kind: ActorKindUser, ID: "u1", GarageID: "g1", Role: string(UserRoleAdmin)}
		if a.IsAdmin() || a.CanAccessGarage("g2") {
			t.Fatalf("garage admin must stay inside its garage")
		}
		if !a.ManagesGarage("g1") || a.ManagesGarage("g2") {
			t.Fatalf("garage admin manages only its own garage")
		}
	})

	t.Run("manages garage", func(t *testing.T) {
		cases := []struct {
			actor Actor
			want  bool
		}{
			{Actor{Kind: ActorKindGarage, ID: "g1", GarageID: "g1"}, true},
			{Actor{Kind: ActorKindUser, ID: "u1", GarageID: "g1", Role: string(UserRoleManager)}, true},
			{Actor{Kind: ActorKindUser, ID: "u1", GarageID: "g1", Role: string(UserRoleStaff)}, false},
			{Actor{Kind: ActorKindAdmin, ID: "root"}, true},
			{Actor{Kind: ActorKindGarage, ID: "g2", GarageID: "g2"}, false},
		}
		for _, tc := range cases {
			if got := tc.actor.ManagesGarage("g1"); got != tc.want {
				t.Fatalf("ManagesGarage(%+v) = %t, want %t", tc.actor, got, tc.want)
			}
		}
	})

	t.Run("user creator", func(t *testing.T) {
		a := Actor{Kind: ActorKindUser, ID: "u1", GarageID: "g1"}
		if got := a.Creator(); got.Kind != CreatorKindUser || got.ID != "u1" {
			t.Fatalf("unexpected creator: %+v", got)
		}
	})

	t.Run("empty garage id never matches", func(t *testing.T) {
		a := Actor{Kind: ActorKindUser, ID: "u1"}
		if a.CanAccessGarage("") {
			t.Fatalf("expected no access")
		}
	})
}

func TestValidationError(t *testing.T) {
	err := error(NewValidationError("parts_used[0].quantity", "is required"))
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation match")
	}
	if err.Error() != "parts_used[0].quantity: is required" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestJobStatusValid(t *testing.T) {
	for _, s := range []JobStatus{JobStatusInProgress, JobStatusCompleted, JobStatusPending, JobStatusCancelled} {
		if !s.Valid() {
			t.Fatalf("expected %q valid", s)
		}
	}
	if JobStatus("Done").Valid() {
		t.Fatalf("expected Done invalid")
	}
}

func TestLatestBill(t *testing.T) {
	now := time.Now().UTC()
	bills := []Bill{
		{ID: "a", CreatedAt: now.Add(-time.Hour)},
		{ID: "b", CreatedAt: now},
		{ID: "c", CreatedAt: now.Add(-2 * time.Hour)},
	}
	got, ok := LatestBill(bills)
	if !ok || got.ID != "b" {
		t.Fatalf("expected b, got %+v", got)
	}
	if _, ok := LatestBill(nil); ok {
		t.Fatalf("expected no bill")
	}
	if (Bill{InvoiceNo: "004"}).DisplayInvoiceNo() != "INV-004" {
		t.Fatalf("unexpected display number")
	}
}

func TestReportPeriodContains(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 59, 999_000_000, time.UTC)
	p := ReportPeriod{Start: &start, End: &end}
	if !p.Contains(end) || !p.Contains(start) {
		t.Fatalf("bounds must be inclusive")
	}
	if p.Contains(end.Add(time.Millisecond)) {
		t.Fatalf("expected after end to be excluded")
	}
	if !(ReportPeriod{}).Contains(time.Time{}) {
		t.Fatalf("open period contains everything")
	}
}

func TestJobIDFor(t *testing.T) {
	if got := JobIDFor("3f2a9c1e-77aa-4b0e-9d1c-000000000001", 12); got != "JC-3F2A9C-12" {
		t.Fatalf("unexpected job id %q", got)
	}
	if got := JobIDFor("g1", 3); got != "JC-G1-3" {
		t.Fatalf("unexpected job id %q", got)
	}
	if JobIDFor("g1", 1) == JobIDFor("g1", 2) {
		t.Fatalf("job ids must differ by number")
	}
}

func TestUserRoleValid(t *testing.T) {
	for _, r := range []UserRole{UserRoleAdmin, UserRoleManager, UserRoleStaff} {
		if !r.Valid() {
			t.Fatalf("expected %q valid", r)
		}
	}
	if UserRole(RoleSuperAdmin).Valid() || UserRole("").Valid() {
		t.Fatalf("super-admin and empty roles must be rejected")
	}
	u := User{ID: "u1", GarageID: "g1", Role: UserRoleStaff}
	if a := u.Actor(); a.Kind != ActorKindUser || a.GarageID != "g1" || a.Role != "staff" {
		t.Fatalf("unexpected actor: %+v", a)
	}
}

func TestPlanType(t *testing.T) {
	if got := (Plan{DurationInMonths: 6}).Type(); got != "6_months" {
		t.Fatalf("unexpected type %q", got)
	}
	if got := (Plan{DurationInMonths: 12, SubscriptionType: "yearly"}).Type(); got != "yearly" {
		t.Fatalf("unexpected type %q", got)
	}
}

func TestSubscriptionStatusAt(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("active with partial day rounds up", func(t *testing.T) {
		g := Garage{ID: "g1", IsSubscribed: true, SubscriptionEnd: now.Add(48*time.Hour + 3*time.Hour)}
		s := SubscriptionStatusAt(g, now)
		if s.IsExpired || s.DaysUntilExpiry == nil || *s.DaysUntilExpiry != 3 {
			t.Fatalf("unexpected status: %+v", s)
		}
		if !g.HasActiveSubscription(now) {
			t.Fatalf("expected active subscription")
		}
	})

	t.Run("expired", func(t *testing.T) {
		g := Garage{ID: "g1", IsSubscribed: true, SubscriptionEnd: now.Add(-36 * time.Hour)}
		s := SubscriptionStatusAt(g, now)
		if !s.IsExpired || s.DaysUntilExpiry == nil || *s.DaysUntilExpiry != -1 {
			t.Fatalf("unexpected status: %+v days=%v", s, *s.DaysUntilExpiry)
		}
		if g.HasActiveSubscription(now) {
			t.Fatalf("expired subscription reported active")
		}
	})

	t.Run("no end date", func(t *testing.T) {
		s := SubscriptionStatusAt(Garage{ID: "g1"}, now)
		if s.IsExpired || s.DaysUntilExpiry != nil {
			t.Fatalf("unexpected status: %+v", s)
		}
	})
}
