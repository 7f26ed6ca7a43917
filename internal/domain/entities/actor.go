package entities

// ActorKind tells who is issuing a request.
type ActorKind string

const (
	ActorKindUser   ActorKind = "user"
	ActorKindGarage ActorKind = "garage"
	ActorKindAdmin  ActorKind = "admin"
)

// Actor is the authenticated caller, resolved by the auth middleware.
type Actor struct {
	Kind     ActorKind
	ID       string
	GarageID string
	Role     string
}

// IsAdmin reports a platform operator. A garage's own "admin" user is not one.
func (a Actor) IsAdmin() bool {
	return a.Kind == ActorKindAdmin || a.Role == RoleSuperAdmin
}

// ManagesGarage reports whether the actor may manage garageID's staff and see
// all of its job cards: platform admins, the garage account, and the
// garage's admin and manager users.
func (a Actor) ManagesGarage(garageID string) bool {
	if a.IsAdmin() {
		return true
	}
	if !a.CanAccessGarage(garageID) {
		return false
	}
	switch a.Kind {
	case ActorKindGarage:
		return true
	case ActorKindUser:
		r := UserRole(a.Role)
		return r == UserRoleAdmin || r == UserRoleManager
	}
	return false
}

// CanAccessGarage enforces tenant isolation.
func (a Actor) CanAccessGarage(garageID string) bool {
	if a.IsAdmin() {
		return true
	}
	return garageID != "" && a.GarageID == garageID
}

// Creator returns the job card creator reference for this actor.
func (a Actor) Creator() Creator {
	if a.Kind == ActorKindGarage {
		return Creator{Kind: CreatorKindGarage, ID: a.GarageID}
	}
	return Creator{Kind: CreatorKindUser, ID: a.ID}
}

// CreatorKind discriminates Creator.
type CreatorKind string

const (
	CreatorKindUser   CreatorKind = "User"
	CreatorKindGarage CreatorKind = "Garage"
)

// Creator is either an individual user or the garage account itself.
type Creator struct {
	Kind CreatorKind `json:"kind"`
	ID   string      `json:"id"`
}
