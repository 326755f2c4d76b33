// Package domain holds the dashboard records and their invariants.
package domain

type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
)

func (s CustomerStatus) Valid() bool {
	return s == CustomerActive || s == CustomerInactive
}

type MembershipTier string

const (
	TierBronze MembershipTier = "bronze"
	TierSilver MembershipTier = "silver"
	TierGold   MembershipTier = "gold"
	TierVIP    MembershipTier = "vip"
)

func (t MembershipTier) Valid() bool {
	switch t {
	case TierBronze, TierSilver, TierGold, TierVIP:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// Customer filter fields.
const (
	CustomerFieldStatus = "status"
	CustomerFieldTier   = "tier"
	CustomerFieldGender = "gender"
)

var CustomerFilterFields = []string{CustomerFieldStatus, CustomerFieldTier, CustomerFieldGender}

type Customer struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Address      *string         `json:"address,omitempty"`
	BirthDate    *string         `json:"birth_date,omitempty"` // YYYY-MM-DD
	Gender       *Gender         `json:"gender,omitempty"`
	TotalOrders  int             `json:"total_orders"`
	TotalSpent   float64         `json:"total_spent"`
	LastVisit    string          `json:"last_visit"`    // YYYY-MM-DD
	RegisteredAt string          `json:"registered_at"` // YYYY-MM-DD
	Status       CustomerStatus  `json:"status"`
	Tier         *MembershipTier `json:"tier,omitempty"`
}

func (c Customer) SearchFields() []string {
	return []string{c.Name, c.Email}
}

func (c Customer) FieldValue(field string) (string, bool) {
	switch field {
	case CustomerFieldStatus:
		return string(c.Status), true
	case CustomerFieldTier:
		if c.Tier == nil {
			return "", false
		}
		return string(*c.Tier), true
	case CustomerFieldGender:
		if c.Gender == nil {
			return "", false
		}
		return string(*c.Gender), true
	}

	return "", false
}

func (c Customer) DateValue() string {
	return c.LastVisit
}

// IsRepeat marks customers who came back at least once.
func (c Customer) IsRepeat() bool {
	return c.TotalOrders > 1
}
