package browsing

import (
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/format"
)

// Badge colors.
const (
	ColorGreen  = "green"
	ColorBlue   = "blue"
	ColorYellow = "yellow"
	ColorRed    = "red"
	ColorGray   = "gray"
	ColorPurple = "purple"
	ColorOrange = "orange"
)

type Badge struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type badgeStyle struct {
	label string
	color string
}

var orderStatusBadges = map[domain.OrderStatus]badgeStyle{
	domain.OrderCompleted: {"Completed", ColorGreen},
	domain.OrderPreparing: {"Preparing", ColorBlue},
	domain.OrderPending:   {"Pending", ColorYellow},
	domain.OrderCancelled: {"Cancelled", ColorRed},
	domain.OrderRefunded:  {"Refunded", ColorGray},
}

var orderTypeBadges = map[domain.FulfillmentType]badgeStyle{
	domain.FulfillmentDineIn:   {"Dine-in", ColorPurple},
	domain.FulfillmentTakeout:  {"Takeout", ColorOrange},
	domain.FulfillmentDelivery: {"Delivery", ColorBlue},
}

var customerStatusBadges = map[domain.CustomerStatus]badgeStyle{
	domain.CustomerActive:   {"Active", ColorGreen},
	domain.CustomerInactive: {"Inactive", ColorGray},
}

var tierBadges = map[domain.MembershipTier]badgeStyle{
	domain.TierBronze: {"Bronze", ColorOrange},
	domain.TierSilver: {"Silver", ColorGray},
	domain.TierGold:   {"Gold", ColorYellow},
	domain.TierVIP:    {"VIP", ColorPurple},
}

var paymentLabels = map[domain.PaymentMethod]string{
	domain.PaymentCard:   "Card",
	domain.PaymentCash:   "Cash",
	domain.PaymentMobile: "Mobile",
}

var genderLabels = map[domain.Gender]string{
	domain.GenderMale:   "Male",
	domain.GenderFemale: "Female",
	domain.GenderOther:  "Other",
}

// badge falls back to a gray "Unknown" badge for values outside the palette.
func badge[K ~string](f *format.Formatter, styles map[K]badgeStyle, value K) Badge {
	style, ok := styles[value]
	if !ok {
		return Badge{Value: string(value), Label: f.Text(format.LabelUnknown), Color: ColorGray}
	}
	return Badge{Value: string(value), Label: f.Text(style.label), Color: style.color}
}

func label[K ~string](f *format.Formatter, labels map[K]string, value K) string {
	l, ok := labels[value]
	if !ok {
		return f.Text(format.LabelUnknown)
	}
	return f.Text(l)
}
