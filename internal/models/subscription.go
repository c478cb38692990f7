package models

// SubscriptionTier is the user's current plan. Plans are display data
// only: no limit is enforced against store mutations.
type SubscriptionTier string

const (
	TierFree       SubscriptionTier = "free"
	TierStarter    SubscriptionTier = "starter"
	TierPro        SubscriptionTier = "pro"
	TierBusiness   SubscriptionTier = "business"
	TierEnterprise SubscriptionTier = "enterprise"
)

// Plan describes a paid subscription tier for display
type Plan struct {
	ID           SubscriptionTier `json:"id"`
	Name         string           `json:"name"`
	Price        float64          `json:"price"`
	BillingCycle string           `json:"billingCycle"`
	Features     []string         `json:"features"`
	Highlighted  bool             `json:"highlighted"`
}

// SubscriptionPlans returns the static plan table shown on the pricing
// surface.
func SubscriptionPlans() []Plan {
	return []Plan{
		{
			ID:           TierStarter,
			Name:         "Starter",
			Price:        6.97,
			BillingCycle: "monthly",
			Features: []string{
				"Unlimited tasks",
				"Up to 5 goals",
				"Up to 10 habits",
				"50 AI messages/month",
				"Basic reminders",
				"Calendar view",
			},
		},
		{
			ID:           TierPro,
			Name:         "Pro",
			Price:        12.97,
			BillingCycle: "monthly",
			Features: []string{
				"Everything in Starter",
				"Unlimited goals",
				"Unlimited habits",
				"200 AI messages/month",
				"Smart reminders",
				"Priority support",
				"Advanced analytics",
			},
			Highlighted: true,
		},
		{
			ID:           TierBusiness,
			Name:         "Business",
			Price:        29.97,
			BillingCycle: "monthly",
			Features: []string{
				"Everything in Pro",
				"500 AI messages/month",
				"Team collaboration",
				"Shared calendars",
				"Admin dashboard",
				"API access",
				"Custom integrations",
			},
		},
		{
			ID:           TierEnterprise,
			Name:         "Enterprise",
			Price:        49.97,
			BillingCycle: "monthly",
			Features: []string{
				"Everything in Business",
				"Unlimited AI messages",
				"Unlimited team members",
				"White-label options",
				"SSO authentication",
				"Dedicated support",
				"SLA guarantee",
				"Custom development",
			},
		},
	}
}
