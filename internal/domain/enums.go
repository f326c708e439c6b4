package domain

// Role is the access role stored on a profile and carried in token claims.
type Role string

const (
	RoleOptometrist Role = "optometrist"
	RoleAdmin       Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleOptometrist, RoleAdmin:
		return true
	}
	return false
}

// SubscriptionStatus mirrors the payment processor's subscription status values.
type SubscriptionStatus string

const (
	SubscriptionActive            SubscriptionStatus = "active"
	SubscriptionCanceled          SubscriptionStatus = "canceled"
	SubscriptionIncomplete        SubscriptionStatus = "incomplete"
	SubscriptionIncompleteExpired SubscriptionStatus = "incomplete_expired"
	SubscriptionPastDue           SubscriptionStatus = "past_due"
	SubscriptionTrialing          SubscriptionStatus = "trialing"
	SubscriptionUnpaid            SubscriptionStatus = "unpaid"
)

func (s SubscriptionStatus) String() string { return string(s) }

func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionActive, SubscriptionCanceled, SubscriptionIncomplete,
		SubscriptionIncompleteExpired, SubscriptionPastDue, SubscriptionTrialing,
		SubscriptionUnpaid:
		return true
	}
	return false
}

// IsActive reports whether the status grants paid access (active or trialing).
func (s SubscriptionStatus) IsActive() bool {
	return s == SubscriptionActive || s == SubscriptionTrialing
}

// TagTarget identifies which join table a tag link lives in.
type TagTarget string

const (
	TagTargetActivity TagTarget = "activity"
	TagTargetGoal     TagTarget = "goal"
)

func (t TagTarget) String() string { return string(t) }

func (t TagTarget) IsValid() bool {
	return t == TagTargetActivity || t == TagTargetGoal
}
