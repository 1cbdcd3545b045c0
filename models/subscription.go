package models

// SubscriptionInfo is the basic subscription state of a realm.
type SubscriptionInfo struct {
	StartDate        int64  `json:"startDate"`
	DaysLeft         int    `json:"daysLeft"`
	SubscriptionType string `json:"subscriptionType"`
}

// DetailedSubscriptionInfo adds billing details to [SubscriptionInfo].
type DetailedSubscriptionInfo struct {
	Type           string `json:"type"`
	Store          string `json:"store"`
	StartDate      int64  `json:"startDate"`
	EndDate        int64  `json:"endDate"`
	RenewalPeriod  int    `json:"renewalPeriod"`
	DaysLeft       int    `json:"daysLeft"`
	SubscriptionID string `json:"subscriptionId"`
}
