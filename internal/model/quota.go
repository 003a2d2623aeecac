package model

// QuotaDecision is the outcome of one quota gate check.
type QuotaDecision struct {
	Allowed   bool `json:"allowed"`
	Remaining int  `json:"remaining"`
}

// UsageResponse reports today's consumption against the daily ceiling.
type UsageResponse struct {
	Date      string `json:"date"`
	CallCount int    `json:"callCount"`
	Ceiling   int    `json:"ceiling"`
	Remaining int    `json:"remaining"`
}
