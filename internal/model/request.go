package model

// URLRequest is the common body of the scraping tool endpoints.
type URLRequest struct {
	URL string `json:"url"`
}

// IdentifierRequest is the body of the channel-data endpoint.
type IdentifierRequest struct {
	Identifier string `json:"identifier"`
}

// RevenueEstimateRequest is the body of the revenue calculator endpoint.
// CPM may be given directly or resolved from the country/niche table.
type RevenueEstimateRequest struct {
	Views              int64   `json:"views"`
	CPM                float64 `json:"cpm"`
	Country            string  `json:"country"`
	Niche              string  `json:"niche"`
	IsShorts           bool    `json:"isShorts"`
	IncludeSponsorship bool    `json:"includeSponsorship"`
	SponsorshipMin     float64 `json:"sponsorshipMin"`
	SponsorshipMax     float64 `json:"sponsorshipMax"`
}
