package dto

// DefaultSearchRadiusKm is the search radius used when the requester does
// not supply one.
const DefaultSearchRadiusKm = 50.0

// Response DTOs

type DonorSearchResult struct {
	Donor             DonorProfileResponse `json:"donor"`
	DistanceKm        float64              `json:"distance_km"`
	Eligible          bool                 `json:"eligible"`
	EligibilityReason string               `json:"eligibility_reason"`
}

type BloodBankSearchResult struct {
	BloodBank      BloodBankResponse `json:"blood_bank"`
	DistanceKm     float64           `json:"distance_km"`
	AvailableUnits int               `json:"available_units"`
}

type SearchResponse struct {
	BloodGroup       string                  `json:"blood_group"`
	MaxDistanceKm    float64                 `json:"max_distance_km"`
	AvailabilityOnly bool                    `json:"availability_only"`
	Donors           []DonorSearchResult     `json:"donors"`
	BloodBanks       []BloodBankSearchResult `json:"blood_banks"`
}
