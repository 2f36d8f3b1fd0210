package dto

import "github.com/google/uuid"

type FactorScoresResponse struct {
	Skill        float64 `json:"skill"`
	Experience   float64 `json:"experience"`
	Location     float64 `json:"location"`
	Compensation float64 `json:"compensation"`
	OrgSize      float64 `json:"org_size"`
	WorkMode     float64 `json:"work_mode"`
	Academic     float64 `json:"academic"`
}

type RecommendationResponse struct {
	OpportunityID   uuid.UUID            `json:"opportunity_id"`
	Title           string               `json:"title"`
	Company         string               `json:"company"`
	Location        string               `json:"location"`
	OverallScore    float64              `json:"overall_score"`
	MatchPercentage int                  `json:"match_percentage"`
	Reasons         []string             `json:"reasons"`
	Factors         FactorScoresResponse `json:"factors"`
	InterestLine    string               `json:"interest_line"`
}
