package dto

type KeywordMatchResponse struct {
	Keyword    string `json:"keyword"`
	Found      bool   `json:"found"`
	Importance string `json:"importance"`
	Suggestion string `json:"suggestion,omitempty"`
}

type QualitySuggestionResponse struct {
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

type ResumeQualityResponse struct {
	OverallScore   int                         `json:"overall_score"`
	Strengths      []string                    `json:"strengths"`
	Weaknesses     []string                    `json:"weaknesses"`
	Suggestions    []QualitySuggestionResponse `json:"suggestions"`
	KeywordMatches []KeywordMatchResponse      `json:"keyword_matches"`
	ATSScore       int                         `json:"ats_score"`
}
