package dto

type SkillLevelGapResponse struct {
	Skill            string `json:"skill"`
	CurrentLevel     string `json:"current_level"`
	RecommendedLevel string `json:"recommended_level"`
}

type SkillGapResponse struct {
	MissingSkills   []string                `json:"missing_skills"`
	SkillLevels     []SkillLevelGapResponse `json:"skill_levels"`
	Recommendations []string                `json:"recommendations"`
}
