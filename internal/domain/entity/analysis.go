package entity

// AnalysisPayload is the structured result returned by the remote analysis
// service or synthesized by the offline fallback generator. A response missing
// any required field is treated as a schema violation, not a success.
type AnalysisPayload struct {
	PatternName        string            `json:"pattern_name" validate:"required"`
	PatternDescription string            `json:"pattern_description" validate:"required"`
	Sensitivity        string            `json:"sensitivity" validate:"required"`
	PatternTags        []string          `json:"pattern_tags" validate:"required,min=1"`
	RarityScore        int               `json:"rarity_score" validate:"gte=0,lte=100"`
	Insights           []AnalysisInsight `json:"insights" validate:"required,min=1,dive"`
	Summary            string            `json:"summary" validate:"required"`
}

// AnalysisInsight is one entry of the report's insight list.
type AnalysisInsight struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}
