package models

// DiseaseResult is one canned crop-disease diagnosis. The detection flow is
// a simulation: results come from a fixed table, not from a model.
type DiseaseResult struct {
	Disease       string   `json:"disease"`
	Crop          string   `json:"crop"`
	Severity      string   `json:"severity"`
	SeverityColor string   `json:"severityColor"`
	Description   string   `json:"description"`
	Symptoms      []string `json:"symptoms"`
	Treatment     []string `json:"treatment"`
	Prevention    string   `json:"prevention"`
	Helpline      string   `json:"helpline"`
}
