package models

// VisitRecord is one field-visit entry. Two shapes share the type: synthetic
// daily rows carry a Count, manually recorded visits carry the farmer and
// purpose detail and count as a single visit.
type VisitRecord struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Count      int    `json:"count,omitempty"`
	FarmerName string `json:"farmerName,omitempty"`
	Location   string `json:"location,omitempty"`
	Purpose    string `json:"purpose,omitempty"`
}

// Visits returns how many visits the record represents.
func (v VisitRecord) Visits() int {
	if v.Count > 0 {
		return v.Count
	}
	return 1
}

// VisitUpdate is a partial edit of a visit record.
type VisitUpdate struct {
	Date       *string `json:"date"`
	Count      *int    `json:"count"`
	FarmerName *string `json:"farmerName"`
	Location   *string `json:"location"`
	Purpose    *string `json:"purpose"`
}

// VisitFrequency is the per-date visit distribution for the frequency chart.
type VisitFrequency struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
	Total  int      `json:"total"`
}
