package dto

// CapacityDto mirrors the capacity-service payload. CompetencyID is
// the parent competence the capacity belongs to.
type CapacityDto struct {
	CapacityID   string `json:"capacityId"`
	Name         string `json:"name"`
	CompetencyID string `json:"competencyId"`
	Status       string `json:"status"`
}
