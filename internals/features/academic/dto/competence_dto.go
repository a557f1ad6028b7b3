package dto

// CompetenceDto mirrors the competence-service payload. DidacticUnitID
// is the parent unit the competence belongs to.
type CompetenceDto struct {
	CompetencyID   string `json:"competencyId"`
	Name           string `json:"name"`
	DidacticUnitID string `json:"didacticUnitId"`
	Status         string `json:"status"`
}
