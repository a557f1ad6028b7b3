package dto

// DidacticUnitDto mirrors the didactic-unit-service payload.
type DidacticUnitDto struct {
	DidacticID     string `json:"didacticId"`
	Name           string `json:"name"`
	Credit         string `json:"credit"`
	Hours          string `json:"hours"`
	Condition      string `json:"condition"`
	Correction     string `json:"correction"`
	Status         string `json:"status"`
	StudyProgramID string `json:"studyProgramId"`
}
