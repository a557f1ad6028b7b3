package dto

// StudyProgramDto mirrors the study-program-service payload.
type StudyProgramDto struct {
	ProgramID string `json:"programId"`
	Name      string `json:"name"`
	Module    string `json:"module"`
	CetproID  string `json:"cetproId"`
}
