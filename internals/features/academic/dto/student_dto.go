package dto

// StudentDto mirrors the student-service payload.
type StudentDto struct {
	ID               string `json:"id"`
	DocumentType     string `json:"documentType"`
	DocumentNumber   string `json:"documentNumber"`
	LastNamePaternal string `json:"lastNamePaternal"`
	LastNameMaternal string `json:"lastNameMaternal"`
	Email            string `json:"email"`
	Names            string `json:"names"`
}

// FullName joins the name parts the way report cards print them.
func (s StudentDto) FullName() string {
	return s.Names + " " + s.LastNamePaternal + " " + s.LastNameMaternal
}
