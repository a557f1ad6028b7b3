package dto

// Email is the message payload the email service accepts.
type Email struct {
	To          string `json:"to"`
	Subject     string `json:"subject"`
	Username    string `json:"username"`
	MainMessage string `json:"mainMessage"`
	Link        string `json:"link"`
}

// EmailResponse is the delivery result the email service answers with.
type EmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
