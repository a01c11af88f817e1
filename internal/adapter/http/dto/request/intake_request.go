package request

type IntakeMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// IntakeSubmitRequest confirms a priced chat quote. Contact fields are optional
// and override what the conversation gathered; project_name names the existing
// project when the chat only said there was one.
type IntakeSubmitRequest struct {
	ProjectName   string `json:"project_name"`
	ClientName    string `json:"client_name"`
	ClientEmail   string `json:"client_email"`
	DeliveryDate  string `json:"delivery_date"`
	TermsAccepted bool   `json:"terms_accepted"`
}
