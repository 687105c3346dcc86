package dto

// CompleteRegistrationRequest carries the multipart text fields; the document
// images arrive as files alongside it.
type CompleteRegistrationRequest struct {
	FullName      string `json:"fullName" form:"fullName" validate:"required"`
	AgentEmail    string `json:"agentEmail" form:"agentEmail" validate:"required,email"`
	Phone         string `json:"phone" form:"phone" validate:"required"`
	Sector        string `json:"sector" form:"sector" validate:"required"`
	AadharNumber  string `json:"aadharNumber" form:"aadharNumber" validate:"required"`
	FirebaseToken string `json:"firebaseToken" form:"firebaseToken"`
}

type CompleteRegistrationResponse struct {
	Agent       *AgentProfileData `json:"agent"`
	SnapToken   string            `json:"snapToken,omitempty"`
	RedirectURL string            `json:"redirectUrl,omitempty"`
	OrderId     string            `json:"orderId,omitempty"`
}
