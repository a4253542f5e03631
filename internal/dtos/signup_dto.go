package dtos

// SignupRequest is the payload of the signup wizard. The confirmation
// field never leaves the wizard.
type SignupRequest struct {
	SignupAccount
	SignupRoleChoice
	SignupTerms
}

type SignupAccount struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignupRoleChoice struct {
	Role     string `json:"role" binding:"required,oneof=seeker employer"`
	FullName string `json:"full_name" binding:"required"`
}

type SignupTerms struct {
	AcceptTerms bool `json:"accept_terms"`
}
