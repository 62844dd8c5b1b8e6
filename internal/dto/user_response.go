package dto

type UserIdentity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserIdentity `json:"user"`
}

type UserResponse struct {
	ID         string `json:"id"`
	ExternalID string `json:"externalId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}
