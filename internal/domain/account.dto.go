package domain

// CreateAccountRequest is the creation payload shared by both protocol
// surfaces. It is transient and never persisted as-is.
type CreateAccountRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// AccountResponse is the wire shape for a customer account. Optional contact
// fields are present only when they were non-empty at creation time; an empty
// string and an absent value are the same thing. Password material never
// appears here in any form.
type AccountResponse struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Status    Status `json:"status"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	IsDeleted bool   `json:"isDeleted"`
}
