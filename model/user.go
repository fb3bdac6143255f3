package model

// User is the canonical account record. is_staff gates the admin surface.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	IsStaff   bool   `json:"is_staff"`
	IsActive  bool   `json:"is_active"`
}

// Profile holds the extended profile fields kept separate from the account.
type Profile struct {
	ID             int    `json:"id"`
	Username       string `json:"username,omitempty"`
	Email          string `json:"email,omitempty"`
	FullName       string `json:"full_name,omitempty"`
	BirthDate      string `json:"birth_date,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

// TokenPair is the session credential pair returned by the token endpoint.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
