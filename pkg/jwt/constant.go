package jwt

const (
	// ClaimEmail is the custom claim carrying the user email.
	ClaimEmail = "email"
	// ClaimRole is the custom claim carrying the user role.
	ClaimRole = "role"
)
