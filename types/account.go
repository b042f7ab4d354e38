package types

import "time"

// Role is the authorization level assigned to an account.
type Role string

const (
	RoleCandidate Role = "Candidate"
	RoleRecruiter Role = "Recruiter"
	RoleAdmin     Role = "Admin"
)

// ValidRegistrationRole reports whether r may be chosen at public
// registration. Admin accounts are provisioned out-of-band only.
func ValidRegistrationRole(r Role) bool {
	return r == RoleCandidate || r == RoleRecruiter
}

// Account represents a persisted identity record keyed by unique email.
type Account struct {
	// ID is the unique identifier of the account. Mongo-backed stores
	// use the ObjectID hex, Postgres-backed stores a UUID.
	ID string `json:"id" db:"id"`

	// Name is the account holder's display name. Optional.
	Name string `json:"name,omitempty" db:"name"`

	// Email is globally unique, stored exactly as provided.
	Email string `json:"email" db:"email"`

	// Role defaults to Candidate.
	Role Role `json:"role" db:"role"`

	// PasswordHash stores the bcrypt hash of the account's password.
	// Never the plaintext, never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// CandidateProfile and RecruiterProfile hold role-specific metadata.
	// Left empty at registration, filled by later profile flows. The
	// Mongo document shape lives on the store's own doc type.
	CandidateProfile *CandidateProfile `json:"candidate_profile,omitempty"`
	RecruiterProfile *RecruiterProfile `json:"recruiter_profile,omitempty"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CandidateProfile is the candidate-specific part of an account.
type CandidateProfile struct {
	Resume     string   `json:"resume,omitempty" bson:"resume,omitempty"`
	Skills     []string `json:"skills,omitempty" bson:"skills,omitempty"`
	Experience string   `json:"experience,omitempty" bson:"experience,omitempty"`
}

// RecruiterProfile is the recruiter-specific part of an account.
type RecruiterProfile struct {
	Company        string `json:"company,omitempty" bson:"company,omitempty"`
	CompanyWebsite string `json:"company_website,omitempty" bson:"company_website,omitempty"`
}

// PublicAccount is the projection of an Account returned to clients.
type PublicAccount struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Public returns the client-safe projection of the account.
func (a Account) Public() PublicAccount {
	return PublicAccount{ID: a.ID, Email: a.Email, Role: a.Role}
}
