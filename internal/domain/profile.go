package domain

import "time"

// EmployeeProfile extends an EMPLOYEE user with hiring material. Resume and
// Degree hold media storage keys, not raw bytes.
type EmployeeProfile struct {
	ID           string
	UserID       string
	ProfileImage *string
	Resume       string
	Degree       string
	Skills       string
	Experience   string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// UserEmail and UserName are joined from the owning account for
	// serialized responses.
	UserEmail string
	UserName  string
}

// CompanyProfile extends an EMPLOYER user with company metadata. At most one
// per user, enforced by a unique constraint on user_id.
type CompanyProfile struct {
	ID                 string
	UserID             string
	CompanyName        string
	CompanyLogo        *string
	CompanyDescription string
	Industry           string
	CompanySize        string
	Location           string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
