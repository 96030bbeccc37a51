package dto

// EmployeeProfileResponse is the employee profile shape; file fields resolve
// to public media URLs.
type EmployeeProfileResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user"`
	UserEmail    string  `json:"user_email,omitempty"`
	UserName     string  `json:"user_name,omitempty"`
	ProfileImage *string `json:"profile_image"`
	Resume       string  `json:"resume"`
	Degree       string  `json:"degree"`
	Skills       string  `json:"skills"`
	Experience   string  `json:"experience"`
	Phone        string  `json:"phone"`
}

// EmployeeProfileUpdateRequest carries non-file employee profile fields for
// partial updates; file fields arrive as multipart uploads.
type EmployeeProfileUpdateRequest struct {
	Skills     *string `json:"skills"`
	Experience *string `json:"experience"`
	Phone      *string `json:"phone"`
}

// CompanyProfileRequest payload for creating a company profile.
type CompanyProfileRequest struct {
	CompanyName        string `json:"company_name"`
	CompanyDescription string `json:"company_description"`
	Industry           string `json:"industry"`
	CompanySize        string `json:"company_size"`
	Location           string `json:"location"`
}

// CompanyProfileUpdateRequest is a partial update.
type CompanyProfileUpdateRequest struct {
	CompanyName        *string `json:"company_name"`
	CompanyDescription *string `json:"company_description"`
	Industry           *string `json:"industry"`
	CompanySize        *string `json:"company_size"`
	Location           *string `json:"location"`
}

// CompanyProfileResponse is the company profile shape.
type CompanyProfileResponse struct {
	ID                 string  `json:"id"`
	CompanyName        string  `json:"company_name"`
	CompanyLogo        *string `json:"company_logo"`
	CompanyDescription string  `json:"company_description"`
	Industry           string  `json:"industry"`
	CompanySize        string  `json:"company_size"`
	Location           string  `json:"location"`
}
