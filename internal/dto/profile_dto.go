package dto

// UpdateProfileRequest carries the optional text fields of a profile update.
// The profile picture travels as a multipart file, not in this body.
type UpdateProfileRequest struct {
	FullName string `json:"fullName" form:"fullName"`
	DOB      string `json:"dob" form:"dob"`
}
