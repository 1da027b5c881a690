package dto

import "accounts_backend/internal/feature/accounts/domain/entity"

// UserResponse is the outward representation of a user record.
// The password hash is never included.
type UserResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Number         string `json:"number"`
	DOB            string `json:"dob,omitempty"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// NewUserResponse converts a domain user into its outward representation.
func NewUserResponse(u *entity.User) UserResponse {
	resp := UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Number:         u.Number,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
	}
	if u.DOB != nil {
		resp.DOB = u.DOB.Format("2006-01-02")
	}
	return resp
}

// NewUserListResponse converts a slice of domain users.
func NewUserListResponse(users []entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
