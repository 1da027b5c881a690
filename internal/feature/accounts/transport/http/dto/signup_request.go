// Package dto defines data transfer objects for the accounts feature's HTTP
// transport layer.
package dto

// SignupReq represents the request body for the /signup endpoint.
// Email and password are required; name, number and dob are accepted but not
// enforced server-side beyond format.
type SignupReq struct {
	Name     string `json:"name"`
	Number   string `json:"number"`
	DOB      string `json:"dob"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
