package models

// Session carries the authenticated caller identity attached to the request
// context by the authentication middleware.
type Session struct {
	PatientID string
	Email     string
}
