package services

import "momslove/models"

// Actor identifies the authenticated principal behind a service call,
// as carried in the session claims.
type Actor struct {
	ID    uint
	Name  string
	Email string
	Role  string
}

func (a Actor) Authenticated() bool {
	return a.ID != 0
}

func (a Actor) IsAdmin() bool {
	return a.Role == string(models.RoleAdmin)
}
