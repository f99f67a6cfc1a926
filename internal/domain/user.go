package domain

// User represents a registered user record.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateUser carries the caller-supplied fields for a user insert.
// The ID is generated by the store.
type CreateUser struct {
	Name  string
	Email string
}

// UpdateUser carries a partial update. Absent fields leave the stored
// value unchanged.
type UpdateUser struct {
	Name  Optional[string]
	Email Optional[string]
}

// IsEmpty reports whether the update carries no fields at all.
// An empty update is still a valid request: it rewrites the row
// with its current values and returns it unchanged.
func (u UpdateUser) IsEmpty() bool {
	return !u.Name.Present && !u.Email.Present
}

// Apply merges the update into an existing user, returning the fully
// resolved record that should be written back.
func (u UpdateUser) Apply(existing User) User {
	existing.Name = u.Name.Or(existing.Name)
	existing.Email = u.Email.Or(existing.Email)
	return existing
}
