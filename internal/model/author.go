package model

// Author is a person credited on books held by the library.
type Author struct {
	ID        int64  `json:"id" db:"id"`
	FirstName string `json:"firstName" db:"first_name" validate:"required,max=50"`
	LastName  string `json:"lastName" db:"last_name" validate:"required,max=50"`
}

// AuthorPatch carries the fields of a partial update; nil fields are left untouched.
type AuthorPatch struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// Apply copies the non-nil fields of p onto a.
func (p AuthorPatch) Apply(a *Author) {
	if p.FirstName != nil {
		a.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		a.LastName = *p.LastName
	}
}
