package model

// Client is a library member who borrows books.
// Email, Address and Phone are optional and stored as NULL when empty.
type Client struct {
	ID        int64   `json:"id" db:"id"`
	FirstName string  `json:"firstName" db:"first_name" validate:"required,max=50"`
	LastName  string  `json:"lastName" db:"last_name" validate:"required,max=50"`
	Email     *string `json:"email,omitempty" db:"email" validate:"omitempty,email,max=50"`
	Address   *string `json:"address,omitempty" db:"address" validate:"omitempty,max=50"`
	Phone     *string `json:"phone,omitempty" db:"phone" validate:"omitempty,max=20"`
}

// ClientPatch carries the fields of a partial update; nil fields are left untouched.
type ClientPatch struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
}

// Normalize turns empty optional strings into nil so they validate and store as NULL.
func (c *Client) Normalize() {
	c.Email = emptyToNil(c.Email)
	c.Address = emptyToNil(c.Address)
	c.Phone = emptyToNil(c.Phone)
}

func emptyToNil(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}

// Apply copies the non-nil fields of p onto c. An empty string clears an optional field.
func (p ClientPatch) Apply(c *Client) {
	if p.FirstName != nil {
		c.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		c.LastName = *p.LastName
	}
	if p.Email != nil {
		c.Email = emptyToNil(p.Email)
	}
	if p.Address != nil {
		c.Address = emptyToNil(p.Address)
	}
	if p.Phone != nil {
		c.Phone = emptyToNil(p.Phone)
	}
}
