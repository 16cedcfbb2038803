package model

// Publisher is the imprint a book was published under.
type Publisher struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name" validate:"required,max=100"`
}

// PublisherPatch carries the fields of a partial update; nil fields are left untouched.
type PublisherPatch struct {
	Name *string `json:"name"`
}

// Apply copies the non-nil fields of p onto pub.
func (p PublisherPatch) Apply(pub *Publisher) {
	if p.Name != nil {
		pub.Name = *p.Name
	}
}
