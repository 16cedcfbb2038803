package repository

// Direction is the ordering of a sorted field.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Order sorts by one API field name.
type Order struct {
	Field     string
	Direction Direction
}

// Sort is an ordered list of sort keys; earlier orders take precedence.
type Sort []Order

// By returns an ascending Sort over fields.
func By(fields ...string) Sort {
	s := make(Sort, len(fields))
	for i, f := range fields {
		s[i] = Order{Field: f, Direction: Asc}
	}
	return s
}

// Has reports whether field is already part of the sort.
func (s Sort) Has(field string) bool {
	for _, o := range s {
		if o.Field == field {
			return true
		}
	}
	return false
}

// PageQuery holds page/size pagination parameters. Page is zero based.
type PageQuery struct {
	Page int
	Size int
	Sort Sort
}

// Offset is the number of rows skipped before the page starts.
func (pq PageQuery) Offset() int {
	return pq.Page * pq.Size
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int64
	Page  int
	Size  int
}

// TotalPages is the number of pages of Size needed to hold Total rows.
func (r PageResult[T]) TotalPages() int {
	if r.Size <= 0 {
		return 0
	}
	return int((r.Total + int64(r.Size) - 1) / int64(r.Size))
}
