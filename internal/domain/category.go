package domain

// Category name is the natural key. The id is internal bookkeeping and is
// hidden from API responses.
type Category struct {
	ID   string `bson:"_id,omitempty" json:"-"`
	Name string `bson:"name" json:"name"`
}
