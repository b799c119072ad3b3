package domain

// Product ids are application-generated 10 character alphanumeric strings,
// not Mongo ObjectIDs, so they travel as plain strings end to end.
type Product struct {
	ID          string      `bson:"_id,omitempty" json:"id"`
	Name        string      `bson:"name" json:"name"`
	Brand       string      `bson:"brand" json:"brand"`
	Description string      `bson:"description" json:"description"`
	Price       Price       `bson:"price" json:"price"`
	Inventory   Inventory   `bson:"inventory" json:"inventory"`
	Attributes  []Attribute `bson:"attributes" json:"attributes"`
	Category    Category    `bson:"category" json:"category"`
}

type Price struct {
	Currency string  `bson:"currency" json:"currency"`
	Amount   float64 `bson:"amount" json:"amount"`
}

type Inventory struct {
	Total     int `bson:"total" json:"total"`
	Available int `bson:"available" json:"available"`
	Reserved  int `bson:"reserved" json:"reserved"`
}

type Attribute struct {
	Name  string `bson:"name" json:"name"`
	Value string `bson:"value" json:"value"`
}
