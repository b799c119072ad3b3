package domain

type User struct {
	ID       string `bson:"_id,omitempty" json:"-"`
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"password"`
	Roles    string `bson:"roles" json:"roles"`
}
