package models

// Admin is the single seeded credential record. The password is persisted
// but never serialized back out in API responses.
type Admin struct {
	Username string `bson:"username" json:"username"`
	Password string `bson:"password" json:"-"`
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
}
