package models

type Provider struct {
	ID        string `json:"id" bson:"_id"`
	Name      string `json:"name" bson:"name"`
	Specialty string `json:"specialty" bson:"specialty"`
	IsActive  bool   `json:"isActive" bson:"isActive"`
}
