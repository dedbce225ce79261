package models

type Medication struct {
	ID       string   `json:"id" bson:"_id"`
	Name     string   `json:"name" bson:"name"`
	Dosages  []string `json:"dosages" bson:"dosages"`
	IsActive bool     `json:"isActive" bson:"isActive"`
}
