package models

type Appointment struct {
	ID       string `json:"id" bson:"id"`
	Provider string `json:"provider" bson:"provider"`
	Datetime string `json:"datetime" bson:"datetime"`
	Repeat   string `json:"repeat" bson:"repeat"`
	IsActive bool   `json:"isActive" bson:"isActive"`
}
