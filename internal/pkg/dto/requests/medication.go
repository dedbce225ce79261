package requests

type CreateMedication struct {
	Name    string   `json:"name" validate:"required"`
	Dosages []string `json:"dosages" validate:"required,min=1"`
}
