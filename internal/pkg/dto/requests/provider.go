package requests

type CreateProvider struct {
	Name      string `json:"name" validate:"required"`
	Specialty string `json:"specialty" validate:"required"`
}
