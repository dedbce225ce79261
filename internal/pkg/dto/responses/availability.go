package responses

type Availability struct {
	Provider       string   `json:"provider"`
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
}
