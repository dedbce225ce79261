package responses

type HealthServices struct {
	API      string `json:"api"`
	Redis    string `json:"redis"`
	Database string `json:"database"`
}

type Health struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Services  HealthServices `json:"services"`
}
