package responses

type Login struct {
	Token   string  `json:"token"`
	Patient Patient `json:"patient"`
}
