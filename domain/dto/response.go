package dto

// Res is the envelope used by the auth gates.
type Res struct {
	ResponseCode    string `json:"responseCode"`
	ResponseMessage string `json:"message"`
}

// ResData wraps a successful payload with a human-readable message.
type ResData struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

type ResError struct {
	Error string `json:"error"`
}

type ResValidation struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
