package dto

// Envelope wraps every JSON response body.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func Failure(message, code string) Envelope {
	return Envelope{Success: false, Error: message, Code: code}
}

// Page carries limit/offset query parameters.
type Page struct {
	Limit  int32 `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int32 `form:"offset" binding:"omitempty,min=0"`
}
