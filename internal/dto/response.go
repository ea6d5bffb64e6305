package dto

// Envelope is the success half of the API response shape:
// { success: true, data?: ..., message?: "..." }.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKMessage wraps data plus a human-readable message.
func OKMessage(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

// Message is a success envelope with no payload.
func Message(message string) Envelope {
	return Envelope{Success: true, Message: message}
}
