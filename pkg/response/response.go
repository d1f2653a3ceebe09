package response

// Body is the error envelope used by middleware and handlers that do
// not go through the fres helpers.
type Body struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Error(code, message string, data any) Body {
	return Body{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

func Success(message string, data any) Body {
	return Body{
		Code:    "OK",
		Message: message,
		Data:    data,
	}
}
