package entities

// Envelope wraps every backend response body.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

func OK[T any](data T) Envelope[T] { return Envelope[T]{Success: true, Data: data} }

func Fail(msg string) Envelope[any] { return Envelope[any]{Success: false, Message: msg} }
