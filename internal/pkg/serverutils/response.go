package serverutils

// BaseResponse is the envelope every REST endpoint returns. The mobile
// clients match on Message text for some flows, so messages are part of the
// contract.
type BaseResponse[T any] struct {
	Message string `json:"message"`
	Status  bool   `json:"status"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) BaseResponse[T] {
	return BaseResponse[T]{
		Message: message,
		Status:  true,
		Data:    data,
	}
}

func FailResponse(message string) BaseResponse[any] {
	return BaseResponse[any]{
		Message: message,
		Status:  false,
	}
}
