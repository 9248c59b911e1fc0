package dto

// Envelope status values
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// StatusResponse is the JSON envelope returned by every endpoint.
type StatusResponse struct {
	Status string      `json:"status"`
	Msg    string      `json:"msg"`
	Data   interface{} `json:"data,omitempty"`
}

// NewSuccessResponse creates a success envelope without a data payload.
func NewSuccessResponse(msg string) StatusResponse {
	return StatusResponse{
		Status: StatusSuccess,
		Msg:    msg,
	}
}

// NewSuccessDataResponse creates a success envelope carrying a payload.
func NewSuccessDataResponse(msg string, data interface{}) StatusResponse {
	return StatusResponse{
		Status: StatusSuccess,
		Msg:    msg,
		Data:   data,
	}
}

// NewFailedResponse creates a failure envelope.
func NewFailedResponse(msg string) StatusResponse {
	return StatusResponse{
		Status: StatusFailed,
		Msg:    msg,
	}
}
