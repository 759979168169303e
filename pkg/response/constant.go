package response

// Messages and codes
const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500
	ValidationErrorCode     = 400
)

// TimestampFormat is the wire format of every instant in a response.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"
