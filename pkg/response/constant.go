package response

const (
	MessageSuccess      = "success"
	DefaultErrorMessage = "internal server error"

	InternalServerErrorCode = 500

	// DateFormat is the dashboard display format for calendar dates.
	DateFormat     = "02 Jan 2006"
	DateTimeFormat = "02 Jan 2006 15:04:05"
)
