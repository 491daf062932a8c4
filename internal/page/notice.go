package page

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notice is the transient snackbar shown after an action.
type Notice struct {
	Message  string
	Severity Severity
}

func Success(msg string) *Notice {
	return &Notice{Message: msg, Severity: SeveritySuccess}
}

func Failure(msg string) *Notice {
	return &Notice{Message: msg, Severity: SeverityError}
}
