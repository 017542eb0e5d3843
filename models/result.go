package models

// Result is the outcome convention every mutating store operation returns.
// Callers branch on Success and show Message verbatim.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// OK builds a successful Result.
func OK(message string) Result {
	return Result{Success: true, Message: message}
}

// Fail builds a failed Result.
func Fail(message string) Result {
	return Result{Success: false, Message: message}
}

// UserResult is a Result carrying the affected user record.
type UserResult struct {
	Result
	User *UserRecord `json:"user,omitempty"`
}

// CropResult is a Result carrying the affected crop record.
type CropResult struct {
	Result
	Record *CropRecord `json:"record,omitempty"`
}

// VisitResult is a Result carrying the affected visit record.
type VisitResult struct {
	Result
	Record *VisitRecord `json:"record,omitempty"`
}
