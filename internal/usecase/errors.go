package usecase

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// Shared error constructors. The HTTP layer switches on Code, so the set
// of codes stays small: UNAUTHENTICATED, LEAD_NOT_FOUND, VALIDATION_ERROR,
// STORAGE_ERROR, DATABASE_ERROR.

func ErrNotAuthenticated() *DomainError {
	return &DomainError{
		Code:    "UNAUTHENTICATED",
		Message: "not authenticated",
	}
}

func ErrLeadNotFound(id string) *DomainError {
	return &DomainError{
		Code:    "LEAD_NOT_FOUND",
		Message: "lead not found: " + id,
	}
}
