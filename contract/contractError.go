package contract

import "fmt"

// ContractError is the failure reported by a function returning Result<T, E>: a case of its error enum
type ContractError struct {
	Enum string
	Name string
	Code uint32
}

// NewContractError creates a contract error holding only the code. The dispatcher fills in the enum and case names.
func NewContractError(code uint32) *ContractError {
	return &ContractError{Code: code}
}

// Error returns the error string
func (e *ContractError) Error() string {
	if len(e.Enum) == 0 {
		return fmt.Sprintf("contract error %d", e.Code)
	}

	return fmt.Sprintf("contract error %s::%s (%d)", e.Enum, e.Name, e.Code)
}

// Is matches contract errors having the same code and enum
func (e *ContractError) Is(target error) bool {
	other, ok := target.(*ContractError)
	if !ok {
		return false
	}

	return e.Code == other.Code && (len(other.Enum) == 0 || e.Enum == other.Enum)
}
