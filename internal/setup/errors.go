package setup

import "fmt"

// EnvironmentVariableMissingError reports a component that cannot be built
// because the environment variable backing one of its settings is empty.
type EnvironmentVariableMissingError struct {
	Component string
	Variable  string
}

func (e *EnvironmentVariableMissingError) Error() string {
	return fmt.Sprintf("%s requires environment variable %q to be set", e.Component, e.Variable)
}

func NewEnvironmentVariableMissingError(component, variable string) *EnvironmentVariableMissingError {
	return &EnvironmentVariableMissingError{
		Component: component,
		Variable:  variable,
	}
}
