package kickoff

import "fmt"

// Validate checks universal constraints on Request.
// Generator implementations may apply additional validation.
func (r Request) Validate() error {
	if r.SessionID == "" {
		return fmt.Errorf("session id is required: %w", ErrValidation)
	}
	if r.Synthesis {
		if r.Step != 0 {
			return fmt.Errorf("synthesis request must not carry a step, got %d: %w", r.Step, ErrValidation)
		}
		return nil
	}
	if r.Step < 1 || r.Step > StepCount {
		return fmt.Errorf("step must be in [1, %d], got %d: %w", StepCount, r.Step, ErrValidation)
	}
	if r.UserInput == "" {
		return fmt.Errorf("user input is required: %w", ErrValidation)
	}
	return nil
}
