package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// ValueInput asks for a non-empty value. validate, when set, runs on every
// submission.
func ValueInput(title string, validate func(string) error) (string, error) {
	var result string
	err := huh.NewInput().
		Title(title).
		Value(&result).
		Validate(func(s string) error {
			if s == "" {
				return errors.New("value must not be empty")
			}
			if validate != nil {
				return validate(s)
			}
			return nil
		}).
		Run()
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	return result, nil
}
