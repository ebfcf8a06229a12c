package snake

import (
	"errors"
	"io"
	"strconv"

	"github.com/manifoldco/promptui"
)

func (w *Wizard) confirm(label string) (bool, error) {
	validate := func(input string) error {
		if input == "" {
			return nil
		}
		_, err := ParseBool(input)
		return err
	}

	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }} [Y/n]: ",
		Valid:   "{{ . | green }} [Y/n]: ",
		Invalid: "{{ . | red }} [Y/n]: ",
		Success: "{{ . | bold }}: ",
	}

	prompt := promptui.Prompt{
		Label:     label,
		Templates: templates,
		Validate:  validate,
		Stdin:     io.NopCloser(w.in()),
		Stdout:    NopCloser(w.out()),
	}

	result, err := prompt.Run()
	if err != nil {
		return false, err
	}
	if result == "" {
		return true, nil
	}
	return ParseBool(result)
}

// Aborted reports whether err came from the user leaving a prompt.
func Aborted(err error) bool {
	return errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF)
}

// ParseBool is strconv.ParseBool with the addition of Yes/No parsing.
func ParseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "no", "NO", "No":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
