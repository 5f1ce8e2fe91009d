package utils

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/elC0mpa/intra-logtime/model"
)

// ShowErrorDialog blocks on a modal note describing err until the user dismisses it
func ShowErrorDialog(err error) error {
	title, body := ErrorDialogText(err)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(title).
				Description(body).
				Next(true).
				NextLabel("OK"),
		),
	).Run()
}

// ErrorDialogText picks a dialog title from the error kind
func ErrorDialogText(err error) (string, string) {
	if err == nil {
		return "Error", ""
	}

	title := "Error"
	switch {
	case errors.Is(err, model.ErrAuth), errors.Is(err, model.ErrMissingCredentials):
		title = "Authentication failed"
	case errors.Is(err, model.ErrNotFound):
		title = "Unknown login"
	case errors.Is(err, model.ErrInvalidDate), errors.Is(err, model.ErrInvalidRange):
		title = "Invalid dates"
	case errors.Is(err, model.ErrTransport):
		title = "Intra unreachable"
	}

	return title, strings.TrimSpace(err.Error())
}
