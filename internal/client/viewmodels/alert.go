// Package viewmodels holds the per-screen presentation state: an
// in-progress flag, the operation result, and an optional user-facing
// alert. View models invoke domain operations asynchronously and are the
// single place where typed failures become alert text.
package viewmodels

import (
	"errors"

	"github.com/google/uuid"

	"github.com/example/covermate/internal/client/api"
)

// Alert is a user-facing message with a stable identity so the
// presentation layer can tell consecutive alerts apart.
type Alert struct {
	ID            uuid.UUID
	Title         string
	Message       string
	DismissButton string
}

// NewAlert builds an alert with the default dismiss label.
func NewAlert(title, message string) Alert {
	return Alert{ID: uuid.New(), Title: title, Message: message, DismissButton: "OK"}
}

// alertFromError renders a typed failure as an alert. The wording for
// Unauthorized differs between screens (login blames the credentials,
// everything else blames the session), so callers supply it.
func alertFromError(err error, unauthorizedTitle, unauthorizedMessage string) Alert {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return NewAlert("Error", err.Error())
	}

	switch apiErr.Kind {
	case api.KindUnauthorized:
		return NewAlert(unauthorizedTitle, unauthorizedMessage)
	case api.KindValidation:
		return NewAlert("Validation Error", apiErr.Message)
	case api.KindServer:
		return NewAlert("Server Error", "There was a problem with the server: "+apiErr.Message)
	case api.KindInvalidURL:
		return NewAlert("Connection Error", "Invalid URL. Please check your connection.")
	case api.KindRequestFailed:
		return NewAlert("Request Failed", "There was a problem with your request: "+causeText(apiErr))
	case api.KindInvalidResponse:
		return NewAlert("Server Error", "Received an invalid response from the server.")
	case api.KindDecodingFailed:
		return NewAlert("Data Error", "Could not process the data from the server: "+causeText(apiErr))
	case api.KindUnknown:
		return NewAlert("Unknown Error", apiErr.Message)
	case api.KindEmptyFields:
		return NewAlert("Missing Information", "All fields must be filled in.")
	case api.KindInvalidEmail:
		return NewAlert("Invalid Email", "Please enter a valid email address.")
	default:
		return NewAlert("Error", err.Error())
	}
}

func causeText(e *api.Error) string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// authAlert maps failures on the login/register/profile screens.
func authAlert(err error) Alert {
	return alertFromError(err,
		"Authentication Failed",
		"Invalid username or password. Please try again.")
}

// recommendationAlert maps failures on the recommendation screen, where
// a 401 means the stored session went stale.
func recommendationAlert(err error) Alert {
	return alertFromError(err,
		"Authentication Error",
		"Your session has expired. Please log in again.")
}
