package cli

import (
	"context"
	"os"

	"github.com/example/covermate/internal/client/viewmodels"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// printAlert renders an alert the way a dialog would: title, message,
// dismiss label.
func printAlert(al *viewmodels.Alert) {
	printlnFn(al.Title + ": " + al.Message + " [" + al.DismissButton + "]")
}

// Register prompts the user for a name, email and password and attempts
// to create a new account. Registration does not sign the user in; on
// success the server's confirmation message is printed and the user is
// expected to log in next.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	a.auth.Register(name, email, string(password))
	a.auth.Wait()

	if al := a.auth.RegisterAlert(); al != nil {
		printAlert(al)
		return nil
	}

	printlnFn(a.auth.RegisterMessage())
	printlnFn("You can now log in.")
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
// On success the session token is persisted, so a restarted client
// resumes without logging in again.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	a.auth.Login(email, string(password))
	a.auth.Wait()

	if al := a.auth.LoginAlert(); al != nil {
		printAlert(al)
		return nil
	}

	if u := a.auth.User(); u != nil {
		printlnFn("Welcome, " + u.Name + "!")
	}
	return nil
}

// Logout drops the persisted session and the in-memory user snapshot.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}
