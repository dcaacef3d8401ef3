package cli

import (
	"context"
	"os"
	"strconv"
	"strings"
)

// Profile prints the current insurance profile. The snapshot only
// exists after a login in this process; a session restored from disk
// carries the token but not the user object.
func (a *App) Profile(ctx context.Context) error {
	u := a.auth.User()
	if u == nil {
		printlnFn("No profile loaded. Log in to load your profile.")
		return nil
	}

	printlnFn("Name:               " + u.Name)
	printlnFn("Email:              " + u.Email)
	printlnFn("Age:                " + fmtInt(u.Age))
	printlnFn("Gender:             " + fmtStr(u.Gender))
	printlnFn("Occupation:         " + fmtStr(u.Occupation))
	printlnFn("Income:             " + fmtFloat(u.Income))
	printlnFn("Marital status:     " + fmtStr(u.MaritalStatus))
	printlnFn("Has children:       " + fmtBool(u.HasChildren))
	printlnFn("Has vehicle:        " + fmtBool(u.HasVehicle))
	printlnFn("Has home:           " + fmtBool(u.HasHome))
	printlnFn("Medical conditions: " + fmtBool(u.HasMedicalConditions))
	printlnFn("Travel frequency:   " + fmtStr(u.TravelFrequency))

	if !u.IsProfileComplete() {
		printlnFn("Profile is incomplete; run 'update' to fill it in.")
	}
	return nil
}

// UpdateProfile walks the user through the ten profile fields. Pressing
// Enter keeps the current value, so a partial edit is possible. The
// edited copy is pushed to the server and the snapshot replaced with the
// canonical copy it echoes back.
func (a *App) UpdateProfile(ctx context.Context) error {
	u := a.auth.User()
	if u == nil {
		printlnFn("No profile loaded. Log in to load your profile.")
		return nil
	}

	printlnFn("Press Enter to keep the current value.")

	edited := *u
	var err error

	if edited.Age, err = a.promptInt("Age", edited.Age); err != nil {
		return err
	}
	if edited.Gender, err = a.promptText("Gender", edited.Gender); err != nil {
		return err
	}
	if edited.Occupation, err = a.promptText("Occupation", edited.Occupation); err != nil {
		return err
	}
	if edited.Income, err = a.promptFloat("Income", edited.Income); err != nil {
		return err
	}
	if edited.MaritalStatus, err = a.promptText("Marital status", edited.MaritalStatus); err != nil {
		return err
	}
	if edited.HasChildren, err = a.promptBool("Has children", edited.HasChildren); err != nil {
		return err
	}
	if edited.HasVehicle, err = a.promptBool("Has vehicle", edited.HasVehicle); err != nil {
		return err
	}
	if edited.HasHome, err = a.promptBool("Has home", edited.HasHome); err != nil {
		return err
	}
	if edited.HasMedicalConditions, err = a.promptBool("Medical conditions", edited.HasMedicalConditions); err != nil {
		return err
	}
	if edited.TravelFrequency, err = a.promptText("Travel frequency", edited.TravelFrequency); err != nil {
		return err
	}

	a.auth.UpdateProfile(&edited)
	a.auth.Wait()

	if al := a.auth.ProfileAlert(); al != nil {
		printAlert(al)
	}
	return nil
}

// promptText reads an optional text value; empty input keeps current.
func (a *App) promptText(label string, current *string) (*string, error) {
	v, err := getSimpleText(a.reader, label+" ["+fmtStr(current)+"]", os.Stdout)
	if err != nil {
		return current, err
	}
	if v == "" {
		return current, nil
	}
	return &v, nil
}

func (a *App) promptInt(label string, current *int) (*int, error) {
	v, err := getSimpleText(a.reader, label+" ["+fmtInt(current)+"]", os.Stdout)
	if err != nil {
		return current, err
	}
	if v == "" {
		return current, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		printlnFn("Not a number, keeping current value.")
		return current, nil
	}
	return &n, nil
}

func (a *App) promptFloat(label string, current *float64) (*float64, error) {
	v, err := getSimpleText(a.reader, label+" ["+fmtFloat(current)+"]", os.Stdout)
	if err != nil {
		return current, err
	}
	if v == "" {
		return current, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		printlnFn("Not a number, keeping current value.")
		return current, nil
	}
	return &f, nil
}

func (a *App) promptBool(label string, current *bool) (*bool, error) {
	v, err := getSimpleText(a.reader, label+" (y/n) ["+fmtBool(current)+"]", os.Stdout)
	if err != nil {
		return current, err
	}
	if v == "" {
		return current, nil
	}
	switch strings.ToLower(v) {
	case "y", "yes", "true":
		b := true
		return &b, nil
	case "n", "no", "false":
		b := false
		return &b, nil
	default:
		printlnFn("Expected y or n, keeping current value.")
		return current, nil
	}
}

func fmtStr(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}

func fmtInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func fmtFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func fmtBool(v *bool) string {
	if v == nil {
		return "-"
	}
	if *v {
		return "y"
	}
	return "n"
}
