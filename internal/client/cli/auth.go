package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/avoronovs/partyplan/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for the profile fields and a password and creates a new
// account. A successful signup does not log the user in.
func (a *App) Signup(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}

	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
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

	user, err := a.api.Signup(ctx, api.SignupRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  string(password),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Account created for %s. Use 'login' to sign in.\n", user.Email)
	return nil
}

// Login prompts for credentials and authenticates. On success the session
// is persisted locally, so the next run starts logged in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.session.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s %s <%s>\n", user.FirstName, user.LastName, user.Email)
	return nil
}

// Logout resets the saved session. Works even when the server is down.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		// Local state is already cleared; the server call is best effort.
		fmt.Println("Logged out locally; server unreachable.")
		return nil
	}
	fmt.Println("Logged out.")
	return nil
}

// WhoAmI asks the server who the current credentials belong to.
func (a *App) WhoAmI(ctx context.Context) error {
	user, err := a.session.Me(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s <%s> (id %d)\n", user.FirstName, user.LastName, user.Email, user.ID)
	return nil
}
