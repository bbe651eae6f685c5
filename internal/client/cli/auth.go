package cli

import (
	"context"

	"github.com/shivua6263/policy/internal/client/controllers"
	"github.com/shivua6263/policy/internal/client/session"
	"github.com/shivua6263/policy/internal/common"
)

// enter runs the auth gate for a protected command.
func (a *App) enter(ctx context.Context) (session.Record, error) {
	rec, ok := a.gate.Enter(ctx)
	if !ok {
		a.printMessage(controllers.Message{Kind: controllers.MessageError, Text: "Please login first"})
		return nil, controllers.ErrNoSession
	}
	return rec, nil
}

// Login prompts for credentials and signs in with the selected role. An
// existing session skips the prompt. A tab-scoped login is forgotten when the
// console exits.
func (a *App) Login(ctx context.Context, tabScoped bool) error {
	if a.login.CheckExistingSession(ctx) {
		return nil
	}
	a.login.SetMode(controllers.ModeLogin)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	pw := string(password)
	common.WipeByteArray(password)

	err = a.login.Login(ctx, controllers.LoginForm{Email: email, Password: pw, TabScoped: tabScoped})
	a.printMessage(a.login.Status())
	return err
}

// Signup collects the account form and creates an account for the selected
// role.
func (a *App) Signup(ctx context.Context) error {
	a.login.SetMode(controllers.ModeSignup)

	var form controllers.SignupForm
	var err error
	if form.Name, err = getSimpleText(a.reader, "Enter full name", a.out); err != nil {
		return err
	}
	if form.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if form.Phone, err = getSimpleText(a.reader, "Enter phone number", a.out); err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	form.Password, form.ConfirmPassword = string(password), string(confirm)
	common.WipeByteArray(password)
	common.WipeByteArray(confirm)

	if form.AcceptTerms, err = GetYesNo(a.reader, "I agree to the terms and conditions", a.out); err != nil {
		return err
	}

	err = a.login.Signup(ctx, form)
	a.printMessage(a.login.Status())
	return err
}

// Role switches between the customer and agent endpoints.
func (a *App) Role(_ context.Context, role string) error {
	if err := a.login.SetRole(role); err != nil {
		a.printMessage(controllers.Message{Kind: controllers.MessageError, Text: "Role must be customer or agent"})
		return err
	}
	a.printf("Role set to %s\n", role)
	return nil
}

// Logout asks for confirmation and clears the session.
func (a *App) Logout(ctx context.Context) error {
	if _, err := a.enter(ctx); err != nil {
		return err
	}
	done, err := a.gate.Logout(ctx)
	if err != nil {
		a.printMessage(controllers.Message{Kind: controllers.MessageError, Text: "Logout failed: " + err.Error()})
		return err
	}
	if done {
		a.println("Logged out")
	}
	return nil
}

// Whoami prints the signed-in user.
func (a *App) Whoami(ctx context.Context) error {
	rec, err := a.enter(ctx)
	if err != nil {
		return err
	}
	a.printf("%s <%s>\nrole: %s\nid: %s\n", rec.Name(), rec.Email(), rec.UserType(), rec.ID())
	return nil
}
