package cli

import (
	"context"

	"github.com/dmitrijs2005/mealplanner/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Register prompts for an email and password and creates the account.
// Registering never logs the user in. The password is wiped before
// returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter your email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, email, password); err != nil {
		return a.fail(ctx, "register", err)
	}

	a.println("User registered successfully!")
	return nil
}

// Login prompts for credentials and, on success, keeps the returned session
// on the App. A failed attempt leaves any current state untouched.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter your email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.authService.Login(ctx, email, password)
	if err != nil {
		return a.fail(ctx, "login", err)
	}

	a.session = session
	a.printf("Login successful! Welcome, %s\n", session.Identifier)
	return nil
}

// Logout ends the current session. It is safe to call when nobody is
// logged in.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx, a.session)
	a.session = nil
	a.println("Logged out successfully!")
	return nil
}
