package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mvkeep/mediavault/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and tries to authenticate. The password byte
// slice is wiped before returning. A failed attempt prints a message and
// leaves the session as it was.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.sessions.Login(ctx, username, string(password))
	if err != nil {
		printlnFn(loginMessage(err))
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", u.Username))
	return nil
}

// Register prompts for credentials, creates the account, and logs it in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.sessions.Register(ctx, username, string(password))
	if err != nil {
		printlnFn(loginMessage(err))
		return err
	}

	printlnFn(fmt.Sprintf("Account %q created and logged in!", u.Username))
	return nil
}

// Logout returns the session to anonymous.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Logged out successfully.")
	return nil
}

// ResetPassword walks the four-field reset form. It works for anonymous
// users too; that is the point of the flow.
func (a *App) ResetPassword(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	current, err := getPassword("Current password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	fresh, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(fresh)

	confirm, err := getPassword("Confirm new password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	err = a.sessions.ResetPassword(ctx, username, string(current), string(fresh), string(confirm))
	if err != nil {
		printlnFn(resetMessage(err))
		return err
	}

	printlnFn("Password reset successfully! Please log in with your new password.")
	return nil
}

func loginMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrEmptyCredentials):
		return "Please enter both username and password."
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid username or password."
	case errors.Is(err, common.ErrDuplicateUsername):
		return "Username already exists!"
	default:
		return "Error: " + err.Error()
	}
}

func resetMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrFieldsRequired):
		return "All fields are required."
	case errors.Is(err, common.ErrPasswordMismatch):
		return "New passwords do not match."
	case errors.Is(err, common.ErrPasswordTooShort):
		return "New password must be at least 6 characters long."
	case errors.Is(err, common.ErrUserNotFound):
		return "Username not found."
	case errors.Is(err, common.ErrWrongPassword):
		return "Current password is incorrect."
	default:
		return "Error: " + err.Error()
	}
}
