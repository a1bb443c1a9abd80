package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/iisclient/internal/client/result"
	"github.com/dmitrijs2005/iisclient/internal/common"
)

// getSimpleText, getPassword, getPIN and getYesNo are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getPIN        = GetPIN
	getYesNo      = GetYesNo
)

const timeLayout = "2006-01-02 15:04"

// Login prompts for a student number and password and authenticates
// against IIS. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	studentNumber, err := getSimpleText(a.reader, "Enter student number", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	rememberMe, err := getYesNo(a.reader, "Stay signed in?", a.out)
	if err != nil {
		return err
	}

	identity, err := a.authService.Login(ctx, studentNumber, password, rememberMe)
	if err != nil {
		a.log.Info(ctx, "login failed", "error", err)
		return err
	}

	a.studentNumber = identity.StudentNumber
	a.fullName = identity.FullName()

	if a.fullName != "" {
		fmt.Fprintf(a.out, "Welcome, %s!\n", a.fullName)
	} else {
		fmt.Fprintf(a.out, "Welcome, %s!\n", a.studentNumber)
	}
	return nil
}

// Logout drops the in-memory session. A remembered session is kept.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	a.studentNumber, a.fullName = "", ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Status prints the current session state and whether a session is remembered.
func (a *App) Status(ctx context.Context) error {
	if a.isLoggedIn() {
		name := a.studentNumber
		if a.fullName != "" {
			name = fmt.Sprintf("%s (%s)", a.fullName, a.studentNumber)
		}
		left := time.Duration(a.api.TimeUntilExpiration()) * time.Second
		fmt.Fprintf(a.out, "Logged in as %s, session expires in %s\n", name, left)
	} else {
		fmt.Fprintln(a.out, "Not logged in.")
	}

	saved, ok, err := a.sessionService.Saved(ctx)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintf(a.out, "Remembered session: %s, saved %s, valid until %s\n",
			saved.StudentNumber,
			saved.SavedAt.Local().Format(timeLayout),
			saved.ExpiresAt.Local().Format(timeLayout))
	}
	return nil
}

// describeError turns a command error into a single display line.
// APIError details are left for the debug log.
func describeError(err error) string {
	var apiErr *result.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Kind == result.KindUpstream {
			return fmt.Sprintf("%s (HTTP %d)", apiErr.Message, apiErr.Code)
		}
		return apiErr.Message
	}

	switch {
	case errors.Is(err, common.ErrEmptyCredential):
		return "student number, password and PIN must not be empty"
	case errors.Is(err, common.ErrInvalidPIN):
		return "wrong PIN"
	case errors.Is(err, common.ErrNoSavedSession):
		return "no remembered session"
	case errors.Is(err, common.ErrSessionExpired):
		return "remembered session has expired, please log in"
	case errors.Is(err, common.ErrorUnauthorized):
		return "please log in first"
	}
	return err.Error()
}
