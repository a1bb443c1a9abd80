package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/iisclient/internal/common"
)

// Remember seals the live session under a PIN in the local database so
// the next run can restore it without the password.
func (a *App) Remember(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrorUnauthorized
	}

	pin, err := getPIN(a.out)
	if err != nil {
		return err
	}

	if err := a.sessionService.Remember(ctx, a.studentNumber, pin); err != nil {
		a.log.Warn(ctx, "remember session failed", "error", err)
		return err
	}
	fmt.Fprintln(a.out, "Session remembered.")
	return nil
}

// Restore asks for the PIN and installs the remembered session.
func (a *App) Restore(ctx context.Context) error {
	pin, err := getPIN(a.out)
	if err != nil {
		return err
	}

	studentNumber, err := a.sessionService.Restore(ctx, pin)
	if err != nil {
		return err
	}

	a.studentNumber = studentNumber
	a.fullName = ""
	fmt.Fprintf(a.out, "Session restored for %s.\n", studentNumber)
	return nil
}

// Forget removes the remembered session. The live session is untouched.
func (a *App) Forget(ctx context.Context) error {
	if err := a.sessionService.Forget(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Remembered session removed.")
	return nil
}
