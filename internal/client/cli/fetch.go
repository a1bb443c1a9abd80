package cli

import (
	"context"
	"fmt"
	"strconv"
)

// Info fetches and prints the student's personal information.
func (a *App) Info(ctx context.Context) error {
	info, err := a.api.GetPersonalInfo(ctx).Unwrap()
	if err != nil {
		return err
	}
	if a.fullName == "" {
		a.fullName = info.FullName()
	}
	return printPersonalInfo(a.out, info)
}

// Markbook fetches the markbook and prints every semester, or only the one
// named by semester when it is not empty.
func (a *App) Markbook(ctx context.Context, semester string) error {
	number := 0
	if semester != "" {
		n, err := strconv.Atoi(semester)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid semester %q", semester)
		}
		number = n
	}

	mb, err := a.api.GetMarkbook(ctx).Unwrap()
	if err != nil {
		return err
	}

	if number == 0 {
		return printMarkbook(a.out, mb)
	}
	s, ok := mb.Semester(number)
	if !ok {
		return fmt.Errorf("semester %d not found in markbook", number)
	}
	return printSemester(a.out, s)
}

// Group fetches and prints the group, its curator and the roster.
func (a *App) Group(ctx context.Context) error {
	g, err := a.api.GetGroupInfo(ctx).Unwrap()
	if err != nil {
		return err
	}
	return printGroup(a.out, g)
}
