package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/iisclient/internal/client/models"
)

const noValue = "-"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func orDash(s string) string {
	if s == "" {
		return noValue
	}
	return s
}

func printPersonalInfo(w io.Writer, info models.PersonalInfo) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Name:\t%s\n", orDash(info.FullName()))
	fmt.Fprintf(tw, "Student number:\t%s\n", orDash(info.StudentNumber))
	fmt.Fprintf(tw, "Birth date:\t%s\n", orDash(info.BirthDate))
	fmt.Fprintf(tw, "Faculty:\t%s\n", orDash(info.Faculty))
	fmt.Fprintf(tw, "Speciality:\t%s\n", orDash(info.Speciality))
	fmt.Fprintf(tw, "Course:\t%d\n", info.Course)
	fmt.Fprintf(tw, "Group:\t%s\n", orDash(info.Group))
	fmt.Fprintf(tw, "Email:\t%s\n", orDash(info.Email))
	fmt.Fprintf(tw, "Phone:\t%s\n", orDash(info.Phone))
	return tw.Flush()
}

func printMarkbook(w io.Writer, mb models.Markbook) error {
	fmt.Fprintf(w, "Markbook %s, overall GPA %.2f\n", mb.StudentNumber, mb.OverallGPA)
	if len(mb.Semesters) == 0 {
		fmt.Fprintln(w, "No semesters yet.")
		return nil
	}
	for _, s := range mb.Semesters {
		fmt.Fprintln(w)
		if err := printSemester(w, s); err != nil {
			return err
		}
	}
	return nil
}

func printSemester(w io.Writer, s models.Semester) error {
	fmt.Fprintf(w, "Semester %d, GPA %.2f\n", s.Number, s.GPA)
	tw := newTable(w)
	fmt.Fprintln(tw, "Subject\tForm\tHours\tCredits\tGrade\tAvg\tRetakes\tOnline")
	for _, sub := range s.Subjects {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%d\t%s\n",
			sub.Name,
			orDash(sub.ControlForm),
			strconv.FormatFloat(sub.Hours, 'f', -1, 64),
			sub.Credits,
			formatGrade(sub.Grade),
			formatAverage(sub.AverageGrade),
			sub.Retakes,
			formatBool(sub.IsOnline),
		)
	}
	return tw.Flush()
}

func printGroup(w io.Writer, g models.GroupInfo) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Group:\t%s\n", g.Number)
	fmt.Fprintf(tw, "Faculty:\t%s\n", orDash(g.Faculty))
	fmt.Fprintf(tw, "Course:\t%d\n", g.Course)
	fmt.Fprintf(tw, "Curator:\t%s\n", orDash(g.Curator.FullName))
	if g.Curator.Phone != "" {
		fmt.Fprintf(tw, "Curator phone:\t%s\n", g.Curator.Phone)
	}
	if g.Curator.Email != "" {
		fmt.Fprintf(tw, "Curator email:\t%s\n", g.Curator.Email)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(g.Students) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	tw = newTable(w)
	fmt.Fprintln(tw, "#\tStudent")
	for _, s := range g.Students {
		fmt.Fprintf(tw, "%d\t%s\n", s.Number, s.FullName)
	}
	return tw.Flush()
}

func formatGrade(g *int) string {
	if g == nil {
		return noValue
	}
	return strconv.Itoa(*g)
}

func formatAverage(avg *float64) string {
	if avg == nil {
		return noValue
	}
	return strconv.FormatFloat(*avg, 'f', 2, 64)
}

func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
