package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/carstorage/internal/client/models"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func renderCars(w io.Writer, cars []models.Car, withOwner bool) {
	if len(cars) == 0 {
		fmt.Fprintln(w, "No cars found.")
		return
	}
	tw := newTable(w)
	header := "ID\tMAKE\tMODEL\tCOLOR\tYEAR\tNOTES\tADDED\tPICKUP"
	if withOwner {
		header += "\tOWNER"
	}
	fmt.Fprintln(tw, header)
	for _, c := range cars {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s",
			c.ID, c.Make, c.Model, orDash(c.Color), orDash(c.Year), orDash(c.Notes),
			orDash(c.DateAdded), orDash(c.ProjPickupDate))
		if withOwner {
			fmt.Fprintf(tw, "\t%s <%s>", orDash(c.OwnerName), orDash(c.OwnerEmail))
		}
		fmt.Fprintln(tw)
	}
	_ = tw.Flush()
}

func renderUsers(w io.Writer, users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users found.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE\tADMIN")
	for _, u := range users {
		admin := ""
		if u.IsAdmin {
			admin = "*"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, orDash(u.PhoneNumber), admin)
	}
	_ = tw.Flush()
}

func renderProfile(w io.Writer, u models.User) {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%d\n", u.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", u.Name)
	fmt.Fprintf(tw, "Email:\t%s\n", u.Email)
	fmt.Fprintf(tw, "Phone:\t%s\n", orDash(u.PhoneNumber))
	fmt.Fprintf(tw, "Admin:\t%t\n", u.IsAdmin)
	_ = tw.Flush()
}

func renderTasks(w io.Writer, tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks.")
		return
	}
	for _, t := range tasks {
		mark := " "
		if t.Done {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s] %d  %s\n", mark, t.ID, t.Title)
	}
}
