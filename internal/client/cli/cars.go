package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/carstorage/internal/client/export"
	"github.com/dmitrijs2005/carstorage/internal/client/models"
	"github.com/dmitrijs2005/carstorage/internal/client/policy"
	"github.com/dmitrijs2005/carstorage/internal/common"
)

var errExportDisabled = errors.New("export is not configured: set an export directory (-e) or an S3 bucket")

var carFieldLabels = map[string]string{
	"color":            "Color",
	"make":             "Make (required)",
	"model":            "Model (required)",
	"year":             "Year",
	"notes":            "Notes",
	"proj_pickup_date": "Projected pickup date",
}

func parseID(args []string, usage string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	return id, nil
}

func (a *App) ListCars(_ context.Context) error {
	d := a.decision()
	cars := a.cars.Derived()

	header := fmt.Sprintf("%d of %d cars", len(cars), a.cars.Len())
	if s := a.cars.Sort(); s.Field != "" {
		header += fmt.Sprintf(", sorted by %s %s", s.Field, s.Dir)
	}
	if f := a.cars.Filter(); f != "" {
		header += fmt.Sprintf(", filter %q", f)
	}
	a.notify("%s", header)
	renderCars(a.out, cars, d.CanSeeOwnerColumn)
	return nil
}

func (a *App) Sort(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: sort <field>; fields: %s", strings.Join(sortableCarFields(), ", "))
	}
	field := args[0]
	known := false
	for _, f := range sortableCarFields() {
		if f == field {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown field %q; fields: %s", field, strings.Join(sortableCarFields(), ", "))
	}
	a.cars.ApplySort(field)
	return a.ListCars(ctx)
}

func sortableCarFields() []string {
	fields := make([]string, 0, 12)
	for _, f := range (models.Car{}).Fields() {
		fields = append(fields, f.Name)
	}
	return fields
}

// Filter keeps cars with the text in any field. No argument clears it.
func (a *App) Filter(ctx context.Context, args []string) error {
	a.cars.ApplyFilter(strings.Join(args, " "))
	return a.ListCars(ctx)
}

func (a *App) Scope(ctx context.Context, args []string) error {
	if !a.isAdmin() {
		return errForbidden
	}
	if len(args) == 0 {
		a.notify("Scope: %s", a.decision().Scope)
		renderUsers(a.out, a.users.Items())
		return nil
	}
	if err := a.scope.Select(args[0]); err != nil {
		return err
	}
	if err := a.cars.Load(ctx); err != nil {
		return err
	}
	return a.ListCars(ctx)
}

func (a *App) promptCar(d *models.CarDraft) error {
	for _, f := range models.CarDraftFields {
		current := models.FieldValue(draftRecord(*d), f)
		v, err := getWithDefault(a.reader, carFieldLabels[f], current, a.out)
		if err != nil {
			return err
		}
		d.Set(f, v)
	}
	return nil
}

// draftRecord lets prompts read draft fields by wire name.
func draftRecord(d models.CarDraft) models.Car {
	return models.Car{
		Color: d.Color, Make: d.Make, Model: d.Model, Year: d.Year,
		Notes: d.Notes, ProjPickupDate: d.ProjPickupDate,
	}
}

// AddCar creates a car. An admin looking at one user's cars creates it for
// that user.
func (a *App) AddCar(ctx context.Context) error {
	var d models.CarDraft
	if err := a.promptCar(&d); err != nil {
		return err
	}
	d.OwnerID = policy.OwnerForCreate(a.session.Current(), a.scope.Scope())

	a.cars.Edit.BeginCreate(d)
	if err := a.cars.Edit.Save(ctx); err != nil {
		return err
	}
	a.notify("Car added")
	return a.ListCars(ctx)
}

func (a *App) EditCar(ctx context.Context, args []string) error {
	id, err := parseID(args, "edit <car id>")
	if err != nil {
		return err
	}
	car, ok := a.cars.Find(id)
	if !ok {
		return fmt.Errorf("car %d: %w", id, common.ErrorNotFound)
	}

	a.cars.Edit.BeginEdit(id, car.Draft())
	d, _, _ := a.cars.Edit.Draft()
	if err := a.promptCar(&d); err != nil {
		a.cars.Edit.Cancel()
		return err
	}
	a.cars.Edit.Modify(func(cur *models.CarDraft) { *cur = d })

	if err := a.cars.Edit.Save(ctx); err != nil {
		return err
	}
	a.notify("Car updated")
	return a.ListCars(ctx)
}

func (a *App) DeleteCar(ctx context.Context, args []string) error {
	id, err := parseID(args, "delete <car id>")
	if err != nil {
		return err
	}
	car, ok := a.cars.Find(id)
	if !ok {
		return fmt.Errorf("car %d: %w", id, common.ErrorNotFound)
	}
	if !confirm(a.reader, fmt.Sprintf("Delete %s %s (#%d)?", car.Make, car.Model, car.ID), a.out) {
		a.notify("Cancelled")
		return nil
	}
	if err := a.cars.Remove(ctx, id); err != nil {
		return err
	}
	a.notify("Car deleted")
	return a.ListCars(ctx)
}

// Export stores the car view exactly as ListCars would show it.
func (a *App) Export(ctx context.Context) error {
	if a.exporter == nil {
		return errExportDisabled
	}
	s := a.cars.Sort()
	snap := export.Snapshot{
		ExportedAt: a.now(),
		Scope:      a.decision().Scope,
		Filter:     a.cars.Filter(),
		Cars:       a.cars.Derived(),
	}
	if s.Field != "" {
		snap.SortField = s.Field
		snap.SortDir = s.Dir.String()
	}
	loc, err := a.exporter.Export(ctx, snap)
	if err != nil {
		return err
	}
	a.notify("Exported %d cars to %s", len(snap.Cars), loc)
	return nil
}
