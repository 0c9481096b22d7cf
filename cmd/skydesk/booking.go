package main

import (
	"fmt"
	"skydesk/internal/catalog"
	"skydesk/internal/checkout"
	"skydesk/internal/floor"
	"skydesk/internal/pricing"
	apperrors "skydesk/pkg/errors"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
)

func (e *env) floorCommand() *cli.Command {
	return &cli.Command{
		Name:  "floor",
		Usage: "show the floor plan with live occupancy",
		Action: func(c *cli.Context) error {
			reconciler := floor.NewReconciler(catalog.Default(), e.api, e.cfg.Log)
			reconciler.LoadOccupancy(c.Context)

			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "UNIT\tCATEGORY\tPRICE\tSTATUS")
			for _, unit := range reconciler.Catalog() {
				state := reconciler.Classify(unit.ID)
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", unit.ID, unit.Category, unit.BasePrice, state.Status)
			}
			return w.Flush()
		},
	}
}

func (e *env) bookCommand() *cli.Command {
	return &cli.Command{
		Name:      "book",
		Usage:     "reserve one or more units",
		ArgsUsage: "UNIT_ID [UNIT_ID...]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return apperrors.InvalidInput("no units given, e.g.: skydesk book A-01 C-02")
			}

			reconciler := floor.NewReconciler(catalog.Default(), e.api, e.cfg.Log)
			reconciler.LoadOccupancy(c.Context)

			byID := catalog.Index(reconciler.Catalog())
			requested := map[string]bool{}
			for _, id := range c.Args().Slice() {
				id = strings.ToUpper(id)
				if requested[id] {
					continue
				}
				requested[id] = true
				unit, ok := byID[id]
				if !ok {
					return apperrors.NotFoundWithID("Unit", id)
				}
				if state := reconciler.ToggleSelect(unit); state.Status == floor.StatusOccupied {
					return apperrors.UnitOccupied(id)
				}
			}

			calc := pricing.NewCalculator(e.cfg.MaintenanceFee, e.cfg.TaxRate)
			breakdown := calc.Compute(reconciler.Selection())
			printBreakdown(c, reconciler, breakdown)

			workflow := checkout.NewWorkflow(e.api, reconciler, e.sess, e.cfg.Log, e.cfg.MaxConcurrentBookings)
			result, err := workflow.ConfirmReservation(c.Context)
			if err != nil {
				if apperrors.CodeOf(err) == apperrors.CodeSessionMissing {
					return apperrors.SessionMissing()
				}
				reportPartialFailure(c, result)
				return err
			}

			fmt.Fprintf(c.App.Writer, "\nReserved %d unit(s): %s\n", len(result.Booked), strings.Join(result.Booked, ", "))
			return nil
		},
	}
}

func printBreakdown(c *cli.Context, reconciler *floor.Reconciler, breakdown pricing.Breakdown) {
	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	for _, unit := range reconciler.Selection() {
		fmt.Fprintf(w, "%s\t%s\t%d\n", unit.ID, unit.Category, unit.BasePrice)
	}
	fmt.Fprintf(w, "Subtotal\t\t%d\n", breakdown.Subtotal)
	fmt.Fprintf(w, "Maintenance Fee\t\t%d\n", breakdown.MaintenanceFee)
	fmt.Fprintf(w, "GST\t\t%g\n", breakdown.Tax)
	fmt.Fprintf(w, "Total\t\t%g\n", breakdown.Total)
	w.Flush()
}

// reportPartialFailure surfaces which bookings may already be persisted
// server-side when the batch failed part-way.
func reportPartialFailure(c *cli.Context, result *checkout.Result) {
	if result == nil || len(result.Booked) == 0 {
		return
	}
	fmt.Fprintf(c.App.Writer, "Warning: %d unit(s) may already be reserved on the server: %s\n",
		len(result.Booked), strings.Join(result.Booked, ", "))
	fmt.Fprintln(c.App.Writer, "Check `skydesk my-bookings` and cancel anything unwanted.")
}

func (e *env) myBookingsCommand() *cli.Command {
	return &cli.Command{
		Name:  "my-bookings",
		Usage: "list your active reservations",
		Action: func(c *cli.Context) error {
			userID, err := e.sess.RequireUser()
			if err != nil {
				return err
			}

			bookings, err := e.api.MyBookings(c.Context, userID)
			if err != nil {
				return err
			}
			if len(bookings) == 0 {
				fmt.Fprintln(c.App.Writer, "No active bookings.")
				return nil
			}

			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BOOKING\tUNIT\tCATEGORY\tPRICE\tDATE")
			for _, b := range bookings {
				fmt.Fprintf(w, "%d\t%s\t%s\t%g\t%s\n",
					b.ID, b.UnitID, b.UnitCategory, b.Price, b.BookingDate.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}
}

func (e *env) cancelCommand() *cli.Command {
	return &cli.Command{
		Name:      "cancel",
		Usage:     "release a reservation",
		ArgsUsage: "BOOKING_ID",
		Action: func(c *cli.Context) error {
			if _, err := e.sess.RequireUser(); err != nil {
				return err
			}

			bookingID, err := strconv.Atoi(c.Args().First())
			if err != nil {
				return apperrors.InvalidInput("booking id must be a number")
			}

			if err := e.api.CancelBooking(c.Context, bookingID); err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, "Unit released.")
			return nil
		},
	}
}
