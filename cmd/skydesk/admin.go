package main

import (
	"fmt"
	"os/signal"
	"skydesk/internal/admin"
	"skydesk/pkg/model"
	"syscall"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
)

func (e *env) adminCommand() *cli.Command {
	return &cli.Command{
		Name:  "admin",
		Usage: "dashboard and administration",
		Subcommands: []*cli.Command{
			e.adminStatsCommand(),
			e.adminCreateSubAdminCommand(),
		},
	}
}

func (e *env) adminStatsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "show occupancy and revenue, optionally refreshing live",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "watch", Usage: "keep polling until interrupted"},
		},
		Action: func(c *cli.Context) error {
			if err := e.sess.RequireAdmin(); err != nil {
				return err
			}

			if !c.Bool("watch") {
				bookings, err := e.api.AllBookings(c.Context)
				if err != nil {
					return err
				}
				printDashboard(c, bookings)
				return nil
			}

			// The poller owns the refresh cadence; Ctrl-C tears it down.
			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			poller := admin.NewPoller(e.api, e.cfg.PollInterval, func(bookings []model.BookingRecord, err error) {
				if err != nil {
					e.cfg.Log.Warn("Dashboard refresh failed, keeping last data", "error", err)
					return
				}
				printDashboard(c, bookings)
			}, e.cfg.Log)

			fmt.Fprintf(c.App.Writer, "Watching floor (every %s), Ctrl-C to stop.\n", e.cfg.PollInterval)
			poller.Run(ctx)
			return nil
		},
	}
}

func printDashboard(c *cli.Context, bookings []model.BookingRecord) {
	stats := admin.ComputeStats(bookings)
	fmt.Fprintf(c.App.Writer, "\nOccupancy: %.1f%%  Units booked: %d/%d  Gross revenue: %g\n",
		stats.OccupancyRate, stats.OccupiedUnits, admin.FloorUnitCount, stats.TotalRevenue)

	log := admin.AuditLog(bookings)
	if len(log) == 0 {
		fmt.Fprintln(c.App.Writer, "No bookings found.")
		return
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BOOKING\tUNIT\tCATEGORY\tAMOUNT\tDATE")
	for _, b := range log {
		fmt.Fprintf(w, "#BK-360-%d\t%s\t%s\t%g\t%s\n",
			b.ID, b.UnitID, b.UnitCategory, b.Price, b.BookingDate.Format("2006-01-02"))
	}
	w.Flush()
}

func (e *env) adminCreateSubAdminCommand() *cli.Command {
	return &cli.Command{
		Name:  "create-sub-admin",
		Usage: "provision another administrator",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true, Usage: "full name"},
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
		},
		Action: func(c *cli.Context) error {
			if err := e.sess.RequireAdmin(); err != nil {
				return err
			}

			err := e.api.CreateSubAdmin(c.Context, model.CreateSubAdminRequest{
				FullName: c.String("name"),
				Email:    c.String("email"),
				Password: c.String("password"),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "Admin credentials dispatched to %s.\n", c.String("email"))
			return nil
		},
	}
}
