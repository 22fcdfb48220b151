package main

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"acadcalc/internal/academic"
	"acadcalc/internal/config"
	"acadcalc/internal/contact"
	"acadcalc/internal/logger"
	"acadcalc/internal/report"
	"acadcalc/internal/web"
)

const appVersion = "0.3.0"

type options struct {
	hours      float64
	minutes    float64
	academic   float64
	group      int
	port       int
	groupsFile string
	listGroups bool
	listLevels bool
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "acadcalc",
		Short:         "Academic hours calculator (CLI or web)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ok, _ := cmd.Flags().GetBool("version"); ok {
				fmt.Fprintf(out, "acadcalc v%s\n", appVersion)
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Init(cfg.LogLevel, cfg.LogJSON)

			if !cmd.Flags().Changed("groups-file") {
				opts.groupsFile = cfg.GroupsFile
			}
			if !cmd.Flags().Changed("port") {
				opts.port = cfg.Port
			}

			table := academic.DefaultTable()
			if opts.groupsFile != "" {
				table, err = academic.LoadTable(opts.groupsFile)
				if err != nil {
					return err
				}
				logger.Global().Debug().Str("file", opts.groupsFile).Int("groups", table.Len()).Msg("Age group table loaded")
			}

			if opts.port > 0 {
				printListenAddrs(out, opts.port)
				return serveWeb(opts.port, table, cfg.ContactPerMinute)
			}

			if opts.listGroups || opts.listLevels {
				if opts.listGroups {
					report.PrintGroups(out, table)
				}
				if opts.listGroups && opts.listLevels {
					fmt.Fprintln(out)
				}
				if opts.listLevels {
					report.PrintLevels(out)
				}
				return nil
			}

			in, err := inputFromFlags(cmd, opts)
			if err != nil {
				return err
			}
			res, err := report.Build(table, in)
			if err != nil {
				return err
			}
			logger.Global().Debug().
				Str("mode", string(res.Mode)).
				Int("group", res.GroupIndex).
				Float64("academic", res.Academic).
				Int("regular_minutes", res.RegularMinutes).
				Msg("Conversion done")
			report.Print(out, res)
			return nil
		},
	}

	cmd.Version = appVersion
	cmd.SetVersionTemplate("acadcalc v{{.Version}}\n")
	cmd.SetOut(out)
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.Flags().Float64Var(&opts.hours, "hours", 0, "Regular hours to convert")
	cmd.Flags().Float64Var(&opts.minutes, "minutes", 0, "Regular minutes to convert (added to --hours)")
	cmd.Flags().Float64Var(&opts.academic, "academic", 0, "Academic hours to convert to regular time")
	cmd.Flags().IntVarP(&opts.group, "group", "g", 3, "Age group index (see --groups)")

	cmd.Flags().IntVar(&opts.port, "port", 0, "Run web UI on this port (e.g. 8484)")
	cmd.Flags().StringVar(&opts.groupsFile, "groups-file", "", "YAML file replacing the built-in age group table")
	cmd.Flags().BoolVar(&opts.listGroups, "groups", false, "List age groups and exit")
	cmd.Flags().BoolVar(&opts.listLevels, "levels", false, "List program levels and exit")

	cmd.MarkFlagsMutuallyExclusive("academic", "hours")
	cmd.MarkFlagsMutuallyExclusive("academic", "minutes")

	return cmd
}

// inputFromFlags picks the direction from which flags were given. The command
// line rejects out-of-range values instead of clamping them.
func inputFromFlags(cmd *cobra.Command, opts options) (report.Input, error) {
	f := cmd.Flags()
	in := report.Input{Group: opts.group}

	switch {
	case f.Changed("academic"):
		if opts.academic < 0 {
			return in, errors.New("--academic must be >= 0")
		}
		in.Mode = report.ToRegular
		in.Academic = opts.academic
	case f.Changed("hours") || f.Changed("minutes"):
		if opts.hours < 0 {
			return in, errors.New("--hours must be >= 0")
		}
		if opts.minutes < 0 {
			return in, errors.New("--minutes must be >= 0")
		}
		in.Mode = report.ToAcademic
		in.Hours = opts.hours
		in.Minutes = opts.minutes
	default:
		return in, errors.New("give --hours/--minutes or --academic (or use --groups, --levels, --port)")
	}
	return in, nil
}

/* ---------------- web ---------------- */

func serveWeb(port int, table *academic.Table, contactPerMinute int) error {
	srv := web.NewServer(web.Options{
		Table:   table,
		Desk:    contact.NewDesk(contactPerMinute),
		Version: appVersion,
	})

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Global().Info().Int("port", port).Str("version", appVersion).Msg("Web UI starting")
	return httpSrv.ListenAndServe()
}

func printListenAddrs(out io.Writer, port int) {
	fmt.Fprintln(out, "Listening on:")
	fmt.Fprintf(out, "  http://127.0.0.1:%d/\n", port)

	ifaces, _ := net.Interfaces()
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, a := range addrs {
			ip, _, err := net.ParseCIDR(a.String())
			if err != nil || ip == nil || ip.IsLoopback() || ip.To4() == nil {
				continue
			}
			fmt.Fprintf(out, "  http://%s:%d/\n", ip.String(), port)
		}
	}
	fmt.Fprintln(out)
}
