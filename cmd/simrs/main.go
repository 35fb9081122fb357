package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/medinest/simrs/internal/config"
	"github.com/medinest/simrs/internal/domain/dashboard"
	"github.com/medinest/simrs/internal/domain/patient"
	"github.com/medinest/simrs/internal/platform/clock"
	"github.com/medinest/simrs/internal/platform/export"
	"github.com/medinest/simrs/internal/platform/seed"
	"github.com/medinest/simrs/pkg/pagination"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "simrs",
		Short: "Inpatient admission management (SIMRS Rawat Inap)",
	}

	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(admitCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app bundles the wired services behind every subcommand.
type app struct {
	cfg       *config.Config
	log       zerolog.Logger
	clk       clock.Clock
	patients  *patient.Service
	dashboard *dashboard.Service
}

func buildApp() (*app, error) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(lvl)
	}

	clk := clock.System()
	records := seed.Records(seed.Config{Count: cfg.SeedCount, Seed: cfg.Seed, Now: clk.Now()})
	repo := patient.NewMemoryRepository(clk, cfg.Latency(), records)

	return &app{
		cfg:       cfg,
		log:       logger,
		clk:       clk,
		patients:  patient.NewService(repo, clk, logger),
		dashboard: dashboard.NewService(repo, clk),
	}, nil
}

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show admission statistics and bed occupancy",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}

			ov, err := a.dashboard.Overview(context.Background())
			if err != nil {
				return fmt.Errorf("build overview: %w", err)
			}

			fmt.Printf("Pasien rawat inap: %d  (Stabil %d / Pemulihan %d / Kritis %d)\n\n",
				ov.TotalPatients,
				ov.StatusCounts[patient.StatusStable],
				ov.StatusCounts[patient.StatusRecovering],
				ov.StatusCounts[patient.StatusCritical])

			fmt.Println("Statistik pasien masuk per bulan:")
			for _, m := range ov.Monthly {
				marker := " "
				if m.Active {
					marker = "*"
				}
				fmt.Printf("  %s %-3s %s %d\n", marker, m.Label, bar(m.HeightPct, 40), m.Count)
			}

			fmt.Println("\nKeluhan terbanyak:")
			for i, d := range ov.TopDiagnoses {
				fmt.Printf("  %2d. %-40s %s %d\n", i+1, d.Name, bar(d.WidthPct, 30), d.Count)
			}

			fmt.Printf("\nOkupansi tempat tidur (total %d%%):\n", ov.TotalOccupancy)
			fmt.Printf("  %-10s %10s %6s %s\n", "KELAS", "TERPAKAI", "%", "STATUS")
			for _, o := range ov.Occupancy {
				fmt.Printf("  %-10s %6d/%-3d %5d%% %s\n", o.Class, o.Occupied, o.Total, o.Percentage, o.Status)
			}

			fmt.Println("\nPasien terbaru:")
			for _, r := range ov.Recent {
				fmt.Printf("  %-18s %-25s %s\n", r.ID, r.Name, r.AdmissionDate.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List admissions with filtering, sorting and pagination",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}

			spec := specFromFlags(cmd, a.cfg.PageSize)
			res, err := a.patients.List(context.Background(), spec)
			if err != nil {
				return fmt.Errorf("list admissions: %w", err)
			}

			fmt.Printf("%-18s %-25s %-10s %-30s %-25s %-18s %s\n",
				"NO. RM", "NAMA", "STATUS", "DIAGNOSA", "DOKTER", "RUANGAN", "MASUK")
			for _, r := range res.Page {
				fmt.Printf("%-18s %-25s %-10s %-30s %-25s %-18s %s\n",
					r.ID, r.Name, r.Status, r.Diagnosis, r.Doctor, r.RoomName,
					r.AdmissionDate.Format("2006-01-02"))
			}

			fmt.Printf("\n%d pasien, halaman %d/%d   %s\n",
				res.TotalMatched, res.CurrentPage, res.TotalPages,
				renderWindow(res.CurrentPage, res.TotalPages))
			return nil
		},
	}
	addQueryFlags(cmd)
	return cmd
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered admission list as CSV or XLSX",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}

			spec := specFromFlags(cmd, a.cfg.PageSize)
			recs, err := a.patients.Matching(context.Background(), spec)
			if err != nil {
				return fmt.Errorf("collect records: %w", err)
			}

			xlsx, _ := cmd.Flags().GetBool("xlsx")
			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				ext := "csv"
				if xlsx {
					ext = "xlsx"
				}
				out = export.FileName(ext, a.clk.Now())
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer f.Close()

			if xlsx {
				err = export.WriteXLSX(f, recs)
			} else {
				err = export.WriteCSV(f, recs)
			}
			if err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			a.log.Info().Str("file", out).Int("records", len(recs)).Msg("export written")
			return nil
		},
	}
	addQueryFlags(cmd)
	cmd.Flags().String("out", "", "Output file (default: timestamped name in cwd)")
	cmd.Flags().Bool("xlsx", false, "Write an XLSX workbook instead of CSV")
	return cmd
}

func admitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admit",
		Short: "Validate and store an admission draft from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}

			file, _ := cmd.Flags().GetString("file")
			id, _ := cmd.Flags().GetString("id")

			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read draft: %w", err)
			}
			var draft patient.FormValues
			if err := json.Unmarshal(raw, &draft); err != nil {
				return fmt.Errorf("parse draft: %w", err)
			}

			ctx := context.Background()
			var rec *patient.Record
			var verrs patient.ValidationErrors
			if id == "" {
				rec, verrs, err = a.patients.Admit(ctx, draft)
			} else {
				rec, verrs, err = a.patients.Amend(ctx, id, draft)
			}
			if err != nil {
				return err
			}
			if !verrs.Valid() {
				fmt.Println("Formulir belum lengkap:")
				for _, field := range verrs.Fields() {
					fmt.Printf("  %-25s %s\n", field, verrs[field])
				}
				os.Exit(1)
			}

			fmt.Printf("Tersimpan: %s (%s) %s\n", rec.ID, rec.RegNumber, rec.Name)
			return nil
		},
	}
	cmd.Flags().String("file", "", "Path to the JSON admission draft")
	cmd.Flags().String("id", "", "Amend the record with this record number instead of admitting")
	cmd.MarkFlagRequired("file")
	return cmd
}

func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().String("search", "", "Match name, record number or NIK")
	cmd.Flags().String("status", patient.FilterAll, "Filter by clinical status")
	cmd.Flags().String("doctor", patient.FilterAll, "Filter by attending physician")
	cmd.Flags().String("room", patient.FilterAll, "Filter by ward name")
	cmd.Flags().String("payment", patient.FilterAll, "Filter by payment method")
	cmd.Flags().String("gender", patient.FilterAll, "Filter by gender")
	cmd.Flags().String("sort", "", "Sort key: "+strings.Join(patient.SortKeys, ", "))
	cmd.Flags().Bool("desc", false, "Sort descending")
	cmd.Flags().Int("page", 1, "Page number")
}

func specFromFlags(cmd *cobra.Command, pageSize int) patient.QuerySpec {
	search, _ := cmd.Flags().GetString("search")
	status, _ := cmd.Flags().GetString("status")
	doctor, _ := cmd.Flags().GetString("doctor")
	room, _ := cmd.Flags().GetString("room")
	payment, _ := cmd.Flags().GetString("payment")
	gender, _ := cmd.Flags().GetString("gender")
	sortKey, _ := cmd.Flags().GetString("sort")
	desc, _ := cmd.Flags().GetBool("desc")
	page, _ := cmd.Flags().GetInt("page")

	dir := patient.SortAsc
	if desc {
		dir = patient.SortDesc
	}
	return patient.QuerySpec{
		Search:        search,
		Status:        status,
		Doctor:        doctor,
		RoomName:      room,
		PaymentMethod: payment,
		Gender:        gender,
		SortKey:       sortKey,
		SortDir:       dir,
		Page:          page,
		PageSize:      pageSize,
	}
}

// bar renders a percentage as a fixed-width text bar.
func bar(pct float64, width int) string {
	filled := int(pct * float64(width) / 100)
	if filled > width {
		filled = width
	}
	if filled < 1 {
		filled = 1
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// renderWindow formats the pagination strip, e.g. "1 … 4 [5] 6 … 12".
func renderWindow(current, total int) string {
	parts := make([]string, 0, 9)
	for _, p := range pagination.Window(current, total) {
		switch {
		case p == pagination.Gap:
			parts = append(parts, "…")
		case p == current:
			parts = append(parts, fmt.Sprintf("[%d]", p))
		default:
			parts = append(parts, fmt.Sprintf("%d", p))
		}
	}
	return strings.Join(parts, " ")
}
