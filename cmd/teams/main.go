package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"team-lab/allocator"
	"team-lab/domain"
	"team-lab/errors"
	"team-lab/export"
	"team-lab/internal"
	"team-lab/presenter"
	"team-lab/roster"
	"team-lab/services"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run builds the teams once: load the roster, allocate, print the tables, write the workbook.
// Errors are reported on stderr before being returned.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("teams", flag.ContinueOnError)
	flags.SetOutput(stderr)
	input := flags.String("input", "-", "roster file (.txt, .csv, .xlsx), - reads 'Name - Role' lines from stdin")
	teams := flags.Int("teams", 1, "number of teams to build")
	format := flags.String("format", "", "text or table, guessed from the input extension when empty")
	out := flags.String("out", export.FileName, "workbook to write, empty to skip the export")
	if err := flags.Parse(args); err != nil {
		return err
	}

	_ = godotenv.Load()
	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Config error: %v\n", err)
		return err
	}
	report := reporter(stderr, config.Colours)

	log := logs.GetLoggerFromString(config.LogLevel)
	allocatorConfig, err := internal.AllocatorConfig(config.TeamRatio, config.MaxTeamSize, config.EnforceComposition)
	if err != nil {
		report(err)
		return err
	}
	teamAllocator, err := allocator.New(log, allocatorConfig, allocator.NewRandomShuffler())
	if err != nil {
		report(err)
		return err
	}
	service := services.NewTeamService(log, teamAllocator)

	players, err := loadRoster(*input, roster.Format(*format), stdin)
	if err != nil {
		report(err)
		return err
	}
	allocation, err := service.Assign(players, *teams)
	if err != nil {
		report(err)
		return err
	}

	presenter.Tables(stdout, allocation, config.Colours)

	if *out == "" {
		return nil
	}
	if err = export.WriteFile(*out, allocation); err != nil {
		report(err)
		return err
	}
	fmt.Fprintf(stdout, "\nSaved %d teams to %s\n", allocation.Effective, *out)
	return nil
}

func loadRoster(path string, format roster.Format, stdin io.Reader) (domain.Roster, error) {
	if format == "" {
		format = roster.FormatFromPath(path)
	}
	if path == "-" {
		return roster.Load(stdin, format)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	return roster.Load(file, format)
}

// reporter prints input problems as warnings and anything else as an error.
func reporter(w io.Writer, colours bool) func(error) {
	return func(err error) {
		label, style := "Error:", color.New(color.FgRed, color.OpBold)
		if errors.IsValidation(err) {
			label, style = "Warning:", color.New(color.FgYellow, color.OpBold)
		}
		if colours {
			label = style.Render(label)
		}
		fmt.Fprintf(w, "%s %v\n", label, err)
	}
}
