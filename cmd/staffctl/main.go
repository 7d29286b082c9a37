/*
main.go - Command-line scenario runner

PURPOSE:
  Loads a demo scenario into a fresh in-memory registry, replays its
  script and prints every notification and shortage error to stdout.
  Useful for seeing the staff model work without starting the server.

COMMAND-LINE FLAGS:
  -scenario  Scenario ID to run (default: $STAFFING_SCENARIO, else small-team)
  -list      Print the available scenarios and exit

ENVIRONMENT:
  STAFFING_SCENARIO, read from the process or a .env file

EXAMPLES:
  ./staffctl -list
  ./staffctl -scenario=shortage

SEE ALSO:
  - api/scenarios.go: Scenario definitions
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/warp/staffing/api"
	"github.com/warp/staffing/factory"
	"github.com/warp/staffing/staff"
	"github.com/warp/staffing/store/memory"
)

const fallbackScenario = "small-team"

func main() {
	_ = godotenv.Load()

	scenarioID := flag.String("scenario", defaultScenario(), "scenario to run")
	list := flag.Bool("list", false, "list scenarios and exit")
	flag.Parse()

	if *list {
		for _, s := range api.Scenarios() {
			fmt.Printf("%-15s %s\n", s.ID, s.Description)
		}
		return
	}

	if err := run(context.Background(), os.Stdout, *scenarioID); err != nil {
		fmt.Fprintln(os.Stderr, "staffctl:", err)
		os.Exit(1)
	}
}

func defaultScenario() string {
	if v := os.Getenv("STAFFING_SCENARIO"); v != "" {
		return v
	}
	return fallbackScenario
}

func run(ctx context.Context, out io.Writer, id string) error {
	s, ok := api.LookupScenario(id)
	if !ok {
		return fmt.Errorf("unknown scenario %q (try -list)", id)
	}

	registry := memory.NewRegistry()
	f := factory.NewEmployeeFactory(staff.WithNotifier(staff.WriterNotifier{W: out}))

	_, err := s.Load(ctx, registry, f, func(r api.StepResult) {
		if r.Error != "" {
			fmt.Fprintln(out, r.Error)
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	for _, name := range registry.Names(ctx) {
		err := registry.View(ctx, name, func(c *staff.Company) error {
			fmt.Fprintf(out, "%s\n", c.Name)
			for i, e := range c.AllEmployees().All() {
				fmt.Fprintf(out, "  %d %-8s %-10s pay=%s vacation_days=%d\n",
					i, e.Person.Name(), e.Role, e.Wage.CalculatePay(), e.VacationDays)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
