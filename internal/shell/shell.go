package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/UnknownOlympus/roster/internal/lib/logger/sl"
	"github.com/UnknownOlympus/roster/internal/metrics"
	"github.com/UnknownOlympus/roster/internal/models"
	"github.com/UnknownOlympus/roster/internal/parser"
	"github.com/UnknownOlympus/roster/internal/repository"
)

const (
	choiceAddFullTime = iota + 1
	choiceAddPartTime
	choiceList
	choiceRemove
	choiceExit
)

const (
	msgInvalidInput  = "Invalid input, please try again."
	msgInvalidChoice = "Invalid choice. Please try again."
	msgNotFound      = "Employee not found."
)

// Roster is the set of use cases the shell drives.
type Roster interface {
	HireFullTime(ctx context.Context, identifier int, name string, salary decimal.Decimal) models.Employee
	HirePartTime(ctx context.Context, identifier int, name string, rate decimal.Decimal, hours int) models.Employee
	Dismiss(ctx context.Context, identifier int) error
	Roster(ctx context.Context) []string
}

// Shell is the interactive text menu of the roster.
type Shell struct {
	in      *bufio.Reader
	out     io.Writer
	roster  Roster
	log     *slog.Logger
	metrics *metrics.Metrics

	title lipgloss.Style
	alert lipgloss.Style
}

// New creates a shell reading answers from in and writing prompts to out.
func New(in io.Reader, out io.Writer, roster Roster, log *slog.Logger, metrics *metrics.Metrics) *Shell {
	renderer := lipgloss.NewRenderer(out)

	return &Shell{
		in:      bufio.NewReader(in),
		out:     out,
		roster:  roster,
		log:     log.With(sl.Op("Shell.Run")),
		metrics: metrics,
		title:   renderer.NewStyle().Bold(true),
		alert:   renderer.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Run serves the menu until the user exits or the input ends.
// It only returns an error when reading the input fails.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()

		choice, err := prompt(ctx, s, "Enter your choice: ", parser.ParseChoice)
		if err != nil {
			return s.stop(ctx, err)
		}

		switch choice {
		case choiceAddFullTime:
			err = s.addFullTime(ctx)
		case choiceAddPartTime:
			err = s.addPartTime(ctx)
		case choiceList:
			s.list(ctx)
		case choiceRemove:
			err = s.remove(ctx)
		case choiceExit:
			s.log.DebugContext(ctx, "Exit requested")
			return nil
		default:
			s.println(s.alert.Render(msgInvalidChoice))
		}

		if err != nil {
			return s.stop(ctx, err)
		}
	}
}

func (s *Shell) stop(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) {
		s.log.DebugContext(ctx, "Input closed")
		return nil
	}

	s.log.ErrorContext(ctx, "Failed to read input", sl.Err(err))

	return fmt.Errorf("failed to read input: %w", err)
}

func (s *Shell) printMenu() {
	s.println("")
	s.println(s.title.Render("Employee Management System"))
	s.println("1. Add Full-Time Employee")
	s.println("2. Add Part-Time Employee")
	s.println("3. List Employees")
	s.println("4. Remove Employee")
	s.println("5. Exit")
}

func (s *Shell) addFullTime(ctx context.Context) error {
	identifier, err := prompt(ctx, s, "Enter Full-Time Employee ID: ", parser.ParseID)
	if err != nil {
		return err
	}

	name, err := s.readName("Enter Full-Time Employee Name: ")
	if err != nil {
		return err
	}

	salary, err := prompt(ctx, s, "Enter Annual Salary: ", parser.ParseAmount)
	if err != nil {
		return err
	}

	s.roster.HireFullTime(ctx, identifier, name, salary)

	return nil
}

func (s *Shell) addPartTime(ctx context.Context) error {
	identifier, err := prompt(ctx, s, "Enter Part-Time Employee ID: ", parser.ParseID)
	if err != nil {
		return err
	}

	name, err := s.readName("Enter Part-Time Employee Name: ")
	if err != nil {
		return err
	}

	rate, err := prompt(ctx, s, "Enter Hourly Rate: ", parser.ParseAmount)
	if err != nil {
		return err
	}

	hours, err := prompt(ctx, s, "Enter Hours Worked: ", parser.ParseHours)
	if err != nil {
		return err
	}

	s.roster.HirePartTime(ctx, identifier, name, rate, hours)

	return nil
}

func (s *Shell) list(ctx context.Context) {
	s.println("")
	s.println(s.title.Render("Employee List:"))

	for _, line := range s.roster.Roster(ctx) {
		s.println(line)
	}
}

func (s *Shell) remove(ctx context.Context) error {
	identifier, err := prompt(ctx, s, "Enter Employee ID to remove: ", parser.ParseID)
	if err != nil {
		return err
	}

	if err = s.roster.Dismiss(ctx, identifier); err != nil {
		if !errors.Is(err, repository.ErrEmployeeNotFound) {
			return err
		}
		s.println(s.alert.Render(msgNotFound))
	}

	return nil
}

func (s *Shell) readName(label string) (string, error) {
	fmt.Fprint(s.out, label)

	line, err := s.readLine()
	if err != nil {
		return "", err
	}

	return parser.ParseName(line), nil
}

// readLine returns the next line. A final line without terminator is still returned.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}

	return line, nil
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}

// prompt asks for a value until parse accepts it.
func prompt[T any](ctx context.Context, s *Shell, label string, parse func(string) (T, error)) (T, error) {
	for {
		fmt.Fprint(s.out, label)

		line, err := s.readLine()
		if err != nil {
			var zero T
			return zero, err
		}

		value, err := parse(line)
		if err == nil {
			return value, nil
		}

		if s.metrics != nil {
			s.metrics.InvalidInputs.Inc()
		}
		s.log.DebugContext(ctx, "Rejected input", "prompt", label, sl.Err(err))
		s.println(s.alert.Render(msgInvalidInput))
	}
}
