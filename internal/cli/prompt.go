package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/example/crudgen/internal/scaffold"
)

// maxPromptFields bounds the interactive field count.
const maxPromptFields = 50

// interactive reports whether stdin is attached to a terminal.
func interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// promptFields asks for the number of fields, then a name and a type for
// each. Zero fields falls back to the default field downstream.
func promptFields() ([]scaffold.FieldSpec, error) {
	var countStr string
	if err := huh.NewForm(huh.NewGroup(countInput(&countStr))).Run(); err != nil {
		return nil, fmt.Errorf("failed to read field count: %w", err)
	}
	count, err := parseFieldCount(countStr)
	if err != nil {
		return nil, err
	}

	fields := make([]scaffold.FieldSpec, 0, count)
	for i := 1; i <= count; i++ {
		var (
			name      string
			fieldType = scaffold.TypeText
		)
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Field %d name", i)).
				Value(&name).
				Validate(validateFieldName(fields)),
			huh.NewSelect[scaffold.FieldType]().
				Title(fmt.Sprintf("Field %d type", i)).
				Options(fieldTypeOptions()...).
				Value(&fieldType),
		))
		if err := form.Run(); err != nil {
			return nil, fmt.Errorf("failed to read field %d: %w", i, err)
		}

		fields = append(fields, scaffold.FieldSpec{
			Identifier: scaffold.ToSnakeCase(strings.TrimSpace(name)),
			Type:       fieldType,
		})
	}

	return fields, nil
}

// confirmGeneration asks before any file or table is touched.
func confirmGeneration(module string) (bool, error) {
	ok := true
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Generate module %s?", module)).
			Affirmative("Generate").
			Negative("Cancel").
			Value(&ok),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("failed to confirm: %w", err)
	}
	return ok, nil
}

func countInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("How many fields?").
		Description("Zero uses a single name:text field").
		Value(value).
		Validate(func(s string) error {
			_, err := parseFieldCount(s)
			return err
		})
}

func parseFieldCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("field count must be a number, got %q", s)
	}
	if n < 0 || n > maxPromptFields {
		return 0, fmt.Errorf("field count must be between 0 and %d", maxPromptFields)
	}
	return n, nil
}

// validateFieldName rejects names that would fail module validation, so the
// operator can retype them instead of losing the whole form.
func validateFieldName(previous []scaffold.FieldSpec) func(string) error {
	return func(s string) error {
		id := scaffold.ToSnakeCase(strings.TrimSpace(s))
		if err := scaffold.ValidateIdentifier(id); err != nil {
			return err
		}
		for _, f := range previous {
			if f.Identifier == id {
				return fmt.Errorf("field %s already declared", id)
			}
		}
		return nil
	}
}

func fieldTypeOptions() []huh.Option[scaffold.FieldType] {
	opts := make([]huh.Option[scaffold.FieldType], 0, len(scaffold.FieldTypes))
	for _, t := range scaffold.FieldTypes {
		opts = append(opts, huh.NewOption(string(t), t))
	}
	return opts
}
