package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorewood/readmegen/internal/profile"
)

// ErrUnknownField is returned when a schema field has no profile binding.
var ErrUnknownField = errors.New("unknown form field")

// Prompter asks the user for one value at a time. Implementations return the
// current value unchanged when the user accepts the default.
type Prompter interface {
	Text(field Field, current string) (string, error)
	TextArea(field Field, current string) (string, error)
	MultiSelect(field Field, current []string) ([]string, error)
	Confirm(label string) (bool, error)
}

// Fill walks fields in order and stores the answers in a copy of d.
// Existing projects are kept; the prompter is asked whether to add more.
func Fill(fields []Field, d profile.Data, p Prompter) (profile.Data, error) {
	out := profile.Normalize(d)

	for _, field := range fields {
		if err := fillField(field, &out, p); err != nil {
			return out, fmt.Errorf("%s: %w", field.ID, err)
		}
	}
	return profile.Normalize(out), nil
}

func fillField(field Field, d *profile.Data, p Prompter) error {
	switch field.Kind {
	case KindText, KindTextArea:
		target := stringField(d, field.ID)
		if target == nil {
			return ErrUnknownField
		}
		return ask(field, target, p)

	case KindCheckboxGroup:
		if field.ID != "skills" {
			return ErrUnknownField
		}
		selected, err := p.MultiSelect(field, d.Skills)
		if err != nil {
			return err
		}
		d.Skills = selected
		return nil

	case KindGroup:
		if field.ID != "socials" {
			return ErrUnknownField
		}
		for _, sub := range field.Fields {
			value := d.Socials[sub.ID]
			if err := ask(sub, &value, p); err != nil {
				return err
			}
			d.Socials[sub.ID] = value
		}
		return nil

	case KindArray:
		if field.ID != "projects" {
			return ErrUnknownField
		}
		return fillProjects(field, d, p)

	default:
		return fmt.Errorf("field kind %q: %w", field.Kind, ErrUnknownField)
	}
}

// ask prompts for a single string using the widget matching field.Kind.
func ask(field Field, target *string, p Prompter) error {
	var (
		value string
		err   error
	)
	if field.Kind == KindTextArea {
		value, err = p.TextArea(field, *target)
	} else {
		value, err = p.Text(field, *target)
	}
	if err != nil {
		return err
	}
	*target = value
	return nil
}

func fillProjects(field Field, d *profile.Data, p Prompter) error {
	for {
		more, err := p.Confirm(fmt.Sprintf("Add %s #%d", strings.ToLower(field.ItemLabel), len(d.Projects)+1))
		if err != nil {
			return err
		}
		if !more {
			return nil
		}

		var project profile.Project
		for _, sub := range field.ItemFields {
			target := projectField(&project, sub.ID)
			if target == nil {
				return fmt.Errorf("%s: %w", sub.ID, ErrUnknownField)
			}
			if err := ask(sub, target, p); err != nil {
				return err
			}
		}
		if !project.IsEmpty() {
			d.Projects = append(d.Projects, project)
		}
	}
}

func stringField(d *profile.Data, id string) *string {
	switch id {
	case "name":
		return &d.Name
	case "avatar":
		return &d.Avatar
	case "tagline":
		return &d.Tagline
	case "about":
		return &d.About
	case "funFact":
		return &d.FunFact
	}
	return nil
}

func projectField(p *profile.Project, id string) *string {
	switch id {
	case "name":
		return &p.Name
	case "description":
		return &p.Description
	case "link":
		return &p.Link
	}
	return nil
}
