// Package form describes the profile input form and fills it interactively.
//
// The form is a fixed list of fields. Each field has one of five kinds; the
// kind decides how the field is presented and which part of a profile it
// edits. Fill walks the schema and delegates each question to a Prompter.
package form

import (
	"github.com/gorewood/readmegen/internal/catalog"
	"github.com/gorewood/readmegen/internal/profile"
)

// Kind is the closed set of field kinds.
type Kind string

// Field kinds.
const (
	KindText          Kind = "text"
	KindTextArea      Kind = "textarea"
	KindCheckboxGroup Kind = "checkboxGroup"
	KindGroup         Kind = "group"
	KindArray         Kind = "array"
)

// Field is one form field. Options is set for checkbox groups, Fields for
// groups, and ItemLabel/ItemFields for arrays.
type Field struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Kind        Kind     `json:"type"`
	Placeholder string   `json:"placeholder,omitempty"`
	Required    bool     `json:"required,omitempty"`
	Options     []string `json:"options,omitempty"`
	Fields      []Field  `json:"fields,omitempty"`
	ItemLabel   string   `json:"itemLabel,omitempty"`
	ItemFields  []Field  `json:"itemFields,omitempty"`
}

// Definition is the complete form: its fields and their starting values.
type Definition struct {
	Fields        []Field      `json:"fields"`
	InitialValues profile.Data `json:"initialValues"`
}

// Schema returns the profile form in display order.
func Schema() []Field {
	return []Field{
		{ID: "name", Label: "Name", Kind: KindText, Required: true},
		{ID: "avatar", Label: "Profile Image URL", Kind: KindText, Placeholder: "https://example.com/your-avatar.jpg"},
		{ID: "tagline", Label: "Tagline", Kind: KindText},
		{ID: "about", Label: "About Me", Kind: KindTextArea},
		{ID: "skills", Label: "Skills / Tech Stack", Kind: KindCheckboxGroup, Options: catalog.SkillNames()},
		{
			ID:        "projects",
			Label:     "Featured Projects",
			Kind:      KindArray,
			ItemLabel: "Project",
			ItemFields: []Field{
				{ID: "name", Label: "Project Name", Kind: KindText},
				{ID: "description", Label: "Description", Kind: KindTextArea},
				{ID: "link", Label: "Link", Kind: KindText},
			},
		},
		{ID: "funFact", Label: "Fun Fact or Quote", Kind: KindText},
		{ID: "socials", Label: "Social Profiles", Kind: KindGroup, Fields: socialFields()},
	}
}

func socialFields() []Field {
	socials := catalog.Socials()
	fields := make([]Field, 0, len(socials))
	for _, s := range socials {
		fields = append(fields, Field{ID: s.ID, Label: s.Label, Kind: KindText, Placeholder: s.Placeholder})
	}
	return fields
}

// InitialValues returns the empty profile the form starts from, with every
// known social key present.
func InitialValues() profile.Data {
	return profile.Initial()
}

// Describe returns the schema together with its initial values.
func Describe() Definition {
	return Definition{Fields: Schema(), InitialValues: InitialValues()}
}
