package profile

import (
	"strings"
	"testing"
)

func TestDecodeCoercesMistypedFields(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		doc    string
		check  func(t *testing.T, d Data)
	}{
		{
			name:   "scalar skills",
			format: FormatYAML,
			doc:    "name: Ada\nskills: Go\n",
			check: func(t *testing.T, d Data) {
				if d.Name != "Ada" {
					t.Errorf("Name = %q, want Ada", d.Name)
				}
				if d.Skills == nil || len(d.Skills) != 0 {
					t.Errorf("Skills = %#v, want empty", d.Skills)
				}
			},
		},
		{
			name:   "numeric social",
			format: FormatJSON,
			doc:    `{"name":"Ada","socials":{"github":42,"x":{"nested":true},"dev":"ada"}}`,
			check: func(t *testing.T, d Data) {
				if d.Socials["github"] != "42" || d.Socials["dev"] != "ada" {
					t.Errorf("Socials = %v", d.Socials)
				}
				if _, ok := d.Socials["x"]; ok {
					t.Errorf("object social kept: %v", d.Socials)
				}
			},
		},
		{
			name:   "string project entry",
			format: FormatYAML,
			doc:    "projects:\n  - just a string\n  - name: Engine\n    link: e.com\n",
			check: func(t *testing.T, d Data) {
				if len(d.Projects) != 1 || d.Projects[0].Name != "Engine" || d.Projects[0].Link != "e.com" {
					t.Errorf("Projects = %+v", d.Projects)
				}
			},
		},
		{
			name:   "scalar fields from numbers and bools",
			format: FormatJSON,
			doc:    `{"name":1984,"tagline":true,"about":["x"],"skills":["Go",3.5,null,["y"]]}`,
			check: func(t *testing.T, d Data) {
				if d.Name != "1984" || d.Tagline != "true" || d.About != "" {
					t.Errorf("decoded = %+v", d)
				}
				if strings.Join(d.Skills, ",") != "Go,3.5" {
					t.Errorf("Skills = %v", d.Skills)
				}
			},
		},
		{
			name:   "non-object document",
			format: FormatJSON,
			doc:    `["Ada"]`,
			check: func(t *testing.T, d Data) {
				if d.Name != "" || d.Skills == nil || d.Socials == nil {
					t.Errorf("decoded = %+v", d)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Decode(strings.NewReader(tt.doc), tt.format)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			tt.check(t, d)
		})
	}
}

func TestFromValueYAMLKeys(t *testing.T) {
	d := FromValue(map[any]any{"name": "Ada", "socials": map[any]any{"github": "ada", 7: "seven"}})
	if d.Name != "Ada" || d.Socials["github"] != "ada" || d.Socials["7"] != "seven" {
		t.Errorf("FromValue() = %+v", d)
	}
}
