package profile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	in := Data{Socials: map[string]string{"github": "  octocat \n"}}
	out := Normalize(in)

	if out.Skills == nil || out.Projects == nil || out.Socials == nil {
		t.Fatalf("Normalize left nil collections: %+v", out)
	}
	if out.Socials["github"] != "octocat" {
		t.Errorf("github = %q, want trimmed", out.Socials["github"])
	}
	if in.Socials["github"] != "  octocat \n" {
		t.Error("Normalize modified its input")
	}
}

func TestGitHubUsername(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"", ""},
		{"   ", ""},
		{" octocat ", "octocat"},
		{"https://github.com/octocat", "octocat"},
		{"https://www.github.com/octocat/", "octocat"},
		{"http://github.com/octocat/repo", "octocat"},
		{"https://github.com/", "https://github.com/"},
		{"https://gitlab.com/octocat", "https://gitlab.com/octocat"},
	}
	for _, tt := range tests {
		d := Data{Socials: map[string]string{"github": tt.value}}
		if got := d.GitHubUsername(); got != tt.want {
			t.Errorf("GitHubUsername(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestCompletion(t *testing.T) {
	tests := []struct {
		name string
		data Data
		want int
	}{
		{"empty", Data{}, 0},
		{"name only", Data{Name: "Ada"}, 20},
		{"blank strings do not count", Data{Name: "  ", About: "\n"}, 0},
		{"three of five", Data{Name: "Ada", Tagline: "x", Skills: []string{"Go"}}, 60},
		{
			name: "all",
			data: Data{
				Name: "Ada", Tagline: "t", About: "a", Skills: []string{"Go"},
				Socials: map[string]string{"github": "ada"},
			},
			want: 100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Completion(tt.data); got != tt.want {
				t.Errorf("Completion() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInitial(t *testing.T) {
	d := Initial()
	if len(d.Socials) != 7 {
		t.Errorf("len(Socials) = %d, want 7", len(d.Socials))
	}
	if _, ok := d.Socials["medium"]; !ok {
		t.Error("Initial() missing medium key")
	}
	if d.Skills == nil || d.Projects == nil {
		t.Error("Initial() has nil collections")
	}
}

func TestProjectIsEmpty(t *testing.T) {
	if !(Project{}).IsEmpty() {
		t.Error("zero Project should be empty")
	}
	if (Project{Description: "only desc"}).IsEmpty() {
		t.Error("Project with description should not be empty")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"profile.yaml", FormatYAML, false},
		{"profile.YML", FormatYAML, false},
		{"profile.json", FormatJSON, false},
		{"-", FormatYAML, false},
		{"profile.toml", "", true},
		{"profile", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("FormatFromPath(%q) error = %v, want ErrUnknownFormat", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestDecodeYAML(t *testing.T) {
	doc := `
name: Ada Lovelace
tagline: First programmer
skills: [Go, Python]
projects:
  - name: Engine
    link: https://example.com/engine
    description: Analytical
funFact: Poetical science
socials:
  github: " ada "
`
	d, err := Decode(strings.NewReader(doc), FormatYAML)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if d.Name != "Ada Lovelace" || d.FunFact != "Poetical science" {
		t.Errorf("decoded = %+v", d)
	}
	if len(d.Skills) != 2 || d.Skills[1] != "Python" {
		t.Errorf("Skills = %v", d.Skills)
	}
	if len(d.Projects) != 1 || d.Projects[0].Link != "https://example.com/engine" {
		t.Errorf("Projects = %+v", d.Projects)
	}
	if d.Socials["github"] != "ada" {
		t.Errorf("github = %q, want trimmed", d.Socials["github"])
	}
}

func TestDecodeJSONNulls(t *testing.T) {
	d, err := Decode(strings.NewReader(`{"name":"Ada","skills":null,"projects":null}`), FormatJSON)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if d.Skills == nil || d.Projects == nil || d.Socials == nil {
		t.Errorf("Decode left nil collections: %+v", d)
	}
}

func TestDecodeEmptyAndInvalid(t *testing.T) {
	d, err := Decode(strings.NewReader("  \n"), FormatYAML)
	if err != nil {
		t.Fatalf("Decode(empty) error = %v", err)
	}
	if d.Name != "" || d.Skills == nil {
		t.Errorf("Decode(empty) = %+v", d)
	}

	if _, err := Decode(strings.NewReader("{not json"), FormatJSON); err == nil {
		t.Error("Decode(invalid JSON) error = nil")
	}
	if _, err := Decode(strings.NewReader("name: [unclosed"), FormatYAML); err == nil {
		t.Error("Decode(invalid YAML) error = nil")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, ext := range []string{".yaml", ".json"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "profile"+ext)
			in := Initial()
			in.Name = "Ada"
			in.Skills = []string{"Go"}
			in.Socials["github"] = "ada"

			if err := Save(path, in); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			out, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if out.Name != "Ada" || out.Socials["github"] != "ada" || len(out.Skills) != 1 {
				t.Errorf("Load() = %+v", out)
			}
			if _, ok := out.Socials["medium"]; !ok {
				t.Error("empty social keys were not preserved")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

type fakeConfig map[string]string

func (f fakeConfig) Get(key string) (string, error) {
	if key == "broken" {
		return "", errors.New("broken")
	}
	return f[key], nil
}

func TestPrefill(t *testing.T) {
	src := fakeConfig{
		"user.name":   "Ada Lovelace",
		"github.user": "ada",
		"user.email":  "ada@example.com",
	}

	t.Run("fills empty fields", func(t *testing.T) {
		out, err := Prefill(Data{}, src)
		if err != nil {
			t.Fatalf("Prefill() error = %v", err)
		}
		if out.Name != "Ada Lovelace" || out.Socials["github"] != "ada" || out.Socials["email"] != "ada@example.com" {
			t.Errorf("Prefill() = %+v", out)
		}
	})

	t.Run("keeps existing values", func(t *testing.T) {
		in := Data{Name: "Countess", Socials: map[string]string{"github": "countess"}}
		out, err := Prefill(in, src)
		if err != nil {
			t.Fatalf("Prefill() error = %v", err)
		}
		if out.Name != "Countess" || out.Socials["github"] != "countess" {
			t.Errorf("Prefill() overwrote values: %+v", out)
		}
		if out.Socials["email"] != "ada@example.com" {
			t.Errorf("email = %q", out.Socials["email"])
		}
	})
}
