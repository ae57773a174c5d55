// Package profile defines the profile record that readmegen renders and the
// helpers for loading, normalizing and saving it.
package profile

import (
	"math"
	"net/url"
	"strings"

	"github.com/gorewood/readmegen/internal/catalog"
)

// Project is one entry in the featured projects list. Any subset of fields
// may be empty.
type Project struct {
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Link        string `json:"link"        yaml:"link"`
}

// IsEmpty reports whether name, link and description are all empty.
func (p Project) IsEmpty() bool {
	return p.Name == "" && p.Link == "" && p.Description == ""
}

// Data is the user profile. Every field is optional; an empty value means
// the corresponding README section is omitted.
type Data struct {
	Name     string            `json:"name"     yaml:"name"`
	Avatar   string            `json:"avatar"   yaml:"avatar"`
	Tagline  string            `json:"tagline"  yaml:"tagline"`
	About    string            `json:"about"    yaml:"about"`
	Skills   []string          `json:"skills"   yaml:"skills"`
	Projects []Project         `json:"projects" yaml:"projects"`
	FunFact  string            `json:"funFact"  yaml:"funFact"`
	Socials  map[string]string `json:"socials"  yaml:"socials"`
}

// Normalize returns a copy of d with non-nil Skills, Projects and Socials,
// and with every social value trimmed. d is not modified.
func Normalize(d Data) Data {
	out := d

	out.Skills = make([]string, len(d.Skills))
	copy(out.Skills, d.Skills)

	out.Projects = make([]Project, len(d.Projects))
	copy(out.Projects, d.Projects)

	out.Socials = make(map[string]string, len(d.Socials))
	for key, value := range d.Socials {
		out.Socials[key] = strings.TrimSpace(value)
	}
	return out
}

// Social returns the trimmed value for a platform key.
func (d Data) Social(key string) string {
	return strings.TrimSpace(d.Socials[key])
}

// GitHubUsername returns the GitHub account the stats sections are keyed
// by: the trimmed github social value, or the first path segment when the
// value is a github.com profile URL.
func (d Data) GitHubUsername() string {
	value := d.Social("github")
	if value == "" {
		return ""
	}

	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return value
	}

	parsed, err := url.Parse(value)
	if err != nil {
		return value
	}
	host := strings.TrimPrefix(strings.ToLower(parsed.Host), "www.")
	if host != "github.com" {
		return value
	}
	segment, _, _ := strings.Cut(strings.Trim(parsed.Path, "/"), "/")
	if segment == "" {
		return value
	}
	return segment
}

// completionFields are the fields that count towards Completion.
var completionFields = []func(Data) bool{
	func(d Data) bool { return strings.TrimSpace(d.Name) != "" },
	func(d Data) bool { return strings.TrimSpace(d.Tagline) != "" },
	func(d Data) bool { return strings.TrimSpace(d.About) != "" },
	func(d Data) bool { return len(d.Skills) > 0 },
	func(d Data) bool { return d.Social("github") != "" },
}

// Completion returns the rounded percentage of the key profile fields
// (name, tagline, about, skills, GitHub username) that are filled in.
func Completion(d Data) int {
	done := 0
	for _, filled := range completionFields {
		if filled(d) {
			done++
		}
	}
	return int(math.Round(float64(done) * 100 / float64(len(completionFields))))
}

// Initial returns an empty profile with every known social key present, the
// shape written by "readmegen init --defaults".
func Initial() Data {
	socials := make(map[string]string)
	for _, key := range catalog.SocialKeys() {
		socials[key] = ""
	}
	return Data{
		Skills:   []string{},
		Projects: []Project{},
		Socials:  socials,
	}
}
