package profile

import (
	"fmt"
	"strconv"
)

// FromValue builds a profile from a generic decoded document, as produced by
// json.Unmarshal or yaml.Unmarshal into an any. Fields of the wrong shape
// are coerced or dropped one at a time so a single bad field never discards
// the rest of the profile: scalars become strings, a skills or socials
// value of the wrong kind becomes empty, and non-object project entries are
// skipped. A non-object document yields an empty profile. The result is
// normalized.
func FromValue(v any) Data {
	fields := asMap(v)
	if fields == nil {
		return Normalize(Data{})
	}
	return Normalize(Data{
		Name:     scalarString(fields["name"]),
		Avatar:   scalarString(fields["avatar"]),
		Tagline:  scalarString(fields["tagline"]),
		About:    scalarString(fields["about"]),
		Skills:   stringList(fields["skills"]),
		Projects: projectList(fields["projects"]),
		FunFact:  scalarString(fields["funFact"]),
		Socials:  stringMap(fields["socials"]),
	})
}

// asMap accepts both JSON objects and YAML mappings with non-string keys.
func asMap(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[scalarString(k)] = val
		}
		return out
	default:
		return nil
	}
}

// scalarString renders a scalar as text. Lists, objects and null give "".
func scalarString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case []any, map[string]any, map[any]any:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

func isScalar(v any) bool {
	switch v.(type) {
	case nil, []any, map[string]any, map[any]any:
		return false
	default:
		return true
	}
}

func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if isScalar(item) {
			out = append(out, scalarString(item))
		}
	}
	return out
}

func projectList(v any) []Project {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]Project, 0, len(items))
	for _, item := range items {
		fields := asMap(item)
		if fields == nil {
			continue
		}
		out = append(out, Project{
			Name:        scalarString(fields["name"]),
			Description: scalarString(fields["description"]),
			Link:        scalarString(fields["link"]),
		})
	}
	return out
}

func stringMap(v any) map[string]string {
	fields := asMap(v)
	if fields == nil {
		return nil
	}
	out := make(map[string]string, len(fields))
	for key, val := range fields {
		if isScalar(val) {
			out[key] = scalarString(val)
		}
	}
	return out
}
