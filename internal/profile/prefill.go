package profile

import "strings"

// ConfigSource reads single configuration values such as git config keys.
// A missing key is reported as an empty string, not an error.
type ConfigSource interface {
	Get(key string) (string, error)
}

// prefillKeys maps git config keys to the profile fields they seed.
var prefillKeys = []struct {
	key   string
	apply func(d *Data, value string)
}{
	{"user.name", func(d *Data, v string) { setIfEmpty(&d.Name, v) }},
	{"github.user", func(d *Data, v string) { setSocialIfEmpty(d, "github", v) }},
	{"user.email", func(d *Data, v string) { setSocialIfEmpty(d, "email", v) }},
}

// Prefill fills empty name, GitHub and email fields from src. Fields that
// already hold a value are kept. Lookup failures are skipped; the first one
// is returned alongside the best-effort result.
func Prefill(d Data, src ConfigSource) (Data, error) {
	out := Normalize(d)
	var firstErr error
	for _, pk := range prefillKeys {
		value, err := src.Get(pk.key)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if value = strings.TrimSpace(value); value != "" {
			pk.apply(&out, value)
		}
	}
	return out, firstErr
}

func setIfEmpty(field *string, value string) {
	if strings.TrimSpace(*field) == "" {
		*field = value
	}
}

func setSocialIfEmpty(d *Data, key, value string) {
	if d.Social(key) == "" {
		d.Socials[key] = value
	}
}
