package readme

import (
	"fmt"
	"strings"

	"github.com/gorewood/readmegen/internal/catalog"
	"github.com/gorewood/readmegen/internal/profile"
)

const (
	defaultBadgeColor = "#666"
	badgeURLFormat    = "https://img.shields.io/badge/%s-%%23%s.svg?style=for-the-badge&logo=%s&logoColor=white"
)

// FormatSocialURL turns a social value (username, handle, address or URL)
// into the external link for platform key. Absolute http(s) URLs are kept;
// an empty value yields "#".
func FormatSocialURL(key, value string) string {
	if value == "" {
		return "#"
	}
	absolute := isAbsoluteURL(value)

	switch {
	case key == "github" && !absolute:
		return "https://github.com/" + value
	case key == "email" && !absolute && !strings.HasPrefix(value, "mailto:"):
		return "mailto:" + value
	case key == "email" && strings.HasPrefix(value, "mailto:"):
		return value
	case key == "twitter" && !absolute:
		return "https://x.com/" + strings.TrimPrefix(value, "@")
	case key == "linkedin" && !absolute:
		return "https://linkedin.com/in/" + value
	case absolute:
		return value
	default:
		return "https://" + value
	}
}

// BadgeURL returns the shields.io badge image for a platform.
func BadgeURL(key string) string {
	color := defaultBadgeColor
	if social, ok := catalog.LookupSocial(key); ok && social.Color != "" {
		color = social.Color
	}
	return fmt.Sprintf(badgeURLFormat, catalog.BadgeLabel(key), strings.TrimPrefix(color, "#"), catalog.BadgeLogo(key))
}

// buildSocials renders one linked badge per filled platform, in the fixed
// platform order. Keys outside the catalog are ignored.
func buildSocials(d profile.Data) string {
	badges := make([]string, 0, len(d.Socials))
	for _, key := range catalog.SocialKeys() {
		value := d.Social(key)
		if value == "" {
			continue
		}
		label := catalog.BadgeLabel(key)
		badges = append(badges, fmt.Sprintf("[![%s](%s)](%s)", label, BadgeURL(key), linkTarget(FormatSocialURL(key, value))))
	}
	return strings.Join(badges, " ")
}
