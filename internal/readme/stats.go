package readme

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf16"
)

const (
	profileViewsURL = "https://komarev.com/ghpvc/?username=%s&label=Profile%%20views&color=0e75b6&style=flat"
	readmeStatsURL  = "https://github-readme-stats.vercel.app/api?username=%s&show_icons=true&theme=transparent"
	streakStatsURL  = "https://streak-stats.demolab.com?user=%s&theme=transparent"
	topLangsURL     = "https://github-readme-stats.vercel.app/api/top-langs/?username=%s&layout=compact&theme=transparent"
)

// profileViewsBadge is the visitor counter image for username.
func profileViewsBadge(username string) string {
	return "![Profile Views](" + fmt.Sprintf(profileViewsURL, url.QueryEscape(username)) + ")"
}

// statsImages is the stats, streak and top-languages cards for username.
func statsImages(username string) string {
	user := url.QueryEscape(username)
	return strings.Join([]string{
		"![GitHub Stats](" + fmt.Sprintf(readmeStatsURL, user) + ")",
		"![GitHub Streak](" + fmt.Sprintf(streakStatsURL, user) + ")",
		"![Top Languages](" + fmt.Sprintf(topLangsURL, user) + ")",
	}, "\n\n")
}

// DocumentStats summarizes a rendered document for previews.
type DocumentStats struct {
	Lines      int `json:"lines"`
	Words      int `json:"words"`
	Characters int `json:"characters"`
}

// Stats counts newline-separated lines, space-separated words and UTF-16
// code units, so characters outside the Basic Multilingual Plane such as
// most emoji count as two. An empty document counts as one line and one
// word.
func Stats(markup string) DocumentStats {
	return DocumentStats{
		Lines:      strings.Count(markup, "\n") + 1,
		Words:      strings.Count(markup, " ") + 1,
		Characters: len(utf16.Encode([]rune(markup))),
	}
}
