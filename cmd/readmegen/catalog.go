package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/readmegen/internal/catalog"
)

// newSkillsCmd creates the skills command.
func newSkillsCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "skills",
		Short: "List skills that render as icons",
		Long: `List the skills that render as icons. Names are matched exactly, so
write them in a profile as shown here. Any other skill renders as inline code.

Examples:
  readmegen skills
  readmegen skills --query script
  readmegen skills --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)
			needle := strings.ToLower(strings.TrimSpace(query))

			var matched []catalog.Skill
			for _, skill := range catalog.Skills() {
				if needle == "" || strings.Contains(strings.ToLower(skill.Name), needle) {
					matched = append(matched, skill)
				}
			}

			if printer.IsJSON() {
				if matched == nil {
					matched = []catalog.Skill{}
				}
				return printer.WriteJSON(map[string]any{
					"count":  len(matched),
					"skills": matched,
				})
			}
			if len(matched) == 0 {
				printer.Println("No matching skills")
				return nil
			}

			rows := make([][]string, 0, len(matched))
			for _, skill := range matched {
				link, _ := catalog.SkillLink(skill.Name)
				rows = append(rows, []string{skill.Name, link})
			}
			printer.Table([]string{"NAME", "HOMEPAGE"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Case-insensitive substring filter")
	return cmd
}

// newSocialsCmd creates the socials command.
func newSocialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "socials",
		Short: "List supported social platforms",
		Long: `List the social platform keys a profile can use, in the order their
badges appear in the README.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)
			list := catalog.Socials()

			if printer.IsJSON() {
				return printer.WriteJSON(map[string]any{
					"count":   len(list),
					"socials": list,
				})
			}

			rows := make([][]string, 0, len(list))
			for _, social := range list {
				rows = append(rows, []string{social.ID, social.Label, catalog.BadgeLabel(social.ID), social.Color})
			}
			printer.Table([]string{"KEY", "LABEL", "BADGE", "COLOR"}, rows)
			return nil
		},
	}
}
