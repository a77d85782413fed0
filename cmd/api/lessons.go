package main

import (
	"fmt"
	"io"

	"github.com/evandrarf/dsadojo-be/internal/lesson"
	"github.com/spf13/cobra"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "Print the lesson catalog synthesized from the embedded bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		language, _ := cmd.Flags().GetString("language")
		pref := lesson.Language(language)
		if !pref.Valid() {
			return fmt.Errorf("unsupported language %q", language)
		}

		bank, err := lesson.DefaultBank()
		if err != nil {
			return err
		}
		catalog, err := bank.Catalog()
		if err != nil {
			return err
		}
		printCatalog(cmd.OutOrStdout(), catalog, pref)
		return nil
	},
}

func init() {
	lessonsCmd.Flags().String("language", string(lesson.LanguagePython), "Preferred language (python, java, cpp)")
}

func printCatalog(w io.Writer, catalog *lesson.Catalog, pref lesson.Language) {
	for _, cat := range catalog.Aggregate(pref, nil) {
		if cat.ComingSoon {
			fmt.Fprintf(w, "%s (coming soon)\n", cat.Title)
			continue
		}
		fmt.Fprintf(w, "%s: %d lessons, %d questions\n", cat.Title, len(cat.Lessons), cat.TotalQuestions)
		for _, l := range cat.Lessons {
			fmt.Fprintf(w, "  %-28s %-8s %3d xp  %2d questions\n", l.ID, l.Difficulty, l.XPReward, len(l.Questions))
		}
	}
}
