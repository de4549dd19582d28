package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/asadk/hikmah/internal/quran"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show reading and worship progress per profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openProfileStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		profiles, err := store.Profiles(context.Background())
		if err != nil {
			return fmt.Errorf("load profiles: %w", err)
		}
		if len(profiles) == 0 {
			fmt.Println("No profiles registered yet.")
			return nil
		}

		fmt.Printf("%-16s  %-24s  %9s  %6s  %10s  %10s\n",
			"User", "Last Read", "Bookmarks", "Quiz", "Favorites", "Tasbih")
		fmt.Println(strings.Repeat("─", 84))

		for _, p := range profiles {
			position := fmt.Sprintf("Surah %d:%d", p.LastReadSurah, p.LastReadAyah)
			if s, ok := quran.SurahByNumber(p.LastReadSurah); ok {
				position = fmt.Sprintf("%s %d:%d", s.EnglishName, p.LastReadSurah, p.LastReadAyah)
			}
			fmt.Printf("%-16s  %-24s  %9d  %6d  %10d  %10d\n",
				p.Username, position, len(p.Bookmarks), p.QuizScore, len(p.Favorites), p.TasbihCount)
		}

		fmt.Println(strings.Repeat("─", 84))
		for _, p := range profiles {
			created := time.UnixMilli(p.CreatedAt).Local().Format("2006-01-02")
			fmt.Printf("%s joined %s\n", p.Username, created)
		}
		return nil
	},
}
