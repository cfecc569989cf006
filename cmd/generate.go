package cmd

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/andyxwarren/factory-architect-sub002/internal/engine"
	"github.com/andyxwarren/factory-architect-sub002/internal/format"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate questions and print them as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		model, _ := cmd.Flags().GetString("model")
		level, _ := cmd.Flags().GetString("level")
		year, _ := cmd.Flags().GetInt("year")
		formatName, _ := cmd.Flags().GetString("format")
		theme, _ := cmd.Flags().GetString("theme")
		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetInt64("seed")

		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		o := engine.New(format.Deps{RNG: rand.New(rand.NewSource(seed))})

		req := engine.Request{
			ModelID:          model,
			DifficultyLevel:  level,
			YearLevel:        year,
			FormatPreference: formatName,
			ScenarioTheme:    theme,
			Quantity:         count,
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		if count > 1 {
			result, err := o.GenerateBatch(req)
			if err != nil {
				return err
			}
			if result.SuccessRate < 1 {
				fmt.Fprintf(os.Stderr, "warning: %d of %d items failed\n",
					len(result.Failures), count)
			}
			return enc.Encode(result)
		}

		q, err := o.GenerateQuestion(req)
		if err != nil {
			return err
		}
		return enc.Encode(q)
	},
}

func init() {
	generateCmd.Flags().String("model", "", "Math model id (e.g. ADDITION)")
	generateCmd.Flags().String("level", "", "Difficulty level as \"Y.S\" (e.g. 3.2)")
	generateCmd.Flags().Int("year", 0, "Curriculum year 1-6 (alternative to --level)")
	generateCmd.Flags().String("format", "", "Question format (default inferred from the model)")
	generateCmd.Flags().String("theme", "", "Preferred scenario theme (e.g. SHOPPING)")
	generateCmd.Flags().Int("count", 1, "Number of questions to generate")
	generateCmd.Flags().Int64("seed", 0, "Random seed for reproducible output (0 = time-based)")
}
