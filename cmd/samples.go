package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/midlaj-muhammed/expert-journey/internal/samples"
)

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "List the built-in sample job descriptions",
	Run: func(cmd *cobra.Command, _ []string) {
		show, _ := cmd.Flags().GetString("show")
		if show != "" {
			job, ok := samples.Find(show)
			if !ok {
				cmd.PrintErrf("no sample job named %q\n", show)
				return
			}
			fmt.Printf("%s (%s)\n\n%s\n", job.Title, job.Category, job.Description)
			return
		}

		for _, category := range samples.Categories() {
			fmt.Printf("%s:\n", category)
			for _, job := range samples.ByCategory(category) {
				fmt.Printf("  - %s\n", job.Title)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(samplesCmd)

	samplesCmd.Flags().String("show", "", "print the full description of a sample job")
}
