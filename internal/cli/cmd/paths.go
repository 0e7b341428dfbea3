package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/kursor/internal/cli/styles"
	"github.com/bnema/kursor/pkg/cursortheme"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the cursor theme search path",
	Long: `Print the ordered list of root directories searched for cursor themes,
highest precedence first. Roots that do not currently exist are shown
struck through; they are still searched on every load.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Println(styles.Title.Render("Cursor theme search path"))
		for i, dir := range cursortheme.SearchDirs() {
			line := styles.Path.Render(dir)
			if _, err := os.Stat(dir); err != nil {
				line = styles.Missing.Render(dir)
			}
			fmt.Printf("%s %s\n", styles.Muted.Render(fmt.Sprintf("%2d.", i+1)), line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}
