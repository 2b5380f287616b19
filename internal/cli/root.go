package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "contextpack",
	Short: "Contextpack - pack a repository into a single context document",
	Long: `Contextpack assembles a repository's source files into one structured
document sized for a large-language-model context window. Files under active
edit keep their full text; everything else can be compressed to structural
skeletons (declarations and signatures, bodies elided).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
