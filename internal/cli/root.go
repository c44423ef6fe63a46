package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ecpc",
	Short: "ecpc - Europarl transcripts to ECPC XML",
	Long: `ecpc converts raw European Parliament debate transcripts, one corpus
per language, into ECPC XML documents.

Each transcript is split into interventions. Speaker names, political
group affiliations and spoken languages are recovered from the turn
attribution lines and normalized against closed vocabularies. Languages
that cannot be read from a turn are looked up in the same session's
transcript in the other language corpora.

Anything that cannot be resolved is written as UNKNOWN, never guessed.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for ecpc.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("ecpc v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.ecpc/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.ecpc")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// ECPC_CORPUS_LANGUAGE overrides corpus.language, and so on
	viper.SetEnvPrefix("ECPC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
