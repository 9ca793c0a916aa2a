package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/adrienfranto/ia-enquete-policie/internal/buildconfig"
	"github.com/adrienfranto/ia-enquete-policie/internal/domain"
	"github.com/adrienfranto/ia-enquete-policie/internal/engine"
	"github.com/adrienfranto/ia-enquete-policie/internal/evaluator"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Each call gets its own viper
// instance so commands can be run repeatedly in one process.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "investigate",
		Short: "Query the police investigation case file",
		Long: `investigate answers guilt queries against the compiled-in case file.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (ENQUETE_*)
3. Config file (--config)
4. Defaults`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v.SetEnvPrefix("ENQUETE")
			v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			v.AutomaticEnv()

			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("read config %s: %w", cfgFile, err)
				}
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml)")
	flags.String("evaluator", evaluator.ProviderEmbedded, "evaluator (embedded, prolog)")
	flags.String("prolog-binary", "swipl", "SWI-Prolog executable")
	flags.Duration("prolog-timeout", 10*time.Second, "timeout for one Prolog run")
	flags.StringP("output", "o", "text", "output format (text, json, yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	_ = v.BindPFlags(flags)

	rootCmd.AddCommand(
		newGuiltyCmd(v),
		newAllGuiltyCmd(v),
		newProgramCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "investigate %s\n", buildconfig.String())
		},
	}
}

func newEvaluator(v *viper.Viper) (domain.Evaluator, error) {
	logger := zap.NewNop()
	if v.GetBool("verbose") {
		l, err := zap.NewDevelopment()
		if err == nil {
			logger = l
		}
	}
	return evaluator.NewWithEngine(v.GetString("evaluator"), engine.Default(), evaluator.Options{
		PrologBinary:  v.GetString("prolog-binary"),
		PrologTimeout: v.GetDuration("prolog-timeout"),
	}, logger)
}

// render writes value in the requested format; text is produced by the
// caller-supplied function.
func render(w io.Writer, format string, value any, text func(io.Writer)) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(value)
	case "text", "":
		text(w)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s (valid options: text, json, yaml)", format)
	}
}
