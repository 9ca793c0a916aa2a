package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/adrienfranto/ia-enquete-policie/internal/domain"
	"github.com/adrienfranto/ia-enquete-policie/internal/engine"
	"github.com/adrienfranto/ia-enquete-policie/internal/prolog"
	"github.com/adrienfranto/ia-enquete-policie/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type verdictOutput struct {
	Suspect   string   `json:"suspect" yaml:"suspect"`
	CrimeType string   `json:"crime_type" yaml:"crime_type"`
	Guilty    bool     `json:"guilty" yaml:"guilty"`
	Innocent  bool     `json:"innocent" yaml:"innocent"`
	Evidence  []string `json:"evidence" yaml:"evidence"`
	Engine    string   `json:"engine" yaml:"engine"`
}

type allGuiltyOutput struct {
	CrimeType      string   `json:"crime_type" yaml:"crime_type"`
	GuiltySuspects []string `json:"guilty_suspects" yaml:"guilty_suspects"`
}

func newGuiltyCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "guilty <suspect> <crime-type>",
		Short: "Evaluate whether a suspect is guilty of a crime type",
		Long: `Evaluate the guilt rule for one suspect and crime type and list the
evidence on file.

Example:
  investigate guilty john theft
  investigate guilty mary assassinat -o json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := newEvaluator(v)
			if err != nil {
				return err
			}

			suspect := domain.Suspect(service.Normalize(args[0]))
			crime := domain.ParseCrimeType(service.Normalize(args[1]))
			verdict, err := ev.Verdict(cmd.Context(), suspect, crime)
			if err != nil {
				return err
			}

			out := verdictOutput{
				Suspect:   string(verdict.Suspect),
				CrimeType: string(verdict.CrimeType),
				Guilty:    verdict.Guilty,
				Innocent:  verdict.Innocent,
				Evidence:  make([]string, len(verdict.Evidence)),
				Engine:    verdict.Engine,
			}
			for i, k := range verdict.Evidence {
				out.Evidence[i] = string(k)
			}

			return render(cmd.OutOrStdout(), v.GetString("output"), out, func(w io.Writer) {
				status := "not guilty"
				if out.Guilty {
					status = "GUILTY"
				}
				fmt.Fprintf(w, "%s / %s: %s\n", out.Suspect, out.CrimeType, status)
				if len(out.Evidence) == 0 {
					fmt.Fprintln(w, "evidence: none")
					return
				}
				fmt.Fprintf(w, "evidence: %s\n", strings.Join(out.Evidence, ", "))
			})
		},
	}
}

func newAllGuiltyCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "all-guilty <crime-type>",
		Short: "List every suspect proven guilty of a crime type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := newEvaluator(v)
			if err != nil {
				return err
			}

			crime := domain.ParseCrimeType(service.Normalize(args[0]))
			suspects, err := ev.GuiltySuspects(cmd.Context(), crime)
			if err != nil {
				return err
			}

			out := allGuiltyOutput{CrimeType: string(crime), GuiltySuspects: make([]string, len(suspects))}
			for i, s := range suspects {
				out.GuiltySuspects[i] = string(s)
			}

			return render(cmd.OutOrStdout(), v.GetString("output"), out, func(w io.Writer) {
				if len(out.GuiltySuspects) == 0 {
					fmt.Fprintf(w, "%s: no guilty suspects\n", out.CrimeType)
					return
				}
				fmt.Fprintf(w, "%s: %s\n", out.CrimeType, strings.Join(out.GuiltySuspects, ", "))
			})
		},
	}
}

func newProgramCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "program",
		Short: "Print the case file as a SWI-Prolog program",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			eng := engine.Default()
			fmt.Fprint(cmd.OutOrStdout(), prolog.Program(eng.KnowledgeBase(), eng.Rules()))
		},
	}
}
