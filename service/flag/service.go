package flag

import (
	"fmt"
	"io"
	"strings"

	"github.com/elC0mpa/intra-logtime/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrHelp is returned when the user asked for help and the usage has already been printed
var ErrHelp = pflag.ErrHelp

func NewService(out io.Writer) *service {
	return &service{out: out}
}

func (s *service) GetParsedFlags(args []string) (model.Flags, error) {
	var flags model.Flags
	ran := false

	if args == nil {
		args = []string{}
	}

	cmd := s.newCommand(&flags, func() { ran = true })
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		return model.Flags{}, err
	}
	if !ran {
		return model.Flags{}, ErrHelp
	}

	return flags, nil
}

// Usage returns the usage block printed after argument errors
func (s *service) Usage() string {
	return s.newCommand(&model.Flags{}, func() {}).UsageString()
}

func (s *service) newCommand(flags *model.Flags, onRun func()) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logtime <login> [begin_date] [end_date]",
		Short: "Show how many hours a 42 student spent on campus",
		Long: "Fetch the daily logtime of a 42 intra login and compare it to the monthly target.\n" +
			"Dates are YYYY-MM-DD; begin defaults to the 28th that starts the current period, end defaults to now.",
		Args:          validateArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.Login = strings.TrimSpace(args[0])
			if len(args) > 1 {
				flags.Begin = args[1]
			}
			if len(args) > 2 {
				flags.End = args[2]
			}
			onRun()
			return nil
		},
	}
	cmd.SetOut(s.out)
	cmd.SetErr(s.out)
	cmd.CompletionOptions.DisableDefaultCmd = true

	bindFlags(cmd.Flags(), flags)

	return cmd
}

func bindFlags(fs *pflag.FlagSet, flags *model.Flags) {
	fs.BoolVarP(&flags.GUI, "gui", "g", false, "Show the result in a full-screen window")
	fs.BoolVar(&flags.Table, "table", false, "Also print a per-day table")
	fs.BoolVar(&flags.Chart, "chart", false, "Also draw a per-day bar chart")
	fs.BoolVar(&flags.NoAnimation, "no-animation", false, "Print the final progress bar without replaying it")
	fs.BoolVarP(&flags.Verbose, "verbose", "v", false, "Log every step to stderr")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return model.ErrMissingLogin
	}
	if len(args) > 3 {
		return fmt.Errorf("accepts at most 3 arguments, received %d", len(args))
	}
	return nil
}
