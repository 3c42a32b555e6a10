package fancy

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/fancy/internal/version"
	"github.com/arthur-debert/fancy/pkg/catalog"
	"github.com/arthur-debert/fancy/pkg/codegen"
	"github.com/arthur-debert/fancy/pkg/config"
	"github.com/arthur-debert/fancy/pkg/diag"
	"github.com/arthur-debert/fancy/pkg/errors"
	"github.com/arthur-debert/fancy/pkg/logging"
	"github.com/arthur-debert/fancy/pkg/markup"
	"github.com/arthur-debert/fancy/pkg/reference"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// settings is shared by the root command and its subcommands
type settings struct {
	verbosity  int
	color      string
	configFile string

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	s := &settings{}

	rootCmd := &cobra.Command{
		Use:     "fancy",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.String(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&s.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&s.color, "color", "", MsgFlagColor)
	rootCmd.PersistentFlags().StringVar(&s.configFile, "config", "", MsgFlagConfig)
	_ = rootCmd.RegisterFlagCompletionFunc("color", cobra.FixedCompletions(
		[]string{config.ColorAuto, config.ColorAlways, config.ColorNever}, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.AddGroup(&cobra.Group{ID: "markup", Title: "MARKUP:"})
	rootCmd.AddGroup(&cobra.Group{ID: "catalog", Title: "CATALOGS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRenderCmd(s))
	rootCmd.AddCommand(newExpandCmd(s))
	rootCmd.AddCommand(newGenCmd(s))
	rootCmd.AddCommand(newCheckCmd(s))
	rootCmd.AddCommand(newSyntaxCmd(s))
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// load reads configuration and sets up logging before any subcommand runs
func (s *settings) load(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("color") {
		overrides["render.color"] = s.color
	}

	cfg, err := config.Load(config.Options{UserFile: s.configFile, Overrides: overrides})
	if err != nil {
		return err
	}
	s.cfg = cfg

	logging.Setup(logging.Options{
		Verbosity: s.verbosity,
		File:      cfg.Log.File,
		Console:   cmd.ErrOrStderr(),
	})
	log.Debug().Str("command", cmd.Name()).Str("color", cfg.Render.Color).Msg("Command started")
	return nil
}

// printer returns the diagnostics printer for the command's stderr
func (s *settings) printer(cmd *cobra.Command) *diag.Printer {
	return diag.New(diagRenderer(s.cfg.Render.Color, cmd.ErrOrStderr()))
}

// reportGrammar prints a diagnostic for markup errors and returns err as is
func (s *settings) reportGrammar(cmd *cobra.Command, source string, err error) error {
	if errors.IsGrammarError(err) {
		fmt.Fprint(cmd.ErrOrStderr(), s.printer(cmd).Render(source, err))
	}
	return err
}

func newRenderCmd(s *settings) *cobra.Command {
	var noNewline bool

	cmd := &cobra.Command{
		Use:     "render [text...]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "markup",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			colorize := markup.Colorize
			if !colorEnabled(s.cfg.Render.Color, out) {
				colorize = markup.Strip
			}

			newline := s.cfg.Render.Newline && !noNewline
			emit := func(source string) error {
				text, err := colorize(source)
				if err != nil {
					return s.reportGrammar(cmd, source, err)
				}
				if newline {
					text += "\n"
				}
				_, err = io.WriteString(out, text)
				return err
			}

			if len(args) > 0 {
				return emit(strings.Join(args, " "))
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if err := emit(scanner.Text()); err != nil {
					return err
				}
			}
			if err := scanner.Err(); err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, MsgErrReadInput)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, MsgFlagNoNewline)
	return cmd
}

func newExpandCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:     "expand <source>",
		Short:   MsgExpandShort,
		Long:    MsgExpandLong,
		Example: MsgExpandExample,
		GroupID: "markup",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := markup.Expand(args[0])
			if err != nil {
				return s.reportGrammar(cmd, args[0], err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), exp.GoExpr())
			return err
		},
	}
}

// catalogArgs completes catalog file names
func catalogArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"toml", "yaml", "yml", "xml"}, cobra.ShellCompDirectiveFilterFileExt
}

// loadCatalogs loads the given catalogs, or gen.catalogs when none are given
func (s *settings) loadCatalogs(paths []string) ([]*catalog.Catalog, error) {
	if len(paths) == 0 {
		paths = s.cfg.Gen.Catalogs
	}
	if len(paths) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, MsgErrNoCatalogs)
	}
	return catalog.LoadAll(paths)
}

// reportProblems prints every problem of every catalog and returns an error
// when there was at least one
func (s *settings) reportProblems(cmd *cobra.Command, catalogs []*catalog.Catalog) error {
	w := cmd.ErrOrStderr()
	p := s.printer(cmd)

	total, failed := 0, 0
	for _, cat := range catalogs {
		problems := cat.Check()
		if len(problems) == 0 {
			continue
		}
		failed++
		total += len(problems)

		for _, prob := range problems {
			if prob.Message != "" {
				fmt.Fprintf(w, MsgProblemHeader+"\n", cat.Path, prob.Message)
			} else {
				fmt.Fprintln(w, cat.Path)
			}
			if errors.IsGrammarError(prob.Err) {
				fmt.Fprint(w, p.Render(prob.Source, prob.Err))
			} else {
				fmt.Fprint(w, p.Render("", prob.Err))
			}
		}
	}

	if total > 0 {
		return errors.Newf(errors.ErrCatalogInvalid, MsgErrProblems, total, failed)
	}
	return nil
}

func newGenCmd(s *settings) *cobra.Command {
	var opts codegen.Options

	cmd := &cobra.Command{
		Use:               "gen [catalog...]",
		Short:             MsgGenShort,
		Long:              MsgGenLong,
		Example:           MsgGenExample,
		GroupID:           "catalog",
		ValidArgsFunction: catalogArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("package") {
				opts.Package = s.cfg.Gen.Package
			}
			if !cmd.Flags().Changed("output") {
				opts.Output = s.cfg.Gen.Output
			}
			if !cmd.Flags().Changed("dir") {
				opts.Dir = s.cfg.Gen.Dir
			}

			catalogs, err := s.loadCatalogs(args)
			if err != nil {
				return err
			}
			if err := s.reportProblems(cmd, catalogs); err != nil {
				return err
			}

			done := logging.LogOperationStart(logging.GetLogger("cmd.gen"), "generate")
			paths, err := codegen.GenerateFiles(cmd.Context(), catalogs, opts)
			if err != nil {
				return err
			}
			done()

			success := pterm.Success.WithWriter(cmd.OutOrStdout())
			for _, path := range paths {
				success.Printfln(MsgGenerated, path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().StringVarP(&opts.Package, "package", "p", "", MsgFlagPackage)
	cmd.Flags().StringVar(&opts.Dir, "dir", "", MsgFlagDir)
	return cmd
}

func newCheckCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:               "check [catalog...]",
		Short:             MsgCheckShort,
		Long:              MsgCheckLong,
		GroupID:           "catalog",
		ValidArgsFunction: catalogArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogs, err := s.loadCatalogs(args)
			if err != nil {
				return err
			}
			if err := s.reportProblems(cmd, catalogs); err != nil {
				return err
			}

			success := pterm.Success.WithWriter(cmd.OutOrStdout())
			for _, cat := range catalogs {
				success.Printfln(MsgCatalogOK, cat.Path, len(cat.Messages))
			}
			return nil
		},
	}
}

func newSyntaxCmd(s *settings) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:     "syntax",
		Short:   MsgSyntaxShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := reference.NewRenderer()
			r.Width = width
			if !colorEnabled(s.cfg.Render.Color, cmd.OutOrStdout()) {
				r.Style = "notty"
			}
			_, err := io.WriteString(cmd.OutOrStdout(), r.Render())
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, MsgFlagWidth)
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
