package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tokenform/api/internal/config"
	"tokenform/api/internal/form"
	"tokenform/api/internal/tui"
)

var errColor = color.New(color.FgRed)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	baseURL    string
}

func (o *options) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.baseURL != "" {
		cfg.Client.BaseURL = o.baseURL
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "form",
		Short:         "Submit JSON to the token classifier and show selected fields",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&opts.baseURL, "url", "", "classifier base URL (overrides client.base_url)")

	root.AddCommand(newSubmitCmd(opts), newStatusCmd(opts), newTUICmd(opts))
	return root
}

func newSubmitCmd(opts *options) *cobra.Command {
	var selected []string
	cmd := &cobra.Command{
		Use:   "submit [json]",
		Short: "Classify a JSON object like {\"data\":[\"a\",\"1\"]}; reads stdin without an argument",
		Example: `  form submit '{"data":["a","b","1","334","A","z"]}' --select numbers --select highest
  echo '{"data":["A","B"]}' | form submit -s Alphabets`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := form.ParseFields(selected)
			if err != nil {
				return err
			}
			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			s := form.NewSession(form.NewClient(cfg.Client.BaseURL, cfg.Client.Timeout))
			s.SetSelection(form.SelectionOf(fields...))
			return submit(cmd.Context(), cmd.OutOrStdout(), s, text)
		},
	}
	cmd.Flags().StringSliceVarP(&selected, "select", "s", nil,
		"fields to show: Alphabets, Numbers, \"Highest Lowercase Alphabet\" (repeatable)")
	return cmd
}

func submit(ctx context.Context, out io.Writer, s *form.Session, text string) error {
	if _, err := s.SubmitText(ctx, text); err != nil {
		return fmt.Errorf("%s: %w", form.UserMessage, err)
	}
	fmt.Fprintln(out, "Filtered Response:")
	fmt.Fprintln(out, s.View())
	return nil
}

func newStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Call GET /bfhl",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			st, err := form.NewClient(cfg.Client.BaseURL, cfg.Client.Timeout).Status(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "operation_code=%d is_success=%t user_id=%s\n",
				st.OperationCode, st.IsSuccess, st.UserID)
			return nil
		},
	}
}

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive form in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			client := form.NewClient(cfg.Client.BaseURL, cfg.Client.Timeout)
			return tui.Run(form.NewSession(client), cfg.Client.Timeout)
		},
	}
}

func readInput(in io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	if strings.TrimSpace(string(b)) == "" {
		return "", fmt.Errorf("%s: empty input", form.UserMessage)
	}
	return string(b), nil
}
