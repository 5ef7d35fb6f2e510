package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kubescape/go-logger"
	"github.com/kubescape/procidentity/pkg/config"
	"github.com/kubescape/procidentity/pkg/containercontext"
	"github.com/kubescape/procidentity/pkg/containerid"
	"github.com/kubescape/procidentity/pkg/processidentity"
	"github.com/kubescape/procidentity/pkg/procfsreader"
	"github.com/spf13/cobra"
)

const defaultConfigDir = "/etc/config"

type rootOptions struct {
	configDir string
	procRoot  string
	logLevel  string

	cfg config.Config
}

func NewRoot(version string) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "procidentity",
		Short:         "Derive profile keys and container context for processes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load()
		},
	}
	cmd.Version = version

	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", getenvDefault("CONFIG_DIR", defaultConfigDir), "directory holding config.json")
	cmd.PersistentFlags().StringVar(&opts.procRoot, "proc-root", "", "proc filesystem mount point (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides config)")

	cmd.AddCommand(newKeyCmd(opts))
	cmd.AddCommand(newContextCmd(opts))
	cmd.AddCommand(newIdentifyCmd(opts))

	return cmd
}

func (o *rootOptions) load() error {
	cfg, err := config.LoadConfig(o.configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if o.procRoot != "" {
		cfg.ProcRoot = o.procRoot
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if err := logger.L().SetLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("set log level %q: %w", cfg.LogLevel, err)
	}
	o.cfg = cfg
	return nil
}

func (o *rootOptions) contextResolver() *containercontext.Resolver {
	reader := procfsreader.NewProcFsReader(o.cfg.ProcRoot)
	return containercontext.CreateResolver(reader, containerid.NewIdentifier(reader, o.cfg.InitPID), o.cfg.Workers)
}

func (o *rootOptions) identityResolver() *processidentity.Resolver {
	return processidentity.NewResolver(o.cfg.ProcRoot, o.contextResolver())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
