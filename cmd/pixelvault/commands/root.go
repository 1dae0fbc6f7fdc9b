package commands

import (
	"github.com/spf13/cobra"

	"pixelvault/internal/app"
	"pixelvault/internal/services/passphrase"
)

var (
	cfg            app.Config
	envFile        string
	passphraseFlag string
	wire           *app.Wire
)

// Execute runs the CLI against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree with flags reset to their defaults.
func NewRootCmd() *cobra.Command {
	def := app.DefaultConfig()
	root := &cobra.Command{
		Use:          "pixelvault",
		Short:        "Hide encrypted messages in the pixels of lossless images",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := app.LoadEnv(envFile); err != nil {
				return err
			}
			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfg.LogLevel, "log-level", def.LogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&cfg.LogFormat, "log-format", def.LogFormat, "log format (text or json)")
	pf.StringVar(&cfg.Delimiter, "delimiter", "", `end-of-payload marker (default "#####")`)
	pf.StringVar(&cfg.Cipher, "cipher", "", "cipher suite for conceal: chacha20poly1305 or fernet (default chacha20poly1305)")
	pf.DurationVar(&cfg.TTL, "ttl", 0, "reject fernet tokens older than this on reveal (0 disables)")
	pf.BoolVar(&cfg.Compress, "zstd", false, "zstd-compress the message before encryption (both sides must agree)")
	pf.BoolVar(&cfg.Strict, "strict", false, "fail instead of warning when the passphrase is weak")
	pf.IntVar(&cfg.MinPassphraseLen, "min-passphrase-len", passphrase.DefaultMinLength, "minimum passphrase length for the strength policy")
	pf.StringVar(&envFile, "env-file", ".env", "optional file of KEY=value pairs loaded before running")
	pf.StringVarP(&passphraseFlag, "passphrase", "p", "", "passphrase (default $"+app.PassphraseEnv+" or prompt)")

	root.AddCommand(concealCmd(), revealCmd(), capacityCmd(), inspectCmd(), keyCmd())
	return root
}
