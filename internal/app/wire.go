package app

import (
	"github.com/sirupsen/logrus"

	"pixelvault/internal/crypto"
	"pixelvault/internal/domain"
	"pixelvault/internal/services/passphrase"
	"pixelvault/internal/services/pipeline"
	"pixelvault/internal/store"
)

// Wire bundles the store, services and logger for the CLI.
type Wire struct {
	Config      Config
	Log         *logrus.Logger
	Images      *store.ImageFileStore
	Pipeline    *pipeline.Service
	Passphrases domain.PassphraseService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log, err := NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return newWire(cfg, log)
}

func newWire(cfg Config, log *logrus.Logger) (*Wire, error) {
	var suite crypto.Suite
	if cfg.Cipher != "" {
		s, err := crypto.SuiteByName(cfg.Cipher)
		if err != nil {
			return nil, err
		}
		suite = s
	}

	var delim []byte
	if cfg.Delimiter != "" {
		delim = []byte(cfg.Delimiter)
	}

	pipe, err := pipeline.New(pipeline.Options{
		Delimiter: delim,
		Suite:     suite,
		TTL:       cfg.TTL,
		Compress:  cfg.Compress,
		Logger:    log,
	})
	if err != nil {
		return nil, err
	}

	return &Wire{
		Config:      cfg,
		Log:         log,
		Images:      store.NewImageFileStore(),
		Pipeline:    pipe,
		Passphrases: passphrase.New(cfg.MinPassphraseLen),
	}, nil
}
