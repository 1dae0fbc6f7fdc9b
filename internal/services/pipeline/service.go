package pipeline

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"pixelvault/internal/crypto"
	"pixelvault/internal/domain"
	"pixelvault/internal/stego"
)

// Options configures a Service. Both ends of a channel must agree on
// Delimiter and Compress; Suite only matters when concealing because tokens
// identify their own suite.
type Options struct {
	Delimiter []byte        // defaults to domain.DefaultDelimiter
	Suite     crypto.Suite  // defaults to crypto.DefaultSuite()
	TTL       time.Duration // freshness window on reveal; zero disables
	Compress  bool          // zstd-compress plaintext before encryption
	Logger    logrus.FieldLogger
}

// Service composes the cipher with the LSB embedder and extractor.
//
// High-level flow:
//   - Conceal: derive key, (optionally compress), encrypt, frame the token
//     with the delimiter, embed the bitstream into a copy of the grid.
//   - Reveal: extract up to the delimiter, derive key, decrypt,
//     (optionally decompress).
//
// A Service is immutable after New and safe for concurrent use on distinct grids.
type Service struct {
	delim    []byte
	suite    crypto.Suite
	ttl      time.Duration
	compress bool
	log      logrus.FieldLogger
}

// New returns a pipeline Service configured by opts.
func New(opts Options) (*Service, error) {
	delim := opts.Delimiter
	if delim == nil {
		delim = domain.DefaultDelimiter
	}
	if len(delim) == 0 {
		return nil, errors.New("pipeline: delimiter must not be empty")
	}
	suite := opts.Suite
	if suite == nil {
		suite = crypto.DefaultSuite()
	}
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Service{
		delim:    append([]byte(nil), delim...),
		suite:    suite,
		ttl:      opts.TTL,
		compress: opts.Compress,
		log:      log,
	}, nil
}

// Conceal encrypts plaintext under passphrase and embeds it into a copy of grid.
//
// On any error the returned grid is nil and grid is unchanged; a payload that
// does not fit yields a *domain.CapacityError.
func (s *Service) Conceal(grid *domain.Grid, passphrase string, plaintext []byte) (*domain.Grid, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	key := crypto.DeriveKey(passphrase)
	defer key.Wipe()

	body := plaintext
	if s.compress {
		done := s.stage("compress")
		body = compress(plaintext)
		done(len(body))
	}

	done := s.stage("encrypt")
	token, err := crypto.Encrypt(key, body, s.suite)
	if err != nil {
		return nil, err
	}
	done(len(token))

	done = s.stage("embed")
	out, err := stego.EmbedBytes(grid, token, s.delim)
	if err != nil {
		return nil, err
	}
	done(stego.FramedBits(len(token), len(s.delim)) / 8)
	return out, nil
}

// Reveal extracts the framed token from grid and decrypts it.
//
// It fails with domain.ErrPayloadNotFound when no delimiter is present and
// with domain.ErrInvalidToken on a wrong passphrase, tampering, expiry, or a
// compression setting that disagrees with the sender's.
func (s *Service) Reveal(grid *domain.Grid, passphrase string) ([]byte, error) {
	done := s.stage("extract")
	token, found, err := stego.Extract(grid, s.delim)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrPayloadNotFound
	}
	done(len(token))

	key := crypto.DeriveKey(passphrase)
	defer key.Wipe()

	done = s.stage("decrypt")
	body, err := crypto.Decrypt(key, token, s.ttl)
	if err != nil {
		return nil, err
	}
	done(len(body))

	if !s.compress {
		return body, nil
	}
	done = s.stage("decompress")
	plaintext, err := decompress(body)
	if err != nil {
		// Authenticated but not a zstd frame: the sender did not compress.
		return nil, fmt.Errorf("%w: payload is not compressed: %v", domain.ErrInvalidToken, err)
	}
	done(len(plaintext))
	return plaintext, nil
}

// Plan reports the bits a plaintext of plaintextLen bytes would need in grid.
// With compression enabled the estimate assumes incompressible input.
func (s *Service) Plan(grid *domain.Grid, plaintextLen int) (domain.CapacityReport, error) {
	if err := grid.Validate(); err != nil {
		return domain.CapacityReport{}, err
	}
	if plaintextLen < 0 {
		return domain.CapacityReport{}, fmt.Errorf("negative plaintext length %d", plaintextLen)
	}
	n := plaintextLen
	if s.compress {
		n = compressBound(plaintextLen)
	}
	required := stego.FramedBits(s.suite.TokenLen(n), len(s.delim))
	capacity := stego.CapacityBits(grid)
	return domain.CapacityReport{
		Width:        grid.Width,
		Height:       grid.Height,
		CapacityBits: capacity,
		RequiredBits: required,
		Fits:         stego.Fits(required, capacity),
	}, nil
}

// MaxPlaintext returns the largest plaintext length that fits grid, or -1
// when not even an empty plaintext fits.
func (s *Service) MaxPlaintext(grid *domain.Grid) (int, error) {
	if err := grid.Validate(); err != nil {
		return 0, err
	}
	capacity := stego.CapacityBits(grid)
	fits := func(n int) bool {
		if s.compress {
			n = compressBound(n)
		}
		return stego.Fits(stego.FramedBits(s.suite.TokenLen(n), len(s.delim)), capacity)
	}
	if !fits(0) {
		return -1, nil
	}
	// TokenLen is monotonic, so binary search the boundary.
	lo, hi := 0, capacity/8
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if fits(mid) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo, nil
}

// Delimiter returns a copy of the configured delimiter.
func (s *Service) Delimiter() []byte { return append([]byte(nil), s.delim...) }

// stage logs the start of a step and returns a func that logs its completion.
func (s *Service) stage(name string) func(size int) {
	start := time.Now()
	s.log.WithField("stage", name).Debug("stage started")
	return func(size int) {
		s.log.WithFields(logrus.Fields{
			"stage":   name,
			"bytes":   size,
			"elapsed": time.Since(start),
		}).Debug("stage finished")
	}
}

// Compile-time assertion that Service implements domain.PipelineService.
var _ domain.PipelineService = (*Service)(nil)
