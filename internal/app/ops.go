package app

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"pixelvault/internal/crypto"
	"pixelvault/internal/domain"
	"pixelvault/internal/stego"
	"pixelvault/internal/store"
)

// CheckPassphrase applies the passphrase policy. Violations are logged as a
// warning and only returned when Config.Strict is set.
func (w *Wire) CheckPassphrase(passphrase string) error {
	err := w.Passphrases.Check(passphrase)
	if err == nil {
		return nil
	}
	if w.Config.Strict {
		return err
	}
	w.Log.WithError(err).Warn("passphrase does not meet the strength policy")
	return nil
}

// ConcealFile hides plaintext in the cover image at coverPath and writes the
// result to outPath, whose extension must name a lossless format.
func (w *Wire) ConcealFile(coverPath, outPath, passphrase string, plaintext []byte) (domain.CapacityReport, error) {
	// Reject the output format before decoding or encrypting anything.
	if _, err := store.FormatForPath(outPath); err != nil {
		return domain.CapacityReport{}, err
	}
	cover, format, err := w.Images.LoadGrid(coverPath)
	if err != nil {
		return domain.CapacityReport{}, err
	}
	if !format.Lossless() {
		w.Log.WithFields(logrus.Fields{"cover": coverPath, "format": format}).
			Info("lossy cover; only the decoded pixels are kept")
	}

	out, err := w.Pipeline.Conceal(cover, passphrase, plaintext)
	if err != nil {
		return domain.CapacityReport{}, err
	}
	if err := w.Images.SaveGrid(outPath, out); err != nil {
		return domain.CapacityReport{}, err
	}

	report, err := w.Pipeline.Plan(cover, len(plaintext))
	if err != nil {
		return domain.CapacityReport{}, err
	}
	w.Log.WithFields(logrus.Fields{
		"out":      outPath,
		"bytes":    len(plaintext),
		"capacity": report.CapacityBits,
	}).Info("payload concealed")
	return report, nil
}

// RevealFile extracts and decrypts the payload hidden in the image at path.
func (w *Wire) RevealFile(path, passphrase string) ([]byte, error) {
	grid, _, err := w.Images.LoadLossless(path)
	if err != nil {
		return nil, err
	}
	return w.Pipeline.Reveal(grid, passphrase)
}

// Capacity reports whether a plaintext of n bytes fits the image at path and
// the largest plaintext that would.
func (w *Wire) Capacity(path string, n int) (domain.CapacityReport, int, error) {
	grid, _, err := w.Images.LoadGrid(path)
	if err != nil {
		return domain.CapacityReport{}, 0, err
	}
	report, err := w.Pipeline.Plan(grid, n)
	if err != nil {
		return domain.CapacityReport{}, 0, err
	}
	maxLen, err := w.Pipeline.MaxPlaintext(grid)
	if err != nil {
		return domain.CapacityReport{}, 0, err
	}
	return report, maxLen, nil
}

// Inspect summarises the image at path without a passphrase: its format,
// size, capacity and whether a delimited payload is present.
func (w *Wire) Inspect(path string) (domain.InspectReport, error) {
	grid, format, err := w.Images.LoadGrid(path)
	if err != nil {
		return domain.InspectReport{}, err
	}
	report := domain.InspectReport{
		Path:         path,
		Format:       format,
		Lossless:     format.Lossless(),
		Width:        grid.Width,
		Height:       grid.Height,
		CapacityBits: stego.CapacityBits(grid),
	}
	payload, found, err := stego.Extract(grid, w.Pipeline.Delimiter())
	if err != nil {
		return domain.InspectReport{}, fmt.Errorf("inspect %s: %w", path, err)
	}
	if found {
		report.Delimited = true
		report.PayloadBytes = len(payload)
		if s := crypto.Detect(payload); s != nil {
			report.Suite = s.Name()
		}
	}
	return report, nil
}

// KeyInfo returns the encoded key derived from passphrase and its fingerprint.
func KeyInfo(passphrase string) (string, domain.Fingerprint) {
	k := crypto.DeriveKey(passphrase)
	defer k.Wipe()
	return k.Encode(), crypto.Fingerprint(k)
}
