package pipeline_test

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"pixelvault/internal/crypto"
	"pixelvault/internal/domain"
	"pixelvault/internal/services/pipeline"
)

const scenarioPassphrase = "KoltsovaYelyzaveta"

func newService(t *testing.T, opts pipeline.Options) *pipeline.Service {
	t.Helper()
	s, err := pipeline.New(opts)
	if err != nil {
		t.Fatalf("pipeline.New: %v", err)
	}
	return s
}

func coverGrid(t *testing.T, w, h int) *domain.Grid {
	t.Helper()
	g, err := domain.NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	rand.New(rand.NewSource(int64(w<<16 | h))).Read(g.Pix)
	return g
}

func TestConcealReveal_RoundTrip(t *testing.T) {
	for _, suite := range []crypto.Suite{crypto.ChaChaSuite{}, crypto.FernetSuite{}} {
		svc := newService(t, pipeline.Options{Suite: suite})
		cover := coverGrid(t, 64, 64)
		for _, pt := range [][]byte{{}, []byte("HI"), bytes.Repeat([]byte("secret "), 140)} {
			stego, err := svc.Conceal(cover, "pw", pt)
			if err != nil {
				t.Fatalf("%s: Conceal(%d bytes): %v", suite.Name(), len(pt), err)
			}
			got, err := svc.Reveal(stego, "pw")
			if err != nil {
				t.Fatalf("%s: Reveal: %v", suite.Name(), err)
			}
			if !bytes.Equal(got, pt) {
				t.Fatalf("%s: want %q, got %q", suite.Name(), pt, got)
			}
		}
	}
}

func TestScenario_TenByTen(t *testing.T) {
	svc := newService(t, pipeline.Options{})
	cover := coverGrid(t, 10, 10)

	report, err := svc.Plan(cover, 2)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if report.CapacityBits != 300 || report.RequiredBits != 288 || !report.Fits {
		t.Fatalf("unexpected plan %+v", report)
	}

	stego, err := svc.Conceal(cover, scenarioPassphrase, []byte("HI"))
	if err != nil {
		t.Fatalf("Conceal: %v", err)
	}
	got, err := svc.Reveal(stego, scenarioPassphrase)
	if err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if string(got) != "HI" {
		t.Fatalf("want %q, got %q", "HI", got)
	}
	// 288 bits used: the last 12 channels must be untouched.
	if !bytes.Equal(stego.Pix[288:], cover.Pix[288:]) {
		t.Fatal("channels past the payload were modified")
	}
}

func TestScenario_OnePixel(t *testing.T) {
	svc := newService(t, pipeline.Options{})
	cover := coverGrid(t, 1, 1)
	orig := cover.Clone()

	out, err := svc.Conceal(cover, scenarioPassphrase, []byte("x"))
	if !errors.Is(err, domain.ErrCapacityExceeded) {
		t.Fatalf("want ErrCapacityExceeded, got %v", err)
	}
	if out != nil {
		t.Fatal("grid returned on failure")
	}
	if !bytes.Equal(cover.Pix, orig.Pix) {
		t.Fatal("cover mutated on failure")
	}
}

func TestReveal_WrongPassphrase(t *testing.T) {
	for _, suite := range []crypto.Suite{crypto.ChaChaSuite{}, crypto.FernetSuite{}} {
		svc := newService(t, pipeline.Options{Suite: suite})
		stego, err := svc.Conceal(coverGrid(t, 32, 32), "pw1", []byte("payload"))
		if err != nil {
			t.Fatalf("%s: Conceal: %v", suite.Name(), err)
		}
		got, err := svc.Reveal(stego, "pw2")
		if !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("%s: want ErrInvalidToken, got %v", suite.Name(), err)
		}
		if got != nil {
			t.Fatalf("%s: plaintext returned on failure", suite.Name())
		}
	}
}

func TestReveal_NoPayload(t *testing.T) {
	svc := newService(t, pipeline.Options{})
	blank, err := domain.NewGrid(40, 40)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for _, g := range []*domain.Grid{blank, coverGrid(t, 40, 40)} {
		if _, err := svc.Reveal(g, "pw"); !errors.Is(err, domain.ErrPayloadNotFound) {
			t.Fatalf("want ErrPayloadNotFound, got %v", err)
		}
	}
}

func TestReveal_CorruptedLSB(t *testing.T) {
	svc := newService(t, pipeline.Options{})
	stego, err := svc.Conceal(coverGrid(t, 20, 20), "pw", []byte("payload"))
	if err != nil {
		t.Fatalf("Conceal: %v", err)
	}
	stego.Pix[40] ^= 1 // inside the nonce
	if _, err := svc.Reveal(stego, "pw"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestMaxPlaintext_Boundary(t *testing.T) {
	svc := newService(t, pipeline.Options{})
	cover := coverGrid(t, 10, 10)

	maxLen, err := svc.MaxPlaintext(cover)
	if err != nil {
		t.Fatalf("MaxPlaintext: %v", err)
	}
	if maxLen != 3 {
		t.Fatalf("want 3, got %d", maxLen)
	}
	if _, err := svc.Conceal(cover, "pw", []byte("abc")); err != nil {
		t.Fatalf("Conceal at max: %v", err)
	}
	if _, err := svc.Conceal(cover, "pw", []byte("abcd")); !errors.Is(err, domain.ErrCapacityExceeded) {
		t.Fatalf("want ErrCapacityExceeded past max, got %v", err)
	}

	tiny := coverGrid(t, 2, 2)
	if n, _ := svc.MaxPlaintext(tiny); n != -1 {
		t.Fatalf("want -1 for a 2x2 grid, got %d", n)
	}
}

func TestCompress_FitsRepetitivePayload(t *testing.T) {
	plain := newService(t, pipeline.Options{})
	packed := newService(t, pipeline.Options{Compress: true})
	cover := coverGrid(t, 40, 40)
	pt := bytes.Repeat([]byte("a"), 2000)

	if _, err := plain.Conceal(cover, "pw", pt); !errors.Is(err, domain.ErrCapacityExceeded) {
		t.Fatalf("uncompressed: want ErrCapacityExceeded, got %v", err)
	}
	stego, err := packed.Conceal(cover, "pw", pt)
	if err != nil {
		t.Fatalf("compressed Conceal: %v", err)
	}
	got, err := packed.Reveal(stego, "pw")
	if err != nil {
		t.Fatalf("compressed Reveal: %v", err)
	}
	if !bytes.Equal(got, pt) {
		t.Fatal("compressed round trip mismatch")
	}

	empty, err := packed.Conceal(cover, "pw", nil)
	if err != nil {
		t.Fatalf("compressed Conceal(empty): %v", err)
	}
	if got, err := packed.Reveal(empty, "pw"); err != nil || len(got) != 0 {
		t.Fatalf("compressed empty round trip: got %q, %v", got, err)
	}
}

func TestCustomDelimiter(t *testing.T) {
	svc := newService(t, pipeline.Options{Delimiter: []byte("--END--")})
	stego, err := svc.Conceal(coverGrid(t, 20, 20), "pw", []byte("hi"))
	if err != nil {
		t.Fatalf("Conceal: %v", err)
	}
	if _, err := newService(t, pipeline.Options{}).Reveal(stego, "pw"); !errors.Is(err, domain.ErrPayloadNotFound) {
		t.Fatalf("default delimiter: want ErrPayloadNotFound, got %v", err)
	}
	got, err := svc.Reveal(stego, "pw")
	if err != nil || string(got) != "hi" {
		t.Fatalf("want %q, got %q (%v)", "hi", got, err)
	}
	if !bytes.Equal(svc.Delimiter(), []byte("--END--")) {
		t.Fatalf("unexpected delimiter %q", svc.Delimiter())
	}
}

func TestNew_EmptyDelimiter(t *testing.T) {
	if _, err := pipeline.New(pipeline.Options{Delimiter: []byte{}}); err == nil {
		t.Fatal("expected error for empty delimiter")
	}
}

func TestMalformedGrid(t *testing.T) {
	svc := newService(t, pipeline.Options{})
	bad := &domain.Grid{Width: 4, Height: 4, Pix: make([]uint8, 5)}
	if _, err := svc.Conceal(bad, "pw", []byte("x")); !errors.Is(err, domain.ErrMalformedInput) {
		t.Fatalf("Conceal: want ErrMalformedInput, got %v", err)
	}
	if _, err := svc.Reveal(bad, "pw"); !errors.Is(err, domain.ErrMalformedInput) {
		t.Fatalf("Reveal: want ErrMalformedInput, got %v", err)
	}
	if _, err := svc.Plan(bad, 1); !errors.Is(err, domain.ErrMalformedInput) {
		t.Fatalf("Plan: want ErrMalformedInput, got %v", err)
	}
}

func TestStageLogging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	svc := newService(t, pipeline.Options{Logger: logger})

	stego, err := svc.Conceal(coverGrid(t, 20, 20), "pw", []byte("hi"))
	if err != nil {
		t.Fatalf("Conceal: %v", err)
	}
	if _, err := svc.Reveal(stego, "pw"); err != nil {
		t.Fatalf("Reveal: %v", err)
	}

	finished := map[string]bool{}
	for _, e := range hook.AllEntries() {
		if e.Message == "stage finished" {
			finished[e.Data["stage"].(string)] = true
		}
	}
	for _, stage := range []string{"encrypt", "embed", "extract", "decrypt"} {
		if !finished[stage] {
			t.Fatalf("missing %q stage log; have %v", stage, finished)
		}
	}
}

func TestReveal_CompressionMismatch(t *testing.T) {
	plain := newService(t, pipeline.Options{})
	packed := newService(t, pipeline.Options{Compress: true})

	stego, err := plain.Conceal(coverGrid(t, 20, 20), "pw", []byte("not compressed"))
	if err != nil {
		t.Fatalf("Conceal: %v", err)
	}
	got, err := packed.Reveal(stego, "pw")
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
	if got != nil {
		t.Fatalf("plaintext returned on failure: %q", got)
	}
}
