package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/kitreport/pkg/errors"
	"github.com/matzehuels/kitreport/pkg/observability"
	"github.com/matzehuels/kitreport/pkg/pipeline"
)

const sampleKits = "A1,Magazzino,PS-01,Guanti,4,31/12/2027,OK;A1,Magazzino,PS-02,Garze,2,N/D,QUARANTENA|B2,Ufficio,PS-09,Cerotti,10,25/10/2026,OK"

// chdir moves the test into a fresh directory, since the report is
// written to the working directory.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
	return dir
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	c := New(&stdout, &stderr)
	root := c.RootCommand()
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootCommandArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"none", nil},
		{"three", []string{"Mario", sampleKits, "Sede"}},
		{"seven", []string{"a", "b", "c", "d", "e", "f", "g"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := chdir(t)
			_, _, err := run(t, tt.args...)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Fatalf("Execute() error = %v, want %s", err, errors.ErrCodeInvalidInput)
			}
			if !strings.Contains(errors.UserMessage(err), "uso: kitreport <operatore>") {
				t.Errorf("usage message = %q", errors.UserMessage(err))
			}
			if _, err := os.Stat(filepath.Join(dir, pipeline.DefaultOutput)); !os.IsNotExist(err) {
				t.Error("report written despite usage error")
			}
		})
	}
}

func TestRootCommandGenerates(t *testing.T) {
	dir := chdir(t)
	stdout, _, err := run(t, "Mario Rossi", sampleKits, "Stabilimento Nord", "", "firma.png", "logo.png")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "Rapporto generato con successo: "+pipeline.DefaultOutput) {
		t.Errorf("stdout = %q", stdout)
	}
	data, err := os.ReadFile(filepath.Join(dir, pipeline.DefaultOutput))
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("report is not a PDF")
	}
}

func TestRootCommandVerbosePreview(t *testing.T) {
	defer observability.Reset()
	dir := chdir(t)

	_, stderr, err := run(t, "-v", "--preview", "--date", "19/10/2026", "Mario Rossi", sampleKits, "Sede", "Rev.06")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "rapporto_cassette-p1.png")); err != nil {
		t.Errorf("preview missing: %v", err)
	}
	if !strings.Contains(stderr, "render finished") {
		t.Errorf("verbose log lacks stage events: %q", stderr)
	}
	if _, ok := observability.Pipeline().(logHooks); !ok {
		t.Error("verbose mode did not register log hooks")
	}
}

func TestRootCommandBadDate(t *testing.T) {
	chdir(t)
	_, _, err := run(t, "--date", "2026-10-19", "Mario", sampleKits, "Sede", "Rev")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Execute() error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestBuildOptions(t *testing.T) {
	cfg := Config{Organization: "ACME Spa", DefaultRevision: "Rev.09", Preview: PreviewConfig{Scale: 2}}

	opts, err := buildOptions([]string{"Mario", sampleKits, "Sede", " "}, flags{date: "01/03/2026", preview: true}, cfg)
	if err != nil {
		t.Fatalf("buildOptions() error = %v", err)
	}
	if opts.Revision != "Rev.09" || opts.Organization != "ACME Spa" || opts.PreviewScale != 2 || !opts.Preview {
		t.Errorf("buildOptions() = %+v", opts)
	}
	if opts.SignaturePath != "" || opts.LogoPath != "" {
		t.Errorf("image paths = %q %q, want empty", opts.SignaturePath, opts.LogoPath)
	}
	if y, m, d := opts.Date.Date(); y != 2026 || m != time.March || d != 1 {
		t.Errorf("Date = %v", opts.Date)
	}

	opts, _ = buildOptions([]string{"Mario", sampleKits, "Sede", "Rev.01", "f.png", "l.png"}, flags{}, Config{})
	if opts.Revision != "Rev.01" || opts.SignaturePath != "f.png" || opts.LogoPath != "l.png" {
		t.Errorf("buildOptions() = %+v", opts)
	}
	if !opts.Date.IsZero() {
		t.Error("Date set without --date")
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	inner := errors.New(errors.ErrCodeLayoutOverflow, "section needs 900.0pt")
	PrintError(&buf, errors.Wrap(errors.ErrCodeRender, inner, "kit A"))

	out := buf.String()
	for _, want := range []string{"kit A", "RENDER: kit A", "LAYOUT_OVERFLOW: section needs 900.0pt"} {
		if !strings.Contains(out, want) {
			t.Errorf("PrintError() output %q lacks %q", out, want)
		}
	}
}

func TestRootCommandVersion(t *testing.T) {
	stdout, _, err := run(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.HasPrefix(stdout, "kitreport ") {
		t.Errorf("version output = %q, want kitreport prefix", stdout)
	}
}
