package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/encscan/encscan/pkg/detect"
	"github.com/encscan/encscan/pkg/scan"
)

func TestWriteAnalysis(t *testing.T) {
	a := detect.NewDetector().Analyze([]byte("r\xE9sum\xE9 and some plain text"))

	var buf bytes.Buffer
	WriteAnalysis(&buf, a)
	out := buf.String()

	for _, want := range []string{"TOP BYTE VALUES", "characters:", "double-byte characters:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteAnalysis_BOM(t *testing.T) {
	a := detect.NewDetector().Analyze([]byte{0xEF, 0xBB, 0xBF, 'h', 'i', '!'})

	var buf bytes.Buffer
	WriteAnalysis(&buf, a)
	if !strings.Contains(buf.String(), "byte-order mark") {
		t.Errorf("BOM note missing:\n%s", buf.String())
	}
}

func TestWriteScanReport(t *testing.T) {
	rep := &scan.Report{
		SessionID: "test-session",
		Root:      "/tmp/corpus",
		Elapsed:   12 * time.Millisecond,
		Results: []scan.Result{
			{Path: "/tmp/corpus/a.txt", Encoding: detect.EncodingASCII},
			{Path: "/tmp/corpus/b.bin", Encoding: detect.EncodingBinary},
		},
		Tally: map[detect.Encoding]int{
			detect.EncodingASCII:  1,
			detect.EncodingBinary: 1,
		},
	}

	var buf bytes.Buffer
	WriteScanReport(&buf, rep)
	out := buf.String()

	for _, want := range []string{"test-session", "a.txt", "ascii", "binary", "elapsed:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteLabel(t *testing.T) {
	var buf bytes.Buffer
	WriteLabel(&buf, detect.EncodingUnknown)
	if buf.String() != "unknown\n" {
		t.Errorf("WriteLabel = %q, want unknown newline", buf.String())
	}
}
