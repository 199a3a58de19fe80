package diag

import (
	"strings"
	"testing"

	"github.com/badu/charfilter"
	"github.com/badu/charfilter/backend"
	"github.com/badu/charfilter/charset"
	"gotest.tools/v3/assert"
)

func TestReportListsLocaleAndKnownSections(t *testing.T) {
	r := charset.New(backend.NewChain(backend.DefaultPriority, nil))
	r.GetByName("ASCII", charfilter.T94)

	out := Report(r)
	assert.Assert(t, strings.Contains(out, "Known locale encodings:"))
	assert.Assert(t, strings.Contains(out, "Known charsets (not all may be available):"))
	assert.Assert(t, strings.Contains(out, "eucJP: GL -> G0, GR -> G1, G0: ASCII, G1: JIS X 0208"))
	assert.Assert(t, strings.Contains(out, "GBK (non-ISO-2022 encoding)"))
}
