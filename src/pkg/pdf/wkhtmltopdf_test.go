package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeFilename(t *testing.T) {
	assert.Equal(t, "informe_OTRAS-001.pdf", SafeFilename("OTRAS-001"))
	assert.Equal(t, "informe_CONVE12.pdf", SafeFilename(`CONVE/1:2`))
	assert.Equal(t, "informe_ab.pdf", SafeFilename(` a*?"<>|b `))
}

func TestNewRendererMissingBinary(t *testing.T) {
	_, e := NewRenderer("definitely-not-wkhtmltopdf-xyz", t.TempDir(), "", "")
	assert.NotNil(t, e)
}
