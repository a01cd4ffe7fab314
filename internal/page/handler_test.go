package page

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func maskPassword(ref string) string {
	return strings.Replace(ref, ":s3cret@", ":xxxxx@", 1)
}

func TestHandler_PathRef(t *testing.T) {
	const configured = "postgres://pets:s3cret@db/care?table=pet_care"

	h := NewHandler(Options{AllowPathInput: true, Redact: maskPassword})

	assert.Equal(t, configured, h.pathRef("", configured))
	assert.Equal(t, configured, h.pathRef("  ", configured))
	assert.Equal(t, configured, h.pathRef(maskPassword(configured), configured), "redacted ref maps back to the configured one")
	assert.Equal(t, "other.csv", h.pathRef(" other.csv ", configured))

	off := NewHandler(Options{Redact: maskPassword})
	assert.Equal(t, configured, off.pathRef("other.csv", configured), "overrides ignored without path input")
}

func TestSelectorFor_UsesViewRefs(t *testing.T) {
	v := View{
		PathInput: true,
		Care:      CarePanel{Ref: maskPassword("postgres://pets:s3cret@db/care?table=pet_care")},
		Facts:     FactsPanel{Ref: "facts.csv"},
	}

	f := selectorFor(ParamFact, v)
	assert.NotContains(t, f.Keep[ParamCarePath], "s3cret")
	assert.Equal(t, "postgres://pets:xxxxx@db/care?table=pet_care", f.Keep[ParamCarePath])
}
