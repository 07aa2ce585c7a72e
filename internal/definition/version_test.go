package definition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comalice/nfa/internal/definition"
)

func TestFingerprintPrefersVersion(t *testing.T) {
	d := &definition.Definition{ID: "x", Version: "v7"}
	assert.Equal(t, "v7", d.Fingerprint())
}

func TestFingerprintIsContentHash(t *testing.T) {
	a := &definition.Definition{
		ID:          "x",
		Initial:     []string{"a"},
		Transitions: []definition.TransitionDef{{From: "a", Event: "e", To: []string{"b"}}},
	}
	b := &definition.Definition{
		ID:          "x",
		Initial:     []string{"a"},
		Transitions: []definition.TransitionDef{{From: "a", Event: "e", To: []string{"b"}}},
	}

	assert.Len(t, a.Fingerprint(), 16)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	b.Transitions[0].To = append(b.Transitions[0].To, "c")
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}
