package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_NonPDFPassesThrough(t *testing.T) {
	s, err := New(Config{MaxPages: 5}, nil)
	require.NoError(t, err)

	doc := []byte("INT. DINER - DAY\nAlice sits alone.")
	frags, err := s.Split(doc)
	require.NoError(t, err)
	require.Len(t, frags, 1)
	assert.Equal(t, doc, frags[0])
}

func TestSplit_UnreadablePDFPassesThrough(t *testing.T) {
	s, err := New(Config{}, nil)
	require.NoError(t, err)

	// Carries the PDF magic but is not a parsable document.
	doc := []byte("%PDF-1.7 truncated garbage")
	frags, err := s.Split(doc)
	require.NoError(t, err)
	require.Len(t, frags, 1)
	assert.Equal(t, doc, frags[0])
}

func TestNew_Defaults(t *testing.T) {
	s, err := New(Config{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, s.maxPages)
}
