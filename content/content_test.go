package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedSite(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Renato Alves", s.About.Name)
	assert.Len(t, s.About.Paragraphs, 3)
	assert.Len(t, s.Projects, 4)
	assert.Len(t, s.Alternate, 3)
	assert.Len(t, s.Footer.Social, 4)
	assert.Equal(t, "Entre em contato", s.Contact.Badge)

	assert.True(t, s.Projects[0].Completed())
	assert.True(t, s.Projects[1].Pending())
	// The alternate list carries tags and no status.
	for _, p := range s.Alternate {
		assert.Equal(t, StatusNone, p.Status)
		assert.NotEmpty(t, p.Tags)
	}
	assert.Len(t, s.AllProjects(), 7)
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	_, err := Parse([]byte(`
projects:
  - {id: 1, title: a}
  - {id: 1, title: b}
`))
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestParseAllowsSameIDAcrossLists(t *testing.T) {
	_, err := Parse([]byte(`
projects:
  - {id: 1, title: a}
alternate:
  - {id: 1, title: b}
`))
	assert.NoError(t, err)
}

func TestParseRejectsUnknownStatus(t *testing.T) {
	_, err := Parse([]byte(`
projects:
  - {id: 1, title: a, status: archived}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "archived")
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("projects: [::"))
	assert.Error(t, err)
}
