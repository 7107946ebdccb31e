package seed

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_FetchBundledSeed(t *testing.T) {
	src := NewSource(filepath.Join("..", "..", "..", "db", "seed.yaml"))
	projects, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 3)

	garden := projects[0]
	assert.Equal(t, "1", garden.ID)
	assert.Equal(t, "Brooklyn, NY", garden.Location)
	assert.Equal(t, 75.0, garden.FundingRatio())
	assert.Equal(t, 28, garden.Volunteers)
	assert.Equal(t, "Elderly Care Support Network", projects[2].Title)
}

func TestDecode(t *testing.T) {
	projects, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, projects)

	_, err = Decode(strings.NewReader("projects:\n  - title: nameless\n"))
	assert.ErrorContains(t, err, "has no id")

	_, err = Decode(strings.NewReader("projects:\n  - id: x\n    budget: 10\n"))
	assert.ErrorContains(t, err, "decode seed")
}

func TestSource_MissingFile(t *testing.T) {
	_, err := NewSource(filepath.Join(t.TempDir(), "nope.yaml")).Fetch(context.Background())
	assert.ErrorContains(t, err, "open seed")
}
