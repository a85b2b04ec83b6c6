package dedup

import (
	"testing"

	"github.com/Stv21/job-scrapping-repo/internal/models"

	"github.com/stretchr/testify/assert"
)

func listing(url, title string) models.Listing {
	return models.Listing{Title: title, URL: url}
}

func TestByURL_CollapsesDuplicates(t *testing.T) {
	in := []models.Listing{
		listing("https://x/1", "first"),
		listing("https://x/2", "second"),
		listing("https://x/1", "duplicate of first"),
		listing("https://x/3", "third"),
		listing("https://x/2", "duplicate of second"),
	}

	out := ByURL(in)

	assert.Len(t, out, 3)
	assert.Equal(t, "first", out[0].Title, "first occurrence wins")
	assert.Equal(t, "second", out[1].Title)
	assert.Equal(t, "third", out[2].Title)
}

func TestByURL_DropsEmptyURLs(t *testing.T) {
	in := []models.Listing{
		listing("", "no url"),
		listing("https://x/1", "ok"),
	}

	out := ByURL(in)

	assert.Len(t, out, 1)
	assert.Equal(t, "ok", out[0].Title)
}

func TestByURL_EmptyInput(t *testing.T) {
	assert.Empty(t, ByURL(nil))
}
