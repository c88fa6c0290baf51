package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []Record {
	return []Record{
		{
			Title: "First Drama", Genre: "Drama", Actors: "Alice Alpha, Bob Beta",
			Language: "English, French", Runtime: "120 min", ImdbID: "tt0000001",
			ImdbRating: 7.5, ImdbVotes: "1,234",
		},
		{
			Title: "Space Opera", Genre: "Action, Sci-Fi", Actors: "Carol Gamma",
			Language: "English", Runtime: "90 min", ImdbID: "tt0000002",
			ImdbRating: 8.2, ImdbVotes: "2,000",
		},
		{
			Title: "Second Drama", Genre: "Crime, Drama", Actors: "Bob Beta, Dan Delta",
			Language: "German", Runtime: "N/A", ImdbID: "tt0000003",
			ImdbRating: 7.5, ImdbVotes: "N/A",
		},
	}
}

func TestLoad(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, c.Records())

	for _, r := range c.Records() {
		assert.NotEmpty(t, r.Title)
		assert.NotEmpty(t, r.ImdbID)
	}
}

func TestCatalog_Query(t *testing.T) {
	c := New(testRecords())

	t.Run("no params returns all records", func(t *testing.T) {
		result := c.Query(QueryParams{})
		records, ok := result.([]Record)
		require.True(t, ok)
		assert.Len(t, records, 3)
	})

	t.Run("genre filter returns full records", func(t *testing.T) {
		result := c.Query(QueryParams{Genre: "Drama"})
		records, ok := result.([]Record)
		require.True(t, ok)
		require.Len(t, records, 2)
		assert.Equal(t, "First Drama", records[0].Title)
		assert.Equal(t, "Second Drama", records[1].Title)
	})

	t.Run("actor filter matches containment", func(t *testing.T) {
		result := c.Query(QueryParams{Actor: "Bob Beta"})
		records, ok := result.([]Record)
		require.True(t, ok)
		assert.Len(t, records, 2)
	})

	t.Run("actor and genre filters chain", func(t *testing.T) {
		result := c.Query(QueryParams{Actor: "Bob Beta", Genre: "Crime"})
		records, ok := result.([]Record)
		require.True(t, ok)
		require.Len(t, records, 1)
		assert.Equal(t, "Second Drama", records[0].Title)
	})

	t.Run("filter is case-sensitive", func(t *testing.T) {
		result := c.Query(QueryParams{Genre: "drama"})
		records, ok := result.([]Record)
		require.True(t, ok)
		assert.Empty(t, records)
	})

	t.Run("sort desc projects to title and rating, stable ties", func(t *testing.T) {
		result := c.Query(QueryParams{ImdbSort: "DESC"})
		pairs, ok := result.([]TitleRating)
		require.True(t, ok)
		require.Len(t, pairs, 3)
		assert.Equal(t, TitleRating{Title: "Space Opera", ImdbRating: 8.2}, pairs[0])
		// Equal ratings keep original relative order.
		assert.Equal(t, "First Drama", pairs[1].Title)
		assert.Equal(t, "Second Drama", pairs[2].Title)
	})

	t.Run("sort asc, case-insensitive order value", func(t *testing.T) {
		result := c.Query(QueryParams{ImdbSort: "asc"})
		pairs, ok := result.([]TitleRating)
		require.True(t, ok)
		require.Len(t, pairs, 3)
		assert.Equal(t, "Space Opera", pairs[2].Title)
	})

	t.Run("filter then sort", func(t *testing.T) {
		result := c.Query(QueryParams{Genre: "Drama", ImdbSort: "DESC"})
		pairs, ok := result.([]TitleRating)
		require.True(t, ok)
		require.Len(t, pairs, 2)
		assert.Equal(t, "First Drama", pairs[0].Title)
		assert.Equal(t, "Second Drama", pairs[1].Title)
	})

	t.Run("unknown sort value leaves records unsorted and unprojected", func(t *testing.T) {
		result := c.Query(QueryParams{ImdbSort: "SIDEWAYS"})
		records, ok := result.([]Record)
		require.True(t, ok)
		assert.Len(t, records, 3)
	})
}

func TestCatalog_Data(t *testing.T) {
	c := New(testRecords())

	t.Run("length sums parseable runtimes", func(t *testing.T) {
		result, err := c.Data("length")
		require.NoError(t, err)
		assert.Equal(t, "210 min", result)
	})

	t.Run("urls in original order", func(t *testing.T) {
		result, err := c.Data("urls")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://www.imdb.com/title/tt0000001/",
			"https://www.imdb.com/title/tt0000002/",
			"https://www.imdb.com/title/tt0000003/",
		}, result)
	})

	t.Run("votes strips thousands separators", func(t *testing.T) {
		result, err := c.Data("votes")
		require.NoError(t, err)
		assert.Equal(t, VotesTotal{Votes: 3234}, result)
	})

	t.Run("languages deduplicated", func(t *testing.T) {
		result, err := c.Data("languages")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"English", "French", "German"}, result)
	})

	t.Run("unknown kind fails", func(t *testing.T) {
		_, err := c.Data("unknown")
		require.ErrorIs(t, err, ErrUnsupportedDataType)
	})
}
