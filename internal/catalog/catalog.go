// Package catalog holds the read-only movie dataset that backs the
// filter/sort and aggregate endpoints. The dataset is embedded in the binary,
// decoded once at startup and never mutated, so concurrent reads need no
// locking. It is a separate collection from the persistent movie records.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

//go:embed movies.json
var moviesJSON []byte

// ErrUnsupportedDataType is returned by Data for an unknown aggregate kind.
var ErrUnsupportedDataType = errors.New("data type not supported")

// Record is a single catalog entry. Genre, Actors and Language are stored as
// comma-space separated lists; Runtime and ImdbVotes keep their formatted
// text form ("142 min", "1,620,367").
type Record struct {
	Title      string  `json:"Title"`
	Year       string  `json:"Year"`
	Runtime    string  `json:"Runtime"`
	Genre      string  `json:"Genre"`
	Actors     string  `json:"Actors"`
	Language   string  `json:"Language"`
	ImdbID     string  `json:"imdbID"`
	ImdbRating float64 `json:"imdbRating"`
	ImdbVotes  string  `json:"imdbVotes"`
}

// TitleRating is the projection returned for sorted queries.
type TitleRating struct {
	Title      string  `json:"Title"`
	ImdbRating float64 `json:"imdbRating"`
}

// QueryParams are the optional filter/sort parameters of GET /movies.
type QueryParams struct {
	Genre    string
	Actor    string
	ImdbSort string
}

// Empty reports whether no parameter was supplied at all.
func (p QueryParams) Empty() bool {
	return p.Genre == "" && p.Actor == "" && p.ImdbSort == ""
}

type Catalog struct {
	records []Record
}

// Load decodes the embedded dataset.
func Load() (*Catalog, error) {
	var records []Record
	if err := json.Unmarshal(moviesJSON, &records); err != nil {
		return nil, fmt.Errorf("decoding embedded movie dataset: %w", err)
	}
	return &Catalog{records: records}, nil
}

// New builds a catalog from the given records. Used by tests.
func New(records []Record) *Catalog {
	return &Catalog{records: records}
}

// Records returns the full dataset in original order.
func (c *Catalog) Records() []Record {
	return c.records
}

// Query filters and then sorts the dataset. The actor filter applies first,
// the genre filter narrows its result. Without a recognised sort order the
// full matching records are returned; with ASC or DESC (case-insensitive)
// the result is reduced to {Title, imdbRating} pairs sorted by rating, ties
// keeping their original relative order.
func (c *Catalog) Query(p QueryParams) any {
	records := c.records
	if p.Actor != "" {
		records = filterBy(records, func(r Record) string { return r.Actors }, p.Actor)
	}
	if p.Genre != "" {
		records = filterBy(records, func(r Record) string { return r.Genre }, p.Genre)
	}

	switch strings.ToUpper(p.ImdbSort) {
	case "ASC":
		return sortByRating(true, records)
	case "DESC":
		return sortByRating(false, records)
	}
	return records
}

// filterBy keeps records whose list-valued field contains value. Matching is
// plain substring containment, case-sensitive as stored.
func filterBy(records []Record, field func(Record) string, value string) []Record {
	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(field(r), value) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func sortByRating(ascending bool, records []Record) []TitleRating {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return sorted[i].ImdbRating < sorted[j].ImdbRating
		}
		return sorted[i].ImdbRating > sorted[j].ImdbRating
	})

	pairs := make([]TitleRating, len(sorted))
	for i, r := range sorted {
		pairs[i] = TitleRating{Title: r.Title, ImdbRating: r.ImdbRating}
	}
	return pairs
}

// VotesTotal is the result shape of the "votes" aggregate.
type VotesTotal struct {
	Votes int `json:"votes"`
}

// Data computes one of the fixed aggregates over the whole dataset.
func (c *Catalog) Data(kind string) (any, error) {
	switch kind {
	case "length":
		total := 0
		for _, r := range c.records {
			if minutes, ok := leadingInt(r.Runtime); ok {
				total += minutes
			}
		}
		return fmt.Sprintf("%d min", total), nil

	case "urls":
		urls := make([]string, len(c.records))
		for i, r := range c.records {
			urls[i] = fmt.Sprintf("https://www.imdb.com/title/%s/", r.ImdbID)
		}
		return urls, nil

	case "votes":
		total := 0
		for _, r := range c.records {
			if votes, ok := leadingInt(strings.ReplaceAll(r.ImdbVotes, ",", "")); ok {
				total += votes
			}
		}
		return VotesTotal{Votes: total}, nil

	case "languages":
		seen := make(map[string]struct{})
		for _, r := range c.records {
			for _, lang := range strings.Split(r.Language, ", ") {
				seen[lang] = struct{}{}
			}
		}
		languages := make([]string, 0, len(seen))
		for lang := range seen {
			languages = append(languages, lang)
		}
		sort.Strings(languages)
		return languages, nil
	}

	return nil, fmt.Errorf("%q: %w", kind, ErrUnsupportedDataType)
}

// leadingInt parses the integer prefix of s ("142 min" -> 142). Entries
// without one, like "N/A", report ok=false and count as zero upstream.
func leadingInt(s string) (int, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
