package challenge

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/evandrarf/dsadojo-be/internal/lesson"
)

//go:embed problems.csv
var problemsCSV []byte

var ErrChallengeNotFound = errors.New("challenge not found")

const (
	FallbackTitle = "LeetCode Problem"
	LanguageBoth  = "both"
)

type Challenge struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Difficulty  lesson.Difficulty `json:"difficulty"`
	Category    string            `json:"category"`
	XPReward    int               `json:"xpReward"`
	TimeLimit   int               `json:"timeLimit"`
	Language    string            `json:"language"`
	Link        string            `json:"link"`
}

var slugPattern = regexp.MustCompile(`/problems/([^/]+)/?$`)

// TitleFromURL turns the problem slug of a URL into Title Case.
func TitleFromURL(url string) string {
	clean, _, _ := strings.Cut(url, "#")
	clean, _, _ = strings.Cut(clean, "?")
	m := slugPattern.FindStringSubmatch(clean)
	if m == nil {
		return FallbackTitle
	}
	words := strings.Split(m[1], "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

type categoryRule struct {
	category string
	keywords []string
}

// Rules are checked in order; the first match wins.
var categoryRules = []categoryRule{
	{"Array", []string{"array", "subarray", "rotate", "merge", "sort", "search", "matrix", "sum"}},
	{"String", []string{"string", "palindrome", "anagram", "substring", "prefix", "word"}},
	{"Linked List", []string{"linked", "list", "node"}},
	{"Binary Tree", []string{"tree", "binary"}},
	{"Stack & Queue", []string{"stack", "queue", "parentheses", "valid"}},
	{"Dynamic Programming", []string{"climb", "house", "coin", "path", "subsequence", "fibonacci"}},
	{"Graph", []string{"graph", "island", "course", "network"}},
}

const DefaultCategory = "Algorithm"

// Categories lists every category a challenge can have, in display order.
func Categories() []string {
	out := make([]string, 0, len(categoryRules)+1)
	for _, r := range categoryRules {
		out = append(out, r.category)
	}
	return append(out, DefaultCategory)
}

func Categorize(title string) string {
	t := strings.ToLower(title)
	for _, r := range categoryRules {
		for _, k := range r.keywords {
			if strings.Contains(t, k) {
				return r.category
			}
		}
	}
	return DefaultCategory
}

var (
	easyPatterns = []string{
		"two sum", "reverse", "palindrome", "fibonacci", "valid", "search",
		"remove duplicates", "merge", "maximum depth", "same tree",
	}
	hardPatterns = []string{
		"median", "serialize", "word ladder", "sudoku", "n queens",
		"expression", "wildcard", "edit distance", "burst balloons",
	}
)

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// Difficulty guesses the tier from the title. Unknown titles are medium.
func Difficulty(title string) lesson.Difficulty {
	t := strings.ToLower(title)
	switch {
	case containsAny(t, easyPatterns):
		return lesson.DifficultyEasy
	case containsAny(t, hardPatterns):
		return lesson.DifficultyHard
	}
	return lesson.DifficultyMedium
}

// TimeLimit is the suggested time in minutes.
func TimeLimit(d lesson.Difficulty) int {
	switch d {
	case lesson.DifficultyEasy:
		return 30
	case lesson.DifficultyMedium:
		return 45
	default:
		return 60
	}
}

func newChallenge(id int, url string) Challenge {
	title := TitleFromURL(url)
	category := Categorize(title)
	difficulty := Difficulty(title)
	return Challenge{
		ID:          strconv.Itoa(id),
		Title:       title,
		Description: fmt.Sprintf("Solve this %s level %s problem on LeetCode.", difficulty, strings.ToLower(category)),
		Difficulty:  difficulty,
		Category:    category,
		XPReward:    difficulty.XPReward(),
		TimeLimit:   TimeLimit(difficulty),
		Language:    LanguageBoth,
		Link:        url,
	}
}

// Parse reads a "title,url" CSV. Ids are the 1-based row numbers after the
// header; rows without a URL are skipped.
func Parse(r io.Reader) ([]Challenge, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read challenges: %w", err)
	}
	var out []Challenge
	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue
		}
		url := strings.TrimSpace(row[1])
		if url == "" {
			continue
		}
		out = append(out, newChallenge(i, url))
	}
	return out, nil
}

// Catalog is the read only challenge list.
type Catalog struct {
	items []Challenge
	byID  map[string]int
}

func NewCatalog(items []Challenge) *Catalog {
	c := &Catalog{items: items, byID: make(map[string]int, len(items))}
	for i, ch := range items {
		c.byID[ch.ID] = i
	}
	return c
}

// Default loads the embedded problem list.
func Default() (*Catalog, error) {
	items, err := Parse(bytes.NewReader(problemsCSV))
	if err != nil {
		return nil, err
	}
	return NewCatalog(items), nil
}

func (c *Catalog) Len() int { return len(c.items) }

func (c *Catalog) Get(id string) (Challenge, error) {
	i, ok := c.byID[id]
	if !ok {
		return Challenge{}, fmt.Errorf("%w: %s", ErrChallengeNotFound, id)
	}
	return c.items[i], nil
}

// Filter narrows the list. Empty or "all" values match everything; search
// matches title and description case insensitively.
type Filter struct {
	Difficulty string
	Category   string
	Search     string
}

func matches(want, got string) bool {
	return want == "" || want == "all" || strings.EqualFold(want, got)
}

func (c *Catalog) List(f Filter) []Challenge {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]Challenge, 0, len(c.items))
	for _, ch := range c.items {
		if !matches(f.Difficulty, string(ch.Difficulty)) || !matches(f.Category, ch.Category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(ch.Title), search) &&
			!strings.Contains(strings.ToLower(ch.Description), search) {
			continue
		}
		out = append(out, ch)
	}
	return out
}
