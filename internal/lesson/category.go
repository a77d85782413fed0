package lesson

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrLessonNotFound   = errors.New("lesson not found")
)

const (
	BasicsCategoryID = "basics"

	// MaxFundamentalsPerTier caps the questions of a basics lesson.
	MaxFundamentalsPerTier = 15
)

// CategoryInfo is the static description of a category.
type CategoryInfo struct {
	ID    string
	Title string
	Icon  string
	Color string
}

var Categories = []CategoryInfo{
	{ID: BasicsCategoryID, Title: "Basics", Icon: "B", Color: "#6366f1"},
	{ID: "array", Title: "Arrays", Icon: "A", Color: "#22c55e"},
	{ID: "stack", Title: "Stacks", Icon: "S", Color: "#f59e0b"},
	{ID: "queue", Title: "Queues", Icon: "Q", Color: "#06b6d4"},
	{ID: "linked-list", Title: "Linked Lists", Icon: "LL", Color: "#3b82f6"},
	{ID: "string", Title: "Strings", Icon: "Str", Color: "#8b5cf6"},
	{ID: "bit-manipulation", Title: "Bit Manipulation", Icon: "BM", Color: "#ef4444"},
	{ID: "sliding-window", Title: "Sliding Window", Icon: "SW", Color: "#10b981"},
	{ID: "dp", Title: "Dynamic Programming", Icon: "DP", Color: "#ec4899"},
	{ID: "binary-tree", Title: "Binary Trees", Icon: "BT", Color: "#84cc16"},
	{ID: "graphs", Title: "Graphs", Icon: "G", Color: "#f97316"},
}

// Category is a topic with the lessons available for one language.
type Category struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Icon               string   `json:"icon"`
	Color              string   `json:"color"`
	TotalQuestions     int      `json:"totalQuestions"`
	CompletedQuestions int      `json:"completedQuestions"`
	Lessons            []Lesson `json:"lessons"`
	ComingSoon         bool     `json:"isComingSoon"`
}

// Catalog is the synthesized, read only lesson set.
type Catalog struct {
	Lessons      []Lesson
	Fundamentals []Question
}

func NewCatalog(questions, fundamentals []Question) (*Catalog, error) {
	lessons, err := Synthesize(questions)
	if err != nil {
		return nil, err
	}
	return &Catalog{Lessons: lessons, Fundamentals: fundamentals}, nil
}

// MatchesLanguage reports whether a lesson in language l is shown to a
// learner preferring pref. Python learners also see lessons in any language
// that is neither Java nor C++.
func MatchesLanguage(l, pref Language) bool {
	if l == pref {
		return true
	}
	return pref == LanguagePython && l != LanguageJava && l != LanguageCpp
}

func (c *Catalog) basicsLessons(pref Language) []Lesson {
	lessons := make([]Lesson, 0, len(Difficulties))
	for _, d := range Difficulties {
		var qs []Question
		for _, q := range c.Fundamentals {
			if len(qs) == MaxFundamentalsPerTier {
				break
			}
			if strings.Contains(q.ID, string(d)) {
				qs = append(qs, q)
			}
		}
		if len(qs) == 0 {
			continue
		}
		title := titleCase(string(d))
		lessons = append(lessons, Lesson{
			ID:          fmt.Sprintf("%s-%s", BasicsCategoryID, d),
			Title:       "DSA Fundamentals - " + title,
			Description: fmt.Sprintf("Core DSA concepts and fundamentals (%s)", title),
			Type:        LessonTypePractice,
			Difficulty:  d,
			Tier:        d.Tier(),
			XPReward:    d.XPReward(),
			Language:    pref,
			Unit:        BasicsCategoryID,
			Explanation: fmt.Sprintf("This lesson covers the most important DSA fundamentals and basics (%s).", d),
			Questions:   qs,
		})
	}
	return lessons
}

// Aggregate buckets the lessons matching pref into the fixed category list.
// completed holds the ids of the lessons the learner has finished.
func (c *Catalog) Aggregate(pref Language, completed map[string]bool) []Category {
	out := make([]Category, 0, len(Categories))
	for _, info := range Categories {
		cat := Category{
			ID:      info.ID,
			Title:   info.Title,
			Icon:    info.Icon,
			Color:   info.Color,
			Lessons: []Lesson{},
		}
		if info.ID == BasicsCategoryID {
			cat.Lessons = c.basicsLessons(pref)
		} else {
			for _, l := range c.Lessons {
				if l.Unit == info.ID && MatchesLanguage(l.Language, pref) {
					cat.Lessons = append(cat.Lessons, l)
				}
			}
		}
		for _, l := range cat.Lessons {
			cat.TotalQuestions += len(l.Questions)
			if completed[l.ID] {
				cat.CompletedQuestions += len(l.Questions)
			}
		}
		cat.ComingSoon = len(cat.Lessons) == 0
		out = append(out, cat)
	}
	return out
}

// Category returns one aggregated category.
func (c *Catalog) Category(id string, pref Language, completed map[string]bool) (Category, error) {
	for _, cat := range c.Aggregate(pref, completed) {
		if cat.ID == id {
			return cat, nil
		}
	}
	return Category{}, fmt.Errorf("%w: %s", ErrCategoryNotFound, id)
}

// Lesson resolves a lesson as the learner sees it under pref.
func (c *Catalog) Lesson(categoryID, lessonID string, pref Language) (Lesson, error) {
	cat, err := c.Category(categoryID, pref, nil)
	if err != nil {
		return Lesson{}, err
	}
	for _, l := range cat.Lessons {
		if l.ID == lessonID {
			return l, nil
		}
	}
	return Lesson{}, fmt.Errorf("%w: %s/%s", ErrLessonNotFound, categoryID, lessonID)
}

// QuestionCount is the number of questions across all synthesized lessons.
func (c *Catalog) QuestionCount() int {
	n := 0
	for _, l := range c.Lessons {
		n += len(l.Questions)
	}
	return n
}
