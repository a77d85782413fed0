package quiz

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/evandrarf/dsadojo-be/internal/lesson"
)

var (
	ErrNoQuestions       = errors.New("lesson has no questions")
	ErrInvalidTransition = errors.New("action not allowed in the current state")
	ErrLessonIncomplete  = errors.New("answer the remaining questions correctly to finish the lesson")
	ErrSessionCompleted  = errors.New("lesson already completed")
)

type State string

const (
	StateAnswering State = "answering"
	StateChecked   State = "checked"
	StateCompleted State = "completed"
)

// Check is the feedback of a submitted answer. It reveals the explanation
// and the correct answer.
type Check struct {
	Correct       bool          `json:"correct"`
	HeartSpent    bool          `json:"heartSpent"`
	Sound         string        `json:"sound"`
	Explanation   string        `json:"explanation"`
	CorrectAnswer lesson.Answer `json:"correctAnswer"`
	ItemStatus    []ItemStatus  `json:"itemStatus,omitempty"`
}

// Result is emitted once, when the lesson completes.
type Result struct {
	LessonID string `json:"lessonId"`
	XP       int    `json:"xp"`
	Mistakes int    `json:"mistakes"`
	Cue      Cue    `json:"cue"`
}

// Session walks a learner through the questions of one lesson.
type Session struct {
	lesson    lesson.Lesson
	picker    CuePicker
	index     int
	state     State
	mistakes  int
	completed map[int]bool
	ordering  *Ordering
	last      *Check
	result    *Result
}

func New(l lesson.Lesson, picker CuePicker) (*Session, error) {
	if len(l.Questions) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoQuestions, l.ID)
	}
	s := &Session{
		lesson:    l,
		picker:    picker,
		state:     StateAnswering,
		completed: make(map[int]bool),
	}
	s.prepare()
	return s, nil
}

func (s *Session) prepare() {
	s.ordering = nil
	if q := s.Current(); q.Type == lesson.TypeDragDrop {
		s.ordering = NewOrdering(len(q.Items))
	}
}

func (s *Session) Lesson() lesson.Lesson { return s.lesson }
func (s *Session) Current() lesson.Question { return s.lesson.Questions[s.index] }
func (s *Session) Index() int { return s.index }
func (s *Session) State() State { return s.state }
func (s *Session) Mistakes() int { return s.mistakes }
func (s *Session) LastCheck() *Check { return s.last }
func (s *Session) Result() *Result { return s.result }
func (s *Session) CompletedCount() int { return len(s.completed) }
func (s *Session) IsLast() bool { return s.index == len(s.lesson.Questions)-1 }
func (s *Session) Ordering() *Ordering { return s.ordering }

func revealAnswer(q lesson.Question) lesson.Answer {
	switch q.Type {
	case lesson.TypeDragDrop:
		return lesson.OrderAnswer(q.CorrectOrder...)
	case lesson.TypeCodeCompletion:
		return lesson.TextAnswer(TextKey(q))
	}
	return q.Answer
}

// Submit evaluates an answer to the current question. An incorrect answer
// counts as a mistake and asks the caller to spend a heart.
func (s *Session) Submit(sub Submission) (*Check, error) {
	switch s.state {
	case StateCompleted:
		return nil, ErrSessionCompleted
	case StateChecked:
		return nil, fmt.Errorf("%w: answer already checked", ErrInvalidTransition)
	}

	q := s.Current()
	check := &Check{Explanation: q.Explanation, CorrectAnswer: revealAnswer(q)}
	if q.Type == lesson.TypeDragDrop {
		trial := s.ordering.clone()
		if err := Arrange(trial, sub); err != nil {
			return nil, err
		}
		s.ordering = trial
		check.Correct = s.ordering.Check(q.CorrectOrder)
		check.ItemStatus = s.ordering.ItemStatus(q.CorrectOrder)
	} else {
		ok, err := Evaluate(q, sub)
		if err != nil {
			return nil, err
		}
		check.Correct = ok
	}

	check.Sound = SoundCorrect
	if !check.Correct {
		s.mistakes++
		check.HeartSpent = true
		check.Sound = SoundIncorrect
	}
	s.state = StateChecked
	s.last = check
	return check, nil
}

// Retry reopens the current question after an incorrect answer.
func (s *Session) Retry() error {
	switch {
	case s.state == StateCompleted:
		return ErrSessionCompleted
	case s.state != StateChecked || s.last.Correct:
		return fmt.Errorf("%w: nothing to retry", ErrInvalidTransition)
	}
	s.state = StateAnswering
	s.last = nil
	if s.ordering != nil {
		s.ordering.Reset()
	}
	return nil
}

// Next moves past a correctly answered question. An incorrect answer can only
// be retried, except on the last question once every question has been
// answered correctly at least once. The returned result is non-nil only when
// the lesson completes.
func (s *Session) Next() (*Result, error) {
	switch s.state {
	case StateCompleted:
		return nil, ErrSessionCompleted
	case StateAnswering:
		return nil, fmt.Errorf("%w: check the answer first", ErrInvalidTransition)
	}

	if s.last.Correct {
		s.completed[s.index] = true
	} else if !s.IsLast() || len(s.completed) < len(s.lesson.Questions) {
		return nil, ErrLessonIncomplete
	}
	if !s.IsLast() {
		s.index++
		s.state = StateAnswering
		s.last = nil
		s.prepare()
		return nil, nil
	}

	s.state = StateCompleted
	s.result = &Result{
		LessonID: s.lesson.ID,
		XP:       s.lesson.XPReward,
		Mistakes: s.mistakes,
		Cue:      PickCue(s.mistakes, s.picker),
	}
	return s.result, nil
}

// Snapshot is the persisted form of a session.
type Snapshot struct {
	Index     int     `json:"index"`
	State     State   `json:"state"`
	Mistakes  int     `json:"mistakes"`
	Completed []int   `json:"completed"`
	Order     []int   `json:"order,omitempty"`
	LastCheck *Check  `json:"lastCheck,omitempty"`
	Result    *Result `json:"result,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Index:     s.index,
		State:     s.state,
		Mistakes:  s.mistakes,
		Completed: make([]int, 0, len(s.completed)),
		LastCheck: s.last,
		Result:    s.result,
	}
	for i := range s.completed {
		snap.Completed = append(snap.Completed, i)
	}
	sort.Ints(snap.Completed)
	if s.ordering != nil {
		snap.Order = s.ordering.Current()
	}
	return snap
}

// Resume rebuilds a session of l from a snapshot.
func Resume(l lesson.Lesson, snap Snapshot, picker CuePicker) (*Session, error) {
	s, err := New(l, picker)
	if err != nil {
		return nil, err
	}
	if snap.Index < 0 || snap.Index >= len(l.Questions) {
		return nil, fmt.Errorf("%w: snapshot index %d out of range", ErrInvalidTransition, snap.Index)
	}
	switch snap.State {
	case StateAnswering, StateCompleted:
	case StateChecked:
		if snap.LastCheck == nil {
			return nil, fmt.Errorf("%w: checked snapshot without feedback", ErrInvalidTransition)
		}
	default:
		return nil, fmt.Errorf("%w: unknown state %q", ErrInvalidTransition, snap.State)
	}

	s.index = snap.Index
	s.state = snap.State
	s.mistakes = snap.Mistakes
	s.last = snap.LastCheck
	s.result = snap.Result
	for _, i := range snap.Completed {
		if i >= 0 && i < len(l.Questions) {
			s.completed[i] = true
		}
	}
	s.prepare()
	if s.ordering != nil && snap.Order != nil {
		o, err := OrderingFrom(snap.Order)
		if err != nil || o.Len() != s.ordering.Len() {
			return nil, fmt.Errorf("%w: snapshot order %v", ErrInvalidTransition, snap.Order)
		}
		s.ordering = o
	}
	return s, nil
}

// QuestionView is a question as shown before it is checked. It carries no
// correctness keys.
type QuestionView struct {
	ID         string              `json:"id"`
	Type       lesson.QuestionType `json:"type"`
	Prompt     string              `json:"question"`
	Options    []string            `json:"options,omitempty"`
	Code       string              `json:"code,omitempty"`
	BlankCount int                 `json:"blankCount,omitempty"`
	Items      []string            `json:"items,omitempty"`
	Order      []int               `json:"order,omitempty"`
}

// View is the learner facing state of a session.
type View struct {
	LessonID  string       `json:"lessonId"`
	Title     string       `json:"title"`
	XPReward  int          `json:"xpReward"`
	Index     int          `json:"index"`
	Total     int          `json:"total"`
	Completed int          `json:"completed"`
	State     State        `json:"state"`
	Mistakes  int          `json:"mistakes"`
	Question  QuestionView `json:"question"`
	Check     *Check       `json:"check,omitempty"`
	Result    *Result      `json:"result,omitempty"`
}

func (s *Session) View() View {
	q := s.Current()
	qv := QuestionView{
		ID:         q.ID,
		Type:       q.Type,
		Prompt:     q.Prompt,
		Options:    slices.Clone(q.Options),
		Code:       q.Code,
		BlankCount: len(q.Blanks),
		Items:      slices.Clone(q.Items),
	}
	if s.ordering != nil {
		qv.Order = s.ordering.Current()
	}
	return View{
		LessonID:  s.lesson.ID,
		Title:     s.lesson.Title,
		XPReward:  s.lesson.XPReward,
		Index:     s.index,
		Total:     len(s.lesson.Questions),
		Completed: len(s.completed),
		State:     s.state,
		Mistakes:  s.mistakes,
		Question:  qv,
		Check:     s.last,
		Result:    s.result,
	}
}
