// Package session walks a user through a catalog one question at a time
// and scores the answers once the last question is passed.
package session

import (
	"errors"
	"math"

	"github.com/dshills/fitcheck/internal/answers"
	"github.com/dshills/fitcheck/internal/assessment"
	"github.com/dshills/fitcheck/internal/catalog"
	"github.com/google/uuid"
)

// Step is the phase a session is in.
type Step string

const (
	StepIntro     Step = "intro"
	StepQuestions Step = "questions"
	StepResults   Step = "results"
)

var (
	// ErrUnanswered is returned when advancing past a question with no answer.
	ErrUnanswered = errors.New("session: current question has no answer")
	// ErrNotStarted is returned by question operations outside the questions step.
	ErrNotStarted = errors.New("session: not in the questions step")
	// ErrNotFinished is returned by Result before the last question is passed.
	ErrNotFinished = errors.New("session: assessment not finished")
	// ErrEmptyCatalog is returned by Start when there is nothing to ask.
	ErrEmptyCatalog = errors.New("session: catalog has no questions")
)

// Session holds one user's progress through a catalog. It is not safe
// for concurrent use.
type Session struct {
	ID        uuid.UUID
	questions []catalog.Question
	step      Step
	index     int
	answers   answers.Set
}

// New creates a session over questions, positioned at the intro.
func New(questions []catalog.Question) *Session {
	return &Session{
		ID:        uuid.New(),
		questions: questions,
		step:      StepIntro,
		answers:   answers.Set{},
	}
}

// Step returns the current phase.
func (s *Session) Step() Step { return s.step }

// Index returns the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// Answers returns a copy of the answers recorded so far.
func (s *Session) Answers() answers.Set { return s.answers.Clone() }

// Start clears any answers and moves to the first question.
func (s *Session) Start() error {
	if len(s.questions) == 0 {
		return ErrEmptyCatalog
	}
	s.step = StepQuestions
	s.index = 0
	s.answers = answers.Set{}
	return nil
}

// Restart returns to the intro and discards all answers.
func (s *Session) Restart() {
	s.step = StepIntro
	s.index = 0
	s.answers = answers.Set{}
}

// Current returns the question being asked.
func (s *Session) Current() (catalog.Question, error) {
	if s.step != StepQuestions {
		return catalog.Question{}, ErrNotStarted
	}
	return s.questions[s.index], nil
}

// Selected returns the answer already recorded for the current question.
func (s *Session) Selected() (int, bool) {
	if s.step != StepQuestions {
		return 0, false
	}
	return s.answers.Get(s.questions[s.index].ID)
}

// Answer records v for the current question, replacing any earlier answer.
func (s *Session) Answer(v int) error {
	if s.step != StepQuestions {
		return ErrNotStarted
	}
	s.answers.Record(s.questions[s.index].ID, v)
	return nil
}

// Next advances to the following question, or to the results after the
// last one. The current question must be answered; an answer of 0 counts.
func (s *Session) Next() error {
	if s.step != StepQuestions {
		return ErrNotStarted
	}
	if _, ok := s.Selected(); !ok {
		return ErrUnanswered
	}
	if s.index < len(s.questions)-1 {
		s.index++
		return nil
	}
	s.step = StepResults
	return nil
}

// Previous moves back one question. It is a no-op on the first question.
func (s *Session) Previous() error {
	if s.step != StepQuestions {
		return ErrNotStarted
	}
	if s.index > 0 {
		s.index--
	}
	return nil
}

// Progress reports the one-based question number, the total and the
// rounded completion percentage.
type Progress struct {
	Step    int
	Total   int
	Percent int
}

// Progress returns how far through the questions the session is.
func (s *Session) Progress() Progress {
	total := len(s.questions)
	p := Progress{Total: total}
	switch s.step {
	case StepQuestions:
		p.Step = s.index + 1
	case StepResults:
		p.Step = total
	}
	if total > 0 {
		p.Percent = int(math.Floor(float64(p.Step)/float64(total)*100 + 0.5))
	}
	return p
}

// Result scores the session. It is only available in the results step.
func (s *Session) Result() (assessment.Score, error) {
	if s.step != StepResults {
		return assessment.Score{}, ErrNotFinished
	}
	return assessment.Compute(s.questions, s.answers), nil
}
