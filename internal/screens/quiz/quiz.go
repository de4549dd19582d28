// Package quiz implements the timed-free Islamic knowledge quiz.
package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asadk/hikmah/internal/gateway"
	"github.com/asadk/hikmah/internal/screen"
	"github.com/asadk/hikmah/internal/session"
	"github.com/asadk/hikmah/internal/ui/components"
	"github.com/asadk/hikmah/internal/ui/layout"
	"github.com/asadk/hikmah/internal/ui/theme"
)

type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseExplain
	phaseDone
)

// questionsMsg delivers a generated quiz.
type questionsMsg struct {
	Questions []gateway.QuizQuestion
}

type savedMsg struct {
	Err error
}

// QuizScreen runs a five-question round and records the best score on
// the profile.
type QuizScreen struct {
	sess      *session.Session
	phase     phase
	questions []gateway.QuizQuestion
	current   int
	score     int
	choice    components.MultiChoice
	newBest   bool
	failed    bool
}

var _ screen.Screen = (*QuizScreen)(nil)

func New(sess *session.Session) *QuizScreen {
	return &QuizScreen{sess: sess}
}

func (q *QuizScreen) Title() string {
	return "Islamic Quiz"
}

func (q *QuizScreen) Init() tea.Cmd {
	return q.fetch()
}

func (q *QuizScreen) fetch() tea.Cmd {
	q.phase = phaseLoading
	q.failed = false
	gw := q.sess.Gateway
	return func() tea.Msg {
		return questionsMsg{Questions: gw.Quiz(context.Background())}
	}
}

func (q *QuizScreen) save() tea.Cmd {
	profile := q.sess.Profile()
	q.newBest = profile.RecordQuizScore(q.score)
	sess := q.sess
	return func() tea.Msg {
		return savedMsg{Err: sess.Persist(context.Background())}
	}
}

func (q *QuizScreen) loadQuestion() {
	question := q.questions[q.current]
	q.choice = components.NewMultiChoice(question.Question, question.Options, question.CorrectAnswer)
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsMsg:
		if len(msg.Questions) == 0 {
			q.phase = phaseDone
			q.failed = true
			return q, nil
		}
		q.questions = msg.Questions
		q.current = 0
		q.score = 0
		q.phase = phaseQuestion
		q.loadQuestion()
		return q, nil

	case savedMsg:
		return q, nil

	case tea.KeyMsg:
		switch q.phase {
		case phaseQuestion:
			var cmd tea.Cmd
			q.choice, cmd = q.choice.Update(msg)
			if q.choice.Submitted {
				if q.choice.IsCorrect() {
					q.score++
				}
				q.phase = phaseExplain
			}
			return q, cmd

		case phaseExplain:
			if msg.String() == "enter" || msg.String() == "space" {
				q.current++
				if q.current >= len(q.questions) {
					q.phase = phaseDone
					return q, q.save()
				}
				q.phase = phaseQuestion
				q.loadQuestion()
			}
			return q, nil

		case phaseDone:
			if msg.String() == "r" {
				return q, q.fetch()
			}
			return q, nil
		}
	}

	return q, nil
}

func (q *QuizScreen) View(width, height int) string {
	var b strings.Builder

	barWidth := width - 20
	if barWidth > 60 {
		barWidth = 60
	}

	switch q.phase {
	case phaseLoading:
		b.WriteString(theme.Hint.Render("preparing your questions..."))

	case phaseQuestion, phaseExplain:
		done := float64(q.current) / float64(len(q.questions))
		bar := components.NewProgressBar(
			fmt.Sprintf("Question %d/%d", q.current+1, len(q.questions)),
			done, false, barWidth)
		b.WriteString(bar.View())
		b.WriteString("\n\n")
		b.WriteString(q.choice.View())

		if q.phase == phaseExplain {
			b.WriteString("\n")
			verdict := theme.Correct.Render("Correct!")
			if !q.choice.IsCorrect() {
				verdict = theme.Incorrect.Render("Not quite.")
			}
			var card strings.Builder
			card.WriteString(verdict)
			card.WriteString("\n\n")
			card.WriteString(theme.Body.Width(barWidth).Render(q.questions[q.current].Explanation))
			b.WriteString(theme.Card.Render(card.String()))
			b.WriteString("\n\n")
			b.WriteString(theme.Hint.Render("press Enter to continue"))
		}

	case phaseDone:
		if q.failed {
			b.WriteString(theme.Incorrect.Render("Could not generate a quiz right now."))
			b.WriteString("\n\n")
			b.WriteString(theme.Hint.Render("press r to try again"))
			break
		}

		var card strings.Builder
		card.WriteString(theme.Title.Render(fmt.Sprintf("You scored %d of %d", q.score, len(q.questions))))
		card.WriteString("\n\n")
		switch {
		case q.newBest:
			card.WriteString(theme.Correct.Render("A new personal best, masha'Allah!"))
		case q.score == len(q.questions):
			card.WriteString(theme.Correct.Render("A perfect round."))
		default:
			card.WriteString(theme.Body.Render(fmt.Sprintf("Personal best: %d", q.sess.Profile().QuizScore)))
		}
		b.WriteString(theme.Card.Render(card.String()))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("press r for another round"))
	}

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Back"},
	}
}
