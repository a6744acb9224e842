// Package scoring holds the pure attempt-evaluation logic: the submit
// gate, the score computation, and the per-question correctness review.
// Nothing here touches the database; services feed it loaded questions
// and the caller's answer map.
package scoring

import "github.com/learnhub-edu/learnhub-api/internal/model"

// FallbackTotalMarks is the displayed denominator when the test record
// itself could not be resolved.
const FallbackTotalMarks = 5

// AnswerMap associates a question id with the selected option letter.
// Unanswered questions are simply absent as keys.
type AnswerMap map[uint]string

// Verdict is the post-submission rendering state of a single option.
type Verdict string

const (
	VerdictCorrect   Verdict = "correct"
	VerdictIncorrect Verdict = "incorrect"
	VerdictNeutral   Verdict = "neutral"
)

// OptionReview is one option of one question with its overlay verdict.
type OptionReview struct {
	Letter   string  `json:"letter"`
	Text     string  `json:"text"`
	Verdict  Verdict `json:"verdict"`
	Selected bool    `json:"selected"`
}

// QuestionReview is the reviewed state of one question after submission.
type QuestionReview struct {
	QuestionID     uint           `json:"question_id"`
	Text           string         `json:"question"`
	CorrectOption  string         `json:"correct_option"`
	SelectedOption string         `json:"selected_option"`
	Correct        bool           `json:"correct"`
	Marks          int            `json:"marks"`
	MarksAwarded   int            `json:"marks_awarded"`
	Options        []OptionReview `json:"options"`
}

// Score sums the marks of every question whose answer matches its
// correct option. Pure and independent of iteration order.
func Score(answers AnswerMap, questions []model.Question) int {
	total := 0
	for _, q := range questions {
		if answers[q.ID] == q.CorrectOption {
			total += q.Marks
		}
	}
	return total
}

// CanSubmit reports whether the all-or-nothing submission gate holds:
// every loaded question has a selection and no stray answers remain.
func CanSubmit(answers AnswerMap, questions []model.Question) bool {
	if len(answers) != len(questions) {
		return false
	}
	for _, q := range questions {
		if _, ok := answers[q.ID]; !ok {
			return false
		}
	}
	return true
}

// BuildReview renders the correctness overlay for every question:
// the correct option is always marked correct, the user's selection is
// marked incorrect only when it differs, and all other options stay
// neutral. Questions keep their given (order_index) sequence.
func BuildReview(answers AnswerMap, questions []model.Question) []QuestionReview {
	reviews := make([]QuestionReview, 0, len(questions))
	for _, q := range questions {
		selected := answers[q.ID]
		correct := selected == q.CorrectOption

		opts := q.Options()
		optReviews := make([]OptionReview, 0, len(opts))
		for _, opt := range opts {
			verdict := VerdictNeutral
			switch {
			case opt.Letter == q.CorrectOption:
				verdict = VerdictCorrect
			case opt.Letter == selected:
				verdict = VerdictIncorrect
			}
			optReviews = append(optReviews, OptionReview{
				Letter:   opt.Letter,
				Text:     opt.Text,
				Verdict:  verdict,
				Selected: opt.Letter == selected,
			})
		}

		awarded := 0
		if correct {
			awarded = q.Marks
		}
		reviews = append(reviews, QuestionReview{
			QuestionID:     q.ID,
			Text:           q.Text,
			CorrectOption:  q.CorrectOption,
			SelectedOption: selected,
			Correct:        correct,
			Marks:          q.Marks,
			MarksAwarded:   awarded,
			Options:        optReviews,
		})
	}
	return reviews
}
