package scoring

import (
	"testing"

	"github.com/learnhub-edu/learnhub-api/internal/model"
)

func twoQuestionSet() []model.Question {
	return []model.Question{
		{
			ID: 1, TestID: 10, Text: "What is the SI unit of force?",
			OptionA: "Newton", OptionB: "Joule", OptionC: "Watt", OptionD: "Pascal",
			CorrectOption: "A", Marks: 2, OrderIndex: 1,
		},
		{
			ID: 2, TestID: 10, Text: "Which gas is evolved when zinc reacts with dilute HCl?",
			OptionA: "Oxygen", OptionB: "Chlorine", OptionC: "Hydrogen", OptionD: "Nitrogen",
			CorrectOption: "C", Marks: 3, OrderIndex: 2,
		},
	}
}

func TestScore(t *testing.T) {
	questions := twoQuestionSet()

	tests := []struct {
		name    string
		answers AnswerMap
		want    int
	}{
		{
			name:    "one correct one wrong",
			answers: AnswerMap{1: "A", 2: "B"},
			want:    2,
		},
		{
			name:    "all correct",
			answers: AnswerMap{1: "A", 2: "C"},
			want:    5,
		},
		{
			name:    "all wrong",
			answers: AnswerMap{1: "D", 2: "B"},
			want:    0,
		},
		{
			name:    "unanswered questions score nothing",
			answers: AnswerMap{2: "C"},
			want:    3,
		},
		{
			name:    "empty answer map",
			answers: AnswerMap{},
			want:    0,
		},
		{
			name:    "stray answer for unknown question is ignored",
			answers: AnswerMap{1: "A", 99: "C"},
			want:    2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.answers, questions); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreIsPureAndOrderIndependent(t *testing.T) {
	questions := twoQuestionSet()
	answers := AnswerMap{1: "A", 2: "C"}

	first := Score(answers, questions)
	second := Score(answers, questions)
	if first != second {
		t.Fatalf("Score() not idempotent: %d then %d", first, second)
	}

	reversed := []model.Question{questions[1], questions[0]}
	if got := Score(answers, reversed); got != first {
		t.Errorf("Score() depends on question order: %d vs %d", got, first)
	}

	// The input map must not be mutated.
	if len(answers) != 2 || answers[1] != "A" || answers[2] != "C" {
		t.Errorf("Score() mutated the answer map: %v", answers)
	}
}

func TestCanSubmit(t *testing.T) {
	questions := twoQuestionSet()

	tests := []struct {
		name    string
		answers AnswerMap
		want    bool
	}{
		{name: "all answered", answers: AnswerMap{1: "A", 2: "B"}, want: true},
		{name: "partially answered", answers: AnswerMap{1: "A"}, want: false},
		{name: "nothing answered", answers: AnswerMap{}, want: false},
		{name: "right count but wrong question", answers: AnswerMap{1: "A", 99: "B"}, want: false},
		{name: "extra stray answer", answers: AnswerMap{1: "A", 2: "B", 99: "C"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanSubmit(tt.answers, questions); got != tt.want {
				t.Errorf("CanSubmit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanSubmitEmptyQuestionSet(t *testing.T) {
	if !CanSubmit(AnswerMap{}, nil) {
		t.Error("empty answers over empty question set should pass the gate")
	}
	if CanSubmit(AnswerMap{1: "A"}, nil) {
		t.Error("answers without questions should not pass the gate")
	}
}

func TestBuildReviewOverlay(t *testing.T) {
	questions := twoQuestionSet()
	answers := AnswerMap{1: "A", 2: "B"}

	reviews := BuildReview(answers, questions)
	if len(reviews) != 2 {
		t.Fatalf("expected 2 question reviews, got %d", len(reviews))
	}

	for _, r := range reviews {
		var correctMarks, incorrectMarks int
		for _, opt := range r.Options {
			switch opt.Verdict {
			case VerdictCorrect:
				correctMarks++
				if opt.Letter != r.CorrectOption {
					t.Errorf("q%d: option %s marked correct, want %s", r.QuestionID, opt.Letter, r.CorrectOption)
				}
			case VerdictIncorrect:
				incorrectMarks++
				if opt.Letter != r.SelectedOption {
					t.Errorf("q%d: option %s marked incorrect but was not selected", r.QuestionID, opt.Letter)
				}
			}
		}
		if correctMarks != 1 {
			t.Errorf("q%d: exactly one option must be marked correct, got %d", r.QuestionID, correctMarks)
		}
		if incorrectMarks > 1 {
			t.Errorf("q%d: at most one option may be marked incorrect, got %d", r.QuestionID, incorrectMarks)
		}
	}

	// q1 answered correctly: no incorrect option anywhere.
	for _, opt := range reviews[0].Options {
		if opt.Verdict == VerdictIncorrect {
			t.Errorf("q1 answered correctly, yet option %s marked incorrect", opt.Letter)
		}
	}
	if !reviews[0].Correct || reviews[0].MarksAwarded != 2 {
		t.Errorf("q1: want correct with 2 marks awarded, got correct=%v awarded=%d",
			reviews[0].Correct, reviews[0].MarksAwarded)
	}

	// q2 answered B, correct is C: B incorrect+selected, C correct.
	if reviews[1].Correct || reviews[1].MarksAwarded != 0 {
		t.Errorf("q2: want incorrect with 0 marks awarded, got correct=%v awarded=%d",
			reviews[1].Correct, reviews[1].MarksAwarded)
	}
	for _, opt := range reviews[1].Options {
		switch opt.Letter {
		case "B":
			if opt.Verdict != VerdictIncorrect || !opt.Selected {
				t.Errorf("q2 option B: want selected+incorrect, got verdict=%s selected=%v", opt.Verdict, opt.Selected)
			}
		case "C":
			if opt.Verdict != VerdictCorrect {
				t.Errorf("q2 option C: want correct, got %s", opt.Verdict)
			}
		default:
			if opt.Verdict != VerdictNeutral {
				t.Errorf("q2 option %s: want neutral, got %s", opt.Letter, opt.Verdict)
			}
		}
	}
}

func TestBuildReviewPreservesQuestionOrderAndOptionSequence(t *testing.T) {
	questions := twoQuestionSet()
	reviews := BuildReview(AnswerMap{1: "A", 2: "C"}, questions)

	for i, r := range reviews {
		if r.QuestionID != questions[i].ID {
			t.Errorf("review %d: question id %d, want %d", i, r.QuestionID, questions[i].ID)
		}
		letters := []string{"A", "B", "C", "D"}
		for j, opt := range r.Options {
			if opt.Letter != letters[j] {
				t.Errorf("review %d: option %d letter %s, want %s", i, j, opt.Letter, letters[j])
			}
		}
	}
}
