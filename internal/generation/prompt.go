package generation

import (
	"fmt"
	"strings"

	"github.com/lshigami/studyaid/internal/quiz"
)

const questionSystemPrompt = `You are a teacher writing study questions for a student from a textbook chapter.

Rules:
- Every question must be answerable from the chapter text alone.
- Match the vocabulary and difficulty to the student's grade.
- Keep each question self-contained and unambiguous.
- Give a short explanation for every answer.
- Respond only with JSON matching the provided schema.`

const notesSystemPrompt = `You are a teacher writing concise study notes for a student from a textbook chapter.

Rules:
- Use markdown with headings and bullet points.
- Cover the key concepts, definitions and examples in the order the chapter presents them.
- Match the vocabulary to the student's grade.
- End with a short summary section.`

// typeInstructions tells the model how each question type is shaped.
var typeInstructions = map[quiz.QuestionType]string{
	quiz.MultipleChoice: `Question type: multiple choice.
- Give exactly 4 options.
- Exactly one option is correct; distractors should reflect common misconceptions.
- Set correctAnswerIndex to the zero-based index of the correct option.
- Set answer to the letter (A, B, C or D) of the correct option.`,
	quiz.ShortAnswer: `Question type: short answer.
- The answer is one or two sentences.
- Do not include options.`,
	quiz.FillInTheBlank: `Question type: fill in the blank.
- Mark the blank in questionText with "_____".
- The answer is the word or phrase that fills the blank.
- Do not include options.`,
	quiz.TrueFalse: `Question type: true or false.
- questionText is a statement.
- The answer is "true" or "false", in lowercase.
- Do not include options.`,
}

func buildQuestionPrompt(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", in.Subject)
	fmt.Fprintf(&b, "Grade: %s\n", in.Grade)
	if pages := pageRange(in.StartPage, in.EndPage); pages != "" {
		fmt.Fprintf(&b, "Pages: %s\n", pages)
	}
	fmt.Fprintf(&b, "Number of questions: %d\n\n", in.Count)
	b.WriteString(typeInstructions[in.QuestionType])
	b.WriteString("\n\nChapter text:\n---\n")
	b.WriteString(strings.TrimSpace(in.ChapterText))
	b.WriteString("\n---\n")

	return b.String()
}

func buildNotesPrompt(in NotesInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", in.Subject)
	fmt.Fprintf(&b, "Grade: %s\n", in.Grade)
	if pages := pageRange(in.StartPage, in.EndPage); pages != "" {
		fmt.Fprintf(&b, "Pages: %s\n", pages)
	}
	b.WriteString("\nChapter text:\n---\n")
	b.WriteString(strings.TrimSpace(in.ChapterText))
	b.WriteString("\n---\n")

	return b.String()
}

func pageRange(start, end *int) string {
	switch {
	case start != nil && end != nil:
		return fmt.Sprintf("%d-%d", *start, *end)
	case start != nil:
		return fmt.Sprintf("%d", *start)
	}
	return ""
}
