package inquisitor

import (
	"context"
	"strings"

	"velos/internal/evidence"
	"velos/internal/pipeline/models"
)

// Question mining categories. Each query pulls a different kind of claim out
// of the candidate's evidence so the questions target real statements.
var evidenceQueries = []struct {
	category string
	query    string
}{
	{"architecture", "architecture design system components"},
	{"challenges", "challenges problems solved difficulties"},
	{"engineering", "implementation built developed created"},
	{"optimization", "performance optimization scaling"},
	{"decisions", "decisions choices trade-offs selected"},
}

var questionTemplates = []string{
	"Describe the architecture of your most complex project. What were the main components?",
	"What was the biggest technical challenge you faced, and how did you solve it?",
	"Explain a debugging scenario where you had to trace through multiple layers.",
	"How did you handle data flow in your project? Walk us through the pipeline.",
	"What trade-offs did you consider when choosing your tech stack?",
	"Describe how you tested your implementation. What was your testing strategy?",
	"How did you optimize performance in your project? What metrics did you measure?",
	"Explain how you handled error cases and edge scenarios.",
}

var noMaterialQuestions = []string{
	"Tell us about the most challenging technical project you've worked on.",
	"Describe a problem you solved using your technical skills.",
	"What was your approach to learning a new technology recently?",
}

// generateQuestions builds verification questions, preferring ones anchored
// to specific evidence from the candidate's own material.
func generateQuestions(ctx context.Context, source evidence.Source, candidateID string, clean models.CleanData, count int) []models.Question {
	var questions []models.Question

	if source != nil && candidateID != "" {
		for _, eq := range evidenceQueries {
			if len(questions) == count {
				break
			}
			matches, err := source.Search(ctx, candidateID, eq.query, 1)
			if err != nil || len(matches) == 0 || matches[0].Confidence < 30 {
				continue
			}
			questions = append(questions, models.Question{
				Text:   evidenceQuestion(eq.category, matches[0].Text),
				Source: excerptSource(matches[0].Text),
				Kind:   "evidence-based",
			})
		}
	}

	if len(questions) < count {
		questions = append(questions, templateQuestions(clean, count-len(questions))...)
	}
	return questions[:min(count, len(questions))]
}

func evidenceQuestion(category, chunk string) string {
	claim := excerptSource(chunk)
	switch category {
	case "architecture":
		return "Your material mentions \"" + claim + "\". Walk us through the architecture behind that: what were the components and how did they interact?"
	case "challenges":
		return "You describe \"" + claim + "\". What was the hardest part, and how exactly did you get past it?"
	case "optimization":
		return "Regarding \"" + claim + "\": what did you measure, and what moved the numbers?"
	case "decisions":
		return "You wrote \"" + claim + "\". What alternatives did you consider and why did you reject them?"
	default:
		return "Your material states \"" + claim + "\". Describe your specific contribution in detail."
	}
}

func excerptSource(chunk string) string {
	const max = 50
	s := strings.ReplaceAll(strings.TrimSpace(chunk), "\n", " ")
	if len(s) > max {
		s = s[:max] + "..."
	}
	return s
}

func templateQuestions(clean models.CleanData, count int) []models.Question {
	if len(clean.Skills) == 0 && len(clean.Projects) == 0 {
		return questionList(noMaterialQuestions, count, "fallback")
	}

	templates := make([]string, 0, len(questionTemplates)+3)
	lowerSkills := strings.ToLower(strings.Join(clean.Skills, " "))
	if strings.Contains(lowerSkills, "rag") || strings.Contains(lowerSkills, "llm") {
		templates = append(templates, "Walk us through your retrieval pipeline. How did you handle document chunking?")
	}
	if strings.Contains(lowerSkills, "aws") || strings.Contains(lowerSkills, "cloud") {
		templates = append(templates, "Describe your cloud architecture. How did you handle scaling and cost?")
	}
	if strings.Contains(lowerSkills, "python") {
		templates = append(templates, "How did you structure your Python codebase? Explain your module organization.")
	}
	templates = append(templates, questionTemplates...)

	return questionList(templates, count, "general skills")
}

func questionList(texts []string, count int, source string) []models.Question {
	if count > len(texts) {
		count = len(texts)
	}
	questions := make([]models.Question, 0, count)
	for _, text := range texts[:count] {
		questions = append(questions, models.Question{Text: text, Source: source, Kind: "fallback"})
	}
	return questions
}
