package validator

import (
	"strings"
)

// Requirements is the parsed view of a job description.
type Requirements struct {
	RequiredSkills []string `json:"required_skills"`
	NiceToHave     []string `json:"nice_to_have,omitempty"`
	MinYears       float64  `json:"min_years"`
	RoleLevel      string   `json:"role_level"`
}

// requirementLexicon is the skill vocabulary recognized in job descriptions.
var requirementLexicon = []string{
	"python", "java", "javascript", "typescript", "react", "angular",
	"node.js", "go", "golang", "rust", "sql", "aws", "azure", "gcp",
	"docker", "kubernetes", "terraform", "kafka", "redis", "postgresql",
	"mongodb", "elasticsearch", "grpc", "graphql", "microservices",
	"machine learning", "deep learning", "nlp", "llm",
	"fastapi", "django", "flask", "tensorflow", "pytorch",
	"git", "ci/cd", "agile", "scrum",
}

const maxRequiredSkills = 8

// ParseRequirements extracts structured requirements from free-form job
// description text.
func ParseRequirements(jobDescription string) Requirements {
	lower := strings.ToLower(jobDescription)

	var found []string
	for _, skill := range requirementLexicon {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
			if len(found) == maxRequiredSkills {
				break
			}
		}
	}

	level := "mid"
	minYears := 2.0
	switch {
	case containsAny(lower, "senior", "sr.", "lead", "principal"):
		level = "senior"
		minYears = 4
	case containsAny(lower, "junior", "jr.", "entry", "intern"):
		level = "junior"
		minYears = 0
	}

	return Requirements{
		RequiredSkills: found,
		MinYears:       minYears,
		RoleLevel:      level,
	}
}

func containsAny(text string, words ...string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
