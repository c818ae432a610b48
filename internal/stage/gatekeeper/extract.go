package gatekeeper

import (
	"regexp"
	"sort"
	"strings"

	"velos/internal/pipeline/models"
)

// skillLexicon is the recognized technical vocabulary. Matching is
// case-insensitive on word boundaries.
var skillLexicon = []string{
	"python", "java", "javascript", "typescript", "rust", "go", "golang",
	"c++", "c#", "ruby", "php", "swift", "kotlin", "scala",
	"react", "angular", "vue", "fastapi", "django", "flask",
	"express", "node.js", "nodejs", "spring", "rails",
	"machine learning", "deep learning", "tensorflow", "pytorch",
	"scikit-learn", "pandas", "numpy", "nlp", "computer vision",
	"llm", "langchain", "rag", "embeddings", "vector database",
	"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "k8s",
	"terraform", "jenkins", "ci/cd", "github actions",
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
	"kafka", "grpc", "graphql", "rest api", "microservices",
	"git", "linux", "bash", "agile", "scrum",
}

var educationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(Bachelor'?s?|B\.?S\.?|B\.?Tech|B\.?E\.?)`),
	regexp.MustCompile(`(?i)(Master'?s?|M\.?S\.?|M\.?Tech|MBA|M\.?E\.?)`),
	regexp.MustCompile(`(?i)(Ph\.?D\.?|Doctorate)`),
	regexp.MustCompile(`(?i)(Associate'?s?|Diploma)`),
}

var certificationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(AWS Certified[^,\n]+)`),
	regexp.MustCompile(`(?i)(Google Cloud[^,\n]+)`),
	regexp.MustCompile(`(?i)(Azure[^,\n]+Certified)`),
	regexp.MustCompile(`(?i)(PMP|Scrum Master|CISSP)`),
}

var projectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Project|Built|Developed|Created|Implemented|Designed):\s*([^\n]+)`),
	regexp.MustCompile(`(?i)(?:Built|Developed|Created|Implemented|Designed)\s+([^\n]+)`),
	regexp.MustCompile(`•\s*([A-Z][^•\n]+(?:system|app|application|platform|tool|service|api|pipeline|model))`),
}

const maxProjects = 10

// ExtractCleanData pulls the bias-safe structured view out of redacted text:
// skills, project lines, education level, and certifications. Nothing here
// may carry PII.
func ExtractCleanData(redacted string) models.CleanData {
	clean := models.CleanData{
		Skills:   matchSkills(redacted),
		Projects: matchProjects(redacted),
	}

	seen := make(map[string]struct{})
	for _, pattern := range educationPatterns {
		if m := pattern.FindStringSubmatch(redacted); m != nil {
			if _, dup := seen[strings.ToLower(m[1])]; !dup {
				seen[strings.ToLower(m[1])] = struct{}{}
				clean.EducationLevels = append(clean.EducationLevels, m[1])
			}
		}
	}

	certSeen := make(map[string]struct{})
	for _, pattern := range certificationPatterns {
		for _, m := range pattern.FindAllStringSubmatch(redacted, -1) {
			cert := strings.TrimSpace(m[1])
			if _, dup := certSeen[cert]; dup {
				continue
			}
			certSeen[cert] = struct{}{}
			clean.Certifications = append(clean.Certifications, cert)
			if len(clean.Certifications) == 5 {
				return clean
			}
		}
	}
	return clean
}

func matchSkills(text string) []string {
	var found []string
	for _, skill := range skillLexicon {
		if skillPattern(skill).MatchString(text) {
			found = append(found, skill)
		}
	}
	sort.Strings(found)
	return found
}

func skillPattern(skill string) *regexp.Regexp {
	escaped := regexp.QuoteMeta(skill)
	if regexp.MustCompile(`^\w+$`).MatchString(skill) {
		return regexp.MustCompile(`(?i)\b` + escaped + `\b`)
	}
	// Symbols like c++ break \b semantics; anchor on whitespace instead.
	return regexp.MustCompile(`(?i)(?:^|\s)` + escaped + `(?:$|\s|,)`)
}

func matchProjects(text string) []string {
	var projects []string
	seen := make(map[string]struct{})
	for _, pattern := range projectPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			project := strings.TrimSpace(m[1])
			if len(project) <= 10 {
				continue
			}
			if _, dup := seen[project]; dup {
				continue
			}
			seen[project] = struct{}{}
			projects = append(projects, project)
			if len(projects) == maxProjects {
				return projects
			}
		}
	}
	return projects
}
