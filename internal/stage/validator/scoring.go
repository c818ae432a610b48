package validator

import "strings"

// baseScore measures keyword overlap between candidate skills and required
// skills, 0-100. An exact match counts 1.0, a substring match 0.5.
func baseScore(candidateSkills, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		// No specific requirements reads as a good but imperfect fit.
		return 75
	}
	if len(candidateSkills) == 0 {
		return 0
	}

	candidateSet := make(map[string]struct{}, len(candidateSkills))
	for _, skill := range candidateSkills {
		candidateSet[strings.ToLower(skill)] = struct{}{}
	}

	var matches float64
	for _, required := range requiredSkills {
		requiredLower := strings.ToLower(required)
		if _, ok := candidateSet[requiredLower]; ok {
			matches++
			continue
		}
		for candidate := range candidateSet {
			if strings.Contains(candidate, requiredLower) || strings.Contains(requiredLower, candidate) {
				matches += 0.5
				break
			}
		}
	}
	return matches / float64(len(requiredSkills)) * 100
}

const maxProjectBonus = 20

// projectBonus rewards declared projects that mention required skills:
// +3 per skill referenced, +2 per project up to 8, capped at 20.
func projectBonus(projects, requiredSkills []string) float64 {
	if len(projects) == 0 {
		return 0
	}

	projectsText := strings.ToLower(strings.Join(projects, " "))
	var bonus float64
	for _, skill := range requiredSkills {
		if strings.Contains(projectsText, strings.ToLower(skill)) {
			bonus += 3
		}
	}

	base := float64(len(projects) * 2)
	if base > 8 {
		base = 8
	}
	bonus += base

	if bonus > maxProjectBonus {
		bonus = maxProjectBonus
	}
	return bonus
}

// splitMatched partitions required skills into matched and missing against
// the candidate's exact skill set. Substring credit affects the score only,
// not the lists.
func splitMatched(candidateSkills, requiredSkills []string) (matched, missing []string) {
	candidateSet := make(map[string]struct{}, len(candidateSkills))
	for _, skill := range candidateSkills {
		candidateSet[strings.ToLower(skill)] = struct{}{}
	}
	for _, required := range requiredSkills {
		if _, ok := candidateSet[strings.ToLower(required)]; ok {
			matched = append(matched, required)
		} else {
			missing = append(missing, required)
		}
	}
	return matched, missing
}
