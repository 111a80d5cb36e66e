package services

import (
	"sort"
	"strings"
	"sync"

	"payroll/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// NormalizeInput lowercases and strips accents so queries match regardless
// of casing or diacritics.
func NormalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// CalculateSimilarity returns 0..1 levenshtein similarity between two strings.
func CalculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

func prepareNameList(employees []models.Employee) []string {
	uniqueValues := make(map[string]bool)
	for _, emp := range employees {
		if emp.Name != "" {
			uniqueValues[NormalizeInput(emp.Name)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// ScoreEmployee ranks an employee against a normalized query. Exact name
// matches outrank partial ones, which outrank fuzzy and field matches.
func ScoreEmployee(query string, emp models.Employee, cmName *closestmatch.ClosestMatch) int {
	score := 0

	name := NormalizeInput(emp.Name)
	if name == query {
		score += 40
	}
	if name != "" && (strings.Contains(name, query) || strings.Contains(query, name)) {
		score += 25
	} else if CalculateSimilarity(query, name) > 0.7 {
		score += 18
	}
	// Closest always returns some name, so require a minimum similarity
	// before treating it as evidence of a match.
	if cmName != nil && cmName.Closest(query) == name && CalculateSimilarity(query, name) > 0.5 {
		score += 10
	}

	for _, field := range []string{emp.Designation, emp.Department} {
		normalized := NormalizeInput(field)
		if normalized == "" {
			continue
		}
		if strings.Contains(normalized, query) || CalculateSimilarity(query, normalized) > 0.7 {
			score += 8
		}
	}

	return score
}

type scoredEmployee struct {
	employee models.Employee
	score    int
}

// SearchEmployees returns the employees matching query, best match first.
func SearchEmployees(query string, employees []models.Employee) []models.Employee {
	normalizedQuery := NormalizeInput(query)
	if normalizedQuery == "" {
		return employees
	}

	cmName := createMatcher(prepareNameList(employees))

	scoreCh := make(chan scoredEmployee, len(employees))
	var wg sync.WaitGroup

	for _, emp := range employees {
		wg.Add(1)
		go func(emp models.Employee) {
			defer wg.Done()
			score := ScoreEmployee(normalizedQuery, emp, cmName)
			if score > 0 {
				scoreCh <- scoredEmployee{employee: emp, score: score}
			}
		}(emp)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	var matched []scoredEmployee
	for scored := range scoreCh {
		matched = append(matched, scored)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].score != matched[j].score {
			return matched[i].score > matched[j].score
		}
		return matched[i].employee.EmpID < matched[j].employee.EmpID
	})

	results := make([]models.Employee, 0, len(matched))
	for _, scored := range matched {
		results = append(results, scored.employee)
	}
	return results
}
