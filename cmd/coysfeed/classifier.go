// cmd/coysfeed/classifier.go
package main

import "strings"

// Category base priorities. Boosts are additive on top of these; the
// resulting score has no fixed upper bound.
var categoryPriorities = map[Category]int{
	CategoryTransfer:    10,
	CategoryMatchResult: 9,
	CategoryInjury:      8,
	CategoryManager:     7,
	CategoryTeamNews:    6,
	CategoryYouth:       4,
	CategoryGeneral:     3,
}

// categoryRule pairs a category with the keywords that select it.
type categoryRule struct {
	category Category
	keywords []string
}

// Classifier maps free text to a category and a priority score. Rules
// are evaluated in order, first match wins; no match means GENERAL.
type Classifier struct {
	rules []categoryRule
}

// NewClassifier builds the ordered rule table. The MANAGER rule takes
// the manager's name keywords from configuration so a dugout change is
// a config edit rather than a code edit.
func NewClassifier(managerKeywords []string) *Classifier {
	managerWords := append([]string{"manager"}, managerKeywords...)

	return &Classifier{
		rules: []categoryRule{
			{CategoryTransfer, []string{"transfer", "signing", "target"}},
			{CategoryMatchResult, []string{"result", "score", "match"}},
			{CategoryInjury, []string{"injury", "fitness", "medical"}},
			{CategoryManager, managerWords},
			{CategoryTeamNews, []string{"team", "squad", "lineup"}},
			{CategoryYouth, []string{"youth", "academy", "development"}},
		},
	}
}

// Categorize returns the first rule whose keyword set matches the text.
func (c *Classifier) Categorize(text string) Category {
	lower := strings.ToLower(text)
	for _, rule := range c.rules {
		if containsAny(lower, rule.keywords) {
			return rule.category
		}
	}
	return CategoryGeneral
}

// Priority computes the ranking score for a piece of text: the category
// base plus keyword boosts. Both boosts are independent and may stack.
func (c *Classifier) Priority(text string) int {
	priority := categoryPriorities[c.Categorize(text)]

	lower := strings.ToLower(text)
	if containsAny(lower, []string{"breaking", "confirmed"}) {
		priority += 2
	}
	if containsAny(lower, []string{"exclusive", "first"}) {
		priority += 1
	}

	return priority
}

// Impact keyword tiers, checked in strict order. URGENT wins over HIGH
// even when a title matches both.
var (
	urgentKeywords = []string{"breaking", "confirmed", "official", "live"}
	highKeywords   = []string{"transfer", "signing", "injury", "suspended"}
	mediumKeywords = []string{"rumor", "target", "linked", "interest"}
)

// AssessImpact derives the display urgency tier from the title alone.
func AssessImpact(title string) Impact {
	lower := strings.ToLower(title)

	if containsAny(lower, urgentKeywords) {
		return ImpactUrgent
	}
	if containsAny(lower, highKeywords) {
		return ImpactHigh
	}
	if containsAny(lower, mediumKeywords) {
		return ImpactMedium
	}
	return ImpactLow
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
