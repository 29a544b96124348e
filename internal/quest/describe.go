package quest

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/AtelierGuildRank_Go/internal/domain"
)

// DescribeCondition renders a condition as a short human-readable requirement for MissingItem diagnostics
func DescribeCondition(condition domain.QuestCondition) string {
	var desc string

	switch rule := condition.Rule.(type) {
	case domain.SpecificRule:
		if rule.ItemID == "" {
			desc = "Any item"
		} else {
			desc = rule.ItemID
		}
	case domain.CategoryRule:
		if rule.Category == "" {
			desc = "Any item"
		} else {
			desc = titleName(string(rule.Category)) + " item"
		}
	case domain.AttributeRule:
		desc = fmt.Sprintf("Item with %s >= %d", titleName(string(rule.Attribute)), rule.MinValue)
	case domain.EffectRule:
		desc = fmt.Sprintf("Item with %s >= %d", titleName(string(rule.EffectType)), rule.MinValue)
	case domain.RareMaterialRule:
		desc = fmt.Sprintf("Item made with %d rare materials", rule.Count)
	case domain.MaterialRule:
		desc = "Item made with " + rule.MaterialID
	case domain.CompositeRule:
		parts := make([]string, 0, len(rule.SubConditions))
		for _, sub := range rule.SubConditions {
			parts = append(parts, DescribeCondition(sub))
		}
		desc = "Item meeting: " + strings.Join(parts, "; ")
	default:
		desc = "Any item"
	}

	if condition.MinQuality != nil {
		desc = fmt.Sprintf("%s (quality %s or higher)", desc, *condition.MinQuality)
	}
	return desc
}

func titleName(s string) string {
	// Casers are stateful, so one is created per call
	return cases.Title(language.English).String(strings.ToLower(strings.ReplaceAll(s, "_", " ")))
}
