package catalog

import (
	"strings"

	"github.com/alexanderramin/stuath/internal/domain"
)

// SelectTips returns one category per selected focus area, in canonical area
// order, followed by the sport-specific category when the sport has tips.
func (c *Catalog) SelectTips(p *domain.UserProfile) domain.Sections {
	tips := domain.Sections{}
	for _, area := range domain.FocusAreas {
		if !p.HasFocus(area) {
			continue
		}
		tmpl, ok := c.tipsFor(area)
		if !ok {
			continue
		}
		tips = append(tips, domain.Section{Name: tmpl.Category, Items: copyStrings(tmpl.Tips)})
	}

	if st, ok := c.sportTipsFor(p.SportKey()); ok {
		tips = append(tips, domain.Section{Name: c.SportTipsCategory, Items: copyStrings(st.Tips)})
	}
	return tips
}

// CategoryArea maps a tip category name back to its focus area. The
// sport-specific category and unknown names report false.
func (c *Catalog) CategoryArea(category string) (domain.FocusArea, bool) {
	for _, t := range c.Tips {
		if t.Category == category {
			return domain.FocusArea(t.Area), true
		}
	}
	return "", false
}

func (c *Catalog) tipsFor(area domain.FocusArea) (TipTemplate, bool) {
	for _, t := range c.Tips {
		if t.Area == string(area) {
			return t, true
		}
	}
	return TipTemplate{}, false
}

func (c *Catalog) sportTipsFor(key string) (SportTips, bool) {
	if key == "" {
		return SportTips{}, false
	}
	for _, st := range c.SportTips {
		if strings.ToLower(st.Sport) == key {
			return st, true
		}
	}
	return SportTips{}, false
}
