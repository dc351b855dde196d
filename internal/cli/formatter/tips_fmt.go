package formatter

import (
	"strings"

	"github.com/alexanderramin/stuath/internal/domain"
	"github.com/alexanderramin/stuath/internal/i18n"
)

// AreaLookup maps a tip category back to its focus area.
type AreaLookup func(category string) (domain.FocusArea, bool)

// FormatTips renders one card per tip category with its icon.
func FormatTips(tips domain.Sections, areaOf AreaLookup, tr *i18n.Translator) string {
	var b strings.Builder
	b.WriteString(Header(tr.T(i18n.KeyTips)))
	b.WriteString("\n")
	if len(tips) == 0 {
		b.WriteString("\n" + Dim(tr.T(i18n.KeyNoItems)) + "\n")
		return b.String()
	}
	for _, sec := range tips {
		var area domain.FocusArea
		known := false
		if areaOf != nil {
			area, known = areaOf(sec.Name)
		}
		b.WriteString("\n")
		b.WriteString(RenderCard(CategoryIcon(area, known)+" "+sec.Name, sec.Items))
		b.WriteString("\n")
	}
	return b.String()
}
