package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/stuath/internal/i18n"
	"github.com/alexanderramin/stuath/internal/scheduler"
)

var dropHints = map[scheduler.DropReason]string{
	scheduler.ReasonMissingSeparator: `expected "Title - Day H:MM AM"`,
	scheduler.ReasonMissingDay:       "no day found",
	scheduler.ReasonMissingTime:      "no time like 3:30 PM found",
	scheduler.ReasonInvalidTime:      "time out of range",
	scheduler.ReasonCapped:           "capped at 168 hours per week",
}

// FormatDropped lists input lines that were skipped. It returns "" when
// nothing was skipped.
func FormatDropped(dropped []scheduler.Dropped, tr *i18n.Translator) string {
	if len(dropped) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(StyleYellow.Render(fmt.Sprintf("⚠ %s (%d)", tr.T(i18n.KeySkipped), len(dropped))))
	b.WriteString("\n")
	for _, d := range dropped {
		hint := dropHints[d.Reason]
		if hint == "" {
			hint = string(d.Reason)
		}
		fmt.Fprintf(&b, "  %s %q %s\n", Dim(string(d.Source)+":"), d.Line, Dim("("+hint+")"))
	}
	return b.String()
}
