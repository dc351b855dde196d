// Package i18n holds the static UI strings shown around a derived schedule.
// Lookups fall back to English and then to the key itself.
package i18n

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/stuath/internal/domain"
)

// ErrUnknownLanguage is returned for a language code with no string table.
var ErrUnknownLanguage = errors.New("unknown language")

// Default is the language used when nothing else is chosen.
const Default = "en"

// Keys shared by the formatter and the viewer.
const (
	KeyTabSchedule  = "tabSchedule"
	KeyTabWorkouts  = "tabWorkouts"
	KeyTabStudy     = "tabStudy"
	KeyTabTips      = "tabTips"
	KeyWeekly       = "weeklySchedule"
	KeyWorkoutPlans = "workoutPlans"
	KeyStudyPlans   = "studyPlans"
	KeyTips         = "successTips"
	KeyWorkout      = "workout"
	KeyNoItems      = "noItems"
	KeyGenerating   = "generating"
	KeySkipped      = "skippedLines"
	KeyProfile      = "profile"
	KeyExported     = "exported"
	KeyViewerHelp   = "viewerHelp"
)

var tables = map[string]map[string]string{
	"en": {
		"monday": "Monday", "tuesday": "Tuesday", "wednesday": "Wednesday", "thursday": "Thursday",
		"friday": "Friday", "saturday": "Saturday", "sunday": "Sunday",

		KeyTabSchedule: "Schedule", KeyTabWorkouts: "Workouts", KeyTabStudy: "Study", KeyTabTips: "Tips",
		KeyWeekly: "Weekly Schedule", KeyWorkoutPlans: "Workout Plans", KeyStudyPlans: "Study Plans",
		KeyTips: "Success Tips", KeyWorkout: "Workout", KeyNoItems: "Nothing scheduled",
		KeyGenerating: "Generating your schedule...", KeySkipped: "Skipped lines",
		KeyProfile: "Profile", KeyExported: "Schedule exported to",
		KeyViewerHelp: "tab/→ next · shift+tab/← prev · 1-4 jump · q quit",

		"type.class": "Class", "type.practice": "Practice", "type.game": "Game",
		"type.study": "Study", "type.workout": "Workout", "type.rest": "Rest",
	},
	"fr": {
		"monday": "Lundi", "tuesday": "Mardi", "wednesday": "Mercredi", "thursday": "Jeudi",
		"friday": "Vendredi", "saturday": "Samedi", "sunday": "Dimanche",

		KeyTabSchedule: "Emploi du temps", KeyTabWorkouts: "Entraînements", KeyTabStudy: "Études", KeyTabTips: "Conseils",
		KeyWeekly: "Emploi du temps hebdomadaire", KeyWorkoutPlans: "Plans d'entraînement",
		KeyStudyPlans: "Plans d'étude", KeyTips: "Conseils de réussite", KeyWorkout: "Entraînement",
		KeyNoItems: "Rien de prévu", KeyGenerating: "Génération de votre emploi du temps...",
		KeySkipped: "Lignes ignorées", KeyProfile: "Profil", KeyExported: "Emploi du temps exporté vers",
		KeyViewerHelp: "tab/→ suivant · shift+tab/← précédent · 1-4 aller à · q quitter",

		"type.class": "Cours", "type.practice": "Entraînement d'équipe", "type.game": "Match",
		"type.study": "Étude", "type.workout": "Exercice", "type.rest": "Repos",
	},
	"zh": {
		"monday": "星期一", "tuesday": "星期二", "wednesday": "星期三", "thursday": "星期四",
		"friday": "星期五", "saturday": "星期六", "sunday": "星期日",

		KeyTabSchedule: "日程", KeyTabWorkouts: "训练", KeyTabStudy: "学习", KeyTabTips: "建议",
		KeyWeekly: "每周日程", KeyWorkoutPlans: "训练计划", KeyStudyPlans: "学习计划",
		KeyTips: "成功建议", KeyWorkout: "训练", KeyNoItems: "暂无安排",
		KeyGenerating: "正在生成您的日程...", KeySkipped: "已跳过的行",
		KeyProfile: "个人资料", KeyExported: "日程已导出到",
		KeyViewerHelp: "tab/→ 下一个 · shift+tab/← 上一个 · 1-4 跳转 · q 退出",

		"type.class": "课程", "type.practice": "训练课", "type.game": "比赛",
		"type.study": "学习", "type.workout": "锻炼", "type.rest": "休息",
	},
}

// Translator resolves keys for one language.
type Translator struct {
	lang string
}

// New returns a Translator for code. Unknown codes are rejected.
func New(code string) (*Translator, error) {
	code = Normalize(code)
	if _, ok := tables[code]; !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownLanguage, code, strings.Join(Languages(), ", "))
	}
	return &Translator{lang: code}, nil
}

// MustNew is New for codes known to exist, such as values from Resolve.
func MustNew(code string) *Translator {
	t, err := New(code)
	if err != nil {
		panic(err)
	}
	return t
}

// Lang returns the language code in use.
func (t *Translator) Lang() string { return t.lang }

// T returns the string for key.
func (t *Translator) T(key string) string {
	if s, ok := tables[t.lang][key]; ok {
		return s
	}
	if s, ok := tables[Default][key]; ok {
		return s
	}
	return key
}

// Day returns the localized name of a canonical day.
func (t *Translator) Day(d domain.Day) string {
	return t.T(strings.ToLower(string(d)))
}

// ItemType returns the localized label of an item type.
func (t *Translator) ItemType(it domain.ItemType) string {
	return t.T("type." + string(it))
}

// Supported reports whether code has a string table.
func Supported(code string) bool {
	_, ok := tables[Normalize(code)]
	return ok
}

// Languages lists the available codes in sorted order.
func Languages() []string {
	out := make([]string, 0, len(tables))
	for code := range tables {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Normalize lower-cases a code and strips any region suffix ("fr-CA" -> "fr").
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_."); i >= 0 {
		code = code[:i]
	}
	return code
}

// Resolve picks the first supported code among the candidates, in priority
// order, and falls back to Default.
func Resolve(candidates ...string) string {
	for _, c := range candidates {
		if c != "" && Supported(c) {
			return Normalize(c)
		}
	}
	return Default
}
