// Package i18n holds the UI string tables served to the browser frontend.
package i18n

// Bundle is one language's strings plus its layout direction.
type Bundle struct {
	Direction string            `json:"direction"` // "ltr" or "rtl"
	Strings   map[string]string `json:"strings"`
}

// Languages lists the supported language codes.
var Languages = []string{"en", "ar"}

// ForLanguage returns the bundle for a language, falling back to English.
func ForLanguage(lang string) Bundle {
	if b, ok := bundles[lang]; ok {
		return b
	}
	return bundles["en"]
}

var bundles = map[string]Bundle{
	"en": {
		Direction: "ltr",
		Strings: map[string]string{
			"siteTitle":         "Matchday",
			"home":              "Home",
			"articles":          "Articles",
			"quizzes":           "Quizzes",
			"liveMatches":       "Live",
			"upcomingMatches":   "Upcoming",
			"finishedMatches":   "Finished",
			"noMatches":         "No matches found for this period.",
			"noMatchesForFilter": "No matches found for the selected filters.",
			"allLeagues":        "All leagues",
			"allCountries":      "All countries",
			"searchTeam":        "Search team...",
			"worldCupBanner":    "World Cup matches",
			"quizTitle":         "Football Quiz",
			"quizIntro":         "Pick a level and answer 5 questions before the clock runs out.",
			"intermediate":      "Intermediate",
			"advanced":          "Advanced",
			"champion":          "Champion",
			"nextQuestion":      "Next question",
			"yourScore":         "Your score",
			"quizResult":        "You answered {score} of {total} questions correctly.",
			"playAgain":         "Play again",
			"backToLevels":      "Back to levels",
			"sponsors":          "Sponsors",
		},
	},
	"ar": {
		Direction: "rtl",
		Strings: map[string]string{
			"siteTitle":         "يوم المباراة",
			"home":              "الرئيسية",
			"articles":          "مقالات",
			"quizzes":           "اختبارات",
			"liveMatches":       "مباشر",
			"upcomingMatches":   "القادمة",
			"finishedMatches":   "المنتهية",
			"noMatches":         "لا توجد مباريات في هذه الفترة.",
			"noMatchesForFilter": "لا توجد مباريات مطابقة للتصفية المحددة.",
			"allLeagues":        "كل البطولات",
			"allCountries":      "كل الدول",
			"searchTeam":        "ابحث عن فريق...",
			"worldCupBanner":    "مباريات كأس العالم",
			"quizTitle":         "اختبار كرة القدم",
			"quizIntro":         "اختر مستوى وأجب عن 5 أسئلة قبل انتهاء الوقت.",
			"intermediate":      "متوسط",
			"advanced":          "متقدم",
			"champion":          "بطل",
			"nextQuestion":      "السؤال التالي",
			"yourScore":         "نتيجتك",
			"quizResult":        "أجبت عن {score} من {total} أسئلة بشكل صحيح.",
			"playAgain":         "العب مجددًا",
			"backToLevels":      "العودة إلى المستويات",
			"sponsors":          "الرعاة",
		},
	},
}
