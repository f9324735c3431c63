// Package articles holds the static editorial catalog for the articles
// section, per language.
package articles

import "github.com/karimfs/matchday/internal/models"

// Catalog returns the article list for a language, falling back to English.
func Catalog(lang string) []models.Article {
	if as, ok := catalogs[lang]; ok {
		return as
	}
	return catalogs["en"]
}

// ByID returns one article from a language's catalog.
func ByID(lang string, id int) (models.Article, bool) {
	for _, a := range Catalog(lang) {
		if a.ID == id {
			return a, true
		}
	}
	return models.Article{}, false
}

var catalogs = map[string][]models.Article{
	"en": {
		{
			ID:       1,
			Title:    "How the High Press Conquered Modern Football",
			Category: "Tactics",
			Excerpt:  "From Bielsa's Chile to Klopp's Liverpool, the high press went from curiosity to orthodoxy in a decade.",
			Content: "Pressing is older than television coverage of the game, but the systematic, " +
				"trigger-based high press is a modern invention. Coaches now choreograph exactly which " +
				"pass launches the hunt: a ball into the full-back with a closed body shape, a slow " +
				"touch from the pivot. The reward is winning the ball where one pass creates a chance. " +
				"The cost is physical, which is why pressing sides rotate aggressively and why summer " +
				"conditioning now resembles middle-distance training more than old-school laps.",
		},
		{
			ID:       2,
			Title:    "The Quiet Revolution of the Goalkeeper",
			Category: "Analysis",
			Excerpt:  "Keepers complete more passes than some midfielders did twenty years ago. What changed?",
			Content: "The back-pass rule of 1992 planted the seed, but possession football made the " +
				"goalkeeper a genuine eleventh outfield player. Today's keeper splits the centre-backs, " +
				"invites the press and plays through it. Recruitment has followed: academies rank " +
				"distribution alongside shot-stopping, and a keeper uncomfortable with the ball at his " +
				"feet struggles to find a top-flight club regardless of his reflexes.",
		},
		{
			ID:       3,
			Title:    "Why World Cup Qualifying Still Produces Miracles",
			Category: "World Cup",
			Excerpt:  "Expanded finals were supposed to kill the drama. The qualifiers refuse to cooperate.",
			Content: "Even with 48 teams heading to the finals, the last matchday of qualifying keeps " +
				"delivering chaos: goal-difference swings across simultaneous kick-offs, minnows parking " +
				"a decade of hope on one counter-attack. The format rewards squads who treat every " +
				"window seriously, and punishes federations who rest stars in 'formality' fixtures. " +
				"Ask any supporter of a team that missed out on goal difference.",
		},
		{
			ID:       4,
			Title:    "Inside the Numbers: What Expected Goals Actually Tells You",
			Category: "Analysis",
			Excerpt:  "xG is neither magic nor nonsense. It is a sample-size machine.",
			Content: "A single match xG readout is close to meaningless; over ten matches it is the best " +
				"public predictor of future results we have. The metric simply counts chance quality, " +
				"and chance quality is the most repeatable skill in football. When a side wins while " +
				"being out-created for months, regression usually arrives with the subtlety of a " +
				"relegation six-pointer.",
		},
		{
			ID:       5,
			Title:    "The Art of the Second Striker",
			Category: "Tactics",
			Excerpt:  "Neither a nine nor a ten, the withdrawn forward is football's hardest role to defend.",
			Content: "Defences are organized around reference points: the striker pins the centre-backs, " +
				"the winger pins the full-back. The second striker offers none. Drifting between lines, " +
				"arriving late in the box, pressing from behind the first wave, the role demands a rare " +
				"cocktail of spatial feel and finishing. It is no accident that so many of the game's " +
				"most loved players lived in that pocket.",
		},
	},
	"ar": {
		{
			ID:       1,
			Title:    "كيف سيطر الضغط العالي على كرة القدم الحديثة",
			Category: "تكتيك",
			Excerpt:  "من تشيلي بييلسا إلى ليفربول كلوب، تحول الضغط العالي من فكرة غريبة إلى قاعدة في عقد واحد.",
			Content: "الضغط على حامل الكرة قديم قدم اللعبة، لكن الضغط العالي المنظم القائم على إشارات " +
				"محددة اختراع حديث. يحدد المدربون اليوم بدقة التمريرة التي تطلق المطاردة، والمكافأة هي " +
				"استرداد الكرة في منطقة تصنع منها تمريرة واحدة فرصة محققة.",
		},
		{
			ID:       2,
			Title:    "الثورة الهادئة لحارس المرمى",
			Category: "تحليل",
			Excerpt:  "يلمس الحارس اليوم الكرة بقدميه أكثر من بعض لاعبي الوسط قبل عشرين عامًا.",
			Content: "زرعت قاعدة التمرير للخلف عام 1992 البذرة، ثم جعلت كرة الاستحواذ الحارس لاعبًا " +
				"حادي عشر حقيقيًا. حارس اليوم يقف بين قلبي الدفاع ويستدرج الضغط ويمرر من خلاله، " +
				"وأصبحت الأكاديميات تقيم التوزيع جنبًا إلى جنب مع التصدي.",
		},
		{
			ID:       3,
			Title:    "لماذا ما زالت تصفيات كأس العالم تصنع المعجزات",
			Category: "كأس العالم",
			Excerpt:  "كان يفترض أن تقتل النهائيات الموسعة الإثارة، لكن التصفيات ترفض الاستسلام.",
			Content: "حتى مع صعود 48 منتخبًا إلى النهائيات، ما زالت الجولة الأخيرة من التصفيات تقدم " +
				"الفوضى الجميلة: فارق أهداف يتأرجح بين مباراتين تلعبان في التوقيت نفسه، ومنتخب صغير " +
				"يعلق آمال عقد كامل على هجمة مرتدة واحدة.",
		},
	},
}
