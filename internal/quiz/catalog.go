package quiz

import "github.com/karimfs/matchday/internal/models"

// Catalog returns the quiz catalogs for a language. Unknown languages fall
// back to English.
func Catalog(lang string) []models.Quiz {
	if qs, ok := catalogs[lang]; ok {
		return qs
	}
	return catalogs["en"]
}

// ForLevel returns the catalog for one level in the given language.
func ForLevel(lang string, level models.QuizLevel) (models.Quiz, bool) {
	for _, q := range Catalog(lang) {
		if q.Level == level {
			return q, true
		}
	}
	return models.Quiz{}, false
}

var catalogs = map[string][]models.Quiz{
	"en": {
		{
			Title: "Football Basics",
			Level: models.LevelIntermediate,
			Questions: []models.Question{
				{
					ID:          1,
					Question:    "Which country won the 2022 FIFA World Cup?",
					Options:     []string{"Argentina", "France", "Brazil", "Germany"},
					Answer:      "Argentina",
					Explanation: "Argentina beat France on penalties in Qatar after a 3-3 draw.",
				},
				{
					ID:          2,
					Question:    "How many players does a team field at kick-off?",
					Options:     []string{"9", "10", "11", "12"},
					Answer:      "11",
					Explanation: "A side starts with eleven players, one of them the goalkeeper.",
				},
				{
					ID:          3,
					Question:    "Which club plays its home matches at Old Trafford?",
					Options:     []string{"Liverpool", "Manchester United", "Arsenal", "Manchester City"},
					Answer:      "Manchester United",
					Explanation: "Old Trafford has been Manchester United's home since 1910.",
				},
				{
					ID:          4,
					Question:    "Which card sends a player off the pitch?",
					Options:     []string{"Yellow", "Red", "Green", "Blue"},
					Answer:      "Red",
					Explanation: "A straight red, or a second yellow, means an immediate dismissal.",
				},
				{
					ID:          5,
					Question:    "How long is a standard match without stoppage time?",
					Options:     []string{"80 minutes", "90 minutes", "100 minutes", "120 minutes"},
					Answer:      "90 minutes",
					Explanation: "Two halves of 45 minutes, plus whatever the referee adds on.",
				},
				{
					ID:          6,
					Question:    "What is awarded for a foul by a defender inside his own penalty area?",
					Options:     []string{"Corner kick", "Free kick", "Penalty kick", "Throw-in"},
					Answer:      "Penalty kick",
					Explanation: "A direct-free-kick offence inside the area becomes a penalty.",
				},
				{
					ID:          7,
					Question:    "Which country is home to the Premier League?",
					Options:     []string{"Spain", "Italy", "England", "France"},
					Answer:      "England",
					Explanation: "The Premier League replaced the English First Division in 1992.",
				},
			},
		},
		{
			Title: "Club & Country",
			Level: models.LevelAdvanced,
			Questions: []models.Question{
				{
					ID:          1,
					Question:    "Who has won the most Ballon d'Or awards?",
					Options:     []string{"Cristiano Ronaldo", "Lionel Messi", "Michel Platini", "Johan Cruyff"},
					Answer:      "Lionel Messi",
					Explanation: "Messi's 2023 award was his eighth, three clear of Ronaldo.",
				},
				{
					ID:          2,
					Question:    "Which club has the most Champions League titles?",
					Options:     []string{"AC Milan", "Bayern Munich", "Liverpool", "Real Madrid"},
					Answer:      "Real Madrid",
					Explanation: "Real Madrid's 2024 triumph was their fifteenth European crown.",
				},
				{
					ID:          3,
					Question:    "Which nation has won the most World Cups?",
					Options:     []string{"Germany", "Italy", "Brazil", "Argentina"},
					Answer:      "Brazil",
					Explanation: "Brazil have five titles: 1958, 1962, 1970, 1994 and 2002.",
				},
				{
					ID:          4,
					Question:    "Who scored the 'Hand of God' goal?",
					Options:     []string{"Pelé", "Diego Maradona", "Zico", "Mario Kempes"},
					Answer:      "Diego Maradona",
					Explanation: "Maradona punched the ball past Shilton against England in 1986.",
				},
				{
					ID:          5,
					Question:    "Which African nation was the first to reach a World Cup quarter-final?",
					Options:     []string{"Nigeria", "Senegal", "Cameroon", "Ghana"},
					Answer:      "Cameroon",
					Explanation: "Roger Milla's Cameroon reached the last eight at Italia '90.",
				},
				{
					ID:          6,
					Question:    "Which goalkeeper won the Ballon d'Or in 1963?",
					Options:     []string{"Gordon Banks", "Lev Yashin", "Dino Zoff", "Sepp Maier"},
					Answer:      "Lev Yashin",
					Explanation: "The 'Black Spider' remains the only keeper to win the award.",
				},
				{
					ID:          7,
					Question:    "Which club did Pep Guardiola manage first?",
					Options:     []string{"Bayern Munich", "Manchester City", "Barcelona", "Barcelona B"},
					Answer:      "Barcelona B",
					Explanation: "Guardiola coached the B side for a season before the 2008 first-team job.",
				},
			},
		},
		{
			Title: "For the Historians",
			Level: models.LevelChampion,
			Questions: []models.Question{
				{
					ID:          1,
					Question:    "In which year was the first World Cup held?",
					Options:     []string{"1926", "1930", "1934", "1938"},
					Answer:      "1930",
					Explanation: "Hosts Uruguay won the inaugural tournament in Montevideo.",
				},
				{
					ID:          2,
					Question:    "Who scored the fastest goal in World Cup history?",
					Options:     []string{"Hakan Şükür", "Bryan Robson", "Clint Dempsey", "David Villa"},
					Answer:      "Hakan Şükür",
					Explanation: "Şükür scored after 10.8 seconds against South Korea in 2002.",
				},
				{
					ID:          3,
					Question:    "Which club won the first European Cup in 1956?",
					Options:     []string{"Benfica", "Real Madrid", "Stade de Reims", "AC Milan"},
					Answer:      "Real Madrid",
					Explanation: "Real Madrid beat Reims 4-3 in Paris and kept the cup for five years.",
				},
				{
					ID:          4,
					Question:    "Who is the all-time top scorer at World Cup finals?",
					Options:     []string{"Ronaldo", "Gerd Müller", "Miroslav Klose", "Just Fontaine"},
					Answer:      "Miroslav Klose",
					Explanation: "Klose's 16 goals across four tournaments passed Ronaldo's 15 in 2014.",
				},
				{
					ID:          5,
					Question:    "Which country won the first Africa Cup of Nations in 1957?",
					Options:     []string{"Sudan", "Ethiopia", "Egypt", "Ghana"},
					Answer:      "Egypt",
					Explanation: "Egypt beat Ethiopia 4-0 in Khartoum in a three-team tournament.",
				},
				{
					ID:          6,
					Question:    "Who holds the record for most World Cup finals appearances?",
					Options:     []string{"Lothar Matthäus", "Lionel Messi", "Paolo Maldini", "Miroslav Klose"},
					Answer:      "Lionel Messi",
					Explanation: "Messi reached 26 matches across five World Cups in 2022.",
				},
				{
					ID:          7,
					Question:    "Which stadium hosted the deciding match of the 1950 World Cup?",
					Options:     []string{"Estadio Centenario", "Maracanã", "Wembley", "Azteca"},
					Answer:      "Maracanã",
					Explanation: "Uruguay stunned Brazil 2-1 before roughly 200,000 fans in Rio.",
				},
			},
		},
	},
	"ar": {
		{
			Title: "أساسيات كرة القدم",
			Level: models.LevelIntermediate,
			Questions: []models.Question{
				{
					ID:          1,
					Question:    "أي منتخب فاز بكأس العالم 2022؟",
					Options:     []string{"الأرجنتين", "فرنسا", "البرازيل", "ألمانيا"},
					Answer:      "الأرجنتين",
					Explanation: "فازت الأرجنتين على فرنسا بركلات الترجيح في قطر.",
				},
				{
					ID:          2,
					Question:    "كم عدد لاعبي الفريق عند بداية المباراة؟",
					Options:     []string{"9", "10", "11", "12"},
					Answer:      "11",
					Explanation: "يبدأ كل فريق بأحد عشر لاعبًا من بينهم حارس المرمى.",
				},
				{
					ID:          3,
					Question:    "ما البطاقة التي تعني طرد اللاعب؟",
					Options:     []string{"الصفراء", "الحمراء", "الخضراء", "الزرقاء"},
					Answer:      "الحمراء",
					Explanation: "البطاقة الحمراء المباشرة أو الصفراء الثانية تعني الطرد الفوري.",
				},
				{
					ID:          4,
					Question:    "كم تستغرق المباراة دون الوقت بدل الضائع؟",
					Options:     []string{"80 دقيقة", "90 دقيقة", "100 دقيقة", "120 دقيقة"},
					Answer:      "90 دقيقة",
					Explanation: "شوطان مدة كل منهما 45 دقيقة مع ما يضيفه الحكم.",
				},
				{
					ID:          5,
					Question:    "في أي بلد يقام الدوري الإنجليزي الممتاز؟",
					Options:     []string{"إسبانيا", "إيطاليا", "إنجلترا", "فرنسا"},
					Answer:      "إنجلترا",
					Explanation: "انطلق الدوري الممتاز في إنجلترا عام 1992.",
				},
				{
					ID:          6,
					Question:    "ماذا يُحتسب عند ارتكاب مخالفة داخل منطقة الجزاء؟",
					Options:     []string{"ركلة ركنية", "ركلة حرة", "ركلة جزاء", "رمية تماس"},
					Answer:      "ركلة جزاء",
					Explanation: "المخالفة المباشرة داخل المنطقة تتحول إلى ركلة جزاء.",
				},
			},
		},
		{
			Title: "أندية ومنتخبات",
			Level: models.LevelAdvanced,
			Questions: []models.Question{
				{
					ID:          1,
					Question:    "من الأكثر فوزًا بالكرة الذهبية؟",
					Options:     []string{"كريستيانو رونالدو", "ليونيل ميسي", "ميشيل بلاتيني", "يوهان كرويف"},
					Answer:      "ليونيل ميسي",
					Explanation: "نال ميسي جائزته الثامنة عام 2023.",
				},
				{
					ID:          2,
					Question:    "أي نادٍ يملك أكبر عدد من ألقاب دوري الأبطال؟",
					Options:     []string{"ميلان", "بايرن ميونخ", "ليفربول", "ريال مدريد"},
					Answer:      "ريال مدريد",
					Explanation: "توج ريال مدريد باللقب الخامس عشر عام 2024.",
				},
				{
					ID:          3,
					Question:    "أي منتخب فاز بأكبر عدد من كؤوس العالم؟",
					Options:     []string{"ألمانيا", "إيطاليا", "البرازيل", "الأرجنتين"},
					Answer:      "البرازيل",
					Explanation: "للبرازيل خمسة ألقاب آخرها في 2002.",
				},
				{
					ID:          4,
					Question:    "من سجل هدف «يد الله» الشهير؟",
					Options:     []string{"بيليه", "دييغو مارادونا", "زيكو", "ماريو كيمبس"},
					Answer:      "دييغو مارادونا",
					Explanation: "سجل مارادونا الهدف بيده أمام إنجلترا في مونديال 1986.",
				},
				{
					ID:          5,
					Question:    "أي منتخب أفريقي بلغ ربع نهائي كأس العالم أولًا؟",
					Options:     []string{"نيجيريا", "السنغال", "الكاميرون", "غانا"},
					Answer:      "الكاميرون",
					Explanation: "بلغت الكاميرون دور الثمانية في مونديال إيطاليا 1990.",
				},
				{
					ID:          6,
					Question:    "من هو الحارس الوحيد الفائز بالكرة الذهبية؟",
					Options:     []string{"غوردون بانكس", "ليف ياشين", "دينو زوف", "سيب ماير"},
					Answer:      "ليف ياشين",
					Explanation: "فاز «العنكبوت الأسود» بالجائزة عام 1963.",
				},
			},
		},
		{
			Title: "للمؤرخين",
			Level: models.LevelChampion,
			Questions: []models.Question{
				{
					ID:          1,
					Question:    "في أي عام أقيمت أول بطولة لكأس العالم؟",
					Options:     []string{"1926", "1930", "1934", "1938"},
					Answer:      "1930",
					Explanation: "فازت أوروغواي المضيفة بالنسخة الأولى في مونتيفيديو.",
				},
				{
					ID:          2,
					Question:    "من سجل أسرع هدف في تاريخ كأس العالم؟",
					Options:     []string{"هاكان شكور", "براين روبسون", "كلينت ديمبسي", "دافيد فيا"},
					Answer:      "هاكان شكور",
					Explanation: "سجل شكور بعد 10.8 ثانية أمام كوريا الجنوبية عام 2002.",
				},
				{
					ID:          3,
					Question:    "أي نادٍ فاز بأول كأس أوروبية عام 1956؟",
					Options:     []string{"بنفيكا", "ريال مدريد", "ستاد ريمس", "ميلان"},
					Answer:      "ريال مدريد",
					Explanation: "فاز ريال مدريد على ريمس 4-3 في باريس.",
				},
				{
					ID:          4,
					Question:    "من هو الهداف التاريخي لنهائيات كأس العالم؟",
					Options:     []string{"رونالدو", "غيرد مولر", "ميروسلاف كلوزه", "جوست فونتين"},
					Answer:      "ميروسلاف كلوزه",
					Explanation: "سجل كلوزه 16 هدفًا في أربع بطولات.",
				},
				{
					ID:          5,
					Question:    "أي منتخب فاز بأول كأس أمم أفريقية عام 1957؟",
					Options:     []string{"السودان", "إثيوبيا", "مصر", "غانا"},
					Answer:      "مصر",
					Explanation: "فازت مصر على إثيوبيا 4-0 في الخرطوم.",
				},
				{
					ID:          6,
					Question:    "أي ملعب استضاف مباراة الحسم في مونديال 1950؟",
					Options:     []string{"سنتيناريو", "ماراكانا", "ويمبلي", "أزتيكا"},
					Answer:      "ماراكانا",
					Explanation: "فاجأت أوروغواي البرازيل 2-1 أمام نحو مئتي ألف متفرج.",
				},
			},
		},
	},
}
