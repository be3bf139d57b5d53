package lexicon

// e is a short constructor for table rows
func e(pattern, tag string) Entry {
	return Entry{Pattern: pattern, Tag: tag}
}

// defaultEntries are the built-in tables. Order matters inside each category.
var defaultEntries = map[Category][]Entry{
	ProductType: {
		// sunscreen before the generic "كريم"
		e("واقي الشمس", "sunscreen"),
		e("واقي شمس", "sunscreen"),
		e("كريم واقي", "sunscreen"),
		e("صن بلوك", "sunscreen"),
		e("écran solaire", "sunscreen"),
		e("sunscreen", "sunscreen"),
		e("sunblock", "sunscreen"),
		e("spf", "sunscreen"),

		e("كريم تحت العين", "eye cream"),
		e("كريم العين", "eye cream"),
		e("كريم العينين", "eye cream"),
		e("كونتور", "eye cream"),
		e("contour des yeux", "eye cream"),
		e("eye cream", "eye cream"),

		e("مزيل المكياج", "makeup remover"),
		e("مزيل مكياج", "makeup remover"),
		e("ماء ميسيلار", "makeup remover"),
		e("ميسيلار", "makeup remover"),
		e("démaquillant", "makeup remover"),
		e("micellar", "makeup remover"),

		// lip balm before moisturizer: "مرطب الشفاه" contains "مرطب"
		e("مرطب الشفاه", "lip balm"),
		e("مرطب شفاه", "lip balm"),
		e("بلسم الشفاه", "lip balm"),
		e("زبدة الشفاه", "lip balm"),
		e("baume à lèvres", "lip balm"),
		e("lip balm", "lip balm"),

		e("جل منظف", "cleanser"),
		e("غسول", "cleanser"),
		e("منظف", "cleanser"),
		e("gel lavant", "cleanser"),
		e("nettoyant", "cleanser"),
		e("cleanser", "cleanser"),

		e("سيروم", "serum"),
		e("سيرم", "serum"),
		e("sérum", "serum"),
		e("serum", "serum"),

		e("كريم مرطب", "moisturizer"),
		e("مرطب", "moisturizer"),
		e("crème hydratante", "moisturizer"),
		e("hydratant", "moisturizer"),
		e("moisturizer", "moisturizer"),

		e("تونر", "toner"),
		e("تونيك", "toner"),
		e("lotion tonique", "toner"),
		e("toner", "toner"),

		e("ماسك", "mask"),
		e("قناع", "mask"),
		e("masque", "mask"),
		e("mask", "mask"),

		e("مقشر", "exfoliator"),
		e("سكراب", "exfoliator"),
		e("gommage", "exfoliator"),
		e("exfoliant", "exfoliator"),
		e("scrub", "exfoliator"),

		e("لوشن الجسم", "body lotion"),
		e("لوشن", "body lotion"),
		e("lait corporel", "body lotion"),
		e("body lotion", "body lotion"),

		// no bare "زيت" or "oil": they sit inside "الزيتية" and "oily"
		e("زيت الوجه", "oil"),
		e("زيت الجسم", "oil"),
		e("زيت الشعر", "oil"),
		e("زيت طبيعي", "oil"),
		e("زيوت", "oil"),
		e("huile visage", "oil"),
		e("huile corps", "oil"),
		e("huile sèche", "oil"),
		e("face oil", "oil"),
		e("body oil", "oil"),

		// generic cream last
		e("كريم", "cream"),
		e("crème", "cream"),
		e("cream", "cream"),
	},

	SkinType: {
		e("مختلطة", "combination"),
		e("مختلط", "combination"),
		e("mixte", "combination"),
		e("combination", "combination"),

		e("حساسة", "sensitive"),
		e("حساس", "sensitive"),
		e("sensible", "sensitive"),
		e("sensitive", "sensitive"),

		e("دهنية", "oily"),
		e("دهني", "oily"),
		e("زيتية", "oily"),
		e("grasse", "oily"),
		e("oily", "oily"),

		e("جافة", "dry"),
		e("جاف", "dry"),
		e("ناشفة", "dry"),
		e("ناشف", "dry"),
		e("sèche", "dry"),
		e("dry", "dry"),

		e("ناضجة", "mature"),
		e("mature", "mature"),

		e("باهتة", "dull"),
		e("باهت", "dull"),
		e("شاحبة", "dull"),
		e("terne", "dull"),
		e("dull", "dull"),

		e("عادية", "normal"),
		e("normale", "normal"),
		e("normal", "normal"),
	},

	Concern: {
		// blackheads and dark circles before the shorter pigmentation forms
		e("الرؤوس السوداء", "blackheads"),
		e("رؤوس سوداء", "blackheads"),
		e("النقط السوداء", "blackheads"),
		e("النقط الكحلة", "blackheads"),
		e("points noirs", "blackheads"),
		e("blackheads", "blackheads"),

		e("حب الشباب", "acne"),
		e("البثور", "acne"),
		e("بثور", "acne"),
		e("الحبوب", "acne"),
		e("حبوب", "acne"),
		e("boutons", "acne"),
		e("acné", "acne"),
		e("acne", "acne"),

		e("الهالات السوداء", "dark circles"),
		e("هالات", "dark circles"),
		e("cernes", "dark circles"),
		e("dark circles", "dark circles"),

		e("تصبغات", "pigmentation"),
		e("تصبغ", "pigmentation"),
		e("الكلف", "pigmentation"),
		e("البقع", "pigmentation"),
		e("بقع", "pigmentation"),
		e("taches", "pigmentation"),
		e("pigmentation", "pigmentation"),

		e("تفتيح", "brightening"),
		e("تبييض", "brightening"),
		e("نضارة", "brightening"),
		e("إشراقة", "brightening"),
		e("éclat", "brightening"),
		e("brightening", "brightening"),
		e("glow", "brightening"),

		e("ترطيب", "hydration"),
		e("جفاف", "hydration"),
		e("hydratation", "hydration"),
		e("hydration", "hydration"),

		e("مضاد للشيخوخة", "anti-aging"),
		e("التجاعيد", "anti-aging"),
		e("تجاعيد", "anti-aging"),
		e("شيخوخة", "anti-aging"),
		e("anti-age", "anti-aging"),
		e("anti-aging", "anti-aging"),
		e("wrinkles", "anti-aging"),
		e("rides", "anti-aging"),

		e("المسام", "pores"),
		e("مسام", "pores"),
		e("pores", "pores"),

		e("شد البشرة", "firming"),
		e("ترهل", "firming"),
		e("تماسك", "firming"),
		e("fermeté", "firming"),
		e("firming", "firming"),

		e("احمرار", "redness"),
		e("الحمورية", "redness"),
		e("rougeurs", "redness"),
		e("redness", "redness"),
	},

	PriceRange: {
		// negated forms before "غالي"
		e("ماشي غالي", "low"),
		e("مشي غالي", "low"),
		e("غير غالي", "low"),
		e("رخيص", "low"),
		e("بثمن مناسب", "low"),
		e("ثمن مناسب", "low"),
		e("اقتصادي", "low"),
		e("pas cher", "low"),
		e("cheap", "low"),

		e("ثمن متوسط", "medium"),
		e("متوسط", "medium"),
		e("moyen", "medium"),

		e("غالي", "high"),
		e("غالية", "high"),
		e("فاخر", "high"),
		e("haut de gamme", "high"),
		e("luxe", "high"),
		e("premium", "high"),
	},

	Ingredient: {
		e("فيتامين سي", "vitamin c"),
		e("فيتامين c", "vitamin c"),
		e("vitamine c", "vitamin c"),
		e("vitamin c", "vitamin c"),

		e("ريتينول", "retinol"),
		e("rétinol", "retinol"),
		e("retinol", "retinol"),

		e("نياسيناميد", "niacinamide"),
		e("niacinamide", "niacinamide"),

		e("هيالورونيك اسيد", "hyaluronic acid"),
		e("هيالورونيك", "hyaluronic acid"),
		e("hyaluronique", "hyaluronic acid"),
		e("hyaluronic", "hyaluronic acid"),

		e("ساليسيليك", "salicylic acid"),
		e("salicylique", "salicylic acid"),
		e("salicylic", "salicylic acid"),

		e("ألوفيرا", "aloe vera"),
		e("الصبار", "aloe vera"),
		e("صبار", "aloe vera"),
		e("aloe", "aloe vera"),

		e("أرغان", "argan oil"),
		e("argan", "argan oil"),

		e("كولاجين", "collagen"),
		e("collagène", "collagen"),
		e("collagen", "collagen"),

		e("الشاي الأخضر", "green tea"),
		e("شاي أخضر", "green tea"),
		e("thé vert", "green tea"),
		e("green tea", "green tea"),

		e("زنك", "zinc"),
		e("zinc", "zinc"),
	},

	Intent: {
		e("بشحال", "price"),
		e("شحال", "price"),
		e("بكم", "price"),
		e("كم ثمن", "price"),
		e("كم سعر", "price"),
		e("prix", "price"),

		e("شنو تنصح", "recommendation"),
		e("انصحني", "recommendation"),
		e("نصحني", "recommendation"),
		e("اقترح", "recommendation"),
		e("أحسن", "recommendation"),
		e("أفضل", "recommendation"),

		e("محتاجة", "need"),
		e("محتاج", "need"),
		e("أحتاج", "need"),
		e("خاصني", "need"),
		e("خصني", "need"),

		e("بغيت", "want"),
		e("أريد", "want"),
		e("أبغي", "want"),
		e("ابغى", "want"),
		e("بدي", "want"),
		e("je veux", "want"),

		e("نقلب على", "search"),
		e("قلب على", "search"),
		e("قلب لي", "search"),
		e("ابحث", "search"),
		e("أبحث", "search"),
		e("فين نلقى", "search"),

		e("واش", "question"),
		e("شنو", "question"),
		e("ما هو", "question"),
		e("ما هي", "question"),
		e("كيفاش", "question"),
		e("كيف", "question"),
		e("علاش", "question"),
		e("لماذا", "question"),
		e("هل", "question"),
		e("؟", "question"),
		e("?", "question"),
	},
}

// defaultLabels are the Arabic display forms used in spoken replies
var defaultLabels = map[string]string{
	"serum":          "سيروم",
	"sunscreen":      "واقي الشمس",
	"moisturizer":    "كريم مرطب",
	"cleanser":       "غسول",
	"toner":          "تونر",
	"mask":           "ماسك",
	"eye cream":      "كريم العين",
	"exfoliator":     "مقشر",
	"makeup remover": "مزيل المكياج",
	"lip balm":       "مرطب الشفاه",
	"body lotion":    "لوشن الجسم",
	"oil":            "زيت",
	"cream":          "كريم",

	"oily":        "الدهنية",
	"dry":         "الجافة",
	"sensitive":   "الحساسة",
	"combination": "المختلطة",
	"normal":      "العادية",
	"mature":      "الناضجة",
	"dull":        "الباهتة",

	"acne":         "حب الشباب",
	"blackheads":   "الرؤوس السوداء",
	"brightening":  "التفتيح",
	"hydration":    "الترطيب",
	"anti-aging":   "التجاعيد",
	"pigmentation": "التصبغات",
	"dark circles": "الهالات السوداء",
	"pores":        "المسام",
	"firming":      "شد البشرة",
	"redness":      "الاحمرار",

	"vitamin c":       "فيتامين سي",
	"retinol":         "الريتينول",
	"niacinamide":     "النياسيناميد",
	"hyaluronic acid": "حمض الهيالورونيك",
	"salicylic acid":  "حمض الساليسيليك",
	"aloe vera":       "الصبار",
	"argan oil":       "زيت أرغان",
	"collagen":        "الكولاجين",
	"green tea":       "الشاي الأخضر",
	"zinc":            "الزنك",
}
