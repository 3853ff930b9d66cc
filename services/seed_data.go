package services

type seedCategory struct {
	Name        string
	Description string
}

type seedArticle struct {
	Title      string
	Content    string
	CoverImage string
	Category   string
	Tags       []string
}

var seedCategories = []seedCategory{
	{Name: "Pregnancy", Description: "Expecting, trimester by trimester"},
	{Name: "Newborn Care", Description: "The first weeks at home"},
	{Name: "Toddler Life", Description: "Ages one to three"},
	{Name: "Self Care", Description: "Looking after yourself too"},
	{Name: "Family Recipes", Description: "Quick meals the whole family eats"},
	{Name: "Real Stories", Description: "Stories from our community"},
}

var seedTags = []string{
	"sleep", "feeding", "health", "milestones", "wellbeing",
	"budget", "recipes", "community", "first-time-mom",
}

var seedArticles = []seedArticle{
	{
		Title:      "Surviving the Fourth Trimester",
		Content:    "The first twelve weeks after birth are often called the fourth trimester, and for good reason. Your baby is adjusting to life outside the womb and you are adjusting to a completely new rhythm. Expect feeding every two to three hours, broken sleep, and days that blur together. That is normal. Keep visits short, accept every offer of help, and remember that a fed baby and a rested parent beat a tidy house every single time. If you feel persistently low or anxious, talk to your midwife or doctor early; postpartum mood changes are common and treatable.",
		CoverImage: "/images/seed/fourth-trimester.jpg",
		Category:   "Newborn Care",
		Tags:       []string{"sleep", "feeding", "first-time-mom"},
	},
	{
		Title:      "A Realistic Hospital Bag Checklist",
		Content:    "Forget the forty-item lists. You need comfortable clothes in a size you wore at six months pregnant, toiletries, a long phone charger, snacks, a going-home outfit for the baby in two sizes, and your notes and documents. Everything else the hospital either provides or your partner can fetch. Pack two small bags rather than one big one, label them, and keep them by the door from week thirty-six.",
		CoverImage: "/images/seed/hospital-bag.jpg",
		Category:   "Pregnancy",
		Tags:       []string{"first-time-mom", "budget"},
	},
	{
		Title:      "Toddler Meals When Nobody Has Time",
		Content:    "Batch cooking sounds great until you actually have a toddler. These five meals take fifteen minutes or less: eggy bread fingers with fruit, pasta with hidden-vegetable tomato sauce from the freezer, quesadillas with beans and cheese, mini pancakes made from banana and oats, and rice with salmon flakes and peas. Cook once, portion twice, and keep the freezer stocked. A toddler who refuses dinner tonight may devour the same plate tomorrow; keep offering without pressure.",
		CoverImage: "/images/seed/toddler-meals.jpg",
		Category:   "Family Recipes",
		Tags:       []string{"recipes", "feeding", "budget"},
	},
	{
		Title:      "Sleep Regressions Are Progressions",
		Content:    "Around four months, eight months, and eighteen months, many babies who slept well suddenly do not. These phases line up with developmental leaps: rolling, crawling, language. The regression usually passes in two to six weeks. Hold your routine steady, keep nights boring and dark, and resist introducing new sleep crutches you do not want to keep. If you are co-parenting, alternate nights so each of you gets one real block of sleep.",
		CoverImage: "/images/seed/sleep-regression.jpg",
		Category:   "Newborn Care",
		Tags:       []string{"sleep", "milestones"},
	},
	{
		Title:      "Five Minutes That Count: Self Care You Will Actually Do",
		Content:    "Self care advice written for people with spare afternoons is useless to mothers. Try this instead: one glass of water before every feed, step outside the front door once a day even for sixty seconds, a shower with the fan on so nobody can be heard asking for you, three slow breaths before picking up a crying baby, and a standing voice note thread with one friend who gets it. Small, repeatable, and yours.",
		CoverImage: "/images/seed/self-care.jpg",
		Category:   "Self Care",
		Tags:       []string{"wellbeing", "community"},
	},
	{
		Title:      "When to Call the Doctor About a Fever",
		Content:    "For a baby under three months, any temperature of 38C or higher warrants an immediate call. For older babies and toddlers, watch the child rather than the thermometer: fluids going in, wet nappies coming out, and periods of alertness matter more than the exact number. Trust your instinct. You know your child's baseline better than anyone, and no doctor minds a call that turns out to be nothing.",
		CoverImage: "/images/seed/fever.jpg",
		Category:   "Toddler Life",
		Tags:       []string{"health"},
	},
}
