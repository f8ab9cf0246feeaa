package classify

// Niche is a coarse content category for a channel.
type Niche string

const (
	NicheFinance       Niche = "finance"
	NicheEntertainment Niche = "entertainment"
	NicheGaming        Niche = "gaming"
	NicheTech          Niche = "tech"
	NicheLifestyle     Niche = "lifestyle"
	NicheDefault       Niche = "default"
)

// VideoType is the dominant framing of a channel's videos.
type VideoType string

const (
	TypeChallenge VideoType = "challenge"
	TypeGiveaway  VideoType = "giveaway"
	TypeTutorial  VideoType = "tutorial"
	TypeVlog      VideoType = "vlog"
	TypeReview    VideoType = "review"
)

type nicheRule struct {
	label    Niche
	keywords []string
}

type typeRule struct {
	label    VideoType
	keywords []string
}

// nicheRules is evaluated in order; earlier entries win ties.
var nicheRules = []nicheRule{
	{NicheFinance, []string{
		"finance", "money", "invest", "stock", "crypto", "bitcoin", "trading", "budget",
		"passive income", "side hustle", "wealth", "dividend", "real estate", "savings",
	}},
	{NicheEntertainment, []string{
		"prank", "reaction", "funny", "comedy", "skit", "entertainment", "meme",
		"celebrity", "movie", "music", "trailer", "drama", "challenge",
	}},
	{NicheGaming, []string{
		"game", "gaming", "minecraft", "fortnite", "call of duty", "roblox", "speedrun",
		"playthrough", "gameplay", "streamer", "esports", "walkthrough", "valorant",
	}},
	{NicheTech, []string{
		"tech", "unboxing", "gadget", "smartphone", "iphone", "android", "laptop",
		"software", "coding", "programming", "artificial intelligence", "computer",
	}},
	{NicheLifestyle, []string{
		"vlog", "daily", "lifestyle", "travel", "routine", "fitness", "workout",
		"recipe", "cooking", "fashion", "makeup", "skincare", "day in the life",
	}},
	{NicheDefault, nil},
}

// typeRules is evaluated in order; earlier entries win ties.
var typeRules = []typeRule{
	{TypeChallenge, []string{"challenge", "24 hours", "last to", "survive", " vs ", "dare"}},
	{TypeGiveaway, []string{"giveaway", "giving away", "win a", "free", "prize", "winner"}},
	{TypeTutorial, []string{"tutorial", "how to", "guide", "tips", "learn", "explained", "step by step"}},
	{TypeVlog, []string{"vlog", "day in the life", "my day", "routine", "week in", "storytime"}},
	{TypeReview, []string{"review", "unboxing", "tested", "worth it", "honest", "compared", "first impressions"}},
}

// categoryNiches maps YouTube video category IDs to niches.
var categoryNiches = map[string]Niche{
	"1":  NicheEntertainment, // Film & Animation
	"2":  NicheTech,          // Autos & Vehicles
	"10": NicheEntertainment, // Music
	"15": NicheLifestyle,     // Pets & Animals
	"17": NicheLifestyle,     // Sports
	"19": NicheLifestyle,     // Travel & Events
	"20": NicheGaming,        // Gaming
	"22": NicheLifestyle,     // People & Blogs
	"23": NicheEntertainment, // Comedy
	"24": NicheEntertainment, // Entertainment
	"25": NicheFinance,       // News & Politics
	"26": NicheLifestyle,     // Howto & Style
	"27": NicheTech,          // Education
	"28": NicheTech,          // Science & Technology
}

// Niches lists every niche label in table order.
func Niches() []Niche {
	out := make([]Niche, len(nicheRules))
	for i, r := range nicheRules {
		out[i] = r.label
	}
	return out
}

// VideoTypes lists every video type label in table order.
func VideoTypes() []VideoType {
	out := make([]VideoType, len(typeRules))
	for i, r := range typeRules {
		out[i] = r.label
	}
	return out
}
