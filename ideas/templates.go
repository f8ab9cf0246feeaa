package ideas

import "shortsgenix/classify"

// Placeholder is replaced by the capitalised topic in every template.
const Placeholder = "{topic}"

type templateKey struct {
	niche classify.Niche
	vtype classify.VideoType
}

// templates is read-only after init. Every (NicheDefault, type) pair is
// present so the fallback chain always resolves.
var templates = map[templateKey][]string{
	// default
	{classify.NicheDefault, classify.TypeChallenge}: {
		"Try the {topic} challenge in under 60 seconds!",
		"{topic}: can you beat it before the timer runs out?",
		"Challenge a friend to {topic} and film the reaction!",
	},
	{classify.NicheDefault, classify.TypeGiveaway}: {
		"{topic} giveaway: comment to win!",
		"Give away something {topic}-themed to a subscriber!",
		"Celebrate {topic} with a 60-second giveaway!",
	},
	{classify.NicheDefault, classify.TypeTutorial}: {
		"Explain {topic} in 60 seconds!",
		"3 quick tips about {topic} nobody tells you!",
		"{topic} for beginners, step by step!",
	},
	{classify.NicheDefault, classify.TypeVlog}: {
		"A day around {topic} in 60 seconds!",
		"My honest take on {topic}!",
		"Behind the scenes: {topic}!",
	},
	{classify.NicheDefault, classify.TypeReview}: {
		"Is {topic} worth the hype? 60-second review!",
		"{topic}: rating it out of 10!",
		"First impressions of {topic}!",
	},

	// finance
	{classify.NicheFinance, classify.TypeTutorial}: {
		"{topic} explained in 60 seconds!",
		"How to start with {topic} on a small budget!",
		"The biggest mistake people make with {topic}!",
	},
	{classify.NicheFinance, classify.TypeReview}: {
		"{topic}: smart move or money pit?",
		"I tested {topic} for a month, here's what happened!",
		"Rating {topic} as an investment!",
	},
	{classify.NicheFinance, classify.TypeVlog}: {
		"What {topic} really costs me each month!",
		"A day of managing money around {topic}!",
		"Reacting to {topic} news in 60 seconds!",
	},

	// entertainment
	{classify.NicheEntertainment, classify.TypeChallenge}: {
		"Try the {topic} challenge with a twist!",
		"Last one to survive {topic} wins!",
		"{topic} challenge speed round!",
	},
	{classify.NicheEntertainment, classify.TypeVlog}: {
		"Reacting to {topic} in 60 seconds!",
		"{topic}: the funniest moments!",
		"Pranking my friends with {topic}!",
	},
	{classify.NicheEntertainment, classify.TypeGiveaway}: {
		"{topic} fan giveaway!",
		"Win a {topic} surprise box!",
		"Guess the {topic} moment, win a prize!",
	},

	// gaming
	{classify.NicheGaming, classify.TypeChallenge}: {
		"Beat {topic} in under 60 seconds!",
		"{topic} but every death adds a rule!",
		"Can I win {topic} with the worst loadout?",
	},
	{classify.NicheGaming, classify.TypeTutorial}: {
		"One {topic} trick pros don't share!",
		"Master {topic} in 60 seconds!",
		"{topic}: 3 mistakes beginners make!",
	},
	{classify.NicheGaming, classify.TypeReview}: {
		"Is {topic} worth playing?",
		"{topic}: ranking the best moments!",
		"Honest 60-second review of {topic}!",
	},
	{classify.NicheGaming, classify.TypeVlog}: {
		"My funniest {topic} moment this week!",
		"Playing {topic} with viewers!",
		"{topic}: a 60-second highlight reel!",
	},

	// tech
	{classify.NicheTech, classify.TypeReview}: {
		"Unboxing {topic} in 60 seconds!",
		"{topic}: worth it or skip it?",
		"{topic} vs the competition!",
	},
	{classify.NicheTech, classify.TypeTutorial}: {
		"{topic} hidden feature you need to know!",
		"Set up {topic} in under a minute!",
		"Fix the most common {topic} problem!",
	},
	{classify.NicheTech, classify.TypeGiveaway}: {
		"Giving away {topic} to one subscriber!",
		"{topic} giveaway: how to enter!",
		"Win {topic} before it sells out!",
	},

	// lifestyle
	{classify.NicheLifestyle, classify.TypeVlog}: {
		"A day of {topic} in 60 seconds!",
		"My {topic} routine, start to finish!",
		"Trying {topic} for a week!",
	},
	{classify.NicheLifestyle, classify.TypeTutorial}: {
		"{topic} hack that saves time!",
		"Easy {topic} for beginners!",
		"3 steps to better {topic}!",
	},
	{classify.NicheLifestyle, classify.TypeChallenge}: {
		"7-day {topic} challenge results!",
		"Doing {topic} every day for a week!",
		"{topic} challenge: before and after!",
	},
}

// Templates returns the template list for a niche and video type, falling
// back to (default, type) and then (default, vlog).
func Templates(niche classify.Niche, vtype classify.VideoType) []string {
	for _, k := range []templateKey{
		{niche, vtype},
		{classify.NicheDefault, vtype},
		{classify.NicheDefault, classify.TypeVlog},
	} {
		if list, ok := templates[k]; ok && len(list) > 0 {
			return list
		}
	}
	return nil
}
