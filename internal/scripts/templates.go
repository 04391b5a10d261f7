package scripts

import "math/rand"

// SectionTexts holds the rendered narration for the four script sections.
type SectionTexts struct {
	Intro      string
	Body       string
	Transition string
	Outro      string
}

// TemplateProvider renders the four section texts for a fact in a given
// format. The format passed in is always one of the known formats.
type TemplateProvider interface {
	Render(factContent, format string) SectionTexts
}

// FormatInfo describes a known script format for listings.
type FormatInfo struct {
	Name        string
	Description string
}

// Formats lists the known script formats.
func Formats() []FormatInfo {
	return []FormatInfo{
		{Name: FormatConversational, Description: "Friendly, casual tone like talking to a friend"},
		{Name: FormatEducational, Description: "More formal, focused on learning and understanding"},
		{Name: FormatEntertaining, Description: "Energetic, exciting tone focused on amazement"},
	}
}

const (
	FormatConversational = "Conversational"
	FormatEducational    = "Educational"
	FormatEntertaining   = "Entertaining"
)

type builtinProvider struct {
	rng *rand.Rand
}

// NewBuiltinProvider returns the stock template provider. A nil rng selects
// the package-level random source.
func NewBuiltinProvider(rng *rand.Rand) TemplateProvider {
	return &builtinProvider{rng: rng}
}

func (p *builtinProvider) Render(factContent, format string) SectionTexts {
	return SectionTexts{
		Intro:      p.pick(introTemplates[format])(factContent),
		Body:       p.pick(bodyTemplates[format])(factContent),
		Transition: p.pick(transitionTemplates)(factContent),
		Outro:      p.pick(outroTemplates[format])(factContent),
	}
}

func (p *builtinProvider) pick(templates []func(string) string) func(string) string {
	if p.rng != nil {
		return templates[p.rng.Intn(len(templates))]
	}
	return templates[rand.Intn(len(templates))]
}

var introTemplates = map[string][]func(string) string{
	FormatConversational: {
		func(f string) string {
			return "Hey there! Did you know that " + f + " That's pretty amazing, right?"
		},
		func(f string) string {
			return "Welcome back! Today we're exploring an incredible fact: " + f
		},
		func(f string) string {
			return "Here's something that might surprise you... " + f + " Let's dive in!"
		},
	},
	FormatEducational: {
		func(f string) string {
			return "Today we're examining an important fact: " + f + " Let's analyze what this means."
		},
		func(f string) string {
			return "Welcome to our learning series. Today's topic centers on this fact: " + f
		},
		func(f string) string {
			return "The following may change your perspective: " + f + " Let's explore the evidence behind it."
		},
	},
	FormatEntertaining: {
		func(f string) string {
			return "You won't believe this, but " + f + " Mind-blowing, right?"
		},
		func(f string) string {
			return "Prepare to have your mind blown! " + f + " And that's just the start!"
		},
		func(f string) string {
			return "Wait until you tell your friends this one... " + f + " Their reactions will be priceless!"
		},
	},
}

var bodyTemplates = map[string][]func(string) string{
	FormatConversational: {
		func(f string) string {
			return "Let's think about what this means. " + f + " It shows us how complex our world really is, and many people never realize it."
		},
		func(f string) string {
			return "When you consider that " + f + " it makes you wonder what else we still don't know. Researchers keep studying this phenomenon."
		},
	},
	FormatEducational: {
		func(f string) string {
			return "To understand why " + f + " we need to examine the underlying principles. Specific conditions produce this remarkable outcome."
		},
		func(f string) string {
			return "The fact that " + f + " has been verified through multiple studies, documented by careful observation and experimentation."
		},
	},
	FormatEntertaining: {
		func(f string) string {
			return "Can you imagine if " + f + " wasn't true? Reality really is stranger than fiction."
		},
		func(f string) string {
			return "I was shocked when I first learned that " + f + " It sounds made up, but it's absolutely true."
		},
	},
}

var transitionTemplates = []func(string) string{
	func(string) string {
		return "This is particularly interesting when you consider the broader context."
	},
	func(string) string {
		return "When you think about it, this reveals something profound about our world."
	},
	func(string) string {
		return "It's discoveries like this that make learning so rewarding."
	},
	func(string) string {
		return "Scientists continue to study this phenomenon to understand it better."
	},
}

var outroTemplates = map[string][]func(string) string{
	FormatConversational: {
		func(f string) string {
			return "Thanks for watching! If you enjoyed learning that " + f + " subscribe for more."
		},
		func(f string) string {
			return "I hope you found this as interesting as I did. See you in the next video!"
		},
	},
	FormatEducational: {
		func(f string) string {
			return "Understanding that " + f + " helps build a more complete picture of our world. Join us next time."
		},
		func(f string) string {
			return "We hope this explanation has been informative. Subscribe for more in-depth explorations."
		},
	},
	FormatEntertaining: {
		func(f string) string {
			return "Now you can amaze your friends by telling them that " + f + " Don't forget to subscribe!"
		},
		func(f string) string {
			return "Wasn't that amazing? Stay tuned for more facts like this one!"
		},
	},
}
