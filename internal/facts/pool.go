package facts

import "sort"

// curatedPools holds the built-in fact content per category. Generation
// draws from these pools; they also seed the store on first run.
var curatedPools = map[string][]string{
	"Science": {
		"The human body contains enough carbon to fill about 9,000 pencils.",
		"A teaspoonful of neutron star would weigh about 6 billion tons.",
		"The average person walks the equivalent of three times around the world in a lifetime.",
		"Honey never spoils. Archaeologists have found 3,000-year-old honey that is still edible.",
		"Hot water can freeze faster than cold water under certain conditions.",
	},
	"History": {
		"The shortest war in history was between Britain and Zanzibar in 1896, lasting only 38 minutes.",
		"Ancient Egyptians used to use honey as an offering to their gods.",
		"The first recorded use of 'OMG' was in a 1917 letter to Winston Churchill.",
		"Oxford University is older than the Aztec Empire.",
		"Cleopatra lived closer in time to the first moon landing than to the building of the Great Pyramid.",
	},
	"Nature": {
		"Octopuses have three hearts, nine brains, and blue blood.",
		"Bananas are berries, but strawberries aren't.",
		"A group of flamingos is called a 'flamboyance'.",
		"Wombats produce cube-shaped droppings.",
		"Sea otters hold hands while sleeping so they don't drift apart.",
	},
	"Space": {
		"There are more stars in the universe than grains of sand on all the beaches on Earth.",
		"A day on Venus is longer than a year on Venus.",
		"The Great Red Spot on Jupiter is a storm that has been raging for at least 400 years.",
		"Neutron stars can spin up to 600 times per second.",
		"Footprints left on the Moon will remain for millions of years.",
	},
	"Technology": {
		"The first computer bug was an actual real-life bug, a moth found in the Harvard Mark II computer in 1947.",
		"The average smartphone user touches their phone 2,617 times a day.",
		"The first message sent over the internet was 'LO'. It was supposed to be 'LOGIN' but the system crashed.",
		"QWERTY keyboards were designed to slow typists down and prevent typewriter jams.",
		"More than 90% of the world's currency exists only on computers.",
	},
}

// Categories returns the category names with curated pools, sorted.
func Categories() []string {
	names := make([]string, 0, len(curatedPools))
	for name := range curatedPools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
