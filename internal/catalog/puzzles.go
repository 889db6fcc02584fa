package catalog

// DefaultPuzzles returns the built-in puzzle pool
func DefaultPuzzles() Puzzles {
	return Puzzles{
		{Category: "Phrase", Phrase: "BREAK THE ICE"},
		{Category: "Phrase", Phrase: "STEAL SOMEONE'S THUNDER"},
		{Category: "Phrase", Phrase: "PLAYING WITH FIRE"},
		{Category: "Phrase", Phrase: "LIGHTNING NEVER STRIKES TWICE"},
		{Category: "Phrase", Phrase: "COLD AS ICE"},
		{Category: "Phrase", Phrase: "WHERE THERE'S SMOKE THERE'S FIRE"},
		{Category: "Thing", Phrase: "CAMPFIRE STORIES"},
		{Category: "Thing", Phrase: "SNOW GLOBE"},
		{Category: "Thing", Phrase: "THUNDERSTORM WARNING"},
		{Category: "Thing", Phrase: "ICE CREAM SANDWICH"},
		{Category: "Place", Phrase: "THE NORTH POLE"},
		{Category: "Place", Phrase: "VOLCANO OBSERVATORY"},
		{Category: "Place", Phrase: "MOUNTAIN CABIN"},
		{Category: "Event", Phrase: "FOURTH OF JULY FIREWORKS"},
		{Category: "Event", Phrase: "WINTER SOLSTICE"},
		{Category: "Food & Drink", Phrase: "HOT CHOCOLATE"},
		{Category: "Food & Drink", Phrase: "FLAME-GRILLED BURGER"},
		{Category: "Song Title", Phrase: "GREAT BALLS OF FIRE"},
		{Category: "Before & After", Phrase: "SPIN THE WHEEL OF FORTUNE COOKIE"},
		{Category: "What Are You Doing?", Phrase: "CATCHING SNOWFLAKES"},
	}
}
