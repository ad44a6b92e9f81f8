package roster

var nameAdjectives = []string{
	"atomic", "brutal", "cosmic", "crimson", "dainty", "deadly", "electric", "feral",
	"fierce", "frosty", "furious", "gentle", "grim", "hasty", "hollow", "iron",
	"jolly", "lethal", "lucky", "mighty", "nasty", "neon", "noble", "quick",
	"rabid", "radical", "rapid", "reckless", "rowdy", "ruthless", "savage", "scarlet",
	"shady", "sly", "sneaky", "speedy", "spicy", "stormy", "sweet", "toxic",
	"vicious", "wicked", "wild", "wrecking",
}

var nameNouns = []string{
	"anvil", "badger", "banshee", "blizzard", "bruiser", "cobra", "comet", "crusher",
	"cyclone", "dagger", "dynamo", "falcon", "fury", "ghost", "gremlin", "hammer",
	"hornet", "hurricane", "jackal", "kraken", "lightning", "mayhem", "menace", "otter",
	"panther", "phoenix", "piranha", "raptor", "rascal", "riot", "rocket", "scorpion",
	"spitfire", "storm", "tempest", "thunder", "tornado", "valkyrie", "viper", "wolverine",
	"wren", "yeti",
}

var placeNames = []string{
	"Ashford", "Bramble Hill", "Cedar Falls", "Dunmore", "Eastwick", "Fairhaven",
	"Glenbrook", "Harbor City", "Ironvale", "Juniper Bay", "Kingsport", "Lakeside",
	"Millbrook", "Northgate", "Oakridge", "Port Ellis", "Queensbury", "Riverton",
	"Silverton", "Thornbury", "Underhill", "Valewood", "Westmarch", "Yarrow",
}

var colors = []string{
	"Black", "Blue", "Gold", "Green", "Grey", "Orange", "Pink", "Purple",
	"Red", "Silver", "Teal", "White", "Yellow",
}
