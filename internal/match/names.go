package match

import (
	"fmt"
	"math/rand"
)

var adjectives = []string{
	"Brave", "Clever", "Wild", "Swift", "Bold", "Mighty", "Mystic", "Noble",
	"Fierce", "Gentle", "Silent", "Rapid", "Calm", "Proud", "Wise", "Patient",
	"Lucky", "Sneaky", "Cunning", "Bright", "Dark", "Golden", "Silver", "Royal",
}

var pieces = []string{
	"Corner", "Edge", "Disc", "Diagonal", "Frontier", "Parity", "Wedge", "Stone",
	"Owl", "Fox", "Raven", "Falcon", "Lynx", "Otter", "Badger", "Heron",
}

// RandomName creates a display name in the form AdjectiveNounNumber.
func RandomName(rng *rand.Rand) string {
	return fmt.Sprintf("%s%s%d",
		adjectives[rng.Intn(len(adjectives))],
		pieces[rng.Intn(len(pieces))],
		rng.Intn(100))
}
