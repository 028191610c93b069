package engine

// Character is one hamster resident of the village gallery. Residents reveal
// themselves as the story opens up: a character unlocks once the chapter has
// at least FragmentGate readable fragments.
type Character struct {
	ID           string
	Name         string
	Personality  string
	Motto        string
	Avatar       string
	ChapterID    string
	FragmentGate int
}

var Characters = []Character{
	{
		ID: "ori", Name: "Ori", Avatar: "🐹",
		Personality: "The ever-cheerful courier",
		Motto:       "A parcel a day keeps the fog away!",
		ChapterID:   "chapter1", FragmentGate: 1,
	},
	{
		ID: "yaya", Name: "Yaya", Avatar: "🌾",
		Personality: "The farmer who sees everything",
		Motto:       "Wheat doesn't lie. People do.",
		ChapterID:   "chapter1", FragmentGate: 2,
	},
	{
		ID: "shinfu", Name: "Shinfu", Avatar: "🌿",
		Personality: "The healer's quiet apprentice",
		Motto:       "Trust slowly. Heal slower.",
		ChapterID:   "chapter1", FragmentGate: 3,
	},
	{
		ID: "tik", Name: "Tik", Avatar: "🕰️",
		Personality: "The clockmaker out of time",
		Motto:       "Every clock is right somewhere.",
		ChapterID:   "chapter1", FragmentGate: 4,
	},
	{
		ID: "momo", Name: "Momo", Avatar: "🥖",
		Personality: "The baker who works before dawn",
		Motto:       "Nothing strange ever happens before breakfast.",
		ChapterID:   "chapter1", FragmentGate: 6,
	},
	{
		ID: "p", Name: "P", Avatar: "❓",
		Personality: "The stranger behind the notes",
		Motto:       "You will remember the fog.",
		ChapterID:   "chapter1", FragmentGate: 10,
	},
}

// IsCharacterUnlocked reports whether a resident is visible in the gallery.
func (s *Service) IsCharacterUnlocked(c Character) bool {
	return s.UnlockedFragmentCount(c.ChapterID) >= c.FragmentGate
}

// UnlockedCharacterCount counts visible gallery residents.
func (s *Service) UnlockedCharacterCount() int {
	n := 0
	for _, c := range Characters {
		if s.IsCharacterUnlocked(c) {
			n++
		}
	}
	return n
}
