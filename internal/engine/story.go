package engine

import (
	"context"

	"github.com/aa0979783096-byte/hamster-island/internal/storage"
)

// Chapter groups story fragments.
type Chapter struct {
	ID             string
	ChapterNumber  int
	Title          string
	TotalFragments int
}

// StoryFragment is one unlockable piece of the island narrative. Unlocking
// costs power, paid in seeds. Fragments with zero cost are always open.
type StoryFragment struct {
	ID             string
	ChapterID      string
	FragmentNumber int
	Title          string
	Content        string
	PowerCost      int
}

var Chapters = []Chapter{
	{ID: "chapter1", ChapterNumber: 1, Title: "Fog over Hamster Village", TotalFragments: 10},
}

var StoryFragments = []StoryFragment{
	{
		ID: "c1f1", ChapterID: "chapter1", FragmentNumber: 1,
		Title:     "Wind in the Window",
		PowerCost: 0,
		Content: "The morning air in Hamster Village smells of wheat. You have " +
			"barely settled in when a crumpled scrap of paper blows through your " +
			"open window. One crooked line: \"Trust no one. They are looking for " +
			"you. — P\" Before you can think, there is a knock at the door: Ori, " +
			"the village courier, grinning, with a bag of dried blueberries as a " +
			"welcome gift. You pocket the note and say nothing.",
	},
	{
		ID: "c1f2", ChapterID: "chapter1", FragmentNumber: 2,
		Title:     "Morning Market",
		PowerCost: 10,
		Content: "Ori walks you through the morning market: spices, carved wood, " +
			"wheat cakes, tea. Yaya the farmer presses a bundle of wheat into " +
			"your paws, then pulls you close and whispers: \"Don't wander after " +
			"dark. Someone has seen shadows lately.\" Ori laughs it off, but you " +
			"know Yaya is not the type to scare newcomers for fun.",
	},
	{
		ID: "c1f3", ChapterID: "chapter1", FragmentNumber: 3,
		Title:     "The Healer's Cabin",
		PowerCost: 10,
		Content: "Shinfu, the healer's apprentice, brews you herb tea and keeps " +
			"glancing at your pocket. \"What did you receive this morning?\" " +
			"\"...Just paper.\" She does not press. She only says, very gently: " +
			"\"You don't need to hurry to trust anyone here. Including me.\" " +
			"Everyone in this village knows something. No one is saying it.",
	},
	{
		ID: "c1f4", ChapterID: "chapter1", FragmentNumber: 4,
		Title:     "Clockmaker's Shop",
		PowerCost: 10,
		Content: "Tik's shop ticks with a hundred mismatched clocks, none of " +
			"them showing the same time. \"Time is generous here,\" he says, " +
			"tapping a stopped pendulum, \"as long as you don't ask where it " +
			"goes.\" On the counter sits a clock with your name already carved " +
			"into the base.",
	},
	{
		ID: "c1f5", ChapterID: "chapter1", FragmentNumber: 5,
		Title:     "Lights on the Hill",
		PowerCost: 10,
		Content: "Past midnight, a line of pale lights crosses the hill behind " +
			"the granary, moving the way lanterns move when carried. In the " +
			"morning the grass shows no tracks at all. Yaya meets your eyes " +
			"across the square and slowly shakes her head: not yet.",
	},
	{
		ID: "c1f6", ChapterID: "chapter1", FragmentNumber: 6,
		Title:     "The Second Note",
		PowerCost: 10,
		Content: "A second scrap of paper, folded into your seed pouch while you " +
			"slept: \"You left something behind when you came here. The village " +
			"is keeping it for you. — P\" The handwriting is steadier this time, " +
			"as if whoever wrote it is getting closer.",
	},
	{
		ID: "c1f7", ChapterID: "chapter1", FragmentNumber: 7,
		Title:     "Under the Granary",
		PowerCost: 10,
		Content: "Ori shows you a loose board behind the granary, half proud and " +
			"half afraid. Below it, stairs. \"I only went down once,\" he says. " +
			"\"There's a door, and the door has a clock on it, and the clock " +
			"runs backwards.\" He will not go with you. Not yet.",
	},
	{
		ID: "c1f8", ChapterID: "chapter1", FragmentNumber: 8,
		Title:     "Shinfu's Warning",
		PowerCost: 10,
		Content: "\"Stop collecting the notes.\" Shinfu's voice is flat, which " +
			"is how you know she is frightened. \"P is not writing to you. P is " +
			"writing to the person you were before you arrived.\" She takes the " +
			"empty teacup from your paws. \"They are not the same hamster.\"",
	},
	{
		ID: "c1f9", ChapterID: "chapter1", FragmentNumber: 9,
		Title:     "The Backwards Clock",
		PowerCost: 10,
		Content: "You go down the stairs alone. The door is small and round and " +
			"warm to the touch, and the clock set into it turns the wrong way, " +
			"unwinding. Through the keyhole: a room exactly like your own, " +
			"window open, a scrap of paper blowing in.",
	},
	{
		ID: "c1f10", ChapterID: "chapter1", FragmentNumber: 10,
		Title:     "P",
		PowerCost: 10,
		Content: "The door opens before you knock. The hamster inside has your " +
			"face, older, tired, relieved. \"Finally,\" P says, and holds out the " +
			"first note — the original, unwrinkled, the ink still wet. \"Now we " +
			"can start again, and this time you will remember the fog.\"",
	},
}

// FragmentByID returns the catalog entry, or nil.
func FragmentByID(id string) *StoryFragment {
	for i := range StoryFragments {
		if StoryFragments[i].ID == id {
			return &StoryFragments[i]
		}
	}
	return nil
}

// IsFragmentUnlocked reports whether a fragment is readable: free fragments
// always are, the rest once they appear in the stored progress.
func (s *Service) IsFragmentUnlocked(id string) bool {
	f := FragmentByID(id)
	if f == nil {
		return false
	}
	if f.PowerCost == 0 {
		return true
	}
	for _, u := range s.story.UnlockedFragments {
		if u == id {
			return true
		}
	}
	return false
}

// UnlockedFragmentCount counts readable fragments in a chapter.
func (s *Service) UnlockedFragmentCount(chapterID string) int {
	n := 0
	for _, f := range StoryFragments {
		if f.ChapterID == chapterID && s.IsFragmentUnlocked(f.ID) {
			n++
		}
	}
	return n
}

// UnlockFragment spends seeds to open a story fragment. Fragments unlock in
// order: the previous fragment of the chapter must already be readable.
// Unlocking an already-open fragment is a no-op; an unknown id returns nil.
func (s *Service) UnlockFragment(ctx context.Context, id string) (*StoryFragment, error) {
	f := FragmentByID(id)
	if f == nil {
		return nil, nil
	}
	if s.IsFragmentUnlocked(id) {
		return f, nil
	}

	for i := range StoryFragments {
		prev := &StoryFragments[i]
		if prev.ChapterID == f.ChapterID && prev.FragmentNumber == f.FragmentNumber-1 {
			if !s.IsFragmentUnlocked(prev.ID) {
				return nil, SequenceError{FragmentID: id, MissingID: prev.ID}
			}
		}
	}

	if s.profile.Coins < f.PowerCost {
		return nil, InsufficientCoinsError{Needed: f.PowerCost, Have: s.profile.Coins}
	}

	s.profile.Coins -= f.PowerCost
	s.story.UnlockedFragments = append(s.story.UnlockedFragments, f.ID)
	s.persist(ctx,
		kvPair{storage.KeyProfile, s.profile},
		kvPair{storage.KeyStoryProgress, s.story},
	)
	return f, nil
}
