package quiz

import "github.com/KirkDiggler/character-forge/internal/domain/traits"

// DefaultCatalog returns the shipped question set. Each call builds a fresh
// catalog so callers can never mutate a shared one.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			Prompt: "When you hear the call to adventure, your first thought is:",
			Options: []*Option{
				{Key: "a", Text: "Armor on. If there's danger, meet it head-on.", Delta: traits.Delta{traits.Bravery: 2, traits.Stoicism: 1}},
				{Key: "b", Text: "Plot something clever; advantage wins fights.", Delta: traits.Delta{traits.Cunning: 2, traits.Mischief: 1}},
				{Key: "c", Text: "What ancient secret waits? Research first.", Delta: traits.Delta{traits.Curiosity: 2, traits.Cunning: 1}},
				{Key: "d", Text: "Who can I charm into helping me? People matter.", Delta: traits.Delta{traits.Charm: 2, traits.Empathy: 1}},
				{Key: "e", Text: "I go because it's my duty. Someone must.", Delta: traits.Delta{traits.Faith: 2, traits.Honor: 1}},
			},
		},
		{
			Prompt: "You find a locked chest. How do you approach it?",
			Options: []*Option{
				{Key: "a", Text: "Smash it open and hope for the best.", Delta: traits.Delta{traits.Bravery: 2, traits.Recklessness: 2}},
				{Key: "b", Text: "Pick the lock or lift the key quietly.", Delta: traits.Delta{traits.Cunning: 2, traits.Mischief: 1}},
				{Key: "c", Text: "Examine runes, study wards and traps.", Delta: traits.Delta{traits.Curiosity: 2, traits.Stoicism: 1}},
				{Key: "d", Text: "Ask someone else to open it. Conversation first.", Delta: traits.Delta{traits.Charm: 2, traits.Empathy: 1}},
				{Key: "e", Text: "Pray or ask the gods for a sign about it.", Delta: traits.Delta{traits.Faith: 2, traits.Honor: 1}},
			},
		},
		{
			Prompt: "Someone insults your homeland in public. Your reaction:",
			Options: []*Option{
				{Key: "a", Text: "Sword in hand; teach them respect.", Delta: traits.Delta{traits.Bravery: 2, traits.Honor: 1}},
				{Key: "b", Text: "A cutting joke that leaves them speechless.", Delta: traits.Delta{traits.Cunning: 2, traits.Mischief: 1}},
				{Key: "c", Text: "You make a calm note of it and study why.", Delta: traits.Delta{traits.Curiosity: 1, traits.Stoicism: 1}},
				{Key: "d", Text: "Diffuse with charm and a laugh.", Delta: traits.Delta{traits.Charm: 2}},
				{Key: "e", Text: "You forgive; anger accomplishes little.", Delta: traits.Delta{traits.Empathy: 2, traits.Faith: 1}},
			},
		},
		{
			Prompt: "Campfire: a child asks why stars burn. You say:",
			Options: []*Option{
				{Key: "a", Text: "They are watchful sentinels, ready for war.", Delta: traits.Delta{traits.Bravery: 1, traits.Honor: 1}},
				{Key: "b", Text: "They’re holes poked into the dark by the bored gods.", Delta: traits.Delta{traits.Mischief: 2, traits.Cunning: 1}},
				{Key: "c", Text: "Burning suns, far away—physics, wonder, repeat.", Delta: traits.Delta{traits.Curiosity: 2}},
				{Key: "d", Text: "Because someone needed a good story stage.", Delta: traits.Delta{traits.Charm: 2}},
				{Key: "e", Text: "They remind us that light outlasts suffering.", Delta: traits.Delta{traits.Faith: 2, traits.Empathy: 1}},
			},
		},
		{
			Prompt: "Your party is ambushed at night. You:",
			Options: []*Option{
				{Key: "a", Text: "Charge with torch aloft!", Delta: traits.Delta{traits.Bravery: 2, traits.Recklessness: 2}},
				{Key: "b", Text: "Slip, stab, vanish—be a whisper.", Delta: traits.Delta{traits.Cunning: 2, traits.Mischief: 1}},
				{Key: "c", Text: "Cast a spell from memory; magic solves problems.", Delta: traits.Delta{traits.Curiosity: 2, traits.Stoicism: 1}},
				{Key: "d", Text: "Inspire the group—words make steel.", Delta: traits.Delta{traits.Charm: 2, traits.Honor: 1}},
				{Key: "e", Text: "Shield the wounded and pray for them.", Delta: traits.Delta{traits.Faith: 2, traits.Empathy: 1}},
			},
		},
		{
			Prompt: "You meet a beggar who knows a secret — how do you extract it?",
			Options: []*Option{
				{Key: "a", Text: "Intimidate until they speak.", Delta: traits.Delta{traits.Bravery: 1, traits.Recklessness: 1}},
				{Key: "b", Text: "Pay or ply them with coin and charm.", Delta: traits.Delta{traits.Charm: 2, traits.Cunning: 1}},
				{Key: "c", Text: "Offer help in exchange; kindness works.", Delta: traits.Delta{traits.Empathy: 2}},
				{Key: "d", Text: "Trick them with a small riddle.", Delta: traits.Delta{traits.Mischief: 2, traits.Cunning: 1}},
				{Key: "e", Text: "Research elsewhere—books over people.", Delta: traits.Delta{traits.Curiosity: 2}},
			},
		},
		{
			Prompt: "You are betrayed by an ally — what is your course?",
			Options: []*Option{
				{Key: "a", Text: "A duel; honor demands satisfaction.", Delta: traits.Delta{traits.Bravery: 2, traits.Honor: 2}},
				{Key: "b", Text: "A cold, calculated scheme for revenge.", Delta: traits.Delta{traits.Cunning: 2, traits.Stoicism: 1}},
				{Key: "c", Text: "An emotional implosion—you nurse the wound.", Delta: traits.Delta{traits.Empathy: 2, traits.Stoicism: -1}},
				{Key: "d", Text: "Forgive publicly and watch them squirm.", Delta: traits.Delta{traits.Charm: 1, traits.Mischief: 1}},
				{Key: "e", Text: "Appeal to your god and let them judge.", Delta: traits.Delta{traits.Faith: 2}},
			},
		},
		{
			Prompt: "Which contradiction appeals to you most as a roleplaying seed?",
			Options: []*Option{
				{Key: "a", Text: "Fearless fighter who collects delicate teacups.", Delta: traits.Delta{traits.Stoicism: 1, traits.Bravery: 1}},
				{Key: "b", Text: "Smooth talker who lies to themselves most.", Delta: traits.Delta{traits.Charm: 1, traits.Mischief: 1}},
				{Key: "c", Text: "Scholar who creates accidental chaos.", Delta: traits.Delta{traits.Curiosity: 2, traits.Mischief: 1}},
				{Key: "d", Text: "Pious zealot who sometimes doubts in private.", Delta: traits.Delta{traits.Faith: 2, traits.Stoicism: 1}},
				{Key: "e", Text: "Rogue with an odd strict code of honor.", Delta: traits.Delta{traits.Cunning: 2, traits.Honor: 2}},
			},
		},
		{
			Prompt: "Your signature move in a tavern brawl is:",
			Options: []*Option{
				{Key: "a", Text: "Shield bash and a heroic speech.", Delta: traits.Delta{traits.Bravery: 1, traits.Charm: 1}},
				{Key: "b", Text: "Slip behind the bar and trip everyone.", Delta: traits.Delta{traits.Cunning: 2, traits.Mischief: 2}},
				{Key: "c", Text: "Set a distracting minor illusion.", Delta: traits.Delta{traits.Curiosity: 2}},
				{Key: "d", Text: "Sing a song that confuses the thugs.", Delta: traits.Delta{traits.Charm: 2}},
				{Key: "e", Text: "Refuse to fight and try to calm folks.", Delta: traits.Delta{traits.Empathy: 2}},
			},
		},
		{
			Prompt: "You find a magical patron offering power at a price. You:",
			Options: []*Option{
				{Key: "a", Text: "Refuse. Power from bargains is suspect.", Delta: traits.Delta{traits.Honor: 1, traits.Faith: 1}},
				{Key: "b", Text: "Carefully read the contract. Every price has loopholes.", Delta: traits.Delta{traits.Curiosity: 2, traits.Cunning: 1}},
				{Key: "c", Text: "Accept! A cheeky bargain is an opportunity.", Delta: traits.Delta{traits.Mischief: 2, traits.Recklessness: 1}},
				{Key: "d", Text: "Negotiate terms and charm the patron.", Delta: traits.Delta{traits.Charm: 2, traits.Cunning: 1}},
				{Key: "e", Text: "Pray for guidance and act under divine counsel.", Delta: traits.Delta{traits.Faith: 2}},
			},
		},
		{
			Prompt: "Pick a petty obsession for flavor:",
			Options: []*Option{
				{Key: "a", Text: "Collecting spoons.", Delta: traits.Delta{traits.Mischief: 1}},
				{Key: "b", Text: "Naming every horse you see.", Delta: traits.Delta{traits.Charm: 1}},
				{Key: "c", Text: "Studying odd handwriting.", Delta: traits.Delta{traits.Curiosity: 1}},
				{Key: "d", Text: "Keeping a secret ledger of debts.", Delta: traits.Delta{traits.Cunning: 1}},
				{Key: "e", Text: "Polishing armor at inopportune times.", Delta: traits.Delta{traits.Stoicism: 1}},
			},
		},
		{
			Prompt: "Your greatest fear, deep down, is:",
			Options: []*Option{
				{Key: "a", Text: "Cowardice—being remembered as small.", Delta: traits.Delta{traits.Bravery: 1, traits.Honor: 1}},
				{Key: "b", Text: "Irrelevance—no songs sung of your deeds.", Delta: traits.Delta{traits.Charm: 1, traits.Stoicism: 1}},
				{Key: "c", Text: "Losing your mind to curiosity's costs.", Delta: traits.Delta{traits.Curiosity: 1, traits.Stoicism: 1}},
				{Key: "d", Text: "Betrayal from those you trust.", Delta: traits.Delta{traits.Empathy: 1, traits.Honor: 1}},
				{Key: "e", Text: "Being trapped by duty and never choosing.", Delta: traits.Delta{traits.Faith: 1, traits.Recklessness: 1}},
			},
		},
		{
			Prompt: "You're given an impossible moral choice that harms a few to save many. You:",
			Options: []*Option{
				{Key: "a", Text: "Sacrifice yourself if needed—honor above all.", Delta: traits.Delta{traits.Honor: 2, traits.Bravery: 1}},
				{Key: "b", Text: "Calculate the outcome and pick the most efficient option.", Delta: traits.Delta{traits.Cunning: 2}},
				{Key: "c", Text: "Try to find a third option; creativity wins.", Delta: traits.Delta{traits.Curiosity: 1, traits.Charm: 1}},
				{Key: "d", Text: "Refuse to make the choice; it's not yours to make.", Delta: traits.Delta{traits.Faith: 1, traits.Empathy: 1}},
				{Key: "e", Text: "Do whatever is required; the ends justify the means.", Delta: traits.Delta{traits.Recklessness: 2, traits.Stoicism: 1}},
			},
		},
		{
			Prompt: "Your preferred role in a party is:",
			Options: []*Option{
				{Key: "a", Text: "Frontline: take hits and deal them.", Delta: traits.Delta{traits.Bravery: 2, traits.Stoicism: 1}},
				{Key: "b", Text: "Scout: get info and open doors.", Delta: traits.Delta{traits.Cunning: 2, traits.Curiosity: 1}},
				{Key: "c", Text: "Controller: manipulate the battlefield.", Delta: traits.Delta{traits.Curiosity: 2, traits.Mischief: 1}},
				{Key: "d", Text: "Face: negotiate, distract, seduce.", Delta: traits.Delta{traits.Charm: 2, traits.Empathy: 1}},
				{Key: "e", Text: "Healer/Anchor: keep the group alive.", Delta: traits.Delta{traits.Faith: 2, traits.Empathy: 1}},
			},
		},
		{
			Prompt: "What adjective best decorates your fighting style?",
			Options: []*Option{
				{Key: "a", Text: "Brutal", Delta: traits.Delta{traits.Bravery: 1, traits.Recklessness: 1}},
				{Key: "b", Text: "Sly", Delta: traits.Delta{traits.Cunning: 1}},
				{Key: "c", Text: "Elegant", Delta: traits.Delta{traits.Charm: 1, traits.Stoicism: 1}},
				{Key: "d", Text: "Arcane", Delta: traits.Delta{traits.Curiosity: 1}},
				{Key: "e", Text: "Righteous", Delta: traits.Delta{traits.Faith: 1, traits.Honor: 1}},
			},
		},
		{
			Prompt: "If you could steal one abstract thing from a king it would be:",
			Options: []*Option{
				{Key: "a", Text: "Their crown—symbols matter.", Delta: traits.Delta{traits.Honor: 1, traits.Bravery: 1}},
				{Key: "b", Text: "Their secrets—blackmail is useful.", Delta: traits.Delta{traits.Cunning: 2}},
				{Key: "c", Text: "Their library—knowledge is power.", Delta: traits.Delta{traits.Curiosity: 2}},
				{Key: "d", Text: "Their applause—fame's currency.", Delta: traits.Delta{traits.Charm: 1}},
				{Key: "e", Text: "Their forgiveness—free the oppressed.", Delta: traits.Delta{traits.Faith: 1, traits.Empathy: 1}},
			},
		},
		{
			Prompt: "Which creature would you secretly like to befriend?",
			Options: []*Option{
				{Key: "a", Text: "A loyal hound.", Delta: traits.Delta{traits.Honor: 1, traits.Empathy: 1}},
				{Key: "b", Text: "A clever fox.", Delta: traits.Delta{traits.Cunning: 1}},
				{Key: "c", Text: "An ancient owl.", Delta: traits.Delta{traits.Curiosity: 1}},
				{Key: "d", Text: "A mischievous raccoon.", Delta: traits.Delta{traits.Mischief: 1}},
				{Key: "e", Text: "A noble stag.", Delta: traits.Delta{traits.Stoicism: 1, traits.Faith: 1}},
			},
		},
		{
			Prompt: "Final theatrical flourish: choose your signature line to speak in battle:",
			Options: []*Option{
				{Key: "a", Text: "'For honor!' (and charge)", Delta: traits.Delta{traits.Honor: 1}},
				{Key: "b", Text: "'Now you've made a mistake.' (quietly lethal)", Delta: traits.Delta{traits.Cunning: 1}},
				{Key: "c", Text: "'Witness wonders!' (arcane flourish)", Delta: traits.Delta{traits.Curiosity: 1}},
				{Key: "d", Text: "'Sing with me!' (inspire allies)", Delta: traits.Delta{traits.Charm: 1}},
				{Key: "e", Text: "'By their light, we stand!' (blessing)", Delta: traits.Delta{traits.Faith: 1}},
			},
		},
	}
}
