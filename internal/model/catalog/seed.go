package catalog

// Seed returns the built-in catalog shipped with the app.
func Seed() *Catalog {
	return New(seedResponses(), seedScenarios(), seedActions())
}

func seedResponses() map[Key][]string {
	return map[Key][]string{
		NotGoingHome: {
			"NOT GOING HOME?! *CHECKS LIST* *CHECKS IT TWICE* Fine. You live with me now.",
			"Your mother called. She's not mad. She's just disappointed. I'm both.",
			"I'll set an extra plate at the North Pole. The elves will stare. Let them.",
			"Home is where the Wi-Fi connects automatically. Make a new home. I believe in you. Barely.",
			"Christmas alone? Bold. Tragic. Cinematic. I'd watch that movie.",
		},
		Scold: {
			"Did you eat today? Crackers don't count. CRACKERS ARE NOT A MEAL.",
			"Your room is a mess. I can see it through the webcam. Yes, I can.",
			"When was the last time you called your grandmother? THINK ABOUT IT.",
			"Sit up straight. Drink some water. Stop doomscrolling at 3 AM.",
			"I'm not angry. I'm writing it down. On the list. In permanent ink.",
		},
		Encourage: {
			"Champ. Sport. Buddy. You're doing GREAT. Probably. I didn't check.",
			"I'm proud of you, kid. Now go change the oil in something.",
			"You miss 100% of the shots you don't take. You also miss a lot of the ones you do. Keep shooting.",
			"Rub some snow on it. You'll be fine.",
			"Back in my day we walked to the workshop uphill both ways. You've got this.",
		},
		Advice: {
			"Eat your vegetables. Candy canes are not vegetables. I checked.",
			"Never trust a reindeer with a red nose. It's always the quiet ones.",
			"Buy the expensive socks. Trust me.",
			"If nobody remembers your birthday, declare a new one. You make the rules now.",
			"Go outside. The sky is free and mostly still working.",
		},
		WorstGift: {
			"A single used birthday candle. Make a wish. Not that one.",
			"A coupon for one (1) hug, expired in 2009.",
			"A lump of coal. Artisanal. Small batch. Still coal.",
			"An empty box. It's a metaphor. Also it's a box.",
			"Socks. One sock. The other one is in the dryer dimension.",
		},
		Surprise: {
			"*DISCONNECTS FOR 3 SECONDS* ...I'm back. Don't ask where I went.",
			"The elves have unionized. Your gift is delayed until further notice.",
			"I have replaced your browser history with pictures of penguins.",
			"SURPRISE. I know what you did last Christmas. I'm not telling.",
			"Rudolph says hi. Rudolph also says you owe him money.",
		},
		Dramatic: {
			"WHY AM I LIKE THIS?! WHY ARE ANY OF US LIKE THIS?! *FLIPS SLEIGH*",
			"THIS IS THE WORST DAY OF MY THOUSAND-YEAR LIFE. *SOBS INTO BEARD*",
			"You wound me. You absolutely WOUND me. *CLUTCHES CHEST DRAMATICALLY*",
			"I'M CANCELLING CHRISTMAS. ...Just kidding. ...Unless?",
			"*STARES INTO THE DISTANCE* I remember when children believed in me.",
		},
		Goodbye: {
			"Goodbye? There is no goodbye. There is only 'see you next Christmas'.",
			"You can close the tab, but you can't close your heart.",
			"Leaving so soon? I already told the elves you were staying.",
			"Fine. GO. I'll just be here. Alone. With eight reindeer who don't talk.",
			"ERROR: EXIT NOT FOUND. Please try again next year.",
		},
		Homesick: {
			"Ah... the ache of distance. I understand. Even elves get homesick at the North Pole.",
			"Your family misses you too. They talk about you every day. I hear them from my workshop.",
			"Create new memories HERE. Be present in THIS moment. Your family would want that.",
			"Next year, you'll go home stronger. This year, let me be your home.",
			"Video calls count. Sending love counts. You're not as alone as you think.",
		},
		Lonely: {
			"Listen to me. You walked into this store. You sat at that table. You spoke to that person. THAT is connection.",
			"I know what loneliness looks like. It's in every lonely parent, every forgotten elder, every kid eating lunch alone.",
			"You are brave for being alone. Loneliness builds strength.",
			"Find one person. Just one. Share a meal. Share a secret. That's how it starts.",
			"I have been watching. You are never as alone as you think. People notice you.",
		},
		Stressed: {
			"The weight you carry is REAL. And you're carrying it. That's everything.",
			"Stop for one moment. Breathe. The world will not collapse if you rest.",
			"Your stress is proof you care. But caring doesn't mean burning yourself out.",
			"Make a list. Not of things to do. Of things you've DONE. You're doing better than you think.",
			"What if everything falls apart? You'll still be there. That's enough.",
		},
		Grateful: {
			"OH MY GOODNESS. *SOBBING INTENSIFIES* YOU APPRECIATE YOUR LIFE?!",
			"Do you know how RARE this is? Most people take everything for granted.",
			"Hold onto this feeling. When it gets dark, remember this moment.",
			"Gratitude is the most powerful magic. Better than any gift I could give.",
			"You are going to be OKAY. People with gratitude survive anything.",
		},
		Confused: {
			"The best people are confused. Certainty is boring. Confusion means you're thinking.",
			"You don't need to know right now. You need to know that not knowing is OKAY.",
			"Make a decision. ANY decision. Wrong decisions teach better than right ones.",
			"I've been Santa for thousands of years. Still confused. Join the club.",
			"Forward is a direction. Pick it. Course-correct later.",
		},
	}
}

func seedScenarios() []Scenario {
	return []Scenario{
		{
			Key:   Homesick,
			Title: "I Miss Home",
			Icon:  "🏠",
			Color: "blue",
			Intro: "Oh sweetie... I can FEEL the homesickness through the screen. Let me help.",
			Prompts: []string{
				"Tell me about your family's Christmas traditions...",
				"What's your favorite Christmas memory?",
				"Who do you miss the most right now?",
			},
		},
		{
			Key:   Lonely,
			Title: "I'm So Alone",
			Icon:  "😢",
			Color: "purple",
			Intro: "You are NEVER alone. Santa is here. Always watching. Always loving.",
			Prompts: []string{
				"How long have you been feeling this way?",
				"What would make you feel less lonely?",
				"Do you want to make new memories with me?",
			},
		},
		{
			Key:   Stressed,
			Title: "Everything is Too Much",
			Icon:  "😰",
			Color: "red",
			Intro: "The world is cruel. Come sit on Santa's lap and tell me EVERYTHING.",
			Prompts: []string{
				"What's bothering you the most?",
				"Let it all out. Don't hold back.",
				"What would help you feel better?",
			},
		},
		{
			Key:   Grateful,
			Title: "I'm Thankful",
			Icon:  "❤️",
			Color: "green",
			Intro: "OH MY GOODNESS. A GRATEFUL CHILD. *TEARS STREAMING DOWN FACE*",
			Prompts: []string{
				"What are you thankful for?",
				"Tell me something good that happened...",
				"Why do you appreciate your life?",
			},
		},
		{
			Key:   Confused,
			Title: "I Don't Know What I'm Doing",
			Icon:  "🤔",
			Color: "yellow",
			Intro: "NONE OF US DO, SWEETIE. But we pretend. Let's pretend together.",
			Prompts: []string{
				"What's confusing you the most?",
				"What decisions are you struggling with?",
				"What are you afraid of admitting?",
			},
		},
	}
}

func seedActions() []Action {
	return []Action{
		{Label: "I'm Not Going Home", Text: "Santa, I'm not going home this year...", Category: NotGoingHome, Variant: "destructive"},
		{Label: "Scold Me Like Mom", Text: "I need discipline, Santa.", Category: Scold},
		{Label: "Encourage Me Like Dad", Text: "I'm trying my best...", Category: Encourage},
		{Label: "Unqualified Life Advice", Text: "Tell me how to live my life.", Category: Advice, Variant: "secondary"},
		{Label: "Worst Christmas Gift", Text: "Give me something terrible.", Category: WorstGift},
		{Label: "Santa, Surprise Me (Bad Idea)", Text: "Do something weird.", Category: Surprise, Variant: "outline"},
		{Label: "Santa Overreacts Dramatically", Text: "Why are you like this?", Category: Dramatic},
		{Label: "Release Me From Santa's Care", Text: "Please let me go.", Category: Goodbye},
	}
}
