package audio

var DefaultConfig = Config{
	MusicEnabled:   true,
	EffectsEnabled: true,

	// Quiet background music under a moderate master
	MusicVolume:  0.25,
	EffectVolume: 0.6,
	MasterVolume: 0.6,

	UnmuteMusicVolume:  0.4,
	UnmuteEffectVolume: 0.6,
}

// TrackPaths maps every cue to its music resource.
var TrackPaths = map[CueKey]string{
	// Title screen
	CueIntro: "/sounds/intro-cinematic-battle-score.mp3",

	// Exploration phase
	1: "/sounds/level1-space-epic-cinematic.mp3",
	2: "/sounds/level2-traveling-through-space.mp3",
	3: "/sounds/level3-lost-in-space.mp3",
	4: "/sounds/level4-space-music.mp3",
	5: "/sounds/level5-space-clouds-velvet.mp3",

	// Adventure phase
	6:  "/sounds/level6-space-travel.mp3",
	7:  "/sounds/level7-space-flight.mp3",
	8:  "/sounds/level8-calm-space-music.mp3",
	9:  "/sounds/level9-ambient-space-arpeggio.mp3",
	10: "/sounds/level10-space-ambient.mp3",

	// Final battle phase
	11: "/sounds/level11-epic-cinematic-battle.mp3",
	12: "/sounds/level12-glorious-army-battle.mp3",
	13: "/sounds/level13-war-battle-military.mp3",
	14: "/sounds/level14-z-battle-finale.mp3",
	15: "/sounds/level5-space-clouds-velvet.mp3", // Mother insect boss reuses level 5
}
