package catalog

// allHindrances is the combined hindrance catalogue across all sourcebooks.
var allHindrances = []Hindrance{
	// ─────────────────────────────────────────────────────────────────────────
	// Core
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Arrogant", Severity: "Major", Source: SourceCore,
		Summary: "Must humiliate opponents; challenges the leader"},
	{Name: "Bloodthirsty", Severity: "Major", Source: SourceCore,
		Summary: "Never takes prisoners"},
	{Name: "Code of Honor", Severity: "Major", Source: SourceCore,
		Summary: "Keeps word and acts like a gentleperson"},
	{Name: "Greedy", Severity: "Minor", Source: SourceCore,
		Summary: "Argues over rewards; may steal"},
	{Name: "Heroic", Severity: "Major", Source: SourceCore,
		Summary: "Always helps those in need"},
	{Name: "Loyal", Severity: "Minor", Source: SourceCore,
		Summary: "Won't betray or abandon friends"},
	{Name: "Overconfident", Severity: "Major", Source: SourceCore,
		Summary: "Believes they can do anything"},
	{Name: "Ruthless", Severity: "Minor", Source: SourceCore,
		Summary: "Does what it takes to get their way"},
	{Name: "Stubborn", Severity: "Minor", Source: SourceCore,
		Summary: "Always wants their way; rarely admits mistakes"},
	{Name: "Suspicious", Severity: "Minor", Source: SourceCore,
		Summary: "Wary of others; -2 to allies' Support rolls"},
	{Name: "Vengeful", Severity: "Minor", Source: SourceCore,
		Summary: "Holds grudges; rights perceived wrongs legally"},
	{Name: "Wanted", Severity: "Minor", Source: SourceCore,
		Summary: "Sought by the authorities for a crime"},

	// ─────────────────────────────────────────────────────────────────────────
	// Fantasy Companion
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Cursed", Severity: "Major", Source: SourceFantasyCompanion,
		Summary: "Under a magical curse; specific effect determined by GM"},
	{Name: "Monster Hunter", Severity: "Major", Source: SourceFantasyCompanion,
		Summary: "Obsessed with hunting specific creature type; takes risks"},
	{Name: "Touched", Severity: "Major", Source: SourceFantasyCompanion,
		Summary: "Mad visions or episodes; -1 Smarts-based skills"},
	{Name: "Arcane Resistance", Severity: "Minor", Source: SourceFantasyCompanion,
		Summary: "Magic doesn't work well on you (beneficial or harmful); -2 to arcane skill rolls against you"},
	{Name: "Beast Bond", Severity: "Minor", Source: SourceFantasyCompanion,
		Summary: "Feel pain when animal companion hurt; distracted"},
	{Name: "Branded", Severity: "Minor", Source: SourceFantasyCompanion,
		Summary: "Bear physical mark of past; recognizable, -2 Persuasion with those who know"},
	{Name: "Code of Honour", Severity: "Minor", Source: SourceFantasyCompanion,
		Summary: "Follow a warrior's code; won't use dishonourable tactics"},
	{Name: "Dark Secret", Severity: "Minor", Source: SourceFantasyCompanion,
		Summary: "Past includes terrible deed; consequences if discovered"},
	{Name: "Displaced", Severity: "Minor", Source: SourceFantasyCompanion,
		Summary: "Far from homeland; -2 Common Knowledge here"},
	{Name: "Doom", Severity: "Minor", Source: SourceFantasyCompanion,
		Summary: "Fate has marked you; prophecy of death"},
	{Name: "Geas", Severity: "Minor", Source: SourceFantasyCompanion,
		Summary: "Magically bound to task or restriction"},
}
