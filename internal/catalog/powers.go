package catalog

// allPowers is the combined power catalogue across all sourcebooks.
var allPowers = []Power{
	// ─────────────────────────────────────────────────────────────────────────
	// Core
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Bolt", Rank: "Novice", Points: "1", Range: "Smarts x2", Duration: "Instant", Source: SourceCore,
		Summary: "2d6 damage missile"},
	{Name: "Boost/Lower Trait", Rank: "Novice", Points: "2", Range: "Smarts", Duration: "5 rounds", Source: SourceCore,
		Summary: "Raise or lower a target's trait one die type"},
	{Name: "Deflection", Rank: "Novice", Points: "3", Range: "Smarts", Duration: "5 rounds", Source: SourceCore,
		Summary: "-2 to be hit by melee or ranged attacks"},
	{Name: "Detect/Conceal Arcana", Rank: "Novice", Points: "2", Range: "Smarts", Duration: "5 rounds", Source: SourceCore,
		Summary: "Sense or hide supernatural effects"},
	{Name: "Healing", Rank: "Novice", Points: "3", Range: "Touch", Duration: "Instant", Source: SourceCore,
		Summary: "Heal one Wound per success and raise"},
	{Name: "Protection", Rank: "Novice", Points: "1", Range: "Smarts", Duration: "5 rounds", Source: SourceCore,
		Summary: "+2 Armor or +4 with a raise"},
	{Name: "Smite", Rank: "Novice", Points: "2", Range: "Smarts", Duration: "5 rounds", Source: SourceCore,
		Summary: "+2 damage to a weapon's attacks"},
	{Name: "Stun", Rank: "Novice", Points: "2", Range: "Smarts", Duration: "Instant", Source: SourceCore,
		Summary: "Target is Stunned on failed Vigor roll"},

	// ─────────────────────────────────────────────────────────────────────────
	// Fantasy Companion
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Arcane Sword", Rank: "Novice", Points: "2", Range: "Touch", Duration: "5 rounds", Source: SourceFantasyCompanion,
		Summary: "Create magical blade (Str+d8, AP 2)"},
	{Name: "Banish", Rank: "Seasoned", Points: "3", Range: "Smarts", Duration: "Instant", Source: SourceFantasyCompanion,
		Summary: "Send extraplanar beings home; destroy undead"},
	{Name: "Blessing", Rank: "Seasoned", Points: "3", Range: "Touch", Duration: "Permanent", Source: SourceFantasyCompanion,
		Summary: "Permanent minor boon; requires ritual"},
	{Name: "Conjure Item", Rank: "Novice", Points: "1/lb", Range: "Touch", Duration: "1 hour", Source: SourceFantasyCompanion,
		Summary: "Create simple non-magical item"},
	{Name: "Contact Spirit", Rank: "Seasoned", Points: "3", Range: "Self", Duration: "5 rounds", Source: SourceFantasyCompanion,
		Summary: "Speak with nearby spirits or undead"},
	{Name: "Curse", Rank: "Seasoned", Points: "5", Range: "Touch", Duration: "Permanent", Source: SourceFantasyCompanion,
		Summary: "Permanent penalty until removed; requires ritual"},
	{Name: "Darksight", Rank: "Novice", Points: "1", Range: "Touch", Duration: "1 hour", Source: SourceFantasyCompanion,
		Summary: "See in normal darkness"},
	{Name: "Divination", Rank: "Heroic", Points: "5", Range: "Self", Duration: "Instant", Source: SourceFantasyCompanion,
		Summary: "Ask question of the cosmos; vague answer"},
	{Name: "Lock/Unlock", Rank: "Novice", Points: "1", Range: "Touch", Duration: "Instant/Permanent", Source: SourceFantasyCompanion,
		Summary: "Open or seal locks magically"},
	{Name: "Scrying", Rank: "Veteran", Points: "3", Range: "Unlimited", Duration: "5 rounds", Source: SourceFantasyCompanion,
		Summary: "View distant location or person"},
	{Name: "Silence", Rank: "Novice", Points: "1", Range: "Smarts", Duration: "5 rounds", Source: SourceFantasyCompanion,
		Summary: "No sound in Small Burst Template"},
}
