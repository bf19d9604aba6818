package catalog

// allEdges is the combined edge catalogue across all sourcebooks.
var allEdges = []Edge{
	// ─────────────────────────────────────────────────────────────────────────
	// Core
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Ambidextrous", Rank: "Novice", Type: "Background", Source: SourceCore,
		Requirements: "Agility d8+",
		Summary:      "Ignore off-hand penalty"},
	{Name: "Brawny", Rank: "Novice", Type: "Background", Source: SourceCore,
		Requirements: "Strength d6+, Vigor d6+",
		Summary:      "Size +1; treat Strength as one die higher for Min Str and load limit"},
	{Name: "Quick", Rank: "Novice", Type: "Background", Source: SourceCore,
		Requirements: "Agility d8+",
		Summary:      "Redraw action cards of 5 or lower"},
	{Name: "Block", Rank: "Seasoned", Type: "Combat", Source: SourceCore,
		Requirements: "Fighting d8+",
		Summary:      "+1 Parry; ignore 1 point of Gang Up bonus"},
	{Name: "Improved Block", Rank: "Veteran", Type: "Combat", Source: SourceCore,
		Requirements: "Block",
		Summary:      "+2 Parry; ignore 2 points of Gang Up bonus"},
	{Name: "Brawler", Rank: "Novice", Type: "Combat", Source: SourceCore,
		Requirements: "Strength d8+, Vigor d8+",
		Summary:      "Toughness +1; unarmed damage Str+d4"},
	{Name: "Combat Reflexes", Rank: "Seasoned", Type: "Combat", Source: SourceCore,
		Requirements: "",
		Summary:      "+2 to recover from Shaken or Stunned"},
	{Name: "Dodge", Rank: "Seasoned", Type: "Combat", Source: SourceCore,
		Requirements: "Agility d8+",
		Summary:      "-2 to be hit by ranged attacks"},
	{Name: "First Strike", Rank: "Novice", Type: "Combat", Source: SourceCore,
		Requirements: "Agility d8+",
		Summary:      "Free attack against one foe per turn who moves into reach"},
	{Name: "Marksman", Rank: "Seasoned", Type: "Combat", Source: SourceCore,
		Requirements: "Athletics d8+ or Shooting d8+",
		Summary:      "Forgo movement to ignore up to 2 points of ranged penalties"},
	{Name: "Trademark Weapon", Rank: "Novice", Type: "Combat", Source: SourceCore,
		Requirements: "Athletics d8+ or Fighting d8+ or Shooting d8+",
		Summary:      "+1 to hit and Parry with one specific weapon"},
	{Name: "Two-Fisted", Rank: "Novice", Type: "Combat", Source: SourceCore,
		Requirements: "Agility d8+",
		Summary:      "Attack with a weapon in each hand without multi-action penalty"},
	{Name: "Nerves of Steel", Rank: "Novice", Type: "Combat", Source: SourceCore,
		Requirements: "Vigor d8+",
		Summary:      "Ignore 1 point of Wound penalties"},
	{Name: "Command", Rank: "Novice", Type: "Leadership", Source: SourceCore,
		Requirements: "Smarts d6+",
		Summary:      "+1 to Extras' Shaken/Stunned recovery within Command Range"},
	{Name: "Inspire", Rank: "Seasoned", Type: "Leadership", Source: SourceCore,
		Requirements: "Command",
		Summary:      "Once per turn, Support one skill for all troops in Command Range"},
	{Name: "Luck", Rank: "Novice", Type: "Background", Source: SourceCore,
		Requirements: "",
		Summary:      "+1 Benny per session"},
	{Name: "Great Luck", Rank: "Novice", Type: "Background", Source: SourceCore,
		Requirements: "Luck",
		Summary:      "+2 Bennies per session"},
	{Name: "Healer", Rank: "Novice", Type: "Professional", Source: SourceCore,
		Requirements: "Spirit d8+",
		Summary:      "+2 Healing; 5 allies heal +2 natural healing"},
	{Name: "Investigator", Rank: "Novice", Type: "Professional", Source: SourceCore,
		Requirements: "Smarts d8+, Research d8+",
		Summary:      "+2 Research and certain Notice rolls"},
	{Name: "Thief", Rank: "Novice", Type: "Professional", Source: SourceCore,
		Requirements: "Agility d8+, Stealth d6+, Thievery d6+",
		Summary:      "+1 Climbing, lockpicking, Stealth in urban environments"},
	{Name: "Woodsman", Rank: "Novice", Type: "Professional", Source: SourceCore,
		Requirements: "Spirit d6+, Survival d8+",
		Summary:      "+2 Survival and Stealth in the wilds"},

	// ─────────────────────────────────────────────────────────────────────────
	// Fantasy Companion
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Dirty Fighter", Rank: "Seasoned", Type: "Combat", Source: SourceFantasyCompanion,
		Requirements: "",
		Summary:      "+2 damage with The Drop or from surprise"},
	{Name: "Really Dirty Fighter", Rank: "Veteran", Type: "Combat", Source: SourceFantasyCompanion,
		Requirements: "Dirty Fighter",
		Summary:      "Spend Benny for automatic Shaken on enemy"},
	{Name: "Shield Wall", Rank: "Novice", Type: "Combat", Source: SourceFantasyCompanion,
		Requirements: "Fighting d6+",
		Summary:      "+2 Armor when adjacent to ally with shield"},
	{Name: "Alchemist", Rank: "Novice", Type: "Professional", Source: SourceFantasyCompanion,
		Requirements: "AB, Smarts d8+",
		Summary:      "Create alchemical items; +2 arcane skill for consumables"},
	{Name: "Champion", Rank: "Novice", Type: "Professional", Source: SourceFantasyCompanion,
		Requirements: "AB (Miracles), Spirit d8+, Fighting d6+",
		Summary:      "+2 damage/Toughness vs supernatural evil"},
	{Name: "Holy Warrior", Rank: "Novice", Type: "Professional", Source: SourceFantasyCompanion,
		Requirements: "AB (Miracles), Spirit d8+",
		Summary:      "+2 damage vs supernatural evil; powers at +2 vs evil"},
	{Name: "Wizard", Rank: "Novice", Type: "Professional", Source: SourceFantasyCompanion,
		Requirements: "AB (Magic), Smarts d8+",
		Summary:      "Swap powers with 10 minutes and arcane skill roll"},
	{Name: "Troubadour", Rank: "Novice", Type: "Professional", Source: SourceFantasyCompanion,
		Requirements: "Performance d8+",
		Summary:      "+2 Performance; can earn money and information"},
	{Name: "Familiar", Rank: "Novice", Type: "Power", Source: SourceFantasyCompanion,
		Requirements: "AB",
		Summary:      "Gain magical animal companion"},
	{Name: "Ritual Caster", Rank: "Seasoned", Type: "Power", Source: SourceFantasyCompanion,
		Requirements: "AB, Smarts d6+",
		Summary:      "Cast rituals with extended time for +2 arcane skill"},
	{Name: "Gallows Humour", Rank: "Novice", Type: "Social", Source: SourceFantasyCompanion,
		Requirements: "Spirit d8+",
		Summary:      "Jokes grant +2 Spirit for Fear/Intimidation resistance"},
	{Name: "Reputation", Rank: "Novice", Type: "Social", Source: SourceFantasyCompanion,
		Requirements: "",
		Summary:      "+2 Intimidation or Persuasion (choose one) based on rep"},
	{Name: "Tough as Nails", Rank: "Legendary", Type: "Weird", Source: SourceFantasyCompanion,
		Requirements: "Vigor d8+",
		Summary:      "+1 Toughness; +1 to Wound capacity"},

	// ─────────────────────────────────────────────────────────────────────────
	// Ammaria
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Ammarian Halberd Guard", Rank: "Novice", Type: "Combat", Source: SourceAmmaria,
		Requirements: "Fighting d6+",
		Summary:      "Free attack vs enemies closing to melee; ends their action on Shake/wound. One per round."},
	{Name: "Caravan Guard", Rank: "Novice", Type: "Combat", Source: SourceAmmaria,
		Requirements: "Fighting d6+ or Shooting d6+",
		Summary:      "+1 Notice (ambushes); +1 Fighting or Shooting (choose one) first round of ambush combat"},
	{Name: "Repeating Crossbow Training", Rank: "Novice", Type: "Combat", Source: SourceAmmaria,
		Requirements: "Shooting d6+",
		Summary:      "May fire repeating crossbow at ROF 2; +2 Repair to clear jams"},
	{Name: "Repeating Crossbow Mastery", Rank: "Seasoned", Type: "Combat", Source: SourceAmmaria,
		Requirements: "Repeating Crossbow Training, Shooting d8+",
		Summary:      "Ignore Recoil penalty when firing repeating crossbow at ROF 2"},
	{Name: "War Boar Rider", Rank: "Seasoned", Type: "Combat", Source: SourceAmmaria,
		Requirements: "Riding d8+",
		Summary:      "+2 Riding (war boars); berserk control difficulty reduced by 2"},
	{Name: "Appraiser", Rank: "Novice", Type: "Professional", Source: SourceAmmaria,
		Requirements: "Smarts d6+, Notice d6+",
		Summary:      "+2 Notice/Common Knowledge to assess value and spot forgeries"},
	{Name: "Blackmarket Broker", Rank: "Novice", Type: "Professional", Source: SourceAmmaria,
		Requirements: "Common Knowledge d6+, Persuasion d6+",
		Summary:      "+2 Common Knowledge for contraband, fences, and black markets"},
	{Name: "Guild Journeyman", Rank: "Novice", Type: "Professional", Source: SourceAmmaria,
		Requirements: "Smarts d6+ or Agility d6+, trade skill d6+",
		Summary:      "+1 trade skill in guild structures; +1 Common Knowledge (guild matters); guild facilities"},
	{Name: "Guildmaster", Rank: "Seasoned", Type: "Professional", Source: SourceAmmaria,
		Requirements: "Guild Journeyman, trade skill d8+",
		Summary:      "+2 Persuasion (guild authority); guild resources 1/session"},
	{Name: "Moneylender", Rank: "Seasoned", Type: "Professional", Source: SourceAmmaria,
		Requirements: "Smarts d8+, Persuasion d6+",
		Summary:      "+2 Persuasion with debtors; Notice to spot financial distress"},
	{Name: "Photographic Memory", Rank: "Novice", Type: "Professional", Source: SourceAmmaria,
		Requirements: "Smarts d8+",
		Summary:      "+2 Smarts to recall previously encountered information"},
	{Name: "Sailor's Edge", Rank: "Novice", Type: "Professional", Source: SourceAmmaria,
		Requirements: "Boating d6+, Athletics d4+",
		Summary:      "Ignore 1 pt platform penalty; +1 Fighting aboard ships; +1 Persuasion with seafarers"},
	{Name: "Smuggler's Eye", Rank: "Novice", Type: "Professional", Source: SourceAmmaria,
		Requirements: "Notice d6+",
		Summary:      "+2 Notice to detect hidden cargo, compartments, contraband"},
	{Name: "Patron", Rank: "Novice", Type: "Social", Source: SourceAmmaria,
		Requirements: "",
		Summary:      "Monthly stipend; social access; patron obligations"},
	{Name: "Political Connections", Rank: "Seasoned", Type: "Social", Source: SourceAmmaria,
		Requirements: "Persuasion d8+",
		Summary:      "+2 Persuasion with officials; advance notice of policy changes 1/session"},
	{Name: "Reputation (Commerce)", Rank: "Seasoned", Type: "Social", Source: SourceAmmaria,
		Requirements: "Persuasion d6+",
		Summary:      "+2 Persuasion with merchants and guild members"},
	{Name: "Underworld Contacts", Rank: "Novice", Type: "Social", Source: SourceAmmaria,
		Requirements: "Common Knowledge d6+",
		Summary:      "+2 Streetwise; locate criminal contacts with Common Knowledge roll"},
	{Name: "Guild Alchemist", Rank: "Novice", Type: "Power", Source: SourceAmmaria,
		Requirements: "AB (Alchemist), Smarts d6+",
		Summary:      "+2 Alchemy in proper workspace; jury-rig workspace with Smarts roll"},
	{Name: "Guild Trained", Rank: "Novice", Type: "Power", Source: SourceAmmaria,
		Requirements: "AB (any), Smarts d6+",
		Summary:      "+2 arcane skill in proper workspace; jury-rig with Smarts roll"},
	{Name: "Commercial Caster", Rank: "Novice", Type: "Power", Source: SourceAmmaria,
		Requirements: "AB (any), Persuasion d6+",
		Summary:      "+1 arcane skill for paying clients; +2 Persuasion for fees"},
	{Name: "Oath-Binder", Rank: "Novice", Type: "Power", Source: SourceAmmaria,
		Requirements: "AB (any), Smarts d6+",
		Summary:      "+2 arcane skill for binding/compelling powers; reputation effect"},

	// ─────────────────────────────────────────────────────────────────────────
	// Saltlands
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Reefborn", Rank: "Novice", Type: "Background", Source: SourceSaltlands,
		Requirements: "",
		Summary:      "Hold breath 2× normal; +2 Athletics (swimming); low-light vision underwater"},
	{Name: "Salt-Weathered", Rank: "Novice", Type: "Background", Source: SourceSaltlands,
		Requirements: "Vigor d6+",
		Summary:      "+2 Vigor vs sea hazards (drowning, exposure, storms)"},
	{Name: "Saltborn Navigator", Rank: "Novice", Type: "Background", Source: SourceSaltlands,
		Requirements: "Smarts d6+",
		Summary:      "+2 Boating; can navigate by stars; sense weather changes"},
	{Name: "Brace of Pistols", Rank: "Novice", Type: "Combat", Source: SourceSaltlands,
		Requirements: "Shooting d6+",
		Summary:      "Draw and fire up to 3 pistols as single action"},
	{Name: "Cutlass & Pistol", Rank: "Seasoned", Type: "Combat", Source: SourceSaltlands,
		Requirements: "Fighting d6+, Shooting d6+",
		Summary:      "Two-Fisted with sword/pistol combo; +1 Parry"},
	{Name: "Brawler's Tempo", Rank: "Novice", Type: "Combat", Source: SourceSaltlands,
		Requirements: "Fighting d6+",
		Summary:      "Ignore 2 points of Gang Up bonus; +1 unarmed damage"},
	{Name: "Boarding Action", Rank: "Seasoned", Type: "Combat", Source: SourceSaltlands,
		Requirements: "Athletics d8+, Fighting d6+",
		Summary:      "+2 Fighting on first round after boarding; ignore Unstable Platform"},
	{Name: "Storm Fighter", Rank: "Seasoned", Type: "Combat", Source: SourceSaltlands,
		Requirements: "Agility d8+",
		Summary:      "Ignore weather penalties in combat; +1 Parry in rain/storm"},
	{Name: "Prize Master", Rank: "Seasoned", Type: "Professional", Source: SourceSaltlands,
		Requirements: "Smarts d8+, Boating d6+",
		Summary:      "+2 to assess prize value; +2 Persuasion dividing plunder"},
	{Name: "Ship's Surgeon", Rank: "Novice", Type: "Professional", Source: SourceSaltlands,
		Requirements: "Healing d8+",
		Summary:      "+2 Healing at sea; ignore -2 battlefield conditions"},
	{Name: "Reef-Diver", Rank: "Novice", Type: "Professional", Source: SourceSaltlands,
		Requirements: "Athletics d8+",
		Summary:      "+2 Notice underwater; ignore pressure penalties to 100 feet"},
	{Name: "Code-Keeper", Rank: "Seasoned", Type: "Social", Source: SourceSaltlands,
		Requirements: "Spirit d8+",
		Summary:      "+2 Persuasion with corsairs; can invoke Code for arbitration"},
	{Name: "Captain's Authority", Rank: "Veteran", Type: "Social", Source: SourceSaltlands,
		Requirements: "Command, Spirit d8+",
		Summary:      "Command edges extend to entire crew; +2 Intimidation aboard ship"},
	{Name: "Storm Caller", Rank: "Novice", Type: "Power", Source: SourceSaltlands,
		Requirements: "AB, Spirit d6+",
		Summary:      "+2 arcane skill for weather/water/lightning powers; +2 Boating in storms"},
	{Name: "Sea Witch", Rank: "Novice", Type: "Power", Source: SourceSaltlands,
		Requirements: "AB, Smarts d6+",
		Summary:      "+2 arcane skill for curses/hexes; +2 Healing for sea conditions"},
	{Name: "Soul Warden", Rank: "Seasoned", Type: "Power", Source: SourceSaltlands,
		Requirements: "AB (Miracles), Spirit d8+",
		Summary:      "+2 to powers affecting spirits/undead; sense nearby death"},

	// ─────────────────────────────────────────────────────────────────────────
	// Vinlands
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Holtscarl", Rank: "Novice", Type: "Background", Source: SourceVinlands,
		Requirements: "",
		Summary:      "+2 Survival and Stealth in forests; +1 damage with axes"},
	{Name: "Felsgard-Trained", Rank: "Novice", Type: "Background", Source: SourceVinlands,
		Requirements: "Fighting d6+",
		Summary:      "+2 Fighting in formation; +1 Toughness when adjacent to ally"},
	{Name: "Clan-Born", Rank: "Novice", Type: "Background", Source: SourceVinlands,
		Requirements: "",
		Summary:      "+2 Persuasion with clan; +2 Common Knowledge (Vinlands politics)"},
	{Name: "Frontier-Raised", Rank: "Novice", Type: "Background", Source: SourceVinlands,
		Requirements: "",
		Summary:      "+1 Survival or Riding; Fear checks at +1 vs natural beasts"},
	{Name: "Shield Wall Veteran", Rank: "Seasoned", Type: "Combat", Source: SourceVinlands,
		Requirements: "Fighting d8+, Shield Wall",
		Summary:      "+2 Armor in shield wall; can use shield bash for Str+d6"},
	{Name: "Bearded Axe Master", Rank: "Seasoned", Type: "Combat", Source: SourceVinlands,
		Requirements: "Fighting d8+",
		Summary:      "Disarm at +2; hook shields for -2 enemy Parry"},
	{Name: "Mountain's Endurance", Rank: "Novice", Type: "Combat", Source: SourceVinlands,
		Requirements: "Vigor d8+",
		Summary:      "+2 Vigor vs cold/fatigue; ignore 1 level of cold penalties"},
	{Name: "Skirmisher", Rank: "Novice", Type: "Combat", Source: SourceVinlands,
		Requirements: "Athletics d6+",
		Summary:      "+2\" Pace in forests; withdraw without free attacks in wilderness"},
	{Name: "Dive Attack", Rank: "Seasoned", Type: "Combat", Source: SourceVinlands,
		Requirements: "Avian, Athletics d10+",
		Summary:      "+4 damage when diving from height; must move 6\" minimum"},
	{Name: "Sky Hunter", Rank: "Veteran", Type: "Combat", Source: SourceVinlands,
		Requirements: "Avian, Dive Attack",
		Summary:      "+2 Notice from altitude; can Dive Attack without movement penalty"},
	{Name: "Warren-Hunter", Rank: "Seasoned", Type: "Professional", Source: SourceVinlands,
		Requirements: "Fighting d6+, Notice d6+",
		Summary:      "+2 Fighting vs goblins; +2 Notice in tunnels"},
	{Name: "Delver", Rank: "Novice", Type: "Professional", Source: SourceVinlands,
		Requirements: "Notice d6+",
		Summary:      "+2 Notice for traps/ambushes in ruins; +2 Common Knowledge (dungeon hazards)"},
	{Name: "Beast-Bonded", Rank: "Novice", Type: "Professional", Source: SourceVinlands,
		Requirements: "Spirit d6+",
		Summary:      "Gain animal companion; +2 to Animal Handling"},
	{Name: "Beast Tongue", Rank: "Novice", Type: "Power", Source: SourceVinlands,
		Requirements: "AB, Spirit d6+ or Beast Bond",
		Summary:      "Communicate with natural animals; +2 Animal Handling"},
	{Name: "Grove Initiate", Rank: "Novice", Type: "Power", Source: SourceVinlands,
		Requirements: "AB, Spirit d6+",
		Summary:      "+2 arcane skill in forests; sense disturbances in the green"},
	{Name: "Grove Warden", Rank: "Seasoned", Type: "Power", Source: SourceVinlands,
		Requirements: "Grove Initiate, Fighting d6+ or Shooting d6+",
		Summary:      "+1 Fighting/Shooting defending natural locations"},

	// ─────────────────────────────────────────────────────────────────────────
	// Concordium
	// ─────────────────────────────────────────────────────────────────────────
	{Name: "Sky-Born", Rank: "Novice", Type: "Background", Source: SourceConcordium,
		Requirements: "",
		Summary:      "+2 Vigor vs altitude effects; no penalties from thin air"},
	{Name: "Cloud-Walker", Rank: "Novice", Type: "Background", Source: SourceConcordium,
		Requirements: "Agility d6+",
		Summary:      "+2 Athletics (climbing, balance); no fear of heights"},
	{Name: "Noble House", Rank: "Novice", Type: "Background", Source: SourceConcordium,
		Requirements: "",
		Summary:      "+2 Persuasion with nobility; access to house resources"},
	{Name: "Rigging Fighter", Rank: "Novice", Type: "Combat", Source: SourceConcordium,
		Requirements: "Athletics d8+, Fighting d6+",
		Summary:      "+2 Fighting while climbing/hanging; ignore Unstable Platform on rigging"},
	{Name: "Wind Rider", Rank: "Seasoned", Type: "Combat", Source: SourceConcordium,
		Requirements: "Piloting d8+ or Riding d8+ (flying mount)",
		Summary:      "+2 Piloting/Riding for flying vehicles/mounts; +1 damage on strafing runs"},
	{Name: "Altitude Fighter", Rank: "Seasoned", Type: "Combat", Source: SourceConcordium,
		Requirements: "Fighting d8+",
		Summary:      "+1 Parry when higher than opponent; +2 damage when striking from above"},
	{Name: "Grapple Expert", Rank: "Novice", Type: "Combat", Source: SourceConcordium,
		Requirements: "Athletics d8+",
		Summary:      "+2 Athletics with grappling hooks/lines; can attack while swinging"},
	{Name: "Airship Pilot", Rank: "Novice", Type: "Professional", Source: SourceConcordium,
		Requirements: "Piloting d6+",
		Summary:      "+2 Piloting for airships; +2 Notice for weather/air currents"},
	{Name: "Pressure Technician", Rank: "Novice", Type: "Professional", Source: SourceConcordium,
		Requirements: "Repair d6+, Smarts d6+",
		Summary:      "+2 Repair on altitude equipment; create emergency pressure gear"},
	{Name: "Wind Reader", Rank: "Novice", Type: "Professional", Source: SourceConcordium,
		Requirements: "Notice d6+",
		Summary:      "+2 Notice for weather prediction; +2 Survival in aerial environments"},
	{Name: "Sky-Captain", Rank: "Veteran", Type: "Social", Source: SourceConcordium,
		Requirements: "Command, Spirit d8+",
		Summary:      "+2 Persuasion with airship crews; Command edges extend to entire ship"},
	{Name: "Cloud Court", Rank: "Seasoned", Type: "Social", Source: SourceConcordium,
		Requirements: "Noble House, Persuasion d8+",
		Summary:      "+2 Persuasion at court; access to exclusive functions"},
	{Name: "Sky-Binder", Rank: "Novice", Type: "Power", Source: SourceConcordium,
		Requirements: "AB, Smarts d6+",
		Summary:      "+2 arcane skill for air/electricity/flight powers at high altitude"},
	{Name: "Rune-Smith", Rank: "Novice", Type: "Power", Source: SourceConcordium,
		Requirements: "AB, Repair d6+",
		Summary:      "Create temporary 24-hour enchantments without Artificer edge"},
	{Name: "Storm-Warden", Rank: "Seasoned", Type: "Power", Source: SourceConcordium,
		Requirements: "Sky-Binder, arcane skill d8+",
		Summary:      "+2 to powers vs weather effects; can calm or summon storms"},
	{Name: "Pressure Mage", Rank: "Seasoned", Type: "Power", Source: SourceConcordium,
		Requirements: "AB, Smarts d8+",
		Summary:      "Powers can affect air pressure; +2 to powers with suffocation/force effects"},
}
