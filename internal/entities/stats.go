// Package entities provides core data structures for rpg-combat.
package entities

// Base stats. Every profession grows these per level and the hp/mp formulas
// weigh each of them.
const (
	StatStr = "str"
	StatCon = "con"
	StatDex = "dex"
	StatInt = "int"
	StatAgi = "agi"
	StatLuk = "luk"
)

// Resource stats
const (
	StatHP = "hp"
	StatMP = "mp"
)

// Special stats
const (
	StatHPRegen         = "hpregen"
	StatMPRegen         = "mpregen"
	StatDamageReduction = "damageReduction"
	StatCrit            = "crit"
)

// Attack stats. A positive value makes physical attacks apply the status
// effect of the same name.
const (
	StatProne   = "prone"
	StatVenom   = "venom"
	StatPoison  = "poison"
	StatShatter = "shatter"
	StatVampire = "vampire"
)

// Bonus stats that only ever go through the base pass
const (
	StatGold = "gold"
	StatXP   = "xp"
)

// BaseStats lists the six base stats in formula order.
func BaseStats() []string {
	return []string{StatStr, StatCon, StatDex, StatInt, StatAgi, StatLuk}
}

// SpecialStats lists stats used by regeneration and mitigation.
func SpecialStats() []string {
	return []string{StatHPRegen, StatMPRegen, StatDamageReduction, StatCrit}
}

// AttackStats lists stats that map to status effects on physical attacks.
func AttackStats() []string {
	return []string{StatProne, StatVenom, StatPoison, StatShatter, StatVampire}
}
