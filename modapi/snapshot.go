package modapi

// StatKind names a slot in the client's character stat table.
type StatKind int

const (
	StatHP StatKind = iota
	StatMana
	StatWisdom
	StatIntelligence
	StatAgility
	StatStrength

	statKinds
)

// statIndex maps each StatKind to its position in the client's raw stat
// table. The positions are a wire contract with the client and are kept in
// this one table rather than spread through rendering and command code.
var statIndex = [statKinds]int{
	StatHP:           0,
	StatMana:         2,
	StatWisdom:       3,
	StatIntelligence: 4,
	StatAgility:      5,
	StatStrength:     6,
}

// Index returns the kind's position in the client's raw stat table.
func (k StatKind) Index() int {
	return statIndex[k]
}

func (k StatKind) String() string {
	switch k {
	case StatHP:
		return "hp"
	case StatMana:
		return "mana"
	case StatWisdom:
		return "wisdom"
	case StatIntelligence:
		return "intelligence"
	case StatAgility:
		return "agility"
	case StatStrength:
		return "strength"
	default:
		return "unknown"
	}
}

// StatKinds lists every StatKind in declaration order.
func StatKinds() []StatKind {
	kinds := make([]StatKind, statKinds)
	for i := range kinds {
		kinds[i] = StatKind(i)
	}
	return kinds
}

// Snapshot is an owned copy of the local player's data, taken once per
// callback. The client mutates the backing state freely between callbacks,
// so a Snapshot must never be retained past the callback that produced it;
// take a fresh one instead.
type Snapshot struct {
	HP         int
	Mana       int
	Gold       int
	Experience int
	Max        [int(statKinds)]int
	Username   string
}

// MaxOf returns the player's maximum for the given stat.
func (s Snapshot) MaxOf(k StatKind) int {
	return s.Max[k]
}
