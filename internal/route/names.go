package route

import "fmt"

// RouteName identifies a screen independently of its data.
type RouteName int

const (
	Unlock RouteName = iota
	Home
	KeypairsList
	KeypairsAdd
	Relays
	Wallet
	Settings
)

// Family groups route names that belong to the same top-level screen.
type Family string

const (
	FamilyUnlock   Family = "unlock"
	FamilyHome     Family = "home"
	FamilyKeypairs Family = "keypairs"
	FamilyRelays   Family = "relays"
	FamilyWallet   Family = "wallet"
	FamilySettings Family = "settings"
)

func (n RouteName) String() string {
	switch n {
	case Unlock:
		return "unlock"
	case Home:
		return "home"
	case KeypairsList:
		return "keypairs/list"
	case KeypairsAdd:
		return "keypairs/add"
	case Relays:
		return "relays"
	case Wallet:
		return "wallet"
	case Settings:
		return "settings"
	}
	return fmt.Sprintf("route(%d)", int(n))
}

// Family returns the top-level screen n belongs to.
func (n RouteName) Family() Family {
	switch n {
	case Unlock:
		return FamilyUnlock
	case Home:
		return FamilyHome
	case KeypairsList, KeypairsAdd:
		return FamilyKeypairs
	case Relays:
		return FamilyRelays
	case Wallet:
		return FamilyWallet
	case Settings:
		return FamilySettings
	}
	return ""
}

// SameTopLevel reports whether n and other are the same screen family
// regardless of subroute.
func (n RouteName) SameTopLevel(other RouteName) bool {
	f := n.Family()
	return f != "" && f == other.Family()
}

// RequiresSession reports whether the screen is only reachable unlocked.
func (n RouteName) RequiresSession() bool {
	return n != Unlock
}

func (n RouteName) valid() bool {
	return n >= Unlock && n <= Settings
}
