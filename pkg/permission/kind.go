// Package permission holds the closed set of permission kinds and the
// registry of their display metadata.
//
// Adding a kind means extending the enumeration below and seeding its entry
// in defaultComponents; TestEveryKindIsSeeded fails until both are done.
package permission

import (
	"fmt"
	"strings"
)

// Kind identifies a permission a prompt can ask for.
type Kind uint8

const (
	KindCamera Kind = iota
	KindPhoto
	KindLocation
	KindLocationAlways
	KindMicrophone
	KindNotification
	KindCalendar
	KindBluetooth
	KindTracking
	KindContacts
	KindMotion
	KindReminders
	KindSpeech
	KindHealth
)

const kindCount = int(KindHealth) + 1

var kindNames = [kindCount]string{
	KindCamera:         "camera",
	KindPhoto:          "photo",
	KindLocation:       "location",
	KindLocationAlways: "location_always",
	KindMicrophone:     "microphone",
	KindNotification:   "notification",
	KindCalendar:       "calendar",
	KindBluetooth:      "bluetooth",
	KindTracking:       "tracking",
	KindContacts:       "contacts",
	KindMotion:         "motion",
	KindReminders:      "reminders",
	KindSpeech:         "speech",
	KindHealth:         "health",
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Valid reports whether k belongs to the enumeration.
func (k Kind) Valid() bool {
	return int(k) < kindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// ParseKind resolves a snake_case kind name. Dashes are accepted in place of
// underscores.
func ParseKind(name string) (Kind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, candidate := range kindNames {
		if candidate == normalized {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown permission kind %q", name)
}

// ParseKinds resolves a list of names, dropping duplicates while keeping the
// first occurrence order.
func ParseKinds(names []string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(names))
	seen := make(map[Kind]struct{}, len(names))
	for _, name := range names {
		kind, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[kind]; dup {
			continue
		}
		seen[kind] = struct{}{}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// State is the answer a permission currently has.
type State uint8

const (
	StateIdle State = iota
	StateAllowed
	StateDenied
)

func (s State) String() string {
	switch s {
	case StateAllowed:
		return "allowed"
	case StateDenied:
		return "denied"
	default:
		return "idle"
	}
}
