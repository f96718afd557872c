package domain

// GameState is the single persisted record of a player's session.
// JSON keys match the browser save format.
type GameState struct {
	Coins             int      `json:"coins"`
	TotalSpins        int      `json:"totalSpins"`
	WinStreak         int      `json:"winStreak"`
	LastWinAmount     int      `json:"lastWinAmount"`
	DailyBonusClaimed bool     `json:"dailyBonusClaimed"`
	Achievements      []string `json:"achievements"`
}

// NewGameState returns the state of a brand new player
func NewGameState() GameState {
	return GameState{
		Coins:        DefaultStartingCoins,
		Achievements: []string{},
	}
}

// Clone returns a deep copy so callers can mutate without aliasing achievements
func (s GameState) Clone() GameState {
	out := s
	out.Achievements = make([]string, len(s.Achievements))
	copy(out.Achievements, s.Achievements)
	return out
}

// HasAchievement reports whether label is already unlocked
func (s GameState) HasAchievement(label string) bool {
	for _, a := range s.Achievements {
		if a == label {
			return true
		}
	}
	return false
}

// AddAchievement appends label unless it is already present.
// Returns true when the label was newly added.
func (s *GameState) AddAchievement(label string) bool {
	if s.HasAchievement(label) {
		return false
	}
	s.Achievements = append(s.Achievements, label)
	return true
}

// Normalize collapses duplicate achievements (first occurrence wins)
// and replaces a nil list with an empty one.
func (s *GameState) Normalize() {
	seen := make(map[string]struct{}, len(s.Achievements))
	unique := make([]string, 0, len(s.Achievements))
	for _, a := range s.Achievements {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		unique = append(unique, a)
	}
	s.Achievements = unique
}

// CanAffordSpin reports whether the wallet covers one spin
func (s GameState) CanAffordSpin() bool {
	return s.Coins >= SpinCost
}
