package domain

// StateVersion is stamped into persisted snapshots so a future migration
// can tell payload generations apart. No migration logic exists yet.
const StateVersion = 1

// AppState is the whole persisted document: the selected day, the
// session, the catalogs and every day ledger, keyed by date.
type AppState struct {
	Version     int                   `json:"version"`
	SelectedDay DayKey                `json:"selectedDay"`
	Session     *Session              `json:"session"`
	Catalogs    Catalogs              `json:"catalogs"`
	Days        map[DayKey]*DayLedger `json:"days"`
}

// NewAppState returns a fresh state with an empty ledger for today.
func NewAppState(today DayKey) *AppState {
	return &AppState{
		Version:     StateVersion,
		SelectedDay: today,
		Catalogs:    NewCatalogs(),
		Days:        map[DayKey]*DayLedger{today: NewDayLedger(today)},
	}
}

// EnsureDay returns the ledger for the given day, creating an empty one
// lazily the first time the day is addressed.
func (s *AppState) EnsureDay(day DayKey) *DayLedger {
	if ledger, ok := s.Days[day]; ok {
		return ledger
	}
	ledger := NewDayLedger(day)
	s.Days[day] = ledger
	return ledger
}
