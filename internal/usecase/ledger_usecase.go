package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Aarifshaik/ganga-calc/internal/domain"
)

// Finalize failure reasons.
const (
	FinalizeReasonOpeningBalanceRequired = "opening_balance_required"
	FinalizeReasonMismatch               = "mismatch"
)

// FinalizeResult is the discriminated outcome of FinalizeDay. When the
// reason is "mismatch" the three figures carry the reconciliation
// verdict so the caller can show exactly what is off.
type FinalizeResult struct {
	OK         bool   `json:"ok"`
	Reason     string `json:"reason,omitempty"`
	Expected   int64  `json:"expected"`
	Entered    int64  `json:"entered"`
	Difference int64  `json:"difference"`
}

// ProfitInput is the caller-supplied shape of a profit entry. A non-empty
// ID that matches an existing entry turns the upsert into an update.
type ProfitInput struct {
	ID         string
	VehicleID  string
	AgentName  string
	Meters     float64
	TotalPrice float64
}

// ExpenseInput is the caller-supplied shape of an expense entry.
type ExpenseInput struct {
	ID          string
	VehicleID   string
	ExpenseType string
	Amount      float64
}

// AdvanceInput is the caller-supplied shape of an advance entry.
type AdvanceInput struct {
	ID      string
	Name    string
	Details string
	Amount  float64
}

// DueInput is the caller-supplied shape of a due entry.
type DueInput struct {
	ID      string
	Name    string
	Details string
	Amount  float64
}

// MoneyInput is the caller-supplied shape of a cash-location entry.
type MoneyInput struct {
	ID           string
	LocationName string
	Amount       float64
}

// LedgerUseCase is the ledger store: it owns the mutable per-day entry
// collections and serializes every read and write through one mutex, so
// no operation ever observes a partially-applied mutation. Mutations
// return booleans (or a discriminated finalize result) and never panic;
// gating failures are silent by contract.
type LedgerUseCase struct {
	mu        sync.Mutex
	state     *domain.AppState
	recovered bool

	// Write-behind flush slot. A single flusher goroutine drains it so
	// snapshots reach storage in mutation order; intermediate snapshots
	// may be skipped because each one carries the full state.
	flushMu  sync.Mutex
	pending  *domain.AppState
	flushing bool

	stateRepo StateRepository
	idGen     IDGenerator
	now       func() time.Time
	logger    zerolog.Logger
}

// Option configures a LedgerUseCase.
type Option func(*LedgerUseCase)

// WithClock overrides the wall clock, used by tests to cross midnight.
func WithClock(now func() time.Time) Option {
	return func(uc *LedgerUseCase) {
		uc.now = now
	}
}

// NewLedgerUseCase creates a ledger store with an empty state for today.
// Call Hydrate to load persisted state.
func NewLedgerUseCase(stateRepo StateRepository, idGen IDGenerator, logger zerolog.Logger, opts ...Option) *LedgerUseCase {
	uc := &LedgerUseCase{
		stateRepo: stateRepo,
		idGen:     idGen,
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(uc)
	}
	uc.state = domain.NewAppState(uc.today())
	return uc
}

// Hydrate replaces the in-memory state with the persisted snapshot, if
// any. A corrupt payload has already been archived by the repository;
// it surfaces here as the recovery flag and a fresh state.
func (uc *LedgerUseCase) Hydrate(ctx context.Context) error {
	state, recovered, err := uc.stateRepo.Load(ctx)
	if err != nil {
		return err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.recovered = recovered
	if state == nil {
		uc.state = domain.NewAppState(uc.today())
		return nil
	}

	if state.Days == nil {
		state.Days = map[domain.DayKey]*domain.DayLedger{}
	}
	state.Version = domain.StateVersion
	if _, err := domain.ParseDayKey(string(state.SelectedDay)); err != nil {
		uc.logger.Warn().Str("selected_day", string(state.SelectedDay)).Msg("invalid persisted day selection, resetting to today")
		state.SelectedDay = uc.today()
	}
	state.SelectedDay = domain.ClampDayKey(state.SelectedDay, uc.today())
	state.EnsureDay(state.SelectedDay)
	uc.state = state
	return nil
}

// StorageRecovered reports whether a corrupt persisted payload was moved
// aside during the last hydration.
func (uc *LedgerUseCase) StorageRecovered() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.recovered
}

// DismissStorageRecovered clears the recovery notice.
func (uc *LedgerUseCase) DismissStorageRecovered() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.recovered = false
}

// SelectDay selects a calendar day, clamping future dates to today.
// The ledger for the chosen day is created lazily. Returns the day that
// was actually selected.
func (uc *LedgerUseCase) SelectDay(day domain.DayKey) domain.DayKey {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	chosen := domain.ClampDayKey(day, uc.today())
	uc.state.EnsureDay(chosen)
	uc.state.SelectedDay = chosen
	uc.persistLocked()
	return chosen
}

// SelectedDay returns the currently selected day key.
func (uc *LedgerUseCase) SelectedDay() domain.DayKey {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state.SelectedDay
}

// SelectedLedger returns a snapshot of the selected day's ledger.
func (uc *LedgerUseCase) SelectedLedger() *domain.DayLedger {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state.EnsureDay(uc.state.SelectedDay).Clone()
}

// Day returns a snapshot of an arbitrary day's ledger, if it exists.
func (uc *LedgerUseCase) Day(day domain.DayKey) (*domain.DayLedger, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	ledger, ok := uc.state.Days[day]
	if !ok {
		return nil, false
	}
	return ledger.Clone(), true
}

// SelectedTotals derives the summary figures for the selected day.
func (uc *LedgerUseCase) SelectedTotals() domain.Totals {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return domain.ComputeTotals(uc.state.EnsureDay(uc.state.SelectedDay))
}

// DayView is one consistent read of the selected day: the ledger
// snapshot with the totals and mutability flags derived from the same
// state, taken under a single lock acquisition.
type DayView struct {
	Ledger        *domain.DayLedger
	Totals        domain.Totals
	Editable      bool
	CanUseModules bool
}

// SelectedDayView returns the selected day and its derived figures as
// one atomic snapshot, so a concurrent mutation can never make the
// totals or flags disagree with the ledger they describe.
func (uc *LedgerUseCase) SelectedDayView() DayView {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	day := uc.state.EnsureDay(uc.state.SelectedDay)
	_, editable := uc.mutableSelectedLocked()
	_, canUse := uc.entryMutableLocked()
	return DayView{
		Ledger:        day.Clone(),
		Totals:        domain.ComputeTotals(day),
		Editable:      editable,
		CanUseModules: canUse,
	}
}

// IsSelectedDayEditable reports whether the selected day is today and
// not finalized. Evaluated against the wall clock on every call, so a
// session left open across midnight demotes yesterday automatically.
func (uc *LedgerUseCase) IsSelectedDayEditable() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	_, ok := uc.mutableSelectedLocked()
	return ok
}

// CanUseModules reports whether entries may be recorded: the selected
// day must be editable and the opening balance set.
func (uc *LedgerUseCase) CanUseModules() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	_, ok := uc.entryMutableLocked()
	return ok
}

// Catalogs returns a snapshot of the suggestion lists.
func (uc *LedgerUseCase) Catalogs() domain.Catalogs {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state.Catalogs.Clone()
}

// Session returns the active session, if any.
func (uc *LedgerUseCase) Session() *domain.Session {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.state.Session == nil {
		return nil
	}
	s := *uc.state.Session
	return &s
}

// SetSession records a login.
func (uc *LedgerUseCase) SetSession(session domain.Session) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state.Session = &session
	uc.persistLocked()
}

// ClearSession records a logout.
func (uc *LedgerUseCase) ClearSession() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state.Session = nil
	uc.persistLocked()
}

// SetOpeningBalance sets the opening balance for the selected day.
// Negative values are allowed. Fails silently unless the day is today
// and not finalized.
func (uc *LedgerUseCase) SetOpeningBalance(value float64) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	day, ok := uc.mutableSelectedLocked()
	if !ok {
		return false
	}
	day.SetOpeningBalance(domain.NormalizeAmount(value))
	uc.persistLocked()
	return true
}

// UpsertProfit creates or updates a profit entry. The agent name feeds
// the agents catalog on success.
func (uc *LedgerUseCase) UpsertProfit(input ProfitInput) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	day, ok := uc.entryMutableLocked()
	if !ok {
		return false
	}

	existing, found := day.FindProfit(input.ID)
	entry := domain.ProfitEntry{
		EntryBase:  uc.baseLocked(existing.EntryBase, found),
		VehicleID:  input.VehicleID,
		AgentName:  strings.TrimSpace(input.AgentName),
		Meters:     domain.NormalizeAmount(input.Meters),
		TotalPrice: domain.NormalizeAmount(input.TotalPrice),
	}
	day.PutProfit(entry)
	uc.state.Catalogs.Agents, _ = domain.AppendUnique(uc.state.Catalogs.Agents, entry.AgentName)
	uc.persistLocked()
	return true
}

// DeleteProfit removes a profit entry by ID.
func (uc *LedgerUseCase) DeleteProfit(id string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	day, ok := uc.entryMutableLocked()
	if !ok {
		return false
	}
	if !day.RemoveProfit(id) {
		return false
	}
	uc.persistLocked()
	return true
}

// UpsertExpense creates or updates an expense entry. The expense type
// feeds the expense-types catalog on success.
func (uc *LedgerUseCase) UpsertExpense(input ExpenseInput) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	day, ok := uc.entryMutableLocked()
	if !ok {
		return false
	}

	existing, found := day.FindExpense(input.ID)
	entry := domain.ExpenseEntry{
		EntryBase:   uc.baseLocked(existing.EntryBase, found),
		VehicleID:   input.VehicleID,
		ExpenseType: strings.TrimSpace(input.ExpenseType),
		Amount:      domain.NormalizeAmount(input.Amount),
	}
	day.PutExpense(entry)
	uc.state.Catalogs.ExpenseTypes, _ = domain.AppendUnique(uc.state.Catalogs.ExpenseTypes, entry.ExpenseType)
	uc.persistLocked()
	return true
}

// DeleteExpense removes an expense entry by ID.
func (uc *LedgerUseCase) DeleteExpense(id string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	day, ok := uc.entryMutableLocked()
	if !ok {
		return false
	}
	if !day.RemoveExpense(id) {
		return false
	}
	uc.persistLocked()
	return true
}

// UpsertAdvance creates or updates an advance entry.
func (uc *LedgerUseCase) UpsertAdvance(input AdvanceInput) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	day, ok := uc.entryMutableLocked()
	if !ok {
		return false
	}

	existing, found := day.FindAdvance(input.ID)
	entry := domain.AdvanceEntry{
		EntryBase: uc.baseLocked(existing.EntryBase, found),
		Name:      strings.TrimSpace(input.Name),
		Details:   strings.TrimSpace(input.Details),
		Amount:    domain.NormalizeAmount(input.Amount),
	}
	day.PutAdvance(entry)
	uc.persistLocked()
	return true
}

// DeleteAdvance removes an advance entry by ID.
func (uc *LedgerUseCase) DeleteAdvance(id string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	day, ok := uc.entryMutableLocked()
	if !ok {
		return false
	}
	if !day.RemoveAdvance(id) {
		return false
	}
	uc.persistLocked()
	return true
}

// UpsertDue creates or updates a due entry.
func (uc *LedgerUseCase) UpsertDue(input DueInput) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	day, ok := uc.entryMutableLocked()
	if !ok {
		return false
	}

	existing, found := day.FindDue(input.ID)
	entry := domain.DueEntry{
		EntryBase: uc.baseLocked(existing.EntryBase, found),
		Name:      strings.TrimSpace(input.Name),
		Details:   strings.TrimSpace(input.Details),
		Amount:    domain.NormalizeAmount(input.Amount),
	}
	day.PutDue(entry)
	uc.persistLocked()
	return true
}

// DeleteDue removes a due entry by ID.
func (uc *LedgerUseCase) DeleteDue(id string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	day, ok := uc.entryMutableLocked()
	if !ok {
		return false
	}
	if !day.RemoveDue(id) {
		return false
	}
	uc.persistLocked()
	return true
}

// UpsertMoneyEntry creates or updates a cash-location entry. The
// location name feeds the money-locations catalog on success.
func (uc *LedgerUseCase) UpsertMoneyEntry(input MoneyInput) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	day, ok := uc.entryMutableLocked()
	if !ok {
		return false
	}

	existing, found := day.FindMoneyEntry(input.ID)
	entry := domain.MoneyEntry{
		EntryBase:    uc.baseLocked(existing.EntryBase, found),
		LocationName: strings.TrimSpace(input.LocationName),
		Amount:       domain.NormalizeAmount(input.Amount),
	}
	day.PutMoneyEntry(entry)
	uc.state.Catalogs.MoneyLocations, _ = domain.AppendUnique(uc.state.Catalogs.MoneyLocations, entry.LocationName)
	uc.persistLocked()
	return true
}

// DeleteMoneyEntry removes a cash-location entry by ID.
func (uc *LedgerUseCase) DeleteMoneyEntry(id string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	day, ok := uc.entryMutableLocked()
	if !ok {
		return false
	}
	if !day.RemoveMoneyEntry(id) {
		return false
	}
	uc.persistLocked()
	return true
}

// FinalizeDay closes the selected day once the cash distribution matches
// the expected position. Calling it on an already finalized day succeeds
// without re-validating and without touching the finalize timestamp.
func (uc *LedgerUseCase) FinalizeDay() FinalizeResult {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	day := uc.state.EnsureDay(uc.state.SelectedDay)
	if day.IsFinalized {
		return FinalizeResult{OK: true}
	}

	if uc.state.SelectedDay != uc.today() || !day.HasOpeningBalance() {
		return FinalizeResult{OK: false, Reason: FinalizeReasonOpeningBalanceRequired}
	}

	verdict := domain.ReconcileTotals(domain.ComputeTotals(day))
	if !verdict.Matches {
		return FinalizeResult{
			OK:         false,
			Reason:     FinalizeReasonMismatch,
			Expected:   verdict.Expected,
			Entered:    verdict.Entered,
			Difference: verdict.Difference,
		}
	}

	day.Finalize(uc.now().UTC())
	uc.logger.Info().Str("day", day.Date.String()).Msg("day finalized")
	uc.persistLocked()
	return FinalizeResult{OK: true}
}

func (uc *LedgerUseCase) today() domain.DayKey {
	return domain.DayKeyOf(uc.now())
}

// mutableSelectedLocked returns the selected ledger when it is today's
// and not finalized. Callers hold uc.mu.
func (uc *LedgerUseCase) mutableSelectedLocked() (*domain.DayLedger, bool) {
	day := uc.state.EnsureDay(uc.state.SelectedDay)
	if uc.state.SelectedDay != uc.today() || day.IsFinalized {
		return nil, false
	}
	return day, true
}

// entryMutableLocked additionally requires the opening balance to be
// set before any entry can be recorded.
func (uc *LedgerUseCase) entryMutableLocked() (*domain.DayLedger, bool) {
	day, ok := uc.mutableSelectedLocked()
	if !ok || !day.HasOpeningBalance() {
		return nil, false
	}
	return day, true
}

// baseLocked builds the identity block for an upsert: an update keeps
// the original ID and creation time, a create mints a fresh ID.
func (uc *LedgerUseCase) baseLocked(existing domain.EntryBase, found bool) domain.EntryBase {
	now := uc.now().UTC()
	if found {
		existing.UpdatedAt = now
		return existing
	}
	return domain.EntryBase{
		ID:        uc.idGen.Generate(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// persistLocked queues a snapshot for flushing without blocking the
// mutation. Saves must not reorder: a slow earlier save overwriting a
// later one would leave storage holding a stale state, and after a
// finalize no further mutation would ever re-flush it. A single flusher
// goroutine drains the slot, so the newest snapshot always lands last.
// Save failures are logged; the in-memory state is the source of truth.
func (uc *LedgerUseCase) persistLocked() {
	snapshot := uc.cloneStateLocked()

	uc.flushMu.Lock()
	uc.pending = snapshot
	if uc.flushing {
		uc.flushMu.Unlock()
		return
	}
	uc.flushing = true
	uc.flushMu.Unlock()

	go uc.flush()
}

func (uc *LedgerUseCase) flush() {
	for {
		uc.flushMu.Lock()
		snapshot := uc.pending
		uc.pending = nil
		if snapshot == nil {
			uc.flushing = false
			uc.flushMu.Unlock()
			return
		}
		uc.flushMu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := uc.stateRepo.Save(ctx, snapshot)
		cancel()
		if err != nil {
			uc.logger.Error().Err(err).Msg("failed to persist ledger state")
		}
	}
}

func (uc *LedgerUseCase) cloneStateLocked() *domain.AppState {
	days := make(map[domain.DayKey]*domain.DayLedger, len(uc.state.Days))
	for key, ledger := range uc.state.Days {
		days[key] = ledger.Clone()
	}
	clone := &domain.AppState{
		Version:     uc.state.Version,
		SelectedDay: uc.state.SelectedDay,
		Catalogs:    uc.state.Catalogs.Clone(),
		Days:        days,
	}
	if uc.state.Session != nil {
		s := *uc.state.Session
		clone.Session = &s
	}
	return clone
}
