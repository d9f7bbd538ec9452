package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Aarifshaik/ganga-calc/internal/domain"
	"github.com/Aarifshaik/ganga-calc/internal/usecase"
	"github.com/Aarifshaik/ganga-calc/internal/usecase/mocks"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(at time.Time) *fakeClock {
	return &fakeClock{now: at}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = at
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLedger(t *testing.T) (*usecase.LedgerUseCase, *mocks.MockStateRepository, *fakeClock) {
	t.Helper()

	clock := newFakeClock(time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC))
	repo := mocks.NewMockStateRepository()
	uc := usecase.NewLedgerUseCase(repo, mocks.NewMockIDGenerator(), zerolog.Nop(), usecase.WithClock(clock.Now))
	return uc, repo, clock
}

func openToday(t *testing.T, uc *usecase.LedgerUseCase, balance float64) {
	t.Helper()
	if !uc.SetOpeningBalance(balance) {
		t.Fatal("failed to set opening balance on today's ledger")
	}
}

func TestSetOpeningBalance(t *testing.T) {
	uc, _, _ := newTestLedger(t)

	if !uc.SetOpeningBalance(-100.4) {
		t.Fatal("expected opening balance to be accepted")
	}

	ledger := uc.SelectedLedger()
	if !ledger.HasOpeningBalance() {
		t.Fatal("opening balance not set")
	}
	if *ledger.OpeningBalance != -100 {
		t.Errorf("opening balance = %d, want -100 (negative deficit, rounded)", *ledger.OpeningBalance)
	}
}

func TestUpsert_RequiresOpeningBalance(t *testing.T) {
	uc, _, _ := newTestLedger(t)

	if uc.UpsertProfit(usecase.ProfitInput{VehicleID: "rig-1", AgentName: "Ravi", Meters: 10, TotalPrice: 500}) {
		t.Error("upsert should fail before opening balance is set")
	}
	if uc.UpsertDue(usecase.DueInput{Name: "Ravi", Amount: 30}) {
		t.Error("due upsert should fail before opening balance is set")
	}
	if uc.DeleteProfit("anything") {
		t.Error("delete should fail before opening balance is set")
	}

	ledger := uc.SelectedLedger()
	if len(ledger.Profits) != 0 || len(ledger.Dues) != 0 {
		t.Errorf("gated writes must not change entry lists: %+v", ledger)
	}
}

func TestUpsertProfit_CreateAndUpdate(t *testing.T) {
	uc, _, clock := newTestLedger(t)
	openToday(t, uc, 0)

	if !uc.UpsertProfit(usecase.ProfitInput{VehicleID: "rig-1", AgentName: " Ravi ", Meters: 10, TotalPrice: 500}) {
		t.Fatal("first upsert failed")
	}
	if !uc.UpsertProfit(usecase.ProfitInput{VehicleID: "rig-2", AgentName: "Kumar", Meters: 5, TotalPrice: 300.6}) {
		t.Fatal("second upsert failed")
	}

	ledger := uc.SelectedLedger()
	if len(ledger.Profits) != 2 {
		t.Fatalf("expected 2 profits, got %d", len(ledger.Profits))
	}
	// Newest entry sits at the front.
	if ledger.Profits[0].AgentName != "Kumar" || ledger.Profits[1].AgentName != "Ravi" {
		t.Errorf("unexpected order: %q then %q", ledger.Profits[0].AgentName, ledger.Profits[1].AgentName)
	}
	if ledger.Profits[0].TotalPrice != 301 {
		t.Errorf("fractional price not rounded: %d", ledger.Profits[0].TotalPrice)
	}
	if ledger.Profits[1].AgentName != "Ravi" {
		t.Errorf("agent name not trimmed: %q", ledger.Profits[1].AgentName)
	}

	older := ledger.Profits[1]
	clock.Advance(time.Hour)

	if !uc.UpsertProfit(usecase.ProfitInput{ID: older.ID, VehicleID: "rig-1", AgentName: "Ravi", Meters: 12, TotalPrice: 600}) {
		t.Fatal("update failed")
	}

	ledger = uc.SelectedLedger()
	if len(ledger.Profits) != 2 {
		t.Fatalf("update must not grow the list, got %d", len(ledger.Profits))
	}
	updated := ledger.Profits[1]
	if updated.ID != older.ID {
		t.Error("update changed the entry ID")
	}
	if !updated.CreatedAt.Equal(older.CreatedAt) {
		t.Error("update changed CreatedAt")
	}
	if !updated.UpdatedAt.After(older.UpdatedAt) {
		t.Error("update did not refresh UpdatedAt")
	}
	if updated.Meters != 12 || updated.TotalPrice != 600 {
		t.Errorf("update lost fields: %+v", updated)
	}
}

func TestUpsert_UnknownSuppliedIDCreatesFreshEntry(t *testing.T) {
	uc, _, _ := newTestLedger(t)
	openToday(t, uc, 0)

	if !uc.UpsertDue(usecase.DueInput{ID: "never-seen", Name: "Ravi", Amount: 30}) {
		t.Fatal("upsert failed")
	}

	ledger := uc.SelectedLedger()
	if len(ledger.Dues) != 1 {
		t.Fatalf("expected 1 due, got %d", len(ledger.Dues))
	}
	if ledger.Dues[0].ID == "never-seen" {
		t.Error("a non-matching supplied ID must not be adopted")
	}
}

func TestUpsert_FeedsCatalogs(t *testing.T) {
	uc, _, _ := newTestLedger(t)
	openToday(t, uc, 0)

	uc.UpsertProfit(usecase.ProfitInput{VehicleID: "rig-1", AgentName: "Ravi", Meters: 1, TotalPrice: 1})
	uc.UpsertProfit(usecase.ProfitInput{VehicleID: "rig-1", AgentName: "RAVI", Meters: 1, TotalPrice: 1})
	uc.UpsertExpense(usecase.ExpenseInput{VehicleID: "rig-1", ExpenseType: "Diesel", Amount: 10})
	uc.UpsertMoneyEntry(usecase.MoneyInput{LocationName: "Safe", Amount: 5})
	uc.UpsertAdvance(usecase.AdvanceInput{Name: "Someone", Amount: 5})

	catalogs := uc.Catalogs()
	if len(catalogs.Agents) != 1 || catalogs.Agents[0] != "Ravi" {
		t.Errorf("agents catalog = %v", catalogs.Agents)
	}
	if len(catalogs.ExpenseTypes) != 1 || catalogs.ExpenseTypes[0] != "Diesel" {
		t.Errorf("expense types catalog = %v", catalogs.ExpenseTypes)
	}
	if len(catalogs.MoneyLocations) != 1 || catalogs.MoneyLocations[0] != "Safe" {
		t.Errorf("money locations catalog = %v", catalogs.MoneyLocations)
	}
}

func TestDelete_UnknownIDReportsFailure(t *testing.T) {
	uc, _, _ := newTestLedger(t)
	openToday(t, uc, 0)
	uc.UpsertMoneyEntry(usecase.MoneyInput{LocationName: "Safe", Amount: 70})

	if uc.DeleteMoneyEntry("missing") {
		t.Error("delete of unknown ID should report failure")
	}
	if got := uc.SelectedLedger(); len(got.MoneyEntries) != 1 {
		t.Errorf("failed delete must not change the list, got %d entries", len(got.MoneyEntries))
	}

	id := uc.SelectedLedger().MoneyEntries[0].ID
	if !uc.DeleteMoneyEntry(id) {
		t.Error("delete of existing entry failed")
	}
	if got := uc.SelectedLedger(); len(got.MoneyEntries) != 0 {
		t.Errorf("expected empty list after delete, got %d", len(got.MoneyEntries))
	}
}

func TestSelectDay_ClampsFutureToToday(t *testing.T) {
	uc, _, _ := newTestLedger(t)

	chosen := uc.SelectDay("2025-07-01")
	if chosen != "2025-06-15" {
		t.Errorf("future day selected as %q, want clamp to 2025-06-15", chosen)
	}
	if uc.SelectedDay() != "2025-06-15" {
		t.Errorf("selected day = %q", uc.SelectedDay())
	}
}

func TestPastDay_IsReadOnly(t *testing.T) {
	uc, _, _ := newTestLedger(t)

	if chosen := uc.SelectDay("2025-06-10"); chosen != "2025-06-10" {
		t.Fatalf("past day selection clamped unexpectedly to %q", chosen)
	}
	if uc.IsSelectedDayEditable() {
		t.Error("past day must not be editable")
	}
	if uc.SetOpeningBalance(100) {
		t.Error("opening balance write on past day should fail")
	}
	if uc.UpsertAdvance(usecase.AdvanceInput{Name: "X", Amount: 5}) {
		t.Error("entry write on past day should fail")
	}
}

func TestMidnightRollover_DemotesDayWithoutReload(t *testing.T) {
	uc, _, clock := newTestLedger(t)
	openToday(t, uc, 100)

	if !uc.IsSelectedDayEditable() || !uc.CanUseModules() {
		t.Fatal("today's ledger should start editable")
	}

	clock.Set(time.Date(2025, 6, 16, 0, 0, 30, 0, time.UTC))

	if uc.IsSelectedDayEditable() {
		t.Error("yesterday should demote to read-only after midnight")
	}
	if uc.UpsertDue(usecase.DueInput{Name: "Late", Amount: 1}) {
		t.Error("mutation after rollover should fail")
	}
}

func TestFinalizeDay_OpeningBalanceRequired(t *testing.T) {
	uc, _, _ := newTestLedger(t)

	result := uc.FinalizeDay()
	if result.OK {
		t.Fatal("finalize should fail with unset opening balance")
	}
	if result.Reason != usecase.FinalizeReasonOpeningBalanceRequired {
		t.Errorf("reason = %q, want %q", result.Reason, usecase.FinalizeReasonOpeningBalanceRequired)
	}
}

func TestFinalizeDay_Mismatch(t *testing.T) {
	uc, _, _ := newTestLedger(t)
	openToday(t, uc, 80)
	uc.UpsertDue(usecase.DueInput{Name: "Ravi", Amount: 10})
	uc.UpsertMoneyEntry(usecase.MoneyInput{LocationName: "Safe", Amount: 50})

	result := uc.FinalizeDay()
	if result.OK {
		t.Fatal("finalize should fail on mismatch")
	}
	if result.Reason != usecase.FinalizeReasonMismatch {
		t.Fatalf("reason = %q, want mismatch", result.Reason)
	}
	if result.Expected != 80 || result.Entered != 60 || result.Difference != 20 {
		t.Errorf("verdict figures = %d/%d/%d, want 80/60/20",
			result.Expected, result.Entered, result.Difference)
	}
	if uc.SelectedLedger().IsFinalized {
		t.Error("mismatch must leave the day open")
	}
}

func TestFinalizeDay_EndToEnd(t *testing.T) {
	uc, _, clock := newTestLedger(t)
	openToday(t, uc, 100)
	uc.UpsertDue(usecase.DueInput{Name: "Ravi", Amount: 30})
	uc.UpsertMoneyEntry(usecase.MoneyInput{LocationName: "Safe", Amount: 70})

	result := uc.FinalizeDay()
	if !result.OK {
		t.Fatalf("finalize failed: %+v", result)
	}

	ledger := uc.SelectedLedger()
	if !ledger.IsFinalized || ledger.FinalizedAt == nil {
		t.Fatal("ledger not marked finalized")
	}
	stamped := *ledger.FinalizedAt

	// Idempotent: a second call succeeds trivially and keeps the stamp.
	clock.Advance(time.Hour)
	again := uc.FinalizeDay()
	if !again.OK {
		t.Errorf("second finalize = %+v, want ok", again)
	}
	if !uc.SelectedLedger().FinalizedAt.Equal(stamped) {
		t.Error("second finalize changed FinalizedAt")
	}

	// Every mutation on the finalized day fails silently.
	if uc.SetOpeningBalance(1) {
		t.Error("opening balance change on finalized day should fail")
	}
	if uc.UpsertProfit(usecase.ProfitInput{VehicleID: "rig-1", AgentName: "X", Meters: 1, TotalPrice: 1}) {
		t.Error("profit upsert on finalized day should fail")
	}
	if uc.UpsertExpense(usecase.ExpenseInput{VehicleID: "rig-1", ExpenseType: "X", Amount: 1}) {
		t.Error("expense upsert on finalized day should fail")
	}
	if uc.UpsertAdvance(usecase.AdvanceInput{Name: "X", Amount: 1}) {
		t.Error("advance upsert on finalized day should fail")
	}
	if uc.UpsertDue(usecase.DueInput{Name: "X", Amount: 1}) {
		t.Error("due upsert on finalized day should fail")
	}
	if uc.UpsertMoneyEntry(usecase.MoneyInput{LocationName: "X", Amount: 1}) {
		t.Error("money upsert on finalized day should fail")
	}
	if uc.DeleteDue(uc.SelectedLedger().Dues[0].ID) {
		t.Error("delete on finalized day should fail")
	}
}

func TestSelectedTotals(t *testing.T) {
	uc, _, _ := newTestLedger(t)
	openToday(t, uc, 100)
	uc.UpsertProfit(usecase.ProfitInput{VehicleID: "rig-1", AgentName: "Ravi", Meters: 10, TotalPrice: 500})
	uc.UpsertExpense(usecase.ExpenseInput{VehicleID: "rig-1", ExpenseType: "Diesel", Amount: 800})

	totals := uc.SelectedTotals()
	if totals.EffectiveProfit != -300 {
		t.Errorf("EffectiveProfit = %d, want -300", totals.EffectiveProfit)
	}
	if totals.TotalMoney != -200 {
		t.Errorf("TotalMoney = %d, want -200", totals.TotalMoney)
	}
}

func TestHydrate(t *testing.T) {
	uc, repo, _ := newTestLedger(t)

	opening := int64(50)
	stored := domain.NewAppState("2025-06-14")
	stored.Days["2025-06-14"].OpeningBalance = &opening
	stored.SelectedDay = "2025-06-14"
	repo.SetStored(stored, false)

	if err := uc.Hydrate(context.Background()); err != nil {
		t.Fatalf("hydrate failed: %v", err)
	}
	if uc.SelectedDay() != "2025-06-14" {
		t.Errorf("selected day = %q, want persisted 2025-06-14", uc.SelectedDay())
	}
	day, ok := uc.Day("2025-06-14")
	if !ok || *day.OpeningBalance != 50 {
		t.Errorf("persisted ledger not restored: %+v", day)
	}
	if uc.StorageRecovered() {
		t.Error("clean load must not raise the recovery flag")
	}
}

func TestHydrate_ClampsStaleFutureSelection(t *testing.T) {
	uc, repo, _ := newTestLedger(t)

	stored := domain.NewAppState("2025-06-20")
	stored.SelectedDay = "2025-06-20"
	repo.SetStored(stored, false)

	if err := uc.Hydrate(context.Background()); err != nil {
		t.Fatalf("hydrate failed: %v", err)
	}
	if uc.SelectedDay() != "2025-06-15" {
		t.Errorf("selected day = %q, want clamp to today", uc.SelectedDay())
	}
}

func TestHydrate_RecoveryFlagIsDismissible(t *testing.T) {
	uc, repo, _ := newTestLedger(t)
	repo.SetStored(nil, true)

	if err := uc.Hydrate(context.Background()); err != nil {
		t.Fatalf("hydrate failed: %v", err)
	}
	if !uc.StorageRecovered() {
		t.Fatal("recovery flag not surfaced")
	}

	uc.DismissStorageRecovered()
	if uc.StorageRecovered() {
		t.Error("recovery flag not dismissible")
	}
}

func TestSessionLifecycle(t *testing.T) {
	uc, _, clock := newTestLedger(t)

	if uc.Session() != nil {
		t.Fatal("fresh state should have no session")
	}

	uc.SetSession(domain.Session{UserID: "op-1", LoggedInAt: clock.Now()})
	session := uc.Session()
	if session == nil || session.UserID != "op-1" {
		t.Fatalf("session = %+v", session)
	}

	uc.ClearSession()
	if uc.Session() != nil {
		t.Error("logout should clear the session")
	}
}

func TestHydrate_InvalidSelectedDayResetsToToday(t *testing.T) {
	tests := []struct {
		name string
		day  domain.DayKey
	}{
		{"empty", ""},
		{"wrong format", "15-06-2025"},
		{"garbage", "not a date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, _ := newTestLedger(t)

			stored := domain.NewAppState("2025-06-14")
			stored.SelectedDay = tt.day
			repo.SetStored(stored, false)

			if err := uc.Hydrate(context.Background()); err != nil {
				t.Fatalf("hydrate failed: %v", err)
			}
			if uc.SelectedDay() != "2025-06-15" {
				t.Errorf("selected day = %q, want reset to today", uc.SelectedDay())
			}
			if _, ok := uc.Day(tt.day); ok {
				t.Errorf("ledger created under invalid key %q", tt.day)
			}
		})
	}
}

func TestSelectedDayView_IsOneConsistentSnapshot(t *testing.T) {
	uc, _, _ := newTestLedger(t)
	openToday(t, uc, 100)

	if !uc.UpsertDue(usecase.DueInput{Name: "Ravi", Amount: 30}) {
		t.Fatal("due upsert failed")
	}
	if !uc.UpsertMoneyEntry(usecase.MoneyInput{LocationName: "Cash Box", Amount: 70}) {
		t.Fatal("money upsert failed")
	}

	view := uc.SelectedDayView()
	if view.Ledger.Date != "2025-06-15" {
		t.Fatalf("view ledger date = %q", view.Ledger.Date)
	}
	if got := domain.ComputeTotals(view.Ledger); got != view.Totals {
		t.Errorf("totals disagree with the ledger in the same view: %+v vs %+v", got, view.Totals)
	}
	if !view.Editable || !view.CanUseModules {
		t.Errorf("open today's view should be fully editable: %+v", view)
	}

	if result := uc.FinalizeDay(); !result.OK {
		t.Fatalf("finalize failed: %+v", result)
	}
	view = uc.SelectedDayView()
	if !view.Ledger.IsFinalized || view.Editable || view.CanUseModules {
		t.Errorf("finalized view must be read-only: %+v", view)
	}
}

func TestPersist_SlowEarlierSaveCannotOverwriteFinalize(t *testing.T) {
	uc, repo, _ := newTestLedger(t)

	var mu sync.Mutex
	var written []*domain.AppState
	calls := 0
	repo.SaveFunc = func(ctx context.Context, state *domain.AppState) error {
		mu.Lock()
		calls++
		first := calls == 1
		mu.Unlock()
		// The first flush stalls, the way a slow network write would.
		if first {
			time.Sleep(200 * time.Millisecond)
		}
		mu.Lock()
		written = append(written, state)
		mu.Unlock()
		return nil
	}

	openToday(t, uc, 100)
	if !uc.UpsertDue(usecase.DueInput{Name: "Ravi", Amount: 30}) {
		t.Fatal("due upsert failed")
	}
	if !uc.UpsertMoneyEntry(usecase.MoneyInput{LocationName: "Cash Box", Amount: 70}) {
		t.Fatal("money upsert failed")
	}
	if result := uc.FinalizeDay(); !result.OK {
		t.Fatalf("finalize failed: %+v", result)
	}

	lastWritten := func() *domain.AppState {
		mu.Lock()
		defer mu.Unlock()
		if len(written) == 0 {
			return nil
		}
		return written[len(written)-1]
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		if last := lastWritten(); last != nil && last.Days["2025-06-15"].IsFinalized {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("finalized snapshot never reached storage")
		}
		time.Sleep(10 * time.Millisecond)
	}

	// Give any straggling save time to land, then confirm storage still
	// holds the finalized state.
	time.Sleep(300 * time.Millisecond)
	last := lastWritten()
	if !last.Days["2025-06-15"].IsFinalized {
		t.Fatal("a stale snapshot overwrote the finalized state in storage")
	}
}
