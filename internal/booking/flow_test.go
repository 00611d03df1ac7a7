package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uncensored-studios/studio-booking-service/internal/domain"
	quotePrice "github.com/uncensored-studios/studio-booking-service/internal/usecase/quote_price"
	"github.com/uncensored-studios/studio-booking-service/pkg/ptr"
	"github.com/uncensored-studios/studio-booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func monthKey(year int, month time.Month) string {
	return fmt.Sprintf("%d-%02d", year, int(month))
}

// stubSource serves canned month grids and can hold a month's response behind
// a gate channel to simulate a slow fetch.
type stubSource struct {
	mu    sync.Mutex
	days  map[string][]domain.DayAvailability
	gates map[string]chan struct{}
	calls []string
	err   error
}

func (s *stubSource) Month(_ context.Context, _, _ string, year int, month time.Month) ([]domain.DayAvailability, error) {
	k := monthKey(year, month)

	s.mu.Lock()
	s.calls = append(s.calls, k)
	gate := s.gates[k]
	days := s.days[k]
	err := s.err
	s.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return days, nil
}

func (s *stubSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// stubFeed serves canned markers, optionally behind a gate.
type stubFeed struct {
	markers []domain.BookedMarker
	gate    chan struct{}
}

func (s *stubFeed) FetchMarkers(context.Context) []domain.BookedMarker {
	if s.gate != nil {
		<-s.gate
	}
	if s.markers == nil {
		return []domain.BookedMarker{}
	}
	return s.markers
}

// stubTransport records submissions and can fail or block.
type stubTransport struct {
	calls atomic.Int32
	err   error
	gate  chan struct{}
}

func (s *stubTransport) Submit(context.Context, *domain.BookingRequest) error {
	s.calls.Add(1)
	if s.gate != nil {
		<-s.gate
	}
	return s.err
}

func aprilDays() []domain.DayAvailability {
	return []domain.DayAvailability{
		{
			Date: "2026-04-10",
			Slots: []domain.TimeSlot{
				{Time: "9:00", DurationHours: 1, Price: 20, Available: true},
				{Time: "10:00", DurationHours: 1, Price: 20, Available: true},
			},
		},
	}
}

func mayDays() []domain.DayAvailability {
	return []domain.DayAvailability{
		{
			Date: "2026-05-11",
			Slots: []domain.TimeSlot{
				{Time: "18:00", DurationHours: 1, Price: 25, Available: true},
			},
		},
	}
}

func newTestFlow(source *stubSource, feed *stubFeed, transport *stubTransport) *Flow {
	quoter := quotePrice.NewUseCase(domain.DefaultCatalog, nopLogger{})
	f := NewFlow(domain.DefaultCatalog, source, feed, quoter, transport, nopLogger{})
	f.timeProvider = fixedTime{t: time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)}
	return f
}

func openAndLoad(t *testing.T, f *Flow) {
	t.Helper()
	require.NoError(t, f.OpenCalendar(context.Background()))
	require.Eventually(t, func() bool {
		return !f.MonthView().Loading
	}, time.Second, 5*time.Millisecond)
}

// fills the contact form and picks the 10:00 slot on April 10th
func chooseSlotAndFillForm(t *testing.T, f *Flow) {
	t.Helper()
	openAndLoad(t, f)
	require.NoError(t, f.SelectDay("2026-04-10"))
	require.NoError(t, f.SelectSlot("2026-04-10", "10:00"))
	require.NoError(t, f.UpdateForm(FieldPatch{
		Name:           ptr.Ptr("Ada"),
		Email:          ptr.Ptr("ada@example.com"),
		Phone:          ptr.Ptr("07000000000"),
		Service:        ptr.Ptr("recording"),
		Hours:          ptr.Ptr("4"),
		ReferralSource: ptr.Ptr("google-search"),
	}))
}

func TestFlow_MonthViewLoadsOnlyWhenBothSourcesSettled(t *testing.T) {
	feedGate := make(chan struct{})
	source := &stubSource{days: map[string][]domain.DayAvailability{"2026-04": aprilDays()}}
	feed := &stubFeed{gate: feedGate}
	f := newTestFlow(source, feed, &stubTransport{})

	require.NoError(t, f.OpenCalendar(context.Background()))

	// the feed has not settled, so the month must still report loading even
	// once the availability fetch lands
	assert.True(t, f.MonthView().Loading)
	assert.Empty(t, f.MonthView().Days)

	close(feedGate)
	require.Eventually(t, func() bool {
		return !f.MonthView().Loading
	}, time.Second, 5*time.Millisecond)

	view := f.MonthView()
	assert.Equal(t, MonthRef{Year: 2026, Month: time.April}, view.Month)
	assert.Len(t, view.Days, 30)
}

func TestFlow_StaleMonthResponseDiscarded(t *testing.T) {
	aprilGate := make(chan struct{})
	source := &stubSource{
		days: map[string][]domain.DayAvailability{
			"2026-04": aprilDays(),
			"2026-05": mayDays(),
		},
		gates: map[string]chan struct{}{"2026-04": aprilGate},
	}
	f := newTestFlow(source, &stubFeed{}, &stubTransport{})

	// open on April (fetch held back), then page forward before it lands
	require.NoError(t, f.OpenCalendar(context.Background()))
	require.NoError(t, f.NavigateMonth(context.Background(), 1))

	require.Eventually(t, func() bool {
		return !f.MonthView().Loading
	}, time.Second, 5*time.Millisecond)

	// now let the superseded April response arrive
	close(aprilGate)
	time.Sleep(50 * time.Millisecond)

	view := f.MonthView()
	assert.Equal(t, MonthRef{Year: 2026, Month: time.May}, view.Month)

	var openDates []domain.Date
	for _, day := range view.Days {
		if day.State == domain.DayOpen {
			openDates = append(openDates, day.Date)
		}
	}
	assert.Equal(t, []domain.Date{"2026-05-11"}, openDates)
}

func TestFlow_MonthFetchFailureIsNonFatal(t *testing.T) {
	source := &stubSource{err: errors.New("upstream down")}
	f := newTestFlow(source, &stubFeed{}, &stubTransport{})

	openAndLoad(t, f)

	view := f.MonthView()
	assert.NotEmpty(t, view.Error)
	for _, day := range view.Days {
		assert.NotEqual(t, domain.DayOpen, day.State)
	}
}

func TestFlow_MarkersExcludeBookedSlots(t *testing.T) {
	source := &stubSource{days: map[string][]domain.DayAvailability{"2026-04": aprilDays()}}
	feed := &stubFeed{markers: []domain.BookedMarker{{Date: "2026-04-10", StartHour: "9:00"}}}
	f := newTestFlow(source, feed, &stubTransport{})

	openAndLoad(t, f)
	require.NoError(t, f.SelectDay("2026-04-10"))

	slots, err := f.DaySlots("2026-04-10")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, types.HourString("10:00"), slots[0].Time)
}

func TestFlow_SelectDayRejectsUnselectableDays(t *testing.T) {
	source := &stubSource{days: map[string][]domain.DayAvailability{"2026-04": aprilDays()}}
	f := newTestFlow(source, &stubFeed{}, &stubTransport{})

	openAndLoad(t, f)

	// past day
	assert.ErrorIs(t, f.SelectDay("2026-03-30"), ErrDayNotSelectable)
	// day with no candidate slots
	assert.ErrorIs(t, f.SelectDay("2026-04-15"), ErrDayNotSelectable)

	// rejected selections leave the step untouched
	assert.Equal(t, StepBrowsingCalendar, f.Snapshot().Step)
}

func TestFlow_SlotSelectionIsAtomic(t *testing.T) {
	source := &stubSource{days: map[string][]domain.DayAvailability{"2026-04": aprilDays()}}
	f := newTestFlow(source, &stubFeed{}, &stubTransport{})

	openAndLoad(t, f)

	snap := f.Snapshot()
	assert.Empty(t, snap.SelectedDate)
	assert.Empty(t, snap.SelectedTime)

	require.NoError(t, f.SelectSlot("2026-04-10", "9:00"))

	snap = f.Snapshot()
	assert.Equal(t, StepSlotChosen, snap.Step)
	assert.Equal(t, domain.Date("2026-04-10"), snap.SelectedDate)
	assert.Equal(t, types.HourString("9:00"), snap.SelectedTime)
}

func TestFlow_SelectSlotRejectsBookedSlot(t *testing.T) {
	source := &stubSource{days: map[string][]domain.DayAvailability{"2026-04": aprilDays()}}
	feed := &stubFeed{markers: []domain.BookedMarker{{Date: "2026-04-10", StartHour: "9:00"}}}
	f := newTestFlow(source, feed, &stubTransport{})

	openAndLoad(t, f)

	assert.ErrorIs(t, f.SelectSlot("2026-04-10", "9:00"), ErrSlotNotFree)
	assert.ErrorIs(t, f.SelectSlot("2026-04-20", "9:00"), ErrSlotNotFree)
}

func TestFlow_ChangeSelectionKeepsCachedMonth(t *testing.T) {
	source := &stubSource{days: map[string][]domain.DayAvailability{"2026-04": aprilDays()}}
	f := newTestFlow(source, &stubFeed{}, &stubTransport{})

	openAndLoad(t, f)
	require.NoError(t, f.SelectSlot("2026-04-10", "9:00"))
	require.NoError(t, f.ChangeSelection())

	// back to the calendar without a refetch
	assert.Equal(t, StepBrowsingCalendar, f.Snapshot().Step)
	assert.False(t, f.MonthView().Loading)
	assert.Equal(t, 1, source.callCount())
}

func TestFlow_ReferralSourceChangeClearsReferenceCode(t *testing.T) {
	f := newTestFlow(&stubSource{}, &stubFeed{}, &stubTransport{})

	require.NoError(t, f.UpdateForm(FieldPatch{
		ReferralSource: ptr.Ptr("reference-code"),
		ReferenceCode:  ptr.Ptr("studio50"),
	}))
	assert.Equal(t, "STUDIO50", f.Snapshot().Fields.ReferenceCode)

	require.NoError(t, f.UpdateForm(FieldPatch{ReferralSource: ptr.Ptr("social-media")}))

	snap := f.Snapshot()
	assert.Equal(t, domain.ReferralSocialMedia, snap.Fields.ReferralSource)
	assert.Empty(t, snap.Fields.ReferenceCode)
}

func TestFlow_QuoteFollowsFormFields(t *testing.T) {
	f := newTestFlow(&stubSource{}, &stubFeed{}, &stubTransport{})

	// defaults: dry hire at the two-hour minimum
	quote, err := f.Quote()
	require.NoError(t, err)
	assert.Equal(t, 40.0, quote.Price)

	require.NoError(t, f.UpdateForm(FieldPatch{Service: ptr.Ptr("recording"), Hours: ptr.Ptr("4")}))

	quote, err = f.Quote()
	require.NoError(t, err)
	assert.Equal(t, 140.0, quote.Price)
	assert.True(t, quote.Discounted)
}

func TestFlow_SubmitValidatesBeforeAnyNetworkCall(t *testing.T) {
	transport := &stubTransport{}
	source := &stubSource{days: map[string][]domain.DayAvailability{"2026-04": aprilDays()}}
	f := newTestFlow(source, &stubFeed{}, transport)

	// no slot selected
	assert.ErrorIs(t, f.Submit(context.Background()), ErrMissingSlot)

	openAndLoad(t, f)
	require.NoError(t, f.SelectSlot("2026-04-10", "9:00"))

	// missing contact details
	assert.ErrorIs(t, f.Submit(context.Background()), ErrMissingContactField)

	require.NoError(t, f.UpdateForm(FieldPatch{
		Name:  ptr.Ptr("Ada"),
		Email: ptr.Ptr("ada@example.com"),
		Phone: ptr.Ptr("07000000000"),
	}))

	// missing referral source
	assert.ErrorIs(t, f.Submit(context.Background()), ErrMissingReferralSource)

	require.NoError(t, f.UpdateForm(FieldPatch{ReferralSource: ptr.Ptr("reference-code")}))

	// reference-code referral without a code
	assert.ErrorIs(t, f.Submit(context.Background()), ErrMissingReferenceCode)

	assert.Equal(t, int32(0), transport.calls.Load())
}

func TestFlow_SubmitSuccessResetsToDefaults(t *testing.T) {
	transport := &stubTransport{}
	source := &stubSource{days: map[string][]domain.DayAvailability{"2026-04": aprilDays()}}
	f := newTestFlow(source, &stubFeed{}, transport)

	chooseSlotAndFillForm(t, f)
	require.NoError(t, f.Submit(context.Background()))

	snap := f.Snapshot()
	assert.Equal(t, StepConfirmed, snap.Step)
	assert.Empty(t, snap.SelectedDate)
	assert.Empty(t, snap.SelectedTime)
	assert.Equal(t, defaultFields(), snap.Fields)
	assert.Equal(t, int32(1), transport.calls.Load())
}

func TestFlow_SubmitFailureKeepsFormForRetry(t *testing.T) {
	transport := &stubTransport{err: errors.New("relay down")}
	source := &stubSource{days: map[string][]domain.DayAvailability{"2026-04": aprilDays()}}
	f := newTestFlow(source, &stubFeed{}, transport)

	chooseSlotAndFillForm(t, f)
	assert.ErrorIs(t, f.Submit(context.Background()), ErrSubmitFailed)

	snap := f.Snapshot()
	assert.Equal(t, StepSlotChosen, snap.Step)
	assert.Equal(t, "Ada", snap.Fields.Name)
	assert.Equal(t, domain.Date("2026-04-10"), snap.SelectedDate)

	// retry succeeds without re-entering anything
	transport.err = nil
	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, StepConfirmed, f.Snapshot().Step)
}

func TestFlow_SubmitIsSingleFlight(t *testing.T) {
	gate := make(chan struct{})
	transport := &stubTransport{gate: gate}
	source := &stubSource{days: map[string][]domain.DayAvailability{"2026-04": aprilDays()}}
	f := newTestFlow(source, &stubFeed{}, transport)

	chooseSlotAndFillForm(t, f)

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background()) }()

	require.Eventually(t, func() bool {
		return f.Snapshot().Step == StepSubmitting
	}, time.Second, 5*time.Millisecond)

	assert.ErrorIs(t, f.Submit(context.Background()), ErrSubmissionInFlight)

	close(gate)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), transport.calls.Load())
}

func TestFlow_EditingAfterConfirmationStartsNewAttempt(t *testing.T) {
	transport := &stubTransport{}
	source := &stubSource{days: map[string][]domain.DayAvailability{"2026-04": aprilDays()}}
	f := newTestFlow(source, &stubFeed{}, transport)

	chooseSlotAndFillForm(t, f)
	require.NoError(t, f.Submit(context.Background()))
	require.Equal(t, StepConfirmed, f.Snapshot().Step)

	require.NoError(t, f.UpdateForm(FieldPatch{Name: ptr.Ptr("Grace")}))
	assert.Equal(t, StepIdle, f.Snapshot().Step)
}
