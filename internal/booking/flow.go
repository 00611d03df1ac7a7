package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/uncensored-studios/studio-booking-service/internal/domain"
	quotePrice "github.com/uncensored-studios/studio-booking-service/internal/usecase/quote_price"
	"github.com/uncensored-studios/studio-booking-service/pkg/types"
)

// Flow is the booking form state machine for one visitor session. All state
// transitions happen on discrete user actions serialized by the flow's mutex;
// the flow is owned by exactly one session and never shared.
//
// Month fetches run in goroutines tagged with a sequence number so that when
// a user pages months faster than responses arrive, only the most recently
// requested month ever updates the visible state. Free-slot data is reported
// as loading until both the availability fetch and the calendar feed fetch
// have settled.
type Flow struct {
	mu sync.Mutex

	catalog      []domain.Service
	source       AvailabilitySource
	feed         MarkerSource
	quoter       Quoter
	transport    Transport
	timeProvider TimeProvider
	log          Logger

	step         Step
	fields       FormFields
	selectedDate domain.Date
	selectedTime types.HourString
	viewingDate  domain.Date

	month        MonthRef
	fetchSeq     uint64
	days         map[domain.Date]domain.DayAvailability
	monthSettled bool
	monthErr     string

	markers     []domain.BookedMarker
	feedStarted bool
	feedSettled bool

	submitting bool
}

// NewFlow creates a fresh flow in the idle step with default form fields.
func NewFlow(
	catalog []domain.Service,
	source AvailabilitySource,
	feed MarkerSource,
	quoter Quoter,
	transport Transport,
	log Logger,
) *Flow {
	return &Flow{
		catalog:      catalog,
		source:       source,
		feed:         feed,
		quoter:       quoter,
		transport:    transport,
		timeProvider: &RealTimeProvider{},
		log:          log,
		step:         StepIdle,
		fields:       defaultFields(),
	}
}

// OpenCalendar opens the calendar view, kicking off the feed fetch (once per
// session) and the current month's availability fetch (once, unless a month
// was already loaded).
func (f *Flow) OpenCalendar(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step == StepSubmitting {
		return fmt.Errorf("%w: submission in flight", ErrInvalidTransition)
	}

	f.startFeedFetch(ctx)

	if f.days == nil && !f.fetchOutstanding() {
		now := f.timeProvider.Now()
		f.month = MonthRef{Year: now.Year(), Month: now.Month()}
		f.startMonthFetch(ctx)
	}

	if f.step == StepIdle || f.step == StepSlotChosen || f.step == StepConfirmed {
		f.step = StepBrowsingCalendar
	}
	return nil
}

// NavigateMonth moves exactly one month in either direction and triggers a
// fresh availability fetch for the new month. A selection belonging to a day
// outside the new month stays inert until the user re-selects.
func (f *Flow) NavigateMonth(ctx context.Context, delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if delta != 1 && delta != -1 {
		return fmt.Errorf("%w: month navigation moves one month at a time", ErrInvalidTransition)
	}
	if f.step != StepBrowsingCalendar && f.step != StepViewingSlots {
		return fmt.Errorf("%w: calendar is not open", ErrInvalidTransition)
	}

	f.month = f.month.add(delta)
	f.step = StepBrowsingCalendar
	f.viewingDate = ""
	f.startMonthFetch(ctx)

	f.log.Info("NavigateMonth: now browsing %d-%02d", f.month.Year, int(f.month.Month))
	return nil
}

// SelectDay picks a calendar day to view its free slots. Past, empty and
// fully booked days are not selectable; the flow state is left unchanged for
// those (the UI renders them non-interactive).
func (f *Flow) SelectDay(date domain.Date) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepBrowsingCalendar && f.step != StepViewingSlots {
		return fmt.Errorf("%w: calendar is not open", ErrInvalidTransition)
	}
	if !f.ready() {
		return ErrAvailabilityNotReady
	}

	if !f.dayState(date).Selectable() {
		return ErrDayNotSelectable
	}

	f.viewingDate = date
	f.step = StepViewingSlots
	return nil
}

// DaySlots returns the reconciled free slots for a day. Never renders from a
// single source: both the availability fetch and the feed fetch must have
// settled.
func (f *Flow) DaySlots(date domain.Date) ([]domain.TimeSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.ready() {
		return nil, ErrAvailabilityNotReady
	}

	day, ok := f.days[date]
	if !ok {
		return []domain.TimeSlot{}, nil
	}
	return domain.FreeSlots(day, f.markers), nil
}

// SelectSlot chooses a free slot, setting the selected date and time
// atomically and collapsing the calendar.
func (f *Flow) SelectSlot(date domain.Date, slotTime types.HourString) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepBrowsingCalendar && f.step != StepViewingSlots {
		return fmt.Errorf("%w: calendar is not open", ErrInvalidTransition)
	}
	if !f.ready() {
		return ErrAvailabilityNotReady
	}

	day, ok := f.days[date]
	if !ok {
		return ErrSlotNotFree
	}

	for _, slot := range domain.FreeSlots(day, f.markers) {
		if slot.Time == slotTime {
			f.selectedDate = date
			f.selectedTime = slotTime
			f.viewingDate = ""
			f.step = StepSlotChosen
			f.log.Info("SelectSlot: selected %s at %s", date, slotTime)
			return nil
		}
	}
	return ErrSlotNotFree
}

// ChangeSelection reopens the calendar from the slot summary. Previously
// fetched availability is kept; no refetch happens until the user navigates.
func (f *Flow) ChangeSelection() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepSlotChosen {
		return fmt.Errorf("%w: no slot chosen", ErrInvalidTransition)
	}
	f.step = StepBrowsingCalendar
	return nil
}

// UpdateForm applies a partial form update. Changing the referral source
// clears any previously entered reference code; reference codes are stored
// uppercased. Editing after a confirmation starts a new attempt.
func (f *Flow) UpdateForm(patch FieldPatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step == StepSubmitting {
		return fmt.Errorf("%w: submission in flight", ErrInvalidTransition)
	}
	if f.step == StepConfirmed {
		f.step = StepIdle
	}

	f.fields.apply(patch)
	return nil
}

// Quote computes the current price quote from the captured service and
// session length. Quotes are always derived fresh, never cached.
func (f *Flow) Quote() (*quotePrice.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	hours, err := f.sessionHours()
	if err != nil {
		return nil, err
	}

	return f.quoter.Execute(&quotePrice.Request{
		ServiceID: f.fields.Service,
		Hours:     hours,
	})
}

// Submit validates the complete form and sends it through the configured
// transport. Validation failures block the submission before any network
// call. Submission is single-flight per session; on failure the flow stays in
// its pre-submission step so the user can retry without re-entering data, and
// on success everything resets to defaults.
func (f *Flow) Submit(ctx context.Context) error {
	f.mu.Lock()

	if f.submitting {
		f.mu.Unlock()
		return ErrSubmissionInFlight
	}

	if err := f.validateForSubmission(); err != nil {
		f.mu.Unlock()
		return err
	}

	req := f.buildRequest()
	prevStep := f.step
	f.submitting = true
	f.step = StepSubmitting
	f.mu.Unlock()

	err := f.transport.Submit(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if err != nil {
		f.step = prevStep
		f.log.Error("Submit: transport failure, keeping form state for retry: %v", err)
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	f.fields = defaultFields()
	f.selectedDate = ""
	f.selectedTime = ""
	f.viewingDate = ""
	f.step = StepConfirmed
	f.log.Info("Submit: booking request confirmed for month %d-%02d", f.month.Year, int(f.month.Month))
	return nil
}

// MonthView reports the reconciled calendar for the current month. Loading is
// true until both the month fetch and the feed fetch have settled.
func (f *Flow) MonthView() MonthView {
	f.mu.Lock()
	defer f.mu.Unlock()

	view := MonthView{Month: f.month, Error: f.monthErr}
	if !f.ready() {
		view.Loading = true
		return view
	}

	first := time.Date(f.month.Year, f.month.Month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	view.Days = make([]DayView, 0, daysInMonth)
	for dayNum := 1; dayNum <= daysInMonth; dayNum++ {
		date := domain.NewDate(first.AddDate(0, 0, dayNum-1))
		state := f.dayState(date)

		dv := DayView{Date: date, State: state}
		if state == domain.DayOpen {
			day := f.days[date]
			dv.FreeSlots = len(domain.FreeSlots(day, f.markers))
		}
		view.Days = append(view.Days, dv)
	}
	return view
}

// Snapshot returns the externally visible flow state.
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	return Snapshot{
		Step:         f.step,
		Fields:       f.fields,
		SelectedDate: f.selectedDate,
		SelectedTime: f.selectedTime,
	}
}

// --- internals; callers hold f.mu ---

func (f *Flow) ready() bool {
	return f.monthSettled && f.feedSettled
}

func (f *Flow) fetchOutstanding() bool {
	return f.fetchSeq > 0 && !f.monthSettled
}

func (f *Flow) dayState(date domain.Date) domain.DayState {
	today := domain.NewDate(f.timeProvider.Now())

	var day *domain.DayAvailability
	if d, ok := f.days[date]; ok {
		day = &d
	}
	return domain.DayStateFor(date, day, f.markers, today)
}

// startMonthFetch launches the availability fetch for the current month. The
// sequence number makes superseded fetches discard their results instead of
// applying them.
func (f *Flow) startMonthFetch(ctx context.Context) {
	f.fetchSeq++
	seq := f.fetchSeq
	ref := f.month
	serviceID := f.fields.Service
	providerID := f.fields.ProviderID
	f.monthSettled = false
	f.monthErr = ""

	go f.loadMonth(context.WithoutCancel(ctx), seq, ref, serviceID, providerID)
}

func (f *Flow) loadMonth(ctx context.Context, seq uint64, ref MonthRef, serviceID, providerID string) {
	days, err := f.source.Month(ctx, serviceID, providerID, ref.Year, ref.Month)

	f.mu.Lock()
	defer f.mu.Unlock()

	if seq != f.fetchSeq {
		f.log.Info("loadMonth: discarding stale availability response for %d-%02d", ref.Year, int(ref.Month))
		return
	}

	f.monthSettled = true
	if err != nil {
		f.days = map[domain.Date]domain.DayAvailability{}
		f.monthErr = "availability is temporarily unavailable, please try again"
		f.log.Error("loadMonth: fetch failed for %d-%02d: %v", ref.Year, int(ref.Month), err)
		return
	}

	f.days = make(map[domain.Date]domain.DayAvailability, len(days))
	for _, day := range days {
		f.days[day.Date] = day
	}
	f.log.Info("loadMonth: loaded %d candidate days for %d-%02d", len(days), ref.Year, int(ref.Month))
}

// startFeedFetch launches the calendar feed fetch once per session. The feed
// source fail-safes to an empty marker set, so this always settles.
func (f *Flow) startFeedFetch(ctx context.Context) {
	if f.feedStarted {
		return
	}
	f.feedStarted = true

	go func(ctx context.Context) {
		markers := f.feed.FetchMarkers(ctx)

		f.mu.Lock()
		defer f.mu.Unlock()
		f.markers = markers
		f.feedSettled = true
	}(context.WithoutCancel(ctx))
}

func (f *Flow) buildRequest() *domain.BookingRequest {
	return &domain.BookingRequest{
		Name:           f.fields.Name,
		Email:          f.fields.Email,
		Phone:          f.fields.Phone,
		Service:        f.fields.Service,
		Hours:          f.fields.Hours,
		Message:        f.fields.Message,
		Date:           f.selectedDate,
		Time:           f.selectedTime,
		ReferralSource: f.fields.ReferralSource,
		ReferenceCode:  f.fields.ReferenceCode,
		Honeypot:       f.fields.Honeypot,
		ProviderID:     f.fields.ProviderID,
	}
}
