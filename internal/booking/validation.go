package booking

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/uncensored-studios/studio-booking-service/internal/domain"
)

// validateForSubmission checks the complete form before any network call is
// made. Caller holds f.mu.
func (f *Flow) validateForSubmission() error {
	if f.selectedDate == "" || f.selectedTime == "" {
		return ErrMissingSlot
	}

	if strings.TrimSpace(f.fields.Name) == "" {
		return fmt.Errorf("%w: name", ErrMissingContactField)
	}
	if strings.TrimSpace(f.fields.Email) == "" {
		return fmt.Errorf("%w: email", ErrMissingContactField)
	}
	if strings.TrimSpace(f.fields.Phone) == "" {
		return fmt.Errorf("%w: phone", ErrMissingContactField)
	}

	service, ok := domain.FindService(f.catalog, f.fields.Service)
	if !ok {
		return ErrServiceNotFound
	}
	if service.IsHourly() {
		if _, err := f.sessionHours(); err != nil {
			return err
		}
	}

	if !f.fields.ReferralSource.IsValid() {
		return ErrMissingReferralSource
	}
	if f.fields.ReferralSource.RequiresReferenceCode() && strings.TrimSpace(f.fields.ReferenceCode) == "" {
		return ErrMissingReferenceCode
	}

	if len(f.fields.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message", ErrFieldTooLong)
	}
	if len(f.fields.ReferenceCode) > domain.MaxReferenceCodeLength {
		return fmt.Errorf("%w: reference code", ErrFieldTooLong)
	}

	return nil
}

// sessionHours parses the captured session length. Caller holds f.mu.
func (f *Flow) sessionHours() (int, error) {
	raw := strings.TrimSpace(f.fields.Hours)
	if raw == "" {
		return domain.MinSessionHours, nil
	}

	hours, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHours, raw)
	}
	if !domain.IsAllowedDuration(hours) {
		return 0, fmt.Errorf("%w: %d hours", ErrInvalidHours, hours)
	}
	return hours, nil
}

// apply merges a patch into the fields. A referral source change invalidates
// any previously entered reference code; codes are stored uppercased.
func (ff *FormFields) apply(patch FieldPatch) {
	if patch.Name != nil {
		ff.Name = *patch.Name
	}
	if patch.Email != nil {
		ff.Email = *patch.Email
	}
	if patch.Phone != nil {
		ff.Phone = *patch.Phone
	}
	if patch.Service != nil {
		ff.Service = *patch.Service
	}
	if patch.Hours != nil {
		ff.Hours = *patch.Hours
	}
	if patch.Message != nil {
		ff.Message = *patch.Message
	}
	if patch.ReferralSource != nil {
		next := domain.ReferralSource(*patch.ReferralSource)
		if next != ff.ReferralSource {
			ff.ReferenceCode = ""
		}
		ff.ReferralSource = next
	}
	if patch.ReferenceCode != nil {
		ff.ReferenceCode = strings.ToUpper(strings.TrimSpace(*patch.ReferenceCode))
	}
	if patch.Honeypot != nil {
		ff.Honeypot = *patch.Honeypot
	}
	if patch.ProviderID != nil {
		ff.ProviderID = *patch.ProviderID
	}
}
