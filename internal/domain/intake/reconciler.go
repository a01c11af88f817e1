// Package intake reconciles quote details gathered incrementally across chat
// turns and drives the intake session state machine.
package intake

import (
	"fmt"
	"strings"
	"time"

	"fukuro_studio/internal/domain/entities"
	"fukuro_studio/internal/domain/pricing"

	"github.com/go-playground/validator/v10"
)

// Required field names reported by MissingRequiredFields.
const (
	FieldBrief       = "brief"
	FieldProjectName = "project_name"
)

// MaxQuantity bounds the deliverables a single service may request through chat.
const MaxQuantity = 100

var validate = validator.New()

// Merge overlays incoming over prev. Non-nil incoming fields win; nil fields
// never erase what is already known. Service fragments merge field by field.
func Merge(prev, incoming entities.IntakeData) entities.IntakeData {
	out := prev
	out.ClientName = pick(prev.ClientName, incoming.ClientName)
	out.ClientEmail = pick(prev.ClientEmail, incoming.ClientEmail)
	out.ProjectName = pick(prev.ProjectName, incoming.ProjectName)
	out.ExistingProject = pick(prev.ExistingProject, incoming.ExistingProject)
	out.DeliveryDate = pick(prev.DeliveryDate, incoming.DeliveryDate)
	out.Brief = pick(prev.Brief, incoming.Brief)
	out.AssetsLink = pick(prev.AssetsLink, incoming.AssetsLink)
	out.Audio = mergeFragment(prev.Audio, incoming.Audio)
	out.Video = mergeFragment(prev.Video, incoming.Video)
	return out
}

func pick[T any](prev, incoming *T) *T {
	if incoming != nil {
		return incoming
	}
	return prev
}

func mergeFragment(prev, incoming *entities.ServiceFragment) *entities.ServiceFragment {
	if incoming == nil {
		return prev
	}
	if prev == nil {
		cp := *incoming
		return &cp
	}
	out := *prev
	out.Quantity = pick(prev.Quantity, incoming.Quantity)
	out.Duration = pick(prev.Duration, incoming.Duration)
	out.Format = pick(prev.Format, incoming.Format)
	out.Resolution = pick(prev.Resolution, incoming.Resolution)
	if incoming.IndividualDurations != nil {
		out.IndividualDurations = incoming.IndividualDurations
	}
	return &out
}

// MissingRequiredFields lists required fields that are absent or blank: the
// brief always, the project name unless an existing project was selected.
func MissingRequiredFields(data entities.IntakeData) []string {
	var missing []string
	if blank(data.ProjectName) && !isTrue(data.ExistingProject) {
		missing = append(missing, FieldProjectName)
	}
	if blank(data.Brief) {
		missing = append(missing, FieldBrief)
	}
	return missing
}

// DurationSufficiency reports every requested service whose durations are not
// yet enough to price it. Services that are absent or have quantity 0 are
// skipped; an unknown quantity counts as 1.
func DurationSufficiency(data entities.IntakeData) []entities.DurationIssue {
	var issues []entities.DurationIssue
	for _, kind := range []entities.ServiceKind{entities.ServiceAudio, entities.ServiceVideo} {
		frag := data.Service(kind)
		if frag == nil {
			continue
		}
		quantity := quantityOf(frag)
		if quantity <= 0 {
			continue
		}

		have := len(parsedDurations(frag.IndividualDurations))
		hasPerItem := !perItemDuration(frag).IsZero()

		switch {
		case quantity > 1 && have > 0 && have < quantity:
			issues = append(issues, entities.DurationIssue{
				Service: kind, Expected: quantity, Have: have,
				Message: fmt.Sprintf("%s: need durations for all %d items, have only %d", kind, quantity, have),
			})
		case quantity > 1 && have == 0 && !hasPerItem:
			issues = append(issues, entities.DurationIssue{
				Service: kind, Expected: quantity,
				Message: fmt.Sprintf("%s: need approximate duration of each of the %d items", kind, quantity),
			})
		case quantity == 1 && have == 0 && !hasPerItem:
			issues = append(issues, entities.DurationIssue{
				Service: kind, Expected: 1,
				Message: fmt.Sprintf("%s: need approximate duration", kind),
			})
		}
	}
	return issues
}

// Sanitize validates a raw extracted fragment before it is merged. Fields that
// fail basic checks are dropped (treated as not yet known) instead of being
// propagated into pricing.
func Sanitize(raw entities.IntakeData) entities.IntakeData {
	out := entities.IntakeData{
		ClientName:      cleanString(raw.ClientName),
		ProjectName:     cleanString(raw.ProjectName),
		ExistingProject: raw.ExistingProject,
		Brief:           cleanString(raw.Brief),
	}

	if email := cleanString(raw.ClientEmail); email != nil && validate.Var(*email, "email") == nil {
		out.ClientEmail = email
	}
	if link := cleanString(raw.AssetsLink); link != nil && validate.Var(*link, "url") == nil {
		out.AssetsLink = link
	}
	if date := cleanString(raw.DeliveryDate); date != nil {
		if _, err := pricing.ParseCalendarDate(*date, time.UTC); err == nil {
			out.DeliveryDate = date
		}
	}

	out.Audio = sanitizeFragment(raw.Audio)
	out.Video = sanitizeFragment(raw.Video)
	return out
}

func sanitizeFragment(raw *entities.ServiceFragment) *entities.ServiceFragment {
	if raw == nil {
		return nil
	}
	out := &entities.ServiceFragment{
		Duration:   cleanString(raw.Duration),
		Format:     cleanString(raw.Format),
		Resolution: cleanString(raw.Resolution),
	}
	if raw.Quantity != nil && *raw.Quantity >= 0 && *raw.Quantity <= MaxQuantity {
		q := *raw.Quantity
		out.Quantity = &q
	}
	for _, d := range raw.IndividualDurations {
		if s := strings.TrimSpace(d); s != "" {
			out.IndividualDurations = append(out.IndividualDurations, s)
		}
	}
	return out
}

// ToQuoteRequest converts reconciled intake data into the pricing input.
// Delivery dates are interpreted in loc.
func ToQuoteRequest(data entities.IntakeData, loc *time.Location) entities.QuoteRequest {
	req := entities.QuoteRequest{
		ClientName:        deref(data.ClientName),
		ClientEmail:       deref(data.ClientEmail),
		ProjectName:       deref(data.ProjectName),
		IsExistingProject: isTrue(data.ExistingProject),
		Brief:             deref(data.Brief),
		AssetsLink:        deref(data.AssetsLink),
		Audio:             toServiceRequest(entities.ServiceAudio, data.Audio),
		Video:             toServiceRequest(entities.ServiceVideo, data.Video),
	}
	if data.DeliveryDate != nil {
		if d, err := pricing.ParseCalendarDate(*data.DeliveryDate, loc); err == nil {
			req.DeliveryDate = d
		}
	}
	return req
}

func toServiceRequest(kind entities.ServiceKind, frag *entities.ServiceFragment) *entities.ServiceRequest {
	if frag == nil {
		return nil
	}
	quantity := quantityOf(frag)
	if quantity <= 0 {
		return nil
	}
	return &entities.ServiceRequest{
		Kind:                kind,
		Quantity:            quantity,
		PerItemDuration:     perItemDuration(frag),
		IndividualDurations: parsedDurations(frag.IndividualDurations),
		Format:              deref(frag.Format),
		Resolution:          deref(frag.Resolution),
	}
}

// NextPrompt builds the assistant reply asking for whatever is still missing.
// It returns "" when nothing is missing.
func NextPrompt(missing []string, issues []entities.DurationIssue) string {
	if len(missing) == 0 && len(issues) == 0 {
		return ""
	}
	var parts []string
	for _, f := range missing {
		switch f {
		case FieldProjectName:
			parts = append(parts, "the project name (or tell me it is an existing project)")
		case FieldBrief:
			parts = append(parts, "a short brief of what you need")
		default:
			parts = append(parts, f)
		}
	}
	for _, issue := range issues {
		parts = append(parts, issue.Message)
	}
	return "To prepare your quote I still need: " + strings.Join(parts, "; ") + "."
}

func quantityOf(frag *entities.ServiceFragment) int {
	if frag.Quantity == nil {
		return 1
	}
	return *frag.Quantity
}

func perItemDuration(frag *entities.ServiceFragment) entities.Duration {
	if frag.Duration == nil {
		return entities.Duration{}
	}
	return pricing.ParseDuration(*frag.Duration)
}

// parsedDurations keeps only durations that parse to a non-zero length.
func parsedDurations(raw []string) []entities.Duration {
	var out []entities.Duration
	for _, s := range raw {
		if d := pricing.ParseDuration(s); !d.IsZero() {
			out = append(out, d)
		}
	}
	return out
}

func cleanString(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func isTrue(b *bool) bool {
	return b != nil && *b
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
