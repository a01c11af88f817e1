package request

import (
	"errors"
	"strings"
	"time"

	"fukuro_studio/internal/domain/entities"
	"fukuro_studio/internal/domain/pricing"
)

var (
	ErrInvalidDeliveryDate = errors.New("invalid delivery date")
)

// ServiceInput is one service block of the quote form. Durations are free text
// ("1:30", "2 min 10 seg", "45").
type ServiceInput struct {
	Quantity            int      `json:"quantity" binding:"gte=0"`
	Duration            string   `json:"duration"`
	IndividualDurations []string `json:"individual_durations"`
	Format              string   `json:"format"`
	Resolution          string   `json:"resolution"`
}

// QuoteRequest is the quote form payload. A nil service block means the service
// was not selected.
type QuoteRequest struct {
	ClientName        string        `json:"client_name"`
	ClientEmail       string        `json:"client_email"`
	ProjectName       string        `json:"project_name"`
	IsExistingProject bool          `json:"is_existing_project"`
	Audio             *ServiceInput `json:"audio"`
	Video             *ServiceInput `json:"video"`
	DeliveryDate      string        `json:"delivery_date"`
	Brief             string        `json:"brief"`
	AssetsLink        string        `json:"assets_link"`
	TermsAccepted     bool          `json:"terms_accepted"`
}

// ToEntity parses durations and the YYYY-MM-DD delivery date. An empty delivery
// date stays zero.
func (r QuoteRequest) ToEntity(loc *time.Location) (entities.QuoteRequest, error) {
	out := entities.QuoteRequest{
		ClientName:        r.ClientName,
		ClientEmail:       r.ClientEmail,
		ProjectName:       r.ProjectName,
		IsExistingProject: r.IsExistingProject,
		Audio:             r.Audio.toEntity(entities.ServiceAudio),
		Video:             r.Video.toEntity(entities.ServiceVideo),
		Brief:             r.Brief,
		AssetsLink:        r.AssetsLink,
	}
	if strings.TrimSpace(r.DeliveryDate) != "" {
		d, err := pricing.ParseCalendarDate(r.DeliveryDate, loc)
		if err != nil {
			return entities.QuoteRequest{}, ErrInvalidDeliveryDate
		}
		out.DeliveryDate = d
	}
	return out, nil
}

func (s *ServiceInput) toEntity(kind entities.ServiceKind) *entities.ServiceRequest {
	if s == nil {
		return nil
	}
	req := &entities.ServiceRequest{
		Kind:            kind,
		Quantity:        s.Quantity,
		PerItemDuration: pricing.ParseDuration(s.Duration),
		Format:          strings.TrimSpace(s.Format),
		Resolution:      strings.TrimSpace(s.Resolution),
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}
	for _, raw := range s.IndividualDurations {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		req.IndividualDurations = append(req.IndividualDurations, pricing.ParseDuration(raw))
	}
	return req
}
