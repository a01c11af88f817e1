package intake

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"fukuro_studio/internal/domain/entities"
)

func str(s string) *string { return &s }
func num(n int) *int       { return &n }
func flag(b bool) *bool    { return &b }

func TestMerge(t *testing.T) {
	t.Run("null never overwrites", func(t *testing.T) {
		first := Merge(entities.IntakeData{}, entities.IntakeData{Brief: str("x")})
		second := Merge(first, entities.IntakeData{Brief: nil})
		if second.Brief == nil || *second.Brief != "x" {
			t.Fatalf("expected brief to be kept, got %v", second.Brief)
		}
	})

	t.Run("incoming wins on conflict", func(t *testing.T) {
		got := Merge(entities.IntakeData{ProjectName: str("Old")}, entities.IntakeData{ProjectName: str("New")})
		if *got.ProjectName != "New" {
			t.Fatalf("expected New, got %s", *got.ProjectName)
		}
	})

	t.Run("service fragments merge field by field", func(t *testing.T) {
		prev := entities.IntakeData{Audio: &entities.ServiceFragment{Quantity: num(2), Format: str("WAV")}}
		incoming := entities.IntakeData{Audio: &entities.ServiceFragment{Duration: str("1:30")}}
		got := Merge(prev, incoming)
		if got.Audio == nil || *got.Audio.Quantity != 2 || *got.Audio.Format != "WAV" || *got.Audio.Duration != "1:30" {
			t.Fatalf("unexpected merged fragment: %+v", got.Audio)
		}
	})

	t.Run("does not alias previous fragment", func(t *testing.T) {
		prev := entities.IntakeData{Video: &entities.ServiceFragment{Quantity: num(1)}}
		_ = Merge(prev, entities.IntakeData{Video: &entities.ServiceFragment{Quantity: num(3)}})
		if *prev.Video.Quantity != 1 {
			t.Fatalf("previous data was mutated")
		}
	})
}

func TestMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		data entities.IntakeData
		want []string
	}{
		{"empty", entities.IntakeData{}, []string{FieldProjectName, FieldBrief}},
		{"blank strings", entities.IntakeData{ProjectName: str("  "), Brief: str("\t")}, []string{FieldProjectName, FieldBrief}},
		{"existing project skips name", entities.IntakeData{ExistingProject: flag(true)}, []string{FieldBrief}},
		{"explicit new project needs name", entities.IntakeData{ExistingProject: flag(false), Brief: str("b")}, []string{FieldProjectName}},
		{"complete", entities.IntakeData{ProjectName: str("Spot"), Brief: str("b")}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MissingRequiredFields(tt.data); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDurationSufficiency(t *testing.T) {
	tests := []struct {
		name    string
		audio   *entities.ServiceFragment
		wantMsg string
	}{
		{"absent service", nil, ""},
		{"quantity zero", &entities.ServiceFragment{Quantity: num(0)}, ""},
		{"single without duration", &entities.ServiceFragment{}, "audio: need approximate duration"},
		{"single with unparseable duration", &entities.ServiceFragment{Duration: str("soon")}, "audio: need approximate duration"},
		{"single with duration", &entities.ServiceFragment{Duration: str("45 seg")}, ""},
		{"single with individual", &entities.ServiceFragment{IndividualDurations: []string{"1:00"}}, ""},
		{"many without durations", &entities.ServiceFragment{Quantity: num(3)}, "audio: need approximate duration of each of the 3 items"},
		{"many with per item", &entities.ServiceFragment{Quantity: num(3), Duration: str("2 min")}, ""},
		{"many partially listed", &entities.ServiceFragment{Quantity: num(3), IndividualDurations: []string{"1:00", "0:30"}}, "audio: need durations for all 3 items, have only 2"},
		{"many fully listed", &entities.ServiceFragment{Quantity: num(2), IndividualDurations: []string{"1:00", "0:30"}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := DurationSufficiency(entities.IntakeData{Audio: tt.audio})
			if tt.wantMsg == "" {
				if len(issues) != 0 {
					t.Fatalf("expected no issues, got %+v", issues)
				}
				return
			}
			if len(issues) != 1 || issues[0].Message != tt.wantMsg {
				t.Fatalf("expected %q, got %+v", tt.wantMsg, issues)
			}
			if issues[0].Service != entities.ServiceAudio {
				t.Fatalf("unexpected service %s", issues[0].Service)
			}
		})
	}

	t.Run("reports both services", func(t *testing.T) {
		data := entities.IntakeData{Audio: &entities.ServiceFragment{}, Video: &entities.ServiceFragment{Quantity: num(2)}}
		issues := DurationSufficiency(data)
		if len(issues) != 2 || issues[0].Service != entities.ServiceAudio || issues[1].Service != entities.ServiceVideo {
			t.Fatalf("unexpected issues %+v", issues)
		}
		if issues[1].Expected != 2 || issues[1].Have != 0 {
			t.Fatalf("unexpected counts %+v", issues[1])
		}
	})
}

func TestSanitize(t *testing.T) {
	raw := entities.IntakeData{
		ClientName:   str("  Ana "),
		ClientEmail:  str("not-an-email"),
		ProjectName:  str(""),
		DeliveryDate: str("next friday"),
		AssetsLink:   str("https://drive.example.com/folder"),
		Audio: &entities.ServiceFragment{
			Quantity:            num(-2),
			Duration:            str(" 1:30 "),
			IndividualDurations: []string{"", " 0:45"},
		},
		Video: &entities.ServiceFragment{Quantity: num(MaxQuantity + 1)},
	}
	got := Sanitize(raw)

	if got.ClientName == nil || *got.ClientName != "Ana" {
		t.Fatalf("expected trimmed client name, got %v", got.ClientName)
	}
	if got.ClientEmail != nil || got.ProjectName != nil || got.DeliveryDate != nil {
		t.Fatalf("expected invalid fields dropped: %+v", got)
	}
	if got.AssetsLink == nil {
		t.Fatalf("expected valid link kept")
	}
	if got.Audio.Quantity != nil || *got.Audio.Duration != "1:30" {
		t.Fatalf("unexpected audio fragment %+v", got.Audio)
	}
	if !reflect.DeepEqual(got.Audio.IndividualDurations, []string{"0:45"}) {
		t.Fatalf("unexpected individual durations %v", got.Audio.IndividualDurations)
	}
	if got.Video.Quantity != nil {
		t.Fatalf("expected out of range quantity dropped")
	}

	ok := Sanitize(entities.IntakeData{ClientEmail: str("ana@example.com"), DeliveryDate: str("2025-01-04")})
	if ok.ClientEmail == nil || ok.DeliveryDate == nil {
		t.Fatalf("expected valid fields kept: %+v", ok)
	}
}

func TestToQuoteRequest(t *testing.T) {
	loc := time.FixedZone("CST", -6*3600)
	data := entities.IntakeData{
		ClientName:      str("Ana"),
		ProjectName:     str("Spot"),
		ExistingProject: flag(true),
		DeliveryDate:    str("2025-01-04"),
		Brief:           str("radio spot"),
		Audio:           &entities.ServiceFragment{Duration: str("1 min 30 seg"), Format: str("WAV")},
		Video:           &entities.ServiceFragment{Quantity: num(0)},
	}
	req := ToQuoteRequest(data, loc)

	if !req.IsExistingProject || req.ProjectName != "Spot" || req.Brief != "radio spot" {
		t.Fatalf("unexpected request %+v", req)
	}
	if req.Video != nil {
		t.Fatalf("quantity zero service must be omitted")
	}
	if req.Audio == nil || req.Audio.Quantity != 1 || req.Audio.PerItemDuration != entities.NewDuration(1, 30) || req.Audio.Format != "WAV" {
		t.Fatalf("unexpected audio %+v", req.Audio)
	}
	if req.DeliveryDate.Location() != loc || req.DeliveryDate.Day() != 4 {
		t.Fatalf("unexpected delivery date %v", req.DeliveryDate)
	}
}

func TestNextPrompt(t *testing.T) {
	if NextPrompt(nil, nil) != "" {
		t.Fatalf("expected empty prompt when complete")
	}
	issues := []entities.DurationIssue{{Service: entities.ServiceVideo, Message: "video: need approximate duration"}}
	got := NextPrompt([]string{FieldBrief}, issues)
	if !strings.Contains(got, "brief") || !strings.Contains(got, "video: need approximate duration") {
		t.Fatalf("unexpected prompt %q", got)
	}
}
