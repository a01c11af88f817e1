package pricing

import (
	"fmt"
	"strings"

	"fukuro_studio/internal/domain/entities"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const receiptRule = "----------------------------------------"

var moneyPrinter = message.NewPrinter(language.MustParse("es-MX"))

// FormatMoney renders an amount for display, e.g. "$4,200.00 MXN".
func FormatMoney(v float64) string {
	return moneyPrinter.Sprintf("$%.2f MXN", v)
}

// FormatReceipt renders a submitted quote as the plain-text receipt sent to the
// client and the studio.
func FormatReceipt(q entities.Quote) string {
	req := q.Request
	b := q.Breakdown

	var sb strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&sb, format, args...)
		sb.WriteByte('\n')
	}

	line("CLIENTE: %s", orNA(req.ClientName))
	line("EMAIL: %s", orNA(req.ClientEmail))
	line("PROYECTO: %s", orNA(req.ProjectName))
	line(receiptRule)

	var names []string
	if req.Audio != nil {
		names = append(names, "Audio")
	}
	if req.Video != nil {
		names = append(names, "Video")
	}
	line("SERVICIOS: %s", orNA(strings.Join(names, " + ")))

	if req.Audio != nil {
		writeService(&sb, "Audio", *req.Audio, b.AudioFee)
	}
	if req.Video != nil {
		writeService(&sb, "Video", *req.Video, b.VideoFee)
	}
	line(receiptRule)

	switch {
	case req.IsExistingProject:
		line("TARIFA BASE (Proyecto): %s (Proyecto existente)", FormatMoney(0))
	case len(names) > 0:
		line("TARIFA BASE (Proyecto): %s", FormatMoney(b.BaseFee))
		line("> La Tarifa Base es por proyecto. Se omitirá en futuros añadidos a este proyecto.")
	}

	delivery := "N/A"
	if !req.DeliveryDate.IsZero() {
		delivery = req.DeliveryDate.Format(DateLayout)
	}
	line("FECHA DE ENTREGA: %s", delivery)

	if b.HasUrgency {
		line("TARIFA DE URGENCIA: +%s (%.0f%%)", FormatMoney(b.UrgencyFee), b.UrgencyPercent*100)
	}

	line("COTIZACIÓN TOTAL: %s", FormatMoney(b.Total))
	line("> Cotización aproximada. Se ajustará de acuerdo a la duración final y revisiones adicionales.")
	line(receiptRule)
	line("BRIEF:")
	line("%s", orNA(req.Brief))
	line(receiptRule)
	line("Se incluyen 3 rondas de revisión. Revisiones adicionales se cotizarán por separado.")
	line("El pago total se realiza contra-entrega de los archivos finales.")

	return sb.String()
}

func writeService(sb *strings.Builder, label string, s entities.ServiceRequest, fee float64) {
	fmt.Fprintf(sb, "[Detalles de %s]\n", label)
	fmt.Fprintf(sb, "  Cantidad: %d\n", s.Quantity)
	if !s.PerItemDuration.IsZero() || len(s.IndividualDurations) == 0 {
		fmt.Fprintf(sb, "  Duración (c/u): %s\n", s.PerItemDuration)
	}
	if len(s.IndividualDurations) > 0 {
		parts := make([]string, 0, len(s.IndividualDurations))
		for _, d := range s.IndividualDurations {
			parts = append(parts, d.String())
		}
		fmt.Fprintf(sb, "  Duraciones individuales: %s\n", strings.Join(parts, ", "))
	}
	fmt.Fprintf(sb, "  Specs: %s | %s\n", orNA(s.Format), orNA(s.Resolution))
	fmt.Fprintf(sb, "  Subtotal %s: %s\n", label, FormatMoney(fee))
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
