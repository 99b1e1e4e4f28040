package service

import (
	"context"
	"time"

	"github.com/dmelo/assistech-api/internal/domain/repository"
)

// ReportService produces end-of-day summaries for the counter
type ReportService struct {
	saleRepo repository.SaleRepository
}

// NewReportService creates a new report service
func NewReportService(saleRepo repository.SaleRepository) *ReportService {
	return &ReportService{saleRepo: saleRepo}
}

// MethodBreakdown is one payment method slice of the daily report
type MethodBreakdown struct {
	Method string  `json:"method"`
	Count  int64   `json:"count"`
	Net    float64 `json:"net"`
}

// DailyReport is the end-of-day closing summary
type DailyReport struct {
	Date     string            `json:"date"`
	Count    int64             `json:"count"`
	Gross    float64           `json:"gross"`
	Discount float64           `json:"discount"`
	Net      float64           `json:"net"`
	ByMethod []MethodBreakdown `json:"by_method"`
}

// GetDailyReport summarizes the sales of one calendar day. Cancelled sales
// are excluded.
func (s *ReportService) GetDailyReport(ctx context.Context, day time.Time) (*DailyReport, error) {
	summary, err := s.saleRepo.SummarizeDay(ctx, day)
	if err != nil {
		return nil, err
	}

	report := &DailyReport{
		Date:     summary.Date.Format("2006-01-02"),
		Count:    summary.Count,
		Gross:    float64(summary.Gross) / 100,
		Discount: float64(summary.Discount) / 100,
		Net:      float64(summary.Net) / 100,
		ByMethod: make([]MethodBreakdown, 0, len(summary.ByMethod)),
	}
	for _, m := range summary.ByMethod {
		report.ByMethod = append(report.ByMethod, MethodBreakdown{
			Method: string(m.Method),
			Count:  m.Count,
			Net:    float64(m.Net) / 100,
		})
	}

	return report, nil
}
