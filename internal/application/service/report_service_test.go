package service

import (
	"context"
	"testing"
	"time"

	"github.com/dmelo/assistech-api/internal/domain/enum"
	"github.com/dmelo/assistech-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDailyReport_ConvertsCentsToDecimals(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	saleRepo := &mockSaleRepo{
		summarizeDay: func(ctx context.Context, d time.Time) (*repository.DailySummary, error) {
			return &repository.DailySummary{
				Date:     d,
				Count:    12,
				Gross:    150000,
				Discount: 5000,
				Net:      145000,
				ByMethod: []repository.MethodTotal{
					{Method: enum.PaymentCash, Count: 7, Net: 80000},
					{Method: enum.PaymentPix, Count: 5, Net: 65000},
				},
			}, nil
		},
	}
	svc := NewReportService(saleRepo)

	report, err := svc.GetDailyReport(context.Background(), day)

	require.NoError(t, err)
	assert.Equal(t, "2026-03-14", report.Date)
	assert.Equal(t, int64(12), report.Count)
	assert.Equal(t, 1500.00, report.Gross)
	assert.Equal(t, 50.00, report.Discount)
	assert.Equal(t, 1450.00, report.Net)
	require.Len(t, report.ByMethod, 2)
	assert.Equal(t, "cash", report.ByMethod[0].Method)
	assert.Equal(t, 800.00, report.ByMethod[0].Net)
}

func TestGetDailyReport_EmptyDay(t *testing.T) {
	svc := NewReportService(&mockSaleRepo{})

	report, err := svc.GetDailyReport(context.Background(), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, int64(0), report.Count)
	assert.Empty(t, report.ByMethod)
}
