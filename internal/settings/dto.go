package settings

import (
	"time"

	"github.com/shopspring/decimal"

	"univadmin/internal/domain"
)

type Settings struct {
	Categories []domain.Category
	Templates  []domain.EmailTemplate
	Fees       FeeSchedule
}

type CategoryDTO struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
	IsActive      bool     `json:"isActive"`
}

type EmailTemplateDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Subject      string    `json:"subject"`
	Type         string    `json:"type"`
	LastModified time.Time `json:"lastModified"`
}

type FeeScheduleDTO struct {
	CommissionPercent     decimal.Decimal `json:"commissionPercent"`
	ProcessingPercent     decimal.Decimal `json:"processingPercent"`
	FixedFee              decimal.Decimal `json:"fixedFee"`
	WithdrawalFee         decimal.Decimal `json:"withdrawalFee"`
	SessionTimeoutMinutes int             `json:"sessionTimeoutMinutes"`
	HighValueThreshold    decimal.Decimal `json:"highValueOrderThreshold"`
}

type SettingsResponse struct {
	Categories     []CategoryDTO      `json:"categories"`
	EmailTemplates []EmailTemplateDTO `json:"emailTemplates"`
	Fees           FeeScheduleDTO     `json:"fees"`
}

func toResponse(s *Settings) SettingsResponse {
	resp := SettingsResponse{
		Categories:     make([]CategoryDTO, 0, len(s.Categories)),
		EmailTemplates: make([]EmailTemplateDTO, 0, len(s.Templates)),
		Fees: FeeScheduleDTO{
			CommissionPercent:     s.Fees.CommissionPercent,
			ProcessingPercent:     s.Fees.ProcessingPercent,
			FixedFee:              s.Fees.FixedFee,
			WithdrawalFee:         s.Fees.WithdrawalFee,
			SessionTimeoutMinutes: s.Fees.SessionTimeoutMinutes,
			HighValueThreshold:    s.Fees.HighValueThreshold,
		},
	}

	for _, c := range s.Categories {
		subcategories := c.Subcategories
		if subcategories == nil {
			subcategories = []string{}
		}
		resp.Categories = append(resp.Categories, CategoryDTO{
			ID:            c.ID,
			Name:          c.Name,
			Subcategories: subcategories,
			IsActive:      c.IsActive,
		})
	}

	for _, t := range s.Templates {
		resp.EmailTemplates = append(resp.EmailTemplates, EmailTemplateDTO{
			ID:           t.ID,
			Name:         t.Name,
			Subject:      t.Subject,
			Type:         string(t.Type),
			LastModified: t.LastModified,
		})
	}

	return resp
}
