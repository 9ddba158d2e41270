package domain

import "time"

type Category struct {
	ID            string
	Name          string
	Subcategories []string
	IsActive      bool
}

type TemplateType string

const (
	TemplateTypeWelcome      TemplateType = "welcome"
	TemplateTypeOrder        TemplateType = "order"
	TemplateTypeDispute      TemplateType = "dispute"
	TemplateTypePayout       TemplateType = "payout"
	TemplateTypeNotification TemplateType = "notification"
)

type EmailTemplate struct {
	ID           string
	Name         string
	Subject      string
	Type         TemplateType
	LastModified time.Time
}
