package memory

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.yaml.in/yaml/v3"

	"univadmin/internal/domain"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type fixtures struct {
	Students       []studentFixture       `yaml:"students"`
	Buyers         []buyerFixture         `yaml:"buyers"`
	Gigs           []gigFixture           `yaml:"gigs"`
	Orders         []orderFixture         `yaml:"orders"`
	Disputes       []disputeFixture       `yaml:"disputes"`
	Transactions   []transactionFixture   `yaml:"transactions"`
	Payouts        []payoutFixture        `yaml:"payouts"`
	Categories     []categoryFixture      `yaml:"categories"`
	EmailTemplates []emailTemplateFixture `yaml:"email_templates"`
	Profile        *profileFixture        `yaml:"profile"`
}

type studentFixture struct {
	ID               string    `yaml:"id"`
	Name             string    `yaml:"name"`
	Email            string    `yaml:"email"`
	RegistrationDate time.Time `yaml:"registration_date"`
	Status           string    `yaml:"status"`
	GigsCount        int       `yaml:"gigs_count"`
	ProfileLevel     string    `yaml:"profile_level"`
}

type buyerFixture struct {
	ID               string     `yaml:"id"`
	Name             string     `yaml:"name"`
	Email            string     `yaml:"email"`
	RegistrationDate time.Time  `yaml:"registration_date"`
	Status           string     `yaml:"status"`
	TotalOrders      int        `yaml:"total_orders"`
	LastOrderDate    *time.Time `yaml:"last_order_date"`
	TotalSpent       string     `yaml:"total_spent"`
}

type gigFixture struct {
	ID             string    `yaml:"id"`
	Title          string    `yaml:"title"`
	Category       string    `yaml:"category"`
	SellerName     string    `yaml:"seller_name"`
	SellerRating   float64   `yaml:"seller_rating"`
	Status         string    `yaml:"status"`
	SubmissionDate time.Time `yaml:"submission_date"`
	Packages       struct {
		Basic    string `yaml:"basic"`
		Standard string `yaml:"standard"`
		Premium  string `yaml:"premium"`
	} `yaml:"packages"`
	Flags   []string `yaml:"flags"`
	Reports int      `yaml:"reports"`
}

type orderFixture struct {
	ID                  string    `yaml:"id"`
	GigTitle            string    `yaml:"gig_title"`
	BuyerName           string    `yaml:"buyer_name"`
	SellerName          string    `yaml:"seller_name"`
	Status              string    `yaml:"status"`
	Amount              string    `yaml:"amount"`
	Package             string    `yaml:"package"`
	PaymentStatus       string    `yaml:"payment_status"`
	OrderDate           time.Time `yaml:"order_date"`
	DeliveryDate        time.Time `yaml:"delivery_date"`
	HasDispute          bool      `yaml:"has_dispute"`
	Messages            int       `yaml:"messages"`
	MilestonesTotal     int       `yaml:"milestones_total"`
	MilestonesCompleted int       `yaml:"milestones_completed"`
}

type disputeFixture struct {
	ID             string    `yaml:"id"`
	OrderID        string    `yaml:"order_id"`
	GigTitle       string    `yaml:"gig_title"`
	BuyerName      string    `yaml:"buyer_name"`
	SellerName     string    `yaml:"seller_name"`
	Status         string    `yaml:"status"`
	Priority       string    `yaml:"priority"`
	Reason         string    `yaml:"reason"`
	Amount         string    `yaml:"amount"`
	OpenedDate     time.Time `yaml:"opened_date"`
	LastActivityAt time.Time `yaml:"last_activity_at"`
	Description    string    `yaml:"description"`
	EvidenceCount  int       `yaml:"evidence_count"`
	AdminNotes     []string  `yaml:"admin_notes"`
}

type transactionFixture struct {
	ID          string    `yaml:"id"`
	Type        string    `yaml:"type"`
	Description string    `yaml:"description"`
	Party       string    `yaml:"party"`
	Amount      string    `yaml:"amount"`
	Fee         string    `yaml:"fee"`
	NetAmount   string    `yaml:"net_amount"`
	Date        time.Time `yaml:"date"`
	Status      string    `yaml:"status"`
	OrderID     *string   `yaml:"order_id"`
}

type payoutFixture struct {
	ID            string     `yaml:"id"`
	Seller        string     `yaml:"seller"`
	Amount        string     `yaml:"amount"`
	Status        string     `yaml:"status"`
	ScheduledDate time.Time  `yaml:"scheduled_date"`
	CompletedDate *time.Time `yaml:"completed_date"`
	Method        string     `yaml:"method"`
	Orders        int        `yaml:"orders"`
}

type categoryFixture struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Subcategories []string `yaml:"subcategories"`
	IsActive      bool     `yaml:"is_active"`
}

type emailTemplateFixture struct {
	ID           string    `yaml:"id"`
	Name         string    `yaml:"name"`
	Subject      string    `yaml:"subject"`
	Type         string    `yaml:"type"`
	LastModified time.Time `yaml:"last_modified"`
}

type profileFixture struct {
	Name             string    `yaml:"name"`
	Email            string    `yaml:"email"`
	Role             string    `yaml:"role"`
	Phone            string    `yaml:"phone"`
	AvatarURL        string    `yaml:"avatar_url"`
	LastLogin        time.Time `yaml:"last_login"`
	TwoFactorEnabled bool      `yaml:"two_factor_enabled"`
	Sessions         []struct {
		ID         string    `yaml:"id"`
		Device     string    `yaml:"device"`
		Location   string    `yaml:"location"`
		LastActive time.Time `yaml:"last_active"`
		Current    bool      `yaml:"current"`
	} `yaml:"sessions"`
}

// money parses fixture amounts. The first failure is kept so a whole record
// set can be converted before checking.
type money struct {
	err error
}

func (m *money) parse(field, value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil && m.err == nil {
		m.err = fmt.Errorf("parsing %s %q: %w", field, value, err)
	}
	return d
}

func parseFixtures(data []byte) (*records, error) {
	var fx fixtures
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("decoding fixtures: %w", err)
	}

	var m money
	recs := &records{}

	for _, s := range fx.Students {
		recs.students = append(recs.students, domain.Student{
			ID:               s.ID,
			Name:             s.Name,
			Email:            s.Email,
			RegistrationDate: s.RegistrationDate.UTC(),
			Status:           domain.AccountStatus(s.Status),
			GigsCount:        s.GigsCount,
			ProfileLevel:     domain.ProfileLevel(s.ProfileLevel),
		})
	}

	for _, b := range fx.Buyers {
		recs.buyers = append(recs.buyers, domain.Buyer{
			ID:               b.ID,
			Name:             b.Name,
			Email:            b.Email,
			RegistrationDate: b.RegistrationDate.UTC(),
			Status:           domain.AccountStatus(b.Status),
			TotalOrders:      b.TotalOrders,
			LastOrderDate:    utcPtr(b.LastOrderDate),
			TotalSpent:       m.parse("buyer "+b.ID+" total_spent", b.TotalSpent),
		})
	}

	for _, g := range fx.Gigs {
		recs.gigs = append(recs.gigs, domain.Gig{
			ID:             g.ID,
			Title:          g.Title,
			Category:       g.Category,
			SellerName:     g.SellerName,
			SellerRating:   g.SellerRating,
			Status:         domain.GigStatus(g.Status),
			SubmissionDate: g.SubmissionDate.UTC(),
			Packages: domain.GigPackages{
				Basic:    m.parse("gig "+g.ID+" basic", g.Packages.Basic),
				Standard: m.parse("gig "+g.ID+" standard", g.Packages.Standard),
				Premium:  m.parse("gig "+g.ID+" premium", g.Packages.Premium),
			},
			Flags:   nonNil(g.Flags),
			Reports: g.Reports,
		})
	}

	for _, o := range fx.Orders {
		recs.orders = append(recs.orders, domain.Order{
			ID:                  o.ID,
			GigTitle:            o.GigTitle,
			BuyerName:           o.BuyerName,
			SellerName:          o.SellerName,
			Status:              domain.OrderStatus(o.Status),
			Amount:              m.parse("order "+o.ID+" amount", o.Amount),
			Package:             o.Package,
			PaymentStatus:       domain.PaymentStatus(o.PaymentStatus),
			OrderDate:           o.OrderDate.UTC(),
			DeliveryDate:        o.DeliveryDate.UTC(),
			HasDispute:          o.HasDispute,
			Messages:            o.Messages,
			MilestonesTotal:     o.MilestonesTotal,
			MilestonesCompleted: o.MilestonesCompleted,
		})
	}

	for _, d := range fx.Disputes {
		recs.disputes = append(recs.disputes, domain.Dispute{
			ID:             d.ID,
			OrderID:        d.OrderID,
			GigTitle:       d.GigTitle,
			BuyerName:      d.BuyerName,
			SellerName:     d.SellerName,
			Status:         domain.DisputeStatus(d.Status),
			Priority:       domain.DisputePriority(d.Priority),
			Reason:         d.Reason,
			Amount:         m.parse("dispute "+d.ID+" amount", d.Amount),
			OpenedDate:     d.OpenedDate.UTC(),
			LastActivityAt: d.LastActivityAt.UTC(),
			Description:    d.Description,
			EvidenceCount:  d.EvidenceCount,
			AdminNotes:     nonNil(d.AdminNotes),
		})
	}

	for _, t := range fx.Transactions {
		recs.transactions = append(recs.transactions, domain.Transaction{
			ID:          t.ID,
			Type:        domain.TransactionType(t.Type),
			Description: t.Description,
			Party:       t.Party,
			Amount:      m.parse("transaction "+t.ID+" amount", t.Amount),
			Fee:         m.parse("transaction "+t.ID+" fee", t.Fee),
			NetAmount:   m.parse("transaction "+t.ID+" net_amount", t.NetAmount),
			Date:        t.Date.UTC(),
			Status:      domain.TransactionStatus(t.Status),
			OrderID:     t.OrderID,
		})
	}

	for _, p := range fx.Payouts {
		recs.payouts = append(recs.payouts, domain.Payout{
			ID:            p.ID,
			Seller:        p.Seller,
			Amount:        m.parse("payout "+p.ID+" amount", p.Amount),
			Status:        domain.PayoutStatus(p.Status),
			ScheduledDate: p.ScheduledDate.UTC(),
			CompletedDate: utcPtr(p.CompletedDate),
			Method:        p.Method,
			Orders:        p.Orders,
		})
	}

	for _, c := range fx.Categories {
		recs.categories = append(recs.categories, domain.Category{
			ID:            c.ID,
			Name:          c.Name,
			Subcategories: nonNil(c.Subcategories),
			IsActive:      c.IsActive,
		})
	}

	for _, e := range fx.EmailTemplates {
		recs.emailTemplates = append(recs.emailTemplates, domain.EmailTemplate{
			ID:           e.ID,
			Name:         e.Name,
			Subject:      e.Subject,
			Type:         domain.TemplateType(e.Type),
			LastModified: e.LastModified.UTC(),
		})
	}

	if p := fx.Profile; p != nil {
		profile := &domain.AdminProfile{
			Name:             p.Name,
			Email:            p.Email,
			Role:             p.Role,
			Phone:            p.Phone,
			AvatarURL:        p.AvatarURL,
			LastLogin:        p.LastLogin.UTC(),
			TwoFactorEnabled: p.TwoFactorEnabled,
			Sessions:         []domain.AdminSession{},
		}
		for _, ss := range p.Sessions {
			profile.Sessions = append(profile.Sessions, domain.AdminSession{
				ID:         ss.ID,
				Device:     ss.Device,
				Location:   ss.Location,
				LastActive: ss.LastActive.UTC(),
				Current:    ss.Current,
			})
		}
		recs.profile = profile
	}

	if m.err != nil {
		return nil, m.err
	}

	return recs, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
