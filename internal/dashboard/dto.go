package dashboard

type StatusCountsDTO struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
}

type OverviewResponse struct {
	Students         int             `json:"students"`
	Buyers           int             `json:"buyers"`
	TotalUsers       int             `json:"totalUsers"`
	Gigs             StatusCountsDTO `json:"gigs"`
	Orders           StatusCountsDTO `json:"orders"`
	OpenDisputes     int             `json:"openDisputes"`
	ScheduledPayouts int             `json:"scheduledPayouts"`
}

func toResponse(o *Overview) OverviewResponse {
	return OverviewResponse{
		Students:         o.Students,
		Buyers:           o.Buyers,
		TotalUsers:       o.TotalUsers(),
		Gigs:             StatusCountsDTO{Total: o.TotalGigs, ByStatus: o.GigsByStatus},
		Orders:           StatusCountsDTO{Total: o.TotalOrders, ByStatus: o.OrdersByStatus},
		OpenDisputes:     o.OpenDisputes,
		ScheduledPayouts: o.ScheduledPayouts,
	}
}
