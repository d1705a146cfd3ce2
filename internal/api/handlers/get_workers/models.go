package get_workers

import (
	"github.com/m04kA/V4U-MarketplaceService/internal/domain"
	"github.com/m04kA/V4U-MarketplaceService/internal/service/workers"
)

// WorkerResponse HTTP response model профиля исполнителя.
// CurrentPay — расчетная ставка по тарифному правилу с учетом рейтинга.
type WorkerResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Category      string  `json:"category"`
	Experience    int     `json:"experience"`
	BaseRate      float64 `json:"baseRate"`
	ServiceArea   string  `json:"serviceArea"`
	IsAvailable   bool    `json:"isAvailable"`
	Rating        float64 `json:"rating"`
	TotalJobs     int     `json:"totalJobs"`
	TotalEarnings float64 `json:"totalEarnings"`
	CurrentPay    float64 `json:"currentPay"`
}

// WorkerListResponse ответ со списком исполнителей
type WorkerListResponse struct {
	Workers []WorkerResponse `json:"workers"`
}

// FromDomainWorkers конвертирует профили в DTO с расчетом выплаты.
// У исполнителя без выполненных работ рейтинг считается отсутствующим.
func FromDomainWorkers(profiles []*domain.WorkerProfile) *WorkerListResponse {
	resp := &WorkerListResponse{
		Workers: make([]WorkerResponse, 0, len(profiles)),
	}

	for _, p := range profiles {
		var rating *float64
		if p.TotalJobs > 0 {
			rating = &p.Rating
		}

		resp.Workers = append(resp.Workers, WorkerResponse{
			ID:            p.ID,
			Name:          p.Name,
			Email:         p.Email,
			Category:      p.Category,
			Experience:    p.Experience,
			BaseRate:      p.BaseRate,
			ServiceArea:   p.ServiceArea,
			IsAvailable:   p.IsAvailable,
			Rating:        p.Rating,
			TotalJobs:     p.TotalJobs,
			TotalEarnings: p.TotalEarnings,
			CurrentPay:    workers.ComputePay(p.BaseRate, rating),
		})
	}

	return resp
}
