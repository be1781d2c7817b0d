package handler

import (
	"github.com/sweetshop/inventory-api/internal/core/domain"
	"github.com/sweetshop/inventory-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createSweetRequest) ports.CreateSweetInput {
	in := ports.CreateSweetInput{
		Name:     req.Name,
		Category: req.Category,
	}
	if req.Price != nil {
		in.Price = *req.Price
	}
	if req.Quantity != nil {
		in.Quantity = *req.Quantity
	}
	return in
}

func toPatch(req updateSweetRequest) ports.SweetPatch {
	return ports.SweetPatch{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
	}
}

// --- Domain → HTTP response ---

func toSweetResponse(s *domain.Sweet) sweetResponse {
	return sweetResponse{
		ID:        s.ID,
		Name:      s.Name,
		Category:  s.Category,
		Price:     s.Price,
		Quantity:  s.Quantity,
		CreatedAt: s.CreatedAt.UTC(),
		UpdatedAt: s.UpdatedAt.UTC(),
	}
}

func toSweetListResponse(sweets []*domain.Sweet) []sweetResponse {
	out := make([]sweetResponse, len(sweets))
	for i, s := range sweets {
		out[i] = toSweetResponse(s)
	}
	return out
}
