package category

import "sync"

type Service struct {
	mu      sync.RWMutex
	storage []Category
}

func NewService(seed []Category) *Service {
	s := &Service{storage: make([]Category, 0, len(seed))}
	s.storage = append(s.storage, seed...)
	return s
}

func (s *Service) List() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Category, len(s.storage))
	copy(out, s.storage)
	return out
}

func strptr(v string) *string { return &v }

// SeedCategories returns the default storefront categories.
func SeedCategories() []Category {
	return []Category{
		{ID: "c1", Name: "Cleanser", NameKm: strptr("សាប៊ូលាងមុខ"), Image: "/category/cleanser.png"},
		{ID: "c2", Name: "Toner", NameKm: strptr("ទឹកថ្នាំ"), Image: "/category/toner.png"},
		{ID: "c3", Name: "Serum", NameKm: strptr("សេរ៉ូម"), Image: "/category/serum.png"},
		{ID: "c4", Name: "Moisturizer", NameKm: strptr("ក្រែមសំណើម"), Image: "/category/moisturizer.png"},
		{ID: "c5", Name: "Sunscreen", NameKm: strptr("ឡេការពារថ្ងៃ"), Image: "/category/sunscreen.png"},
		{ID: "c6", Name: "Mask", NameKm: strptr("ម៉ាស"), Image: "/category/mask.png"},
		{ID: "c7", Name: "Body Care", NameKm: strptr("ថែទាំរាងកាយ"), Image: "/category/bodycare.png"},
	}
}
