package services

import (
	"momslove/models"
	"momslove/repositories"
)

type PreferenceService interface {
	Get(actor Actor) ([]models.CategoryPreference, error)
	Replace(actor Actor, categoryIDs []uint) error
	HomeFeed(actor Actor, limit int) ([]models.Article, error)
}

type preferenceService struct {
	preferenceRepo repositories.PreferenceRepository
	categoryRepo   repositories.CategoryRepository
	articleRepo    repositories.ArticleRepository
}

func NewPreferenceService(preferenceRepo repositories.PreferenceRepository, categoryRepo repositories.CategoryRepository, articleRepo repositories.ArticleRepository) PreferenceService {
	return &preferenceService{
		preferenceRepo: preferenceRepo,
		categoryRepo:   categoryRepo,
		articleRepo:    articleRepo,
	}
}

func (s *preferenceService) Get(actor Actor) ([]models.CategoryPreference, error) {
	if !actor.Authenticated() {
		return nil, models.ErrorUnauthorized{Message: "authentication required"}
	}
	return s.preferenceRepo.ListByUser(actor.ID)
}

func (s *preferenceService) Replace(actor Actor, categoryIDs []uint) error {
	if !actor.Authenticated() {
		return models.ErrorUnauthorized{Message: "authentication required"}
	}
	for _, id := range categoryIDs {
		if _, err := s.categoryRepo.GetByID(id); err != nil {
			return models.ErrorValidation{Message: "unknown category in preferences"}
		}
	}
	return s.preferenceRepo.Replace(actor.ID, categoryIDs)
}

// HomeFeed returns recent published articles with the user's preferred
// categories first. Anonymous callers just get the recent list.
func (s *preferenceService) HomeFeed(actor Actor, limit int) ([]models.Article, error) {
	if limit <= 0 {
		limit = 10
	}

	articles, err := s.articleRepo.GetRecent(limit)
	if err != nil {
		return nil, err
	}
	if !actor.Authenticated() {
		return articles, nil
	}

	prefs, err := s.preferenceRepo.ListByUser(actor.ID)
	if err != nil {
		return nil, err
	}
	if len(prefs) == 0 {
		return articles, nil
	}

	preferred := make(map[uint]bool, len(prefs))
	for _, p := range prefs {
		preferred[p.CategoryID] = true
	}

	// Stable partition: preferred categories first, original order kept
	// within each group.
	ranked := make([]models.Article, 0, len(articles))
	var rest []models.Article
	for _, a := range articles {
		if a.CategoryID != nil && preferred[*a.CategoryID] {
			ranked = append(ranked, a)
		} else {
			rest = append(rest, a)
		}
	}
	return append(ranked, rest...), nil
}
