package services

import (
	"errors"

	"momslove/models"
	"momslove/repositories"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// SeedReport summarizes one seeding run.
type SeedReport struct {
	Skipped    bool `json:"skipped"`
	Categories int  `json:"categories"`
	Tags       int  `json:"tags"`
	Articles   int  `json:"articles"`
}

type SeedService interface {
	MigrateAllData(adminUserID uint) (*SeedReport, error)
}

type seedService struct {
	articleRepo  repositories.ArticleRepository
	categoryRepo repositories.CategoryRepository
	tagRepo      repositories.TagRepository
	clock        Clock
	log          zerolog.Logger
}

func NewSeedService(articleRepo repositories.ArticleRepository, categoryRepo repositories.CategoryRepository, tagRepo repositories.TagRepository, clock Clock, log zerolog.Logger) SeedService {
	if clock == nil {
		clock = systemClock{}
	}
	return &seedService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		clock:        clock,
		log:          log,
	}
}

// MigrateAllData loads the bundled starter dataset. It is a no-op when any
// article already exists, so re-running it never duplicates rows.
// Categories go first, then tags, then articles, because articles resolve
// category and tag ids through the name maps built along the way.
func (s *seedService) MigrateAllData(adminUserID uint) (*SeedReport, error) {
	count, err := s.articleRepo.Count()
	if err != nil {
		return nil, err
	}
	if count > 0 {
		s.log.Info().Int64("existing_articles", count).Msg("seed skipped, data already present")
		return &SeedReport{Skipped: true}, nil
	}

	report := &SeedReport{}

	categoryIDs := make(map[string]uint, len(seedCategories))
	for _, sc := range seedCategories {
		category, err := s.categoryRepo.GetByName(sc.Name)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			category = &models.Category{
				Name:        sc.Name,
				Slug:        slugify(sc.Name),
				Description: sc.Description,
			}
			if err := s.categoryRepo.Create(category); err != nil {
				return nil, err
			}
			report.Categories++
		} else if err != nil {
			return nil, err
		}
		categoryIDs[sc.Name] = category.ID
	}

	tagsByName := make(map[string]models.Tag, len(seedTags))
	for _, name := range seedTags {
		tag, err := s.tagRepo.GetByName(name)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = &models.Tag{Name: name}
			if err := s.tagRepo.Create(tag); err != nil {
				return nil, err
			}
			report.Tags++
		} else if err != nil {
			return nil, err
		}
		tagsByName[name] = *tag
	}

	now := s.clock.Now()
	for _, sa := range seedArticles {
		var tags []models.Tag
		for _, name := range sa.Tags {
			tags = append(tags, tagsByName[name])
		}

		categoryID := categoryIDs[sa.Category]
		article := &models.Article{
			Title:       sa.Title,
			Slug:        slugify(sa.Title),
			Content:     sa.Content,
			Excerpt:     excerpt(sa.Content),
			CoverImage:  sa.CoverImage,
			UserID:      adminUserID,
			AuthorName:  "MomsLove Editorial",
			Status:      models.StatusPublished,
			ReadingTime: readingTime(sa.Content),
			CategoryID:  &categoryID,
			Tags:        tags,
			PublishedAt: &now,
		}
		if err := s.articleRepo.Create(article); err != nil {
			return nil, err
		}
		report.Articles++
	}

	s.log.Info().
		Int("categories", report.Categories).
		Int("tags", report.Tags).
		Int("articles", report.Articles).
		Msg("seed complete")

	return report, nil
}
