package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"plantdiary/internal/models"
	"plantdiary/internal/storage"
	"plantdiary/internal/timeutil"
)

// PlantQuery selects a page of the plant list.
type PlantQuery struct {
	Keyword string
	Page    int // 1-based; values below 1 mean the first page
}

// PlantSummary is a plant as shown in the list.
type PlantSummary struct {
	models.Plant
	TypeLabel   string         `json:"typeLabel"`
	StatusInfo  models.Display `json:"statusInfo"`
	RecordCount int            `json:"recordCount"`
}

// PlantPage is one page of the filtered plant list.
type PlantPage struct {
	Plants   []PlantSummary `json:"plants"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
	Total    int            `json:"total"`
	HasMore  bool           `json:"hasMore"`
}

// PlantDetail is the plant page.
type PlantDetail struct {
	PlantSummary
	GrowthDays      int          `json:"growthDays"`
	DescriptionHTML string       `json:"descriptionHtml,omitempty"`
	RecentRecords   []RecordView `json:"recentRecords"`
}

// PlantService provides plant use cases.
type PlantService interface {
	// List returns one page of plants matching the query keyword.
	List(ctx context.Context, q PlantQuery) (PlantPage, error)
	// Detail returns a plant with its growth days and newest records.
	Detail(ctx context.Context, id string) (PlantDetail, error)
	// Create adds a plant. An empty plant date defaults to today.
	Create(ctx context.Context, p models.Plant) (models.Plant, error)
	// Update patches a plant.
	Update(ctx context.Context, id string, patch models.PlantPatch) (models.Plant, error)
	// Delete removes a plant with its records and reminders.
	Delete(ctx context.Context, id string) error
}

type plantService struct {
	repos    *storage.Repos
	markdown MarkdownRenderer
	opts     Options
	now      func() time.Time
}

// NewPlantService creates a new PlantService.
func NewPlantService(repos *storage.Repos, markdown MarkdownRenderer, opts Options) PlantService {
	return &plantService{
		repos:    repos,
		markdown: markdown,
		opts:     opts.withDefaults(),
		now:      time.Now,
	}
}

func summarize(p models.Plant, recordCount int) PlantSummary {
	label, _ := p.Type.Label()
	status, _ := p.Status.Display()
	return PlantSummary{Plant: p, TypeLabel: label, StatusInfo: status, RecordCount: recordCount}
}

func matchesKeyword(p models.Plant, keyword string) bool {
	if keyword == "" {
		return true
	}
	keyword = strings.ToLower(keyword)
	return strings.Contains(strings.ToLower(p.Name), keyword) ||
		strings.Contains(strings.ToLower(string(p.Type)), keyword)
}

func (s *plantService) List(ctx context.Context, q PlantQuery) (PlantPage, error) {
	plants := s.repos.Plants.GetAll()
	counts := make(map[string]int)
	for _, rec := range s.repos.Records.GetAll() {
		counts[rec.PlantID]++
	}

	keyword := strings.TrimSpace(q.Keyword)
	var matched []PlantSummary
	for _, p := range plants {
		if matchesKeyword(p, keyword) {
			matched = append(matched, summarize(p, counts[p.ID]))
		}
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * s.opts.PageSize
	end := start + s.opts.PageSize
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	result := PlantPage{
		Plants:   append([]PlantSummary{}, matched[start:end]...),
		Page:     page,
		PageSize: s.opts.PageSize,
		Total:    len(matched),
		HasMore:  end < len(matched),
	}
	loggerFrom(ctx).DebugContext(ctx, "listed plants", "keyword", keyword, "page", page, "total", result.Total)
	return result, nil
}

func (s *plantService) Detail(ctx context.Context, id string) (PlantDetail, error) {
	p, err := s.repos.Plants.GetByID(id)
	if err != nil {
		return PlantDetail{}, WrapError(err, "get plant")
	}

	records := s.repos.Records.ListByPlant(id)
	sort.SliceStable(records, func(i, j int) bool { return records[i].RecordTime > records[j].RecordTime })

	now := s.now()
	detail := PlantDetail{
		PlantSummary:  summarize(p, len(records)),
		GrowthDays:    growthDays(p.PlantDate, now),
		RecentRecords: []RecordView{},
	}
	for i, rec := range records {
		if i == s.opts.RecentRecords {
			break
		}
		detail.RecentRecords = append(detail.RecentRecords, newRecordView(rec, p))
	}

	html, err := s.markdown.Render(p.Description)
	if err != nil {
		loggerFrom(ctx).WarnContext(ctx, "failed to render plant description", "plant_id", id, "error", err)
	} else {
		detail.DescriptionHTML = html
	}
	return detail, nil
}

func (s *plantService) Create(ctx context.Context, p models.Plant) (models.Plant, error) {
	logger := loggerFrom(ctx)

	p.Name = strings.TrimSpace(p.Name)
	if p.PlantDate == "" {
		p.PlantDate = s.now().Format("2006-01-02")
	} else if ts, err := timeutil.Parse(p.PlantDate); err != nil {
		return models.Plant{}, &ValidationError{Field: "plantDate", Message: "not a date"}
	} else {
		p.PlantDate = timeutil.FormatDate(ts)
	}

	created, err := s.repos.Plants.Add(p)
	if err != nil {
		logger.WarnContext(ctx, "failed to add plant", "error", err)
		return models.Plant{}, WrapError(err, "add plant")
	}
	logger.InfoContext(ctx, "plant added", "plant_id", created.ID, "type", created.Type)
	return created, nil
}

func (s *plantService) Update(ctx context.Context, id string, patch models.PlantPatch) (models.Plant, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}
	if patch.PlantDate != nil {
		ts, err := timeutil.Parse(*patch.PlantDate)
		if err != nil {
			return models.Plant{}, &ValidationError{Field: "plantDate", Message: "not a date"}
		}
		date := timeutil.FormatDate(ts)
		patch.PlantDate = &date
	}

	updated, err := s.repos.Plants.Update(id, patch)
	if err != nil {
		return models.Plant{}, WrapError(err, "update plant")
	}
	loggerFrom(ctx).InfoContext(ctx, "plant updated", "plant_id", id)
	return updated, nil
}

func (s *plantService) Delete(ctx context.Context, id string) error {
	if err := s.repos.Plants.Delete(id); err != nil {
		loggerFrom(ctx).ErrorContext(ctx, "failed to delete plant", "plant_id", id, "error", err)
		return WrapError(err, "delete plant")
	}
	return nil
}
