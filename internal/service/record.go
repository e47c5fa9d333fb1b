package service

import (
	"context"
	"sort"
	"time"

	"plantdiary/internal/models"
	"plantdiary/internal/storage"
	"plantdiary/internal/timeutil"
)

// RecordView is a record joined with its plant for display.
type RecordView struct {
	models.Record
	PlantName     string         `json:"plantName"`
	PlantImageURL string         `json:"plantImageUrl,omitempty"`
	TypeInfo      models.Display `json:"typeInfo"`
	TimeText      string         `json:"timeText"`
}

func newRecordView(rec models.Record, p models.Plant) RecordView {
	info, _ := rec.Type.Display()
	return RecordView{
		Record:        rec,
		PlantName:     p.Name,
		PlantImageURL: p.ImageURL,
		TypeInfo:      info,
		TimeText:      timeutil.FormatDateTime(int64(rec.RecordTime)),
	}
}

// RecordGroup is the records of one calendar day.
type RecordGroup struct {
	Date    string       `json:"date"`
	Label   string       `json:"label"`
	Records []RecordView `json:"records"`
}

// RecordFeed is the timeline of care records, newest first.
type RecordFeed struct {
	Type   models.RecordType `json:"type,omitempty"`
	Total  int               `json:"total"`
	Groups []RecordGroup     `json:"groups"`
}

// RecordDetail is a single record page.
type RecordDetail struct {
	RecordView
	Plant     models.Plant `json:"plant"`
	NotesHTML string       `json:"notesHtml,omitempty"`
}

// RecordService provides care record use cases.
type RecordService interface {
	// Feed returns the records of existing plants grouped by day, optionally of one type.
	Feed(ctx context.Context, typ models.RecordType) (RecordFeed, error)
	// Get returns a record with its plant and rendered notes.
	Get(ctx context.Context, id string) (RecordDetail, error)
	// ListByPlant returns the records of one plant, newest first.
	ListByPlant(ctx context.Context, plantID string) ([]RecordView, error)
	// Create adds a record. A zero record time defaults to now.
	Create(ctx context.Context, rec models.Record) (models.Record, error)
	// Update patches a record.
	Update(ctx context.Context, id string, patch models.RecordPatch) (models.Record, error)
	// Delete removes a record.
	Delete(ctx context.Context, id string) error
}

type recordService struct {
	repos    *storage.Repos
	markdown MarkdownRenderer
	now      func() time.Time
}

// NewRecordService creates a new RecordService.
func NewRecordService(repos *storage.Repos, markdown MarkdownRenderer) RecordService {
	return &recordService{
		repos:    repos,
		markdown: markdown,
		now:      time.Now,
	}
}

func sortNewestFirst(views []RecordView) {
	sort.SliceStable(views, func(i, j int) bool { return views[i].RecordTime > views[j].RecordTime })
}

func (s *recordService) Feed(ctx context.Context, typ models.RecordType) (RecordFeed, error) {
	if typ != "" && !typ.Valid() {
		return RecordFeed{}, &ValidationError{Field: "type", Message: "unknown record type " + string(typ)}
	}

	plants := livePlants(s.repos.Plants.GetAll())
	var views []RecordView
	dangling := 0
	for _, rec := range s.repos.Records.GetAll() {
		p, ok := plants[rec.PlantID]
		if !ok {
			dangling++
			continue
		}
		if typ != "" && rec.Type != typ {
			continue
		}
		views = append(views, newRecordView(rec, p))
	}
	if dangling > 0 {
		loggerFrom(ctx).DebugContext(ctx, "skipped records of deleted plants", "count", dangling)
	}
	sortNewestFirst(views)

	now := s.now()
	feed := RecordFeed{Type: typ, Total: len(views), Groups: []RecordGroup{}}
	for _, v := range views {
		date := timeutil.FormatDate(int64(v.RecordTime))
		if n := len(feed.Groups); n == 0 || feed.Groups[n-1].Date != date {
			feed.Groups = append(feed.Groups, RecordGroup{
				Date:  date,
				Label: timeutil.DayGroupLabel(int64(v.RecordTime), now),
			})
		}
		last := &feed.Groups[len(feed.Groups)-1]
		last.Records = append(last.Records, v)
	}
	return feed, nil
}

func (s *recordService) Get(ctx context.Context, id string) (RecordDetail, error) {
	rec, err := s.repos.Records.GetByID(id)
	if err != nil {
		return RecordDetail{}, WrapError(err, "get record")
	}
	p, err := s.repos.Plants.GetByID(rec.PlantID)
	if err != nil {
		// A record whose plant is gone is treated as absent.
		return RecordDetail{}, WrapError(err, "get plant of record")
	}

	detail := RecordDetail{RecordView: newRecordView(rec, p), Plant: p}
	html, err := s.markdown.Render(rec.Notes)
	if err != nil {
		loggerFrom(ctx).WarnContext(ctx, "failed to render record notes", "record_id", id, "error", err)
	} else {
		detail.NotesHTML = html
	}
	return detail, nil
}

func (s *recordService) ListByPlant(ctx context.Context, plantID string) ([]RecordView, error) {
	p, err := s.repos.Plants.GetByID(plantID)
	if err != nil {
		return nil, WrapError(err, "get plant")
	}
	records := s.repos.Records.ListByPlant(plantID)
	views := make([]RecordView, 0, len(records))
	for _, rec := range records {
		views = append(views, newRecordView(rec, p))
	}
	sortNewestFirst(views)
	return views, nil
}

func (s *recordService) Create(ctx context.Context, rec models.Record) (models.Record, error) {
	logger := loggerFrom(ctx)
	if rec.RecordTime == 0 {
		rec.RecordTime = timeutil.Timestamp(s.now().UnixMilli())
	}

	created, err := s.repos.Records.Add(rec)
	if err != nil {
		logger.WarnContext(ctx, "failed to add record", "plant_id", rec.PlantID, "error", err)
		return models.Record{}, WrapError(err, "add record")
	}
	logger.InfoContext(ctx, "record added", "record_id", created.ID, "plant_id", created.PlantID, "type", created.Type)
	return created, nil
}

func (s *recordService) Update(ctx context.Context, id string, patch models.RecordPatch) (models.Record, error) {
	updated, err := s.repos.Records.Update(id, patch)
	if err != nil {
		return models.Record{}, WrapError(err, "update record")
	}
	loggerFrom(ctx).InfoContext(ctx, "record updated", "record_id", id)
	return updated, nil
}

func (s *recordService) Delete(ctx context.Context, id string) error {
	if err := s.repos.Records.Delete(id); err != nil {
		return WrapError(err, "delete record")
	}
	loggerFrom(ctx).InfoContext(ctx, "record deleted", "record_id", id)
	return nil
}
