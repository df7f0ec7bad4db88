package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"sargalayam/client"
	"sargalayam/config"
	"sargalayam/metrics"
	"sargalayam/ranking"
	"sargalayam/repository"

	"github.com/segmentio/kafka-go"
	"gorm.io/gorm"
)

// ErrMissingFirstPlace is the single hard validation gate on a winners
// submission: the batch must contain at least a usable 1st place entry.
var ErrMissingFirstPlace = errors.New("missing required winner: 1st place participant must not be empty")

// pointsForPosition is the fixed admin-entry points table.
var pointsForPosition = map[int]int{1: 10, 2: 7, 3: 5}

type WinnerEntry struct {
	Participant string
	School      string
}

// WinnerSlots is the fixed three-slot winners form. The tagged fields (not a
// raw array) make "first is required, second and third optional" explicit.
type WinnerSlots struct {
	First  WinnerEntry
	Second WinnerEntry
	Third  WinnerEntry
}

// BuildSubmissionBatch turns the winners form into the rows to insert. The
// 1st place slot must name a participant; later slots with a blank
// participant are dropped. Positions are taken from the slot tags and never
// recomputed, points follow the fixed table. Pure transform; no store access.
func BuildSubmissionBatch(program string, category repository.Category, year string, slots WinnerSlots) ([]*repository.Result, error) {
	if strings.TrimSpace(slots.First.Participant) == "" {
		return nil, ErrMissingFirstPlace
	}
	entries := []struct {
		position int
		entry    WinnerEntry
	}{
		{1, slots.First},
		{2, slots.Second},
		{3, slots.Third},
	}
	results := make([]*repository.Result, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.entry.Participant) == "" {
			continue
		}
		results = append(results, &repository.Result{
			Event:       program,
			Category:    category,
			Year:        year,
			Participant: e.entry.Participant,
			School:      e.entry.School,
			Position:    e.position,
			Points:      pointsForPosition[e.position],
		})
	}
	return results, nil
}

type ResultService struct {
	resultRepository *repository.ResultRepository
	announcer        *client.DiscordAnnouncer
}

func NewResultService(db *gorm.DB) *ResultService {
	announcer, err := client.NewDiscordAnnouncer()
	if err != nil {
		log.Printf("discord announcements disabled: %v", err)
	}
	return &ResultService{
		resultRepository: repository.NewResultRepository(db),
		announcer:        announcer,
	}
}

// AddWinners validates and stores a winners batch for one program. An empty
// year defaults to the configured current edition year. The whole batch is
// inserted in one call; on success the results feed and the Discord channel
// are notified best-effort.
func (s *ResultService) AddWinners(program string, category repository.Category, year string, slots WinnerSlots) ([]*repository.Result, error) {
	if year == "" {
		year = config.Env().CurrentYear
	}
	batch, err := BuildSubmissionBatch(program, category, year, slots)
	if err != nil {
		return nil, err
	}
	stored, err := s.resultRepository.InsertMany(batch)
	if err != nil {
		return nil, err
	}
	metrics.WinnerBatchesStored.Inc()
	s.publishFeed("results_added", stored)
	if s.announcer != nil {
		if err := s.announcer.AnnouncePodium(program, category, year, ranking.PodiumOf(stored)); err != nil {
			log.Printf("failed to announce winners for %q: %v", program, err)
		}
	}
	return stored, nil
}

// GetResults fetches a snapshot narrowed by year/category at the store and
// applies the full view projection on top, so search works identically
// whether or not the store narrowed the set.
func (s *ResultService) GetResults(filters ranking.Filters) ([]*repository.Result, error) {
	results, err := s.resultRepository.GetFiltered(filters.Year, filters.Category)
	if err != nil {
		return nil, err
	}
	return ranking.View(results, filters), nil
}

// GetAllResults returns every stored result newest first, the admin
// management view.
func (s *ResultService) GetAllResults() ([]*repository.Result, error) {
	return s.resultRepository.GetAllOrdered("created_at", true)
}

func (s *ResultService) GetPodium(event string, category repository.Category, year string) (ranking.Podium, error) {
	results, err := s.resultRepository.GetForProgram(event, category, year)
	if err != nil {
		return ranking.Podium{}, err
	}
	return ranking.PodiumOf(results), nil
}

func (s *ResultService) DeleteResult(id int) error {
	if err := s.resultRepository.DeleteById(id); err != nil {
		return err
	}
	metrics.ResultsDeleted.Inc()
	s.publishFeed("result_deleted", []*repository.Result{{Id: id}})
	return nil
}

func (s *ResultService) Years() ([]string, error) {
	return s.resultRepository.Years()
}

type feedMessage struct {
	Kind    string               `json:"kind"`
	Results []*repository.Result `json:"results"`
}

// publishFeed pushes a mutation onto the results feed topic for downstream
// consumers. Best-effort: a missing broker or a write failure is logged and
// never fails the admin action.
func (s *ResultService) publishFeed(kind string, results []*repository.Result) {
	writer, err := config.ResultsFeedWriter()
	if err != nil {
		return
	}
	payload, err := json.Marshal(feedMessage{Kind: kind, Results: results})
	if err != nil {
		log.Printf("failed to serialize feed message: %v", err)
		return
	}
	if err := writer.WriteMessages(context.Background(), kafka.Message{Value: payload}); err != nil {
		log.Printf("failed to publish to results feed: %v", err)
		return
	}
	metrics.FeedMessagesPublished.Inc()
}
