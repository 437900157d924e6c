package services

import (
	"presence/internal/aggregation"
	"presence/internal/cache"
	"presence/internal/models"
	"presence/internal/parser"
	"presence/internal/providers"
	"presence/internal/structures"
)

const dataMemoName = "get_data"

// Sources is the argument the dataset is memoized under.
type Sources struct {
	Csv string `json:"csv"`
	Xml string `json:"xml"`
}

type UserSummary struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type PresenceServiceInterface interface {
	GetData() (models.Dataset, error)
	Generation() (uint64, error)
	Users() ([]UserSummary, error)
	MeanTimeWeekday(userID int) ([]aggregation.Row, error)
	PresenceWeekday(userID int) ([]aggregation.Row, error)
	PresenceStartEnd(userID int) ([]aggregation.Row, error)
	Invalidate()
	CacheEntries() int
}

type PresenceService struct {
	sources Sources
	parser  parser.ParserInterface
	store   *cache.Store
	data    *cache.Memo[Sources, models.Dataset]
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func (ps *PresenceService) load(src Sources) (models.Dataset, error) {
	data, report, err := ps.parser.Parse(src.Csv, src.Xml)
	if err != nil {
		ps.logger.Errorf(providers.TypeParser, "Unable to load presence data: %s", err)
		return nil, err
	}
	if report != nil {
		ps.metrics.ObserveParseDuration(report.Duration)
		for reason, n := range report.Skipped {
			ps.metrics.AddSkippedRows(string(reason), n)
		}
	}
	ps.metrics.SetUsersTotal(len(data))
	return data, nil
}

// GetData returns the cached dataset, parsing the sources when the cached
// copy is missing or expired.
func (ps *PresenceService) GetData() (models.Dataset, error) {
	return ps.data.Get(ps.sources)
}

// Generation identifies the dataset currently served. It changes whenever
// the sources are parsed again.
func (ps *PresenceService) Generation() (uint64, error) {
	_, gen, err := ps.data.Lookup(ps.sources)
	return gen, err
}

func (ps *PresenceService) Users() ([]UserSummary, error) {
	data, err := ps.GetData()
	if err != nil {
		return nil, err
	}
	users := make([]UserSummary, 0, len(data))
	for _, id := range data.UserIDs() {
		u := UserSummary{UserID: id, Name: data.DisplayName(id)}
		if avatar := data[id].Avatar; avatar != nil {
			u.Avatar = *avatar
		}
		users = append(users, u)
	}
	return users, nil
}

func (ps *PresenceService) times(userID int) (map[models.Date]models.Presence, error) {
	data, err := ps.GetData()
	if err != nil {
		return nil, err
	}
	times, ok := data.Times(userID)
	if !ok {
		ps.logger.Debugf(providers.TypeApi, "User %d not found!", userID)
	}
	return times, nil
}

func (ps *PresenceService) MeanTimeWeekday(userID int) ([]aggregation.Row, error) {
	times, err := ps.times(userID)
	if err != nil {
		return nil, err
	}
	return aggregation.MeanTimeWeekday(times), nil
}

func (ps *PresenceService) PresenceWeekday(userID int) ([]aggregation.Row, error) {
	times, err := ps.times(userID)
	if err != nil {
		return nil, err
	}
	return aggregation.PresenceWeekday(times), nil
}

func (ps *PresenceService) PresenceStartEnd(userID int) ([]aggregation.Row, error) {
	times, err := ps.times(userID)
	if err != nil {
		return nil, err
	}
	return aggregation.PresenceStartEnd(times), nil
}

// Invalidate drops the cached dataset; the next read parses the sources again.
func (ps *PresenceService) Invalidate() {
	ps.data.Invalidate()
}

func (ps *PresenceService) CacheEntries() int {
	return ps.store.Len()
}

func NewPresenceService(conf *structures.Config, logger providers.Logger, p parser.ParserInterface, store *cache.Store, metrics providers.MetricsProviderInterface) PresenceServiceInterface {
	ps := &PresenceService{
		sources: Sources{Csv: conf.Data.CsvPath, Xml: conf.Data.XmlPath},
		parser:  p,
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
	ps.data = cache.NewMemo(store, dataMemoName, conf.Cache.TTL, ps.load).
		OnLookup(func(hit bool) {
			if hit {
				metrics.IncCacheHits(providers.CacheDataset)
			} else {
				metrics.IncCacheMisses(providers.CacheDataset)
			}
		})
	return ps
}
