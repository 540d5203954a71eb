package service

import (
	"context"
	"sync"

	"golang-stock-screener/internal/entity"
	"golang-stock-screener/internal/screener/dto"
)

type fakeYahoo struct {
	mu     sync.Mutex
	calls  []string
	charts map[string]*dto.YahooChartResponse
	errs   map[string]error
}

func (f *fakeYahoo) GetChart(_ context.Context, param dto.GetQuoteParam) (*dto.YahooChartResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, param.Ticker)
	if err, ok := f.errs[param.Ticker]; ok {
		return nil, err
	}
	if chart, ok := f.charts[param.Ticker]; ok {
		return chart, nil
	}
	return &dto.YahooChartResponse{}, nil
}

func chartFor(symbol string, price, previousClose float64) *dto.YahooChartResponse {
	return &dto.YahooChartResponse{Chart: dto.YahooChart{Result: []dto.YahooChartResult{{
		Meta: dto.YahooChartMeta{
			Symbol:             symbol,
			RegularMarketPrice: &price,
			PreviousClose:      &previousClose,
		},
	}}}}
}

type memoryStore struct {
	mu       sync.Mutex
	values   map[string]string
	getCalls int
	setCalls int
	getErr   error
	setErr   error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string]string{}}
}

func (m *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

type recordingSnapshots struct {
	saved []*entity.ScanResult
	err   error
}

func (r *recordingSnapshots) Configured() bool { return true }
func (r *recordingSnapshots) Load(context.Context) (*dto.Snapshot, error) {
	return dto.EmptySnapshot(), nil
}
func (r *recordingSnapshots) Save(context.Context, *dto.SaveSnapshotRequest) (*dto.Snapshot, error) {
	return nil, nil
}
func (r *recordingSnapshots) SaveResult(_ context.Context, result *entity.ScanResult) (*dto.Snapshot, error) {
	r.saved = append(r.saved, result)
	return nil, r.err
}

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) SendMessage(text string) error {
	r.messages = append(r.messages, text)
	return nil
}
