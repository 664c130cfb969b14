package usecase

import (
	"context"
	"math/rand"

	"trustrate-srv/internal/analysis/repository"
	"trustrate-srv/internal/model"
	"trustrate-srv/pkg/classifier"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Info(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Warn(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Error(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Fatal(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...interface{}) {}

// fakeClassifier scripts the gateway for tests.
type fakeClassifier struct {
	status     classifier.StatusOutput
	statusErr  error
	classifyFn func(ctx context.Context, texts []string) (classifier.ClassifyOutput, error)
}

func (f *fakeClassifier) Status(ctx context.Context) (classifier.StatusOutput, error) {
	return f.status, f.statusErr
}

func (f *fakeClassifier) Classify(ctx context.Context, texts []string) (classifier.ClassifyOutput, error) {
	return f.classifyFn(ctx, texts)
}

func healthyStatus() classifier.StatusOutput {
	return classifier.StatusOutput{Status: classifier.StatusHealthy, ModelLoaded: true}
}

// fakeCacheRepo is an in-memory CacheRepository.
type fakeCacheRepo struct {
	entries map[string]model.Analysis
	saveErr error
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{entries: map[string]model.Analysis{}}
}

func (f *fakeCacheRepo) GetAnalysis(ctx context.Context, videoID string) (*model.Analysis, error) {
	a, ok := f.entries[videoID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (f *fakeCacheRepo) SaveAnalysis(ctx context.Context, a model.Analysis) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.entries[a.VideoID] = a
	return nil
}

func (f *fakeCacheRepo) InvalidateAnalysis(ctx context.Context, videoID string) error {
	delete(f.entries, videoID)
	return nil
}

// fakePostgresRepo is an in-memory PostgresRepository.
type fakePostgresRepo struct {
	created []model.Analysis
}

func (f *fakePostgresRepo) CreateAnalysis(ctx context.Context, opts repository.CreateAnalysisOptions) error {
	f.created = append(f.created, opts.Analysis)
	return nil
}

func (f *fakePostgresRepo) GetLatestByVideoID(ctx context.Context, videoID string) (*model.Analysis, error) {
	for i := len(f.created) - 1; i >= 0; i-- {
		if f.created[i].VideoID == videoID {
			a := f.created[i]
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakePublisher struct {
	published []model.Analysis
}

func (f *fakePublisher) AnalysisCompleted(ctx context.Context, a model.Analysis) error {
	f.published = append(f.published, a)
	return nil
}

// newTestUseCase builds an implUseCase with a deterministic rng.
func newTestUseCase(cl classifier.IClassifier) *implUseCase {
	uc := New(cl, nil, nil, nil, nopLogger{}, DefaultConfig()).(*implUseCase)
	uc.rng = rand.New(rand.NewSource(1))
	return uc
}

func testScope() model.Scope {
	return model.Scope{UserID: "tester"}
}
