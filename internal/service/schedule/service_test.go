package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DSM-CoreService/internal/domain"
	configRepo "github.com/m04kA/DSM-CoreService/internal/infra/storage/schedulecfg"
	"github.com/m04kA/DSM-CoreService/internal/service/schedule/models"
	"github.com/m04kA/DSM-CoreService/pkg/ptr"
)

// Фейковые зависимости

type fakeConfigRepo struct {
	instructorConfig *domain.ScheduleConfig
	schoolConfig     *domain.ScheduleConfig
	upserted         *domain.ScheduleConfig
}

func (f *fakeConfigRepo) GetWithHierarchy(_ context.Context, _ int64) (*domain.ScheduleConfig, error) {
	if f.instructorConfig != nil {
		return f.instructorConfig, nil
	}
	if f.schoolConfig != nil {
		return f.schoolConfig, nil
	}
	return nil, configRepo.ErrConfigNotFound
}

func (f *fakeConfigRepo) GetSchoolDefault(_ context.Context) (*domain.ScheduleConfig, error) {
	if f.schoolConfig == nil {
		return nil, configRepo.ErrConfigNotFound
	}
	return f.schoolConfig, nil
}

func (f *fakeConfigRepo) Upsert(_ context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	saved := *config
	saved.ID = 1
	f.upserted = &saved
	return &saved, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validUpsert() *models.UpsertConfigRequest {
	return &models.UpsertConfigRequest{
		DayStartHour:            8,
		DayEndHour:              20,
		SlotDurationMinutes:     60,
		MinBookingNoticeMinutes: 60,
	}
}

func TestGet_InstructorOverridesSchoolDefault(t *testing.T) {
	repo := &fakeConfigRepo{
		instructorConfig: &domain.ScheduleConfig{ID: 2, InstructorID: ptr.Ptr(int64(7)), DayStartHour: 9, DayEndHour: 18},
		schoolConfig:     &domain.ScheduleConfig{ID: 1, DayStartHour: 8, DayEndHour: 20},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Get(context.Background(), &models.GetConfigRequest{InstructorID: ptr.Ptr(int64(7))})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.ID)
	assert.Equal(t, 9, resp.DayStartHour)
}

func TestGet_SchoolDefaultWithoutInstructor(t *testing.T) {
	repo := &fakeConfigRepo{
		schoolConfig: &domain.ScheduleConfig{ID: 1, DayStartHour: 8, DayEndHour: 20},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Get(context.Background(), &models.GetConfigRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(&fakeConfigRepo{}, nopLogger{})

	_, err := svc.Get(context.Background(), &models.GetConfigRequest{})
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestUpsert_ValidConfig(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Upsert(context.Background(), validUpsert())
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, 60, repo.upserted.SlotDurationMinutes)
}

func TestUpsert_BoundsValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *models.UpsertConfigRequest)
	}{
		{"start hour below range", func(r *models.UpsertConfigRequest) { r.DayStartHour = -1 }},
		{"start hour above range", func(r *models.UpsertConfigRequest) { r.DayStartHour = 25 }},
		{"end hour above range", func(r *models.UpsertConfigRequest) { r.DayEndHour = 25 }},
		{"end not after start", func(r *models.UpsertConfigRequest) { r.DayStartHour = 12; r.DayEndHour = 12 }},
		{"slot duration too short", func(r *models.UpsertConfigRequest) { r.SlotDurationMinutes = 10 }},
		{"slot duration too long", func(r *models.UpsertConfigRequest) { r.SlotDurationMinutes = 300 }},
		{"negative notice", func(r *models.UpsertConfigRequest) { r.MinBookingNoticeMinutes = -1 }},
		{"notice above week", func(r *models.UpsertConfigRequest) { r.MinBookingNoticeMinutes = 10081 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeConfigRepo{}
			svc := NewService(repo, nopLogger{})

			req := validUpsert()
			tt.mutate(req)

			_, err := svc.Upsert(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.upserted)
		})
	}
}
